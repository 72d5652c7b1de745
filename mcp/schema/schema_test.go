package schema

import (
	"encoding/json"
	"testing"
)

func TestToolsSchemaIsValidJSON(t *testing.T) {
	var v interface{}
	if err := json.Unmarshal(ToolsSchema(), &v); err != nil {
		t.Fatalf("embedded tools schema is not valid JSON: %v", err)
	}
}

func TestToolsSchemaNames(t *testing.T) {
	var tools []struct {
		Name string `json:"name"`
	}
	if err := json.Unmarshal(ToolsSchema(), &tools); err != nil {
		t.Fatalf("unmarshal tools schema: %v", err)
	}

	want := map[string]bool{"lookup_entity": false, "ws_get": false}
	for _, tool := range tools {
		if _, ok := want[tool.Name]; !ok {
			t.Errorf("unexpected tool %q in schema", tool.Name)
			continue
		}
		want[tool.Name] = true
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("tool %q missing from schema", name)
		}
	}
}
