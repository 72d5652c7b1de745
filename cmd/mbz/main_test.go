package main

import (
	"bytes"
	"encoding/json"
	"testing"
)

func TestCLI_ToolsSchema(t *testing.T) {
	root := NewRootCmd()
	buf := &bytes.Buffer{}
	root.SetOut(buf)
	root.SetArgs([]string{"tools-schema"})
	if err := root.Execute(); err != nil {
		t.Fatalf("tools-schema cmd failed: %v", err)
	}

	var v interface{}
	if err := json.Unmarshal(buf.Bytes(), &v); err != nil {
		t.Fatalf("CLI output is not valid JSON: %v", err)
	}
}

func TestCLI_HasCoreCommands(t *testing.T) {
	root := NewRootCmd()
	want := map[string]bool{"lookup": false, "get": false, "tools-schema": false}
	for _, cmd := range root.Commands() {
		if _, ok := want[cmd.Name()]; ok {
			want[cmd.Name()] = true
		}
	}
	for name, seen := range want {
		if !seen {
			t.Errorf("command %q not registered", name)
		}
	}
}
