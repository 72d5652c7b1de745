package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/audioscout/musicbrainz-go/client"
)

const testMBID = "94ed318a-fd7d-4abc-8491-a35e39f51dca"

func TestLookupEntityTool(t *testing.T) {
	// stub web service lookup endpoint
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/artist/"+testMBID {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if r.URL.RawQuery != "inc=releases+aliases" {
			t.Fatalf("unexpected inc query %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id": "` + testMBID + `", "name": "Blur", "sort-name": "Blur"}`))
	}))
	defer ts.Close()

	sdk := client.New(client.WithBaseURL(ts.URL))
	lh := NewLookupHandler(sdk)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{
				"kind":     "artist",
				"mbid":     testMBID,
				"includes": "releases, aliases",
			},
		},
	}

	res, err := lh.handleLookup(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res == nil || res.IsError {
		t.Fatalf("unexpected tool result: %+v", res)
	}
}

func TestLookupEntityToolBadMBID(t *testing.T) {
	sdk := client.New()
	lh := NewLookupHandler(sdk)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{
				"kind": "artist",
				"mbid": "not-a-uuid",
			},
		},
	}

	res, err := lh.handleLookup(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned protocol error: %v", err)
	}
	if res == nil || !res.IsError {
		t.Fatal("expected tool-level error for malformed mbid")
	}
}

func TestWSGetTool(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/artist" {
			t.Fatalf("unexpected path %s", r.URL.Path)
		}
		if got := r.URL.Query().Get("query"); got != "blur" {
			t.Fatalf("unexpected query %q", r.URL.RawQuery)
		}
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"count": 1, "artists": []}`))
	}))
	defer ts.Close()

	sdk := client.New(client.WithBaseURL(ts.URL))
	gh := NewGetHandler(sdk)

	req := mcp.CallToolRequest{
		Params: mcp.CallToolParams{
			Arguments: map[string]any{
				"endpoint": "artist",
				"params":   map[string]any{"query": "blur"},
			},
		},
	}

	res, err := gh.handleGet(context.Background(), req)
	if err != nil {
		t.Fatalf("handler returned error: %v", err)
	}
	if res == nil || res.IsError {
		t.Fatalf("unexpected tool result: %+v", res)
	}
}
