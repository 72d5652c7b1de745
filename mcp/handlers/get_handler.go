package handlers

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/audioscout/musicbrainz-go/client"
)

// GetHandler exposes the ws_get tool for endpoints the typed lookups do not
// cover (browse and search requests, mostly).
type GetHandler struct {
	client *client.Client
}

func NewGetHandler(c *client.Client) *GetHandler {
	return &GetHandler{client: c}
}

// RegisterTools registers the ws_get tool.
func (gh *GetHandler) RegisterTools(s *server.MCPServer) error {
	getTool := mcp.NewTool("ws_get",
		mcp.WithDescription("Issue a raw GET against the MusicBrainz web service, e.g. endpoint \"artist\" with params {\"query\": \"fred again\"} for a search."),
		mcp.WithString("endpoint", mcp.Required(), mcp.Description("Path relative to the service root, e.g. \"recording/<mbid>\"")),
		mcp.WithObject("params", mcp.Description("Query parameters as a string-to-string object")),
	)
	s.AddTool(getTool, gh.handleGet)
	return nil
}

func (gh *GetHandler) handleGet(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	endpoint, _ := req.RequireString("endpoint")

	query := map[string]any{}
	if params, ok := req.GetArguments()["params"].(map[string]any); ok {
		for k, v := range params {
			query[k] = v
		}
	}

	raw, err := gh.client.Get(ctx, endpoint, query)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}
