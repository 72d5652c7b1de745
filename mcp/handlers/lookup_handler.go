package handlers

import (
	"context"
	"fmt"
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	"github.com/audioscout/musicbrainz-go/client"
)

// LookupHandler exposes the lookup_entity tool.
type LookupHandler struct {
	client *client.Client
}

func NewLookupHandler(c *client.Client) *LookupHandler {
	return &LookupHandler{client: c}
}

// RegisterTools registers the lookup_entity tool.
func (lh *LookupHandler) RegisterTools(s *server.MCPServer) error {
	lookupTool := mcp.NewTool("lookup_entity",
		mcp.WithDescription("Look up a MusicBrainz entity by MBID. Supported kinds: area, artist, collection, event, genre, instrument, label, place, recording, release, release-group, series, url, work. Optional includes expand the response with linked data (e.g. \"releases\", \"aliases\")."),
		mcp.WithString("kind", mcp.Required(), mcp.Description("Entity kind, e.g. \"artist\" or \"release-group\"")),
		mcp.WithString("mbid", mcp.Required(), mcp.Description("The entity's MBID (a UUID)")),
		mcp.WithString("includes", mcp.Description("Comma-separated include tokens")),
	)
	s.AddTool(lookupTool, lh.handleLookup)
	return nil
}

func (lh *LookupHandler) handleLookup(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	kind, _ := req.RequireString("kind")
	mbid, _ := req.RequireString("mbid")

	var includes []string
	if raw, ok := req.GetArguments()["includes"].(string); ok && raw != "" {
		for _, tok := range strings.Split(raw, ",") {
			if tok = strings.TrimSpace(tok); tok != "" {
				includes = append(includes, tok)
			}
		}
	}

	raw, err := lh.client.Lookup(ctx, client.EntityKind(kind), mbid, includes...)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("lookup failed: %v", err)), nil
	}
	return mcp.NewToolResultText(string(raw)), nil
}
