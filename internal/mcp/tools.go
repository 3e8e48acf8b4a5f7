package mcp

import (
	"context"
	"fmt"

	"github.com/bobmcallan/tavily-bridge/internal/bridge"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// RegisterTools registers the bridge's fixed tool registry on the MCP server.
func RegisterTools(s *server.MCPServer, b *bridge.Bridge) int {
	tools := b.Tools()
	for _, t := range tools {
		s.AddTool(BuildMCPTool(t), ToolHandler(b, t))
	}
	return len(tools)
}

// BuildMCPTool converts a bridge tool into an mcp.Tool with the appropriate schema.
func BuildMCPTool(t bridge.Tool) mcp.Tool {
	opts := []mcp.ToolOption{
		mcp.WithDescription(t.Description),
		mcp.WithString("query",
			mcp.Description("The search query."),
			mcp.Required(),
		),
	}
	if t.RequiresDomains {
		opts = append(opts, mcp.WithArray("domains",
			mcp.WithStringItems(),
			mcp.Description("Domains to restrict the search to, e.g. [\"github.com\"]."),
			mcp.Required(),
		))
	}
	return mcp.NewTool(t.Name, opts...)
}

// ToolHandler creates a handler that routes an MCP tool call through the bridge.
func ToolHandler(b *bridge.Bridge, t bridge.Tool) server.ToolHandlerFunc {
	return func(ctx context.Context, r mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		params := bridge.Params{}
		if args := r.GetArguments(); args != nil {
			for k, v := range args {
				params[k] = v
			}
		}

		body, err := b.Dispatch(ctx, t.Name, params)
		if err != nil {
			return errorResult(fmt.Sprintf("Error: %v", err)), nil
		}

		return &mcp.CallToolResult{
			Content: []mcp.Content{mcp.NewTextContent(string(body))},
		}, nil
	}
}
