// Package mcp exposes the bridge's tools over the Model Context Protocol.
package mcp

import (
	"net/http"

	"github.com/bobmcallan/tavily-bridge/internal/bridge"
	"github.com/bobmcallan/tavily-bridge/internal/common"
	"github.com/mark3labs/mcp-go/mcp"
	mcpserver "github.com/mark3labs/mcp-go/server"
)

// Handler is the HTTP handler for the MCP endpoint.
// It wraps mcp-go's StreamableHTTPServer and delegates to it.
type Handler struct {
	streamable *mcpserver.StreamableHTTPServer
	logger     *common.Logger
	toolCount  int
}

// NewHandler creates a new MCP handler with the bridge's tools registered.
func NewHandler(b *bridge.Bridge, logger *common.Logger) *Handler {
	mcpSrv := mcpserver.NewMCPServer(
		"tavily-bridge",
		"1.0.0",
		mcpserver.WithToolCapabilities(true),
	)

	toolCount := RegisterTools(mcpSrv, b)

	mcpSrv.AddTool(VersionTool(), VersionToolHandler())
	toolCount++

	streamable := mcpserver.NewStreamableHTTPServer(mcpSrv,
		mcpserver.WithStateLess(true),
	)

	logger.Info().
		Int("tools", toolCount).
		Msg("MCP handler initialized")

	return &Handler{
		streamable: streamable,
		logger:     logger,
		toolCount:  toolCount,
	}
}

// ToolCount returns the number of registered MCP tools.
func (h *Handler) ToolCount() int {
	return h.toolCount
}

// ServeHTTP delegates to the mcp-go StreamableHTTPServer.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.streamable.ServeHTTP(w, r)
}

// errorResult creates an MCP error result.
func errorResult(message string) *mcp.CallToolResult {
	return &mcp.CallToolResult{
		Content: []mcp.Content{
			mcp.NewTextContent(message),
		},
		IsError: true,
	}
}
