package handlers

import (
	"net/http"

	"github.com/bobmcallan/tavily-bridge/internal/common"
)

// PluginHandler serves the AI plugin manifest at /.well-known/ai-plugin.json,
// a machine-readable description of what this server offers.
type PluginHandler struct {
	logger *common.Logger
}

// NewPluginHandler creates a new plugin manifest handler.
func NewPluginHandler(logger *common.Logger) *PluginHandler {
	return &PluginHandler{logger: logger}
}

// ServeHTTP handles GET /.well-known/ai-plugin.json.
func (h *PluginHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"schema_version":        "v1",
		"name_for_human":        "Tavily Search Bridge",
		"name_for_model":        "tavily_search",
		"description_for_human": "Server for interacting with the Tavily Search API.",
		"description_for_model": "This server provides tools to search the web using the Tavily AI search engine. Use it to find current information.",
		"api": map[string]string{
			"type": "open_api",
			"url":  "/openapi.yaml",
		},
	})
}
