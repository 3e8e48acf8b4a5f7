package handlers

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bobmcallan/tavily-bridge/internal/bridge"
	"github.com/bobmcallan/tavily-bridge/internal/common"
)

// ToolsHandler handles the tool invocation endpoint.
// POST /tools executes one invocation; GET /tools lists the tool manifest.
type ToolsHandler struct {
	bridge *bridge.Bridge
	logger *common.Logger
}

// NewToolsHandler creates a new tools handler.
func NewToolsHandler(b *bridge.Bridge, logger *common.Logger) *ToolsHandler {
	return &ToolsHandler{bridge: b, logger: logger}
}

// toolCallRequest is the inbound invocation body.
type toolCallRequest struct {
	Tool   string        `json:"tool"`
	Params bridge.Params `json:"params"`
}

// manifestEntry is one tool in the GET /tools listing.
type manifestEntry struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ServeHTTP routes GET to the manifest and POST to dispatch.
func (h *ToolsHandler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet, http.MethodHead:
		h.serveManifest(w, r)
	case http.MethodPost:
		h.serveToolCall(w, r)
	default:
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
	}
}

// serveManifest lists the fixed tool vocabulary.
func (h *ToolsHandler) serveManifest(w http.ResponseWriter, r *http.Request) {
	tools := h.bridge.Tools()
	entries := make([]manifestEntry, len(tools))
	for i, t := range tools {
		entries[i] = manifestEntry{Name: t.Name, Description: t.Description}
	}
	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"tools": entries,
	})
}

// serveToolCall decodes one invocation, dispatches it, and relays the
// provider response or the mapped error envelope.
func (h *ToolsHandler) serveToolCall(w http.ResponseWriter, r *http.Request) {
	var req toolCallRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		WriteError(w, http.StatusBadRequest, "invalid JSON body: "+err.Error())
		return
	}
	if req.Tool == "" {
		WriteError(w, http.StatusBadRequest, "missing tool name")
		return
	}
	if req.Params == nil {
		req.Params = bridge.Params{}
	}

	body, err := h.bridge.Dispatch(r.Context(), req.Tool, req.Params)
	if err != nil {
		status := statusForError(err)
		h.logger.Warn().
			Str("tool", req.Tool).
			Int("status", status).
			Str("error", err.Error()).
			Msg("tool call failed")
		WriteError(w, status, err.Error())
		return
	}

	WriteRawJSON(w, http.StatusOK, body)
}

// statusForError maps the bridge error kinds onto HTTP status codes.
func statusForError(err error) int {
	var invalidTool *bridge.InvalidToolError
	var missingParam *bridge.MissingParameterError
	var upstream *bridge.UpstreamError

	switch {
	case errors.As(err, &invalidTool):
		return http.StatusNotFound
	case errors.As(err, &missingParam):
		return http.StatusBadRequest
	case errors.As(err, &upstream):
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}
