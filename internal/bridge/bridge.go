// Package bridge validates tool invocations and routes them to the
// Tavily search client. One invocation makes at most one upstream call.
package bridge

import (
	"context"
	"encoding/json"

	"github.com/bobmcallan/tavily-bridge/internal/common"
	"github.com/bobmcallan/tavily-bridge/internal/tavily"
)

// Params is the parameter mapping of one tool invocation.
type Params map[string]interface{}

// SearchClient abstracts the Tavily client for testing.
type SearchClient interface {
	Search(ctx context.Context, req tavily.SearchRequest) (json.RawMessage, error)
}

// Bridge dispatches tool invocations against the fixed registry.
type Bridge struct {
	client SearchClient
	logger *common.Logger
	tools  map[string]Tool
}

// New creates a bridge backed by the given search client.
func New(client SearchClient, logger *common.Logger) *Bridge {
	tools := make(map[string]Tool, len(registry))
	for _, t := range registry {
		tools[t.Name] = t
	}
	return &Bridge{
		client: client,
		logger: logger,
		tools:  tools,
	}
}

// Tools returns the registry in presentation order (for manifests).
func (b *Bridge) Tools() []Tool {
	return Tools()
}

// Dispatch validates the invocation, builds the provider payload, and
// performs the upstream call. Returns the provider's raw JSON response.
// Validation failures never reach the provider.
func (b *Bridge) Dispatch(ctx context.Context, tool string, params Params) (json.RawMessage, error) {
	t, ok := b.tools[tool]
	if !ok {
		return nil, &InvalidToolError{Tool: tool}
	}

	query, ok := stringParam(params, "query")
	if !ok {
		return nil, &MissingParameterError{Tool: tool, Param: "query"}
	}

	var domains []string
	if t.RequiresDomains {
		domains, ok = stringSliceParam(params, "domains")
		if !ok || len(domains) == 0 {
			return nil, &MissingParameterError{Tool: tool, Param: "domains"}
		}
	}

	b.logger.Debug().Str("tool", tool).Str("query", query).Msg("dispatching tool call")

	body, err := b.client.Search(ctx, t.build(query, domains))
	if err != nil {
		b.logger.Warn().Str("tool", tool).Str("error", err.Error()).Msg("upstream call failed")
		return nil, &UpstreamError{Err: err}
	}

	return body, nil
}

// stringParam extracts a non-empty string parameter.
func stringParam(params Params, name string) (string, bool) {
	v, ok := params[name]
	if !ok {
		return "", false
	}
	s, ok := v.(string)
	if !ok || s == "" {
		return "", false
	}
	return s, true
}

// stringSliceParam extracts a list-of-strings parameter. JSON decoding
// yields []interface{}, so both that and []string are accepted.
func stringSliceParam(params Params, name string) ([]string, bool) {
	v, ok := params[name]
	if !ok {
		return nil, false
	}
	switch vals := v.(type) {
	case []string:
		return vals, true
	case []interface{}:
		out := make([]string, 0, len(vals))
		for _, item := range vals {
			s, ok := item.(string)
			if !ok || s == "" {
				return nil, false
			}
			out = append(out, s)
		}
		return out, true
	default:
		return nil, false
	}
}
