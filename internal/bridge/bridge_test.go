package bridge

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"testing"

	"github.com/bobmcallan/tavily-bridge/internal/common"
	"github.com/bobmcallan/tavily-bridge/internal/tavily"
)

// fakeClient records outbound requests and returns a canned response.
type fakeClient struct {
	requests []tavily.SearchRequest
	response json.RawMessage
	err      error
}

func (f *fakeClient) Search(_ context.Context, req tavily.SearchRequest) (json.RawMessage, error) {
	f.requests = append(f.requests, req)
	if f.err != nil {
		return nil, f.err
	}
	return f.response, nil
}

func newTestBridge(client SearchClient) *Bridge {
	return New(client, common.NewSilentLogger())
}

func TestTools_FixedVocabulary(t *testing.T) {
	b := newTestBridge(&fakeClient{})

	tools := b.Tools()
	if len(tools) != 4 {
		t.Fatalf("expected 4 tools, got %d", len(tools))
	}

	want := []string{"search", "deep_search", "get_direct_answer", "search_specific_domains"}
	for i, name := range want {
		if tools[i].Name != name {
			t.Errorf("expected tool %d to be %s, got %s", i, name, tools[i].Name)
		}
		if tools[i].Description == "" {
			t.Errorf("tool %s has empty description", name)
		}
	}
}

func TestDispatch_Search(t *testing.T) {
	fc := &fakeClient{response: json.RawMessage(`{"results":[{"title":"AI news"}]}`)}
	b := newTestBridge(fc)

	body, err := b.Dispatch(t.Context(), "search", Params{"query": "latest news on generative AI"})
	if err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if len(fc.requests) != 1 {
		t.Fatalf("expected exactly 1 outbound call, got %d", len(fc.requests))
	}
	req := fc.requests[0]
	if req.Query != "latest news on generative AI" {
		t.Errorf("expected query forwarded, got %q", req.Query)
	}
	if req.SearchDepth != tavily.DepthBasic {
		t.Errorf("expected basic depth, got %q", req.SearchDepth)
	}
	if req.MaxResults != 5 {
		t.Errorf("expected max_results 5, got %d", req.MaxResults)
	}
	if req.IncludeAnswer {
		t.Error("expected include_answer unset for search")
	}
	if len(req.IncludeDomains) != 0 {
		t.Errorf("expected no domain restriction, got %v", req.IncludeDomains)
	}

	if string(body) != `{"results":[{"title":"AI news"}]}` {
		t.Errorf("expected provider response relayed unchanged, got %s", string(body))
	}
}

func TestDispatch_DeepSearch(t *testing.T) {
	fc := &fakeClient{response: json.RawMessage(`{}`)}
	b := newTestBridge(fc)

	if _, err := b.Dispatch(t.Context(), "deep_search", Params{"query": "quantum error correction"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	if len(fc.requests) != 1 {
		t.Fatalf("expected exactly 1 outbound call, got %d", len(fc.requests))
	}
	req := fc.requests[0]
	if req.SearchDepth != tavily.DepthAdvanced {
		t.Errorf("expected advanced depth, got %q", req.SearchDepth)
	}
	if req.MaxResults != 8 {
		t.Errorf("expected max_results 8, got %d", req.MaxResults)
	}
}

func TestDispatch_GetDirectAnswer(t *testing.T) {
	fc := &fakeClient{response: json.RawMessage(`{"answer":"42"}`)}
	b := newTestBridge(fc)

	if _, err := b.Dispatch(t.Context(), "get_direct_answer", Params{"query": "what is the answer"}); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	req := fc.requests[0]
	if !req.IncludeAnswer {
		t.Error("expected include_answer set")
	}
	if req.SearchDepth != "" {
		t.Errorf("expected default depth, got %q", req.SearchDepth)
	}
}

func TestDispatch_SearchSpecificDomains(t *testing.T) {
	fc := &fakeClient{response: json.RawMessage(`{}`)}
	b := newTestBridge(fc)

	params := Params{
		"query":   "open source models",
		"domains": []interface{}{"github.com", "huggingface.co"},
	}
	if _, err := b.Dispatch(t.Context(), "search_specific_domains", params); err != nil {
		t.Fatalf("Dispatch failed: %v", err)
	}

	req := fc.requests[0]
	if !reflect.DeepEqual(req.IncludeDomains, []string{"github.com", "huggingface.co"}) {
		t.Errorf("expected domain restriction forwarded, got %v", req.IncludeDomains)
	}
	if req.MaxResults != 5 {
		t.Errorf("expected max_results 5, got %d", req.MaxResults)
	}
}

func TestDispatch_UnknownTool(t *testing.T) {
	fc := &fakeClient{response: json.RawMessage(`{}`)}
	b := newTestBridge(fc)

	_, err := b.Dispatch(t.Context(), "summarize", Params{"query": "q"})

	var invalidTool *InvalidToolError
	if !errors.As(err, &invalidTool) {
		t.Fatalf("expected InvalidToolError, got %v", err)
	}
	if invalidTool.Tool != "summarize" {
		t.Errorf("expected tool name in error, got %q", invalidTool.Tool)
	}
	if len(fc.requests) != 0 {
		t.Errorf("unknown tool must never issue an outbound call, got %d", len(fc.requests))
	}
}

func TestDispatch_MissingQuery(t *testing.T) {
	for _, tool := range []string{"search", "deep_search", "get_direct_answer", "search_specific_domains"} {
		fc := &fakeClient{response: json.RawMessage(`{}`)}
		b := newTestBridge(fc)

		_, err := b.Dispatch(t.Context(), tool, Params{})

		var missing *MissingParameterError
		if !errors.As(err, &missing) {
			t.Fatalf("%s: expected MissingParameterError, got %v", tool, err)
		}
		if missing.Param != "query" {
			t.Errorf("%s: expected missing query, got %q", tool, missing.Param)
		}
		if len(fc.requests) != 0 {
			t.Errorf("%s: validation failure must not reach the provider", tool)
		}
	}
}

func TestDispatch_EmptyQuery(t *testing.T) {
	fc := &fakeClient{response: json.RawMessage(`{}`)}
	b := newTestBridge(fc)

	_, err := b.Dispatch(t.Context(), "search", Params{"query": ""})

	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParameterError for empty query, got %v", err)
	}
}

func TestDispatch_NonStringQuery(t *testing.T) {
	fc := &fakeClient{response: json.RawMessage(`{}`)}
	b := newTestBridge(fc)

	_, err := b.Dispatch(t.Context(), "search", Params{"query": 42})

	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParameterError for non-string query, got %v", err)
	}
}

func TestDispatch_MissingDomains(t *testing.T) {
	fc := &fakeClient{response: json.RawMessage(`{}`)}
	b := newTestBridge(fc)

	_, err := b.Dispatch(t.Context(), "search_specific_domains", Params{"query": "q"})

	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParameterError, got %v", err)
	}
	if missing.Param != "domains" {
		t.Errorf("expected missing domains, got %q", missing.Param)
	}
	if len(fc.requests) != 0 {
		t.Error("validation failure must not reach the provider")
	}
}

func TestDispatch_EmptyDomains(t *testing.T) {
	fc := &fakeClient{response: json.RawMessage(`{}`)}
	b := newTestBridge(fc)

	_, err := b.Dispatch(t.Context(), "search_specific_domains", Params{
		"query":   "q",
		"domains": []interface{}{},
	})

	var missing *MissingParameterError
	if !errors.As(err, &missing) {
		t.Fatalf("expected MissingParameterError for empty domains, got %v", err)
	}
}

func TestDispatch_DomainsAsStringSlice(t *testing.T) {
	fc := &fakeClient{response: json.RawMessage(`{}`)}
	b := newTestBridge(fc)

	_, err := b.Dispatch(t.Context(), "search_specific_domains", Params{
		"query":   "q",
		"domains": []string{"example.org"},
	})
	if err != nil {
		t.Fatalf("expected []string domains accepted, got %v", err)
	}
	if !reflect.DeepEqual(fc.requests[0].IncludeDomains, []string{"example.org"}) {
		t.Errorf("expected domains forwarded, got %v", fc.requests[0].IncludeDomains)
	}
}

func TestDispatch_UpstreamFailure(t *testing.T) {
	cause := fmt.Errorf("tavily returned 500: internal error")
	fc := &fakeClient{err: cause}
	b := newTestBridge(fc)

	_, err := b.Dispatch(t.Context(), "search", Params{"query": "q"})

	var upstream *UpstreamError
	if !errors.As(err, &upstream) {
		t.Fatalf("expected UpstreamError, got %v", err)
	}
	if !errors.Is(err, cause) {
		t.Error("expected UpstreamError to wrap the cause")
	}
	if len(fc.requests) != 1 {
		t.Errorf("expected exactly 1 outbound attempt with no retry, got %d", len(fc.requests))
	}
}
