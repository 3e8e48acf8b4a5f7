package tavily

// Search depth values accepted by the Tavily API.
const (
	DepthBasic    = "basic"
	DepthAdvanced = "advanced"
)

// SearchRequest is the JSON payload for POST /search on the Tavily API.
// The API key travels in the payload, matching the documented auth scheme.
type SearchRequest struct {
	Query          string   `json:"query"`
	APIKey         string   `json:"api_key,omitempty"`
	SearchDepth    string   `json:"search_depth,omitempty"`
	MaxResults     int      `json:"max_results,omitempty"`
	IncludeAnswer  bool     `json:"include_answer,omitempty"`
	IncludeDomains []string `json:"include_domains,omitempty"`
}
