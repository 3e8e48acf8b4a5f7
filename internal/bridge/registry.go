package bridge

import "github.com/bobmcallan/tavily-bridge/internal/tavily"

// Tool describes one named operation exposed by the bridge: its public
// metadata plus the payload builder that maps validated parameters onto
// the provider request.
type Tool struct {
	Name            string
	Description     string
	RequiresDomains bool
	build           func(query string, domains []string) tavily.SearchRequest
}

// registry is the fixed vocabulary of tools, in presentation order.
// Depth and result-count flags per tool follow the provider mapping:
// basic depth for standard search, advanced for deep search, answer mode
// for direct questions, and include_domains for restricted search.
var registry = []Tool{
	{
		Name:        "search",
		Description: "Performs a standard, fast search using the Tavily AI search engine. Best for general queries and recent events.",
		build: func(query string, _ []string) tavily.SearchRequest {
			return tavily.SearchRequest{
				Query:       query,
				SearchDepth: tavily.DepthBasic,
				MaxResults:  5,
			}
		},
	},
	{
		Name:        "deep_search",
		Description: "Performs a comprehensive, in-depth search using the Tavily AI search engine. Slower but more thorough. Use for research or complex topics.",
		build: func(query string, _ []string) tavily.SearchRequest {
			return tavily.SearchRequest{
				Query:       query,
				SearchDepth: tavily.DepthAdvanced,
				MaxResults:  8,
			}
		},
	},
	{
		Name:        "get_direct_answer",
		Description: "Searches for a direct, conversational answer to a user's question. Use this when the user asks a direct question like 'What is...?' or 'How do I...?'.",
		build: func(query string, _ []string) tavily.SearchRequest {
			return tavily.SearchRequest{
				Query:         query,
				IncludeAnswer: true,
			}
		},
	},
	{
		Name:            "search_specific_domains",
		Description:     "Performs a search focused only on a specific list of domains. Provide the query and a list of websites to search within.",
		RequiresDomains: true,
		build: func(query string, domains []string) tavily.SearchRequest {
			return tavily.SearchRequest{
				Query:          query,
				IncludeDomains: domains,
				MaxResults:     5,
			}
		},
	},
}

// Tools returns the tool registry in presentation order.
func Tools() []Tool {
	result := make([]Tool, len(registry))
	copy(result, registry)
	return result
}
