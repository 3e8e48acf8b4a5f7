// Package tavily implements the outbound client for the Tavily search API.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/bobmcallan/tavily-bridge/internal/common"
)

// maxResponseSize caps the response body to prevent OOM from unexpectedly large responses.
const maxResponseSize = 10 << 20 // 10MB

// Client communicates with the Tavily search API.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
	logger     *common.Logger
}

// NewClient creates a new client targeting the given Tavily base URL.
// The timeout bounds each outbound request; there are no retries.
func NewClient(baseURL, apiKey string, timeout time.Duration, logger *common.Logger) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		logger: logger,
	}
}

// BaseURL returns the configured Tavily base URL.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Search performs one POST /search call and returns the raw JSON response.
// The API key is injected into the payload; the caller never supplies it.
func (c *Client) Search(ctx context.Context, searchReq SearchRequest) (json.RawMessage, error) {
	searchReq.APIKey = c.apiKey

	jsonData, err := json.Marshal(searchReq)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/search", bytes.NewReader(jsonData))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	c.logger.Debug().Str("query", searchReq.Query).Str("depth", searchReq.SearchDepth).Msg("tavily request")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	duration := time.Since(start)
	if err != nil {
		c.logger.Error().Int64("duration_ms", duration.Milliseconds()).Str("error", err.Error()).Msg("tavily request failed")
		return nil, fmt.Errorf("tavily request failed: %w", err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, maxResponseSize))
	if err != nil {
		return nil, fmt.Errorf("failed to read response: %w", err)
	}

	c.logger.Debug().Int("status", resp.StatusCode).Int64("duration_ms", duration.Milliseconds()).Msg("tavily response")

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, parseErrorResponse(resp.StatusCode, body)
	}

	if !json.Valid(body) {
		return nil, fmt.Errorf("tavily returned invalid JSON (%d bytes)", len(body))
	}

	return json.RawMessage(body), nil
}

// parseErrorResponse extracts a meaningful error message from an HTTP error response.
func parseErrorResponse(statusCode int, body []byte) error {
	var errResp struct {
		Error  string `json:"error"`
		Detail struct {
			Error string `json:"error"`
		} `json:"detail"`
	}
	if json.Unmarshal(body, &errResp) == nil {
		if errResp.Error != "" {
			return fmt.Errorf("tavily returned %d: %s", statusCode, errResp.Error)
		}
		if errResp.Detail.Error != "" {
			return fmt.Errorf("tavily returned %d: %s", statusCode, errResp.Detail.Error)
		}
	}
	return fmt.Errorf("tavily returned %d: %s", statusCode, string(body))
}
