// Package tavily provides a client for the Tavily search, crawl, extract,
// and map APIs.
package tavily

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"
)

var (
	_ Searcher  = &Client{}
	_ Crawler   = &Client{}
	_ Extractor = &Client{}
	_ Mapper    = &Client{}
)

// ErrMissingAPIKey indicates that no API key was provided via options or
// the TAVILY_API_KEY environment variable.
var ErrMissingAPIKey = errors.New("tavily: no api key provided (set TAVILY_API_KEY or pass WithAPIKey)")

// APIError is returned when the Tavily API responds with a non-2xx status.
// The message carries the service's error body verbatim.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("tavily: request failed with status %d: %s", e.StatusCode, e.Message)
}

// Searcher runs web searches.
type Searcher interface {
	Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error)
}

// Crawler crawls websites starting from a base URL.
type Crawler interface {
	Crawl(ctx context.Context, req *CrawlRequest) (*CrawlResponse, error)
}

// Extractor extracts content from one or more URLs.
type Extractor interface {
	Extract(ctx context.Context, req *ExtractRequest) (*ExtractResponse, error)
}

// Mapper discovers the URLs reachable from a base URL.
type Mapper interface {
	Map(ctx context.Context, req *MapRequest) (*MapResponse, error)
}

// ClientOption is a function that modifies the client configuration.
type ClientOption func(*Client)

// WithAPIKey sets the API key for the client.
func WithAPIKey(apiKey string) ClientOption {
	return func(c *Client) {
		c.apiKey = apiKey
	}
}

// WithBaseURL sets the base URL for the client.
func WithBaseURL(baseURL string) ClientOption {
	return func(c *Client) {
		c.baseURL = baseURL
	}
}

// WithHTTPClient sets the HTTP client for the client.
func WithHTTPClient(httpClient *http.Client) ClientOption {
	return func(c *Client) {
		c.httpClient = httpClient
		c.ownsClient = false
	}
}

// WithTimeout sets the timeout for the default HTTP client.
// This option is ignored if a custom HTTP client is provided.
func WithTimeout(timeout time.Duration) ClientOption {
	return func(c *Client) {
		if c.ownsClient {
			c.httpClient = &http.Client{
				Timeout: timeout,
			}
		}
	}
}

// Client represents a Tavily API client.
type Client struct {
	apiKey     string
	baseURL    string
	httpClient *http.Client
	ownsClient bool
}

// New creates a new Tavily client with the provided options. The API key
// defaults to the TAVILY_API_KEY environment variable and the base URL may
// be overridden with TAVILY_API_URL. The default HTTP client carries no
// transport-level timeout; each call is bounded by its request timeout,
// applied as a context deadline, so crawl and map calls can run longer
// than search calls.
func New(opts ...ClientOption) (*Client, error) {
	c := &Client{
		apiKey:     os.Getenv("TAVILY_API_KEY"),
		baseURL:    "https://api.tavily.com",
		httpClient: &http.Client{},
		ownsClient: true,
	}
	for _, opt := range opts {
		opt(c)
	}
	if envURL := os.Getenv("TAVILY_API_URL"); envURL != "" {
		c.baseURL = envURL
	}
	if c.apiKey == "" {
		return nil, ErrMissingAPIKey
	}
	return c, nil
}

// Search runs a web search. Exactly one request is issued per call.
func (c *Client) Search(ctx context.Context, req *SearchRequest) (*SearchResponse, error) {
	if req == nil || req.Query == "" {
		return nil, fmt.Errorf("tavily: search query is required")
	}
	var out SearchResponse
	if err := c.post(ctx, "/search", req, req.Timeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Crawl crawls a website starting from the given base URL.
func (c *Client) Crawl(ctx context.Context, req *CrawlRequest) (*CrawlResponse, error) {
	if req == nil || req.URL == "" {
		return nil, fmt.Errorf("tavily: crawl url is required")
	}
	var out CrawlResponse
	if err := c.post(ctx, "/crawl", req, req.Timeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Extract extracts content from one or more URLs. URLs that fail to
// extract are reported in the response's FailedResults, not as an error.
func (c *Client) Extract(ctx context.Context, req *ExtractRequest) (*ExtractResponse, error) {
	if req == nil || len(req.URLs) == 0 {
		return nil, fmt.Errorf("tavily: at least one url is required")
	}
	var out ExtractResponse
	if err := c.post(ctx, "/extract", req, req.Timeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// Map discovers the URLs reachable from the given base URL.
func (c *Client) Map(ctx context.Context, req *MapRequest) (*MapResponse, error) {
	if req == nil || req.URL == "" {
		return nil, fmt.Errorf("tavily: map url is required")
	}
	var out MapResponse
	if err := c.post(ctx, "/map", req, req.Timeout, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// post performs one HTTP POST to the Tavily API and decodes the response.
// The timeout is applied as a context deadline rather than serialized into
// the payload, matching the behavior of the official SDKs.
func (c *Client) post(ctx context.Context, path string, body any, timeout float64, out any) error {
	if timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, time.Duration(timeout*float64(time.Second)))
		defer cancel()
	}
	bodyBytes, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("tavily: failed to marshal request body: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(bodyBytes))
	if err != nil {
		return fmt.Errorf("tavily: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("tavily: request failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("tavily: failed to read response body: %w", err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &APIError{
			StatusCode: resp.StatusCode,
			Message:    string(bytes.TrimSpace(respBody)),
		}
	}
	if err := json.Unmarshal(respBody, out); err != nil {
		return fmt.Errorf("tavily: failed to parse response: %w", err)
	}
	return nil
}
