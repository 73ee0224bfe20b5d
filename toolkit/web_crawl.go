package toolkit

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"sync"

	"github.com/deepnoodle-ai/wonton/schema"
	"github.com/wordslab-org/webtools"
	"github.com/wordslab-org/webtools/tavily"
)

var (
	_ webtools.TypedTool[*WebCrawlInput]          = &WebCrawlTool{}
	_ webtools.TypedToolPreviewer[*WebCrawlInput] = &WebCrawlTool{}
)

const (
	// DefaultCrawlMaxDepth is the default crawl depth.
	DefaultCrawlMaxDepth = 1
	// DefaultCrawlMaxBreadth is the default number of links per level.
	DefaultCrawlMaxBreadth = 20
	// DefaultCrawlLimit is the default total number of links to process.
	DefaultCrawlLimit = 50
	// DefaultCrawlExtractDepth is "basic" or "advanced".
	DefaultCrawlExtractDepth = "basic"
	// DefaultCrawlFormat is "markdown" or "text".
	DefaultCrawlFormat = "markdown"
	// DefaultCrawlTimeout is the default crawl timeout in seconds. Crawls
	// take longer than single-page operations.
	DefaultCrawlTimeout = 150.0
	// DefaultCrawlChunksPerSource is the number of content chunks kept per
	// crawled page (1-5).
	DefaultCrawlChunksPerSource = 3
)

// WebCrawlInput represents the per-call parameters for the web_crawl tool.
type WebCrawlInput struct {
	// URL is the root URL to begin the crawl. Required.
	URL string `json:"url"`

	// Instructions are natural language guidance for the crawler.
	Instructions string `json:"instructions,omitempty"`

	// SelectPaths and SelectDomains are regex patterns limiting the crawl;
	// ExcludePaths and ExcludeDomains are regex patterns pruning it.
	SelectPaths    []string `json:"select_paths,omitempty"`
	SelectDomains  []string `json:"select_domains,omitempty"`
	ExcludePaths   []string `json:"exclude_paths,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`

	// AllowExternal permits following links to external domains. Unlike the
	// other optional fields it is always sent: it defaults to true when the
	// caller omits it, and an unset false would otherwise be
	// indistinguishable from the default.
	AllowExternal *bool `json:"allow_external,omitempty"`

	// IncludeImages and IncludeFavicon add image and favicon URLs to the
	// results.
	IncludeImages  bool `json:"include_images,omitempty"`
	IncludeFavicon bool `json:"include_favicon,omitempty"`
}

// WebCrawlResult is the projection of a crawl response.
type WebCrawlResult struct {
	BaseURL      string               `json:"base_url"`
	Results      []tavily.CrawlResult `json:"results"`
	ResponseTime float64              `json:"response_time"`
	RequestID    string               `json:"request_id"`
}

// WebCrawlState summarizes the tool's most recent and cumulative calls.
type WebCrawlState struct {
	LastBaseURL   string `json:"last_base_url,omitempty"`
	LastPageCount int    `json:"last_page_count"`
	TotalRequests int    `json:"total_requests"`
}

// WebCrawlToolOptions configures the behavior of [WebCrawlTool].
type WebCrawlToolOptions struct {
	// APIKey overrides the TAVILY_API_KEY environment variable.
	APIKey string `json:"api_key,omitempty"`

	// MaxDepth limits how many levels deep the crawl goes (default 1).
	MaxDepth int `json:"max_depth,omitempty"`

	// MaxBreadth limits the number of links followed per level (default 20).
	MaxBreadth int `json:"max_breadth,omitempty"`

	// Limit caps the total number of links processed (default 50).
	Limit int `json:"limit,omitempty"`

	// ExtractDepth is "basic" (default) or "advanced".
	ExtractDepth string `json:"extract_depth,omitempty"`

	// Format is "markdown" (default) or "text".
	Format string `json:"format,omitempty"`

	// Timeout in seconds for each crawl call (default 150).
	Timeout float64 `json:"timeout,omitempty"`

	// ChunksPerSource is the number of content chunks kept per page (1-5,
	// default 3).
	ChunksPerSource int `json:"chunks_per_source,omitempty"`

	// Client overrides the Tavily client, e.g. for testing.
	Client tavily.Crawler `json:"-"`
}

// WebCrawlTool crawls websites using the Tavily API, starting from a base
// URL and extracting content and metadata from linked pages.
type WebCrawlTool struct {
	apiKey          string
	maxDepth        int
	maxBreadth      int
	limit           int
	extractDepth    string
	format          string
	timeout         float64
	chunksPerSource int

	mu     sync.Mutex
	client tavily.Crawler
	state  WebCrawlState
}

// NewWebCrawlTool creates a new WebCrawlTool with the given options.
func NewWebCrawlTool(options WebCrawlToolOptions) *webtools.TypedToolAdapter[*WebCrawlInput] {
	if options.MaxDepth <= 0 {
		options.MaxDepth = DefaultCrawlMaxDepth
	}
	if options.MaxBreadth <= 0 {
		options.MaxBreadth = DefaultCrawlMaxBreadth
	}
	if options.Limit <= 0 {
		options.Limit = DefaultCrawlLimit
	}
	if options.ExtractDepth == "" {
		options.ExtractDepth = DefaultCrawlExtractDepth
	}
	if options.Format == "" {
		options.Format = DefaultCrawlFormat
	}
	if options.Timeout <= 0 {
		options.Timeout = DefaultCrawlTimeout
	}
	if options.ChunksPerSource <= 0 {
		options.ChunksPerSource = DefaultCrawlChunksPerSource
	}
	return webtools.ToolAdapter(&WebCrawlTool{
		apiKey:          options.APIKey,
		maxDepth:        options.MaxDepth,
		maxBreadth:      options.MaxBreadth,
		limit:           options.Limit,
		extractDepth:    options.ExtractDepth,
		format:          options.Format,
		timeout:         options.Timeout,
		chunksPerSource: options.ChunksPerSource,
		client:          options.Client,
	})
}

func (t *WebCrawlTool) Name() string {
	return "web_crawl"
}

func (t *WebCrawlTool) Description() string {
	return "Crawls a website starting from a base URL, extracting content and metadata from linked pages. Useful for gathering information from entire websites or specific sections."
}

func (t *WebCrawlTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"url"},
		Properties: map[string]*schema.Property{
			"url": {
				Type:        "string",
				Description: "The root URL to begin the crawl.",
			},
			"instructions": {
				Type:        "string",
				Description: "Natural language instructions for the crawler.",
			},
			"select_paths": {
				Type:        "array",
				Description: "Regex patterns to select specific paths.",
				Items:       &schema.Property{Type: "string"},
			},
			"select_domains": {
				Type:        "array",
				Description: "Regex patterns to select specific domains.",
				Items:       &schema.Property{Type: "string"},
			},
			"exclude_paths": {
				Type:        "array",
				Description: "Regex patterns to exclude specific paths.",
				Items:       &schema.Property{Type: "string"},
			},
			"exclude_domains": {
				Type:        "array",
				Description: "Regex patterns to exclude specific domains.",
				Items:       &schema.Property{Type: "string"},
			},
			"allow_external": {
				Type:        "boolean",
				Description: "Allow following links to external domains. Defaults to true on the service side.",
			},
			"include_images": {
				Type:        "boolean",
				Description: "Include image URLs in the results.",
			},
			"include_favicon": {
				Type:        "boolean",
				Description: "Include favicon URLs in the results.",
			},
		},
	}
}

func (t *WebCrawlTool) Annotations() *webtools.ToolAnnotations {
	return &webtools.ToolAnnotations{
		Title:         "Web Crawl",
		ReadOnlyHint:  true,
		OpenWorldHint: true,
	}
}

// PreviewCall returns a one-line summary of the crawl for permission
// prompts and logging.
func (t *WebCrawlTool) PreviewCall(ctx context.Context, input *WebCrawlInput) *webtools.ToolCallPreview {
	return &webtools.ToolCallPreview{
		Summary: fmt.Sprintf("Crawl %s", input.URL),
	}
}

// Call runs the crawl. Exactly one request is issued per call.
func (t *WebCrawlTool) Call(ctx context.Context, input *WebCrawlInput) (*webtools.ToolResult, error) {
	if input == nil || strings.TrimSpace(input.URL) == "" {
		return webtools.NewToolResultError("error: crawl url is required"), nil
	}
	client, err := t.crawler()
	if err != nil {
		return nil, err
	}

	allowExternal := true
	if input.AllowExternal != nil {
		allowExternal = *input.AllowExternal
	}

	resp, err := client.Crawl(ctx, &tavily.CrawlRequest{
		URL:             input.URL,
		MaxDepth:        t.maxDepth,
		MaxBreadth:      t.maxBreadth,
		Limit:           t.limit,
		ExtractDepth:    t.extractDepth,
		Format:          t.format,
		Timeout:         t.timeout,
		ChunksPerSource: t.chunksPerSource,
		Instructions:    input.Instructions,
		SelectPaths:     input.SelectPaths,
		SelectDomains:   input.SelectDomains,
		ExcludePaths:    input.ExcludePaths,
		ExcludeDomains:  input.ExcludeDomains,
		AllowExternal:   tavily.Bool(allowExternal),
		IncludeImages:   input.IncludeImages,
		IncludeFavicon:  input.IncludeFavicon,
	})
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.state.LastBaseURL = input.URL
	t.state.LastPageCount = len(resp.Results)
	t.state.TotalRequests++
	t.mu.Unlock()

	result := &WebCrawlResult{
		BaseURL:      resp.BaseURL,
		Results:      resp.Results,
		ResponseTime: resp.ResponseTime,
		RequestID:    resp.RequestID,
	}
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal crawl result: %w", err)
	}
	display := fmt.Sprintf("Crawled %s (%d pages)", input.URL, len(resp.Results))
	return webtools.NewToolResultText(string(data)).WithDisplay(display), nil
}

// State returns a copy of the tool's bookkeeping state.
func (t *WebCrawlTool) State() WebCrawlState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *WebCrawlTool) crawler() (tavily.Crawler, error) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.client != nil {
		return t.client, nil
	}
	var opts []tavily.ClientOption
	if t.apiKey != "" {
		opts = append(opts, tavily.WithAPIKey(t.apiKey))
	}
	client, err := tavily.New(opts...)
	if err != nil {
		return nil, err
	}
	t.client = client
	return t.client, nil
}
