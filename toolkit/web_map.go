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
	_ webtools.TypedTool[*WebMapInput]          = &WebMapTool{}
	_ webtools.TypedToolPreviewer[*WebMapInput] = &WebMapTool{}
)

const (
	// DefaultMapMaxDepth is the default mapping depth.
	DefaultMapMaxDepth = 1
	// DefaultMapMaxBreadth is the default number of links per level.
	DefaultMapMaxBreadth = 20
	// DefaultMapLimit is the default total number of links to process.
	DefaultMapLimit = 50
	// DefaultMapTimeout is the default map timeout in seconds.
	DefaultMapTimeout = 150.0
)

// WebMapInput represents the per-call parameters for the web_map tool.
type WebMapInput struct {
	// URL is the root URL to begin the mapping. Required.
	URL string `json:"url"`

	// Instructions are natural language guidance for the crawler.
	Instructions string `json:"instructions,omitempty"`

	// SelectPaths and SelectDomains are regex patterns limiting the
	// mapping; ExcludePaths and ExcludeDomains are regex patterns pruning
	// it.
	SelectPaths    []string `json:"select_paths,omitempty"`
	SelectDomains  []string `json:"select_domains,omitempty"`
	ExcludePaths   []string `json:"exclude_paths,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`

	// AllowExternal permits following links to external domains. Always
	// sent; defaults to true when the caller omits it.
	AllowExternal *bool `json:"allow_external,omitempty"`
}

// WebMapResult is the projection of a map response. Results is a flat list
// of discovered URLs.
type WebMapResult struct {
	BaseURL      string   `json:"base_url"`
	Results      []string `json:"results"`
	ResponseTime float64  `json:"response_time"`
	RequestID    string   `json:"request_id"`
}

// WebMapState summarizes the tool's most recent and cumulative calls.
type WebMapState struct {
	LastBaseURL   string `json:"last_base_url,omitempty"`
	LastURLCount  int    `json:"last_url_count"`
	TotalRequests int    `json:"total_requests"`
}

// WebMapToolOptions configures the behavior of [WebMapTool].
type WebMapToolOptions struct {
	// APIKey overrides the TAVILY_API_KEY environment variable.
	APIKey string `json:"api_key,omitempty"`

	// MaxDepth limits how many levels deep the mapping goes (default 1).
	MaxDepth int `json:"max_depth,omitempty"`

	// MaxBreadth limits the number of links followed per level (default 20).
	MaxBreadth int `json:"max_breadth,omitempty"`

	// Limit caps the total number of links processed (default 50).
	Limit int `json:"limit,omitempty"`

	// Timeout in seconds for each map call (default 150).
	Timeout float64 `json:"timeout,omitempty"`

	// Client overrides the Tavily client, e.g. for testing.
	Client tavily.Mapper `json:"-"`
}

// WebMapTool generates sitemaps using the Tavily API, discovering the
// pages reachable from a base URL. Useful for understanding website
// structure and finding relevant pages.
type WebMapTool struct {
	apiKey     string
	maxDepth   int
	maxBreadth int
	limit      int
	timeout    float64

	mu     sync.Mutex
	client tavily.Mapper
	state  WebMapState
}

// NewWebMapTool creates a new WebMapTool with the given options.
func NewWebMapTool(options WebMapToolOptions) *webtools.TypedToolAdapter[*WebMapInput] {
	if options.MaxDepth <= 0 {
		options.MaxDepth = DefaultMapMaxDepth
	}
	if options.MaxBreadth <= 0 {
		options.MaxBreadth = DefaultMapMaxBreadth
	}
	if options.Limit <= 0 {
		options.Limit = DefaultMapLimit
	}
	if options.Timeout <= 0 {
		options.Timeout = DefaultMapTimeout
	}
	return webtools.ToolAdapter(&WebMapTool{
		apiKey:     options.APIKey,
		maxDepth:   options.MaxDepth,
		maxBreadth: options.MaxBreadth,
		limit:      options.Limit,
		timeout:    options.Timeout,
		client:     options.Client,
	})
}

func (t *WebMapTool) Name() string {
	return "web_map"
}

func (t *WebMapTool) Description() string {
	return "Discovers the pages linked from a base URL and returns a list of their URLs. Useful for understanding website structure and finding relevant pages."
}

func (t *WebMapTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"url"},
		Properties: map[string]*schema.Property{
			"url": {
				Type:        "string",
				Description: "The root URL to begin the mapping.",
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
		},
	}
}

func (t *WebMapTool) Annotations() *webtools.ToolAnnotations {
	return &webtools.ToolAnnotations{
		Title:         "Web Map",
		ReadOnlyHint:  true,
		OpenWorldHint: true,
	}
}

// PreviewCall returns a one-line summary of the mapping for permission
// prompts and logging.
func (t *WebMapTool) PreviewCall(ctx context.Context, input *WebMapInput) *webtools.ToolCallPreview {
	return &webtools.ToolCallPreview{
		Summary: fmt.Sprintf("Map the pages of %s", input.URL),
	}
}

// Call runs the mapping. Exactly one request is issued per call.
func (t *WebMapTool) Call(ctx context.Context, input *WebMapInput) (*webtools.ToolResult, error) {
	if input == nil || strings.TrimSpace(input.URL) == "" {
		return webtools.NewToolResultError("error: map url is required"), nil
	}
	client, err := t.mapper()
	if err != nil {
		return nil, err
	}

	allowExternal := true
	if input.AllowExternal != nil {
		allowExternal = *input.AllowExternal
	}

	resp, err := client.Map(ctx, &tavily.MapRequest{
		URL:            input.URL,
		MaxDepth:       t.maxDepth,
		MaxBreadth:     t.maxBreadth,
		Limit:          t.limit,
		Timeout:        t.timeout,
		Instructions:   input.Instructions,
		SelectPaths:    input.SelectPaths,
		SelectDomains:  input.SelectDomains,
		ExcludePaths:   input.ExcludePaths,
		ExcludeDomains: input.ExcludeDomains,
		AllowExternal:  tavily.Bool(allowExternal),
	})
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.state.LastBaseURL = input.URL
	t.state.LastURLCount = len(resp.Results)
	t.state.TotalRequests++
	t.mu.Unlock()

	result := &WebMapResult{
		BaseURL:      resp.BaseURL,
		Results:      resp.Results,
		ResponseTime: resp.ResponseTime,
		RequestID:    resp.RequestID,
	}
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal map result: %w", err)
	}
	display := fmt.Sprintf("Mapped %s (%d URLs)", input.URL, len(resp.Results))
	return webtools.NewToolResultText(string(data)).WithDisplay(display), nil
}

// State returns a copy of the tool's bookkeeping state.
func (t *WebMapTool) State() WebMapState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *WebMapTool) mapper() (tavily.Mapper, error) {
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
