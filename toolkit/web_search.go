// Package toolkit provides web research tools backed by the Tavily API:
// search, crawl, extract, and map. Each tool implements webtools.TypedTool
// and keeps a small per-instance record of its most recent and cumulative
// calls.
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
	_ webtools.TypedTool[*WebSearchInput]          = &WebSearchTool{}
	_ webtools.TypedToolPreviewer[*WebSearchInput] = &WebSearchTool{}
)

const (
	// DefaultSearchMaxResults is the default number of search results.
	DefaultSearchMaxResults = 5
	// DefaultSearchDepth is the default search depth ("basic" or "advanced").
	DefaultSearchDepth = "basic"
	// DefaultSearchTimeout is the default search timeout in seconds.
	DefaultSearchTimeout = 60.0
)

// WebSearchInput represents the per-call parameters for the web_search tool.
type WebSearchInput struct {
	// Query is the search query. Required.
	Query string `json:"query"`

	// Topic selects the search category: "general", "news", or "finance".
	// Defaults to "general".
	Topic string `json:"topic,omitempty"`

	// TimeRange restricts results by recency: "day", "week", "month", "year".
	TimeRange string `json:"time_range,omitempty"`

	// StartDate and EndDate restrict results to a date window (YYYY-MM-DD).
	StartDate string `json:"start_date,omitempty"`
	EndDate   string `json:"end_date,omitempty"`

	// IncludeAnswer requests an LLM-generated answer alongside the results.
	IncludeAnswer bool `json:"include_answer,omitempty"`

	// IncludeImages requests image results; IncludeImageDescriptions adds
	// descriptions to them.
	IncludeImages            bool `json:"include_images,omitempty"`
	IncludeImageDescriptions bool `json:"include_image_descriptions,omitempty"`

	// IncludeDomains and ExcludeDomains filter results by domain.
	IncludeDomains []string `json:"include_domains,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`

	// Country boosts results from a specific country.
	Country string `json:"country,omitempty"`
}

// WebSearchResult is the projection of a search response.
type WebSearchResult struct {
	Query        string                `json:"query"`
	Results      []tavily.SearchResult `json:"results"`
	ResponseTime float64               `json:"response_time"`
	RequestID    string                `json:"request_id"`
	Answer       string                `json:"answer,omitempty"`
	Images       []tavily.SearchImage  `json:"images,omitempty"`
}

// WebSearchState summarizes the tool's most recent and cumulative calls.
// It has no effect on future call behavior.
type WebSearchState struct {
	LastQuery        string `json:"last_query,omitempty"`
	LastResultsCount int    `json:"last_results_count"`
	TotalRequests    int    `json:"total_requests"`
}

// WebSearchToolOptions configures the behavior of [WebSearchTool].
type WebSearchToolOptions struct {
	// APIKey overrides the TAVILY_API_KEY environment variable.
	APIKey string `json:"api_key,omitempty"`

	// MaxResults caps the number of results per search (default 5).
	MaxResults int `json:"max_results,omitempty"`

	// SearchDepth is "basic" (default) or "advanced".
	SearchDepth string `json:"search_depth,omitempty"`

	// Timeout in seconds for each search call (default 60).
	Timeout float64 `json:"timeout,omitempty"`

	// Client overrides the Tavily client, e.g. for testing.
	Client tavily.Searcher `json:"-"`
}

// WebSearchTool performs web searches using the Tavily API. Results include
// titles, URLs, content snippets, and relevance scores.
type WebSearchTool struct {
	apiKey      string
	maxResults  int
	searchDepth string
	timeout     float64

	mu     sync.Mutex
	client tavily.Searcher
	state  WebSearchState
}

// NewWebSearchTool creates a new WebSearchTool with the given options.
func NewWebSearchTool(options WebSearchToolOptions) *webtools.TypedToolAdapter[*WebSearchInput] {
	if options.MaxResults <= 0 {
		options.MaxResults = DefaultSearchMaxResults
	}
	if options.SearchDepth == "" {
		options.SearchDepth = DefaultSearchDepth
	}
	if options.Timeout <= 0 {
		options.Timeout = DefaultSearchTimeout
	}
	return webtools.ToolAdapter(&WebSearchTool{
		apiKey:      options.APIKey,
		maxResults:  options.MaxResults,
		searchDepth: options.SearchDepth,
		timeout:     options.Timeout,
		client:      options.Client,
	})
}

func (t *WebSearchTool) Name() string {
	return "web_search"
}

func (t *WebSearchTool) Description() string {
	return "Searches the web for information, news, or financial data. Results include titles, URLs, content snippets, and relevance scores."
}

func (t *WebSearchTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"query"},
		Properties: map[string]*schema.Property{
			"query": {
				Type:        "string",
				Description: "The search query.",
			},
			"topic": {
				Type:        "string",
				Description: "Search topic: 'general' (default), 'news', or 'finance'.",
				Enum:        []any{"general", "news", "finance"},
			},
			"time_range": {
				Type:        "string",
				Description: "Restrict results by recency: 'day', 'week', 'month', or 'year'.",
				Enum:        []any{"day", "week", "month", "year"},
			},
			"start_date": {
				Type:        "string",
				Description: "Only include results published after this date (YYYY-MM-DD).",
			},
			"end_date": {
				Type:        "string",
				Description: "Only include results published before this date (YYYY-MM-DD).",
			},
			"include_answer": {
				Type:        "boolean",
				Description: "Include an LLM-generated answer summarizing the results.",
			},
			"include_images": {
				Type:        "boolean",
				Description: "Include image results.",
			},
			"include_image_descriptions": {
				Type:        "boolean",
				Description: "Include descriptions for image results. Only meaningful with include_images.",
			},
			"include_domains": {
				Type:        "array",
				Description: "Only include results from these domains.",
				Items:       &schema.Property{Type: "string"},
			},
			"exclude_domains": {
				Type:        "array",
				Description: "Exclude results from these domains.",
				Items:       &schema.Property{Type: "string"},
			},
			"country": {
				Type:        "string",
				Description: "Boost results from a specific country (e.g. 'france').",
			},
		},
	}
}

func (t *WebSearchTool) Annotations() *webtools.ToolAnnotations {
	return &webtools.ToolAnnotations{
		Title:         "Web Search",
		ReadOnlyHint:  true,
		OpenWorldHint: true,
	}
}

// PreviewCall returns a one-line summary of the search for permission
// prompts and logging.
func (t *WebSearchTool) PreviewCall(ctx context.Context, input *WebSearchInput) *webtools.ToolCallPreview {
	return &webtools.ToolCallPreview{
		Summary: fmt.Sprintf("Search the web for %q", input.Query),
	}
}

// Call runs the search. Exactly one request is issued per call and exactly
// one result is returned.
func (t *WebSearchTool) Call(ctx context.Context, input *WebSearchInput) (*webtools.ToolResult, error) {
	if input == nil || strings.TrimSpace(input.Query) == "" {
		return webtools.NewToolResultError("error: search query is required"), nil
	}
	client, err := t.searcher()
	if err != nil {
		return nil, err
	}

	topic := input.Topic
	if topic == "" {
		topic = "general"
	}

	resp, err := client.Search(ctx, &tavily.SearchRequest{
		Query:                    input.Query,
		MaxResults:               t.maxResults,
		SearchDepth:              t.searchDepth,
		Topic:                    topic,
		Timeout:                  t.timeout,
		TimeRange:                input.TimeRange,
		StartDate:                input.StartDate,
		EndDate:                  input.EndDate,
		IncludeAnswer:            input.IncludeAnswer,
		IncludeImages:            input.IncludeImages,
		IncludeImageDescriptions: input.IncludeImageDescriptions,
		IncludeDomains:           input.IncludeDomains,
		ExcludeDomains:           input.ExcludeDomains,
		Country:                  input.Country,
	})
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	t.state.LastQuery = input.Query
	t.state.LastResultsCount = len(resp.Results)
	t.state.TotalRequests++
	t.mu.Unlock()

	result := &WebSearchResult{
		Query:        resp.Query,
		Results:      resp.Results,
		ResponseTime: resp.ResponseTime,
		RequestID:    resp.RequestID,
		Answer:       resp.Answer,
		Images:       resp.Images,
	}
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal search result: %w", err)
	}
	display := fmt.Sprintf("Searched the web for %q (%d results)", input.Query, len(resp.Results))
	return webtools.NewToolResultText(string(data)).WithDisplay(display), nil
}

// State returns a copy of the tool's bookkeeping state.
func (t *WebSearchTool) State() WebSearchState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// searcher returns the injected client, or lazily builds one. A missing
// API key surfaces here, before any network activity.
func (t *WebSearchTool) searcher() (tavily.Searcher, error) {
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
