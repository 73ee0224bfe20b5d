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
	_ webtools.TypedTool[*WebExtractInput]          = &WebExtractTool{}
	_ webtools.TypedToolPreviewer[*WebExtractInput] = &WebExtractTool{}
)

const (
	// DefaultExtractDepth is "basic" or "advanced".
	DefaultExtractDepth = "basic"
	// DefaultExtractFormat is "markdown" or "text".
	DefaultExtractFormat = "markdown"
	// DefaultExtractChunksPerSource is the number of content chunks kept
	// per extracted page (1-5).
	DefaultExtractChunksPerSource = 3
)

// URLList is a list of URLs that also accepts a single bare string on the
// wire, since callers frequently pass one URL.
type URLList []string

func (u *URLList) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*u = URLList{s}
		return nil
	}
	var list []string
	if err := json.Unmarshal(data, &list); err != nil {
		return err
	}
	*u = URLList(list)
	return nil
}

// WebExtractInput represents the per-call parameters for the web_extract
// tool.
type WebExtractInput struct {
	// URLs to extract content from. A single URL string is also accepted.
	// Required.
	URLs URLList `json:"urls"`

	// IncludeImages and IncludeFavicon add image and favicon URLs to the
	// results.
	IncludeImages  bool `json:"include_images,omitempty"`
	IncludeFavicon bool `json:"include_favicon,omitempty"`

	// Query reranks the extracted content chunks by relevance.
	Query string `json:"query,omitempty"`
}

// WebExtractResult is the projection of an extract response. URLs that
// fail to extract appear in FailedResults; partial failure is a normal
// response shape, not an error.
type WebExtractResult struct {
	Results       []tavily.ExtractResult       `json:"results"`
	FailedResults []tavily.ExtractFailedResult `json:"failed_results"`
	ResponseTime  float64                      `json:"response_time"`
	RequestID     string                       `json:"request_id"`
}

// WebExtractState summarizes the tool's most recent and cumulative calls.
type WebExtractState struct {
	LastURLs         []string `json:"last_urls,omitempty"`
	LastSuccessCount int      `json:"last_success_count"`
	LastFailureCount int      `json:"last_failure_count"`
	TotalRequests    int      `json:"total_requests"`
}

// WebExtractToolOptions configures the behavior of [WebExtractTool].
type WebExtractToolOptions struct {
	// APIKey overrides the TAVILY_API_KEY environment variable.
	APIKey string `json:"api_key,omitempty"`

	// ExtractDepth is "basic" (default) or "advanced".
	ExtractDepth string `json:"extract_depth,omitempty"`

	// Format is "markdown" (default) or "text".
	Format string `json:"format,omitempty"`

	// Timeout in seconds for each extract call. Zero defers to the
	// service's own default.
	Timeout float64 `json:"timeout,omitempty"`

	// ChunksPerSource is the number of content chunks kept per page (1-5,
	// default 3).
	ChunksPerSource int `json:"chunks_per_source,omitempty"`

	// Client overrides the Tavily client, e.g. for testing.
	Client tavily.Extractor `json:"-"`
}

// WebExtractTool extracts content from web pages using the Tavily API.
// Returns cleaned content, images, and metadata for each successfully
// extracted page.
type WebExtractTool struct {
	apiKey          string
	extractDepth    string
	format          string
	timeout         float64
	chunksPerSource int

	mu     sync.Mutex
	client tavily.Extractor
	state  WebExtractState
}

// NewWebExtractTool creates a new WebExtractTool with the given options.
func NewWebExtractTool(options WebExtractToolOptions) *webtools.TypedToolAdapter[*WebExtractInput] {
	if options.ExtractDepth == "" {
		options.ExtractDepth = DefaultExtractDepth
	}
	if options.Format == "" {
		options.Format = DefaultExtractFormat
	}
	if options.ChunksPerSource <= 0 {
		options.ChunksPerSource = DefaultExtractChunksPerSource
	}
	return webtools.ToolAdapter(&WebExtractTool{
		apiKey:          options.APIKey,
		extractDepth:    options.ExtractDepth,
		format:          options.Format,
		timeout:         options.Timeout,
		chunksPerSource: options.ChunksPerSource,
		client:          options.Client,
	})
}

func (t *WebExtractTool) Name() string {
	return "web_extract"
}

func (t *WebExtractTool) Description() string {
	return "Extracts and parses content from one or more web pages. Returns cleaned content, images, and metadata for each successfully extracted page."
}

func (t *WebExtractTool) Schema() *schema.Schema {
	return &schema.Schema{
		Type:     "object",
		Required: []string{"urls"},
		Properties: map[string]*schema.Property{
			"urls": {
				Type:        "array",
				Description: "URL or list of URLs to extract content from.",
				Items:       &schema.Property{Type: "string"},
			},
			"include_images": {
				Type:        "boolean",
				Description: "Include image URLs in the results.",
			},
			"include_favicon": {
				Type:        "boolean",
				Description: "Include favicon URLs in the results.",
			},
			"query": {
				Type:        "string",
				Description: "Query used to rerank the extracted content chunks.",
			},
		},
	}
}

func (t *WebExtractTool) Annotations() *webtools.ToolAnnotations {
	return &webtools.ToolAnnotations{
		Title:         "Web Extract",
		ReadOnlyHint:  true,
		OpenWorldHint: true,
	}
}

// PreviewCall returns a one-line summary of the extraction for permission
// prompts and logging.
func (t *WebExtractTool) PreviewCall(ctx context.Context, input *WebExtractInput) *webtools.ToolCallPreview {
	var summary string
	switch len(input.URLs) {
	case 1:
		summary = fmt.Sprintf("Extract content from %s", input.URLs[0])
	default:
		summary = fmt.Sprintf("Extract content from %d URLs", len(input.URLs))
	}
	return &webtools.ToolCallPreview{Summary: summary}
}

// Call runs the extraction. Exactly one request is issued per call.
func (t *WebExtractTool) Call(ctx context.Context, input *WebExtractInput) (*webtools.ToolResult, error) {
	if input == nil || len(input.URLs) == 0 {
		return webtools.NewToolResultError("error: at least one url is required"), nil
	}
	for _, u := range input.URLs {
		if strings.TrimSpace(u) == "" {
			return webtools.NewToolResultError("error: urls must be non-empty"), nil
		}
	}
	client, err := t.extractor()
	if err != nil {
		return nil, err
	}

	resp, err := client.Extract(ctx, &tavily.ExtractRequest{
		URLs:            input.URLs,
		ExtractDepth:    t.extractDepth,
		Format:          t.format,
		Timeout:         t.timeout,
		ChunksPerSource: t.chunksPerSource,
		IncludeImages:   input.IncludeImages,
		IncludeFavicon:  input.IncludeFavicon,
		Query:           input.Query,
	})
	if err != nil {
		return nil, err
	}

	t.mu.Lock()
	// Copy so a caller mutating its input slice cannot alter recorded state.
	t.state.LastURLs = append([]string(nil), input.URLs...)
	t.state.LastSuccessCount = len(resp.Results)
	t.state.LastFailureCount = len(resp.FailedResults)
	t.state.TotalRequests++
	t.mu.Unlock()

	result := &WebExtractResult{
		Results:       resp.Results,
		FailedResults: resp.FailedResults,
		ResponseTime:  resp.ResponseTime,
		RequestID:     resp.RequestID,
	}
	data, err := json.Marshal(result)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal extract result: %w", err)
	}
	display := fmt.Sprintf("Extracted %d of %d URLs", len(resp.Results), len(input.URLs))
	return webtools.NewToolResultText(string(data)).WithDisplay(display), nil
}

// State returns a copy of the tool's bookkeeping state.
func (t *WebExtractTool) State() WebExtractState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

func (t *WebExtractTool) extractor() (tavily.Extractor, error) {
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
