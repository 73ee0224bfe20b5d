package tavily

import "encoding/json"

// Bool returns a pointer to the given bool. Pointer booleans are used for
// request fields whose false value is meaningful and must still be sent.
func Bool(v bool) *bool {
	return &v
}

// SearchRequest holds the parameters for a search call. Optional fields are
// omitted from the payload when unset so the service's own defaults apply.
type SearchRequest struct {
	Query                    string   `json:"query"`
	MaxResults               int      `json:"max_results,omitempty"`
	SearchDepth              string   `json:"search_depth,omitempty"`
	Topic                    string   `json:"topic,omitempty"`
	TimeRange                string   `json:"time_range,omitempty"`
	StartDate                string   `json:"start_date,omitempty"`
	EndDate                  string   `json:"end_date,omitempty"`
	IncludeAnswer            bool     `json:"include_answer,omitempty"`
	IncludeImages            bool     `json:"include_images,omitempty"`
	IncludeImageDescriptions bool     `json:"include_image_descriptions,omitempty"`
	IncludeDomains           []string `json:"include_domains,omitempty"`
	ExcludeDomains           []string `json:"exclude_domains,omitempty"`
	Country                  string   `json:"country,omitempty"`

	// Timeout in seconds. Applied as a deadline on the HTTP call rather
	// than serialized into the payload.
	Timeout float64 `json:"-"`
}

// SearchResult is a single search hit.
type SearchResult struct {
	Title         string  `json:"title"`
	URL           string  `json:"url"`
	Content       string  `json:"content"`
	Score         float64 `json:"score,omitempty"`
	RawContent    string  `json:"raw_content,omitempty"`
	PublishedDate string  `json:"published_date,omitempty"`
	Favicon       string  `json:"favicon,omitempty"`
}

// SearchImage is an image attached to search results. The service returns
// bare URL strings unless image descriptions were requested, in which case
// it returns objects. Both wire forms decode into this type.
type SearchImage struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

func (i *SearchImage) UnmarshalJSON(data []byte) error {
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &i.URL)
	}
	type plain SearchImage
	var p plain
	if err := json.Unmarshal(data, &p); err != nil {
		return err
	}
	*i = SearchImage(p)
	return nil
}

// SearchResponse is the response to a search call.
type SearchResponse struct {
	Query        string         `json:"query"`
	Answer       string         `json:"answer,omitempty"`
	Images       []SearchImage  `json:"images,omitempty"`
	Results      []SearchResult `json:"results"`
	ResponseTime float64        `json:"response_time"`
	RequestID    string         `json:"request_id"`
}

// CrawlRequest holds the parameters for a crawl call. AllowExternal is a
// pointer so callers can force its presence in the payload even when false,
// since its default on the service side is true.
type CrawlRequest struct {
	URL             string   `json:"url"`
	MaxDepth        int      `json:"max_depth,omitempty"`
	MaxBreadth      int      `json:"max_breadth,omitempty"`
	Limit           int      `json:"limit,omitempty"`
	ExtractDepth    string   `json:"extract_depth,omitempty"`
	Format          string   `json:"format,omitempty"`
	ChunksPerSource int      `json:"chunks_per_source,omitempty"`
	Instructions    string   `json:"instructions,omitempty"`
	SelectPaths     []string `json:"select_paths,omitempty"`
	SelectDomains   []string `json:"select_domains,omitempty"`
	ExcludePaths    []string `json:"exclude_paths,omitempty"`
	ExcludeDomains  []string `json:"exclude_domains,omitempty"`
	AllowExternal   *bool    `json:"allow_external,omitempty"`
	IncludeImages   bool     `json:"include_images,omitempty"`
	IncludeFavicon  bool     `json:"include_favicon,omitempty"`

	// Timeout in seconds, applied as a deadline on the HTTP call.
	Timeout float64 `json:"-"`
}

// CrawlResult is the extracted content of one crawled page.
type CrawlResult struct {
	URL        string   `json:"url"`
	RawContent string   `json:"raw_content"`
	Images     []string `json:"images,omitempty"`
	Favicon    string   `json:"favicon,omitempty"`
}

// CrawlResponse is the response to a crawl call.
type CrawlResponse struct {
	BaseURL      string        `json:"base_url"`
	Results      []CrawlResult `json:"results"`
	ResponseTime float64       `json:"response_time"`
	RequestID    string        `json:"request_id"`
}

// ExtractRequest holds the parameters for an extract call.
type ExtractRequest struct {
	URLs            []string `json:"urls"`
	ExtractDepth    string   `json:"extract_depth,omitempty"`
	Format          string   `json:"format,omitempty"`
	ChunksPerSource int      `json:"chunks_per_source,omitempty"`
	IncludeImages   bool     `json:"include_images,omitempty"`
	IncludeFavicon  bool     `json:"include_favicon,omitempty"`
	Query           string   `json:"query,omitempty"`

	// Timeout in seconds, applied as a deadline on the HTTP call.
	Timeout float64 `json:"-"`
}

// ExtractResult is the extracted content of one URL.
type ExtractResult struct {
	URL        string   `json:"url"`
	RawContent string   `json:"raw_content"`
	Images     []string `json:"images,omitempty"`
	Favicon    string   `json:"favicon,omitempty"`
}

// ExtractFailedResult reports a URL that could not be extracted. Failed
// URLs are a normal response shape, not an error.
type ExtractFailedResult struct {
	URL   string `json:"url"`
	Error string `json:"error,omitempty"`
}

// ExtractResponse is the response to an extract call.
type ExtractResponse struct {
	Results       []ExtractResult       `json:"results"`
	FailedResults []ExtractFailedResult `json:"failed_results"`
	ResponseTime  float64               `json:"response_time"`
	RequestID     string                `json:"request_id"`
}

// MapRequest holds the parameters for a map call. AllowExternal follows
// the same pointer convention as CrawlRequest.
type MapRequest struct {
	URL            string   `json:"url"`
	MaxDepth       int      `json:"max_depth,omitempty"`
	MaxBreadth     int      `json:"max_breadth,omitempty"`
	Limit          int      `json:"limit,omitempty"`
	Instructions   string   `json:"instructions,omitempty"`
	SelectPaths    []string `json:"select_paths,omitempty"`
	SelectDomains  []string `json:"select_domains,omitempty"`
	ExcludePaths   []string `json:"exclude_paths,omitempty"`
	ExcludeDomains []string `json:"exclude_domains,omitempty"`
	AllowExternal  *bool    `json:"allow_external,omitempty"`

	// Timeout in seconds, applied as a deadline on the HTTP call.
	Timeout float64 `json:"-"`
}

// MapResponse is the response to a map call. Results is a flat list of
// discovered URLs.
type MapResponse struct {
	BaseURL      string   `json:"base_url"`
	Results      []string `json:"results"`
	ResponseTime float64  `json:"response_time"`
	RequestID    string   `json:"request_id"`
}
