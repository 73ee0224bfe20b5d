package tavily

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNew_APIKeyResolution(t *testing.T) {
	t.Run("explicit key", func(t *testing.T) {
		t.Setenv("TAVILY_API_KEY", "")
		client, err := New(WithAPIKey("explicit-key"))
		require.NoError(t, err)
		require.Equal(t, "explicit-key", client.apiKey)
	})

	t.Run("env fallback", func(t *testing.T) {
		t.Setenv("TAVILY_API_KEY", "env-key")
		client, err := New()
		require.NoError(t, err)
		require.Equal(t, "env-key", client.apiKey)
	})

	t.Run("missing key", func(t *testing.T) {
		t.Setenv("TAVILY_API_KEY", "")
		_, err := New()
		require.ErrorIs(t, err, ErrMissingAPIKey)
	})

	t.Run("env base url override", func(t *testing.T) {
		t.Setenv("TAVILY_API_URL", "https://tavily.example.com")
		client, err := New(WithAPIKey("k"))
		require.NoError(t, err)
		require.Equal(t, "https://tavily.example.com", client.baseURL)
	})
}

func TestClient_Search(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/search", r.URL.Path)
		require.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		require.Equal(t, "application/json", r.Header.Get("Content-Type"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"query":"cats","results":[{"title":"A","url":"http://a.com","content":"about cats"}],"response_time":0.5,"request_id":"r1"}`))
	}))
	defer server.Close()

	client, err := New(WithAPIKey("test-api-key"), WithBaseURL(server.URL))
	require.NoError(t, err)

	resp, err := client.Search(context.Background(), &SearchRequest{
		Query:       "cats",
		MaxResults:  5,
		SearchDepth: "basic",
		Topic:       "general",
		Timeout:     60,
	})
	require.NoError(t, err)

	// Unset optional fields must not appear in the payload, and the
	// timeout is never serialized.
	require.Equal(t, "cats", payload["query"])
	require.Equal(t, float64(5), payload["max_results"])
	require.Equal(t, "basic", payload["search_depth"])
	require.Equal(t, "general", payload["topic"])
	require.NotContains(t, payload, "timeout")
	require.NotContains(t, payload, "time_range")
	require.NotContains(t, payload, "include_answer")
	require.NotContains(t, payload, "include_domains")
	require.NotContains(t, payload, "country")

	require.Equal(t, "cats", resp.Query)
	require.Len(t, resp.Results, 1)
	require.Equal(t, "A", resp.Results[0].Title)
	require.Equal(t, 0.5, resp.ResponseTime)
	require.Equal(t, "r1", resp.RequestID)
	require.Empty(t, resp.Answer)
	require.Empty(t, resp.Images)
}

func TestClient_Search_OptionalFields(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"query":"q","results":[],"response_time":0.1,"request_id":"r2"}`))
	}))
	defer server.Close()

	client, err := New(WithAPIKey("k"), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), &SearchRequest{
		Query:          "q",
		TimeRange:      "week",
		IncludeAnswer:  true,
		IncludeDomains: []string{"example.com"},
		Country:        "france",
	})
	require.NoError(t, err)

	require.Equal(t, "week", payload["time_range"])
	require.Equal(t, true, payload["include_answer"])
	require.Equal(t, []any{"example.com"}, payload["include_domains"])
	require.Equal(t, "france", payload["country"])
}

func TestClient_Search_Validation(t *testing.T) {
	client, err := New(WithAPIKey("k"))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), &SearchRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "query is required")
}

func TestClient_Crawl_AllowExternalAlwaysSent(t *testing.T) {
	tests := []struct {
		name  string
		value bool
	}{
		{"true", true},
		{"false", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var payload map[string]any
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				require.Equal(t, "/crawl", r.URL.Path)
				require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
				w.Write([]byte(`{"base_url":"http://a.com","results":[{"url":"http://a.com","raw_content":"# A"}],"response_time":1.2,"request_id":"r3"}`))
			}))
			defer server.Close()

			client, err := New(WithAPIKey("k"), WithBaseURL(server.URL))
			require.NoError(t, err)

			resp, err := client.Crawl(context.Background(), &CrawlRequest{
				URL:           "http://a.com",
				MaxDepth:      1,
				AllowExternal: Bool(tt.value),
			})
			require.NoError(t, err)

			require.Contains(t, payload, "allow_external")
			require.Equal(t, tt.value, payload["allow_external"])
			require.NotContains(t, payload, "instructions")
			require.NotContains(t, payload, "select_paths")

			require.Equal(t, "http://a.com", resp.BaseURL)
			require.Len(t, resp.Results, 1)
			require.Equal(t, "r3", resp.RequestID)
		})
	}
}

func TestClient_Extract_PartialFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/extract", r.URL.Path)
		w.Write([]byte(`{"results":[{"url":"http://a.com","raw_content":"A content"}],"failed_results":[{"url":"http://b.com","error":"timeout"}],"response_time":2.0,"request_id":"r4"}`))
	}))
	defer server.Close()

	client, err := New(WithAPIKey("k"), WithBaseURL(server.URL))
	require.NoError(t, err)

	resp, err := client.Extract(context.Background(), &ExtractRequest{
		URLs: []string{"http://a.com", "http://b.com"},
	})
	require.NoError(t, err)
	require.Len(t, resp.Results, 1)
	require.Len(t, resp.FailedResults, 1)
	require.Equal(t, "http://b.com", resp.FailedResults[0].URL)
	require.Equal(t, "timeout", resp.FailedResults[0].Error)
}

func TestClient_Extract_Validation(t *testing.T) {
	client, err := New(WithAPIKey("k"))
	require.NoError(t, err)

	_, err = client.Extract(context.Background(), &ExtractRequest{})
	require.Error(t, err)
	require.Contains(t, err.Error(), "at least one url")
}

func TestClient_Map(t *testing.T) {
	var payload map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/map", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&payload))
		w.Write([]byte(`{"base_url":"http://a.com","results":["http://a.com/1","http://a.com/2"],"response_time":0.8,"request_id":"r5"}`))
	}))
	defer server.Close()

	client, err := New(WithAPIKey("k"), WithBaseURL(server.URL))
	require.NoError(t, err)

	resp, err := client.Map(context.Background(), &MapRequest{
		URL:           "http://a.com",
		AllowExternal: Bool(true),
	})
	require.NoError(t, err)

	require.Contains(t, payload, "allow_external")
	require.Len(t, resp.Results, 2)
	require.Equal(t, "http://a.com/1", resp.Results[0])
	require.Equal(t, "r5", resp.RequestID)
}

func TestClient_TimeoutIsPerRequest(t *testing.T) {
	t.Run("default client has no transport timeout", func(t *testing.T) {
		// Crawl and map default to 150s while search defaults to 60s. A
		// transport-level timeout on the shared client would cut long
		// crawls short, so the owned client must not carry one.
		client, err := New(WithAPIKey("k"))
		require.NoError(t, err)
		require.Zero(t, client.httpClient.Timeout)
	})

	t.Run("request timeout bounds a slow call", func(t *testing.T) {
		server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			time.Sleep(200 * time.Millisecond)
			w.Write([]byte(`{"base_url":"http://a.com","results":[],"response_time":0.1,"request_id":"r"}`))
		}))
		defer server.Close()

		client, err := New(WithAPIKey("k"), WithBaseURL(server.URL))
		require.NoError(t, err)

		_, err = client.Crawl(context.Background(), &CrawlRequest{
			URL:     "http://a.com",
			Timeout: 0.02,
		})
		require.Error(t, err)
		require.ErrorIs(t, err, context.DeadlineExceeded)

		resp, err := client.Crawl(context.Background(), &CrawlRequest{
			URL:     "http://a.com",
			Timeout: 5,
		})
		require.NoError(t, err)
		require.Equal(t, "r", resp.RequestID)
	})

	t.Run("WithTimeout sets the owned client's timeout", func(t *testing.T) {
		client, err := New(WithAPIKey("k"), WithTimeout(30*time.Second))
		require.NoError(t, err)
		require.Equal(t, 30*time.Second, client.httpClient.Timeout)
	})
}

func TestClient_ErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		w.Write([]byte(`{"error": "rate limit exceeded"}`))
	}))
	defer server.Close()

	client, err := New(WithAPIKey("k"), WithBaseURL(server.URL))
	require.NoError(t, err)

	_, err = client.Search(context.Background(), &SearchRequest{Query: "q"})
	require.Error(t, err)

	var apiErr *APIError
	require.ErrorAs(t, err, &apiErr)
	require.Equal(t, http.StatusTooManyRequests, apiErr.StatusCode)
	require.Contains(t, apiErr.Message, "rate limit exceeded")
}

func TestSearchImage_WireForms(t *testing.T) {
	t.Run("bare strings", func(t *testing.T) {
		var resp SearchResponse
		err := json.Unmarshal([]byte(`{"query":"q","results":[],"images":["http://img/1.png","http://img/2.png"],"response_time":0.1,"request_id":"r"}`), &resp)
		require.NoError(t, err)
		require.Len(t, resp.Images, 2)
		require.Equal(t, "http://img/1.png", resp.Images[0].URL)
		require.Empty(t, resp.Images[0].Description)
	})

	t.Run("objects with descriptions", func(t *testing.T) {
		var resp SearchResponse
		err := json.Unmarshal([]byte(`{"query":"q","results":[],"images":[{"url":"http://img/1.png","description":"a cat"}],"response_time":0.1,"request_id":"r"}`), &resp)
		require.NoError(t, err)
		require.Len(t, resp.Images, 1)
		require.Equal(t, "a cat", resp.Images[0].Description)
	})
}
