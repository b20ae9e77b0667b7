package tool

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nninad/agentkit/deps"
)

// SearchToolOption configures the web search tool.
type SearchToolOption func(*searchToolConfig)

type searchToolConfig struct {
	client          *http.Client
	baseURL         string
	maxResponseSize int64
	timeout         time.Duration
	maxResults      int
}

// WithSearchHTTPClient sets a custom HTTP client.
func WithSearchHTTPClient(c *http.Client) SearchToolOption {
	return func(cfg *searchToolConfig) {
		cfg.client = c
	}
}

// WithSearchBaseURL overrides the DuckDuckGo endpoint.
func WithSearchBaseURL(u string) SearchToolOption {
	return func(cfg *searchToolConfig) {
		cfg.baseURL = u
	}
}

// WithSearchTimeout sets the request timeout.
// Default is 30 seconds.
func WithSearchTimeout(d time.Duration) SearchToolOption {
	return func(cfg *searchToolConfig) {
		cfg.timeout = d
	}
}

// WithSearchMaxResults limits the number of results returned.
// Default is 5.
func WithSearchMaxResults(n int) SearchToolOption {
	return func(cfg *searchToolConfig) {
		cfg.maxResults = n
	}
}

func applySearchOpts(opts []SearchToolOption) *searchToolConfig {
	cfg := &searchToolConfig{
		baseURL:         "https://api.duckduckgo.com/",
		maxResponseSize: 1024 * 1024, // 1MB
		timeout:         30 * time.Second,
		maxResults:      5,
	}
	for _, opt := range opts {
		opt(cfg)
	}
	if cfg.client == nil {
		cfg.client = &http.Client{
			Timeout: cfg.timeout,
		}
	}
	return cfg
}

// searchArgs defines arguments for the web search tool.
type searchArgs struct {
	Query string `json:"query" desc:"Search query, e.g. a company name to find its ticker symbol" required:"true"`
}

// ddgResponse is the subset of the DuckDuckGo instant answer payload used
// for search results.
type ddgResponse struct {
	AbstractText  string `json:"AbstractText"`
	AbstractURL   string `json:"AbstractURL"`
	Heading       string `json:"Heading"`
	RelatedTopics []struct {
		Text     string `json:"Text"`
		FirstURL string `json:"FirstURL"`
	} `json:"RelatedTopics"`
}

// NewSearchTool creates a web search tool backed by the DuckDuckGo instant
// answer API. It requires no API key, so Requires is empty.
func NewSearchTool(opts ...SearchToolOption) Descriptor {
	cfg := applySearchOpts(opts)

	handler := func(ctx context.Context, args searchArgs, b *deps.Bundle) (string, error) {
		q := url.Values{}
		q.Set("q", args.Query)
		q.Set("format", "json")
		q.Set("no_html", "1")
		q.Set("skip_disambig", "1")

		req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.baseURL+"?"+q.Encode(), nil)
		if err != nil {
			return "", err
		}

		resp, err := cfg.client.Do(req)
		if err != nil {
			return "", err
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(io.LimitReader(resp.Body, cfg.maxResponseSize))
		if err != nil {
			return "", err
		}
		if resp.StatusCode != http.StatusOK {
			return "", fmt.Errorf("duckduckgo returned status %d", resp.StatusCode)
		}

		var ddg ddgResponse
		if err := json.Unmarshal(body, &ddg); err != nil {
			return "", fmt.Errorf("failed to parse search response: %w", err)
		}

		type searchResult struct {
			Title string `json:"title"`
			Text  string `json:"text"`
			URL   string `json:"url"`
		}
		var results []searchResult
		if ddg.AbstractText != "" {
			results = append(results, searchResult{
				Title: ddg.Heading,
				Text:  ddg.AbstractText,
				URL:   ddg.AbstractURL,
			})
		}
		for _, topic := range ddg.RelatedTopics {
			if len(results) >= cfg.maxResults {
				break
			}
			if topic.Text != "" {
				results = append(results, searchResult{
					Text: topic.Text,
					URL:  topic.FirstURL,
				})
			}
		}
		if len(results) == 0 {
			return fmt.Sprintf("no results found for %q", args.Query), nil
		}

		out, err := json.Marshal(results)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	return Func("web_search",
		"Search the web for information, e.g. to find a company's stock ticker symbol",
		handler,
		WithRetries(1),
	)
}
