package tool

import (
	"context"
	"encoding/json"
	"encoding/xml"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/nninad/agentkit/deps"
)

// NewsToolOption configures the finance news tool.
type NewsToolOption func(*newsToolConfig)

type newsToolConfig struct {
	client          *http.Client
	baseURL         string
	maxResponseSize int64
	timeout         time.Duration
	maxItems        int
}

// WithNewsHTTPClient sets a custom HTTP client.
func WithNewsHTTPClient(c *http.Client) NewsToolOption {
	return func(cfg *newsToolConfig) {
		cfg.client = c
	}
}

// WithNewsBaseURL overrides the Yahoo Finance RSS endpoint.
func WithNewsBaseURL(u string) NewsToolOption {
	return func(cfg *newsToolConfig) {
		cfg.baseURL = u
	}
}

// WithNewsTimeout sets the request timeout.
// Default is 30 seconds.
func WithNewsTimeout(d time.Duration) NewsToolOption {
	return func(cfg *newsToolConfig) {
		cfg.timeout = d
	}
}

// WithNewsMaxItems limits the number of headlines returned.
// Default is 10.
func WithNewsMaxItems(n int) NewsToolOption {
	return func(cfg *newsToolConfig) {
		cfg.maxItems = n
	}
}

func applyNewsOpts(opts []NewsToolOption) *newsToolConfig {
	cfg := &newsToolConfig{
		baseURL:         "https://feeds.finance.yahoo.com/rss/2.0/headline",
		maxResponseSize: 1024 * 1024, // 1MB
		timeout:         30 * time.Second,
		maxItems:        10,
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

// newsArgs defines arguments for the finance news tool.
type newsArgs struct {
	Symbol string `json:"symbol" desc:"Stock ticker symbol to fetch recent headlines for" required:"true"`
}

// rssFeed models the subset of RSS 2.0 used by the Yahoo Finance headline feed.
type rssFeed struct {
	Channel struct {
		Items []struct {
			Title   string `xml:"title"`
			Link    string `xml:"link"`
			PubDate string `xml:"pubDate"`
			Desc    string `xml:"description"`
		} `xml:"item"`
	} `xml:"channel"`
}

// NewFinanceNewsTool creates a tool that fetches recent headlines for a
// ticker symbol from the Yahoo Finance RSS feed. It requires no API key.
func NewFinanceNewsTool(opts ...NewsToolOption) Descriptor {
	cfg := applyNewsOpts(opts)

	handler := func(ctx context.Context, args newsArgs, b *deps.Bundle) (string, error) {
		q := url.Values{}
		q.Set("s", args.Symbol)
		q.Set("region", "US")
		q.Set("lang", "en-US")

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
			return "", fmt.Errorf("news feed returned status %d", resp.StatusCode)
		}

		var feed rssFeed
		if err := xml.Unmarshal(body, &feed); err != nil {
			return "", fmt.Errorf("failed to parse news feed: %w", err)
		}
		if len(feed.Channel.Items) == 0 {
			return fmt.Sprintf("no recent headlines for %q", args.Symbol), nil
		}

		type headline struct {
			Title     string `json:"title"`
			Link      string `json:"link"`
			Published string `json:"published"`
			Summary   string `json:"summary,omitempty"`
		}
		var headlines []headline
		for _, item := range feed.Channel.Items {
			if len(headlines) >= cfg.maxItems {
				break
			}
			headlines = append(headlines, headline{
				Title:     item.Title,
				Link:      item.Link,
				Published: item.PubDate,
				Summary:   item.Desc,
			})
		}

		out, err := json.Marshal(headlines)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	return Func("get_finance_news",
		"Get recent financial news headlines for a ticker symbol",
		handler,
		WithRetries(1),
	)
}
