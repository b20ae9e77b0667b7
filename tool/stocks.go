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

// StocksToolOption configures the Alpha Vantage stock tools.
type StocksToolOption func(*stocksToolConfig)

type stocksToolConfig struct {
	client          *http.Client
	baseURL         string
	maxResponseSize int64
	timeout         time.Duration
	newsLimit       int
}

// WithStocksHTTPClient sets a custom HTTP client.
func WithStocksHTTPClient(c *http.Client) StocksToolOption {
	return func(cfg *stocksToolConfig) {
		cfg.client = c
	}
}

// WithStocksBaseURL overrides the Alpha Vantage endpoint.
func WithStocksBaseURL(u string) StocksToolOption {
	return func(cfg *stocksToolConfig) {
		cfg.baseURL = u
	}
}

// WithStocksTimeout sets the request timeout.
// Default is 30 seconds.
func WithStocksTimeout(d time.Duration) StocksToolOption {
	return func(cfg *stocksToolConfig) {
		cfg.timeout = d
	}
}

// WithNewsLimit caps the number of news items returned by the sentiment tool.
// Default is 10.
func WithNewsLimit(n int) StocksToolOption {
	return func(cfg *stocksToolConfig) {
		cfg.newsLimit = n
	}
}

func applyStocksOpts(opts []StocksToolOption) *stocksToolConfig {
	cfg := &stocksToolConfig{
		baseURL:         "https://www.alphavantage.co/query",
		maxResponseSize: 2 * 1024 * 1024, // 2MB, news payloads are large
		timeout:         30 * time.Second,
		newsLimit:       10,
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

// query performs an Alpha Vantage request and returns the raw JSON body.
// Alpha Vantage signals errors and throttling inside 200 responses, so those
// markers are checked here.
func (cfg *stocksToolConfig) query(ctx context.Context, b *deps.Bundle, params url.Values) (map[string]json.RawMessage, error) {
	apiKey := b.GetString(deps.KeyAlphaVantageAPIKey)
	params.Set("apikey", apiKey)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, cfg.baseURL+"?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := cfg.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, cfg.maxResponseSize))
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("alphavantage returned status %d", resp.StatusCode)
	}

	var payload map[string]json.RawMessage
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to parse alphavantage response: %w", err)
	}

	for _, marker := range []string{"Error Message", "Note", "Information"} {
		if raw, ok := payload[marker]; ok {
			var msg string
			json.Unmarshal(raw, &msg)
			return nil, fmt.Errorf("alphavantage: %s", msg)
		}
	}

	return payload, nil
}

// tickerArgs is shared by the stock tools that take a single symbol.
type tickerArgs struct {
	Symbol string `json:"symbol" desc:"Stock ticker symbol, e.g. AAPL or MSFT" required:"true"`
}

// NewStockQuoteTool creates a tool that fetches the latest price quote for a
// ticker symbol from Alpha Vantage.
func NewStockQuoteTool(opts ...StocksToolOption) Descriptor {
	cfg := applyStocksOpts(opts)

	handler := func(ctx context.Context, args tickerArgs, b *deps.Bundle) (string, error) {
		params := url.Values{}
		params.Set("function", "GLOBAL_QUOTE")
		params.Set("symbol", args.Symbol)

		payload, err := cfg.query(ctx, b, params)
		if err != nil {
			return "", err
		}

		quote, ok := payload["Global Quote"]
		if !ok || string(quote) == "{}" {
			return "", fmt.Errorf("no quote data for symbol %q", args.Symbol)
		}
		return string(quote), nil
	}

	return Func("get_stock_quote",
		"Get the latest stock price quote for a ticker symbol",
		handler,
		WithRequires(deps.KeyAlphaVantageAPIKey),
		WithRetries(2),
	)
}

// NewCompanyOverviewTool creates a tool that fetches company fundamentals
// (sector, market cap, P/E ratio, description) for a ticker symbol.
func NewCompanyOverviewTool(opts ...StocksToolOption) Descriptor {
	cfg := applyStocksOpts(opts)

	handler := func(ctx context.Context, args tickerArgs, b *deps.Bundle) (string, error) {
		params := url.Values{}
		params.Set("function", "OVERVIEW")
		params.Set("symbol", args.Symbol)

		payload, err := cfg.query(ctx, b, params)
		if err != nil {
			return "", err
		}
		if len(payload) == 0 {
			return "", fmt.Errorf("no company data for symbol %q", args.Symbol)
		}

		out, err := json.Marshal(payload)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	return Func("get_company_overview",
		"Get company fundamentals (sector, market cap, P/E ratio, description) for a ticker symbol",
		handler,
		WithRequires(deps.KeyAlphaVantageAPIKey),
		WithRetries(2),
	)
}

// newsSentimentArgs defines arguments for the news sentiment tool.
type newsSentimentArgs struct {
	Symbol string `json:"symbol" desc:"Stock ticker symbol to fetch news and sentiment for" required:"true"`
	Topics string `json:"topics" desc:"Optional comma-separated topic filter, e.g. earnings,ipo,technology"`
}

// NewNewsSentimentTool creates a tool that fetches recent news articles with
// sentiment scores for a ticker symbol.
func NewNewsSentimentTool(opts ...StocksToolOption) Descriptor {
	cfg := applyStocksOpts(opts)

	handler := func(ctx context.Context, args newsSentimentArgs, b *deps.Bundle) (string, error) {
		params := url.Values{}
		params.Set("function", "NEWS_SENTIMENT")
		params.Set("tickers", args.Symbol)
		if args.Topics != "" {
			params.Set("topics", args.Topics)
		}
		params.Set("limit", fmt.Sprintf("%d", cfg.newsLimit))

		payload, err := cfg.query(ctx, b, params)
		if err != nil {
			return "", err
		}

		feed, ok := payload["feed"]
		if !ok {
			return "", fmt.Errorf("no news data for symbol %q", args.Symbol)
		}

		// Trim each article to the fields the model needs
		var articles []struct {
			Title         string `json:"title"`
			URL           string `json:"url"`
			TimePublished string `json:"time_published"`
			Summary       string `json:"summary"`
			Sentiment     string `json:"overall_sentiment_label"`
			Score         any    `json:"overall_sentiment_score"`
		}
		if err := json.Unmarshal(feed, &articles); err != nil {
			return "", fmt.Errorf("failed to parse news feed: %w", err)
		}
		if len(articles) > cfg.newsLimit {
			articles = articles[:cfg.newsLimit]
		}

		out, err := json.Marshal(articles)
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	return Func("get_news_sentiment",
		"Get recent news articles with sentiment scores for a ticker symbol",
		handler,
		WithRequires(deps.KeyAlphaVantageAPIKey),
		WithRetries(2),
	)
}
