package tool

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ai "github.com/nninad/agentkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleRSS = `<?xml version="1.0" encoding="UTF-8"?>
<rss version="2.0">
  <channel>
    <title>Yahoo! Finance: AAPL News</title>
    <item>
      <title>Apple announces new chip</title>
      <link>https://example.com/chip</link>
      <pubDate>Sat, 30 Aug 2026 12:00:00 GMT</pubDate>
      <description>Faster and cooler.</description>
    </item>
    <item>
      <title>Analysts raise targets</title>
      <link>https://example.com/targets</link>
      <pubDate>Sat, 30 Aug 2026 09:00:00 GMT</pubDate>
      <description></description>
    </item>
  </channel>
</rss>`

func TestFinanceNewsTool(t *testing.T) {
	var gotSymbol string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotSymbol = r.URL.Query().Get("s")
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	d := NewFinanceNewsTool(WithNewsBaseURL(server.URL))
	assert.Equal(t, "get_finance_news", d.Tool.Name)
	assert.Empty(t, d.Requires)

	out, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "get_finance_news", Arguments: `{"symbol":"AAPL"}`}, nil)

	require.NoError(t, err)
	assert.Equal(t, "AAPL", gotSymbol)

	var headlines []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &headlines))
	require.Len(t, headlines, 2)
	assert.Equal(t, "Apple announces new chip", headlines[0]["title"])
	assert.Equal(t, "https://example.com/chip", headlines[0]["link"])
	assert.Equal(t, "Sat, 30 Aug 2026 12:00:00 GMT", headlines[0]["published"])
}

func TestFinanceNewsTool_MaxItems(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(sampleRSS))
	}))
	defer server.Close()

	d := NewFinanceNewsTool(WithNewsBaseURL(server.URL), WithNewsMaxItems(1))

	out, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "get_finance_news", Arguments: `{"symbol":"AAPL"}`}, nil)

	require.NoError(t, err)
	var headlines []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &headlines))
	assert.Len(t, headlines, 1)
}

func TestFinanceNewsTool_EmptyFeed(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<?xml version="1.0"?><rss version="2.0"><channel></channel></rss>`))
	}))
	defer server.Close()

	d := NewFinanceNewsTool(WithNewsBaseURL(server.URL))

	out, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "get_finance_news", Arguments: `{"symbol":"ZZZZ"}`}, nil)

	require.NoError(t, err)
	assert.Contains(t, out, "no recent headlines")
}

func TestFinanceNewsTool_BadXML(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"this is": "not xml"}`))
	}))
	defer server.Close()

	d := NewFinanceNewsTool(WithNewsBaseURL(server.URL))

	_, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "get_finance_news", Arguments: `{"symbol":"AAPL"}`}, nil)

	assert.Error(t, err)
}
