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

func TestSearchTool(t *testing.T) {
	var gotQuery string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("q")
		assert.Equal(t, "json", r.URL.Query().Get("format"))
		w.Write([]byte(`{
			"Heading": "Apple Inc.",
			"AbstractText": "Apple Inc. is an American technology company. Ticker: AAPL.",
			"AbstractURL": "https://en.wikipedia.org/wiki/Apple_Inc.",
			"RelatedTopics": [
				{"Text": "Apple Park - headquarters", "FirstURL": "https://example.com/park"},
				{"Text": "", "FirstURL": "https://example.com/empty"}
			]
		}`))
	}))
	defer server.Close()

	d := NewSearchTool(WithSearchBaseURL(server.URL))
	assert.Equal(t, "web_search", d.Tool.Name)
	assert.Empty(t, d.Requires, "search needs no API key")

	out, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "web_search", Arguments: `{"query":"Apple ticker symbol"}`},
		nil)

	require.NoError(t, err)
	assert.Equal(t, "Apple ticker symbol", gotQuery)

	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	require.Len(t, results, 2, "empty related topics are skipped")
	assert.Equal(t, "Apple Inc.", results[0]["title"])
	assert.Contains(t, results[0]["text"], "AAPL")
}

func TestSearchTool_MaxResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{
			"RelatedTopics": [
				{"Text": "a", "FirstURL": "https://example.com/a"},
				{"Text": "b", "FirstURL": "https://example.com/b"},
				{"Text": "c", "FirstURL": "https://example.com/c"}
			]
		}`))
	}))
	defer server.Close()

	d := NewSearchTool(WithSearchBaseURL(server.URL), WithSearchMaxResults(2))

	out, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "web_search", Arguments: `{"query":"anything"}`}, nil)

	require.NoError(t, err)
	var results []map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results, 2)
}

func TestSearchTool_NoResults(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"AbstractText":"","RelatedTopics":[]}`))
	}))
	defer server.Close()

	d := NewSearchTool(WithSearchBaseURL(server.URL))

	out, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "web_search", Arguments: `{"query":"zxqvw"}`}, nil)

	// No results is an answer for the model, not a failure
	require.NoError(t, err)
	assert.Contains(t, out, "no results found")
	assert.Contains(t, out, "zxqvw")
}
