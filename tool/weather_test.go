package tool

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	ai "github.com/nninad/agentkit"
	"github.com/nninad/agentkit/deps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weatherBundle() *deps.Bundle {
	return deps.NewFrom(map[string]any{
		deps.KeyWeatherstackAPIKey: "test-key",
	})
}

func TestWeatherTool(t *testing.T) {
	var gotQuery, gotKey string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotQuery = r.URL.Query().Get("query")
		gotKey = r.URL.Query().Get("access_key")
		w.Write([]byte(`{
			"location": {"name":"Lisbon","country":"Portugal","region":"Lisboa","lat":"38.717","lon":"-9.133","localtime":"2026-08-30 14:00"},
			"current": {"temperature":28,"weather_descriptions":["Sunny"],"wind_speed":12,"humidity":54,"feelslike":29,"precip":0}
		}`))
	}))
	defer server.Close()

	d := NewWeatherTool(WithWeatherBaseURL(server.URL))
	assert.Equal(t, "get_weather", d.Tool.Name)
	assert.Equal(t, []string{deps.KeyWeatherstackAPIKey}, d.Requires)
	assert.Equal(t, 2, d.Retries)

	out, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "get_weather", Arguments: `{"location":"Lisbon"}`},
		weatherBundle())

	require.NoError(t, err)
	assert.Equal(t, "Lisbon", gotQuery)
	assert.Equal(t, "test-key", gotKey)

	var report map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &report))
	assert.Equal(t, "Lisbon", report["location"])
	assert.Equal(t, "Portugal", report["country"])
	assert.Equal(t, 28.0, report["temperature"])
	assert.Equal(t, []any{"Sunny"}, report["conditions"])
	assert.Equal(t, "2026-08-30 14:00", report["local_time"])
}

func TestWeatherTool_APIErrorInBody(t *testing.T) {
	// weatherstack reports failures inside a 200 response
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"success":false,"error":{"code":615,"info":"Your API request failed."}}`))
	}))
	defer server.Close()

	d := NewWeatherTool(WithWeatherBaseURL(server.URL))
	_, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "get_weather", Arguments: `{"location":"Nowhere"}`},
		weatherBundle())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "615")
	assert.Contains(t, err.Error(), "Your API request failed.")
}

func TestWeatherTool_HTTPStatusError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer server.Close()

	d := NewWeatherTool(WithWeatherBaseURL(server.URL))
	_, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "get_weather", Arguments: `{"location":"Lisbon"}`},
		weatherBundle())

	require.Error(t, err)
	assert.Contains(t, err.Error(), "502")
}
