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

// WeatherToolOption configures the weather tool.
type WeatherToolOption func(*weatherToolConfig)

type weatherToolConfig struct {
	client          *http.Client
	baseURL         string
	maxResponseSize int64
	timeout         time.Duration
}

// WithWeatherHTTPClient sets a custom HTTP client.
func WithWeatherHTTPClient(c *http.Client) WeatherToolOption {
	return func(cfg *weatherToolConfig) {
		cfg.client = c
	}
}

// WithWeatherBaseURL overrides the weatherstack endpoint.
func WithWeatherBaseURL(u string) WeatherToolOption {
	return func(cfg *weatherToolConfig) {
		cfg.baseURL = u
	}
}

// WithWeatherTimeout sets the request timeout.
// Default is 30 seconds.
func WithWeatherTimeout(d time.Duration) WeatherToolOption {
	return func(cfg *weatherToolConfig) {
		cfg.timeout = d
	}
}

func applyWeatherOpts(opts []WeatherToolOption) *weatherToolConfig {
	cfg := &weatherToolConfig{
		baseURL:         "https://api.weatherstack.com/current",
		maxResponseSize: 1024 * 1024, // 1MB
		timeout:         30 * time.Second,
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

// weatherArgs defines arguments for the weather tool.
type weatherArgs struct {
	Location string `json:"location" desc:"City or place name to get current weather for" required:"true"`
}

// weatherstackResponse is the subset of the weatherstack payload the tool
// reports back to the model.
type weatherstackResponse struct {
	Location struct {
		Name      string `json:"name"`
		Country   string `json:"country"`
		Region    string `json:"region"`
		Lat       string `json:"lat"`
		Lon       string `json:"lon"`
		LocalTime string `json:"localtime"`
	} `json:"location"`
	Current struct {
		Temperature  int      `json:"temperature"`
		Descriptions []string `json:"weather_descriptions"`
		WindSpeed    int      `json:"wind_speed"`
		Humidity     int      `json:"humidity"`
		FeelsLike    int      `json:"feelslike"`
		Precip       float64  `json:"precip"`
	} `json:"current"`
	Error *struct {
		Code int    `json:"code"`
		Info string `json:"info"`
	} `json:"error"`
}

// NewWeatherTool creates a tool that reports current weather conditions via
// the weatherstack API. The API key is read from the run's dependency bundle
// under deps.KeyWeatherstackAPIKey.
func NewWeatherTool(opts ...WeatherToolOption) Descriptor {
	cfg := applyWeatherOpts(opts)

	handler := func(ctx context.Context, args weatherArgs, b *deps.Bundle) (string, error) {
		apiKey := b.GetString(deps.KeyWeatherstackAPIKey)

		q := url.Values{}
		q.Set("access_key", apiKey)
		q.Set("query", args.Location)

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
			return "", fmt.Errorf("weatherstack returned status %d", resp.StatusCode)
		}

		var ws weatherstackResponse
		if err := json.Unmarshal(body, &ws); err != nil {
			return "", fmt.Errorf("failed to parse weatherstack response: %w", err)
		}
		// weatherstack reports API errors in a 200 body
		if ws.Error != nil {
			return "", fmt.Errorf("weatherstack error %d: %s", ws.Error.Code, ws.Error.Info)
		}

		out, err := json.Marshal(map[string]any{
			"location":      ws.Location.Name,
			"region":        ws.Location.Region,
			"country":       ws.Location.Country,
			"latitude":      ws.Location.Lat,
			"longitude":     ws.Location.Lon,
			"local_time":    ws.Location.LocalTime,
			"temperature":   ws.Current.Temperature,
			"feels_like":    ws.Current.FeelsLike,
			"conditions":    ws.Current.Descriptions,
			"wind_speed":    ws.Current.WindSpeed,
			"humidity":      ws.Current.Humidity,
			"precipitation": ws.Current.Precip,
		})
		if err != nil {
			return "", err
		}
		return string(out), nil
	}

	return Func("get_weather",
		"Get the current weather conditions for a location",
		handler,
		WithRequires(deps.KeyWeatherstackAPIKey),
		WithRetries(2),
	)
}
