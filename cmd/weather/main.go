// Command weather answers weather questions using the weatherstack tool
// and prints a structured conditions report.
//
// Usage:
//
//	go run ./cmd/weather [-model MODEL] LOCATION
//
// Requires WEATHERSTACK_API_KEY plus at least one model provider key in the
// environment or a .env file.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/joho/godotenv"
	"github.com/nninad/agentkit/client"
	"github.com/nninad/agentkit/deps"
	"github.com/nninad/agentkit/runner"
	"github.com/nninad/agentkit/tool"
)

// WeatherReport is the structured output of the weather agent.
type WeatherReport struct {
	Location      string  `json:"location" desc:"Resolved place name" required:"true"`
	LocalTime     string  `json:"local_time" desc:"Local date and time at the location"`
	Latitude      string  `json:"latitude" desc:"Latitude of the location"`
	Longitude     string  `json:"longitude" desc:"Longitude of the location"`
	Conditions    string  `json:"conditions" desc:"Weather conditions summary" required:"true"`
	Temperature   float64 `json:"temperature" desc:"Temperature in Celsius" required:"true"`
	FeelsLike     float64 `json:"feels_like" desc:"Feels-like temperature in Celsius"`
	Precipitation float64 `json:"precipitation" desc:"Precipitation in millimeters"`
}

func main() {
	godotenv.Load()

	model := flag.String("model", "", "model to use, e.g. claude-sonnet-4-5 or gpt-5.2")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: weather [-model MODEL] LOCATION")
		os.Exit(1)
	}
	location := strings.Join(flag.Args(), " ")

	weatherKey := os.Getenv("WEATHERSTACK_API_KEY")
	if weatherKey == "" {
		fmt.Fprintln(os.Stderr, "weather: WEATHERSTACK_API_KEY is not set")
		os.Exit(1)
	}

	c := client.New(client.Config{
		APIKeys: client.APIKeys{
			Anthropic: os.Getenv("ANTHROPIC_API_KEY"),
			OpenAI:    os.Getenv("OPENAI_API_KEY"),
			Google:    os.Getenv("GOOGLE_API_KEY"),
			Groq:      os.Getenv("GROQ_API_KEY"),
		},
		DefaultModel: defaultModel(*model),
	})

	registry := tool.NewRegistry().Add(tool.NewWeatherTool())

	r := runner.New(c, registry)

	report, result, err := runner.RunTyped[WeatherReport](context.Background(), r,
		fmt.Sprintf("What is the current weather in %s?", location),
		runner.WithDeps(deps.NewFrom(map[string]any{
			deps.KeyWeatherstackAPIKey: weatherKey,
		})),
		runner.WithSystemPrompt("You are a weather assistant. Use the get_weather tool for live conditions; never guess."),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "weather: %v\n", err)
		os.Exit(1)
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Location\t%s\n", report.Location)
	if report.LocalTime != "" {
		fmt.Fprintf(w, "Local time\t%s\n", report.LocalTime)
	}
	if report.Latitude != "" {
		fmt.Fprintf(w, "Coordinates\t%s, %s\n", report.Latitude, report.Longitude)
	}
	fmt.Fprintf(w, "Conditions\t%s\n", report.Conditions)
	fmt.Fprintf(w, "Temperature\t%.1f°C (feels like %.1f°C)\n", report.Temperature, report.FeelsLike)
	fmt.Fprintf(w, "Precipitation\t%.1f mm\n", report.Precipitation)
	w.Flush()

	fmt.Printf("\n(%d turns, %d input + %d output tokens)\n",
		result.Turns, result.Usage.InputTokens, result.Usage.OutputTokens)
}

func defaultModel(flagModel string) string {
	if flagModel != "" {
		return flagModel
	}
	switch {
	case os.Getenv("ANTHROPIC_API_KEY") != "":
		return "claude-sonnet-4-5"
	case os.Getenv("OPENAI_API_KEY") != "":
		return "gpt-5.2"
	case os.Getenv("GOOGLE_API_KEY") != "":
		return "gemini-2.5-flash"
	case os.Getenv("GROQ_API_KEY") != "":
		return "groq:llama-3.3-70b-versatile"
	default:
		return ""
	}
}
