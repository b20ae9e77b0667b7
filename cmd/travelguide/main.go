// Command travelguide extracts a structured list of tourist places for a
// city, shaped by interactive travel preferences.
//
// Usage:
//
//	go run ./cmd/travelguide [-model MODEL] CITY
//
// API keys are read from the environment (or a .env file): set at least one
// of ANTHROPIC_API_KEY, OPENAI_API_KEY, GOOGLE_API_KEY, GROQ_API_KEY.
package main

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"
	"time"

	"github.com/joho/godotenv"
	"github.com/nninad/agentkit/client"
	"github.com/nninad/agentkit/deps"
	"github.com/nninad/agentkit/runner"
)

// TouristPlace is one recommended destination.
type TouristPlace struct {
	Name        string  `json:"name" desc:"Name of the tourist place" required:"true"`
	Description string  `json:"description" desc:"One-sentence description" required:"true"`
	ZipCode     string  `json:"zip_code" desc:"Postal code of the place"`
	EntryFee    float64 `json:"entry_fee" desc:"Entry fee in local currency, 0 if free"`
	Rating      float64 `json:"rating" desc:"Visitor rating from 0 to 5" minimum:"0" maximum:"5" required:"true"`
}

// TravelGuide is the structured output for a city.
type TravelGuide struct {
	City   string         `json:"city" desc:"The city these places are in" required:"true"`
	Places []TouristPlace `json:"places" desc:"Recommended tourist places" required:"true"`
}

var reader = bufio.NewReader(os.Stdin)

func main() {
	godotenv.Load()

	model := flag.String("model", "", "model to use, e.g. claude-sonnet-4-5 or gpt-5.2")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: travelguide [-model MODEL] CITY")
		os.Exit(1)
	}
	city := strings.Join(flag.Args(), " ")

	placeType := prompt("What kind of places do you like (museums, parks, food, nightlife)? ", "varied")
	count := promptInt("How many places would you like? ", 5)

	bundle := deps.NewFrom(map[string]any{
		deps.KeyCurrentDate: time.Now(),
		"place_type":        placeType,
		"place_count":       count,
	})

	c := client.New(client.Config{
		APIKeys: client.APIKeys{
			Anthropic: os.Getenv("ANTHROPIC_API_KEY"),
			OpenAI:    os.Getenv("OPENAI_API_KEY"),
			Google:    os.Getenv("GOOGLE_API_KEY"),
			Groq:      os.Getenv("GROQ_API_KEY"),
		},
		DefaultModel: defaultModel(*model),
	})

	r := runner.New(c, nil)

	guide, result, err := runner.RunTyped[TravelGuide](context.Background(), r,
		fmt.Sprintf("Recommend tourist places to visit in %s.", city),
		runner.WithDeps(bundle),
		runner.WithSystemPromptFunc(travelSystemPrompt),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "travelguide: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\nTop places in %s:\n\n", guide.City)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tRATING\tFEE\tZIP\tDESCRIPTION")
	for _, p := range guide.Places {
		fee := "free"
		if p.EntryFee > 0 {
			fee = fmt.Sprintf("%.2f", p.EntryFee)
		}
		fmt.Fprintf(w, "%s\t%.1f\t%s\t%s\t%s\n", p.Name, p.Rating, fee, p.ZipCode, p.Description)
	}
	w.Flush()

	fmt.Printf("\n(%d turns, %d input + %d output tokens)\n",
		result.Turns, result.Usage.InputTokens, result.Usage.OutputTokens)
}

// travelSystemPrompt builds the system prompt from the traveler's
// preferences in the bundle.
func travelSystemPrompt(b *deps.Bundle) string {
	now := b.GetTime(deps.KeyCurrentDate)
	placeType := b.GetString("place_type")
	count := b.GetInt("place_count")

	var sb strings.Builder
	sb.WriteString("You are an experienced travel guide. ")
	fmt.Fprintf(&sb, "Recommend exactly %d places, favoring %s. ", count, placeType)
	if !now.IsZero() {
		fmt.Fprintf(&sb, "It is currently %s; prefer places enjoyable at this time of year. ", now.Format("January 2006"))
	}
	sb.WriteString("Ratings must be between 0 and 5.")
	return sb.String()
}

func prompt(question, fallback string) string {
	fmt.Print(question)
	answer, _ := reader.ReadString('\n')
	answer = strings.TrimSpace(answer)
	if answer == "" {
		return fallback
	}
	return answer
}

func promptInt(question string, fallback int) int {
	answer := prompt(question, "")
	n, err := strconv.Atoi(answer)
	if err != nil || n <= 0 {
		return fallback
	}
	return n
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
