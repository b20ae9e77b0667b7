// Command stocks researches a company using web search and Alpha Vantage
// market data, and prints an overview panel with a news table.
//
// Usage:
//
//	go run ./cmd/stocks [-model MODEL] COMPANY
//
// Requires ALPHAVANTAGE_API_KEY plus at least one model provider key in the
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

// NewsItem is one article in the research report.
type NewsItem struct {
	Title     string `json:"title" desc:"Article headline" required:"true"`
	Sentiment string `json:"sentiment" desc:"Overall sentiment" enum:"Bearish,Somewhat-Bearish,Neutral,Somewhat-Bullish,Bullish"`
	Published string `json:"published" desc:"Publication date"`
}

// StockReport is the structured output of the market research agent.
type StockReport struct {
	Symbol        string     `json:"symbol" desc:"Resolved ticker symbol" required:"true"`
	Company       string     `json:"company" desc:"Company name" required:"true"`
	Price         float64    `json:"price" desc:"Latest share price" required:"true"`
	ChangePercent string     `json:"change_percent" desc:"Daily change percentage, e.g. 1.23%"`
	Sector        string     `json:"sector" desc:"Company sector"`
	MarketCap     string     `json:"market_cap" desc:"Market capitalization"`
	PERatio       string     `json:"pe_ratio" desc:"Price to earnings ratio"`
	Summary       string     `json:"summary" desc:"Two-sentence research summary" required:"true"`
	News          []NewsItem `json:"news" desc:"Recent news with sentiment"`
}

func main() {
	godotenv.Load()

	model := flag.String("model", "", "model to use, e.g. claude-sonnet-4-5 or gpt-5.2")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: stocks [-model MODEL] COMPANY")
		os.Exit(1)
	}
	company := strings.Join(flag.Args(), " ")

	avKey := os.Getenv("ALPHAVANTAGE_API_KEY")
	if avKey == "" {
		fmt.Fprintln(os.Stderr, "stocks: ALPHAVANTAGE_API_KEY is not set")
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

	registry := tool.NewRegistry().Add(
		tool.NewSearchTool(),
		tool.NewStockQuoteTool(),
		tool.NewCompanyOverviewTool(),
		tool.NewNewsSentimentTool(),
	)

	r := runner.New(c, registry)

	report, result, err := runner.RunTyped[StockReport](context.Background(), r,
		fmt.Sprintf("Research the company %q: find its ticker symbol, current quote, fundamentals, and recent news sentiment.", company),
		runner.WithDeps(deps.NewFrom(map[string]any{
			deps.KeyAlphaVantageAPIKey: avKey,
		})),
		runner.WithSystemPrompt("You are a market research assistant. Resolve the ticker with web_search if you are unsure, then use the stock tools for live data; never guess figures."),
		runner.WithMaxTurns(15),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "stocks: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n%s (%s)\n\n", report.Company, report.Symbol)
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "Price\t%.2f (%s)\n", report.Price, report.ChangePercent)
	fmt.Fprintf(w, "Sector\t%s\n", report.Sector)
	fmt.Fprintf(w, "Market cap\t%s\n", report.MarketCap)
	fmt.Fprintf(w, "P/E ratio\t%s\n", report.PERatio)
	w.Flush()

	fmt.Printf("\n%s\n", report.Summary)

	if len(report.News) > 0 {
		fmt.Println("\nRecent news:")
		nw := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
		fmt.Fprintln(nw, "SENTIMENT\tPUBLISHED\tTITLE")
		for _, n := range report.News {
			fmt.Fprintf(nw, "%s\t%s\t%s\n", n.Sentiment, n.Published, n.Title)
		}
		nw.Flush()
	}

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
