// Command financenews answers questions about recent financial news for a
// company, resolving the ticker via web search and reading the Yahoo
// Finance headline feed.
//
// Usage:
//
//	go run ./cmd/financenews [-model MODEL] QUESTION...
//
// Requires at least one model provider key in the environment or a .env
// file. The news and search tools need no API keys.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/nninad/agentkit/client"
	"github.com/nninad/agentkit/runner"
	"github.com/nninad/agentkit/tool"
)

// NewsAnswer is the structured output of the news agent.
type NewsAnswer struct {
	Symbol    string   `json:"symbol" desc:"Ticker symbol the answer is about" required:"true"`
	Answer    string   `json:"answer" desc:"Free-text answer to the question" required:"true"`
	Headlines []string `json:"headlines" desc:"Headlines the answer draws on"`
}

func main() {
	godotenv.Load()

	model := flag.String("model", "", "model to use, e.g. claude-sonnet-4-5 or gpt-5.2")
	flag.Parse()

	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: financenews [-model MODEL] QUESTION...")
		os.Exit(1)
	}
	question := strings.Join(flag.Args(), " ")

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
		tool.NewFinanceNewsTool(),
	)

	r := runner.New(c, registry)

	answer, result, err := runner.RunTyped[NewsAnswer](context.Background(), r,
		question,
		runner.WithSystemPrompt("You are a financial news assistant. Resolve company names to ticker symbols with web_search, then fetch headlines with get_finance_news before answering."),
	)
	if err != nil {
		fmt.Fprintf(os.Stderr, "financenews: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("\n[%s] %s\n", answer.Symbol, answer.Answer)
	if len(answer.Headlines) > 0 {
		fmt.Println("\nHeadlines:")
		for _, h := range answer.Headlines {
			fmt.Printf("  - %s\n", h)
		}
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
