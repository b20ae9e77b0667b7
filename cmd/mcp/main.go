// Command mcp exposes the shipped data tools as an MCP server over stdio,
// so MCP clients such as Claude Desktop can call them directly.
//
// Usage:
//
//	go run ./cmd/mcp
//
// Tools requiring API keys (weather, stock data) are only registered when
// the corresponding key is present in the environment or a .env file.
package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"
	"github.com/nninad/agentkit/deps"
	"github.com/nninad/agentkit/mcp"
	"github.com/nninad/agentkit/tool"
)

func main() {
	godotenv.Load()

	registry := tool.NewRegistry().Add(
		tool.NewSearchTool(),
		tool.NewFinanceNewsTool(),
		tool.NewWeatherTool(),
		tool.NewStockQuoteTool(),
		tool.NewCompanyOverviewTool(),
		tool.NewNewsSentimentTool(),
	)

	bundle := deps.New()
	if key := os.Getenv("WEATHERSTACK_API_KEY"); key != "" {
		bundle.Set(deps.KeyWeatherstackAPIKey, key)
	}
	if key := os.Getenv("ALPHAVANTAGE_API_KEY"); key != "" {
		bundle.Set(deps.KeyAlphaVantageAPIKey, key)
	}

	if err := mcp.ServeStdio(registry,
		mcp.WithName("agentkit-tools"),
		mcp.WithVersion("1.0.0"),
		mcp.WithDeps(bundle),
	); err != nil {
		log.Fatal(err)
	}
}
