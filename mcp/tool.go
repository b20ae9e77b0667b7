// Package mcp exposes a tool.Registry over the Model Context Protocol,
// allowing MCP clients such as Claude Desktop to discover and call the
// registry's tools.
//
//	registry := tool.NewRegistry().Add(
//	    tool.NewWeatherTool(),
//	    tool.NewStockQuoteTool(),
//	)
//
//	bundle := deps.NewFrom(map[string]any{
//	    deps.KeyWeatherstackAPIKey: os.Getenv("WEATHERSTACK_API_KEY"),
//	})
//
//	if err := mcp.ServeStdio(registry, mcp.WithDeps(bundle)); err != nil {
//	    log.Fatal(err)
//	}
package mcp

import (
	ai "github.com/nninad/agentkit"
	"github.com/mark3labs/mcp-go/mcp"
)

// ToMCPTool converts an agentkit Tool to an MCP Tool.
// The Tool.Parameters JSON schema is used as the MCP Tool's RawInputSchema.
func ToMCPTool(t ai.Tool) mcp.Tool {
	return mcp.NewToolWithRawSchema(t.Name, t.Description, t.Parameters)
}

// ToMCPTools converts a slice of agentkit Tools to MCP Tools.
func ToMCPTools(tools []ai.Tool) []mcp.Tool {
	result := make([]mcp.Tool, len(tools))
	for i, t := range tools {
		result[i] = ToMCPTool(t)
	}
	return result
}
