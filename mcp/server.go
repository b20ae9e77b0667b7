package mcp

import (
	"context"
	"encoding/json"
	"fmt"

	ai "github.com/nninad/agentkit"
	"github.com/nninad/agentkit/deps"
	"github.com/nninad/agentkit/tool"
	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

// ServerOption configures a Server.
type ServerOption func(*serverConfig)

type serverConfig struct {
	name    string
	version string
	bundle  *deps.Bundle
}

// WithName sets the server name reported to MCP clients.
func WithName(name string) ServerOption {
	return func(c *serverConfig) {
		c.name = name
	}
}

// WithVersion sets the server version reported to MCP clients.
func WithVersion(version string) ServerOption {
	return func(c *serverConfig) {
		c.version = version
	}
}

// WithDeps sets the dependency bundle passed to every tool handler.
// MCP clients cannot supply run-scoped dependencies, so the bundle is
// fixed at server construction.
func WithDeps(b *deps.Bundle) ServerOption {
	return func(c *serverConfig) {
		c.bundle = b
	}
}

// NewServer creates an MCP server that exposes the tools in a registry.
// Tools whose required bundle keys are not present in the configured bundle
// are skipped, since their handlers could never succeed.
func NewServer(registry *tool.Registry, opts ...ServerOption) *server.MCPServer {
	cfg := &serverConfig{
		name:    "agentkit-mcp-server",
		version: "1.0.0",
	}
	for _, opt := range opts {
		opt(cfg)
	}

	s := server.NewMCPServer(
		cfg.name,
		cfg.version,
		server.WithToolCapabilities(true),
	)

	for _, name := range registry.Names() {
		d, ok := registry.Get(name)
		if !ok || d.Handler == nil {
			continue
		}
		if !depsSatisfied(d, cfg.bundle) {
			continue
		}
		s.AddTool(ToMCPTool(d.Tool), createMCPHandler(registry, d.Tool.Name, cfg.bundle))
	}

	return s
}

func depsSatisfied(d tool.Descriptor, b *deps.Bundle) bool {
	for _, key := range d.Requires {
		if b == nil || !b.Has(key) {
			return false
		}
	}
	return true
}

// createMCPHandler adapts a registry tool to the MCP handler signature.
func createMCPHandler(registry *tool.Registry, name string, b *deps.Bundle) func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	return func(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		argsJSON := "{}"
		if req.Params.Arguments != nil {
			data, err := json.Marshal(req.Params.Arguments)
			if err != nil {
				return mcp.NewToolResultError(fmt.Sprintf("failed to marshal arguments: %v", err)), nil
			}
			argsJSON = string(data)
		}

		result, err := registry.Execute(ctx, ai.ToolCall{
			Name:      name,
			Arguments: argsJSON,
		}, b)
		if err != nil {
			return mcp.NewToolResultError(err.Error()), nil
		}

		return mcp.NewToolResultText(result.Content), nil
	}
}

// ServeStdio starts an MCP server that communicates over stdin/stdout.
// This is the standard transport for MCP servers invoked as subprocesses.
func ServeStdio(registry *tool.Registry, opts ...ServerOption) error {
	s := NewServer(registry, opts...)
	return server.ServeStdio(s)
}
