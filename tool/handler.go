package tool

import (
	"context"

	ai "github.com/nninad/agentkit"
	"github.com/nninad/agentkit/deps"
)

// Handler is a function that executes a tool call and returns a result.
// The context supports cancellation and timeout.
// The call contains the tool name, ID, and arguments as a JSON string.
// The bundle carries run-scoped dependencies such as API keys; it may be nil
// when the tool declares no requirements.
// Returns the result content string, or an error if execution failed.
type Handler func(ctx context.Context, call ai.ToolCall, b *deps.Bundle) (string, error)

// TypedHandler is a function that executes a tool call with typed arguments.
// The args parameter is automatically unmarshaled from the tool call's JSON arguments.
type TypedHandler[T any] func(ctx context.Context, args T, b *deps.Bundle) (string, error)
