// Package chat provides the canonical chat client interface.
//
// This package exists so the runner and tool packages can depend on a
// shared interface without import cycles. The
// [github.com/nninad/agentkit/client.Client] type implements it, as does
// any ai.ChatProvider.
package chat

import (
	"context"

	ai "github.com/nninad/agentkit"
)

// Client defines the interface for high-level chat clients.
type Client interface {
	// Chat sends a conversation and returns a complete response.
	Chat(ctx context.Context, messages []ai.Message, opts ...ai.Option) (*ai.Response, error)
}
