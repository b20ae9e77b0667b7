package agentkit

import (
	"context"
	"strings"
)

// Provider identifies an AI provider.
type Provider string

// String returns the provider identifier.
func (p Provider) String() string { return string(p) }

// Supported providers.
const (
	ProviderAnthropic Provider = "anthropic"
	ProviderOpenAI    Provider = "openai"
	ProviderGoogle    Provider = "google"
	ProviderGroq      Provider = "groq"
)

// ParseModel splits a model identifier into its provider and bare model name.
// Identifiers may carry an explicit "provider:" prefix, e.g.
// "groq:llama-3.3-70b-versatile". Without a prefix the provider is inferred
// from the model name ("claude-*", "gpt-*"/"o*", "gemini-*").
// Returns an empty provider when neither form resolves.
func ParseModel(model string) (Provider, string) {
	if prefix, name, ok := strings.Cut(model, ":"); ok {
		switch Provider(prefix) {
		case ProviderAnthropic, ProviderOpenAI, ProviderGoogle, ProviderGroq:
			return Provider(prefix), name
		}
	}
	switch {
	case strings.HasPrefix(model, "claude-"):
		return ProviderAnthropic, model
	case strings.HasPrefix(model, "gpt-"), strings.HasPrefix(model, "o1"), strings.HasPrefix(model, "o3"), strings.HasPrefix(model, "o4"):
		return ProviderOpenAI, model
	case strings.HasPrefix(model, "gemini-"):
		return ProviderGoogle, model
	}
	return "", model
}

// ChatProvider defines the interface for AI chat providers.
type ChatProvider interface {
	// Chat sends a conversation and returns a complete response.
	Chat(ctx context.Context, messages []Message, opts ...Option) (*Response, error)
}
