package client

import (
	"context"
	"testing"

	ai "github.com/nninad/agentkit"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_NoModel(t *testing.T) {
	c := New(Config{})

	_, err := c.Chat(context.Background(), []ai.Message{ai.NewUserMessage("hi")})

	var noModel *ErrNoModel
	require.ErrorAs(t, err, &noModel)
	assert.Equal(t, "chat", noModel.Operation)
	assert.Contains(t, err.Error(), "DefaultModel")
}

func TestChat_MissingAPIKey(t *testing.T) {
	tests := []struct {
		name     string
		model    string
		provider string
	}{
		{"anthropic", "claude-sonnet-4-5", "anthropic"},
		{"openai", "gpt-5.2", "openai"},
		{"google", "gemini-2.5-flash", "google"},
		{"groq", "groq:llama-3.3-70b-versatile", "groq"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := New(Config{})

			_, err := c.Chat(context.Background(),
				[]ai.Message{ai.NewUserMessage("hi")},
				ai.WithModel(tt.model))

			var missing *ErrMissingAPIKey
			require.ErrorAs(t, err, &missing)
			assert.Equal(t, tt.provider, missing.Provider)
		})
	}
}

func TestChat_UnsupportedProvider(t *testing.T) {
	c := New(Config{DefaultModel: "llama-3.3-70b-versatile"})

	_, err := c.Chat(context.Background(), []ai.Message{ai.NewUserMessage("hi")})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported provider")
}

func TestChat_DefaultModelUsed(t *testing.T) {
	// The default model routes provider selection when the request names none
	c := New(Config{DefaultModel: "claude-sonnet-4-5"})

	_, err := c.Chat(context.Background(), []ai.Message{ai.NewUserMessage("hi")})

	var missing *ErrMissingAPIKey
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "anthropic", missing.Provider)
}

func TestChat_RequestModelOverridesDefault(t *testing.T) {
	c := New(Config{DefaultModel: "claude-sonnet-4-5"})

	_, err := c.Chat(context.Background(),
		[]ai.Message{ai.NewUserMessage("hi")},
		ai.WithModel("gpt-5.2"))

	var missing *ErrMissingAPIKey
	require.ErrorAs(t, err, &missing)
	assert.Equal(t, "openai", missing.Provider)
}

func TestErrMissingAPIKey_Error(t *testing.T) {
	withModel := &ErrMissingAPIKey{Provider: "anthropic", Model: "claude-sonnet-4-5"}
	assert.Contains(t, withModel.Error(), "anthropic")
	assert.Contains(t, withModel.Error(), "claude-sonnet-4-5")

	bare := &ErrMissingAPIKey{Provider: "google"}
	assert.Equal(t, "no API key configured for google", bare.Error())
}

func TestToSnakeCase(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"BookInfo", "book_info"},
		{"TravelGuide", "travel_guide"},
		{"URL", "u_r_l"},
		{"weather", "weather"},
		{"", ""},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, toSnakeCase(tt.in))
	}
}

func TestChatTyped_PropagatesChatError(t *testing.T) {
	type BookInfo struct {
		Title string `json:"title"`
	}

	c := New(Config{})

	_, err := ChatTyped[BookInfo](context.Background(), c,
		[]ai.Message{ai.NewUserMessage("hi")})

	var noModel *ErrNoModel
	assert.ErrorAs(t, err, &noModel)
}

func TestRetryConfigAliases(t *testing.T) {
	cfg := DefaultRetryConfig()
	assert.Equal(t, 10, cfg.MaxAttempts)

	disabled := DisabledRetryConfig()
	assert.Equal(t, 1, disabled.MaxAttempts)

	assert.True(t, IsTransientError(ai.NewTransientError("overloaded", 529, nil)))
	assert.False(t, IsTransientError(ai.NewPermanentError("forbidden", 403, nil)))
}
