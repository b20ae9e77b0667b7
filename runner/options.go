package runner

import (
	"time"

	ai "github.com/nninad/agentkit"
	"github.com/nninad/agentkit/deps"
)

// SystemPromptFunc produces a system prompt from the run's dependency
// bundle. It is evaluated once, at the start of each run.
type SystemPromptFunc func(b *deps.Bundle) string

// Options contains configuration for a run.
type Options struct {
	// MaxTurns limits the number of model round trips, including the
	// corrective turn after a schema rejection. Default is 10.
	MaxTurns int

	// ToolRetries is the number of additional attempts after a failed
	// tool execution, used when the tool's descriptor does not set its
	// own retry count. Default is 1.
	ToolRetries int

	// ToolRetryDelay is the pause between tool execution attempts.
	// Default is 0 (immediate retry).
	ToolRetryDelay time.Duration

	// HandlerTimeout bounds each individual tool execution.
	// A value of 0 means no per-handler timeout. Default is 30 seconds.
	HandlerTimeout time.Duration

	// Deps carries run-scoped dependencies (API keys, request date) into
	// tool handlers and the system prompt function.
	Deps *deps.Bundle

	// SystemPrompt is a static system prompt prepended to the
	// conversation.
	SystemPrompt string

	// SystemPromptFunc produces a dynamic system prompt from the
	// dependency bundle. When both are set, the static prompt comes
	// first.
	SystemPromptFunc SystemPromptFunc

	// ChatOptions are passed through to the underlying chat client.
	ChatOptions []ai.Option

	// Events is an optional channel for observing run progress.
	// Events are sent non-blocking; if the channel is full, events are dropped.
	Events chan<- Event
}

// Option is a functional option for configuring a run.
type Option func(*Options)

// WithMaxTurns sets the turn budget for the run. Default is 10.
func WithMaxTurns(n int) Option {
	return func(o *Options) {
		o.MaxTurns = n
	}
}

// WithToolRetries sets the default number of additional attempts after a
// failed tool execution. Tools whose descriptors set their own retry count
// keep it. Default is 1.
func WithToolRetries(n int) Option {
	return func(o *Options) {
		o.ToolRetries = n
	}
}

// WithToolRetryDelay sets the pause between tool execution attempts.
func WithToolRetryDelay(d time.Duration) Option {
	return func(o *Options) {
		o.ToolRetryDelay = d
	}
}

// WithHandlerTimeout sets the timeout for each individual tool execution.
// Default is 30 seconds. Set to 0 for no per-handler timeout.
func WithHandlerTimeout(d time.Duration) Option {
	return func(o *Options) {
		o.HandlerTimeout = d
	}
}

// WithDeps sets the dependency bundle for the run.
func WithDeps(b *deps.Bundle) Option {
	return func(o *Options) {
		o.Deps = b
	}
}

// WithSystemPrompt sets a static system prompt.
func WithSystemPrompt(prompt string) Option {
	return func(o *Options) {
		o.SystemPrompt = prompt
	}
}

// WithSystemPromptFunc sets a dynamic system prompt built from the
// dependency bundle at the start of the run.
func WithSystemPromptFunc(fn SystemPromptFunc) Option {
	return func(o *Options) {
		o.SystemPromptFunc = fn
	}
}

// WithChatOptions passes options through to the chat client.
// These options are applied to every chat call made during the run.
func WithChatOptions(opts ...ai.Option) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, opts...)
	}
}

// WithModel is a convenience option to set the model for chat calls.
func WithModel(model string) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, ai.WithModel(model))
	}
}

// WithTemperature is a convenience option to set temperature for chat calls.
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.ChatOptions = append(o.ChatOptions, ai.WithTemperature(t))
	}
}

// WithEvents sets the event channel for observing run progress.
func WithEvents(ch chan<- Event) Option {
	return func(o *Options) {
		o.Events = ch
	}
}

// ApplyOptions applies functional options to an Options struct with defaults.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{
		MaxTurns:       10,
		ToolRetries:    1,
		HandlerTimeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
