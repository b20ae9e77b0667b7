package agentkit

import "encoding/json"

// ResponseSchema describes the structured output the model must produce.
type ResponseSchema struct {
	// Name identifies the schema (some providers require it).
	Name string
	// Description explains the expected output to the model.
	Description string
	// Schema is the JSON Schema the final answer must satisfy.
	Schema json.RawMessage
	// Strict requests strict schema adherence where the provider supports it.
	Strict bool
}

// Options contains configuration for a chat request.
type Options struct {
	Model       string
	MaxTokens   int
	Temperature *float64

	// Tools declares functions the model may call.
	Tools []Tool
	// ToolChoice controls how the model uses the declared tools.
	ToolChoice ToolChoice
	// ResponseSchema requests schema-constrained JSON output.
	ResponseSchema *ResponseSchema
}

// Option is a functional option for configuring chat requests.
type Option func(*Options)

// WithModel sets the model to use for the request.
func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithMaxTokens sets the maximum number of tokens to generate.
func WithMaxTokens(n int) Option {
	return func(o *Options) {
		o.MaxTokens = n
	}
}

// WithTemperature sets the sampling temperature (0.0 to 2.0).
func WithTemperature(t float64) Option {
	return func(o *Options) {
		o.Temperature = &t
	}
}

// WithTools declares the tools available to the model for this request.
func WithTools(tools []Tool) Option {
	return func(o *Options) {
		o.Tools = tools
	}
}

// WithToolChoice controls how the model uses the declared tools.
func WithToolChoice(choice ToolChoice) Option {
	return func(o *Options) {
		o.ToolChoice = choice
	}
}

// WithResponseSchema requests structured JSON output matching the schema.
func WithResponseSchema(schema ResponseSchema) Option {
	return func(o *Options) {
		o.ResponseSchema = &schema
	}
}

// ApplyOptions applies functional options to an Options struct.
func ApplyOptions(opts ...Option) *Options {
	o := &Options{}
	for _, opt := range opts {
		opt(o)
	}
	return o
}
