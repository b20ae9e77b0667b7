package tool

import (
	"context"
	"encoding/json"
	"sync"

	ai "github.com/nninad/agentkit"
	"github.com/nninad/agentkit/deps"
)

// Descriptor holds a tool definition together with its handler and
// execution policy.
type Descriptor struct {
	// Tool is the definition sent to the model.
	Tool ai.Tool

	// Handler executes the tool call.
	Handler Handler

	// Requires lists bundle keys that must be present before the handler
	// runs. A missing key aborts the run rather than producing an error
	// result, since no amount of model retrying can supply it.
	Requires []string

	// Retries is the number of additional attempts after a failed
	// execution before the error is surfaced to the model. Zero means a
	// single attempt.
	Retries int
}

// Registry manages registered tools and their handlers.
// It is safe for concurrent use.
type Registry struct {
	mu    sync.RWMutex
	tools map[string]Descriptor
}

// NewRegistry creates an empty tool registry.
func NewRegistry() *Registry {
	return &Registry{
		tools: make(map[string]Descriptor),
	}
}

// Register adds a tool descriptor to the registry.
// Returns an error if a tool with the same name is already registered.
func (r *Registry) Register(d Descriptor) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.tools[d.Tool.Name]; exists {
		return &ErrToolAlreadyRegistered{Name: d.Tool.Name}
	}

	r.tools[d.Tool.Name] = d
	return nil
}

// MustRegister is like Register but panics on error.
func (r *Registry) MustRegister(d Descriptor) {
	if err := r.Register(d); err != nil {
		panic(err)
	}
}

// Add registers one or more tools to the registry.
// Panics if any tool is already registered.
// Returns the registry for fluent chaining.
//
// Example:
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("weather", "Get weather", weatherFn),
//	    tool.Func("search", "Search web", searchFn),
//	)
func (r *Registry) Add(descs ...Descriptor) *Registry {
	for _, d := range descs {
		r.MustRegister(d)
	}
	return r
}

// Unregister removes a tool from the registry.
// It is a no-op if the tool is not registered.
func (r *Registry) Unregister(name string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	delete(r.tools, name)
}

// Get retrieves a descriptor by tool name.
// Returns the descriptor and true if found, or a zero descriptor and false
// if not found.
func (r *Registry) Get(name string) (Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	d, ok := r.tools[name]
	return d, ok
}

// Tools returns all registered tool definitions.
// This is used to pass the tools to the ChatProvider.
func (r *Registry) Tools() []ai.Tool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	tools := make([]ai.Tool, 0, len(r.tools))
	for _, d := range r.tools {
		tools = append(tools, d.Tool)
	}
	return tools
}

// Names returns the names of all registered tools.
func (r *Registry) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, 0, len(r.tools))
	for name := range r.tools {
		names = append(names, name)
	}
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.tools)
}

// Execute resolves a tool call by name and runs its handler. An
// unregistered name yields ErrToolNotFound and a handler failure yields
// ErrToolExecution wrapping the cause; whether a failure is retried or
// surfaced to the model is the caller's policy, not the registry's.
func (r *Registry) Execute(ctx context.Context, call ai.ToolCall, b *deps.Bundle) (ai.ToolResult, error) {
	d, ok := r.Get(call.Name)
	if !ok {
		return ai.ToolResult{}, &ErrToolNotFound{Name: call.Name}
	}

	content, err := d.Handler(ctx, call, b)
	if err != nil {
		return ai.ToolResult{}, &ErrToolExecution{Name: call.Name, Err: err}
	}

	return ai.ToolResult{
		ToolCallID: call.ID,
		Content:    content,
	}, nil
}

// DescriptorOption configures a Descriptor built by Func, WithHandler, or
// WithTool.
type DescriptorOption func(*Descriptor)

// WithRequires declares bundle keys that must be present before the tool runs.
func WithRequires(keys ...string) DescriptorOption {
	return func(d *Descriptor) {
		d.Requires = append(d.Requires, keys...)
	}
}

// WithRetries sets the number of additional attempts after a failed execution.
func WithRetries(n int) DescriptorOption {
	return func(d *Descriptor) {
		d.Retries = n
	}
}

// Func creates a Descriptor with automatic schema generation from the typed handler.
// Panics if schema generation fails.
//
// Example:
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("weather", "Get weather", func(ctx context.Context, args WeatherArgs, b *deps.Bundle) (string, error) {
//	        return getWeather(args.Location), nil
//	    }),
//	)
func Func[T any](name, description string, fn TypedHandler[T], opts ...DescriptorOption) Descriptor {
	schema := MustSchemaFor[T]()
	handler := func(ctx context.Context, call ai.ToolCall, b *deps.Bundle) (string, error) {
		var args T
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return "", err
		}
		return fn(ctx, args, b)
	}
	d := Descriptor{
		Tool: ai.Tool{
			Name:        name,
			Description: description,
			Parameters:  schema,
		},
		Handler: handler,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// WithHandler creates a Descriptor from a Handler and schema.
// Use this when you have a pre-built Handler implementation.
func WithHandler(name, description string, schema json.RawMessage, h Handler, opts ...DescriptorOption) Descriptor {
	d := Descriptor{
		Tool: ai.Tool{
			Name:        name,
			Description: description,
			Parameters:  schema,
		},
		Handler: h,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}

// WithTool creates a Descriptor from an existing Tool and Handler.
// Use this when you have pre-built tool definitions.
func WithTool(t ai.Tool, h Handler, opts ...DescriptorOption) Descriptor {
	d := Descriptor{
		Tool:    t,
		Handler: h,
	}
	for _, opt := range opts {
		opt(&d)
	}
	return d
}
