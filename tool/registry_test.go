package tool

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	ai "github.com/nninad/agentkit"
	"github.com/nninad/agentkit/deps"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type greetArgs struct {
	Name string `json:"name" desc:"Who to greet" required:"true"`
}

func greetDescriptor(opts ...DescriptorOption) Descriptor {
	return Func("greet", "Greet someone",
		func(ctx context.Context, args greetArgs, b *deps.Bundle) (string, error) {
			return "hello " + args.Name, nil
		}, opts...)
}

func TestRegistry_Register(t *testing.T) {
	r := NewRegistry()

	require.NoError(t, r.Register(greetDescriptor()))
	assert.Equal(t, 1, r.Len())

	err := r.Register(greetDescriptor())
	var already *ErrToolAlreadyRegistered
	require.ErrorAs(t, err, &already)
	assert.Equal(t, "greet", already.Name)
}

func TestRegistry_Add_Fluent(t *testing.T) {
	other := Func("shout", "Shout",
		func(ctx context.Context, args greetArgs, b *deps.Bundle) (string, error) {
			return "HELLO", nil
		})

	r := NewRegistry().Add(greetDescriptor(), other)

	assert.Equal(t, 2, r.Len())
	assert.ElementsMatch(t, []string{"greet", "shout"}, r.Names())
}

func TestRegistry_Add_PanicsOnDuplicate(t *testing.T) {
	r := NewRegistry().Add(greetDescriptor())
	assert.Panics(t, func() { r.Add(greetDescriptor()) })
}

func TestRegistry_Get(t *testing.T) {
	r := NewRegistry().Add(greetDescriptor(WithRequires("api_key"), WithRetries(2)))

	d, ok := r.Get("greet")
	require.True(t, ok)
	assert.Equal(t, "greet", d.Tool.Name)
	assert.Equal(t, []string{"api_key"}, d.Requires)
	assert.Equal(t, 2, d.Retries)

	_, ok = r.Get("missing")
	assert.False(t, ok)
}

func TestRegistry_Unregister(t *testing.T) {
	r := NewRegistry().Add(greetDescriptor())
	r.Unregister("greet")
	assert.Zero(t, r.Len())

	// Unregistering an unknown tool is a no-op
	r.Unregister("missing")
}

func TestRegistry_Tools(t *testing.T) {
	r := NewRegistry().Add(greetDescriptor())

	tools := r.Tools()
	require.Len(t, tools, 1)
	assert.Equal(t, "greet", tools[0].Name)
	assert.Equal(t, "Greet someone", tools[0].Description)

	var schema map[string]any
	require.NoError(t, json.Unmarshal(tools[0].Parameters, &schema))
	props := schema["properties"].(map[string]any)
	assert.Equal(t, "Who to greet", props["name"].(map[string]any)["description"])
	assert.Contains(t, schema["required"].([]any), "name")
}

func TestRegistry_Execute(t *testing.T) {
	r := NewRegistry().Add(greetDescriptor())

	t.Run("success", func(t *testing.T) {
		result, err := r.Execute(context.Background(),
			ai.ToolCall{ID: "c1", Name: "greet", Arguments: `{"name":"world"}`}, nil)
		require.NoError(t, err)
		assert.Equal(t, "hello world", result.Content)
		assert.False(t, result.IsError)
	})

	t.Run("not found", func(t *testing.T) {
		_, err := r.Execute(context.Background(),
			ai.ToolCall{ID: "c1", Name: "missing", Arguments: `{}`}, nil)
		var notFound *ErrToolNotFound
		require.ErrorAs(t, err, &notFound)
		assert.Equal(t, "missing", notFound.Name)
	})

	t.Run("handler failure wrapped", func(t *testing.T) {
		failing := Func("fail", "Always fails",
			func(ctx context.Context, args greetArgs, b *deps.Bundle) (string, error) {
				return "", errors.New("boom")
			})
		reg := NewRegistry().Add(failing)

		_, err := reg.Execute(context.Background(),
			ai.ToolCall{ID: "c1", Name: "fail", Arguments: `{"name":"x"}`}, nil)
		var execErr *ErrToolExecution
		require.ErrorAs(t, err, &execErr)
		assert.Equal(t, "fail", execErr.Name)
		assert.EqualError(t, execErr.Err, "boom")
	})
}

func TestFunc_UnmarshalsArguments(t *testing.T) {
	var got greetArgs
	d := Func("capture", "Capture args",
		func(ctx context.Context, args greetArgs, b *deps.Bundle) (string, error) {
			got = args
			return "ok", nil
		})

	_, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "capture", Arguments: `{"name":"Alice"}`}, nil)

	require.NoError(t, err)
	assert.Equal(t, "Alice", got.Name)
}

func TestFunc_BadArgumentsJSON(t *testing.T) {
	d := greetDescriptor()

	_, err := d.Handler(context.Background(),
		ai.ToolCall{ID: "c1", Name: "greet", Arguments: `not json`}, nil)

	assert.Error(t, err)
}

func TestWithHandler(t *testing.T) {
	schema := json.RawMessage(`{"type":"object","properties":{}}`)
	d := WithHandler("raw", "Raw handler", schema,
		func(ctx context.Context, call ai.ToolCall, b *deps.Bundle) (string, error) {
			return call.Arguments, nil
		}, WithRetries(1))

	assert.Equal(t, "raw", d.Tool.Name)
	assert.Equal(t, 1, d.Retries)

	out, err := d.Handler(context.Background(), ai.ToolCall{Arguments: `{"x":1}`}, nil)
	require.NoError(t, err)
	assert.Equal(t, `{"x":1}`, out)
}
