package runner

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	ai "github.com/nninad/agentkit"
	"github.com/nninad/agentkit/chat"
	"github.com/nninad/agentkit/schema"
	"github.com/nninad/agentkit/tool"
)

// Runner orchestrates tool-augmented structured extraction: it sends a task
// and an output schema to the model, executes the tool calls the model
// requests across a bounded number of turns, and validates the final output
// against the schema before returning it.
type Runner struct {
	chatClient chat.Client
	registry   *tool.Registry
}

// New creates a Runner with the given chat client and tool registry.
// The registry may be nil for runs that use no tools.
func New(c chat.Client, registry *tool.Registry) *Runner {
	if registry == nil {
		registry = tool.NewRegistry()
	}
	return &Runner{
		chatClient: c,
		registry:   registry,
	}
}

// Run executes the task against the model and returns the validated output.
// This is a blocking call that runs until the model produces output
// satisfying the schema, a fatal error occurs, or the turn budget runs out.
//
// The result's Output holds the normalized final output. On failure the
// returned error is one of the typed errors in this package, and the result
// still carries the turns consumed, accumulated usage, and the conversation
// so far.
func (r *Runner) Run(ctx context.Context, task string, outputSchema ai.ResponseSchema, opts ...Option) (*Result, error) {
	options := ApplyOptions(opts...)

	var messages []ai.Message
	if options.SystemPrompt != "" {
		messages = append(messages, withID(ai.NewSystemMessage(options.SystemPrompt)))
	}
	if options.SystemPromptFunc != nil {
		if prompt := options.SystemPromptFunc(options.Deps); prompt != "" {
			messages = append(messages, withID(ai.NewSystemMessage(prompt)))
		}
	}
	messages = append(messages, withID(ai.NewUserMessage(task)))

	chatOpts := []ai.Option{ai.WithResponseSchema(outputSchema)}
	if r.registry.Len() > 0 {
		chatOpts = append(chatOpts, ai.WithTools(r.registry.Tools()))
	}
	chatOpts = append(chatOpts, options.ChatOptions...)

	result := &Result{Termination: TerminationError}
	fail := func(turn int, err error) (*Result, error) {
		emit(options.Events, Event{Type: EventRunError, Turn: turn, Error: err})
		result.messages = messages
		return result, err
	}

	emit(options.Events, Event{Type: EventRunStart})

	correctiveUsed := false
	for turn := 1; turn <= options.MaxTurns; turn++ {
		if err := ctx.Err(); err != nil {
			return fail(result.Turns, err)
		}
		result.Turns = turn
		emit(options.Events, Event{Type: EventTurnStart, Turn: turn})

		resp, err := r.chatClient.Chat(ctx, messages, chatOpts...)
		if err != nil {
			return fail(turn, err)
		}
		result.Usage.Add(resp.Usage)
		emit(options.Events, Event{Type: EventTurnEnd, Turn: turn, Response: resp})

		if len(resp.ToolCalls) > 0 {
			messages = append(messages, withID(ai.Message{
				Role:      ai.RoleAssistant,
				Content:   resp.Content,
				ToolCalls: resp.ToolCalls,
			}))

			results, err := r.processToolCalls(ctx, resp.ToolCalls, options, turn)
			if err != nil {
				return fail(turn, err)
			}
			messages = append(messages, withID(ai.NewToolResultMessage(results...)))
			continue
		}

		// No tool calls: the content is the model's final answer
		output := extractJSON(resp.Content)
		normalized, err := schema.Validate(outputSchema.Schema, json.RawMessage(output))
		if err != nil {
			var fieldErrs *schema.FieldErrors
			if !errors.As(err, &fieldErrs) {
				return fail(turn, err)
			}
			if !correctiveUsed && turn < options.MaxTurns {
				correctiveUsed = true
				emit(options.Events, Event{
					Type:    EventOutputRejected,
					Turn:    turn,
					Message: fieldErrs.Error(),
				})
				messages = append(messages,
					withID(ai.Message{Role: ai.RoleAssistant, Content: resp.Content}),
					withID(ai.NewUserMessage(correctivePrompt(fieldErrs))),
				)
				continue
			}
			return fail(turn, &SchemaValidationError{Violations: fieldErrs, Output: output})
		}

		messages = append(messages, withID(ai.Message{Role: ai.RoleAssistant, Content: resp.Content}))
		result.Output = normalized
		result.Termination = TerminationComplete
		result.messages = messages
		emit(options.Events, Event{Type: EventRunComplete, Turn: turn, Response: resp})
		return result, nil
	}

	return fail(options.MaxTurns, &TurnBudgetExceededError{MaxTurns: options.MaxTurns})
}

// processToolCalls executes the model's tool calls sequentially in the
// order they were proposed. Unknown tools, unmet dependency requirements,
// and invalid arguments abort the run; execution failures are retried and
// then surfaced to the model as error results.
func (r *Runner) processToolCalls(ctx context.Context, calls []ai.ToolCall, options *Options, turn int) ([]ai.ToolResult, error) {
	results := make([]ai.ToolResult, 0, len(calls))

	for _, tc := range calls {
		tc := tc
		emit(options.Events, Event{Type: EventToolCallRequested, Turn: turn, ToolCall: &tc})

		d, ok := r.registry.Get(tc.Name)
		if !ok {
			return nil, &UnknownToolError{Tool: tc.Name, Known: r.registry.Names()}
		}

		if missing := missingDeps(d, options); len(missing) > 0 {
			return nil, &MissingDependencyError{Tool: tc.Name, Keys: missing}
		}

		call := tc
		if len(d.Tool.Parameters) > 0 {
			args := tc.Arguments
			if strings.TrimSpace(args) == "" {
				args = "{}"
			}
			normalized, err := schema.Validate(d.Tool.Parameters, json.RawMessage(args))
			if err != nil {
				var fieldErrs *schema.FieldErrors
				if errors.As(err, &fieldErrs) {
					return nil, &InvalidArgumentsError{Tool: tc.Name, Err: fieldErrs}
				}
				return nil, &InvalidArgumentsError{Tool: tc.Name, Err: err}
			}
			call.Arguments = string(normalized)
		}

		results = append(results, r.executeCall(ctx, d, call, options, turn))
	}

	return results, nil
}

// executeCall runs a tool handler with the configured retry policy. A call
// that fails every attempt becomes an error result for the model rather
// than a run failure.
func (r *Runner) executeCall(ctx context.Context, d tool.Descriptor, call ai.ToolCall, options *Options, turn int) ai.ToolResult {
	retries := d.Retries
	if retries <= 0 {
		retries = options.ToolRetries
	}
	attempts := retries + 1

	var lastErr error
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			emit(options.Events, Event{
				Type:     EventToolRetry,
				Turn:     turn,
				Attempt:  attempt,
				ToolCall: &call,
				Error:    lastErr,
			})
			if options.ToolRetryDelay > 0 {
				select {
				case <-ctx.Done():
				case <-time.After(options.ToolRetryDelay):
				}
			}
		}
		emit(options.Events, Event{Type: EventToolCallStarted, Turn: turn, Attempt: attempt, ToolCall: &call})

		execCtx := ctx
		var cancel context.CancelFunc
		if options.HandlerTimeout > 0 {
			execCtx, cancel = context.WithTimeout(ctx, options.HandlerTimeout)
		}
		res, err := r.registry.Execute(execCtx, call, options.Deps)
		if cancel != nil {
			cancel()
		}

		if err == nil {
			emit(options.Events, Event{Type: EventToolResult, Turn: turn, ToolResult: &res})
			return res
		}
		var handlerErr *tool.ErrToolExecution
		if errors.As(err, &handlerErr) {
			lastErr = handlerErr.Err
		} else {
			lastErr = err
		}

		// A canceled run should not burn the remaining attempts
		if ctx.Err() != nil {
			break
		}
	}

	execErr := &ToolExecutionError{Tool: call.Name, Attempts: attempts, Err: lastErr}
	res := ai.ToolResult{
		ToolCallID: call.ID,
		Content:    execErr.Error(),
		IsError:    true,
	}
	emit(options.Events, Event{Type: EventToolResult, Turn: turn, ToolResult: &res})
	return res
}

// missingDeps returns the tool's required bundle keys absent from the run's
// dependency bundle.
func missingDeps(d tool.Descriptor, options *Options) []string {
	var missing []string
	for _, key := range d.Requires {
		if options.Deps == nil || !options.Deps.Has(key) {
			missing = append(missing, key)
		}
	}
	return missing
}

// withID assigns a message ID so the transcript returned by Result.Messages
// can be correlated with emitted events.
func withID(m ai.Message) ai.Message {
	m.ID = ai.GenerateMessageID()
	return m
}

// extractJSON strips a surrounding markdown code fence, which some models
// add despite instructions.
func extractJSON(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```json")
	s = strings.TrimPrefix(s, "```")
	if i := strings.LastIndex(s, "```"); i >= 0 {
		s = s[:i]
	}
	return strings.TrimSpace(s)
}

// correctivePrompt builds the feedback message sent to the model after its
// output failed schema validation.
func correctivePrompt(errs *schema.FieldErrors) string {
	var b strings.Builder
	b.WriteString("Your response did not satisfy the required output schema:\n")
	for _, fe := range errs.Errors {
		fmt.Fprintf(&b, "- %s\n", fe.String())
	}
	b.WriteString("Respond again with only the corrected JSON object. Do not include commentary.")
	return b.String()
}
