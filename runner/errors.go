package runner

import (
	"fmt"
	"strings"

	"github.com/nninad/agentkit/schema"
)

// UnknownToolError is returned when the model calls a tool that is not in
// the registry. The run stops immediately since the tool set is fixed for
// the lifetime of the run.
type UnknownToolError struct {
	// Tool is the name the model asked for.
	Tool string
	// Known lists the registered tool names.
	Known []string
}

func (e *UnknownToolError) Error() string {
	if len(e.Known) == 0 {
		return fmt.Sprintf("runner: model called unknown tool %q (no tools registered)", e.Tool)
	}
	return fmt.Sprintf("runner: model called unknown tool %q (registered: %s)", e.Tool, strings.Join(e.Known, ", "))
}

// InvalidArgumentsError is returned when tool call arguments fail to parse
// or do not satisfy the tool's parameter schema.
type InvalidArgumentsError struct {
	// Tool is the tool whose arguments were rejected.
	Tool string
	// Err describes the violation; a *schema.FieldErrors when the
	// arguments parsed but failed schema checks.
	Err error
}

func (e *InvalidArgumentsError) Error() string {
	return fmt.Sprintf("runner: invalid arguments for tool %q: %v", e.Tool, e.Err)
}

func (e *InvalidArgumentsError) Unwrap() error {
	return e.Err
}

// ToolExecutionError describes a tool handler that failed every attempt.
// It is surfaced to the model as an error tool result rather than returned
// to the caller, so the model can recover or report the failure.
type ToolExecutionError struct {
	// Tool is the tool that failed.
	Tool string
	// Attempts is the total number of executions tried.
	Attempts int
	// Err is the error from the final attempt.
	Err error
}

func (e *ToolExecutionError) Error() string {
	if e.Attempts > 1 {
		return fmt.Sprintf("runner: tool %q failed after %d attempts: %v", e.Tool, e.Attempts, e.Err)
	}
	return fmt.Sprintf("runner: tool %q failed: %v", e.Tool, e.Err)
}

func (e *ToolExecutionError) Unwrap() error {
	return e.Err
}

// SchemaValidationError is returned when the model's final output does not
// satisfy the output schema and the corrective turn has been spent.
type SchemaValidationError struct {
	// Violations lists the failing fields.
	Violations *schema.FieldErrors
	// Output is the raw output that failed validation.
	Output string
}

func (e *SchemaValidationError) Error() string {
	return fmt.Sprintf("runner: output rejected: %v", e.Violations)
}

func (e *SchemaValidationError) Unwrap() error {
	return e.Violations
}

// TurnBudgetExceededError is returned when the run consumes every allowed
// turn without producing a valid final output.
type TurnBudgetExceededError struct {
	// MaxTurns is the configured turn budget.
	MaxTurns int
}

func (e *TurnBudgetExceededError) Error() string {
	return fmt.Sprintf("runner: turn budget of %d exceeded without a final answer", e.MaxTurns)
}

// MissingDependencyError is returned when a tool declares required bundle
// keys that the run's dependency bundle does not provide. No amount of
// model retrying can supply them, so the run stops immediately.
type MissingDependencyError struct {
	// Tool is the tool whose requirements were unmet.
	Tool string
	// Keys lists the missing bundle keys.
	Keys []string
}

func (e *MissingDependencyError) Error() string {
	return fmt.Sprintf("runner: tool %q requires missing dependencies: %s", e.Tool, strings.Join(e.Keys, ", "))
}
