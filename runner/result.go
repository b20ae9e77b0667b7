package runner

import (
	"encoding/json"

	ai "github.com/nninad/agentkit"
)

// TerminationReason indicates why a run stopped.
type TerminationReason string

const (
	// TerminationComplete indicates the model produced output satisfying
	// the schema.
	TerminationComplete TerminationReason = "complete"

	// TerminationError indicates the run failed; the returned error
	// carries the cause.
	TerminationError TerminationReason = "error"
)

// Result is the outcome of a run.
type Result struct {
	// Output is the validated, normalized final output. Nil when the run
	// failed.
	Output json.RawMessage

	// Usage is the accumulated token usage across every model call in
	// the run.
	Usage ai.Usage

	// Turns is the number of model round trips consumed.
	Turns int

	// Termination indicates why the run stopped.
	Termination TerminationReason

	messages []ai.Message
}

// Messages returns a copy of the conversation as it stood when the run
// ended, including tool calls and tool results.
func (r *Result) Messages() []ai.Message {
	out := make([]ai.Message, len(r.messages))
	copy(out, r.messages)
	return out
}
