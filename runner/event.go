package runner

import (
	"time"

	ai "github.com/nninad/agentkit"
)

// EventType identifies the kind of event occurring during a run.
type EventType string

const (
	// EventRunStart fires once at the beginning of a run.
	EventRunStart EventType = "run_start"

	// EventTurnStart fires at the beginning of each model round trip.
	EventTurnStart EventType = "turn_start"

	// EventTurnEnd fires after the model responds.
	EventTurnEnd EventType = "turn_end"

	// EventToolCallRequested fires when the model requests a tool call.
	EventToolCallRequested EventType = "tool_call_requested"

	// EventToolCallStarted fires before executing a tool handler.
	EventToolCallStarted EventType = "tool_call_started"

	// EventToolRetry fires before re-executing a failed tool handler.
	EventToolRetry EventType = "tool_retry"

	// EventToolResult fires after a tool handler completes.
	EventToolResult EventType = "tool_result"

	// EventOutputRejected fires when the final output fails schema
	// validation and a corrective turn is issued.
	EventOutputRejected EventType = "output_rejected"

	// EventRunComplete fires when the run finishes successfully.
	EventRunComplete EventType = "run_complete"

	// EventRunError fires when the run fails.
	EventRunError EventType = "run_error"
)

// Event represents an observable occurrence during a run.
type Event struct {
	// Type identifies the kind of event.
	Type EventType

	// Turn is the current round trip number (1-indexed).
	Turn int

	// Attempt is the execution attempt for EventToolRetry (1-indexed).
	Attempt int

	// ToolCall contains the tool call for tool-related events.
	ToolCall *ai.ToolCall

	// ToolResult contains the result for EventToolResult events.
	ToolResult *ai.ToolResult

	// Response contains the model response for EventTurnEnd.
	Response *ai.Response

	// Error contains the error for EventRunError and EventToolRetry.
	Error error

	// Message contains additional context (e.g. schema violations).
	Message string

	// Timestamp is when the event occurred.
	Timestamp time.Time
}

// emit sends an event with timestamp to the channel without blocking.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
		// Channel full - don't block
	}
}
