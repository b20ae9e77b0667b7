package retry

import "time"

// EventType identifies a stage of a retried operation.
type EventType string

const (
	EventAttemptStart  EventType = "attempt_start"
	EventAttemptFailed EventType = "attempt_failed"
	EventRetrying      EventType = "retrying"
	EventSuccess       EventType = "success"
	EventExhausted     EventType = "exhausted"
)

// Event describes one observable step of a retried operation. Failed
// attempts carry Error and whether it was classified transient; retrying
// events additionally carry the upcoming Delay.
type Event struct {
	Type        EventType
	Attempt     int
	MaxAttempts int
	Error       error
	Delay       time.Duration
	Retryable   bool
	Timestamp   time.Time
}

// emit stamps and sends an event without blocking; a nil or full channel
// drops it.
func emit(ch chan<- Event, event Event) {
	if ch == nil {
		return
	}
	event.Timestamp = time.Now()
	select {
	case ch <- event:
	default:
	}
}
