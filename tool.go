package agentkit

import "encoding/json"

// Tool declares a callable capability the model may invoke mid-conversation.
type Tool struct {
	// Name uniquely identifies the tool within a request.
	Name string
	// Description tells the model what the tool does and when it applies.
	Description string
	// Parameters is the JSON Schema for the tool's argument object.
	Parameters json.RawMessage
}

// ToolCall is the model's request to invoke a declared tool.
type ToolCall struct {
	// ID correlates this call with its eventual ToolResult.
	ID string `json:"id"`
	// Name of the tool to invoke.
	Name string `json:"name"`
	// Arguments is the raw JSON argument object.
	Arguments string `json:"arguments"`
}

// ToolResult carries the outcome of one tool call back to the model.
type ToolResult struct {
	// ToolCallID matches the originating ToolCall.ID.
	ToolCallID string `json:"toolCallId"`
	// Content is the result payload shown to the model.
	Content string `json:"content"`
	// IsError marks the content as a failure the model may recover from.
	IsError bool `json:"isError,omitempty"`
}

// ToolChoice controls whether the model may, must, or must not call tools.
type ToolChoice string

const (
	// ToolChoiceAuto lets the model decide (default).
	ToolChoiceAuto ToolChoice = "auto"
	// ToolChoiceNone disables tool use for the request.
	ToolChoiceNone ToolChoice = "none"
	// ToolChoiceRequired forces a tool call.
	ToolChoiceRequired ToolChoice = "required"
)

// NewToolResultMessage wraps tool results in a tool-role message for the
// next model turn.
func NewToolResultMessage(results ...ToolResult) Message {
	return Message{
		Role:        RoleTool,
		ToolResults: results,
	}
}
