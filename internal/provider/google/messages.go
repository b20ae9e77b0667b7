package google

import (
	"encoding/json"
	"strings"

	ai "github.com/nninad/agentkit"
	"google.golang.org/genai"
)

// convertMessages converts agentkit messages to genai contents. System
// messages are collected separately for the SystemInstruction field.
func convertMessages(messages []ai.Message) ([]*genai.Content, string) {
	var contents []*genai.Content
	var system []string

	for _, msg := range messages {
		role := "user"
		switch msg.Role {
		case ai.RoleSystem:
			if msg.Content != "" {
				system = append(system, msg.Content)
			}
			continue
		case ai.RoleAssistant:
			role = "model"
		case ai.RoleUser, ai.RoleTool:
			role = "user"
		}

		var parts []*genai.Part
		if msg.Content != "" {
			parts = append(parts, &genai.Part{Text: msg.Content})
		}

		for _, tc := range msg.ToolCalls {
			var args map[string]any
			json.Unmarshal([]byte(tc.Arguments), &args)
			parts = append(parts, &genai.Part{
				FunctionCall: &genai.FunctionCall{
					Name: tc.Name,
					Args: args,
				},
			})
		}

		for _, tr := range msg.ToolResults {
			// Wrap non-JSON content so the response is always an object
			var result map[string]any
			if err := json.Unmarshal([]byte(tr.Content), &result); err != nil {
				result = map[string]any{"result": tr.Content}
			}
			parts = append(parts, &genai.Part{
				FunctionResponse: &genai.FunctionResponse{
					Name:     toolNameFromCallID(tr.ToolCallID),
					Response: result,
				},
			})
		}

		if len(parts) > 0 {
			contents = append(contents, &genai.Content{
				Role:  role,
				Parts: parts,
			})
		}
	}

	return contents, strings.Join(system, "\n\n")
}

// toolNameFromCallID recovers the function name from the synthetic call IDs
// produced by extractToolCalls ("call_<index>_<name>"). The Gemini API keys
// function responses by name rather than call ID.
func toolNameFromCallID(id string) string {
	if strings.HasPrefix(id, "call_") {
		rest := id[len("call_"):]
		if i := strings.Index(rest, "_"); i >= 0 {
			return rest[i+1:]
		}
	}
	return id
}
