// Package runner orchestrates tool-augmented structured extraction.
//
// A run sends a task and a typed output schema to a model, lets the model
// call registered tools across a bounded number of turns, validates the
// final output against the schema, and returns either the typed result or
// a typed failure.
//
// # Basic Usage
//
//	c := client.New(client.Config{
//	    APIKeys:      client.APIKeys{OpenAI: os.Getenv("OPENAI_API_KEY")},
//	    DefaultModel: "gpt-5.2",
//	})
//
//	registry := tool.NewRegistry().Add(tool.NewWeatherTool())
//
//	r := runner.New(c, registry)
//
//	type Report struct {
//	    City    string `json:"city" required:"true"`
//	    Summary string `json:"summary" required:"true"`
//	}
//
//	report, result, err := runner.RunTyped[Report](ctx, r,
//	    "What is the weather like in Lisbon right now?",
//	    runner.WithDeps(deps.NewFrom(map[string]any{
//	        deps.KeyWeatherstackAPIKey: os.Getenv("WEATHERSTACK_API_KEY"),
//	    })),
//	)
//
// # Error Handling
//
// Failures are typed and matched with errors.As:
//
//   - [UnknownToolError]: the model called an unregistered tool
//   - [InvalidArgumentsError]: tool arguments failed the parameter schema
//   - [ToolExecutionError]: a handler failed every attempt (surfaced to the
//     model as an error result, not returned to the caller)
//   - [SchemaValidationError]: the final output failed validation after the
//     corrective turn was spent
//   - [TurnBudgetExceededError]: the turn budget ran out
//   - [MissingDependencyError]: a tool's required bundle keys are absent
//
// When the final output fails schema validation the runner sends the model
// exactly one corrective turn describing the violations before giving up.
package runner
