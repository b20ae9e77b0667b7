// Package agentkit provides tool-augmented structured extraction from LLM
// providers.
//
// The library sends a natural-language task plus a typed output schema to a
// model, lets the model call registered tools across one or more turns, and
// returns a result validated against the schema. Provider-specific APIs
// (Anthropic, OpenAI, Groq, Google) are abstracted behind a single
// [ChatProvider] interface.
//
// # Basic Usage
//
// Send a task and receive a schema-validated result:
//
//	c := client.New(client.Config{
//	    APIKeys:      client.APIKeys{Groq: os.Getenv("GROQ_API_KEY")},
//	    DefaultModel: "groq:llama-3.3-70b-versatile",
//	})
//
//	type Place struct {
//	    Name   string  `json:"name" required:"true"`
//	    Rating float64 `json:"rating" required:"true" minimum:"0" maximum:"5"`
//	}
//
//	r := runner.New(c, registry)
//	places, _, err := runner.RunTyped[Place](ctx, r, "New York City")
//
// # Tool Calling
//
// Tools are declared with a name, a description the model uses to decide
// applicability, and a JSON Schema for their parameters:
//
//	desc := tool.Descriptor{
//	    Tool: agentkit.Tool{
//	        Name:        "get_current_weather_details",
//	        Description: "Retrieve current weather details for a city",
//	        Parameters: agentkit.SchemaFrom[WeatherArgs]().
//	            Desc("city_name", "Name of the city").
//	            Required("city_name").
//	            Build(),
//	    },
//	    Handler: weatherHandler,
//	}
//
// Tool handlers receive an explicit dependency bundle (API keys, dates,
// preferences) rather than reading process-wide state; see
// [github.com/nninad/agentkit/deps].
//
// # Higher-Level Packages
//
//   - [github.com/nninad/agentkit/runner]: the bounded structured-extraction loop
//   - [github.com/nninad/agentkit/tool]: tool registry and shipped data-provider tools
//   - [github.com/nninad/agentkit/schema]: JSON Schema builders and instance validation
//   - [github.com/nninad/agentkit/client]: unified multi-provider chat client
package agentkit
