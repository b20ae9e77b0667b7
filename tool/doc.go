// Package tool provides tool registration and execution for model tool
// calling.
//
// Tools are described by a Descriptor: the definition sent to the model, the
// handler that executes calls, the dependency bundle keys the handler needs,
// and how many times a failed execution is retried before the error is shown
// to the model.
//
// # Registering Tools
//
// The typed Func constructor generates the parameter schema from the
// argument struct:
//
//	type weatherArgs struct {
//	    Location string `json:"location" desc:"City name" required:"true"`
//	}
//
//	registry := tool.NewRegistry().Add(
//	    tool.Func("get_weather", "Get current weather", func(ctx context.Context, args weatherArgs, b *deps.Bundle) (string, error) {
//	        return fetchWeather(ctx, args.Location)
//	    }, tool.WithRequires(deps.KeyWeatherstackAPIKey), tool.WithRetries(2)),
//	)
//
// # Shipped Tools
//
// The package ships ready-made tools for common data sources:
//
//   - NewWeatherTool: current conditions via weatherstack
//   - NewStockQuoteTool, NewCompanyOverviewTool, NewNewsSentimentTool: market
//     data via Alpha Vantage
//   - NewSearchTool: web search via the DuckDuckGo instant answer API
//   - NewFinanceNewsTool: headlines via the Yahoo Finance RSS feed
//
// Each shipped tool accepts options to inject an HTTP client and override
// its endpoint, which keeps handlers testable against httptest servers.
package tool
