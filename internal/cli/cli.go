// Package cli implements the skycast command surface: current, forecast
// and json, each taking the remaining arguments as the location name.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"skycast/internal/config"
	"skycast/internal/format"
	"skycast/internal/model"
)

// Weather is the slice of the weather client the CLI needs.
type Weather interface {
	Current(ctx context.Context, loc model.Location, lang string) (*model.CurrentConditions, error)
	Forecast(ctx context.Context, loc model.Location, hours int, lang string) (*model.Forecast, error)
}

const usage = `Usage: skycast <command> [location]
Commands:
  current <location>  - Get current weather
  forecast <location> - Get 24h forecast
  json <location>     - Get raw JSON data
`

// Run dispatches one CLI invocation and returns the process exit code.
// API failures print as "Error: ..." lines but still exit 0; only a
// missing or unknown command is a non-zero exit.
func Run(ctx context.Context, args []string, cfg *config.Config, client Weather, out io.Writer) int {
	if len(args) < 1 {
		fmt.Fprint(out, usage)
		return 1
	}

	command := strings.ToLower(args[0])
	location := cfg.DefaultLocation
	if len(args) > 1 {
		location = strings.Join(args[1:], " ")
	}
	loc := model.NamedLocation(location)

	switch command {
	case "current":
		data, err := client.Current(ctx, loc, cfg.Language)
		if err != nil {
			fmt.Fprintln(out, format.Summary(err, cfg.Language))
			return 0
		}
		fmt.Fprintln(out, format.Summary(data, cfg.Language))
	case "forecast":
		data, err := client.Forecast(ctx, loc, cfg.ForecastHours, cfg.Language)
		if err != nil {
			fmt.Fprintln(out, format.Summary(err, cfg.Language))
			return 0
		}
		fmt.Fprintln(out, format.Summary(data, cfg.Language))
	case "json":
		data, err := client.Current(ctx, loc, cfg.Language)
		if err != nil {
			return printJSON(out, err)
		}
		return printJSON(out, data)
	default:
		fmt.Fprintf(out, "Unknown command: %s\n", command)
		return 1
	}
	return 0
}

// printJSON writes v as 2-space-indented JSON with HTML escaping off so
// Hebrew text and emoji stay literal.
func printJSON(out io.Writer, v any) int {
	enc := json.NewEncoder(out)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		fmt.Fprintln(out, format.Summary(err, "en"))
	}
	return 0
}
