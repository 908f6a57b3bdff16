// Package format renders client results as short human-readable summaries
// in English or Hebrew. English output converts to Fahrenheit and mph;
// Hebrew keeps the provider's metric units.
package format

import (
	"fmt"
	"strconv"
	"strings"

	"skycast/internal/model"
	"skycast/internal/units"
)

// Summary renders any client result: a structured error becomes a single
// "Error: ..." line, a forecast is delegated to the digest renderer, and
// current conditions get the five-line template.
func Summary(v any, lang string) string {
	switch data := v.(type) {
	case error:
		return "Error: " + data.Error()
	case *model.Forecast:
		return ForecastDigest(data, lang)
	case *model.CurrentConditions:
		return Current(data, lang)
	default:
		return ""
	}
}

// Current renders the five-line summary: location, condition, temperature
// with feels-like, wind, humidity. Unknown values render as "?".
func Current(cur *model.CurrentConditions, lang string) string {
	if lang == "he" {
		desc := cur.Condition.TextHe
		if desc == "" {
			desc = cur.Condition.Text
		}
		lines := []string{
			"*" + cur.Location + "*",
			strings.TrimSpace(desc + " " + cur.Condition.Emoji),
			fmt.Sprintf("🌡️ %s°C (מרגיש כמו %s°C)", num(cur.Temperature.Current), num(cur.Temperature.FeelsLike)),
			fmt.Sprintf("💨 רוח: %s קמ\"ש %s", num(cur.Wind.Speed), cur.Wind.Direction),
			fmt.Sprintf("💧 לחות: %s%%", intNum(cur.Humidity)),
		}
		return strings.Join(lines, "\n")
	}

	desc := cur.Condition.Text
	if desc == "" {
		desc = cur.Condition.Type
	}
	lines := []string{
		"*" + cur.Location + "*",
		strings.TrimSpace(desc + " " + cur.Condition.Emoji),
		fmt.Sprintf("🌡️ %s°F (feels like %s°F)",
			converted(units.CelsiusToFahrenheit(cur.Temperature.Current)),
			converted(units.CelsiusToFahrenheit(cur.Temperature.FeelsLike))),
		fmt.Sprintf("💨 Wind: %s mph %s", converted(units.KmhToMph(cur.Wind.Speed)), cur.Wind.Direction),
		fmt.Sprintf("💧 Humidity: %s%%", intNum(cur.Humidity)),
	}
	return strings.Join(lines, "\n")
}

// ForecastDigest renders the forecast header and a decimated sample of the
// hourly entries: every 4th entry by position, not by time.
func ForecastDigest(f *model.Forecast, lang string) string {
	var lines []string
	if lang == "he" {
		lines = append(lines, fmt.Sprintf("*תחזית ל-%s (24 שעות)*", f.Location))
	} else {
		lines = append(lines, fmt.Sprintf("*24h Forecast for %s*", f.Location))
	}

	for i, h := range f.Hourly {
		if i%4 != 0 {
			continue
		}
		timeStr := fmt.Sprintf("%02d:00", h.DisplayTime.Hours)
		if lang == "he" {
			lines = append(lines, fmt.Sprintf("%s: %s°C, %s %s קמ\"ש %s",
				timeStr, num(h.Temp), h.Condition.Emoji, num(h.Wind.Speed), h.Wind.Direction))
		} else {
			lines = append(lines, fmt.Sprintf("%s: %s°F, %s %s mph %s",
				timeStr, converted(units.CelsiusToFahrenheit(h.Temp)), h.Condition.Emoji,
				converted(units.KmhToMph(h.Wind.Speed)), h.Wind.Direction))
		}
	}

	return strings.Join(lines, "\n")
}

// num renders a raw provider value with minimal digits, "?" when unknown.
func num(v *float64) string {
	if v == nil {
		return "?"
	}
	return strconv.FormatFloat(*v, 'f', -1, 64)
}

// converted renders a unit-converted value; conversions carry a fixed
// one-decimal precision, so keep it in the output (32.0, not 32).
func converted(v *float64) string {
	if v == nil {
		return "?"
	}
	return strconv.FormatFloat(*v, 'f', 1, 64)
}

func intNum(v *int) string {
	if v == nil {
		return "?"
	}
	return strconv.Itoa(*v)
}
