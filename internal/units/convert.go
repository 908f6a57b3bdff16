// Package units converts provider metric values to imperial for English
// output. A nil input means "value unknown" and passes through unchanged so
// formatters can render their own placeholder.
package units

import "math"

const kmhPerMph = 0.621371

// CelsiusToFahrenheit converts a temperature to Fahrenheit, rounded to one
// decimal place. nil in, nil out.
func CelsiusToFahrenheit(celsius *float64) *float64 {
	if celsius == nil {
		return nil
	}
	f := round1(*celsius*9/5 + 32)
	return &f
}

// KmhToMph converts a speed to miles per hour, rounded to one decimal
// place. nil in, nil out.
func KmhToMph(kmh *float64) *float64 {
	if kmh == nil {
		return nil
	}
	mph := round1(*kmh * kmhPerMph)
	return &mph
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
