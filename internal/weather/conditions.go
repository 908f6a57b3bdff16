package weather

import "strings"

// conditionsHe maps provider condition codes to Hebrew labels, each ending
// with a pictographic glyph.
var conditionsHe = map[string]string{
	"CLEAR":         "בהיר ☀️",
	"MOSTLY_CLEAR":  "בהיר ברובו 🌤️",
	"PARTLY_CLOUDY": "מעונן חלקית ⛅",
	"MOSTLY_CLOUDY": "מעונן ברובו 🌥️",
	"CLOUDY":        "מעונן ☁️",
	"HAZE":          "אובך 🌫️",
	"FOG":           "ערפל 🌫️",
	"LIGHT_RAIN":    "גשם קל 🌧️",
	"RAIN":          "גשם 🌧️",
	"HEAVY_RAIN":    "גשם כבד 🌧️",
	"THUNDERSTORM":  "סופת רעמים ⛈️",
	"SNOW":          "שלג ❄️",
}

// glyphRunes is the fixed pictographic character set that may appear in a
// localized label, plus the emoji variation selector.
var glyphRunes = map[rune]bool{
	'☀': true, '🌤': true, '⛅': true, '🌥': true, '☁': true,
	'🌫': true, '🌧': true, '⛈': true, '❄': true,
	'\ufe0f': true, // emoji variation selector travels with the glyph
}

// localizeCondition returns the Hebrew text and glyph for a provider
// condition code. Unknown codes fall back to the raw code with no glyph.
func localizeCondition(code string) (text, glyph string) {
	label, ok := conditionsHe[code]
	if !ok {
		label = code
	}
	return splitLabel(label)
}

// splitLabel separates a localized label into text and glyph: the glyph is
// every rune from the fixed pictographic set, in order of appearance, and
// the text is the remainder with surrounding whitespace trimmed.
func splitLabel(label string) (text, glyph string) {
	var textPart, glyphPart strings.Builder
	for _, r := range label {
		if glyphRunes[r] {
			glyphPart.WriteRune(r)
		} else {
			textPart.WriteRune(r)
		}
	}
	return strings.TrimSpace(textPart.String()), glyphPart.String()
}
