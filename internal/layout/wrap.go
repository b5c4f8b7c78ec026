package layout

import (
	"math"
	"strings"
)

// Character footprint approximation. A character is assumed to occupy half
// its font size, converted from points to millimeters. This is a deliberate
// simplification, not real font metrics; changing these constants changes
// wrapping output.
const (
	charWidthFactor = 0.5
	ptToMM          = 0.3528
)

// Wrap breaks text into lines that fit the available span. The span is the
// usable length in millimeters along the axis the text will run; fontSize
// is in points. Words are packed greedily and never split, so a single word
// longer than the line budget overflows on its own line. Empty text yields
// a single empty line.
func Wrap(text string, fontSize, span float64) []string {
	charWidth := fontSize * charWidthFactor * ptToMM

	maxChars := 0
	if charWidth > 0 {
		maxChars = int(math.Floor(span / charWidth))
	}
	if len(text) <= maxChars {
		return []string{text}
	}

	words := strings.Fields(text)
	if len(words) == 0 {
		return []string{""}
	}

	lines := make([]string, 0, len(words))
	line := words[0]
	for _, word := range words[1:] {
		// A pathological maxChars of 0 falls through to one word per line.
		if len(line)+len(word)+1 < maxChars {
			line += " " + word
		} else {
			lines = append(lines, line)
			line = word
		}
	}
	return append(lines, line)
}
