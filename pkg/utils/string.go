// Package utils provides common utility functions.
package utils

import (
	"fmt"
	"strings"
)

// NormalizeWhitespace replaces runs of whitespace with single spaces
// and trims the ends.
func NormalizeWhitespace(str string) string {
	return strings.Join(strings.Fields(str), " ")
}

// TruncateRunes truncates a string to at most max runes. Counting runes
// keeps multi-byte text (Greek) from being cut mid-character.
func TruncateRunes(str string, max int) string {
	runes := []rune(str)
	if len(runes) <= max {
		return str
	}

	return string(runes[:max])
}

// TruncateLines limits text to maxLines lines, appending a count of the
// lines dropped.
func TruncateLines(str string, maxLines int) string {
	if str == "" {
		return "(No body)"
	}

	lines := strings.Split(str, "\n")
	if len(lines) <= maxLines {
		return str
	}

	return strings.Join(lines[:maxLines], "\n") +
		fmt.Sprintf("\n... (%d more lines)", len(lines)-maxLines)
}
