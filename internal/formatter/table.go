// Package formatter renders aligned text tables for the CLI tools.
// Column widths are measured in display cells so mixed Greek/Latin
// content lines up in a terminal.
package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// FormatTable renders a header row and data rows as an aligned table.
func FormatTable(headers []string, rows [][]string) string {
	colCount := len(headers)
	for _, row := range rows {
		if len(row) > colCount {
			colCount = len(row)
		}
	}

	// Column widths from the widest cell in each column.
	widths := make([]int, colCount)

	measure := func(row []string) {
		for i, cell := range row {
			if w := runewidth.StringWidth(cell); w > widths[i] {
				widths[i] = w
			}
		}
	}

	measure(headers)

	for _, row := range rows {
		measure(row)
	}

	var b strings.Builder

	writeRow := func(row []string) {
		for i := 0; i < colCount; i++ {
			cell := ""
			if i < len(row) {
				cell = row[i]
			}

			b.WriteString("| ")
			b.WriteString(cell)
			b.WriteString(strings.Repeat(" ", widths[i]-runewidth.StringWidth(cell)))
			b.WriteString(" ")
		}

		b.WriteString("|\n")
	}

	writeRow(headers)

	for i := 0; i < colCount; i++ {
		b.WriteString("|")
		b.WriteString(strings.Repeat("-", widths[i]+2))
	}

	b.WriteString("|\n")

	for _, row := range rows {
		writeRow(row)
	}

	return b.String()
}

// FitWidth truncates s to at most w display cells, appending an
// ellipsis when something was cut.
func FitWidth(s string, w int) string {
	if runewidth.StringWidth(s) <= w {
		return s
	}

	return runewidth.Truncate(s, w, "...")
}
