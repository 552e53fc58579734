package parser

import (
	"strconv"
	"strings"

	"github.com/meshsel/selplot/pkg/selplot/models"
)

// parseNumber coerces a raw cell value to a number.
// Anything that is not a finite number becomes the missing marker.
func parseNumber(s string) models.Value {
	s = strings.TrimSpace(s)
	if s == "" {
		return models.Missing()
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return models.Missing()
	}
	return models.Number(f)
}

// columnNames builds unique column names from a header row padded to width.
// Empty header cells are named "Unnamed: <index>"; repeated names get a
// ".<n>" suffix.
func columnNames(header []string, width int) []string {
	names := make([]string, width)
	seen := make(map[string]int, width)
	for i := 0; i < width; i++ {
		name := ""
		if i < len(header) {
			name = strings.TrimSpace(header[i])
		}
		if name == "" {
			name = "Unnamed: " + strconv.Itoa(i)
		}
		if n, dup := seen[name]; dup {
			seen[name] = n + 1
			name = name + "." + strconv.Itoa(n+1)
		} else {
			seen[name] = 0
		}
		names[i] = name
	}
	return names
}

// coerceRow converts one sheet row into a table row over names.
func coerceRow(cells []string, names []string) models.Row {
	row := make(models.Row, len(names))
	for i, name := range names {
		if i < len(cells) {
			row[name] = parseNumber(cells[i])
		} else {
			row[name] = models.Missing()
		}
	}
	return row
}
