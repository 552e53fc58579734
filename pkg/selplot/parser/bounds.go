package parser

// dataWidth returns the number of columns spanned by non-empty cells.
func dataWidth(rows [][]string) int {
	_, maxCol := findColumnBounds(rows)
	return maxCol + 1
}

// findColumnBounds finds the leftmost and rightmost columns holding a
// non-empty cell. Both are -1 when every cell is empty.
func findColumnBounds(rows [][]string) (minCol, maxCol int) {
	minCol, maxCol = -1, -1

	for _, row := range rows {
		for colIdx, cell := range row {
			if cell == "" {
				continue
			}
			if minCol < 0 || colIdx < minCol {
				minCol = colIdx
			}
			if maxCol < 0 || colIdx > maxCol {
				maxCol = colIdx
			}
		}
	}

	return
}

// isBlank reports whether every cell of a row is empty.
func isBlank(row []string) bool {
	for _, cell := range row {
		if cell != "" {
			return false
		}
	}
	return true
}
