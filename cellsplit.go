package md2office

import "strings"

// SplitRowCells splits one table row on unescaped pipes. A pipe written as
// \| is a literal pipe character: the backslash is consumed and the pipe is
// emitted into the cell. Each cell is trimmed of surrounding whitespace.
//
// The function is total: any input yields a cell list. An empty line yields
// an empty list; a line of only delimiters yields empty cells.
func SplitRowCells(line string) []string {
	var cells []string
	var cur []rune

	for _, r := range line {
		switch {
		case r == '|' && len(cur) > 0 && cur[len(cur)-1] == '\\':
			// Escaped pipe: the backslash becomes the pipe.
			cur[len(cur)-1] = '|'
		case r == '|':
			cells = append(cells, strings.TrimSpace(string(cur)))
			cur = cur[:0]
		default:
			cur = append(cur, r)
		}
	}

	// Flush the trailing cell, including the empty one after a final pipe.
	if len(cur) > 0 || len(cells) > 0 {
		cells = append(cells, strings.TrimSpace(string(cur)))
	}

	return cells
}
