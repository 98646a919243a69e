package md2office

import (
	"regexp"
	"strings"
)

// separatorRow matches the table syntax's required header/body divider:
// optional framing pipes around two or more groups of dashes/colons,
// e.g. |---|:--:| or --- | ---.
var separatorRow = regexp.MustCompile(`^\s*\|?\s*[-:]+\s*(\|\s*[-:]+\s*)+\|?\s*$`)

// ParseTable scans raw multi-line text for a pipe-delimited Markdown table.
// It returns the data rows in order and true, or nil and false when the
// input is not a table. The separator row is consumed and excluded; the row
// preceding it is returned as an ordinary first row, since header semantics
// belong to the caller.
//
// A table requires at least two non-trivial lines and exactly the separator
// convention. A non-table line before the separator disqualifies the whole
// input; after the separator it ends the table.
func ParseTable(text string) (Table, bool) {
	lines := strings.Split(strings.TrimSpace(text), "\n")
	if len(lines) < 2 {
		return nil, false
	}

	var rows Table
	separatorFound := false

	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		// Table lines start with, end with, or contain a pipe; the three
		// cases collapse to containment.
		if !strings.Contains(line, "|") {
			if separatorFound {
				break
			}
			return nil, false
		}

		if separatorRow.MatchString(line) {
			separatorFound = true
			continue
		}

		cells := SplitRowCells(line)

		// A row framed by pipes splits into cells with an empty first and
		// last element; drop exactly one from each end.
		if len(cells) > 0 && cells[0] == "" {
			cells = cells[1:]
		}
		if len(cells) > 0 && cells[len(cells)-1] == "" {
			cells = cells[:len(cells)-1]
		}

		if len(cells) > 0 {
			rows = append(rows, cells)
		}
	}

	if !separatorFound || len(rows) == 0 {
		return nil, false
	}
	return rows, true
}
