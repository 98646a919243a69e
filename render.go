package md2office

import (
	"context"
	"strings"
)

// TableRenderer writes a parsed table into a live application session.
// Implementations are platform collaborators (COM automation bridges and
// the like) supplied by callers; they own insertion-point acquisition and
// the mapping of style flags to the target's native formatting.
type TableRenderer interface {
	RenderTable(ctx context.Context, table Table, opts RenderOptions) error
}

// RenderOptions configures table rendering.
type RenderOptions struct {
	// KeepFormat reproduces Markdown styling in the target; when false,
	// only the clean text is written.
	KeepFormat bool
}

// Column width bounds for spreadsheet output, in character units.
const (
	MinColumnWidth = 10
	MaxColumnWidth = 50
	columnPadding  = 2
)

// CellPlan pairs one cell's parsed form with whether a renderer must apply
// styling beyond the plain value. Pre-scanning cells this way lets a
// renderer bulk-write clean values first and touch only the cells that
// actually carry formatting.
type CellPlan struct {
	Format    CellFormat
	Formatted bool
}

// PlanRows parses every cell of the table and pads all rows to the widest
// row's width with empty cells, returning one plan per cell.
func PlanRows(table Table) [][]CellPlan {
	width := table.Width()
	plans := make([][]CellPlan, len(table))
	for i, row := range table {
		plans[i] = make([]CellPlan, width)
		for j := range plans[i] {
			raw := ""
			if j < len(row) {
				raw = row[j]
			}
			plans[i][j] = PlanCell(raw)
		}
	}
	return plans
}

// PlanCell parses one raw cell and records whether it needs styling.
func PlanCell(raw string) CellPlan {
	cf := ParseCell(raw)
	return CellPlan{Format: cf, Formatted: NeedsFormatting(cf)}
}

// NeedsFormatting reports whether a renderer must style the cell: newlines,
// code blocks, and mixed-style cells always do; a single-segment cell only
// when that segment carries any flag or a hyperlink.
func NeedsFormatting(cf CellFormat) bool {
	if cf.HasNewline || cf.IsCodeBlock || len(cf.Segments) > 1 {
		return true
	}
	return len(cf.Segments) == 1 && !cf.Segments[0].plain()
}

// PadRows returns a copy of the table with every row padded to the widest
// row's width using empty cells. The input table is not modified.
func PadRows(table Table) Table {
	width := table.Width()
	padded := make(Table, len(table))
	for i, row := range table {
		padded[i] = make([]string, width)
		copy(padded[i], row)
	}
	return padded
}

// ColumnWidths computes a display width per column from the planned cells:
// the longest clean-text line plus padding, clamped to the column bounds.
func ColumnWidths(plans [][]CellPlan) []float64 {
	if len(plans) == 0 {
		return nil
	}
	widths := make([]float64, len(plans[0]))
	for j := range widths {
		longest := 0
		for i := range plans {
			for _, line := range strings.Split(plans[i][j].Format.CleanText, "\n") {
				if n := len([]rune(line)); n > longest {
					longest = n
				}
			}
		}
		w := longest + columnPadding
		if w < MinColumnWidth {
			w = MinColumnWidth
		}
		if w > MaxColumnWidth {
			w = MaxColumnWidth
		}
		widths[j] = float64(w)
	}
	return widths
}
