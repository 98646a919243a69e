package md2office

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// Workbook appearance constants.
const (
	DefaultSheetName = "Sheet1"

	headerFillColor = "D3D3D3" // light gray header row
	codeFillColor   = "F0F0F0" // lighter gray for code content
	linkFontColor   = "0563C1" // spreadsheet default hyperlink blue
	codeFontName    = "Consolas"
)

// SpreadsheetWriter abstracts standalone workbook generation.
type SpreadsheetWriter interface {
	WriteTable(table Table, path string, opts WorkbookOptions) error
}

// WorkbookOptions configures workbook generation.
type WorkbookOptions struct {
	// KeepFormat reproduces Markdown styling (fonts, rich-text runs,
	// hyperlinks, code fills). When false only clean text is written.
	KeepFormat bool

	// SheetName overrides the worksheet name (default "Sheet1").
	SheetName string
}

// WorkbookWriter generates XLSX files from parsed tables. The first table
// row is styled as a header; cells keep their Markdown styling as rich-text
// runs, whole-cell fonts, or hyperlinks depending on their segments.
type WorkbookWriter struct{}

// WriteTable writes the table to an XLSX file at path. An empty table
// produces an empty workbook rather than an error, so odd clipboard content
// still yields a usable file.
func (w *WorkbookWriter) WriteTable(table Table, path string, opts WorkbookOptions) error {
	f := excelize.NewFile()
	defer func() { _ = f.Close() }()

	sheet := opts.SheetName
	if sheet == "" {
		sheet = DefaultSheetName
	}
	if sheet != DefaultSheetName {
		if err := f.SetSheetName(DefaultSheetName, sheet); err != nil {
			return fmt.Errorf("%w: naming sheet: %v", ErrWorkbookWrite, err)
		}
	}

	if len(table) == 0 {
		if err := f.SaveAs(path); err != nil {
			return fmt.Errorf("%w: saving %s: %v", ErrWorkbookWrite, path, err)
		}
		return nil
	}

	styles, err := newWorkbookStyles(f)
	if err != nil {
		return fmt.Errorf("%w: building styles: %v", ErrWorkbookWrite, err)
	}

	plans := PlanRows(table)
	for i, row := range plans {
		for j, plan := range row {
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return fmt.Errorf("%w: cell coordinates: %v", ErrWorkbookWrite, err)
			}
			if err := w.writeCell(f, styles, sheet, cell, plan, i == 0, opts.KeepFormat); err != nil {
				return fmt.Errorf("%w: cell %s: %v", ErrWorkbookWrite, cell, err)
			}
		}
	}

	for j, width := range ColumnWidths(plans) {
		col, err := excelize.ColumnNumberToName(j + 1)
		if err != nil {
			return fmt.Errorf("%w: column name: %v", ErrWorkbookWrite, err)
		}
		if err := f.SetColWidth(sheet, col, col, width); err != nil {
			return fmt.Errorf("%w: column width: %v", ErrWorkbookWrite, err)
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("%w: saving %s: %v", ErrWorkbookWrite, path, err)
	}
	return nil
}

// writeCell writes one cell's value and style. Header cells get the header
// style regardless of content; the cell value (including rich-text runs)
// is preserved underneath it.
func (w *WorkbookWriter) writeCell(f *excelize.File, styles *workbookStyles, sheet, cell string, plan CellPlan, header, keepFormat bool) error {
	cf := plan.Format

	styleID, err := w.writeCellValue(f, styles, sheet, cell, cf, keepFormat)
	if err != nil {
		return err
	}
	if header {
		styleID = styles.header
	}
	return f.SetCellStyle(sheet, cell, cell, styleID)
}

// writeCellValue writes the cell content and returns the body style to
// apply, following the original generator's decision tree: code block,
// hyperlink, rich text, single styled segment, plain value.
func (w *WorkbookWriter) writeCellValue(f *excelize.File, styles *workbookStyles, sheet, cell string, cf CellFormat, keepFormat bool) (int, error) {
	if !keepFormat {
		return styles.bodyStyle(cf.HasNewline), f.SetCellStr(sheet, cell, cf.CleanText)
	}

	switch {
	case cf.IsCodeBlock:
		return styles.codeBlock, f.SetCellStr(sheet, cell, cf.CleanText)

	case cf.FirstHyperlink() != "":
		if err := f.SetCellStr(sheet, cell, cf.CleanText); err != nil {
			return 0, err
		}
		if err := f.SetCellHyperLink(sheet, cell, cf.FirstHyperlink(), "External"); err != nil {
			return 0, err
		}
		return styles.link, nil

	case len(cf.Segments) > 1:
		runs := make([]excelize.RichTextRun, 0, len(cf.Segments))
		for _, seg := range cf.Segments {
			runs = append(runs, excelize.RichTextRun{Text: seg.Text, Font: segmentFont(seg)})
		}
		if err := f.SetCellRichText(sheet, cell, runs); err != nil {
			return 0, err
		}
		if cf.HasInlineCode() {
			return styles.codeFillStyle(cf.HasNewline), nil
		}
		return styles.bodyStyle(cf.HasNewline), nil

	case len(cf.Segments) == 1 && !cf.Segments[0].plain():
		seg := cf.Segments[0]
		if err := f.SetCellStr(sheet, cell, cf.CleanText); err != nil {
			return 0, err
		}
		styleID, err := styles.segmentStyle(f, seg, cf.HasNewline)
		if err != nil {
			return 0, err
		}
		return styleID, nil

	default:
		return styles.bodyStyle(cf.HasNewline), f.SetCellStr(sheet, cell, cf.CleanText)
	}
}

// segmentFont maps one segment's flags to a rich-text run font.
func segmentFont(seg TextSegment) *excelize.Font {
	font := &excelize.Font{
		Bold:   seg.Bold,
		Italic: seg.Italic,
		Strike: seg.Strikethrough,
	}
	if seg.Code {
		font.Family = codeFontName
	}
	return font
}

// workbookStyles holds the style IDs shared across cells. Single-segment
// font styles are created on demand since their flag combinations vary.
type workbookStyles struct {
	header    int
	codeBlock int
	link      int
	centered  int
	wrapped   int
	codeFill  int // inline code, centered
	codeWrap  int // inline code, wrapped
}

func newWorkbookStyles(f *excelize.File) (*workbookStyles, error) {
	var s workbookStyles
	var err error

	codeFill := excelize.Fill{Type: "pattern", Color: []string{codeFillColor}, Pattern: 1}
	centered := &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	wrapped := &excelize.Alignment{WrapText: true, Vertical: "top"}

	if s.header, err = f.NewStyle(&excelize.Style{
		Fill:      excelize.Fill{Type: "pattern", Color: []string{headerFillColor}, Pattern: 1},
		Font:      &excelize.Font{Bold: true},
		Alignment: centered,
	}); err != nil {
		return nil, err
	}
	if s.codeBlock, err = f.NewStyle(&excelize.Style{
		Fill:      codeFill,
		Font:      &excelize.Font{Family: codeFontName},
		Alignment: wrapped,
	}); err != nil {
		return nil, err
	}
	if s.link, err = f.NewStyle(&excelize.Style{
		Font:      &excelize.Font{Color: linkFontColor, Underline: "single"},
		Alignment: centered,
	}); err != nil {
		return nil, err
	}
	if s.centered, err = f.NewStyle(&excelize.Style{Alignment: centered}); err != nil {
		return nil, err
	}
	if s.wrapped, err = f.NewStyle(&excelize.Style{Alignment: wrapped}); err != nil {
		return nil, err
	}
	if s.codeFill, err = f.NewStyle(&excelize.Style{Fill: codeFill, Alignment: centered}); err != nil {
		return nil, err
	}
	if s.codeWrap, err = f.NewStyle(&excelize.Style{Fill: codeFill, Alignment: wrapped}); err != nil {
		return nil, err
	}
	return &s, nil
}

// bodyStyle returns the plain cell style: wrapped for multi-line content,
// centered otherwise.
func (s *workbookStyles) bodyStyle(hasNewline bool) int {
	if hasNewline {
		return s.wrapped
	}
	return s.centered
}

// codeFillStyle returns the inline-code background style.
func (s *workbookStyles) codeFillStyle(hasNewline bool) int {
	if hasNewline {
		return s.codeWrap
	}
	return s.codeFill
}

// segmentStyle builds a whole-cell style for a single styled segment.
func (s *workbookStyles) segmentStyle(f *excelize.File, seg TextSegment, hasNewline bool) (int, error) {
	style := excelize.Style{Font: segmentFont(seg)}
	if seg.Code {
		style.Fill = excelize.Fill{Type: "pattern", Color: []string{codeFillColor}, Pattern: 1}
	}
	if hasNewline {
		style.Alignment = &excelize.Alignment{WrapText: true, Vertical: "top"}
	} else {
		style.Alignment = &excelize.Alignment{Horizontal: "center", Vertical: "center"}
	}
	return f.NewStyle(&style)
}
