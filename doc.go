// Package md2office turns Markdown clipboard payloads into rich office
// content: pipe-delimited tables become styled spreadsheet cells, and full
// documents become DOCX files via pandoc.
//
// # Quick Start
//
// Create a service and paste clipboard text:
//
//	svc := md2office.New(md2office.WithOutputDir("/tmp/md2office"))
//
//	result, err := svc.Paste(ctx, md2office.Input{
//	    Markdown: clipboardText,
//	    Target:   md2office.TargetAuto,
//	})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(result.Kind, result.OutputPath)
//
// TargetAuto routes Markdown tables to the sheet flow and everything else
// to the document flow. TargetSheet and TargetDocument force a flow.
//
// # Parsing Core
//
// The table and inline parsers are dependency-free character-level scanners
// exposed directly:
//
//	table, ok := md2office.ParseTable(text)   // rows of raw cell strings
//	cell := md2office.ParseCell(table[0][0])  // ordered styled segments
//
// ParseCell is a total function: unmatched markup degrades to literal text,
// so odd clipboard content never aborts the pipeline. Accepted inline
// syntax: **bold**, *italic*, ***both***, ~~strikethrough~~, `code`,
// [text](url) links, <br> line breaks, whole-cell <pre>/<code> blocks, and
// backslash escapes.
//
// # Renderers
//
// Parsed tables are consumed by two renderer kinds: WorkbookWriter
// generates standalone XLSX files with rich-text runs, and the
// TableRenderer interface is implemented by live-session collaborators
// (platform automation bridges) installed via WithRenderer. Both consume
// the same CellFormat/TextSegment model; PlanRows, NeedsFormatting, and
// ColumnWidths carry the shared bookkeeping.
//
// # Document Flow
//
// Non-table payloads are normalized (line endings, LaTeX math delimiters)
// and converted to DOCX through the pandoc binary. Use WithPandocPath and
// WithReferenceDoc to control the invocation, and WithTimeout to bound it.
//
// # Triggering
//
// Hotkey-driven front ends should wrap Paste calls in a Gate, which drops
// repeated triggers inside a debounce window and keeps at most one run
// active system-wide.
package md2office
