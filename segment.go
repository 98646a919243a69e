package md2office

// TextSegment is an immutable run of text carrying one uniform combination
// of style flags. A style change always starts a new segment, and segments
// with empty text are never emitted by the parser.
//
// Code is set for inline code spans and whole-cell code blocks. A code span
// discards the ambient bold/italic/strikethrough context, but the flags are
// independent at the model level so renderers can combine them freely.
type TextSegment struct {
	Text          string
	Bold          bool
	Italic        bool
	Strikethrough bool
	Code          bool

	// HyperlinkURL is non-empty when the segment is part of a link's
	// display text.
	HyperlinkURL string
}

// plain reports whether the segment carries no styling at all.
func (s TextSegment) plain() bool {
	return !s.Bold && !s.Italic && !s.Strikethrough && !s.Code && s.HyperlinkURL == ""
}

// CellFormat is one table cell's parsed representation. It is constructed
// by ParseCell and never mutated afterwards; renderers treat it as read-only.
type CellFormat struct {
	// RawText is the original cell input, markers included.
	RawText string

	// Segments holds the styled runs in left-to-right reading order.
	Segments []TextSegment

	// HasNewline is true if the cell contained an HTML line break or a
	// literal newline.
	HasNewline bool

	// IsCodeBlock is true if the cell was wholly a <pre>/<code> block.
	// When set, Segments holds at most one code-flagged segment with the
	// verbatim newline-preserved content.
	IsCodeBlock bool

	// CleanText is the concatenation of all segment texts: the plain-text
	// projection with all markers and tags stripped.
	CleanText string
}

// FirstHyperlink returns the URL of the first link segment in the cell,
// or "" if the cell contains no link.
func (c CellFormat) FirstHyperlink() string {
	for _, seg := range c.Segments {
		if seg.HyperlinkURL != "" {
			return seg.HyperlinkURL
		}
	}
	return ""
}

// HasInlineCode reports whether any segment is an inline code span.
func (c CellFormat) HasInlineCode() bool {
	for _, seg := range c.Segments {
		if seg.Code {
			return true
		}
	}
	return false
}

// Table is an ordered sequence of rows, each an ordered sequence of raw
// (pre-inline-parsing) cell strings. Rows may have differing cell counts;
// padding to a common width is a renderer concern (see PadRows), not a
// parser invariant.
type Table [][]string

// Width returns the widest row's cell count.
func (t Table) Width() int {
	width := 0
	for _, row := range t {
		if len(row) > width {
			width = len(row)
		}
	}
	return width
}
