package md2office

import "errors"

// Sentinel errors for library operations.
var (
	ErrEmptyMarkdown = errors.New("markdown content cannot be empty")

	// ErrNotATable signals that the clipboard payload is not a valid
	// Markdown table. The parser itself reports this condition through
	// ParseTable's boolean; the Service turns it into this error only when
	// the caller explicitly targeted the sheet flow.
	ErrNotATable = errors.New("input is not a markdown table")

	ErrInvalidTarget = errors.New("invalid paste target")
	ErrNoOutputDir   = errors.New("no output directory configured")

	// Pandoc conversion errors.
	ErrPandocNotFound = errors.New("pandoc executable not found")
	ErrPandocFailed   = errors.New("pandoc conversion failed")

	// Workbook generation errors.
	ErrWorkbookWrite = errors.New("workbook generation failed")

	// Renderer errors.
	ErrRenderFailed = errors.New("table rendering failed")
)
