package md2office

import (
	"regexp"
	"strings"
)

// Precompiled regex patterns for preprocessing passes.
var (
	// Line ending normalization
	crlfOrCR = regexp.MustCompile(`\r\n?`)

	// LaTeX delimiters pandoc's tex_math_dollars extension does not accept
	latexBlock  = regexp.MustCompile(`(?s)\\\[(.*?)\\\]`)
	latexInline = regexp.MustCompile(`(?s)\\\((.*?)\\\)`)
)

// MarkdownPreprocessor defines the contract for markdown preprocessing
// applied before document conversion.
type MarkdownPreprocessor interface {
	PreprocessMarkdown(content string) string
}

// ClipboardPreprocessor normalizes clipboard Markdown for pandoc.
type ClipboardPreprocessor struct{}

// PreprocessMarkdown applies all transformations in order: line endings
// first (clipboard text on Windows arrives CRLF), then math delimiter
// conversion so pandoc picks formulas up as tex_math_dollars.
func (p *ClipboardPreprocessor) PreprocessMarkdown(content string) string {
	content = NormalizeLineEndings(content)
	content = ConvertLatexDelimiters(content)
	return content
}

// NormalizeLineEndings converts \r\n and \r to \n.
func NormalizeLineEndings(content string) string {
	return crlfOrCR.ReplaceAllString(content, "\n")
}

// ConvertLatexDelimiters rewrites LaTeX-style math delimiters to the
// dollar forms pandoc understands: block \[...\] becomes $$...$$ on its
// own lines, inline \(...\) becomes $...$. Formula bodies are trimmed.
func ConvertLatexDelimiters(content string) string {
	content = latexBlock.ReplaceAllStringFunc(content, func(m string) string {
		formula := strings.TrimSpace(latexBlock.FindStringSubmatch(m)[1])
		return "$$\n" + formula + "\n$$"
	})
	content = latexInline.ReplaceAllStringFunc(content, func(m string) string {
		formula := strings.TrimSpace(latexInline.FindStringSubmatch(m)[1])
		return "$" + formula + "$"
	})
	return content
}
