package md2office

import (
	"regexp"
	"strings"
)

// Precompiled patterns for HTML constructs accepted inside cells.
var (
	brTag       = regexp.MustCompile(`(?i)<br\s*/?>`)
	preTagPair  = regexp.MustCompile(`(?is)<pre>(.*?)</pre>`)
	codeTagPair = regexp.MustCompile(`(?is)<code>(.*?)</code>`)
)

// ParseCell decomposes one cell's raw text into styled segments. It is a
// total function: unmatched delimiters, stray brackets, and unterminated
// spans degrade to literal text, never to an error.
//
// HTML line breaks are normalized to newlines first. A cell containing a
// <pre> or <code> tag is treated wholly as a literal code block: the tags
// are stripped, the content keeps its newlines, and no inline parsing is
// applied. This check takes precedence over all inline markup.
func ParseCell(raw string) CellFormat {
	cf := CellFormat{RawText: raw}

	text := brTag.ReplaceAllString(raw, "\n")
	if strings.Contains(text, "\n") {
		cf.HasNewline = true
	}

	lower := strings.ToLower(text)
	if strings.Contains(lower, "<pre>") || strings.Contains(lower, "<code>") {
		cf.IsCodeBlock = true
		text = preTagPair.ReplaceAllString(text, "$1")
		text = codeTagPair.ReplaceAllString(text, "$1")
		cf.CleanText = strings.TrimSpace(text)
		if cf.CleanText != "" {
			cf.Segments = []TextSegment{{Text: cf.CleanText, Code: true}}
		}
		return cf
	}

	cf.Segments = parseSegments([]rune(text), styleState{})

	var clean strings.Builder
	for _, seg := range cf.Segments {
		clean.WriteString(seg.Text)
	}
	cf.CleanText = clean.String()
	return cf
}

// styleState is the ambient emphasis context inherited by nested markup.
type styleState struct {
	bold          bool
	italic        bool
	strikethrough bool
}

// parseSegments is the recursive character-level scanner. At each position
// it tries, in priority order: escape, code span, strikethrough, bold+italic,
// bold, italic, link; anything else is a literal character. A rule whose
// opening pattern matches but whose closing delimiter is missing falls
// through, so the opener ends up as literal text.
//
// Nesting guards mirror the accepted syntax: strikethrough and bold do not
// re-enter themselves, the triple forms require neither bold nor italic to
// be active, and italic is recognized even inside bold so the two can
// combine by nesting in either order.
func parseSegments(text []rune, st styleState) []TextSegment {
	var segments []TextSegment
	var buf []rune

	flush := func() {
		if len(buf) > 0 {
			segments = append(segments, TextSegment{
				Text:          string(buf),
				Bold:          st.bold,
				Italic:        st.italic,
				Strikethrough: st.strikethrough,
			})
			buf = buf[:0]
		}
	}

	i := 0
	for i < len(text) {
		// Escape: the next character is literal, never markup.
		if text[i] == '\\' && i+1 < len(text) {
			buf = append(buf, text[i+1])
			i += 2
			continue
		}

		// Code span: literal interior, ambient styles discarded.
		if text[i] == '`' {
			if end := indexRune(text, '`', i+1); end != -1 {
				flush()
				if code := text[i+1 : end]; len(code) > 0 {
					segments = append(segments, TextSegment{Text: string(code), Code: true})
				}
				i = end + 1
				continue
			}
		}

		// Strikethrough ~~...~~
		if hasDelimAt(text, i, "~~") && !st.strikethrough {
			if end := indexDelim(text, "~~", i+2); end != -1 {
				flush()
				inner := st
				inner.strikethrough = true
				segments = append(segments, parseSegments(text[i+2:end], inner)...)
				i = end + 2
				continue
			}
		}

		// Bold+italic ***...***
		if hasDelimAt(text, i, "***") && !st.bold && !st.italic {
			if end := indexDelim(text, "***", i+3); end != -1 {
				flush()
				inner := st
				inner.bold = true
				inner.italic = true
				segments = append(segments, parseSegments(text[i+3:end], inner)...)
				i = end + 3
				continue
			}
		}

		// Bold **...**: match the next ** pair, stepping over single stars.
		if hasDelimAt(text, i, "**") && !st.bold {
			i = scanDouble(text, i, '*', st, &segments, &buf, flush)
			continue
		}

		// Bold+italic ___...___
		if hasDelimAt(text, i, "___") && !st.bold && !st.italic {
			if end := indexDelim(text, "___", i+3); end != -1 {
				flush()
				inner := st
				inner.bold = true
				inner.italic = true
				segments = append(segments, parseSegments(text[i+3:end], inner)...)
				i = end + 3
				continue
			}
		}

		// Bold __...__
		if hasDelimAt(text, i, "__") && !st.bold {
			i = scanDouble(text, i, '_', st, &segments, &buf, flush)
			continue
		}

		// Italic *...* — a single star not followed by its duplicate.
		// No guard on the italic flag: bold and italic may combine by
		// nesting in either order.
		if isSingleDelim(text, i, '*') {
			i = scanSingle(text, i, '*', st, &segments, &buf, flush)
			continue
		}

		// Italic _..._
		if isSingleDelim(text, i, '_') {
			i = scanSingle(text, i, '_', st, &segments, &buf, flush)
			continue
		}

		// Link [text](url): display text is parsed with the ambient styles
		// and every resulting segment carries the URL.
		if text[i] == '[' {
			closeBracket := indexRune(text, ']', i+1)
			if closeBracket != -1 && closeBracket+1 < len(text) && text[closeBracket+1] == '(' {
				if closeParen := indexRune(text, ')', closeBracket+2); closeParen != -1 {
					flush()
					url := string(text[closeBracket+2 : closeParen])
					linked := parseSegments(text[i+1:closeBracket], st)
					for k := range linked {
						linked[k].HyperlinkURL = url
					}
					segments = append(segments, linked...)
					i = closeParen + 1
					continue
				}
			}
		}

		buf = append(buf, text[i])
		i++
	}

	flush()
	return segments
}

// scanDouble handles a two-character emphasis delimiter (** or __) opening
// at position i. It searches for the next pair of the same character,
// stepping over single occurrences; on a match the interior is recursively
// parsed with bold set. Without a closing pair the opening character is
// literal and the scan advances by one. Returns the new scan position.
func scanDouble(text []rune, i int, delim rune, st styleState, segments *[]TextSegment, buf *[]rune, flush func()) int {
	for end := i + 2; end < len(text)-1; end++ {
		if text[end] == delim && text[end+1] == delim {
			flush()
			inner := st
			inner.bold = true
			*segments = append(*segments, parseSegments(text[i+2:end], inner)...)
			return end + 2
		}
	}
	*buf = append(*buf, text[i])
	return i + 1
}

// scanSingle handles a single-character italic delimiter (* or _) opening
// at position i. The closing delimiter is the next unpaired occurrence of
// the same character; unmatched delimiters are literal. Returns the new
// scan position.
func scanSingle(text []rune, i int, delim rune, st styleState, segments *[]TextSegment, buf *[]rune, flush func()) int {
	for end := i + 1; end < len(text); end++ {
		if text[end] == delim && (end+1 >= len(text) || text[end+1] != delim) {
			flush()
			inner := st
			inner.italic = true
			*segments = append(*segments, parseSegments(text[i+1:end], inner)...)
			return end + 1
		}
	}
	*buf = append(*buf, text[i])
	return i + 1
}

// isSingleDelim reports whether position i holds delim not immediately
// followed by its own duplicate.
func isSingleDelim(text []rune, i int, delim rune) bool {
	return text[i] == delim && (i+1 >= len(text) || text[i+1] != delim)
}

// hasDelimAt reports whether the delimiter string starts at position i.
func hasDelimAt(text []rune, i int, delim string) bool {
	for _, r := range delim {
		if i >= len(text) || text[i] != r {
			return false
		}
		i++
	}
	return true
}

// indexRune returns the position of the first occurrence of r at or after
// from, or -1.
func indexRune(text []rune, r rune, from int) int {
	for i := from; i < len(text); i++ {
		if text[i] == r {
			return i
		}
	}
	return -1
}

// indexDelim returns the position of the first occurrence of the delimiter
// string at or after from, or -1.
func indexDelim(text []rune, delim string, from int) int {
	for i := from; i <= len(text)-len([]rune(delim)); i++ {
		if hasDelimAt(text, i, delim) {
			return i
		}
	}
	return -1
}
