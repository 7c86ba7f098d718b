package markdown

import "strings"

// Converter turns lightweight markup into styled spans. It holds no per-call
// state, so one instance can run conversions from multiple goroutines.
type Converter struct{}

// New creates a converter
func New() *Converter {
	return &Converter{}
}

// Convert processes text and returns the ordered styled-line sequence.
// Every line of input yields one StyledLine ending in a terminator span,
// except setext underline lines, which are consumed as markup for the line
// above them.
func (c *Converter) Convert(text string) Document {
	if text == "" {
		return Document{}
	}
	lines := splitLines(text)
	doc := Document{Lines: make([]StyledLine, 0, len(lines))}
	for i := 0; i < len(lines); i++ {
		next := ""
		hasNext := i+1 < len(lines)
		if hasNext {
			next = lines[i+1]
		}
		block, content, consumedNext := classifyLine(lines[i], next, hasNext)
		if consumedNext {
			i++
		}
		doc.Lines = append(doc.Lines, assembleLine(block, scanLine(content, block)))
	}
	return doc
}

// assembleLine folds a line's spans together, merging adjacent spans that
// share a style so each span is a maximal run, then appends the line
// terminator.
func assembleLine(block BlockType, spans []StyledSpan) StyledLine {
	line := StyledLine{Block: block}
	for _, span := range spans {
		if n := len(line.Spans); n > 0 {
			prev := &line.Spans[n-1]
			if prev.Style == span.Style && prev.LinkTarget == span.LinkTarget {
				prev.Text += span.Text
				continue
			}
		}
		line.Spans = append(line.Spans, span)
	}
	line.Spans = append(line.Spans, StyledSpan{Text: "\n", Block: block, Style: StyleNone})
	return line
}

// splitLines splits on newlines, tolerating CRLF input. A trailing newline
// does not produce a trailing empty line: the terminator span already
// accounts for it.
func splitLines(text string) []string {
	lines := strings.Split(text, "\n")
	if n := len(lines); n > 0 && lines[n-1] == "" {
		lines = lines[:n-1]
	}
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
