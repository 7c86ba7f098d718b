package markdown

import "strings"

// BlockType classifies an entire line of input
type BlockType int

const (
	Body BlockType = iota
	H1
	H2
	H3
	H4
	H5
	H6
)

func (b BlockType) String() string {
	switch b {
	case H1:
		return "h1"
	case H2:
		return "h2"
	case H3:
		return "h3"
	case H4:
		return "h4"
	case H5:
		return "h5"
	case H6:
		return "h6"
	default:
		return "body"
	}
}

// HeadingLevel returns 1-6 for headings and 0 for body text
func (b BlockType) HeadingLevel() int {
	if b >= H1 && b <= H6 {
		return int(b-H1) + 1
	}
	return 0
}

// InlineStyle represents character-level styling within a line
type InlineStyle int

const (
	StyleNone InlineStyle = iota
	StyleItalic
	StyleBold
	StyleCode
	StyleLink
)

func (s InlineStyle) String() string {
	switch s {
	case StyleItalic:
		return "italic"
	case StyleBold:
		return "bold"
	case StyleCode:
		return "code"
	case StyleLink:
		return "link"
	default:
		return "none"
	}
}

// StyledSpan is a run of text sharing one block type and one inline style.
// LinkTarget is non-empty exactly when Style is StyleLink.
type StyledSpan struct {
	Text       string
	Block      BlockType
	Style      InlineStyle
	LinkTarget string
}

// StyledLine is the ordered spans of one input line, including its
// terminating line-break span
type StyledLine struct {
	Block BlockType
	Spans []StyledSpan
}

// Text returns the concatenated span text, terminator included
func (l StyledLine) Text() string {
	var b strings.Builder
	for _, s := range l.Spans {
		b.WriteString(s.Text)
	}
	return b.String()
}

// Document is the complete result of one conversion
type Document struct {
	Lines []StyledLine
}

// Text reconstructs the converted text: the original input with markup
// characters removed and escapes resolved, one terminator per line
func (d Document) Text() string {
	var b strings.Builder
	for _, l := range d.Lines {
		for _, s := range l.Spans {
			b.WriteString(s.Text)
		}
	}
	return b.String()
}
