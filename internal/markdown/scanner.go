package markdown

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// scanner walks one line's content, alternating between plain text runs and
// styled runs. All state is local to the call so converters stay reusable
// across goroutines.
type scanner struct {
	src   string
	pos   int
	block BlockType
	spans []StyledSpan
}

// scanLine produces the ordered spans covering content.
func scanLine(content string, block BlockType) []StyledSpan {
	sc := &scanner{src: content, block: block}
	for sc.pos < len(sc.src) {
		sc.plain()
		if sc.pos >= len(sc.src) {
			break
		}
		sc.tagged()
	}
	return sc.spans
}

func (sc *scanner) emit(text string, style InlineStyle, target string) {
	if text == "" {
		return
	}
	sc.spans = append(sc.spans, StyledSpan{
		Text:       text,
		Block:      sc.block,
		Style:      style,
		LinkTarget: target,
	})
}

// plain consumes text up to the next instruction character.
func (sc *scanner) plain() {
	start := sc.pos
	for sc.pos < len(sc.src) && !isInstruction(sc.src[sc.pos]) {
		sc.pos++
	}
	sc.emit(sc.src[start:sc.pos], StyleNone, "")
}

// tagged consumes one delimiter run and, when it opens a style, the styled
// body and its closing run.
func (sc *scanner) tagged() {
	tagStart := sc.pos
	active, escaped, next := readTag(sc.src, sc.pos)
	sc.pos = next

	if active == "" {
		// Pure escape run, e.g. \* — literal text.
		sc.emit(escaped, StyleNone, "")
		return
	}

	// A link opener is always attempted; any other run followed by
	// whitespace, punctuation, or end of line is literal text.
	if active[0] == '[' {
		sc.link(active, escaped)
		return
	}
	if !opensBody(sc.src, sc.pos) {
		sc.emit(active+escaped, StyleNone, "")
		return
	}

	style, ok := styleFor(active)
	if !ok {
		sc.emit(active+escaped, StyleNone, "")
		return
	}

	// Escapes mixed into an opening run stay literal, ahead of the body.
	sc.emit(escaped, StyleNone, "")

	bodyStart := sc.pos
	for sc.pos < len(sc.src) && !isInstruction(sc.src[sc.pos]) {
		sc.pos++
	}
	body := sc.src[bodyStart:sc.pos]
	if style == StyleCode && tagStart == 0 {
		// Inline code opening a line is set off with a tab.
		body = "\t" + body
	}
	sc.emit(body, style, "")

	// Closing run. Escapes immediately after it remain literal rather than
	// re-entering style mode.
	_, closeEscaped, after := readTag(sc.src, sc.pos)
	sc.pos = after
	sc.emit(closeEscaped, StyleNone, "")
}

// link scans [label](target) following an opening run whose first active
// character is '['. On any failure the attempt degrades to unstyled text:
// the tag run and the whole remainder of the line are emitted as one plain
// span so no characters are dropped.
func (sc *scanner) link(active, escaped string) {
	rest := sc.src[sc.pos:]
	closeBracket := strings.IndexByte(rest, ']')
	if closeBracket <= 0 || closeBracket+1 >= len(rest) || rest[closeBracket+1] != '(' {
		sc.linkFallback(active, escaped)
		return
	}
	closeParen := strings.IndexByte(rest[closeBracket+2:], ')')
	if closeParen <= 0 {
		sc.linkFallback(active, escaped)
		return
	}
	label := rest[:closeBracket]
	target := rest[closeBracket+2 : closeBracket+2+closeParen]

	// Delimiters in the run beyond the opener stay literal, as do escapes.
	sc.emit(active[1:]+escaped, StyleNone, "")
	sc.emit(label, StyleLink, target)
	sc.pos += closeBracket + 2 + closeParen + 1
}

func (sc *scanner) linkFallback(active, escaped string) {
	sc.emit(active+escaped+sc.src[sc.pos:], StyleNone, "")
	sc.pos = len(sc.src)
}

// opensBody reports whether the character at pos can start a styled body.
// Whitespace, punctuation, and end of line all demote the preceding
// delimiter run to literal text.
func opensBody(s string, pos int) bool {
	if pos >= len(s) {
		return false
	}
	r, _ := utf8.DecodeRuneInString(s[pos:])
	return !isSpaceRune(r) && !isPunctRune(r)
}

func isSpaceRune(r rune) bool {
	if r < 0x80 {
		return r == ' ' || r == '\t' || r == '\f' || r == '\n'
	}
	return unicode.In(r, unicode.Zs)
}

func isPunctRune(r rune) bool {
	if r < 0x80 {
		c := byte(r)
		return '!' <= c && c <= '/' || ':' <= c && c <= '@' ||
			'[' <= c && c <= '`' || '{' <= c && c <= '~'
	}
	return unicode.In(r, unicode.Punct, unicode.Symbol)
}
