package markdown

import "strings"

// classifyLine assigns a block type to line and returns its content with
// block markup stripped. next is the following input line, if any;
// consumedNext reports that next was a setext underline for this line and
// must be skipped by the caller.
func classifyLine(line, next string, hasNext bool) (block BlockType, content string, consumedNext bool) {
	// ATX headings. The prefixes are mutually exclusive (N hashes then a
	// space), so the first match is the only match.
	for level := 1; level <= 6; level++ {
		marker := strings.Repeat("#", level)
		if !strings.HasPrefix(line, marker+" ") {
			continue
		}
		content = strings.TrimSpace(line[level+1:])
		content = stripClosingMarkers(content)
		return BlockType(int(H1) + level - 1), content, false
	}

	// Setext headings: the next line underlines this one.
	if hasNext && strings.TrimSpace(line) != "" {
		switch underlineRune(next) {
		case '=':
			return H1, strings.TrimSpace(line), true
		case '-':
			return H2, strings.TrimSpace(line), true
		}
	}

	return Body, line, false
}

// stripClosingMarkers removes an ATX closing marker run from the end of a
// heading. The run only counts as markup when it is space-separated from the
// text (or is the whole remainder), so "# C#" keeps its trailing hash.
func stripClosingMarkers(content string) string {
	trimmed := strings.TrimRight(content, "#")
	if trimmed == content {
		return content
	}
	if trimmed == "" || strings.HasSuffix(trimmed, " ") {
		return strings.TrimRight(trimmed, " ")
	}
	return content
}

// underlineRune reports whether line is a setext underline, returning '='
// or '-' if the entire line is one run of that character, 0 otherwise.
func underlineRune(line string) byte {
	if line == "" {
		return 0
	}
	c := line[0]
	if c != '=' && c != '-' {
		return 0
	}
	for i := 1; i < len(line); i++ {
		if line[i] != c {
			return 0
		}
	}
	return c
}
