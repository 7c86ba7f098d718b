package markdown

import "strings"

// The instruction alphabet: the characters that can start inline markup.
const instructionAlphabet = "[\\*_`"

func isInstruction(c byte) bool {
	switch c {
	case '[', '\\', '*', '_', '`':
		return true
	}
	return false
}

// readTag consumes the maximal run of instruction-alphabet characters
// starting at pos. Within the run, every backslash followed by a character
// forms an escape pair: the escaped character goes to escaped and never acts
// as a delimiter. What remains is active, the characters that participate in
// style determination. next is the offset just past the run.
func readTag(s string, pos int) (active, escaped string, next int) {
	end := pos
	for end < len(s) && isInstruction(s[end]) {
		end++
	}
	run := s[pos:end]
	if !strings.Contains(run, `\`) {
		return run, "", end
	}
	var act, esc strings.Builder
	for i := 0; i < len(run); i++ {
		if run[i] == '\\' && i+1 < len(run) {
			esc.WriteByte(run[i+1])
			i++
			continue
		}
		act.WriteByte(run[i])
	}
	return act.String(), esc.String(), end
}

// styleFor resolves an active delimiter run against the fixed style table.
// The whole run is matched as one unit, so ** is a single bold delimiter
// rather than two nested italic ones. Link openers are handled separately.
func styleFor(delims string) (InlineStyle, bool) {
	switch delims {
	case "**", "__":
		return StyleBold, true
	case "*", "_":
		return StyleItalic, true
	case "`":
		return StyleCode, true
	}
	return StyleNone, false
}
