package ui

import (
	"strings"

	"github.com/mattn/go-runewidth"

	"github.com/spanmark/spanmark/internal/markdown"
)

// cell is one screen position of a styled line, remembering which span it
// came from so styles and search highlights survive wrapping.
type cell struct {
	r    rune
	span int // index into the source line's spans
	pos  int // rune offset within the line's visible text
}

// wrappedRow is one screen row of a wrapped line
type wrappedRow struct {
	cells []cell
}

// wrapLine word-wraps a styled line to width screen cells. The terminator
// span is not rendered. Wrapping prefers space boundaries and falls back to
// a hard break for words wider than the row.
func wrapLine(line markdown.StyledLine, width int) []wrappedRow {
	if width <= 0 {
		return nil
	}

	var cells []cell
	pos := 0
	for i, span := range line.Spans {
		text := span.Text
		if i == len(line.Spans)-1 {
			text = strings.TrimSuffix(text, "\n")
		}
		for _, r := range text {
			cells = append(cells, cell{r: r, span: i, pos: pos})
			pos++
		}
	}
	if len(cells) == 0 {
		return []wrappedRow{{}}
	}

	var rows []wrappedRow
	var current []cell
	currentWidth := 0
	lastSpace := -1 // index into current of the last breakable cell

	for _, c := range cells {
		w := cellWidth(c.r)
		if currentWidth+w > width && len(current) > 0 {
			if c.r == ' ' {
				// Break here and swallow the separator.
				rows = append(rows, wrappedRow{cells: current})
				current = nil
				currentWidth = 0
				lastSpace = -1
				continue
			}
			if lastSpace >= 0 {
				// Break at the previous space, carrying the partial
				// word to the next row.
				rows = append(rows, wrappedRow{cells: current[:lastSpace]})
				carried := append([]cell(nil), current[lastSpace+1:]...)
				current = carried
				currentWidth = 0
				for _, cc := range current {
					currentWidth += cellWidth(cc.r)
				}
				lastSpace = -1
			} else {
				rows = append(rows, wrappedRow{cells: current})
				current = nil
				currentWidth = 0
			}
		}
		if c.r == ' ' {
			lastSpace = len(current)
		}
		current = append(current, c)
		currentWidth += w
	}
	if len(current) > 0 {
		rows = append(rows, wrappedRow{cells: current})
	}
	if len(rows) == 0 {
		rows = []wrappedRow{{}}
	}
	return rows
}

// cellWidth is the number of screen cells a rune occupies when drawn.
// Zero-width runes still advance one cell so the cursor never stalls.
func cellWidth(r rune) int {
	if w := runewidth.RuneWidth(r); w > 0 {
		return w
	}
	return 1
}

// text returns the row's plain text
func (r wrappedRow) text() string {
	var b strings.Builder
	for _, c := range r.cells {
		b.WriteRune(c.r)
	}
	return b.String()
}
