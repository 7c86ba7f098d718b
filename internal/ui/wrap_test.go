package ui

import (
	"testing"

	"github.com/spanmark/spanmark/internal/markdown"
)

func styledLine(spans ...markdown.StyledSpan) markdown.StyledLine {
	spans = append(spans, markdown.StyledSpan{Text: "\n"})
	return markdown.StyledLine{Spans: spans}
}

func TestWrapLine(t *testing.T) {
	tests := []struct {
		name  string
		line  markdown.StyledLine
		width int
		want  []string
	}{
		{
			name:  "fits on one row",
			line:  styledLine(markdown.StyledSpan{Text: "short"}),
			width: 20,
			want:  []string{"short"},
		},
		{
			name:  "breaks at space",
			line:  styledLine(markdown.StyledSpan{Text: "alpha beta gamma"}),
			width: 11,
			want:  []string{"alpha beta", "gamma"},
		},
		{
			name:  "hard break for long word",
			line:  styledLine(markdown.StyledSpan{Text: "abcdefghij"}),
			width: 4,
			want:  []string{"abcd", "efgh", "ij"},
		},
		{
			name:  "empty line yields one empty row",
			line:  styledLine(),
			width: 10,
			want:  []string{""},
		},
		{
			name: "break across span boundary",
			line: styledLine(
				markdown.StyledSpan{Text: "some "},
				markdown.StyledSpan{Text: "bold", Style: markdown.StyleBold},
				markdown.StyledSpan{Text: " trailing text"},
			),
			width: 10,
			want:  []string{"some bold", "trailing", "text"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rows := wrapLine(tt.line, tt.width)
			if len(rows) != len(tt.want) {
				t.Fatalf("wrapLine produced %d rows, want %d: %+v", len(rows), len(tt.want), rowTexts(rows))
			}
			for i, row := range rows {
				if row.text() != tt.want[i] {
					t.Errorf("row %d = %q, want %q", i, row.text(), tt.want[i])
				}
			}
		})
	}
}

func TestWrapLinePreservesSpanStyles(t *testing.T) {
	line := styledLine(
		markdown.StyledSpan{Text: "plain "},
		markdown.StyledSpan{Text: "boldword", Style: markdown.StyleBold},
	)
	rows := wrapLine(line, 8)

	for _, row := range rows {
		for _, c := range row.cells {
			span := line.Spans[c.span]
			inBold := span.Style == markdown.StyleBold
			isBoldRune := c.pos >= 6 // after "plain "
			if inBold != isBoldRune {
				t.Errorf("cell %q at pos %d mapped to span with style %v", c.r, c.pos, span.Style)
			}
		}
	}
}

func TestWrapLineWideRunes(t *testing.T) {
	// Double-width CJK runes: four columns fit only two runes.
	line := styledLine(markdown.StyledSpan{Text: "日本語文"})
	rows := wrapLine(line, 4)
	if len(rows) != 2 {
		t.Fatalf("expected 2 rows for double-width text, got %d: %+v", len(rows), rowTexts(rows))
	}
	if rows[0].text() != "日本" || rows[1].text() != "語文" {
		t.Errorf("rows = %q, %q, want 日本, 語文", rows[0].text(), rows[1].text())
	}
}

func TestWrapLineZeroWidth(t *testing.T) {
	if rows := wrapLine(styledLine(markdown.StyledSpan{Text: "x"}), 0); rows != nil {
		t.Errorf("width 0 should produce no rows, got %+v", rowTexts(rows))
	}
}

func rowTexts(rows []wrappedRow) []string {
	out := make([]string, len(rows))
	for i, r := range rows {
		out[i] = r.text()
	}
	return out
}
