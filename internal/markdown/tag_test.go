package markdown

import "testing"

func TestReadTag(t *testing.T) {
	tests := []struct {
		name        string
		input       string
		pos         int
		wantActive  string
		wantEscaped string
		wantNext    int
	}{
		{
			name:       "single asterisk",
			input:      "*word",
			wantActive: "*",
			wantNext:   1,
		},
		{
			name:       "double asterisk",
			input:      "**word",
			wantActive: "**",
			wantNext:   2,
		},
		{
			name:        "escaped asterisk",
			input:       `\*word`,
			wantEscaped: "*",
			wantNext:    2,
		},
		{
			name:        "escape mixed into run",
			input:       `\***bold`,
			wantActive:  "**",
			wantEscaped: "*",
			wantNext:    3,
		},
		{
			name:        "escaped backslash",
			input:       `\\rest`,
			wantEscaped: `\`,
			wantNext:    2,
		},
		{
			name:       "trailing backslash stays active",
			input:      `\rest`,
			wantActive: `\`,
			wantNext:   1,
		},
		{
			name:       "run stops at plain text",
			input:      "`code`",
			wantActive: "`",
			wantNext:   1,
		},
		{
			name:       "mid-string position",
			input:      "ab**cd",
			pos:        2,
			wantActive: "**",
			wantNext:   4,
		},
		{
			name:       "bracket run",
			input:      "[label]",
			wantActive: "[",
			wantNext:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			active, escaped, next := readTag(tt.input, tt.pos)
			if active != tt.wantActive || escaped != tt.wantEscaped || next != tt.wantNext {
				t.Errorf("readTag(%q, %d) = (%q, %q, %d), want (%q, %q, %d)",
					tt.input, tt.pos, active, escaped, next,
					tt.wantActive, tt.wantEscaped, tt.wantNext)
			}
		})
	}
}

func TestStyleFor(t *testing.T) {
	tests := []struct {
		delims string
		want   InlineStyle
		ok     bool
	}{
		{"**", StyleBold, true},
		{"__", StyleBold, true},
		{"*", StyleItalic, true},
		{"_", StyleItalic, true},
		{"`", StyleCode, true},
		{"***", StyleNone, false},
		{"*_", StyleNone, false},
		{"", StyleNone, false},
		{`\`, StyleNone, false},
	}

	for _, tt := range tests {
		got, ok := styleFor(tt.delims)
		if got != tt.want || ok != tt.ok {
			t.Errorf("styleFor(%q) = (%v, %v), want (%v, %v)", tt.delims, got, ok, tt.want, tt.ok)
		}
	}
}
