package styles

import (
	"github.com/gdamore/tcell/v2"

	"github.com/spanmark/spanmark/internal/markdown"
)

// Attributes is the presentation for one span
type Attributes struct {
	Style tcell.Style
	// ParagraphSpacing is the number of blank rows rendered after lines of
	// this block type
	ParagraphSpacing int
}

// Provider resolves a (block type, inline style, link target) triple to
// presentation attributes. The converter core never sees this; only
// renderers do.
type Provider interface {
	Resolve(block markdown.BlockType, style markdown.InlineStyle, linkTarget string) Attributes
}

type styleKey struct {
	block  markdown.BlockType
	inline markdown.InlineStyle
}

// Theme resolves attributes from a fixed default table with optional caller
// overrides. Inline styling is only separately addressable inside body text;
// a heading line renders with the heading's attributes throughout.
type Theme struct {
	overrides map[styleKey]Attributes
}

// NewTheme creates a theme with the default attribute table
func NewTheme() *Theme {
	return &Theme{overrides: make(map[styleKey]Attributes)}
}

// Override installs attributes for a (block, inline) pair. For heading
// blocks only the StyleNone entry is consulted, matching the lookup rules.
func (t *Theme) Override(block markdown.BlockType, style markdown.InlineStyle, attrs Attributes) {
	t.overrides[styleKey{block, style}] = attrs
}

// Resolve implements Provider
func (t *Theme) Resolve(block markdown.BlockType, style markdown.InlineStyle, linkTarget string) Attributes {
	if block != markdown.Body {
		if a, ok := t.overrides[styleKey{block, markdown.StyleNone}]; ok {
			return a
		}
		return headingDefault(block)
	}
	if a, ok := t.overrides[styleKey{block, style}]; ok {
		return a
	}
	a := bodyDefault(style)
	if style == markdown.StyleLink && linkTarget != "" {
		a.Style = a.Style.Url(linkTarget)
	}
	return a
}

// headingDefault returns six distinct heading attributes plus spacing,
// heavier and brighter toward level 1
func headingDefault(block markdown.BlockType) Attributes {
	base := tcell.StyleDefault.Bold(true)
	switch block {
	case markdown.H1:
		return Attributes{Style: base.Foreground(ColorBlue).Underline(true), ParagraphSpacing: 1}
	case markdown.H2:
		return Attributes{Style: base.Foreground(ColorBlue), ParagraphSpacing: 1}
	case markdown.H3:
		return Attributes{Style: base.Foreground(ColorCyan)}
	case markdown.H4:
		return Attributes{Style: base.Foreground(ColorMagenta)}
	case markdown.H5:
		return Attributes{Style: base.Foreground(ColorGreen)}
	case markdown.H6:
		return Attributes{Style: base.Foreground(ColorDimmed)}
	default:
		return Attributes{Style: tcell.StyleDefault}
	}
}

// bodyDefault maps inline styles inside body text
func bodyDefault(style markdown.InlineStyle) Attributes {
	switch style {
	case markdown.StyleBold:
		return Attributes{Style: tcell.StyleDefault.Bold(true)}
	case markdown.StyleItalic:
		return Attributes{Style: tcell.StyleDefault.Italic(true)}
	case markdown.StyleCode:
		return Attributes{Style: tcell.StyleDefault.Foreground(ColorTeal)}
	case markdown.StyleLink:
		return Attributes{Style: tcell.StyleDefault.Foreground(ColorBlue).Underline(true)}
	default:
		return Attributes{Style: tcell.StyleDefault}
	}
}
