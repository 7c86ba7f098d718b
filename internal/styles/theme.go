package styles

import "github.com/gdamore/tcell/v2"

// TokyoNight color palette
var (
	ColorBg        = tcell.NewRGBColor(0x1a, 0x1b, 0x26) // #1a1b26 - Dark background
	ColorFg        = tcell.NewRGBColor(0xc0, 0xca, 0xf5) // #c0caf5 - Default text
	ColorFgDark    = tcell.NewRGBColor(0x56, 0x5f, 0x89) // #565f89 - Dimmed text
	ColorBlue      = tcell.NewRGBColor(0x7a, 0xa2, 0xf7) // #7aa2f7 - Primary blue
	ColorCyan      = tcell.NewRGBColor(0x7d, 0xcf, 0xff) // #7dcfff - Cyan
	ColorGreen     = tcell.NewRGBColor(0x9e, 0xce, 0x6a) // #9ece6a - Green
	ColorMagenta   = tcell.NewRGBColor(0xbb, 0x9a, 0xf7) // #bb9af7 - Purple/Magenta
	ColorRed       = tcell.NewRGBColor(0xf7, 0x76, 0x8e) // #f7768e - Red
	ColorTeal      = tcell.NewRGBColor(0x1a, 0xbc, 0x9c) // #1abc9c - Teal
	ColorYellow    = tcell.NewRGBColor(0xe0, 0xaf, 0x68) // #e0af68 - Yellow
	ColorBorder    = tcell.NewRGBColor(0x29, 0x2e, 0x42) // #292e42 - Borders
	ColorSelection = tcell.NewRGBColor(0x29, 0x2e, 0x42) // #292e42 - Highlighted background

	// UI-specific color mappings
	ColorHighlight = ColorYellow // Search highlights
	ColorError     = ColorRed    // Error messages
	ColorDimmed    = ColorFgDark // Dimmed text
)
