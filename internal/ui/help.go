package ui

import (
	"github.com/gdamore/tcell/v2"

	"github.com/spanmark/spanmark/internal/styles"
)

type HelpDialog struct {
	visible      bool
	scrollOffset int
}

func NewHelpDialog() *HelpDialog {
	return &HelpDialog{}
}

func (h *HelpDialog) Show() {
	h.visible = true
	h.scrollOffset = 0
}

func (h *HelpDialog) Hide() {
	h.visible = false
}

func (h *HelpDialog) IsVisible() bool {
	return h.visible
}

func (h *HelpDialog) Draw(s tcell.Screen) {
	if !h.visible {
		return
	}

	w, screenHeight := s.Size()
	helpLines := h.getHelpContent()

	maxLineWidth := 0
	for _, line := range helpLines {
		if len(line) > maxLineWidth {
			maxLineWidth = len(line)
		}
	}

	dialogWidth := maxLineWidth + 4 // borders plus margins
	if dialogWidth > w-4 {
		dialogWidth = w - 4
	}
	if dialogWidth < 40 {
		dialogWidth = 40
	}

	dialogHeight := len(helpLines) + 5
	if dialogHeight > screenHeight-4 {
		dialogHeight = screenHeight - 4
	}
	if dialogHeight < 8 {
		dialogHeight = 8
	}

	startX := (w - dialogWidth) / 2
	startY := (screenHeight - dialogHeight) / 2
	if startX < 1 {
		startX = 1
	}
	if startY < 1 {
		startY = 1
	}

	dialogStyle := tcell.StyleDefault.Background(styles.ColorBorder).Foreground(styles.ColorFg)
	for y := startY; y < startY+dialogHeight; y++ {
		for x := startX; x < startX+dialogWidth; x++ {
			s.SetContent(x, y, ' ', nil, dialogStyle)
		}
	}

	for x := startX; x < startX+dialogWidth; x++ {
		switch x {
		case startX:
			s.SetContent(x, startY, '┌', nil, dialogStyle)
			s.SetContent(x, startY+dialogHeight-1, '└', nil, dialogStyle)
		case startX + dialogWidth - 1:
			s.SetContent(x, startY, '┐', nil, dialogStyle)
			s.SetContent(x, startY+dialogHeight-1, '┘', nil, dialogStyle)
		default:
			s.SetContent(x, startY, '─', nil, dialogStyle)
			s.SetContent(x, startY+dialogHeight-1, '─', nil, dialogStyle)
		}
	}
	for y := startY + 1; y < startY+dialogHeight-1; y++ {
		s.SetContent(startX, y, '│', nil, dialogStyle)
		s.SetContent(startX+dialogWidth-1, y, '│', nil, dialogStyle)
	}

	titleStyle := dialogStyle.Foreground(styles.ColorYellow).Bold(true)
	title := "Help - Keybindings"
	drawText(s, startX+(dialogWidth-len(title))/2, startY+1, titleStyle, title)

	contentStartY := startY + 2
	visibleLines := dialogHeight - 4
	for i := 0; i < visibleLines && i+h.scrollOffset < len(helpLines); i++ {
		line := helpLines[i+h.scrollOffset]
		if maxContent := dialogWidth - 4; len(line) > maxContent {
			line = line[:maxContent]
		}
		drawText(s, startX+2, contentStartY+i, dialogStyle, line)
	}

	closeMsg := "Press Esc or ? to close"
	drawText(s, startX+(dialogWidth-len(closeMsg))/2, startY+dialogHeight-2,
		dialogStyle.Foreground(styles.ColorDimmed), closeMsg)
}

func (h *HelpDialog) HandleKey(ev *tcell.EventKey) bool {
	if !h.visible {
		return false
	}

	switch ev.Key() {
	case tcell.KeyEscape:
		h.Hide()
		return true
	case tcell.KeyUp:
		h.scrollUp()
		return true
	case tcell.KeyDown:
		h.scrollDown()
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case '?':
			h.Hide()
		case 'j':
			h.scrollDown()
		case 'k':
			h.scrollUp()
		case 'g':
			h.scrollOffset = 0
		case 'G':
			h.scrollOffset = len(h.getHelpContent()) - 1
		}
	}

	return true // Consume all other keys when visible
}

// getHelpContent returns the help text content
func (h *HelpDialog) getHelpContent() []string {
	return []string{
		"",
		"Navigation:",
		"  j / k         Scroll down/up one line",
		"  Ctrl+F / B    Page down/up",
		"  g             Go to top of document",
		"  G             Go to bottom of document",
		"",
		"Search:",
		"  /             Enter search mode",
		"  Enter         Apply search, jump to first match",
		"  n / N         Next/previous matching line",
		"  Esc           Clear search / leave search mode",
		"",
		"Other:",
		"  ?             Show this help dialog",
		"  q             Quit",
	}
}

func (h *HelpDialog) scrollUp() {
	if h.scrollOffset > 0 {
		h.scrollOffset--
	}
}

func (h *HelpDialog) scrollDown() {
	if h.scrollOffset < len(h.getHelpContent())-1 {
		h.scrollOffset++
	}
}
