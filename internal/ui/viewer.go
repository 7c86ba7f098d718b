package ui

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/gdamore/tcell/v2"

	"github.com/spanmark/spanmark/internal/markdown"
	"github.com/spanmark/spanmark/internal/styles"
)

type Mode int

const (
	ModeNormal Mode = iota
	ModeSearch
)

// Viewer is a pager over a converted document. Presentation comes entirely
// from the style provider; the viewer itself never inspects markup.
type Viewer struct {
	screen   tcell.Screen
	doc      markdown.Document
	provider styles.Provider
	settings *Settings

	quit chan struct{}
	mode Mode

	search *SearchState
	help   *HelpDialog

	title  string
	offset int // first visible rendered row
	rows   []renderRow

	// Per-line search results for the applied query
	matchLines     []int
	matchPositions map[int][]int
	currentMatch   int
}

// renderRow is one screen row of the laid-out document
type renderRow struct {
	row     wrappedRow
	line    int  // source document line, -1 for spacing rows
	spacing bool // blank row inserted after a block
}

// NewViewer creates a viewer for doc
func NewViewer(doc markdown.Document, provider styles.Provider, settings *Settings, title string) *Viewer {
	if settings == nil {
		settings = DefaultSettings()
	}
	search := NewSearchState()
	search.SetMinScore(settings.SearchThreshold)
	search.SetCaseSensitive(settings.CaseSensitiveSearch)
	return &Viewer{
		doc:      doc,
		provider: provider,
		settings: settings,
		quit:     make(chan struct{}),
		search:   search,
		help:     NewHelpDialog(),
		title:    title,
	}
}

func (v *Viewer) Run() error {
	s, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("failed to create screen: %w", err)
	}
	if err := s.Init(); err != nil {
		return fmt.Errorf("failed to initialize screen: %w", err)
	}
	v.screen = s

	defer func() {
		s.Fini()
		if r := recover(); r != nil {
			log.Printf("Panic during shutdown: %v", r)
		}
	}()

	s.SetStyle(tcell.StyleDefault.Background(styles.ColorBg).Foreground(styles.ColorFg))
	s.Clear()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	go func() {
		<-sigCh
		log.Println("Received interrupt signal, shutting down...")
		if v.screen != nil {
			v.screen.PostEvent(tcell.NewEventInterrupt(nil))
		}
		v.close()
	}()

	v.layout()
	v.draw()

	go v.handleEvents()

	<-v.quit
	return nil
}

func (v *Viewer) close() {
	select {
	case <-v.quit:
	default:
		close(v.quit)
	}
}

func (v *Viewer) handleEvents() {
	for {
		select {
		case <-v.quit:
			return
		default:
		}

		ev := v.screen.PollEvent()
		switch ev := ev.(type) {
		case *tcell.EventResize:
			v.screen.Sync()
			v.layout()
			v.draw()
		case *tcell.EventInterrupt:
			return
		case *tcell.EventKey:
			if v.handleKey(ev) {
				v.draw()
			}
		}
	}
}

func (v *Viewer) handleKey(ev *tcell.EventKey) bool {
	if v.help.IsVisible() {
		return v.help.HandleKey(ev)
	}
	if v.mode == ModeSearch {
		return v.handleSearchKey(ev)
	}
	return v.handleNormalKey(ev)
}

func (v *Viewer) handleNormalKey(ev *tcell.EventKey) bool {
	_, height := v.screen.Size()
	page := height - 2
	switch ev.Key() {
	case tcell.KeyEscape:
		if v.search.Query() != "" {
			v.clearSearch()
			return true
		}
		v.close()
		return false
	case tcell.KeyUp:
		v.scrollBy(-1)
		return true
	case tcell.KeyDown:
		v.scrollBy(1)
		return true
	case tcell.KeyCtrlF, tcell.KeyPgDn:
		v.scrollBy(page)
		return true
	case tcell.KeyCtrlB, tcell.KeyPgUp:
		v.scrollBy(-page)
		return true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			v.close()
			return false
		case 'j':
			v.scrollBy(1)
		case 'k':
			v.scrollBy(-1)
		case 'g':
			v.offset = 0
		case 'G':
			v.offset = v.maxOffset()
		case '/':
			v.mode = ModeSearch
		case 'n':
			v.jumpToMatch(1)
		case 'N':
			v.jumpToMatch(-1)
		case '?':
			v.help.Show()
		}
		return true
	}
	return false
}

func (v *Viewer) handleSearchKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape:
		v.mode = ModeNormal
		v.clearSearch()
		return true
	case tcell.KeyEnter:
		v.mode = ModeNormal
		v.applySearch()
		return true
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		v.search.DeleteChar()
		return true
	case tcell.KeyLeft:
		v.search.MoveCursorLeft()
		return true
	case tcell.KeyRight:
		v.search.MoveCursorRight()
		return true
	case tcell.KeyCtrlA:
		v.search.MoveCursorStart()
		return true
	case tcell.KeyCtrlE:
		v.search.MoveCursorEnd()
		return true
	case tcell.KeyCtrlK:
		v.search.DeleteToEnd()
		return true
	case tcell.KeyCtrlW:
		v.search.DeleteWord()
		return true
	case tcell.KeyRune:
		v.search.InsertChar(ev.Rune())
		return true
	}
	return false
}

// layout wraps the document to the current width, inserting the spacing
// rows the provider asks for after each block
func (v *Viewer) layout() {
	width, _ := v.screen.Size()
	wrapWidth := width - 2
	if v.settings.WrapWidth > 0 && v.settings.WrapWidth < wrapWidth {
		wrapWidth = v.settings.WrapWidth
	}
	if wrapWidth < 1 {
		wrapWidth = 1
	}

	v.rows = v.rows[:0]
	for i, line := range v.doc.Lines {
		for _, row := range wrapLine(line, wrapWidth) {
			v.rows = append(v.rows, renderRow{row: row, line: i})
		}
		spacing := v.provider.Resolve(line.Block, markdown.StyleNone, "").ParagraphSpacing
		for s := 0; s < spacing; s++ {
			v.rows = append(v.rows, renderRow{line: -1, spacing: true})
		}
	}
	if v.offset > v.maxOffset() {
		v.offset = v.maxOffset()
	}
}

func (v *Viewer) maxOffset() int {
	_, height := v.screen.Size()
	m := len(v.rows) - (height - 1)
	if m < 0 {
		m = 0
	}
	return m
}

func (v *Viewer) scrollBy(delta int) {
	v.offset += delta
	if v.offset < 0 {
		v.offset = 0
	}
	if v.offset > v.maxOffset() {
		v.offset = v.maxOffset()
	}
}

func (v *Viewer) draw() {
	s := v.screen
	s.Clear()
	width, height := s.Size()
	visible := height - 1 // last row is the status line

	for y := 0; y < visible && v.offset+y < len(v.rows); y++ {
		r := v.rows[v.offset+y]
		if r.spacing {
			continue
		}
		v.drawRow(1, y, r)
	}

	v.drawStatus(width, height)
	v.help.Draw(s)
	s.Show()
}

func (v *Viewer) drawRow(x, y int, r renderRow) {
	line := v.doc.Lines[r.line]
	highlights := v.matchPositions[r.line]
	highlightSet := make(map[int]bool, len(highlights))
	for _, p := range highlights {
		highlightSet[p] = true
	}

	for _, c := range r.row.cells {
		span := line.Spans[c.span]
		style := v.provider.Resolve(span.Block, span.Style, span.LinkTarget).Style
		if highlightSet[c.pos] {
			style = style.Background(styles.ColorSelection).Foreground(styles.ColorHighlight)
		}
		v.screen.SetContent(x, y, c.r, nil, style)
		x += cellWidth(c.r)
	}
}

func (v *Viewer) drawStatus(width, height int) {
	y := height - 1
	statusStyle := tcell.StyleDefault.Background(styles.ColorBorder).Foreground(styles.ColorFg)
	for x := 0; x < width; x++ {
		v.screen.SetContent(x, y, ' ', nil, statusStyle)
	}

	var status string
	switch {
	case v.mode == ModeSearch:
		status = "/" + v.search.Query()
	case v.search.Query() != "":
		status = fmt.Sprintf("%s  [%d/%d matches for %q]",
			v.title, v.currentMatch+1, len(v.matchLines), v.search.Query())
		if len(v.matchLines) == 0 {
			status = fmt.Sprintf("%s  [no matches for %q]", v.title, v.search.Query())
		}
	default:
		percent := 100
		if m := v.maxOffset(); m > 0 {
			percent = v.offset * 100 / m
		}
		status = fmt.Sprintf("%s  %d%%", v.title, percent)
	}
	drawText(v.screen, 1, y, statusStyle, status)

	if v.mode == ModeSearch {
		v.screen.ShowCursor(1+len("/")+v.search.CursorPos(), y)
	} else {
		v.screen.HideCursor()
	}
}

// applySearch scores every document line against the query and jumps to the
// first matching line
func (v *Viewer) applySearch() {
	v.matchLines = nil
	v.matchPositions = make(map[int][]int)
	v.currentMatch = 0
	if v.search.Query() == "" {
		return
	}
	for i, line := range v.doc.Lines {
		text := strings.TrimSuffix(line.Text(), "\n")
		if text == "" {
			continue
		}
		if ok, result := v.search.MatchLine(text); ok {
			v.matchLines = append(v.matchLines, i)
			v.matchPositions[i] = result.Positions
		}
	}
	if len(v.matchLines) > 0 {
		v.scrollToLine(v.matchLines[0])
	}
}

func (v *Viewer) clearSearch() {
	v.search.Clear()
	v.matchLines = nil
	v.matchPositions = nil
	v.currentMatch = 0
}

// jumpToMatch moves to the next or previous matching line, wrapping around
func (v *Viewer) jumpToMatch(dir int) {
	if len(v.matchLines) == 0 {
		return
	}
	v.currentMatch = (v.currentMatch + dir + len(v.matchLines)) % len(v.matchLines)
	v.scrollToLine(v.matchLines[v.currentMatch])
}

func (v *Viewer) scrollToLine(line int) {
	for i, r := range v.rows {
		if r.line == line {
			v.offset = i
			if v.offset > v.maxOffset() {
				v.offset = v.maxOffset()
			}
			return
		}
	}
}

func drawText(s tcell.Screen, x, y int, style tcell.Style, text string) {
	for _, r := range text {
		s.SetContent(x, y, r, nil, style)
		x += cellWidth(r)
	}
}
