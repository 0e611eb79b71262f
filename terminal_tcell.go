package retroui

import (
	"fmt"
	"io"

	"github.com/gdamore/tcell/v2"
)

// TcellTerminal is the production Terminal and EventSource, backed by
// tcell. tcell owns the raw byte stream: it decodes escape sequences into
// key events (including the Ctrl modifier) and writes styled cells, so
// this adapter only translates between the two cell/event models.
type TcellTerminal struct {
	screen tcell.Screen
}

var (
	_ Terminal    = (*TcellTerminal)(nil)
	_ EventSource = (*TcellTerminal)(nil)
)

// NewTcellTerminal creates a terminal on the process's tty.
func NewTcellTerminal() (*TcellTerminal, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, fmt.Errorf("creating tcell screen: %w", err)
	}
	return &TcellTerminal{screen: screen}, nil
}

// Init enters raw mode and the alternate screen with a hidden cursor.
func (t *TcellTerminal) Init() error {
	if err := t.screen.Init(); err != nil {
		return fmt.Errorf("initializing terminal: %w", err)
	}
	t.screen.HideCursor()
	t.screen.Clear()
	return nil
}

// Fini restores the terminal. Safe to call multiple times.
func (t *TcellTerminal) Fini() {
	t.screen.Fini()
}

// Size returns the terminal dimensions in cells.
func (t *TcellTerminal) Size() (width, height int) {
	return t.screen.Size()
}

// Flush writes the cell changes and makes the frame visible.
func (t *TcellTerminal) Flush(changes []CellChange) {
	for _, ch := range changes {
		if ch.Cell.IsContinuation() {
			continue // tcell tracks wide-rune spill itself
		}
		t.screen.SetContent(ch.X, ch.Y, ch.Cell.Rune, nil, toTcellStyle(ch.Cell.Style))
	}
	t.screen.Show()
}

// Clear clears the screen to the default background.
func (t *TcellTerminal) Clear() {
	t.screen.Clear()
}

// ShowCursor makes the cursor visible at (x, y).
func (t *TcellTerminal) ShowCursor(x, y int) {
	t.screen.ShowCursor(x, y)
}

// HideCursor makes the cursor invisible.
func (t *TcellTerminal) HideCursor() {
	t.screen.HideCursor()
}

// Next blocks for the next input event. Unrecognized input (mouse,
// paste, focus events) is swallowed and polling continues; it never
// surfaces as an error. Returns io.EOF once the screen is finalized.
func (t *TcellTerminal) Next() (Event, error) {
	for {
		raw := t.screen.PollEvent()
		if raw == nil {
			return nil, io.EOF
		}
		switch ev := raw.(type) {
		case *tcell.EventKey:
			if ke, ok := translateKey(ev); ok {
				return ke, nil
			}
		case *tcell.EventResize:
			width, height := ev.Size()
			return ResizeEvent{Width: width, Height: height}, nil
		}
	}
}

// Close finalizes the screen, unblocking any pending Next call.
func (t *TcellTerminal) Close() error {
	t.screen.Fini()
	return nil
}

// translateKey converts a tcell key event. Ctrl+letter arrives from
// tcell as a dedicated key code; it is normalized here to a rune event
// with the Ctrl modifier so dispatch sees one uniform shape.
func translateKey(ev *tcell.EventKey) (KeyEvent, bool) {
	mod := ModNone
	if ev.Modifiers()&tcell.ModCtrl != 0 {
		mod |= ModCtrl
	}
	if ev.Modifiers()&tcell.ModAlt != 0 {
		mod |= ModAlt
	}
	if ev.Modifiers()&tcell.ModShift != 0 {
		mod |= ModShift
	}

	if key, ok := namedKeys[ev.Key()]; ok {
		if key == KeyBacktab {
			mod |= ModShift
		}
		return KeyEvent{Key: key, Mod: mod}, true
	}

	switch {
	case ev.Key() == tcell.KeyRune:
		if ev.Rune() == ' ' {
			return KeyEvent{Key: KeySpace, Mod: mod}, true
		}
		return KeyEvent{Key: KeyRune, Rune: ev.Rune(), Mod: mod}, true
	case ev.Key() >= tcell.KeyCtrlA && ev.Key() <= tcell.KeyCtrlZ:
		r := 'a' + rune(ev.Key()-tcell.KeyCtrlA)
		return KeyEvent{Key: KeyRune, Rune: r, Mod: mod | ModCtrl}, true
	case ev.Key() == tcell.KeyCtrlSpace:
		return KeyEvent{Key: KeySpace, Mod: mod | ModCtrl}, true
	}
	return KeyEvent{}, false
}

// namedKeys maps tcell named keys to ours. Tab, Enter, Escape, and
// Backspace shadow the Ctrl-letter range and must be matched first.
var namedKeys = map[tcell.Key]Key{
	tcell.KeyEscape:     KeyEscape,
	tcell.KeyEnter:      KeyEnter,
	tcell.KeyTab:        KeyTab,
	tcell.KeyBacktab:    KeyBacktab,
	tcell.KeyBackspace:  KeyBackspace,
	tcell.KeyBackspace2: KeyBackspace,
	tcell.KeyDelete:     KeyDelete,
	tcell.KeyInsert:     KeyInsert,
	tcell.KeyUp:         KeyUp,
	tcell.KeyDown:       KeyDown,
	tcell.KeyLeft:       KeyLeft,
	tcell.KeyRight:      KeyRight,
	tcell.KeyHome:       KeyHome,
	tcell.KeyEnd:        KeyEnd,
	tcell.KeyPgUp:       KeyPageUp,
	tcell.KeyPgDn:       KeyPageDown,
	tcell.KeyF1:         KeyF1,
	tcell.KeyF2:         KeyF2,
	tcell.KeyF3:         KeyF3,
	tcell.KeyF4:         KeyF4,
	tcell.KeyF5:         KeyF5,
	tcell.KeyF6:         KeyF6,
	tcell.KeyF7:         KeyF7,
	tcell.KeyF8:         KeyF8,
	tcell.KeyF9:         KeyF9,
	tcell.KeyF10:        KeyF10,
	tcell.KeyF11:        KeyF11,
	tcell.KeyF12:        KeyF12,
}

// toTcellStyle converts a Style to tcell's representation.
func toTcellStyle(s Style) tcell.Style {
	style := tcell.StyleDefault.
		Foreground(toTcellColor(s.Fg)).
		Background(toTcellColor(s.Bg))
	if s.HasAttr(AttrBold) {
		style = style.Bold(true)
	}
	if s.HasAttr(AttrDim) {
		style = style.Dim(true)
	}
	if s.HasAttr(AttrItalic) {
		style = style.Italic(true)
	}
	if s.HasAttr(AttrUnderline) {
		style = style.Underline(true)
	}
	if s.HasAttr(AttrReverse) {
		style = style.Reverse(true)
	}
	if s.HasAttr(AttrStrikethrough) {
		style = style.StrikeThrough(true)
	}
	return style
}

// toTcellColor converts a Color, preserving "no color" as the terminal
// default rather than forcing a palette entry.
func toTcellColor(c Color) tcell.Color {
	switch c.Type() {
	case ColorANSI:
		return tcell.PaletteColor(int(c.ANSI()))
	case ColorRGB:
		r, g, b := c.RGB()
		return tcell.NewRGBColor(int32(r), int32(g), int32(b))
	default:
		return tcell.ColorDefault
	}
}
