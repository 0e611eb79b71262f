package retroui

import "unicode"

// TextField is a multi-line text editor. Arrow keys move the cursor
// (vertical movement remembers the column it is aiming for), home and
// end jump within the line, and alt-modified arrows jump by word or to
// the ends of the text. Enter splits the line, backspace and delete
// join lines at the boundaries. The view scrolls to keep the cursor
// visible.
type TextField struct {
	ControlBase
	lines [][]rune
	line  int
	col   int

	// moveCol is the column vertical movement aims for, so moving
	// through a short line does not lose the cursor's position.
	moveCol int

	scrollX int
	scrollY int

	// OnChange is called after every edit with the full text.
	OnChange func(text string)
}

// NewTextField creates an empty text field.
func NewTextField() *TextField {
	return &TextField{lines: [][]rune{nil}}
}

// SetText replaces the contents and moves the cursor to the end.
func (f *TextField) SetText(text string) {
	f.lines = splitLines(text)
	f.line = len(f.lines) - 1
	f.col = len(f.lines[f.line])
	f.moveCol = f.col
}

// Text returns the contents with lines joined by newlines.
func (f *TextField) Text() string {
	var b []rune
	for i, line := range f.lines {
		if i > 0 {
			b = append(b, '\n')
		}
		b = append(b, line...)
	}
	return string(b)
}

// CursorPosition returns the cursor's line and column, both counted in
// characters.
func (f *TextField) CursorPosition() (line, col int) {
	return f.line, f.col
}

// SetCursorPosition moves the cursor, clamping to the text.
func (f *TextField) SetCursorPosition(line, col int) {
	f.line = clamp(line, 0, len(f.lines)-1)
	f.col = clamp(col, 0, len(f.lines[f.line]))
	f.moveCol = f.col
}

// PreferredSize reports the widest line by the line count.
func (f *TextField) PreferredSize() Size {
	w := 0
	for _, line := range f.lines {
		if lw := StringWidth(string(line)); lw > w {
			w = lw
		}
	}
	return NewSize(w, len(f.lines))
}

func splitLines(text string) [][]rune {
	lines := [][]rune{nil}
	for _, r := range text {
		if r == '\n' {
			lines = append(lines, nil)
			continue
		}
		lines[len(lines)-1] = append(lines[len(lines)-1], r)
	}
	return lines
}

func (f *TextField) changed() {
	if f.OnChange != nil {
		f.OnChange(f.Text())
	}
}

func (f *TextField) insertRune(r rune) {
	line := f.lines[f.line]
	line = append(line[:f.col:f.col], append([]rune{r}, line[f.col:]...)...)
	f.lines[f.line] = line
	f.col++
	f.moveCol = f.col
	f.changed()
}

func (f *TextField) insertNewline() {
	line := f.lines[f.line]
	head := append([]rune(nil), line[:f.col]...)
	tail := append([]rune(nil), line[f.col:]...)
	f.lines[f.line] = head
	rest := append([][]rune{tail}, f.lines[f.line+1:]...)
	f.lines = append(f.lines[:f.line+1:f.line+1], rest...)
	f.line++
	f.col = 0
	f.moveCol = 0
	f.changed()
}

func (f *TextField) deleteLeft() {
	switch {
	case f.col > 0:
		line := f.lines[f.line]
		f.lines[f.line] = append(line[:f.col-1], line[f.col:]...)
		f.col--
	case f.line > 0:
		f.col = len(f.lines[f.line-1])
		f.lines[f.line-1] = append(f.lines[f.line-1], f.lines[f.line]...)
		f.lines = append(f.lines[:f.line], f.lines[f.line+1:]...)
		f.line--
	default:
		return
	}
	f.moveCol = f.col
	f.changed()
}

func (f *TextField) deleteRight() {
	line := f.lines[f.line]
	switch {
	case f.col < len(line):
		f.lines[f.line] = append(line[:f.col], line[f.col+1:]...)
	case f.line+1 < len(f.lines):
		f.lines[f.line] = append(line, f.lines[f.line+1]...)
		f.lines = append(f.lines[:f.line+1], f.lines[f.line+2:]...)
	default:
		return
	}
	f.changed()
}

func (f *TextField) moveLeft() {
	if f.col > 0 {
		f.col--
	} else if f.line > 0 {
		f.line--
		f.col = len(f.lines[f.line])
	}
	f.moveCol = f.col
}

func (f *TextField) moveRight() {
	if f.col < len(f.lines[f.line]) {
		f.col++
	} else if f.line+1 < len(f.lines) {
		f.line++
		f.col = 0
	}
	f.moveCol = f.col
}

func (f *TextField) moveUp() {
	if f.line == 0 {
		return
	}
	f.line--
	f.col = min(f.moveCol, len(f.lines[f.line]))
}

func (f *TextField) moveDown() {
	if f.line+1 >= len(f.lines) {
		return
	}
	f.line++
	f.col = min(f.moveCol, len(f.lines[f.line]))
}

// moveWordLeft steps over whitespace, then over the word before the
// cursor. At the start of a line it moves to the end of the previous.
func (f *TextField) moveWordLeft() {
	if f.col == 0 {
		f.moveLeft()
		return
	}
	line := f.lines[f.line]
	for f.col > 0 && unicode.IsSpace(line[f.col-1]) {
		f.col--
	}
	for f.col > 0 && !unicode.IsSpace(line[f.col-1]) {
		f.col--
	}
	f.moveCol = f.col
}

// moveWordRight steps over the word under the cursor, then over the
// whitespace after it. At the end of a line it moves to the start of
// the next.
func (f *TextField) moveWordRight() {
	line := f.lines[f.line]
	if f.col == len(line) {
		f.moveRight()
		return
	}
	for f.col < len(line) && !unicode.IsSpace(line[f.col]) {
		f.col++
	}
	for f.col < len(line) && unicode.IsSpace(line[f.col]) {
		f.col++
	}
	f.moveCol = f.col
}

func (f *TextField) moveToStart() {
	f.line = 0
	f.col = 0
	f.moveCol = 0
}

func (f *TextField) moveToEnd() {
	f.line = len(f.lines) - 1
	f.col = len(f.lines[f.line])
	f.moveCol = f.col
}

// HandleKey edits the text with plain keys and moves the cursor with
// plain or alt-modified navigation keys.
func (f *TextField) HandleKey(ev KeyEvent) bool {
	if ev.Mod.Has(ModCtrl) {
		return false
	}
	if ev.Mod.Has(ModAlt) {
		switch ev.Key {
		case KeyLeft:
			f.moveWordLeft()
		case KeyRight:
			f.moveWordRight()
		case KeyUp, KeyHome:
			f.moveToStart()
		case KeyDown, KeyEnd:
			f.moveToEnd()
		default:
			return false
		}
		return true
	}
	switch ev.Key {
	case KeyRune:
		f.insertRune(ev.Rune)
	case KeySpace:
		f.insertRune(' ')
	case KeyEnter:
		f.insertNewline()
	case KeyBackspace:
		f.deleteLeft()
	case KeyDelete:
		f.deleteRight()
	case KeyLeft:
		f.moveLeft()
	case KeyRight:
		f.moveRight()
	case KeyUp:
		f.moveUp()
	case KeyDown:
		f.moveDown()
	case KeyHome:
		f.col = 0
		f.moveCol = 0
	case KeyEnd:
		f.col = len(f.lines[f.line])
		f.moveCol = f.col
	default:
		return false
	}
	return true
}

// cursorX is the cursor's cell offset within its line, accounting for
// wide runes.
func (f *TextField) cursorX() int {
	return StringWidth(string(f.lines[f.line][:f.col]))
}

// scrollToCursor adjusts the scroll offsets so the cursor cell is
// inside the visible region.
func (f *TextField) scrollToCursor(bounds Rect) {
	if bounds.Width <= 0 || bounds.Height <= 0 {
		return
	}
	x := f.cursorX()
	if x < f.scrollX {
		f.scrollX = x
	}
	if x >= f.scrollX+bounds.Width {
		f.scrollX = x - bounds.Width + 1
	}
	if f.line < f.scrollY {
		f.scrollY = f.line
	}
	if f.line >= f.scrollY+bounds.Height {
		f.scrollY = f.line - bounds.Height + 1
	}
}

func (f *TextField) Draw(p *Painter) {
	bounds := f.Bounds()
	f.scrollToCursor(bounds)

	plain := NewStyle()
	cursor := NewStyle().Reverse()

	for row := 0; row < bounds.Height; row++ {
		i := f.scrollY + row
		if i >= len(f.lines) {
			break
		}
		x := -f.scrollX
		for _, r := range f.lines[i] {
			if x >= bounds.Width {
				break
			}
			if x >= 0 {
				p.SetRune(x, row, r, plain)
			}
			x += RuneWidth(r)
		}
	}

	if f.Focused() {
		cx := f.cursorX() - f.scrollX
		cy := f.line - f.scrollY
		under := ' '
		if f.col < len(f.lines[f.line]) {
			under = f.lines[f.line][f.col]
		}
		p.SetRune(cx, cy, under, cursor)
	}
}
