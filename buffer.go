package retroui

import "strings"

// Buffer is a double-buffered 2D grid of cells. Writes go to the back
// buffer; Diff reports what changed relative to the committed front buffer
// and Swap commits. Both grids always have matching dimensions.
type Buffer struct {
	front  []Cell // Committed state, mirrors what the terminal shows
	back   []Cell // State being built for the next frame
	width  int
	height int
}

// CellChange represents a single cell that differs between front and back.
type CellChange struct {
	X, Y int
	Cell Cell
}

// NewBuffer creates a new double-buffered grid of the specified dimensions.
// Negative dimensions are clamped to zero. Both buffers start as spaces
// with default styling.
func NewBuffer(width, height int) *Buffer {
	b := &Buffer{}
	b.alloc(width, height)
	copy(b.front, b.back)
	return b
}

func (b *Buffer) alloc(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	size := width * height
	b.front = make([]Cell, size)
	b.back = make([]Cell, size)
	blank := NewCell(' ', NewStyle())
	for i := range b.back {
		b.front[i] = blank
		b.back[i] = blank
	}
	b.width = width
	b.height = height
}

// Width returns the buffer width in columns.
func (b *Buffer) Width() int { return b.width }

// Height returns the buffer height in rows.
func (b *Buffer) Height() int { return b.height }

// Size returns the buffer dimensions.
func (b *Buffer) Size() Size { return Size{Width: b.width, Height: b.height} }

// Rect returns the buffer bounds as a Rect starting at (0, 0).
func (b *Buffer) Rect() Rect { return NewRect(0, 0, b.width, b.height) }

// idx converts (x, y) coordinates to a flat index, or -1 if out of bounds.
func (b *Buffer) idx(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return y*b.width + x
}

// Cell returns the cell at (x, y) from the back buffer.
// Returns a zero Cell if the position is out of bounds.
func (b *Buffer) Cell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.back[i]
}

// FrontCell returns the committed cell at (x, y) from the front buffer.
func (b *Buffer) FrontCell(x, y int) Cell {
	i := b.idx(x, y)
	if i < 0 {
		return Cell{}
	}
	return b.front[i]
}

// SetCell sets the cell at (x, y) in the back buffer.
// Does nothing if the position is out of bounds.
func (b *Buffer) SetCell(x, y int, c Cell) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	b.back[i] = c
}

// SetRune sets a rune at (x, y) with the given style. Wide runes get a
// continuation cell at x+1; overlapped wide runes are broken up so no
// orphaned continuation cell survives.
func (b *Buffer) SetRune(x, y int, r rune, style Style) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}

	width := RuneWidth(r)

	// A wide rune that would hang off the right edge degrades to a space.
	if width == 2 && x+1 >= b.width {
		b.breakWideAt(x, y)
		b.back[i] = NewCell(' ', style)
		return
	}

	b.breakWideAt(x, y)
	if width == 2 {
		b.breakWideAt(x+1, y)
	}

	b.back[i] = NewCellWithWidth(r, style, uint8(width))
	if width == 2 {
		b.back[b.idx(x+1, y)] = NewCellWithWidth(0, style, 0)
	}
}

// breakWideAt clears any wide rune overlapping (x, y), replacing both of
// its cells with blanks so a partial overwrite never leaves half a glyph.
func (b *Buffer) breakWideAt(x, y int) {
	i := b.idx(x, y)
	if i < 0 {
		return
	}
	blank := NewCell(' ', NewStyle())
	cell := b.back[i]
	switch {
	case cell.IsContinuation():
		if j := b.idx(x-1, y); j >= 0 {
			b.back[j] = blank
		}
		b.back[i] = blank
	case cell.Width == 2:
		b.back[i] = blank
		if j := b.idx(x+1, y); j >= 0 {
			b.back[j] = blank
		}
	}
}

// SetString writes a string starting at (x, y) with the given style.
// Returns the total display width consumed. Stops at the buffer edge
// without wrapping.
func (b *Buffer) SetString(x, y int, s string, style Style) int {
	if y < 0 || y >= b.height {
		return 0
	}

	total := 0
	curX := x
	for _, r := range s {
		w := RuneWidth(r)
		if curX >= b.width || (w == 2 && curX+1 >= b.width) {
			break
		}
		if curX < 0 {
			curX += w
			continue
		}
		b.SetRune(curX, y, r, style)
		curX += w
		total += w
	}
	return total
}

// Fill fills a rectangle with the given rune and style.
func (b *Buffer) Fill(rect Rect, r rune, style Style) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	w := RuneWidth(r)
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); {
			if w == 2 && x+1 >= rect.Right() {
				b.SetRune(x, y, ' ', style)
				x++
				continue
			}
			b.SetRune(x, y, r, style)
			x += w
		}
	}
}

// FillGradient fills a rectangle with the rune, applying the gradient as
// the background color across the region.
func (b *Buffer) FillGradient(rect Rect, r rune, g Gradient, base Style) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}

	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			var t float64
			if g.Direction == GradientVertical {
				t = gradientT(y-rect.Y, rect.Height)
			} else {
				t = gradientT(x-rect.X, rect.Width)
			}
			style := base
			style.Bg = g.At(t)
			b.SetRune(x, y, r, style)
		}
	}
}

func gradientT(i, n int) float64 {
	if n <= 1 {
		return 0
	}
	return float64(i) / float64(n-1)
}

// Clear clears the entire back buffer to spaces with default style.
func (b *Buffer) Clear() {
	b.ClearRect(b.Rect())
}

// ClearRect clears a rectangular region to spaces with default style.
func (b *Buffer) ClearRect(rect Rect) {
	rect = rect.Intersect(b.Rect())
	if rect.IsEmpty() {
		return
	}
	blank := NewCell(' ', NewStyle())
	for y := rect.Y; y < rect.Bottom(); y++ {
		b.breakWideAt(rect.X, y)
		if rect.Right() > rect.X {
			b.breakWideAt(rect.Right()-1, y)
		}
		for x := rect.X; x < rect.Right(); x++ {
			b.back[b.idx(x, y)] = blank
		}
	}
}

// Diff returns all cells that differ between front and back buffers, in
// row-major order (top-to-bottom, left-to-right). Row-major order keeps
// cursor movement minimal during write-out. Diff is a pure function of
// the two grids; applying the result to the front grid reproduces the
// back grid exactly.
func (b *Buffer) Diff() []CellChange {
	changes := make([]CellChange, 0, b.width)
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			i := y*b.width + x
			if !b.back[i].Equal(b.front[i]) {
				changes = append(changes, CellChange{X: x, Y: y, Cell: b.back[i]})
			}
		}
	}
	return changes
}

// Swap commits the back buffer to the front buffer.
// Call this after flushing changes to the terminal.
func (b *Buffer) Swap() {
	copy(b.front, b.back)
}

// Resize changes the buffer dimensions. Both grids are reallocated
// together; content in the overlapping region is preserved and new areas
// are cleared. Degenerate sizes (zero width or height) are valid and
// simply make every draw a no-op.
func (b *Buffer) Resize(width, height int) {
	if width < 0 {
		width = 0
	}
	if height < 0 {
		height = 0
	}
	if width == b.width && height == b.height {
		return
	}

	oldFront, oldBack := b.front, b.back
	oldWidth, oldHeight := b.width, b.height
	b.alloc(width, height)

	copyWidth := min(width, oldWidth)
	copyHeight := min(height, oldHeight)
	for y := 0; y < copyHeight; y++ {
		for x := 0; x < copyWidth; x++ {
			b.front[y*width+x] = oldFront[y*oldWidth+x]
			b.back[y*width+x] = oldBack[y*oldWidth+x]
		}
	}
}

// String renders the back buffer to a string for debugging and tests.
// Continuation cells are skipped so wide runes appear once.
func (b *Buffer) String() string {
	var sb strings.Builder
	for y := 0; y < b.height; y++ {
		for x := 0; x < b.width; x++ {
			cell := b.back[y*b.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < b.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}

// StringTrimmed returns the back buffer content with trailing spaces
// removed from each line.
func (b *Buffer) StringTrimmed() string {
	lines := strings.Split(b.String(), "\n")
	for i, line := range lines {
		lines[i] = strings.TrimRight(line, " ")
	}
	return strings.Join(lines, "\n")
}
