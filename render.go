package retroui

// Render flushes one frame: compute the diff between front and back
// buffers, write only the changed cells, then commit.
func Render(term Terminal, buf *Buffer) {
	changes := buf.Diff()
	if len(changes) > 0 {
		term.Flush(changes)
	}
	buf.Swap()
}

// RenderFull forces a complete redraw regardless of what changed.
// Use after startup, a resize, or external terminal corruption.
func RenderFull(term Terminal, buf *Buffer) {
	width, height := buf.Width(), buf.Height()
	changes := make([]CellChange, 0, width*height)
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			changes = append(changes, CellChange{X: x, Y: y, Cell: buf.Cell(x, y)})
		}
	}

	term.Clear()
	if len(changes) > 0 {
		term.Flush(changes)
	}
	buf.Swap()
}
