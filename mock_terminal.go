package retroui

import "strings"

// MockTerminal is an in-memory Terminal for tests. It applies flushed
// cell changes to an internal grid so tests can assert on the exact
// screen contents and on how many flushes occurred.
type MockTerminal struct {
	width, height int
	cells         []Cell
	cursorX       int
	cursorY       int
	cursorHidden  bool
	initialized   bool

	flushCount int
	flushed    int // total cells received across all flushes
}

var _ Terminal = (*MockTerminal)(nil)

// NewMockTerminal creates a mock terminal with the given dimensions.
func NewMockTerminal(width, height int) *MockTerminal {
	m := &MockTerminal{width: width, height: height}
	m.reset()
	return m
}

func (m *MockTerminal) reset() {
	m.cells = make([]Cell, m.width*m.height)
	blank := NewCell(' ', NewStyle())
	for i := range m.cells {
		m.cells[i] = blank
	}
}

// Init marks the terminal initialized.
func (m *MockTerminal) Init() error {
	m.initialized = true
	m.cursorHidden = true
	return nil
}

// Fini marks the terminal restored.
func (m *MockTerminal) Fini() {
	m.initialized = false
}

// Size returns the terminal dimensions.
func (m *MockTerminal) Size() (width, height int) {
	return m.width, m.height
}

// SetSize changes the mock's dimensions, as if the real terminal had been
// resized. The grid is cleared; the caller is expected to dispatch a
// ResizeEvent to the application under test.
func (m *MockTerminal) SetSize(width, height int) {
	m.width, m.height = width, height
	m.reset()
}

// Flush applies the cell changes to the internal grid.
func (m *MockTerminal) Flush(changes []CellChange) {
	for _, ch := range changes {
		if ch.X >= 0 && ch.X < m.width && ch.Y >= 0 && ch.Y < m.height {
			m.cells[ch.Y*m.width+ch.X] = ch.Cell
		}
	}
	m.flushCount++
	m.flushed += len(changes)
}

// Clear clears the grid to blanks.
func (m *MockTerminal) Clear() {
	m.reset()
}

// ShowCursor records the cursor position and makes it visible.
func (m *MockTerminal) ShowCursor(x, y int) {
	m.cursorX, m.cursorY = x, y
	m.cursorHidden = false
}

// HideCursor makes the cursor invisible.
func (m *MockTerminal) HideCursor() {
	m.cursorHidden = true
}

// Cell returns the cell at (x, y), or a zero Cell out of bounds.
func (m *MockTerminal) Cell(x, y int) Cell {
	if x < 0 || x >= m.width || y < 0 || y >= m.height {
		return Cell{}
	}
	return m.cells[y*m.width+x]
}

// FlushCount returns how many Flush calls the terminal has received.
func (m *MockTerminal) FlushCount() int {
	return m.flushCount
}

// CellsFlushed returns the total number of cell changes received.
func (m *MockTerminal) CellsFlushed() int {
	return m.flushed
}

// String renders the grid as text for golden comparisons, skipping
// continuation cells.
func (m *MockTerminal) String() string {
	var sb strings.Builder
	for y := 0; y < m.height; y++ {
		for x := 0; x < m.width; x++ {
			cell := m.cells[y*m.width+x]
			if cell.IsContinuation() {
				continue
			}
			if cell.Rune == 0 {
				sb.WriteRune(' ')
			} else {
				sb.WriteRune(cell.Rune)
			}
		}
		if y < m.height-1 {
			sb.WriteRune('\n')
		}
	}
	return sb.String()
}
