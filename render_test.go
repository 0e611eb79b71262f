package retroui

import "testing"

func TestRender_FlushesOnlyDiff(t *testing.T) {
	term := NewMockTerminal(10, 4)
	buf := NewBuffer(10, 4)
	buf.SetString(0, 0, "hi", NewStyle())

	Render(term, buf)

	if term.CellsFlushed() != 2 {
		t.Errorf("flushed %d cells, want 2", term.CellsFlushed())
	}
	if term.Cell(0, 0).Rune != 'h' || term.Cell(1, 0).Rune != 'i' {
		t.Error("flushed cells not applied to the terminal")
	}
}

func TestRender_SkipsFlushWhenClean(t *testing.T) {
	term := NewMockTerminal(10, 4)
	buf := NewBuffer(10, 4)

	Render(term, buf)

	if term.FlushCount() != 0 {
		t.Errorf("clean frame triggered %d flushes, want 0", term.FlushCount())
	}
}

func TestRender_CommitsAfterFlush(t *testing.T) {
	term := NewMockTerminal(10, 4)
	buf := NewBuffer(10, 4)
	buf.SetRune(3, 1, 'x', NewStyle())

	Render(term, buf)
	Render(term, buf)

	// The second render had nothing left to write.
	if term.CellsFlushed() != 1 {
		t.Errorf("flushed %d cells across two renders, want 1", term.CellsFlushed())
	}
}

func TestRenderFull_WritesEveryCell(t *testing.T) {
	term := NewMockTerminal(5, 2)
	buf := NewBuffer(5, 2)
	buf.SetRune(0, 0, 'x', NewStyle())
	Render(term, buf) // commit, so an ordinary diff would now be empty

	RenderFull(term, buf)

	if term.CellsFlushed() != 1+5*2 {
		t.Errorf("flushed %d cells total, want %d", term.CellsFlushed(), 1+5*2)
	}
	if term.Cell(0, 0).Rune != 'x' {
		t.Error("full render lost cell content")
	}
}

func TestMockTerminal_String(t *testing.T) {
	term := NewMockTerminal(4, 2)
	buf := NewBuffer(4, 2)
	buf.SetString(0, 0, "ab", NewStyle())
	buf.SetString(0, 1, "cd", NewStyle())

	Render(term, buf)

	if got := term.String(); got != "ab  \ncd  " {
		t.Errorf("String() = %q, want %q", got, "ab  \ncd  ")
	}
}
