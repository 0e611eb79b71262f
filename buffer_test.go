package retroui

import (
	"testing"
)

func TestBuffer_Diff_Empty(t *testing.T) {
	b := NewBuffer(5, 3)

	changes := b.Diff()
	if len(changes) != 0 {
		t.Errorf("Diff() returned %d changes, want 0", len(changes))
	}
}

func TestBuffer_Diff_SingleChange(t *testing.T) {
	b := NewBuffer(5, 3)

	b.SetRune(2, 1, 'A', NewStyle())

	changes := b.Diff()
	if len(changes) != 1 {
		t.Fatalf("Diff() returned %d changes, want 1", len(changes))
	}
	if changes[0].X != 2 || changes[0].Y != 1 {
		t.Errorf("Change at (%d, %d), want (2, 1)", changes[0].X, changes[0].Y)
	}
	if changes[0].Cell.Rune != 'A' {
		t.Errorf("Change cell rune = %q, want 'A'", changes[0].Cell.Rune)
	}
}

func TestBuffer_Diff_RowMajorOrder(t *testing.T) {
	b := NewBuffer(3, 3)
	style := NewStyle()

	// Written out of order; diff must still scan row-major.
	b.SetRune(2, 2, 'I', style)
	b.SetRune(0, 0, 'A', style)
	b.SetRune(1, 1, 'E', style)

	changes := b.Diff()
	if len(changes) != 3 {
		t.Fatalf("Diff() returned %d changes, want 3", len(changes))
	}

	expected := []struct {
		x, y int
		r    rune
	}{
		{0, 0, 'A'},
		{1, 1, 'E'},
		{2, 2, 'I'},
	}
	for i, e := range expected {
		if changes[i].X != e.x || changes[i].Y != e.y || changes[i].Cell.Rune != e.r {
			t.Errorf("Change %d = (%d, %d, %q), want (%d, %d, %q)",
				i, changes[i].X, changes[i].Y, changes[i].Cell.Rune, e.x, e.y, e.r)
		}
	}
}

func TestBuffer_Diff_ApplyReproducesBack(t *testing.T) {
	b := NewBuffer(6, 4)
	b.SetString(0, 0, "hello", NewStyle().Bold())
	b.SetString(1, 2, "世界", NewStyle())
	b.Fill(NewRect(4, 3, 2, 1), '#', NewStyle())

	applied := NewBuffer(6, 4)
	for _, ch := range b.Diff() {
		applied.SetCell(ch.X, ch.Y, ch.Cell)
	}

	for y := 0; y < 4; y++ {
		for x := 0; x < 6; x++ {
			if !applied.Cell(x, y).Equal(b.Cell(x, y)) {
				t.Errorf("applied cell (%d, %d) = %+v, want %+v", x, y, applied.Cell(x, y), b.Cell(x, y))
			}
		}
	}
}

func TestBuffer_Diff_StyleOnlyChange(t *testing.T) {
	b := NewBuffer(4, 1)
	b.SetRune(0, 0, 'x', NewStyle())
	b.Swap()

	// Same rune, different style, must still be reported.
	b.SetRune(0, 0, 'x', NewStyle().Bold())

	changes := b.Diff()
	if len(changes) != 1 {
		t.Fatalf("Diff() returned %d changes, want 1", len(changes))
	}
	if !changes[0].Cell.Style.HasAttr(AttrBold) {
		t.Error("changed cell lost its bold attribute")
	}
}

func TestBuffer_Swap_CommitsBack(t *testing.T) {
	b := NewBuffer(3, 1)
	b.SetRune(1, 0, 'Z', NewStyle())

	b.Swap()

	if len(b.Diff()) != 0 {
		t.Error("Diff() not empty after Swap()")
	}
	if b.FrontCell(1, 0).Rune != 'Z' {
		t.Errorf("front cell = %q, want 'Z'", b.FrontCell(1, 0).Rune)
	}
}

func TestBuffer_SetRune_WideRune(t *testing.T) {
	b := NewBuffer(5, 1)

	b.SetRune(1, 0, '世', NewStyle())

	if b.Cell(1, 0).Width != 2 {
		t.Errorf("wide cell width = %d, want 2", b.Cell(1, 0).Width)
	}
	if !b.Cell(2, 0).IsContinuation() {
		t.Error("cell after wide rune is not a continuation")
	}
}

func TestBuffer_SetRune_WideRuneAtEdge(t *testing.T) {
	b := NewBuffer(3, 1)

	// No room for the continuation cell; degrades to a space.
	b.SetRune(2, 0, '世', NewStyle())

	if b.Cell(2, 0).Rune != ' ' {
		t.Errorf("edge cell = %q, want space", b.Cell(2, 0).Rune)
	}
}

func TestBuffer_SetRune_OverwriteBreaksWide(t *testing.T) {
	b := NewBuffer(5, 1)
	b.SetRune(1, 0, '世', NewStyle())

	// Overwriting the continuation cell must clear the lead cell too.
	b.SetRune(2, 0, 'x', NewStyle())

	if b.Cell(1, 0).Rune != ' ' {
		t.Errorf("lead cell = %q, want space", b.Cell(1, 0).Rune)
	}
	if b.Cell(2, 0).Rune != 'x' {
		t.Errorf("overwritten cell = %q, want 'x'", b.Cell(2, 0).Rune)
	}
	if b.Cell(1, 0).IsContinuation() || b.Cell(2, 0).IsContinuation() {
		t.Error("orphaned continuation cell survived overwrite")
	}
}

func TestBuffer_SetRune_OverwriteLeadBreaksWide(t *testing.T) {
	b := NewBuffer(5, 1)
	b.SetRune(1, 0, '世', NewStyle())

	b.SetRune(1, 0, 'x', NewStyle())

	if b.Cell(1, 0).Rune != 'x' {
		t.Errorf("lead cell = %q, want 'x'", b.Cell(1, 0).Rune)
	}
	if b.Cell(2, 0).IsContinuation() {
		t.Error("continuation cell survived lead overwrite")
	}
}

func TestBuffer_SetString(t *testing.T) {
	b := NewBuffer(10, 1)

	w := b.SetString(0, 0, "ab世c", NewStyle())

	if w != 5 {
		t.Errorf("SetString width = %d, want 5", w)
	}
	if got := b.StringTrimmed(); got != "ab世c" {
		t.Errorf("buffer = %q, want %q", got, "ab世c")
	}
}

func TestBuffer_SetString_ClipsAtEdge(t *testing.T) {
	b := NewBuffer(4, 1)

	b.SetString(0, 0, "abcdef", NewStyle())

	if got := b.String(); got != "abcd" {
		t.Errorf("buffer = %q, want %q", got, "abcd")
	}
}

func TestBuffer_SetString_OutOfBoundsRow(t *testing.T) {
	b := NewBuffer(4, 1)

	if w := b.SetString(0, 5, "abc", NewStyle()); w != 0 {
		t.Errorf("out of bounds SetString consumed width %d, want 0", w)
	}
}

func TestBuffer_Fill(t *testing.T) {
	b := NewBuffer(4, 3)

	b.Fill(NewRect(1, 1, 2, 2), '#', NewStyle())

	want := "    \n ## \n ## "
	if got := b.String(); got != want {
		t.Errorf("buffer =\n%s\nwant\n%s", got, want)
	}
}

func TestBuffer_FillGradient_SpansRect(t *testing.T) {
	b := NewBuffer(5, 1)
	g := NewGradient(RGBColor(0, 0, 0), RGBColor(200, 200, 200))

	b.FillGradient(NewRect(0, 0, 5, 1), ' ', g, NewStyle())

	left := b.Cell(0, 0).Style.Bg
	right := b.Cell(4, 0).Style.Bg
	if !left.Equal(g.At(0)) {
		t.Errorf("left cell bg = %v, want gradient start %v", left, g.At(0))
	}
	if !right.Equal(g.At(1)) {
		t.Errorf("right cell bg = %v, want gradient end %v", right, g.At(1))
	}
	if left.Equal(right) {
		t.Error("gradient endpoints are identical")
	}
}

func TestBuffer_ClearRect(t *testing.T) {
	b := NewBuffer(4, 2)
	b.Fill(b.Rect(), '#', NewStyle())

	b.ClearRect(NewRect(1, 0, 2, 2))

	want := "#  #\n#  #"
	if got := b.String(); got != want {
		t.Errorf("buffer =\n%s\nwant\n%s", got, want)
	}
}

func TestBuffer_Resize_PreservesOverlap(t *testing.T) {
	b := NewBuffer(6, 4)
	b.SetString(0, 0, "header", NewStyle())
	b.SetString(0, 3, "footer", NewStyle())
	b.Swap()

	b.Resize(4, 2)

	if b.Width() != 4 || b.Height() != 2 {
		t.Fatalf("size = %dx%d, want 4x2", b.Width(), b.Height())
	}
	if got := b.String(); got != "head\n    " {
		t.Errorf("back buffer = %q, want %q", got, "head\n    ")
	}
	// Front and back resize together.
	if b.FrontCell(0, 0).Rune != 'h' {
		t.Errorf("front cell = %q, want 'h'", b.FrontCell(0, 0).Rune)
	}
}

func TestBuffer_Resize_Grow(t *testing.T) {
	b := NewBuffer(2, 1)
	b.SetString(0, 0, "ab", NewStyle())

	b.Resize(4, 2)

	if got := b.StringTrimmed(); got != "ab\n" {
		t.Errorf("buffer = %q, want %q", got, "ab\n")
	}
	if b.Cell(3, 1).Rune != ' ' {
		t.Error("new area not cleared to spaces")
	}
}

func TestBuffer_Resize_Degenerate(t *testing.T) {
	b := NewBuffer(4, 2)

	b.Resize(0, 2)

	if b.Width() != 0 {
		t.Errorf("width = %d, want 0", b.Width())
	}
	// Draws into a degenerate buffer are no-ops, not panics.
	b.SetRune(0, 0, 'x', NewStyle())
	b.Fill(NewRect(0, 0, 3, 3), '#', NewStyle())
	if len(b.Diff()) != 0 {
		t.Error("degenerate buffer produced diff entries")
	}
}

func TestBuffer_OutOfBoundsWrites(t *testing.T) {
	b := NewBuffer(3, 3)

	b.SetRune(-1, 0, 'x', NewStyle())
	b.SetRune(0, -1, 'x', NewStyle())
	b.SetRune(3, 0, 'x', NewStyle())
	b.SetRune(0, 3, 'x', NewStyle())

	if len(b.Diff()) != 0 {
		t.Error("out of bounds writes modified the buffer")
	}
}
