package retroui

import "testing"

func accordionFixture(t *testing.T) (*AccordionView, *TextView, *TextView) {
	t.Helper()
	acc := NewAccordionView()
	one := NewTextView("first body")
	two := NewTextView("second body")
	if err := acc.AddSection("One", one); err != nil {
		t.Fatalf("AddSection() error: %v", err)
	}
	if err := acc.AddSection("Two", two); err != nil {
		t.Fatalf("AddSection() error: %v", err)
	}
	acc.SetFrame(NewRect(0, 0, 20, 8))
	acc.Layout()
	return acc, one, two
}

func TestAccordionView_StartsCollapsed(t *testing.T) {
	acc, one, two := accordionFixture(t)

	if acc.Expanded() != -1 {
		t.Errorf("Expanded() = %d, want -1", acc.Expanded())
	}
	if one.Frame().Height != 0 || two.Frame().Height != 0 {
		t.Error("collapsed sections have non-zero height")
	}
}

func TestAccordionView_Expand(t *testing.T) {
	acc, one, two := accordionFixture(t)

	acc.Expand(1)

	if acc.Expanded() != 1 {
		t.Fatalf("Expanded() = %d, want 1", acc.Expanded())
	}
	// Two header rows, the rest goes to the expanded body.
	if got := two.Frame(); got != NewRect(0, 2, 20, 6) {
		t.Errorf("expanded frame = %+v, want {0 2 20 6}", got)
	}
	if one.Frame().Height != 0 {
		t.Error("collapsed section gained height")
	}

	// Expanding another section collapses the first.
	acc.Expand(0)
	if two.Frame().Height != 0 {
		t.Error("previously expanded section kept its height")
	}
	if got := one.Frame(); got != NewRect(0, 1, 20, 6) {
		t.Errorf("expanded frame = %+v, want {0 1 20 6}", got)
	}
}

func TestAccordionView_HandleKey(t *testing.T) {
	acc, _, _ := accordionFixture(t)

	if !acc.HandleKey(KeyEvent{Key: KeyDown}) {
		t.Fatal("KeyDown not consumed")
	}
	if acc.Highlighted() != 1 {
		t.Errorf("highlight = %d after KeyDown, want 1", acc.Highlighted())
	}

	// Enter toggles the highlighted section.
	acc.HandleKey(KeyEvent{Key: KeyEnter})
	if acc.Expanded() != 1 {
		t.Errorf("Expanded() = %d after Enter, want 1", acc.Expanded())
	}
	acc.HandleKey(KeyEvent{Key: KeyEnter})
	if acc.Expanded() != -1 {
		t.Error("second Enter did not collapse the section")
	}

	// The highlight stops at the edges.
	acc.HandleKey(KeyEvent{Key: KeyDown})
	if acc.Highlighted() != 1 {
		t.Error("highlight moved past the last section")
	}
	acc.HandleKey(KeyEvent{Key: KeyUp})
	acc.HandleKey(KeyEvent{Key: KeyUp})
	if acc.Highlighted() != 0 {
		t.Error("highlight moved past the first section")
	}
}

func TestAccordionView_Draw(t *testing.T) {
	acc, _, _ := accordionFixture(t)
	acc.Expand(0)
	buf := NewBuffer(20, 8)

	acc.Draw(NewPainter(buf, buf.Rect()))

	if got := buf.Cell(0, 0).Rune; got != '▾' {
		t.Errorf("expanded marker = %q, want '▾'", got)
	}
	if got := buf.Cell(0, 1).Rune; got != 'f' {
		t.Errorf("body cell = %q, want 'f'", got)
	}
	// The collapsed section's header follows the expanded body.
	if got := buf.Cell(0, 7).Rune; got != '▸' {
		t.Errorf("collapsed marker = %q, want '▸'", got)
	}
}
