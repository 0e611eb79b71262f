package retroui

import "testing"

func tabFixture(t *testing.T) (*TabView, *TextView, *TextView) {
	t.Helper()
	tabs := NewTabView()
	one := NewTextView("one")
	two := NewTextView("two")
	if err := tabs.AddTab("First", one); err != nil {
		t.Fatalf("AddTab() error: %v", err)
	}
	if err := tabs.AddTab("Second", two); err != nil {
		t.Fatalf("AddTab() error: %v", err)
	}
	tabs.SetFrame(NewRect(0, 0, 20, 5))
	tabs.Layout()
	return tabs, one, two
}

func TestTabView_Selected(t *testing.T) {
	tabs, one, _ := tabFixture(t)

	if tabs.Selected() != 0 {
		t.Errorf("initial selection = %d, want 0", tabs.Selected())
	}
	if tabs.SelectedView() != View(one) {
		t.Error("SelectedView() is not the first tab's view")
	}

	if NewTabView().Selected() != -1 {
		t.Error("empty tab view selection != -1")
	}
}

func TestTabView_Select_IgnoresOutOfRange(t *testing.T) {
	tabs, _, _ := tabFixture(t)

	tabs.Select(5)
	tabs.Select(-1)

	if tabs.Selected() != 0 {
		t.Errorf("selection = %d after out-of-range selects, want 0", tabs.Selected())
	}
}

func TestTabView_HandleKey_Switches(t *testing.T) {
	tabs, _, two := tabFixture(t)

	if !tabs.HandleKey(KeyEvent{Key: KeyRight}) {
		t.Fatal("KeyRight not consumed")
	}
	if tabs.SelectedView() != View(two) {
		t.Error("KeyRight did not switch to the second tab")
	}

	// At the last tab, right is consumed but stays put.
	tabs.HandleKey(KeyEvent{Key: KeyRight})
	if tabs.Selected() != 1 {
		t.Error("selection moved past the last tab")
	}

	tabs.HandleKey(KeyEvent{Key: KeyLeft})
	if tabs.Selected() != 0 {
		t.Error("KeyLeft did not switch back")
	}
}

func TestTabView_Layout_SharesContentArea(t *testing.T) {
	_, one, two := tabFixture(t)

	want := NewRect(0, 1, 20, 4)
	if one.Frame() != want || two.Frame() != want {
		t.Errorf("tab frames = %+v / %+v, want both %+v", one.Frame(), two.Frame(), want)
	}
}

func TestTabView_Draw_OnlySelectedTabContent(t *testing.T) {
	tabs, _, _ := tabFixture(t)
	buf := NewBuffer(20, 5)

	tabs.Draw(NewPainter(buf, buf.Rect()))

	if got := buf.Cell(1, 0).Rune; got != 'F' {
		t.Errorf("title row cell = %q, want 'F'", got)
	}
	if got := buf.Cell(0, 1).Rune; got != 'o' {
		t.Errorf("content cell = %q, want 'o' from the selected tab", got)
	}

	tabs.Select(1)
	buf.Clear()
	tabs.Draw(NewPainter(buf, buf.Rect()))
	if got := buf.Cell(0, 1).Rune; got != 't' {
		t.Errorf("content cell = %q, want 't' after switching tabs", got)
	}
}
