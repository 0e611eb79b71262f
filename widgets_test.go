package retroui

import (
	"strings"
	"testing"
)

func TestButton_Press(t *testing.T) {
	b := NewButton("OK")
	var fired int
	b.OnPress = func(pressed bool) {
		if !pressed {
			t.Error("momentary press reported false")
		}
		fired++
	}

	if !b.HandleKey(KeyEvent{Key: KeyEnter}) {
		t.Fatal("Enter not consumed")
	}
	b.HandleKey(KeyEvent{Key: KeySpace})
	if fired != 2 {
		t.Errorf("OnPress fired %d times, want 2", fired)
	}
}

func TestButton_Toggle(t *testing.T) {
	b := NewButton("Mute")
	b.SetToggle(true)
	var states []bool
	b.OnPress = func(pressed bool) {
		states = append(states, pressed)
	}

	b.HandleKey(KeyEvent{Key: KeyEnter})
	b.HandleKey(KeyEvent{Key: KeyEnter})

	if len(states) != 2 || !states[0] || states[1] {
		t.Errorf("toggle states = %v, want [true false]", states)
	}
	if b.Pressed() {
		t.Error("button reports pressed after toggling off")
	}
}

func TestButton_IgnoresOtherKeys(t *testing.T) {
	b := NewButton("OK")
	b.OnPress = func(bool) { t.Error("OnPress fired for a non-activation key") }

	if b.HandleKey(KeyEvent{Key: KeyRune, Rune: 'x'}) {
		t.Error("plain rune consumed")
	}
	if b.HandleKey(KeyEvent{Key: KeyEnter, Mod: ModCtrl}) {
		t.Error("modified Enter consumed")
	}
}

func TestButton_Draw(t *testing.T) {
	buf := NewBuffer(10, 1)
	b := NewButton("Go")
	b.SetFrame(NewRect(0, 0, 10, 1))

	b.Draw(NewPainter(buf, buf.Rect()))

	if got := buf.StringTrimmed(); got != "[ Go ]" {
		t.Errorf("button = %q, want %q", got, "[ Go ]")
	}
}

func TestSlider_HandleKey(t *testing.T) {
	s := NewSlider()
	s.SetDivisions(4)
	s.SetFrame(NewRect(0, 0, 9, 1))

	var last float64 = -1
	s.OnChange = func(v float64) { last = v }

	s.HandleKey(KeyEvent{Key: KeyRight})
	if s.Value() != 0.25 {
		t.Errorf("value = %v after one step, want 0.25", s.Value())
	}
	if last != 0.25 {
		t.Errorf("OnChange got %v, want 0.25", last)
	}

	s.HandleKey(KeyEvent{Key: KeyEnd})
	if s.Value() != 1 {
		t.Errorf("value = %v after End, want 1", s.Value())
	}

	// Stepping past the top clamps and fires no change.
	last = -1
	s.HandleKey(KeyEvent{Key: KeyRight})
	if s.Value() != 1 {
		t.Errorf("value = %v, want still 1", s.Value())
	}
	if last != -1 {
		t.Error("OnChange fired without a value change")
	}

	s.HandleKey(KeyEvent{Key: KeyHome})
	if s.Value() != 0 {
		t.Errorf("value = %v after Home, want 0", s.Value())
	}
}

func TestSlider_SetValue_SnapsToDivisions(t *testing.T) {
	s := NewSlider()
	s.SetDivisions(4)

	s.SetValue(0.3)
	if s.Value() != 0.25 {
		t.Errorf("value = %v, want snapped 0.25", s.Value())
	}
	s.SetValue(2)
	if s.Value() != 1 {
		t.Errorf("value = %v, want clamped 1", s.Value())
	}
}

func TestSlider_Draw(t *testing.T) {
	buf := NewBuffer(5, 1)
	s := NewSlider()
	s.SetFrame(NewRect(0, 0, 5, 1))
	s.SetValue(0.5)

	s.Draw(NewPainter(buf, buf.Rect()))

	if got := buf.String(); got != "──◆──" {
		t.Errorf("slider = %q, want %q", got, "──◆──")
	}
}

func TestListView_Select(t *testing.T) {
	l := NewListView([]string{"a", "b", "c"})
	var got []string
	l.OnSelect = func(_ int, item string) { got = append(got, item) }

	l.HandleKey(KeyEvent{Key: KeyDown})
	l.HandleKey(KeyEvent{Key: KeyDown})
	l.HandleKey(KeyEvent{Key: KeyDown}) // at the end; no movement
	l.HandleKey(KeyEvent{Key: KeyUp})

	if strings.Join(got, "") != "bcb" {
		t.Errorf("selection sequence = %v, want [b c b]", got)
	}
	if l.SelectedItem() != "b" {
		t.Errorf("SelectedItem() = %q, want %q", l.SelectedItem(), "b")
	}
}

func TestListView_Activate(t *testing.T) {
	l := NewListView([]string{"a", "b"})
	var activated string
	l.OnActivate = func(_ int, item string) { activated = item }

	l.HandleKey(KeyEvent{Key: KeyDown})
	l.HandleKey(KeyEvent{Key: KeyEnter})

	if activated != "b" {
		t.Errorf("activated = %q, want %q", activated, "b")
	}
}

func TestListView_ScrollsToKeepSelectionVisible(t *testing.T) {
	l := NewListView([]string{"a", "b", "c", "d", "e", "f"})
	l.SetFrame(NewRect(0, 0, 5, 3))

	l.HandleKey(KeyEvent{Key: KeyEnd})
	buf := NewBuffer(5, 3)
	l.Draw(NewPainter(buf, buf.Rect()))

	if got := buf.StringTrimmed(); got != "d\ne\nf" {
		t.Errorf("window =\n%s\nwant d/e/f", got)
	}

	l.HandleKey(KeyEvent{Key: KeyHome})
	buf.Clear()
	l.Draw(NewPainter(buf, buf.Rect()))
	if got := buf.StringTrimmed(); got != "a\nb\nc" {
		t.Errorf("window =\n%s\nwant a/b/c", got)
	}
}

func TestListView_SetItems_ClampsSelection(t *testing.T) {
	l := NewListView([]string{"a", "b", "c"})
	l.HandleKey(KeyEvent{Key: KeyEnd})

	l.SetItems([]string{"x"})
	if l.Selected() != 0 {
		t.Errorf("Selected() = %d after shrink, want 0", l.Selected())
	}

	l.SetItems(nil)
	if l.Selected() != -1 {
		t.Errorf("Selected() = %d for empty list, want -1", l.Selected())
	}
	if l.HandleKey(KeyEvent{Key: KeyDown}) {
		t.Error("empty list consumed a key")
	}
}

func TestTextView_PreferredSize(t *testing.T) {
	tv := NewTextView("short\na longer line\nx")

	if got := tv.PreferredSize(); got != NewSize(13, 3) {
		t.Errorf("PreferredSize() = %+v, want {13 3}", got)
	}
	if got := NewTextView("").PreferredSize(); got != NewSize(0, 0) {
		t.Errorf("empty PreferredSize() = %+v, want {0 0}", got)
	}
}

func TestTextView_WideRunes(t *testing.T) {
	tv := NewTextView("日本語")

	if got := tv.PreferredSize(); got != NewSize(6, 1) {
		t.Errorf("PreferredSize() = %+v, want {6 1}", got)
	}
}

func TestBox_Layout_InsetsContent(t *testing.T) {
	box := NewBox()
	content := &ViewBase{}
	_ = box.SetContent(content)
	box.SetFrame(NewRect(0, 0, 10, 6))
	box.Layout()

	if got := content.Frame(); got != NewRect(1, 1, 8, 4) {
		t.Errorf("content frame = %+v, want {1 1 8 4}", got)
	}
}

func TestBox_Draw(t *testing.T) {
	buf := NewBuffer(8, 3)
	box := NewBox()
	box.SetTitle("hi")
	box.SetFrame(NewRect(0, 0, 8, 3))

	box.Draw(NewPainter(buf, buf.Rect()))

	want := "┌─ hi ─┐\n│      │\n└──────┘"
	if got := buf.String(); got != want {
		t.Errorf("box =\n%s\nwant\n%s", got, want)
	}
}

func TestFillView_Draw(t *testing.T) {
	buf := NewBuffer(4, 2)
	f := NewFillView('.', NewStyle())
	f.SetFrame(NewRect(0, 0, 4, 2))

	f.Draw(NewPainter(buf, buf.Rect()))

	if got := buf.String(); got != "....\n...." {
		t.Errorf("fill = %q", got)
	}
}

func TestFillView_Gradient(t *testing.T) {
	buf := NewBuffer(4, 1)
	f := NewFillView(' ', NewStyle())
	g := NewGradient(RGBColor(0, 0, 0), RGBColor(255, 255, 255))
	f.SetGradient(&g)
	f.SetFrame(NewRect(0, 0, 4, 1))

	f.Draw(NewPainter(buf, buf.Rect()))

	if buf.Cell(0, 0).Style.Bg.Equal(buf.Cell(3, 0).Style.Bg) {
		t.Error("gradient endpoints have identical backgrounds")
	}
}

func TestEmptyView_Draw(t *testing.T) {
	buf := NewBuffer(11, 3)
	e := NewEmptyView()
	e.SetFrame(NewRect(0, 0, 11, 3))

	e.Draw(NewPainter(buf, buf.Rect()))

	if got := strings.TrimSpace(buf.String()); got != "empty" {
		t.Errorf("placeholder = %q, want %q", got, "empty")
	}
	if buf.Cell(3, 1).Rune != 'e' {
		t.Error("placeholder not centered")
	}
}
