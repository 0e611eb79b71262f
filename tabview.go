package retroui

// Tab pairs a title with the view shown when the tab is selected.
type Tab struct {
	Title string
	View  View
}

// TabView shows a row of titles above a single visible child. Left and
// right arrows switch tabs; hidden children stay laid out so switching
// back is instant.
type TabView struct {
	ControlBase
	tabs     []Tab
	selected int
}

// NewTabView creates an empty tab view.
func NewTabView() *TabView {
	return &TabView{}
}

// AddTab appends a tab and attaches its view.
func (t *TabView) AddTab(title string, v View) error {
	if err := t.AddChild(v); err != nil {
		return err
	}
	t.tabs = append(t.tabs, Tab{Title: title, View: v})
	t.Layout()
	return nil
}

// Tabs returns the current tabs in order.
func (t *TabView) Tabs() []Tab { return t.tabs }

// Selected returns the index of the visible tab, or -1 when empty.
func (t *TabView) Selected() int {
	if len(t.tabs) == 0 {
		return -1
	}
	return t.selected
}

// Select makes the tab at index visible. Out-of-range indexes are
// ignored.
func (t *TabView) Select(index int) {
	if index < 0 || index >= len(t.tabs) {
		return
	}
	t.selected = index
}

// Displaying reports whether child is the visible tab's view, keeping
// controls on hidden tabs out of focus traversal.
func (t *TabView) Displaying(child View) bool {
	return child == t.SelectedView()
}

// SelectedView returns the visible tab's view, or nil when empty.
func (t *TabView) SelectedView() View {
	if len(t.tabs) == 0 {
		return nil
	}
	return t.tabs[t.selected].View
}

// Layout gives every tab's view the content area below the title row.
func (t *TabView) Layout() {
	bounds := t.Bounds()
	content := NewRect(0, 1, bounds.Width, bounds.Height-1)
	for _, tab := range t.tabs {
		tab.View.SetFrame(content)
		tab.View.Layout()
	}
}

// HandleKey switches tabs with plain left/right arrows.
func (t *TabView) HandleKey(ev KeyEvent) bool {
	if ev.Mod != ModNone || len(t.tabs) == 0 {
		return false
	}
	switch ev.Key {
	case KeyLeft:
		t.Select(t.selected - 1)
		return true
	case KeyRight:
		t.Select(t.selected + 1)
		return true
	}
	return false
}

// HandleEvent consumes tab-switch keys bubbling up from descendants.
func (t *TabView) HandleEvent(ev Event) bool {
	if ke, ok := ev.(KeyEvent); ok {
		return t.HandleKey(ke)
	}
	return false
}

// Draw paints the title row and the selected tab's view.
func (t *TabView) Draw(p *Painter) {
	plain := NewStyle()
	active := NewStyle().Bold().Underline()

	x := 0
	for i, tab := range t.tabs {
		style := plain
		if i == t.selected {
			style = active
		}
		label := " " + tab.Title + " "
		p.SetString(x, 0, label, style)
		x += StringWidth(label)
	}

	if v := t.SelectedView(); v != nil {
		v.Draw(p.Child(v.Frame()))
	}
}
