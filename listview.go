package retroui

// ListView is a focusable control showing one item per row with a
// movable selection. Rows scroll to keep the selection visible.
type ListView struct {
	ControlBase
	items    []string
	selected int
	top      int

	// OnSelect is called when the selection moves.
	OnSelect func(index int, item string)
	// OnActivate is called when enter is pressed on an item.
	OnActivate func(index int, item string)
}

// NewListView creates a list showing items.
func NewListView(items []string) *ListView {
	return &ListView{items: items}
}

// SetItems replaces the list contents and clamps the selection.
func (l *ListView) SetItems(items []string) {
	l.items = items
	if l.selected >= len(items) {
		l.selected = max(0, len(items)-1)
	}
	l.top = clamp(l.top, 0, max(0, len(items)-1))
}

// Items returns the list contents.
func (l *ListView) Items() []string { return l.items }

// Selected returns the selected index, or -1 when the list is empty.
func (l *ListView) Selected() int {
	if len(l.items) == 0 {
		return -1
	}
	return l.selected
}

// SelectedItem returns the selected item, or "" when the list is
// empty.
func (l *ListView) SelectedItem() string {
	if len(l.items) == 0 {
		return ""
	}
	return l.items[l.selected]
}

// Select moves the selection to index and fires OnSelect if it moved.
// Out-of-range indexes are ignored.
func (l *ListView) Select(index int) {
	if index < 0 || index >= len(l.items) || index == l.selected {
		return
	}
	l.selected = index
	l.scrollToSelection()
	if l.OnSelect != nil {
		l.OnSelect(l.selected, l.items[l.selected])
	}
}

// PreferredSize reports the widest item by the item count.
func (l *ListView) PreferredSize() Size {
	w := 0
	for _, item := range l.items {
		if iw := StringWidth(item); iw > w {
			w = iw
		}
	}
	return NewSize(w, len(l.items))
}

func (l *ListView) scrollToSelection() {
	h := l.Bounds().Height
	if h <= 0 {
		return
	}
	if l.selected < l.top {
		l.top = l.selected
	}
	if l.selected >= l.top+h {
		l.top = l.selected - h + 1
	}
}

// HandleKey moves the selection with plain navigation keys and fires
// OnActivate on enter.
func (l *ListView) HandleKey(ev KeyEvent) bool {
	if ev.Mod != ModNone || len(l.items) == 0 {
		return false
	}
	switch ev.Key {
	case KeyUp:
		l.Select(l.selected - 1)
		return true
	case KeyDown:
		l.Select(l.selected + 1)
		return true
	case KeyPageUp:
		l.Select(max(0, l.selected-max(1, l.Bounds().Height-1)))
		return true
	case KeyPageDown:
		l.Select(min(len(l.items)-1, l.selected+max(1, l.Bounds().Height-1)))
		return true
	case KeyHome:
		l.Select(0)
		return true
	case KeyEnd:
		l.Select(len(l.items) - 1)
		return true
	case KeyEnter:
		if l.OnActivate != nil {
			l.OnActivate(l.selected, l.items[l.selected])
		}
		return true
	}
	return false
}

func (l *ListView) Draw(p *Painter) {
	bounds := l.Bounds()
	plain := NewStyle()
	focus := NewStyle().Reverse()

	for row := 0; row < bounds.Height; row++ {
		i := l.top + row
		if i >= len(l.items) {
			break
		}
		style := plain
		if i == l.selected && l.Focused() {
			style = focus
		}
		p.Fill(NewRect(0, row, bounds.Width, 1), ' ', style)
		p.SetString(0, row, truncateToWidth(l.items[i], bounds.Width), style)
	}
}
