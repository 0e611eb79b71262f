package retroui

// AccordionSection pairs a header title with a collapsible body view.
type AccordionSection struct {
	Title string
	View  View
}

// AccordionView stacks titled sections and expands at most one of them.
// Up and down arrows move the header highlight; enter or space toggles
// the highlighted section.
type AccordionView struct {
	ControlBase
	sections    []AccordionSection
	highlighted int
	expanded    int
}

// NewAccordionView creates an empty accordion with nothing expanded.
func NewAccordionView() *AccordionView {
	return &AccordionView{expanded: -1}
}

// AddSection appends a section and attaches its view.
func (a *AccordionView) AddSection(title string, v View) error {
	if err := a.AddChild(v); err != nil {
		return err
	}
	a.sections = append(a.sections, AccordionSection{Title: title, View: v})
	a.Layout()
	return nil
}

// Sections returns the sections in order.
func (a *AccordionView) Sections() []AccordionSection { return a.sections }

// Highlighted returns the index of the highlighted header, or -1 when
// empty.
func (a *AccordionView) Highlighted() int {
	if len(a.sections) == 0 {
		return -1
	}
	return a.highlighted
}

// Expanded returns the index of the expanded section, or -1 when all
// are collapsed.
func (a *AccordionView) Expanded() int { return a.expanded }

// Expand opens the section at index, collapsing any other. An
// out-of-range index collapses everything.
func (a *AccordionView) Expand(index int) {
	if index < 0 || index >= len(a.sections) {
		a.expanded = -1
	} else {
		a.expanded = index
	}
	a.Layout()
}

// Displaying reports whether child is the expanded section's body,
// keeping controls in collapsed sections out of focus traversal.
func (a *AccordionView) Displaying(child View) bool {
	return a.expanded >= 0 && child == a.sections[a.expanded].View
}

// Toggle expands the section at index, or collapses it if it is already
// expanded.
func (a *AccordionView) Toggle(index int) {
	if index == a.expanded {
		a.Expand(-1)
		return
	}
	a.Expand(index)
}

// Layout stacks one header row per section and gives the remaining
// height to the expanded section's body.
func (a *AccordionView) Layout() {
	bounds := a.Bounds()
	bodyHeight := max(0, bounds.Height-len(a.sections))

	y := 0
	for i, sec := range a.sections {
		y++ // header row
		h := 0
		if i == a.expanded {
			h = bodyHeight
		}
		sec.View.SetFrame(NewRect(0, y, bounds.Width, h))
		sec.View.Layout()
		y += h
	}
}

// HandleKey moves the highlight and toggles sections.
func (a *AccordionView) HandleKey(ev KeyEvent) bool {
	if ev.Mod != ModNone || len(a.sections) == 0 {
		return false
	}
	switch ev.Key {
	case KeyUp:
		if a.highlighted > 0 {
			a.highlighted--
		}
		return true
	case KeyDown:
		if a.highlighted < len(a.sections)-1 {
			a.highlighted++
		}
		return true
	case KeyEnter, KeySpace:
		a.Toggle(a.highlighted)
		return true
	}
	return false
}

// HandleEvent consumes accordion keys bubbling up from descendants.
func (a *AccordionView) HandleEvent(ev Event) bool {
	if ke, ok := ev.(KeyEvent); ok {
		return a.HandleKey(ke)
	}
	return false
}

// Draw paints the headers and the expanded body.
func (a *AccordionView) Draw(p *Painter) {
	bounds := a.Bounds()
	plain := NewStyle()
	focus := NewStyle().Reverse()

	y := 0
	for i, sec := range a.sections {
		marker := '▸'
		if i == a.expanded {
			marker = '▾'
		}
		style := plain
		if i == a.highlighted && a.Focused() {
			style = focus
		}
		header := string(marker) + " " + sec.Title
		p.Fill(NewRect(0, y, bounds.Width, 1), ' ', style)
		p.SetString(0, y, truncateToWidth(header, bounds.Width), style)
		y++
		if i == a.expanded {
			sec.View.Draw(p.Child(sec.View.Frame()))
			y += sec.View.Frame().Height
		}
	}
}
