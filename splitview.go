package retroui

// SplitView partitions its frame between two children at a movable
// divider. A vertical split stacks the children; a horizontal split
// places them side by side. The divider ratio is adjusted with plain
// arrow keys while the split view is focused (or when the keys bubble up
// from a child).
type SplitView struct {
	ControlBase
	vertical bool
	divider  bool
	ratio    float64
	first    View
	second   View
}

// NewSplitView creates a vertical 50/50 split with a divider line.
func NewSplitView() *SplitView {
	return &SplitView{vertical: true, divider: true, ratio: 0.5}
}

// SetVertical sets the split orientation.
func (s *SplitView) SetVertical(vertical bool) {
	s.vertical = vertical
	s.Layout()
}

// SetDivider toggles the one-cell divider line between the children.
func (s *SplitView) SetDivider(divider bool) {
	s.divider = divider
	s.Layout()
}

// Ratio returns the share of the frame given to the first child.
func (s *SplitView) Ratio() float64 { return s.ratio }

// SetRatio sets the first child's share, clamped to [0, 1].
func (s *SplitView) SetRatio(ratio float64) {
	s.ratio = clampFloat(ratio, 0, 1)
	s.Layout()
}

// SetFirst sets the top (or left) child.
func (s *SplitView) SetFirst(v View) error {
	if s.first != nil {
		s.RemoveChild(s.first)
	}
	s.first = v
	if v == nil {
		return nil
	}
	return s.AddChild(v)
}

// SetSecond sets the bottom (or right) child.
func (s *SplitView) SetSecond(v View) error {
	if s.second != nil {
		s.RemoveChild(s.second)
	}
	s.second = v
	if v == nil {
		return nil
	}
	return s.AddChild(v)
}

// Layout divides the frame between the children at the current ratio.
func (s *SplitView) Layout() {
	bounds := s.Bounds()
	gap := 0
	if s.divider {
		gap = 1
	}

	if s.vertical {
		usable := max(0, bounds.Height-gap)
		top := int(s.ratio * float64(usable))
		if s.first != nil {
			s.first.SetFrame(NewRect(0, 0, bounds.Width, top))
			s.first.Layout()
		}
		if s.second != nil {
			s.second.SetFrame(NewRect(0, top+gap, bounds.Width, usable-top))
			s.second.Layout()
		}
		return
	}

	usable := max(0, bounds.Width-gap)
	left := int(s.ratio * float64(usable))
	if s.first != nil {
		s.first.SetFrame(NewRect(0, 0, left, bounds.Height))
		s.first.Layout()
	}
	if s.second != nil {
		s.second.SetFrame(NewRect(left+gap, 0, usable-left, bounds.Height))
		s.second.Layout()
	}
}

// HandleKey moves the divider by one line (vertical) or two columns
// (horizontal).
func (s *SplitView) HandleKey(ev KeyEvent) bool {
	if ev.Mod != ModNone {
		return false
	}
	bounds := s.Bounds()
	switch {
	case s.vertical && ev.Key == KeyUp && bounds.Height > 0:
		s.SetRatio(s.ratio - 1/float64(bounds.Height))
	case s.vertical && ev.Key == KeyDown && bounds.Height > 0:
		s.SetRatio(s.ratio + 1/float64(bounds.Height))
	case !s.vertical && ev.Key == KeyLeft && bounds.Width > 0:
		s.SetRatio(s.ratio - 2/float64(bounds.Width))
	case !s.vertical && ev.Key == KeyRight && bounds.Width > 0:
		s.SetRatio(s.ratio + 2/float64(bounds.Width))
	default:
		return false
	}
	return true
}

// HandleEvent consumes divider keys bubbling up from descendants.
func (s *SplitView) HandleEvent(ev Event) bool {
	if ke, ok := ev.(KeyEvent); ok {
		return s.HandleKey(ke)
	}
	return false
}

// Draw paints both children and the divider line.
func (s *SplitView) Draw(p *Painter) {
	s.DrawChildren(p)
	if !s.divider {
		return
	}

	style := NewStyle()
	bounds := s.Bounds()
	if s.vertical {
		y := 0
		if s.first != nil {
			y = s.first.Frame().Bottom()
		}
		for x := 0; x < bounds.Width; x++ {
			p.SetRune(x, y, '─', style)
		}
		return
	}

	x := 0
	if s.first != nil {
		x = s.first.Frame().Right()
	}
	for y := 0; y < bounds.Height; y++ {
		p.SetRune(x, y, '│', style)
	}
}
