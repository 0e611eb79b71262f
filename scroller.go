package retroui

// Scroller is the indicator strip beside scrollable content: a bar whose
// length shows the visible fraction and whose position shows how far the
// content has scrolled. It is one cell thick in its cross dimension.
type Scroller struct {
	ViewBase
	vertical        bool
	position        float64 // 0 at the start of the content, 1 at the end
	visibleFraction float64 // fraction of the content currently visible
}

// NewScroller creates a vertical scroller.
func NewScroller() *Scroller {
	return &Scroller{vertical: true, visibleFraction: 1}
}

// SetVertical sets the scroller's orientation.
func (s *Scroller) SetVertical(vertical bool) {
	s.vertical = vertical
}

// SetPosition sets the scroll position, clamped to [0, 1].
func (s *Scroller) SetPosition(pos float64) {
	s.position = clampFloat(pos, 0, 1)
}

// SetVisibleFraction sets the visible fraction, clamped to [0, 1].
func (s *Scroller) SetVisibleFraction(frac float64) {
	s.visibleFraction = clampFloat(frac, 0, 1)
}

// SetFrame constrains the frame to one cell thick in the cross dimension.
func (s *Scroller) SetFrame(frame Rect) {
	if s.vertical {
		frame.Width = min(frame.Width, 1)
	} else {
		frame.Height = min(frame.Height, 1)
	}
	s.ViewBase.SetFrame(frame)
}

// Draw paints the track and the bar.
func (s *Scroller) Draw(p *Painter) {
	length := s.Frame().Height
	track, bar := '│', '█'
	if !s.vertical {
		length = s.Frame().Width
		track = '─'
	}
	if length <= 0 {
		return
	}

	barLen := max(1, int(s.visibleFraction*float64(length)))
	travel := length - barLen
	barStart := int(s.position * float64(travel))

	style := NewStyle()
	for i := 0; i < length; i++ {
		r := track
		if i >= barStart && i < barStart+barLen {
			r = bar
		}
		if s.vertical {
			p.SetRune(0, i, r, style)
		} else {
			p.SetRune(i, 0, r, style)
		}
	}
}
