package retroui

// Slider is a focusable control holding a value in [0, 1], adjusted
// with plain arrow keys. A positive division count snaps the value to
// that many steps; zero divisions moves continuously by one cell.
type Slider struct {
	ControlBase
	vertical  bool
	value     float64
	divisions int

	// OnChange is called whenever the value changes.
	OnChange func(value float64)
}

// NewSlider creates a horizontal slider at zero.
func NewSlider() *Slider {
	return &Slider{}
}

// SetVertical sets the slider orientation.
func (s *Slider) SetVertical(vertical bool) { s.vertical = vertical }

// SetDivisions snaps the value to n discrete steps. Zero disables
// snapping.
func (s *Slider) SetDivisions(n int) { s.divisions = max(0, n) }

// Value returns the current value in [0, 1].
func (s *Slider) Value() float64 { return s.value }

// SetValue sets the value, clamped and snapped, without firing
// OnChange.
func (s *Slider) SetValue(v float64) {
	s.value = s.snap(clampFloat(v, 0, 1))
}

func (s *Slider) snap(v float64) float64 {
	if s.divisions <= 0 {
		return v
	}
	steps := float64(s.divisions)
	return clampFloat(float64(int(v*steps+0.5))/steps, 0, 1)
}

// SetFrame constrains the off-axis dimension to one cell.
func (s *Slider) SetFrame(frame Rect) {
	if s.vertical {
		frame.Width = min(frame.Width, 1)
	} else {
		frame.Height = min(frame.Height, 1)
	}
	s.ControlBase.SetFrame(frame)
}

func (s *Slider) step() float64 {
	if s.divisions > 0 {
		return 1 / float64(s.divisions)
	}
	length := s.trackLength()
	if length <= 1 {
		return 1
	}
	return 1 / float64(length-1)
}

func (s *Slider) trackLength() int {
	if s.vertical {
		return s.Bounds().Height
	}
	return s.Bounds().Width
}

// HandleKey adjusts the value with plain arrow keys. Up and right
// increase; down and left decrease.
func (s *Slider) HandleKey(ev KeyEvent) bool {
	if ev.Mod != ModNone {
		return false
	}
	var delta float64
	switch ev.Key {
	case KeyRight:
		delta = s.step()
	case KeyLeft:
		delta = -s.step()
	case KeyUp:
		delta = s.step()
	case KeyDown:
		delta = -s.step()
	case KeyHome:
		delta = -s.value
	case KeyEnd:
		delta = 1 - s.value
	default:
		return false
	}
	prev := s.value
	s.SetValue(s.value + delta)
	if s.value != prev && s.OnChange != nil {
		s.OnChange(s.value)
	}
	return true
}

func (s *Slider) Draw(p *Painter) {
	style := NewStyle()
	if s.Focused() {
		style = style.Bold()
	}

	length := s.trackLength()
	if length <= 0 {
		return
	}
	knob := int(s.value * float64(length-1))

	for i := 0; i < length; i++ {
		r := '─'
		if s.vertical {
			r = '│'
		}
		if i == knob {
			r = '◆'
		}
		if s.vertical {
			// Vertical sliders grow upward: value 1 is the top row.
			p.SetRune(0, length-1-i, r, style)
		} else {
			p.SetRune(i, 0, r, style)
		}
	}
}
