package retroui

// Button is a focusable control triggered with enter or space. A
// momentary button fires OnPress each time; a toggle button flips its
// pressed state and fires OnPress with the new state.
type Button struct {
	ControlBase
	label   string
	toggle  bool
	pressed bool

	// OnPress is called when the button is activated. For toggle
	// buttons the argument is the new pressed state; momentary buttons
	// always pass true.
	OnPress func(pressed bool)
}

// NewButton creates a momentary button.
func NewButton(label string) *Button {
	return &Button{label: label}
}

// SetLabel changes the button text.
func (b *Button) SetLabel(label string) { b.label = label }

// Label returns the button text.
func (b *Button) Label() string { return b.label }

// SetToggle switches between momentary and toggle behavior.
func (b *Button) SetToggle(toggle bool) { b.toggle = toggle }

// Pressed reports a toggle button's current state.
func (b *Button) Pressed() bool { return b.pressed }

// SetPressed sets a toggle button's state without firing OnPress.
func (b *Button) SetPressed(pressed bool) { b.pressed = pressed }

// PreferredSize reports the label width plus bracket padding.
func (b *Button) PreferredSize() Size {
	return NewSize(StringWidth(b.label)+4, 1)
}

// HandleKey activates the button on plain enter or space.
func (b *Button) HandleKey(ev KeyEvent) bool {
	if ev.Mod != ModNone {
		return false
	}
	if ev.Key != KeyEnter && ev.Key != KeySpace {
		return false
	}
	if b.toggle {
		b.pressed = !b.pressed
		if b.OnPress != nil {
			b.OnPress(b.pressed)
		}
		return true
	}
	if b.OnPress != nil {
		b.OnPress(true)
	}
	return true
}

func (b *Button) Draw(p *Painter) {
	style := NewStyle()
	if b.Focused() {
		style = style.Reverse()
	}
	if b.toggle && b.pressed {
		style = style.Bold()
	}

	bounds := b.Bounds()
	label := "[ " + truncateToWidth(b.label, max(0, bounds.Width-4)) + " ]"
	p.Fill(NewRect(0, 0, bounds.Width, 1), ' ', style)
	p.SetString(0, 0, label, style)
}
