package retroui

// Control is the capability refinement of View for focusable widgets:
// views that can hold keyboard focus and handle plain (non-navigation)
// keys. Focus traversal collects controls in pre-order over the view
// tree, restricted to the focus-eligible panel.
type Control interface {
	View

	// Focusable reports whether the control can currently receive focus.
	// Disabled controls return false and are skipped by navigation.
	Focusable() bool

	// HandleKey processes a plain key event while the control is focused.
	// Returns true if the key was consumed; otherwise the event bubbles
	// up the responder chain from the control's parent.
	HandleKey(ev KeyEvent) bool

	// Focus is called when the control gains focus.
	Focus()

	// Blur is called when the control loses focus.
	Blur()
}

// ControlBase provides the Control contract for concrete widgets: always
// focusable, consumes no keys, and tracks focus state for drawing.
// Widgets embed it and override HandleKey (and Focusable, for widgets
// that can be disabled).
type ControlBase struct {
	ViewBase
	focused  bool
	disabled bool
}

// Focusable reports whether the control can receive focus.
func (c *ControlBase) Focusable() bool {
	return !c.disabled
}

// SetDisabled removes the control from focus traversal.
func (c *ControlBase) SetDisabled(disabled bool) {
	c.disabled = disabled
}

// HandleKey consumes nothing by default.
func (c *ControlBase) HandleKey(ev KeyEvent) bool {
	return false
}

// Focus marks the control focused.
func (c *ControlBase) Focus() {
	c.focused = true
}

// Blur marks the control unfocused.
func (c *ControlBase) Blur() {
	c.focused = false
}

// Focused returns true while the control holds focus. Widgets use it to
// draw a highlight.
func (c *ControlBase) Focused() bool {
	return c.focused
}
