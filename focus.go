package retroui

// Navigator computes focus movement over the focusable controls of the
// application's focus-eligible panel. Traversal order is the pre-order
// walk of that panel's view tree; Next and Prev wrap around. The key
// bindings that trigger navigation live in the application; Navigator is
// pure mechanism.
type Navigator struct {
	app *App
}

// NewNavigator creates a navigator over the application's panels.
func NewNavigator(app *App) *Navigator {
	return &Navigator{app: app}
}

// Next returns the control after current in traversal order, wrapping to
// the first. With a nil or unlisted current it returns the first control.
// Returns nil if the eligible panel has no focusable controls.
func (n *Navigator) Next(current Control) Control {
	controls := n.controls()
	if len(controls) == 0 {
		return nil
	}
	idx := indexOfControl(controls, current)
	if idx < 0 {
		return controls[0]
	}
	return controls[(idx+1)%len(controls)]
}

// Prev returns the control before current in traversal order, wrapping to
// the last. With a nil or unlisted current it returns the last control.
// Returns nil if the eligible panel has no focusable controls.
func (n *Navigator) Prev(current Control) Control {
	controls := n.controls()
	if len(controls) == 0 {
		return nil
	}
	idx := indexOfControl(controls, current)
	if idx < 0 {
		return controls[len(controls)-1]
	}
	return controls[(idx-1+len(controls))%len(controls)]
}

// controls lists the focusable controls of the focus-eligible panel in
// traversal order.
func (n *Navigator) controls() []Control {
	panel := n.app.ActivePanel()
	if panel == nil || panel.Root() == nil {
		return nil
	}
	return focusableControls(panel.Root())
}

// Concealer is implemented by containers that keep some children
// attached but undisplayed (unselected tabs, collapsed sections).
// Focus traversal skips subtrees the container is not displaying so
// invisible controls never receive focus.
type Concealer interface {
	// Displaying reports whether child is currently shown.
	Displaying(child View) bool
}

// focusableControls walks the tree in pre-order and collects every
// focusable control, skipping subtrees concealed by their parent.
func focusableControls(root View) []Control {
	var controls []Control
	var walk func(View)
	walk = func(v View) {
		if c, ok := v.(Control); ok && c.Focusable() {
			controls = append(controls, c)
		}
		concealer, conceals := v.(Concealer)
		for _, child := range v.Children() {
			if conceals && !concealer.Displaying(child) {
				continue
			}
			walk(child)
		}
	}
	walk(root)
	return controls
}

func indexOfControl(controls []Control, target Control) int {
	if target == nil {
		return -1
	}
	for i, c := range controls {
		if c.base() == target.base() {
			return i
		}
	}
	return -1
}
