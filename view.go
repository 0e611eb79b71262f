package retroui

import "fmt"

// View is a responder with a visual presence: it owns a rectangular frame
// in its parent's coordinate space, a list of child views (the only
// ownership edge in the tree), and knows how to lay out and paint itself.
//
// Concrete views embed ViewBase, which supplies the tree plumbing and
// decline-by-default event handling; they override Layout, Draw, and
// HandleEvent as needed.
type View interface {
	Responder

	// Frame returns the view's rectangle in parent coordinates.
	Frame() Rect

	// SetFrame moves/resizes the view. Callers are responsible for
	// invoking Layout afterwards; layout always runs top-down.
	SetFrame(frame Rect)

	// Layout recomputes the frames of the view's children given the
	// current frame, then lays the children out in turn.
	Layout()

	// Draw paints the view into the painter's cell region. The painter's
	// origin is the view's top-left corner; its clip region already
	// accounts for the panel boundary and any enclosing clipping views.
	Draw(p *Painter)

	// Children returns the child views in order. The order is
	// significant: pre-order traversal over the tree (parent first,
	// children in list order) defines focus-navigation order.
	Children() []View

	// base exposes the embedded ViewBase for tree bookkeeping. Outside
	// packages satisfy this by embedding ViewBase.
	base() *ViewBase
}

// Sizer is implemented by views with an intrinsic content size, such as
// text views. Clipping containers use it to size their document view.
type Sizer interface {
	PreferredSize() Size
}

// ViewBase provides frame storage, child management, and handle
// bookkeeping for concrete views. Embed it (by value) in every view type.
type ViewBase struct {
	frame    Rect
	children []View
	owned    bool

	// Set while attached to an application's view arena.
	app    *App
	handle ViewHandle
}

func (v *ViewBase) base() *ViewBase { return v }

// Frame returns the view's rectangle in parent coordinates.
func (v *ViewBase) Frame() Rect { return v.frame }

// SetFrame moves/resizes the view. Negative dimensions are clamped to
// zero; a degenerate frame is valid and draws nothing.
func (v *ViewBase) SetFrame(frame Rect) {
	if frame.Width < 0 {
		frame.Width = 0
	}
	if frame.Height < 0 {
		frame.Height = 0
	}
	v.frame = frame
}

// Bounds returns the view's rectangle in its own coordinate space.
func (v *ViewBase) Bounds() Rect {
	return NewRect(0, 0, v.frame.Width, v.frame.Height)
}

// Layout is a no-op by default. Container views override it to position
// their children.
func (v *ViewBase) Layout() {}

// Draw paints the children. Leaf views override this to paint content.
func (v *ViewBase) Draw(p *Painter) {
	v.DrawChildren(p)
}

// DrawChildren paints each child at its frame. Children may overflow
// their frames visibly; clipping is opt-in via ClipView and ScrollView.
func (v *ViewBase) DrawChildren(p *Painter) {
	for _, child := range v.children {
		child.Draw(p.Child(child.Frame()))
	}
}

// HandleEvent declines every event by default, letting it bubble to the
// next responder.
func (v *ViewBase) HandleEvent(ev Event) bool {
	return false
}

// Children returns the child views in order.
func (v *ViewBase) Children() []View {
	return v.children
}

// Attached returns true while the view is part of an application's tree.
func (v *ViewBase) Attached() bool {
	return v.app != nil
}

// Handle returns the view's arena handle; zero while detached.
func (v *ViewBase) Handle() ViewHandle {
	return v.handle
}

// App returns the owning application, or nil while detached.
func (v *ViewBase) App() *App {
	return v.app
}

// AddChild appends a child view. The child must not already have a
// parent, and attaching a view into its own subtree is rejected: the view
// tree must stay acyclic or the responder chain would never terminate.
func (v *ViewBase) AddChild(child View) error {
	cb := child.base()
	if cb == v {
		return fmt.Errorf("view cannot be its own child")
	}
	if cb.owned || cb.app != nil {
		return fmt.Errorf("view already has a parent")
	}
	if subtreeContains(child, v) {
		return fmt.Errorf("attach would create a cycle in the view tree")
	}

	cb.owned = true
	v.children = append(v.children, child)
	if v.app != nil {
		v.app.attachSubtree(child, v.handle, v.app.arena.panelOf(v.handle))
		v.app.invalidateLayout()
	}
	return nil
}

// RemoveChild detaches a child from this view. The child's subtree drops
// out of the responder chain, application focus is cleared if it pointed
// into the subtree, and the former parent is re-laid out. Returns false
// if the view is not a child.
func (v *ViewBase) RemoveChild(child View) bool {
	cb := child.base()
	idx := -1
	for i, c := range v.children {
		if c.base() == cb {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	v.children = append(v.children[:idx], v.children[idx+1:]...)
	cb.owned = false
	if v.app != nil {
		v.app.detachSubtree(child)
		if pv := v.app.arena.view(v.handle); pv != nil {
			pv.Layout()
		}
		v.app.invalidateLayout()
	}
	return true
}

// subtreeContains reports whether target appears in the tree rooted at v,
// including v itself.
func subtreeContains(v View, target *ViewBase) bool {
	if v.base() == target {
		return true
	}
	for _, child := range v.Children() {
		if subtreeContains(child, target) {
			return true
		}
	}
	return false
}

// walkViews visits the tree rooted at v in pre-order: the view itself,
// then each child subtree in child-list order. This ordering is the
// single source of truth for focus traversal. Returning false from fn
// stops the walk.
func walkViews(v View, fn func(View) bool) bool {
	if !fn(v) {
		return false
	}
	for _, child := range v.Children() {
		if !walkViews(child, fn) {
			return false
		}
	}
	return true
}
