package retroui

// ClipView shows a window onto a single document view. The document is
// positioned by the scroll offset and everything it draws is clipped to
// the ClipView's own frame — the one place in the tree where clipping is
// not opt-in.
type ClipView struct {
	ViewBase
	document View
	scroll   Point
}

// NewClipView creates a ClipView with no document.
func NewClipView() *ClipView {
	return &ClipView{}
}

// Document returns the document view, or nil.
func (c *ClipView) Document() View { return c.document }

// SetDocument replaces the document view.
func (c *ClipView) SetDocument(doc View) error {
	if c.document != nil {
		c.RemoveChild(c.document)
	}
	c.document = doc
	if doc == nil {
		return nil
	}
	return c.AddChild(doc)
}

// Scroll returns the current scroll offset into the document.
func (c *ClipView) Scroll() Point { return c.scroll }

// SetScroll moves the viewport. The offset is clamped so the viewport
// never scrolls past the document's edges (and snaps to zero when the
// document fits entirely).
func (c *ClipView) SetScroll(offset Point) {
	doc := c.DocumentSize()
	offset.X = clamp(offset.X, 0, max(0, doc.Width-c.Frame().Width))
	offset.Y = clamp(offset.Y, 0, max(0, doc.Height-c.Frame().Height))
	c.scroll = offset
	c.Layout()
}

// DocumentSize returns the document's content size: its preferred size
// when it reports one, otherwise its current frame size.
func (c *ClipView) DocumentSize() Size {
	if c.document == nil {
		return Size{}
	}
	if s, ok := c.document.(Sizer); ok {
		return s.PreferredSize()
	}
	return c.document.Frame().Size()
}

// Layout positions the document so the scrolled-to region lands at the
// viewport origin.
func (c *ClipView) Layout() {
	if c.document == nil {
		return
	}
	doc := c.DocumentSize()
	c.document.SetFrame(NewRect(-c.scroll.X, -c.scroll.Y, doc.Width, doc.Height))
	c.document.Layout()
}

// Draw paints the document clipped to the viewport.
func (c *ClipView) Draw(p *Painter) {
	if c.document == nil {
		return
	}
	cp := p.Clipped(c.Bounds())
	c.document.Draw(cp.Child(c.document.Frame()))
}
