package retroui

// ScrollView composes a ClipView with a scroller on each axis. It is a
// focusable control: arrow keys scroll by a line or two columns, PageUp
// and PageDown by a viewport height, Home and End to the extremes. As a
// member of the responder chain it also consumes those keys when they
// bubble up from a focused descendant.
type ScrollView struct {
	ControlBase
	clip     *ClipView
	vbar     *Scroller
	hbar     *Scroller
	autohide bool
	hideVBar bool
	hideHBar bool
}

// NewScrollView creates an empty scroll view.
func NewScrollView() *ScrollView {
	sv := &ScrollView{
		clip: NewClipView(),
		vbar: NewScroller(),
		hbar: NewScroller(),
	}
	sv.hbar.SetVertical(false)
	// Children can't cycle here; construction order makes attach safe.
	_ = sv.AddChild(sv.clip)
	_ = sv.AddChild(sv.vbar)
	_ = sv.AddChild(sv.hbar)
	return sv
}

// SetDocument sets the scrollable document view.
func (sv *ScrollView) SetDocument(doc View) error {
	return sv.clip.SetDocument(doc)
}

// Document returns the document view, or nil.
func (sv *ScrollView) Document() View { return sv.clip.Document() }

// Viewport returns the clip view's frame: the visible region in the
// scroll view's coordinate space.
func (sv *ScrollView) Viewport() Rect { return sv.clip.Frame() }

// Scroll returns the current scroll offset.
func (sv *ScrollView) Scroll() Point { return sv.clip.Scroll() }

// SetAutohideScrollers hides scrollers whose axis fits entirely.
func (sv *ScrollView) SetAutohideScrollers(autohide bool) {
	sv.autohide = autohide
	sv.Layout()
}

// Layout carves the frame into viewport and scroller strips, clamps any
// overscroll left over from a resize, and refreshes the scroller
// indicators.
func (sv *ScrollView) Layout() {
	bounds := sv.Bounds()
	doc := sv.clip.DocumentSize()

	sv.hideVBar = sv.autohide && doc.Height <= bounds.Height
	sv.hideHBar = sv.autohide && doc.Width <= bounds.Width

	viewport := bounds
	if !sv.hideVBar {
		viewport.Width--
	}
	if !sv.hideHBar {
		viewport.Height--
	}
	if viewport.Width < 0 {
		viewport.Width = 0
	}
	if viewport.Height < 0 {
		viewport.Height = 0
	}

	sv.clip.SetFrame(viewport)
	sv.vbar.SetFrame(NewRect(viewport.Right(), 0, 1, viewport.Height))
	sv.hbar.SetFrame(NewRect(0, viewport.Bottom(), viewport.Width, 1))

	// Re-clamp: growing the viewport must never leave a gap past the
	// document's far edge.
	sv.clip.SetScroll(sv.clip.Scroll())
	sv.updateIndicators()
}

func (sv *ScrollView) updateIndicators() {
	doc := sv.clip.DocumentSize()
	viewport := sv.clip.Frame().Size()
	scroll := sv.clip.Scroll()

	sv.vbar.SetVisibleFraction(fraction(viewport.Height, doc.Height))
	sv.hbar.SetVisibleFraction(fraction(viewport.Width, doc.Width))
	sv.vbar.SetPosition(travel(scroll.Y, doc.Height-viewport.Height))
	sv.hbar.SetPosition(travel(scroll.X, doc.Width-viewport.Width))
}

func fraction(visible, total int) float64 {
	if total <= 0 || visible >= total {
		return 1
	}
	return float64(visible) / float64(total)
}

func travel(offset, room int) float64 {
	if room <= 0 {
		return 0
	}
	return float64(offset) / float64(room)
}

// ScrollBy moves the viewport by (dx, dy) cells.
func (sv *ScrollView) ScrollBy(dx, dy int) {
	s := sv.clip.Scroll()
	sv.ScrollTo(Point{X: s.X + dx, Y: s.Y + dy})
}

// ScrollTo moves the viewport to an absolute offset, clamped to the
// document bounds.
func (sv *ScrollView) ScrollTo(offset Point) {
	sv.clip.SetScroll(offset)
	sv.updateIndicators()
}

// HandleKey scrolls in response to plain navigation keys.
func (sv *ScrollView) HandleKey(ev KeyEvent) bool {
	if ev.Mod != ModNone {
		return false
	}
	page := max(1, sv.clip.Frame().Height-2)
	switch ev.Key {
	case KeyDown:
		sv.ScrollBy(0, 1)
	case KeyUp:
		sv.ScrollBy(0, -1)
	case KeyRight:
		sv.ScrollBy(2, 0)
	case KeyLeft:
		sv.ScrollBy(-2, 0)
	case KeyPageDown:
		sv.ScrollBy(0, page)
	case KeyPageUp:
		sv.ScrollBy(0, -page)
	case KeyHome:
		sv.ScrollTo(Point{X: sv.clip.Scroll().X, Y: 0})
	case KeyEnd:
		sv.ScrollTo(Point{X: sv.clip.Scroll().X, Y: sv.clip.DocumentSize().Height})
	default:
		return false
	}
	return true
}

// HandleEvent consumes scroll keys bubbling up from descendants.
func (sv *ScrollView) HandleEvent(ev Event) bool {
	if ke, ok := ev.(KeyEvent); ok {
		return sv.HandleKey(ke)
	}
	return false
}

// Draw paints the viewport and whichever scrollers are visible.
func (sv *ScrollView) Draw(p *Painter) {
	sv.clip.Draw(p.Child(sv.clip.Frame()))
	if !sv.hideVBar {
		sv.vbar.Draw(p.Child(sv.vbar.Frame()))
	}
	if !sv.hideHBar {
		sv.hbar.Draw(p.Child(sv.hbar.Frame()))
	}
}
