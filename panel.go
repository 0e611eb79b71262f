package retroui

// Panel is a top-level, independently positioned surface owning one root
// view, analogous to a window. Panels live on the application's stack;
// the topmost modal panel (or the topmost panel if none is modal) is the
// only one eligible to receive focus-driven input.
//
// A panel is also a responder: events that bubble off a view tree are
// offered to the owning panel before reaching the application.
type Panel struct {
	frame      Rect
	modal      bool
	fullscreen bool
	title      string
	border     bool
	background Color
	root       View
	onKey      func(KeyEvent) bool

	app *App // set while on an application's stack
}

// NewPanel creates an undecorated, non-modal panel.
func NewPanel() *Panel {
	return &Panel{background: DefaultColor()}
}

// Frame returns the panel's rectangle in screen coordinates.
func (p *Panel) Frame() Rect { return p.frame }

// SetFrame positions the panel on screen and re-lays out its content.
func (p *Panel) SetFrame(frame Rect) {
	if frame.Width < 0 {
		frame.Width = 0
	}
	if frame.Height < 0 {
		frame.Height = 0
	}
	p.frame = frame
	p.Layout()
}

// Modal returns whether the panel is modal.
func (p *Panel) Modal() bool { return p.modal }

// SetModal marks the panel modal: while it is topmost, panels below it
// receive no focus-driven input.
func (p *Panel) SetModal(modal bool) { p.modal = modal }

// SetFullscreen makes the panel track the screen size across resizes.
func (p *Panel) SetFullscreen(fullscreen bool) { p.fullscreen = fullscreen }

// SetTitle sets the title shown in the panel's top row.
func (p *Panel) SetTitle(title string) { p.title = title }

// SetBorder toggles the one-cell border around the panel's content.
func (p *Panel) SetBorder(border bool) { p.border = border }

// SetBackground sets the fill color behind the content view.
func (p *Panel) SetBackground(c Color) { p.background = c }

// SetOnKey installs a handler for events that bubble off the panel's
// view tree without being consumed.
func (p *Panel) SetOnKey(fn func(KeyEvent) bool) { p.onKey = fn }

// Root returns the panel's root view, or nil.
func (p *Panel) Root() View { return p.root }

// SetRoot replaces the panel's root view. If the panel is on an
// application's stack, the old subtree is detached (clearing focus if it
// held the focused control) and the new one attached and laid out.
func (p *Panel) SetRoot(root View) {
	if p.app != nil && p.root != nil {
		p.app.detachSubtree(p.root)
		p.root.base().owned = false
	}
	p.root = root
	if root != nil {
		root.base().owned = true
		if p.app != nil {
			p.app.attachSubtree(root, ViewHandle{}, p)
		}
	}
	p.Layout()
	if p.app != nil {
		p.app.invalidateLayout()
	}
}

// ContentRect returns the region available to the root view, in
// panel-local coordinates, after border and title chrome.
func (p *Panel) ContentRect() Rect {
	r := NewRect(0, 0, p.frame.Width, p.frame.Height)
	if p.border {
		r = r.Inset(1)
	}
	if p.title != "" && !p.border {
		r.Y++
		r.Height--
	}
	if r.Width < 0 {
		r.Width = 0
	}
	if r.Height < 0 {
		r.Height = 0
	}
	return r
}

// Layout sizes the root view to the panel's content region and lays it
// out top-down.
func (p *Panel) Layout() {
	if p.root == nil {
		return
	}
	p.root.SetFrame(p.ContentRect())
	p.root.Layout()
}

// HandleEvent offers bubbled events to the panel's key handler, if any.
func (p *Panel) HandleEvent(ev Event) bool {
	ke, ok := ev.(KeyEvent)
	if !ok || p.onKey == nil {
		return false
	}
	return p.onKey(ke)
}

// draw paints the panel chrome and content into the buffer. All drawing
// is clipped to the panel's frame; views never paint outside their panel.
func (p *Panel) draw(buf *Buffer) {
	clip := p.frame.Intersect(buf.Rect())
	if clip.IsEmpty() {
		return
	}

	pt := &Painter{buf: buf, origin: p.frame.Origin(), clip: clip}
	local := NewRect(0, 0, p.frame.Width, p.frame.Height)

	bg := NewStyle().Background(p.background)
	pt.Fill(local, ' ', bg)

	if p.border {
		p.drawBorder(pt, local, bg)
	}
	if p.title != "" {
		p.drawTitle(pt, local, bg)
	}

	if p.root != nil {
		p.root.Draw(pt.Child(p.root.Frame()))
	}
}

func (p *Panel) drawBorder(pt *Painter, local Rect, style Style) {
	if local.Width < 2 || local.Height < 2 {
		return
	}
	right, bottom := local.Right()-1, local.Bottom()-1

	pt.SetRune(0, 0, '┌', style)
	pt.SetRune(right, 0, '┐', style)
	pt.SetRune(0, bottom, '└', style)
	pt.SetRune(right, bottom, '┘', style)
	for x := 1; x < right; x++ {
		pt.SetRune(x, 0, '─', style)
		pt.SetRune(x, bottom, '─', style)
	}
	for y := 1; y < bottom; y++ {
		pt.SetRune(0, y, '│', style)
		pt.SetRune(right, y, '│', style)
	}
}

func (p *Panel) drawTitle(pt *Painter, local Rect, style Style) {
	title := p.title
	avail := local.Width
	if p.border {
		avail -= 4 // corner cells plus one space of padding each side
	}
	if avail <= 0 {
		return
	}
	if StringWidth(title) > avail {
		title = truncateToWidth(title, avail)
	}

	x := (local.Width - StringWidth(title)) / 2
	pt.SetString(x, 0, title, style.Bold())
}

// truncateToWidth cuts a string to at most width display cells.
func truncateToWidth(s string, width int) string {
	total := 0
	for i, r := range s {
		w := RuneWidth(r)
		if total+w > width {
			return s[:i]
		}
		total += w
	}
	return s
}
