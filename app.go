package retroui

// App is the process-wide root responder: it owns the panel stack, the
// cell buffer, the view arena, and the focus reference. It is an explicit
// context object, not ambient state — multiple independent Apps can run
// in one process (one per test, typically).
//
// Everything the App owns is mutated only inside a dispatch step on the
// event-loop goroutine, so none of it needs locking.
type App struct {
	term   Terminal
	buf    *Buffer
	arena  viewArena
	panels []*Panel // bottom first, top last
	focus  ViewHandle
	nav    *Navigator

	quitting     bool
	layoutDirty  bool
	needsFullOut bool
}

// NewApp creates an application drawing to the given terminal. The
// buffer is sized to the terminal's current dimensions.
func NewApp(term Terminal) *App {
	width, height := term.Size()
	a := &App{
		term:         term,
		buf:          NewBuffer(width, height),
		needsFullOut: true,
	}
	a.nav = NewNavigator(a)
	return a
}

// Buffer returns the application's cell buffer.
func (a *App) Buffer() *Buffer { return a.buf }

// Navigator returns the application's focus navigator.
func (a *App) Navigator() *Navigator { return a.nav }

// --- Panel stack ---

// PushPanel adds a panel to the top of the stack, attaching its view
// tree. If the panel becomes the focus-eligible panel, any focus held in
// a now-ineligible panel is cleared.
func (a *App) PushPanel(p *Panel) {
	p.app = a
	a.panels = append(a.panels, p)
	if p.fullscreen {
		p.SetFrame(a.buf.Rect())
	}
	if p.root != nil {
		a.attachSubtree(p.root, ViewHandle{}, p)
	}
	p.Layout()

	if f := a.Focused(); f != nil && a.arena.panelOf(f.base().handle) != a.ActivePanel() {
		a.ClearFocus()
	}
	a.invalidateLayout()
}

// PopPanel removes and returns the topmost panel, detaching its view
// tree. Focus pointing into the popped panel is cleared; it is not
// restored to the newly eligible panel — the application stays unfocused
// until navigation or an explicit SetFocus call.
func (a *App) PopPanel() *Panel {
	if len(a.panels) == 0 {
		return nil
	}
	p := a.panels[len(a.panels)-1]
	a.panels = a.panels[:len(a.panels)-1]

	if p.root != nil {
		a.detachSubtree(p.root)
	}
	p.app = nil
	a.invalidateLayout()
	return p
}

// Panels returns the panel stack, bottom first.
func (a *App) Panels() []*Panel { return a.panels }

// TopPanel returns the topmost panel, or nil.
func (a *App) TopPanel() *Panel {
	if len(a.panels) == 0 {
		return nil
	}
	return a.panels[len(a.panels)-1]
}

// ActivePanel returns the panel eligible for focus-driven input: the
// topmost modal panel, or the topmost panel if none is modal.
func (a *App) ActivePanel() *Panel {
	for i := len(a.panels) - 1; i >= 0; i-- {
		if a.panels[i].modal {
			return a.panels[i]
		}
	}
	return a.TopPanel()
}

// --- View tree attachment ---

// attachSubtree registers a view and its descendants in the arena.
func (a *App) attachSubtree(v View, parent ViewHandle, panel *Panel) {
	vb := v.base()
	vb.app = a
	vb.handle = a.arena.attach(v, parent, panel)
	for _, child := range v.Children() {
		a.attachSubtree(child, vb.handle, panel)
	}
}

// detachSubtree releases a view and its descendants from the arena,
// clearing focus first if the focused control lives in the subtree.
// Clearing happens before release so the focus reference is never stale,
// even transiently.
func (a *App) detachSubtree(v View) {
	if f := a.arena.view(a.focus); f != nil && subtreeContains(v, f.base()) {
		a.focus = ViewHandle{}
	}
	a.releaseSubtree(v)
}

func (a *App) releaseSubtree(v View) {
	vb := v.base()
	a.arena.release(vb.handle)
	vb.handle = ViewHandle{}
	vb.app = nil
	for _, child := range v.Children() {
		a.releaseSubtree(child)
	}
}

// invalidateLayout schedules a full re-layout and repaint before the
// next frame.
func (a *App) invalidateLayout() {
	a.layoutDirty = true
}

// --- Focus ---

// Focused returns the currently focused control, or nil. A control whose
// subtree has been detached resolves to nil automatically — the handle
// went stale with the detach.
func (a *App) Focused() Control {
	v := a.arena.view(a.focus)
	if v == nil {
		return nil
	}
	c, ok := v.(Control)
	if !ok {
		return nil
	}
	return c
}

// SetFocus moves focus to the given control. The move is rejected
// (returning false, focus unchanged) unless the control is focusable and
// attached to the focus-eligible panel's tree.
func (a *App) SetFocus(c Control) bool {
	if c == nil || !c.Focusable() {
		return false
	}
	h := c.base().handle
	if a.arena.view(h) == nil {
		return false
	}
	if a.arena.panelOf(h) != a.ActivePanel() {
		return false
	}

	if prev := a.Focused(); prev != nil {
		if prev.base() == c.base() {
			return true
		}
		prev.Blur()
	}
	a.focus = h
	c.Focus()
	return true
}

// ClearFocus unsets focus, notifying the focused control if one exists.
func (a *App) ClearFocus() {
	if f := a.Focused(); f != nil {
		f.Blur()
	}
	a.focus = ViewHandle{}
}

// FocusNext moves focus to the next control in traversal order.
func (a *App) FocusNext() {
	a.moveFocus(a.nav.Next(a.Focused()))
}

// FocusPrev moves focus to the previous control in traversal order.
func (a *App) FocusPrev() {
	a.moveFocus(a.nav.Prev(a.Focused()))
}

func (a *App) moveFocus(next Control) {
	if next == nil {
		a.ClearFocus()
		return
	}
	a.SetFocus(next)
}

// --- Dispatch ---

// Dispatch routes one event through the responder chain and reports
// whether any responder consumed it. The initial responder depends on
// the event:
//
//   - Ctrl-modified keys start at the App itself; they are reserved for
//     navigation and never offered to the focused control first.
//   - Plain keys start at the focused control when one exists, else at
//     the App.
//   - Resize and quit events start at the App.
//
// An event no responder consumes is simply unhandled, not an error.
func (a *App) Dispatch(ev Event) bool {
	ke, isKey := ev.(KeyEvent)
	if !isKey || ke.Mod.Has(ModCtrl) {
		return a.HandleEvent(ev)
	}

	focused := a.Focused()
	if focused == nil || a.arena.panelOf(focused.base().handle) != a.ActivePanel() {
		return a.HandleEvent(ev)
	}

	if focused.HandleKey(ke) {
		return true
	}
	return a.bubbleFrom(focused, ev)
}

// bubbleFrom offers the event along the chain above the given view:
// parent views, then the owning panel, then the App. The hop count is
// bounded by the arena size, so dispatch terminates even if the acyclic
// invariant were somehow violated.
func (a *App) bubbleFrom(v View, ev Event) bool {
	h := v.base().handle
	for hops := a.arena.size(); hops > 0; hops-- {
		parent := a.arena.parent(h)
		pv := a.arena.view(parent)
		if pv == nil {
			if panel := a.arena.panelOf(h); panel != nil && panel.HandleEvent(ev) {
				return true
			}
			break
		}
		if pv.HandleEvent(ev) {
			return true
		}
		h = parent
	}
	return a.HandleEvent(ev)
}

// HandleEvent is the App acting as the last responder: resize and quit
// handling plus the Ctrl-key navigation policy. Ctrl+Tab / Ctrl+N move
// focus forward, Ctrl+Shift+Tab (Backtab) / Ctrl+P move it backward, and
// Ctrl+Q or Ctrl+C request quit. Anything else falls off the chain.
func (a *App) HandleEvent(ev Event) bool {
	switch ev := ev.(type) {
	case ResizeEvent:
		a.resize(ev.Width, ev.Height)
		return true
	case QuitEvent:
		a.quitting = true
		return true
	case KeyEvent:
		return a.handleKey(ev)
	}
	return false
}

func (a *App) handleKey(ev KeyEvent) bool {
	if !ev.Mod.Has(ModCtrl) {
		return false
	}
	switch {
	case ev.Is(KeyTab, ModCtrl), ev.IsRune() && ev.Rune == 'n':
		a.FocusNext()
		return true
	// Backtab implies Shift on most terminals, so match it by Ctrl
	// presence rather than exact modifiers.
	case ev.Key == KeyBacktab && ev.Mod.Has(ModCtrl), ev.Is(KeyTab, ModCtrl, ModShift), ev.IsRune() && ev.Rune == 'p':
		a.FocusPrev()
		return true
	case ev.IsRune() && (ev.Rune == 'q' || ev.Rune == 'c'):
		a.quitting = true
		return true
	}
	return false
}

// resize reallocates the buffer and re-lays out every panel before the
// next paint. Degenerate sizes are fine; painting into them is a no-op.
func (a *App) resize(width, height int) {
	a.buf.Resize(width, height)
	for _, p := range a.panels {
		if p.fullscreen {
			p.SetFrame(a.buf.Rect())
		} else {
			p.Layout()
		}
	}
	a.layoutDirty = false
	a.needsFullOut = true
}

// --- Stepping ---

// Step processes one event: dispatch, then paint, diff, and commit
// exactly once. There is never a partial paint mid-dispatch. Returns
// false once a quit has been consumed.
func (a *App) Step(ev Event) bool {
	a.Dispatch(ev)
	a.paint()
	return !a.quitting
}

// Quit requests that the event loop stop after the current step.
func (a *App) Quit() {
	a.quitting = true
}

// Quitting reports whether a quit has been requested.
func (a *App) Quitting() bool {
	return a.quitting
}

// paint redraws the panel stack bottom-to-top into the back buffer and
// flushes the diff to the terminal.
func (a *App) paint() {
	if a.layoutDirty {
		for _, p := range a.panels {
			p.Layout()
		}
		a.layoutDirty = false
	}

	a.buf.Clear()
	for _, p := range a.panels {
		p.draw(a.buf)
	}

	if a.needsFullOut {
		RenderFull(a.term, a.buf)
		a.needsFullOut = false
		return
	}
	Render(a.term, a.buf)
}
