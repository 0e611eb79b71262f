package retroui

// ViewHandle is a stable reference to an attached view. Handles are
// generational: detaching a view bumps its slot's generation, so a handle
// held across a detach resolves to nil instead of a stale view. The zero
// handle never resolves.
type ViewHandle struct {
	index uint32
	gen   uint32
}

// IsZero returns true for the zero handle, which refers to no view.
func (h ViewHandle) IsZero() bool {
	return h.gen == 0
}

// viewSlot is one arena entry: the view plus its chain back-references.
type viewSlot struct {
	view   View
	parent ViewHandle // zero for a panel's root view
	panel  *Panel     // owning panel for every view in the tree
	gen    uint32
	live   bool
}

// viewArena owns the handle table for every view attached to an
// application. It is not safe for concurrent use; all access happens on
// the dispatch goroutine.
type viewArena struct {
	slots []viewSlot
	free  []uint32
}

// attach registers a view and returns its handle.
func (a *viewArena) attach(v View, parent ViewHandle, panel *Panel) ViewHandle {
	var index uint32
	if n := len(a.free); n > 0 {
		index = a.free[n-1]
		a.free = a.free[:n-1]
	} else {
		a.slots = append(a.slots, viewSlot{})
		index = uint32(len(a.slots) - 1)
	}

	slot := &a.slots[index]
	slot.view = v
	slot.parent = parent
	slot.panel = panel
	slot.gen++
	slot.live = true
	return ViewHandle{index: index, gen: slot.gen}
}

// release invalidates a handle. The slot's generation is bumped so any
// copies of the handle stop resolving.
func (a *viewArena) release(h ViewHandle) {
	slot := a.slot(h)
	if slot == nil {
		return
	}
	slot.view = nil
	slot.parent = ViewHandle{}
	slot.panel = nil
	slot.gen++
	slot.live = false
	a.free = append(a.free, h.index)
}

// view resolves a handle to its view, or nil if the handle is stale.
func (a *viewArena) view(h ViewHandle) View {
	slot := a.slot(h)
	if slot == nil {
		return nil
	}
	return slot.view
}

// parent returns the handle of the view's parent, or the zero handle for
// root views and stale handles.
func (a *viewArena) parent(h ViewHandle) ViewHandle {
	slot := a.slot(h)
	if slot == nil {
		return ViewHandle{}
	}
	return slot.parent
}

// panelOf returns the panel owning the view, or nil for stale handles.
func (a *viewArena) panelOf(h ViewHandle) *Panel {
	slot := a.slot(h)
	if slot == nil {
		return nil
	}
	return slot.panel
}

// size returns the number of slots ever allocated. Used to bound chain
// traversal so dispatch terminates even if an invariant is violated.
func (a *viewArena) size() int {
	return len(a.slots)
}

func (a *viewArena) slot(h ViewHandle) *viewSlot {
	if h.IsZero() || int(h.index) >= len(a.slots) {
		return nil
	}
	slot := &a.slots[h.index]
	if !slot.live || slot.gen != h.gen {
		return nil
	}
	return slot
}
