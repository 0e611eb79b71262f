package retroui

// EmptyView is a placeholder that renders the word "empty" centered in
// its frame. It is useful while sketching layouts.
type EmptyView struct {
	ViewBase
}

// NewEmptyView creates a placeholder view.
func NewEmptyView() *EmptyView {
	return &EmptyView{}
}

func (e *EmptyView) Draw(p *Painter) {
	const label = "empty"
	bounds := e.Bounds()
	x := (bounds.Width - StringWidth(label)) / 2
	y := bounds.Height / 2
	p.SetString(x, y, label, NewStyle().Dim())
}
