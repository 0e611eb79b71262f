package retroui

// FillView paints its frame with a single rune, optionally shaded by a
// gradient. It is the cheapest way to give a region a solid background.
type FillView struct {
	ViewBase
	fill     rune
	style    Style
	gradient *Gradient
}

// NewFillView creates a view that fills itself with r in the given
// style.
func NewFillView(r rune, style Style) *FillView {
	return &FillView{fill: r, style: style}
}

// SetRune changes the fill rune.
func (f *FillView) SetRune(r rune) { f.fill = r }

// SetStyle changes the fill style.
func (f *FillView) SetStyle(style Style) { f.style = style }

// SetGradient shades the fill with a gradient instead of the style's
// flat background. Pass nil to return to a flat fill.
func (f *FillView) SetGradient(g *Gradient) { f.gradient = g }

func (f *FillView) Draw(p *Painter) {
	if f.gradient != nil {
		p.FillGradient(f.Bounds(), f.fill, *f.gradient, f.style)
		return
	}
	p.Fill(f.Bounds(), f.fill, f.style)
}
