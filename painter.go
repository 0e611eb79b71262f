package retroui

// Painter is the drawing surface handed to View.Draw. It translates the
// view's local coordinates to buffer coordinates and enforces the clip
// region: every write outside the clip is silently dropped, so no view
// can paint outside the intersection of its enclosing clip regions.
type Painter struct {
	buf    *Buffer
	origin Point // buffer-space origin of the local coordinate space
	clip   Rect  // buffer-space clip region
}

// NewPainter creates a painter drawing into buf with the given clip
// region, with local coordinates equal to buffer coordinates.
func NewPainter(buf *Buffer, clip Rect) *Painter {
	return &Painter{buf: buf, clip: clip.Intersect(buf.Rect())}
}

// Child returns a painter translated into a child's coordinate space.
// The clip region is unchanged: children may draw outside their frames
// (overflow is visible unless an enclosing view clips).
func (p *Painter) Child(frame Rect) *Painter {
	return &Painter{
		buf:    p.buf,
		origin: Point{X: p.origin.X + frame.X, Y: p.origin.Y + frame.Y},
		clip:   p.clip,
	}
}

// Clipped returns a painter translated into a child's coordinate space
// with the clip region narrowed to the child's frame. Used by clipping
// containers (ClipView, ScrollView, panels).
func (p *Painter) Clipped(frame Rect) *Painter {
	global := frame.Translate(p.origin.X, p.origin.Y)
	return &Painter{
		buf:    p.buf,
		origin: global.Origin(),
		clip:   p.clip.Intersect(global),
	}
}

// Clip returns the clip region in local coordinates.
func (p *Painter) Clip() Rect {
	return p.clip.Translate(-p.origin.X, -p.origin.Y)
}

// SetRune draws a rune at local (x, y). Wide runes are dropped when their
// continuation cell would fall outside the clip region, so a glyph is
// never half-drawn across a clip edge.
func (p *Painter) SetRune(x, y int, r rune, style Style) {
	gx, gy := p.origin.X+x, p.origin.Y+y
	if !p.clip.Contains(gx, gy) {
		return
	}
	if RuneWidth(r) == 2 && !p.clip.Contains(gx+1, gy) {
		return
	}
	p.buf.SetRune(gx, gy, r, style)
}

// SetString draws a string starting at local (x, y), clipping each rune
// individually. Returns the display width consumed.
func (p *Painter) SetString(x, y int, s string, style Style) int {
	total := 0
	curX := x
	for _, r := range s {
		p.SetRune(curX, y, r, style)
		w := RuneWidth(r)
		curX += w
		total += w
	}
	return total
}

// Fill fills a local-space rectangle with the given rune and style.
func (p *Painter) Fill(rect Rect, r rune, style Style) {
	global := rect.Translate(p.origin.X, p.origin.Y).Intersect(p.clip)
	p.buf.Fill(global, r, style)
}

// FillGradient fills a local-space rectangle with a gradient background.
// The gradient spans the requested rectangle, not the clipped remainder,
// so colors stay stable while a region is partially scrolled out of view.
func (p *Painter) FillGradient(rect Rect, r rune, g Gradient, base Style) {
	for y := rect.Y; y < rect.Bottom(); y++ {
		for x := rect.X; x < rect.Right(); x++ {
			var t float64
			if g.Direction == GradientVertical {
				t = gradientT(y-rect.Y, rect.Height)
			} else {
				t = gradientT(x-rect.X, rect.Width)
			}
			style := base
			style.Bg = g.At(t)
			p.SetRune(x, y, r, style)
		}
	}
}
