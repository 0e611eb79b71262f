package retroui

// Box draws a single-line border around one content view, with an
// optional title on the top edge.
type Box struct {
	ViewBase
	title   string
	style   Style
	content View
}

// NewBox creates an untitled box.
func NewBox() *Box {
	return &Box{}
}

// SetTitle sets the title shown on the top border.
func (b *Box) SetTitle(title string) { b.title = title }

// SetStyle sets the border style.
func (b *Box) SetStyle(style Style) { b.style = style }

// SetContent replaces the view drawn inside the border.
func (b *Box) SetContent(v View) error {
	if b.content != nil {
		b.RemoveChild(b.content)
	}
	b.content = v
	if v == nil {
		return nil
	}
	return b.AddChild(v)
}

// Content returns the inner view, or nil.
func (b *Box) Content() View { return b.content }

// Layout insets the content by the border.
func (b *Box) Layout() {
	if b.content == nil {
		return
	}
	b.content.SetFrame(b.Bounds().Inset(1))
	b.content.Layout()
}

func (b *Box) Draw(p *Painter) {
	bounds := b.Bounds()
	if bounds.Width < 2 || bounds.Height < 2 {
		return
	}
	right := bounds.Width - 1
	bottom := bounds.Height - 1

	for x := 1; x < right; x++ {
		p.SetRune(x, 0, '─', b.style)
		p.SetRune(x, bottom, '─', b.style)
	}
	for y := 1; y < bottom; y++ {
		p.SetRune(0, y, '│', b.style)
		p.SetRune(right, y, '│', b.style)
	}
	p.SetRune(0, 0, '┌', b.style)
	p.SetRune(right, 0, '┐', b.style)
	p.SetRune(0, bottom, '└', b.style)
	p.SetRune(right, bottom, '┘', b.style)

	if b.title != "" && bounds.Width > 4 {
		label := " " + truncateToWidth(b.title, bounds.Width-4) + " "
		p.SetString(2, 0, label, b.style.Bold())
	}

	if b.content != nil {
		b.content.Draw(p.Child(b.content.Frame()))
	}
}
