package retroui

import "strings"

// TextView renders multi-line text. It reports a preferred size so it
// can serve as a scroll view's document.
type TextView struct {
	ViewBase
	lines []string
	style Style
}

// NewTextView creates a text view from text, split on newlines.
func NewTextView(text string) *TextView {
	t := &TextView{}
	t.SetText(text)
	return t
}

// SetText replaces the displayed text.
func (t *TextView) SetText(text string) {
	if text == "" {
		t.lines = nil
		return
	}
	t.lines = strings.Split(text, "\n")
}

// Text returns the displayed text.
func (t *TextView) Text() string {
	return strings.Join(t.lines, "\n")
}

// SetStyle sets the style applied to every line.
func (t *TextView) SetStyle(style Style) { t.style = style }

// PreferredSize reports the extent of the text: the widest line by the
// line count.
func (t *TextView) PreferredSize() Size {
	w := 0
	for _, line := range t.lines {
		if lw := StringWidth(line); lw > w {
			w = lw
		}
	}
	return NewSize(w, len(t.lines))
}

func (t *TextView) Draw(p *Painter) {
	for y, line := range t.lines {
		p.SetString(0, y, line, t.style)
	}
}
