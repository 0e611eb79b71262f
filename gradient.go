package retroui

import "github.com/lucasb-eyer/go-colorful"

// GradientDirection controls how a gradient is applied across a region.
type GradientDirection uint8

const (
	// GradientHorizontal runs left to right.
	GradientHorizontal GradientDirection = iota
	// GradientVertical runs top to bottom.
	GradientVertical
)

// Gradient interpolates between two RGB colors. Interpolation happens in
// a perceptual color space so midpoints don't wash out to grey.
type Gradient struct {
	From, To  Color
	Direction GradientDirection
}

// NewGradient creates a horizontal gradient between two colors.
// Default-colored endpoints are treated as black.
func NewGradient(from, to Color) Gradient {
	return Gradient{From: from, To: to, Direction: GradientHorizontal}
}

// Vertical returns a copy of the gradient running top to bottom.
func (g Gradient) Vertical() Gradient {
	g.Direction = GradientVertical
	return g
}

// At returns the interpolated color at t in [0, 1].
func (g Gradient) At(t float64) Color {
	t = clampFloat(t, 0, 1)
	from := toColorful(g.From)
	to := toColorful(g.To)
	r, gr, b := from.BlendLuv(to, t).Clamped().RGB255()
	return RGBColor(r, gr, b)
}

// toColorful converts a Color to a colorful.Color for interpolation.
// ANSI palette entries map through the standard xterm palette; the
// default color maps to black.
func toColorful(c Color) colorful.Color {
	var r, g, b uint8
	switch c.Type() {
	case ColorRGB:
		r, g, b = c.RGB()
	case ColorANSI:
		r, g, b = ansiToRGB(c.ANSI())
	}
	return colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
}

// ansiToRGB converts an ANSI 256 palette index to RGB using the standard
// xterm palette layout (16 base colors, 6x6x6 cube, 24 greys).
func ansiToRGB(index uint8) (r, g, b uint8) {
	switch {
	case index < 16:
		base := [16][3]uint8{
			{0, 0, 0}, {205, 0, 0}, {0, 205, 0}, {205, 205, 0},
			{0, 0, 238}, {205, 0, 205}, {0, 205, 205}, {229, 229, 229},
			{127, 127, 127}, {255, 0, 0}, {0, 255, 0}, {255, 255, 0},
			{92, 92, 255}, {255, 0, 255}, {0, 255, 255}, {255, 255, 255},
		}
		return base[index][0], base[index][1], base[index][2]
	case index < 232:
		i := index - 16
		steps := [6]uint8{0, 95, 135, 175, 215, 255}
		return steps[i/36], steps[(i/6)%6], steps[i%6]
	default:
		grey := 8 + 10*(index-232)
		return grey, grey, grey
	}
}
