package core

// RGBA is a 32-bit color with straight (non-premultiplied) alpha.
// Terminal backends that cannot blend fold the alpha into the channel
// values at render time.
type RGBA struct {
	R, G, B, A uint8
}

// Predefined colors for game elements.
var (
	ColorBlack  = RGBA{0, 0, 0, 255}
	ColorWhite  = RGBA{255, 255, 255, 255}
	ColorRed    = RGBA{255, 0, 0, 255}
	ColorYellow = RGBA{255, 255, 0, 255}
)

// WithAlpha returns a copy of the color with the given alpha.
func (c RGBA) WithAlpha(a uint8) RGBA {
	c.A = a
	return c
}

// Premultiplied returns the color blended toward black by its alpha,
// with alpha restored to opaque. Used by renderers without real
// compositing.
func (c RGBA) Premultiplied() RGBA {
	a := uint16(c.A)
	return RGBA{
		R: uint8(uint16(c.R) * a / 255),
		G: uint8(uint16(c.G) * a / 255),
		B: uint8(uint16(c.B) * a / 255),
		A: 255,
	}
}
