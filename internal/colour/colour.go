// Package colour provides conversions between RGBA colours and their
// hexadecimal and HSV representations.
package colour

import (
	"fmt"
	"image/color"
)

// Colour is an immutable 8-bit-per-channel ARGB colour.
// The zero value is fully transparent black.
type Colour struct {
	A uint8 `json:"a"`
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
}

// Opaque returns a fully opaque colour with the given channels.
func Opaque(r, g, b uint8) Colour {
	return Colour{A: 255, R: r, G: g, B: b}
}

// WithAlpha returns a copy of c with its alpha channel replaced.
func (c Colour) WithAlpha(a uint8) Colour {
	c.A = a
	return c
}

// RGBA implements color.Color. Channels are alpha-premultiplied and scaled
// to [0, 0xffff].
func (c Colour) RGBA() (r, g, b, a uint32) {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}.RGBA()
}

// String returns the colour in the format "rgba(r, g, b, a)".
func (c Colour) String() string {
	return fmt.Sprintf("rgba(%d, %d, %d, %d)", c.R, c.G, c.B, c.A)
}

// FromColor converts any color.Color to a Colour, undoing alpha
// premultiplication.
func FromColor(c color.Color) Colour {
	if cc, ok := c.(Colour); ok {
		return cc
	}
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Colour{A: n.A, R: n.R, G: n.G, B: n.B}
}
