package colour

import (
	"math"
)

// NormaliseHue reduces any hue angle into [0, 360).
// NaN and infinite hues have no meaningful angle and normalise to 0.
func NormaliseHue(h float64) float64 {
	if math.IsNaN(h) || math.IsInf(h, 0) {
		return 0
	}
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 rounds up to exactly 360 in float64.
	if h >= 360 {
		h = 0
	}
	return h
}

// Clamp constrains v to the closed range [lo, hi].
func Clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// FromHSV creates an opaque colour from hue (degrees, any real value),
// saturation (0-1) and value (0-1). Out of range saturation and value are
// not rejected; the resulting channels are clamped to [0, 255].
func FromHSV(hue, saturation, value float64) Colour {
	h := NormaliseHue(hue)

	var r, g, b float64
	switch {
	case value <= 0:
		// Black.
	case saturation <= 0:
		// Achromatic (grey).
		r, g, b = value, value, value
	default:
		r, g, b = sectorRGB(h, saturation, value)
	}

	return Opaque(channel(r), channel(g), channel(b))
}

// sectorRGB applies the six-sector HSV formula. Sectors 6 and -1 catch
// floating point overshoot at the ends of the hue circle.
func sectorRGB(h, s, v float64) (r, g, b float64) {
	hf := h / 60
	i := int(math.Floor(hf))
	f := hf - float64(i)

	pv := v * (1 - s)
	qv := v * (1 - s*f)
	tv := v * (1 - s*(1-f))

	switch i {
	case 0, 6:
		// Red is dominant.
		return v, tv, pv
	case 1:
		// Green is dominant.
		return qv, v, pv
	case 2:
		return pv, v, tv
	case 3:
		// Blue is dominant.
		return pv, qv, v
	case 4:
		return tv, pv, v
	case 5, -1:
		// Red is dominant.
		return v, pv, qv
	default:
		return v, v, v
	}
}

// channel scales a unit intensity to a byte, truncating toward zero.
func channel(x float64) uint8 {
	x *= 255
	if math.IsNaN(x) {
		return 0
	}
	// Bound before the int conversion, which is undefined for huge floats.
	if x > math.MaxInt32 {
		return 255
	}
	if x < math.MinInt32 {
		return 0
	}
	return uint8(Clamp(int(x), 0, 255))
}

// HSV returns the hue (0-360), saturation (0-1) and value (0-1) of c.
// Alpha is ignored.
func (c Colour) HSV() (h, s, v float64) {
	r := float64(c.R) / 255
	g := float64(c.G) / 255
	b := float64(c.B) / 255

	maxVal := math.Max(r, math.Max(g, b))
	minVal := math.Min(r, math.Min(g, b))
	delta := maxVal - minVal

	v = maxVal
	if maxVal > 0 {
		s = delta / maxVal
	}
	if delta == 0 {
		return 0, s, v
	}

	switch maxVal {
	case r:
		h = (g - b) / delta
		if g < b {
			h += 6
		}
	case g:
		h = (b-r)/delta + 2
	case b:
		h = (r-g)/delta + 4
	}

	return NormaliseHue(h * 60), s, v
}

// HueWheel returns steps colours with evenly spaced hues starting at offset.
func HueWheel(steps int, saturation, value, offset float64) []Colour {
	if steps <= 0 {
		return []Colour{}
	}
	colours := make([]Colour, steps)
	step := 360 / float64(steps)
	for i := range colours {
		colours[i] = FromHSV(offset+float64(i)*step, saturation, value)
	}
	return colours
}
