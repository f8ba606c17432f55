package colour

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
)

const defaultPreviewWidth = 8

// Preview returns a 24-bit ANSI swatch for c, width cells wide.
// Callers decide whether the destination supports colour; Preview always
// emits escape sequences.
func Preview(c Colour, width int) string {
	if width <= 0 {
		width = defaultPreviewWidth
	}
	bg := color.BgRGB(int(c.R), int(c.G), int(c.B))
	bg.EnableColor()
	return bg.Sprint(strings.Repeat(" ", width))
}

// PreviewWithText returns a swatch with text centred on it, using black or
// white text depending on the brightness of c.
func PreviewWithText(c Colour, text string, width int) string {
	if width <= 0 {
		width = defaultPreviewWidth
	}

	sw := color.BgRGB(int(c.R), int(c.G), int(c.B))
	if brightness(c) > 0.5 {
		sw.AddRGB(0, 0, 0)
	} else {
		sw.AddRGB(255, 255, 255)
	}
	sw.EnableColor()

	display := text
	if len(text) > width {
		display = text[:width]
	} else if len(text) < width {
		padding := (width - len(text)) / 2
		display = strings.Repeat(" ", padding) + text + strings.Repeat(" ", width-len(text)-padding)
	}

	return sw.Sprint(display)
}

// FormatWithPreview formats a colour as its swatch followed by its hex code.
func FormatWithPreview(c Colour, opts HexOptions, width int) string {
	return fmt.Sprintf("%s %s", Preview(c, width), EncodeHex(c, opts))
}

// brightness is the Rec. 601 luma of c in [0, 1].
func brightness(c Colour) float64 {
	return (0.299*float64(c.R) + 0.587*float64(c.G) + 0.114*float64(c.B)) / 255
}
