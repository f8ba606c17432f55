package colour

import (
	"strings"

	"golang.org/x/image/colornames"
)

// Lookup returns the SVG 1.1 named colour with the given name.
// Matching ignores case and surrounding whitespace.
func Lookup(name string) (Colour, bool) {
	c, ok := colornames.Map[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Colour{}, false
	}
	return FromColor(c), true
}

// Names returns the known colour names in alphabetical order.
func Names() []string {
	names := make([]string, len(colornames.Names))
	copy(names, colornames.Names)
	return names
}

// Parse accepts either a named colour ("cornflowerblue") or a hex string
// understood by ParseHex. Hex parse failures are returned unchanged.
func Parse(input string) (Colour, error) {
	if c, ok := Lookup(input); ok {
		return c, nil
	}
	return ParseHex(strings.TrimSpace(input))
}
