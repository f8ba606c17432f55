package colour

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

// hexMarker is the optional prefix of a hex colour string.
const hexMarker = "#"

// ErrInvalidHex is matched by every FormatError via errors.Is.
var ErrInvalidHex = errors.New("invalid hex colour")

// FormatError reports a hex string that ParseHex could not read.
type FormatError struct {
	// Input is the string as passed to ParseHex.
	Input string
	// Field is the channel that failed ("red", "green", "blue"), or empty
	// when the input was too short.
	Field string
	// Offset is the position of the failing field after the marker is removed.
	Offset int
	// Err is the underlying conversion error, if any.
	Err error
}

func (e *FormatError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("invalid hex colour %q: expected at least 6 hex digits", e.Input)
	}
	return fmt.Sprintf("invalid hex colour %q: bad %s component at offset %d", e.Input, e.Field, e.Offset)
}

// Unwrap returns the underlying conversion error.
func (e *FormatError) Unwrap() error {
	return e.Err
}

// Is reports whether target is ErrInvalidHex.
func (e *FormatError) Is(target error) bool {
	return target == ErrInvalidHex
}

// HexOptions controls the layout produced by EncodeHex.
type HexOptions struct {
	// IncludeAlpha emits the alpha channel before red (#AARRGGBB).
	// Default: false.
	IncludeAlpha bool
	// LeadingMarker prefixes the output with '#'.
	// Default: true.
	LeadingMarker bool
}

// DefaultHexOptions returns the options used by Colour.Hex: no alpha,
// leading '#'.
func DefaultHexOptions() HexOptions {
	return HexOptions{IncludeAlpha: false, LeadingMarker: true}
}

// Len returns the length of every string EncodeHex produces with these options.
func (o HexOptions) Len() int {
	n := 6
	if o.LeadingMarker {
		n++
	}
	if o.IncludeAlpha {
		n += 2
	}
	return n
}

// EncodeHex formats c as uppercase hexadecimal, two digits per channel.
func EncodeHex(c Colour, opts HexOptions) string {
	var sb strings.Builder
	sb.Grow(opts.Len())
	if opts.LeadingMarker {
		sb.WriteString(hexMarker)
	}
	if opts.IncludeAlpha {
		fmt.Fprintf(&sb, "%02X", c.A)
	}
	fmt.Fprintf(&sb, "%02X%02X%02X", c.R, c.G, c.B)
	return sb.String()
}

// Hex returns the colour as "#RRGGBB".
func (c Colour) Hex() string {
	return EncodeHex(c, DefaultHexOptions())
}

// ParseHex parses "#RRGGBB" or "RRGGBB" into an opaque Colour.
// Only the first six digits after the marker are read: any alpha pair or
// trailing text is ignored and the result always has A = 255.
func ParseHex(input string) (Colour, error) {
	hex := strings.TrimPrefix(input, hexMarker)
	if len(hex) < 6 {
		return Colour{}, &FormatError{Input: input}
	}

	fields := [3]string{"red", "green", "blue"}
	var ch [3]uint8
	for i, name := range fields {
		off := i * 2
		v, err := parseHexByte(hex[off : off+2])
		if err != nil {
			return Colour{}, &FormatError{Input: input, Field: name, Offset: off, Err: err}
		}
		ch[i] = v
	}

	return Opaque(ch[0], ch[1], ch[2]), nil
}

// MustParseHex is like ParseHex but panics on malformed input.
func MustParseHex(input string) Colour {
	c, err := ParseHex(input)
	if err != nil {
		panic(err)
	}
	return c
}

// parseHexByte converts a two-character hex string to a byte.
// With an explicit base strconv rejects signs, prefixes and underscores.
func parseHexByte(s string) (uint8, error) {
	v, err := strconv.ParseUint(s, 16, 8)
	if err != nil {
		return 0, err
	}
	return uint8(v), nil
}
