package cli

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/pflag"

	"github.com/jmylchreest/colourcodec/internal/colour"
)

// colourFlag is a pflag.Value holding a colour given by name or hex.
type colourFlag struct {
	value colour.Colour
	set   bool
}

var _ pflag.Value = (*colourFlag)(nil)

func (f *colourFlag) String() string {
	if !f.set {
		return ""
	}
	return f.value.Hex()
}

func (f *colourFlag) Set(s string) error {
	c, err := parseColourArg(s)
	if err != nil {
		return err
	}
	f.value = c
	f.set = true
	return nil
}

func (f *colourFlag) Type() string {
	return "colour"
}

// hexFlags holds the hex layout flags shared by commands that print colours.
type hexFlags struct {
	alpha  bool
	marker bool
}

// register adds --alpha and --marker to fs.
func (h *hexFlags) register(fs *pflag.FlagSet) {
	fs.BoolVar(&h.alpha, "alpha", false, "include the alpha channel (#AARRGGBB)")
	fs.BoolVar(&h.marker, "marker", true, "prefix output with '#'")
}

// options overlays explicitly set flags onto the configured defaults.
func (h *hexFlags) options(fs *pflag.FlagSet, base colour.HexOptions) colour.HexOptions {
	opts := base
	fs.Visit(func(f *pflag.Flag) {
		switch f.Name {
		case "alpha":
			opts.IncludeAlpha = h.alpha
		case "marker":
			opts.LeadingMarker = h.marker
		}
	})
	return opts
}

// parseColourArg accepts a colour name, a hex string, or "r,g,b[,a]".
func parseColourArg(s string) (colour.Colour, error) {
	if strings.Contains(s, ",") {
		return parseChannels(s)
	}
	return colour.Parse(s)
}

// parseChannels parses "r,g,b" or "r,g,b,a" with decimal channels 0-255.
func parseChannels(s string) (colour.Colour, error) {
	parts := strings.Split(s, ",")
	if len(parts) != 3 && len(parts) != 4 {
		return colour.Colour{}, fmt.Errorf("invalid channel list %q: expected r,g,b or r,g,b,a", s)
	}

	names := []string{"red", "green", "blue", "alpha"}
	ch := [4]uint8{0, 0, 0, 255}
	for i, p := range parts {
		v, err := strconv.ParseUint(strings.TrimSpace(p), 10, 8)
		if err != nil {
			return colour.Colour{}, fmt.Errorf("invalid %s channel %q: must be 0-255", names[i], p)
		}
		ch[i] = uint8(v)
	}

	return colour.Colour{R: ch[0], G: ch[1], B: ch[2], A: ch[3]}, nil
}

// parseFloatArg parses a positional numeric argument.
func parseFloatArg(name, s string) (float64, error) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return 0, fmt.Errorf("invalid %s %q: %w", name, s, err)
	}
	return v, nil
}
