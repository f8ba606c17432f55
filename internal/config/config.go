// Package config resolves runtime settings for the colourcodec CLI from
// defaults and the environment.
package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"golang.org/x/term"

	"github.com/jmylchreest/colourcodec/internal/colour"
)

// Environment variables read by WithEnvConfig.
const (
	EnvHexAlpha  = "COLOURCODEC_HEX_ALPHA"
	EnvHexMarker = "COLOURCODEC_HEX_MARKER"
	EnvPreview   = "COLOURCODEC_PREVIEW"
)

// PreviewMode controls when colour swatches are printed.
type PreviewMode string

const (
	// PreviewAuto shows swatches when stdout is a terminal.
	PreviewAuto PreviewMode = "auto"
	// PreviewAlways always shows swatches.
	PreviewAlways PreviewMode = "always"
	// PreviewNever never shows swatches.
	PreviewNever PreviewMode = "never"
)

// ParsePreviewMode validates a preview mode string.
func ParsePreviewMode(s string) (PreviewMode, error) {
	switch m := PreviewMode(strings.ToLower(strings.TrimSpace(s))); m {
	case PreviewAuto, PreviewAlways, PreviewNever:
		return m, nil
	default:
		return "", fmt.Errorf("invalid preview mode %q (valid: auto, always, never)", s)
	}
}

// Config holds resolved settings.
type Config struct {
	// Hex is the layout used when printing colours.
	Hex colour.HexOptions

	// Preview controls swatch output.
	Preview PreviewMode
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Hex:     colour.DefaultHexOptions(),
		Preview: PreviewAuto,
	}
}

// ShowPreview reports whether swatches should be written to a file
// descriptor under this configuration.
func (c Config) ShowPreview(fd uintptr) bool {
	switch c.Preview {
	case PreviewAlways:
		return true
	case PreviewNever:
		return false
	default:
		return term.IsTerminal(int(fd))
	}
}

// Builder provides a fluent interface for constructing a Config.
type Builder struct {
	config Config
	useEnv bool
	getenv func(string) string
}

// NewBuilder creates a new Builder starting from Default.
func NewBuilder() *Builder {
	return &Builder{
		config: Default(),
		getenv: os.Getenv,
	}
}

// WithConfig replaces the base configuration.
func (b *Builder) WithConfig(config Config) *Builder {
	b.config = config
	return b
}

// WithEnvConfig overlays settings from COLOURCODEC_* environment variables.
func (b *Builder) WithEnvConfig() *Builder {
	b.useEnv = true
	return b
}

// WithLookup replaces the environment lookup function (useful for testing).
func (b *Builder) WithLookup(getenv func(string) string) *Builder {
	b.getenv = getenv
	return b
}

// Build resolves the configuration. Malformed environment values are errors.
func (b *Builder) Build() (Config, error) {
	config := b.config
	if !b.useEnv {
		return config, nil
	}

	if v := b.getenv(EnvHexAlpha); v != "" {
		alpha, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvHexAlpha, err)
		}
		config.Hex.IncludeAlpha = alpha
	}

	if v := b.getenv(EnvHexMarker); v != "" {
		marker, err := strconv.ParseBool(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvHexMarker, err)
		}
		config.Hex.LeadingMarker = marker
	}

	if v := b.getenv(EnvPreview); v != "" {
		mode, err := ParsePreviewMode(v)
		if err != nil {
			return Config{}, fmt.Errorf("invalid %s: %w", EnvPreview, err)
		}
		config.Preview = mode
	}

	return config, nil
}
