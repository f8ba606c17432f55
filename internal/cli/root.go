// Package cli provides the command-line interface for colourcodec.
package cli

import (
	"fmt"
	"io"
	"os"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourcodec/internal/config"
	"github.com/jmylchreest/colourcodec/internal/version"
)

// app carries state shared by all subcommands of one root command.
type app struct {
	cfg     config.Config
	logger  hclog.Logger
	verbose bool
	quiet   bool
	preview string
}

// NewRootCmd builds a fresh command tree. Each call has independent flag state.
func NewRootCmd() *cobra.Command {
	a := &app{logger: hclog.NewNullLogger()}

	rootCmd := &cobra.Command{
		Use:   "colourcodec",
		Short: "Convert colours between hex, RGB and HSV",
		Long: `colourcodec converts colours between hexadecimal strings, RGB channels
and HSV (hue, saturation, value) triples.

Hex output uses two uppercase digits per channel, optionally prefixed
with '#' and the alpha channel (#AARRGGBB). Hex input accepts "#RRGGBB"
or "RRGGBB"; alpha is never read from input.

Environment:
  COLOURCODEC_HEX_ALPHA   include alpha in hex output (bool)
  COLOURCODEC_HEX_MARKER  prefix hex output with '#' (bool)
  COLOURCODEC_PREVIEW     swatch previews: auto, always, never`,
		Version:      version.Short(),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return a.setup(cmd)
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&a.verbose, "verbose", "v", false, "enable verbose output")
	rootCmd.PersistentFlags().BoolVarP(&a.quiet, "quiet", "q", false, "suppress non-error output")
	rootCmd.PersistentFlags().StringVar(&a.preview, "preview", "", "colour swatches (auto, always, never; default from "+config.EnvPreview+" or auto)")

	rootCmd.SetVersionTemplate(version.String() + "\n")

	rootCmd.AddCommand(newVersionCmd())
	rootCmd.AddCommand(newEncodeCmd(a))
	rootCmd.AddCommand(newParseCmd(a))
	rootCmd.AddCommand(newHSVCmd(a))
	rootCmd.AddCommand(newWheelCmd(a))
	rootCmd.AddCommand(newInspectCmd(a))
	rootCmd.AddCommand(newNamesCmd(a))

	return rootCmd
}

// setup resolves configuration and logging once flags are parsed.
func (a *app) setup(cmd *cobra.Command) error {
	a.logger = newLogger(cmd.ErrOrStderr(), a.verbose)

	cfg, err := config.NewBuilder().WithEnvConfig().Build()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}
	if a.preview != "" {
		mode, err := config.ParsePreviewMode(a.preview)
		if err != nil {
			return err
		}
		cfg.Preview = mode
	}
	a.cfg = cfg

	a.logger.Debug("configuration resolved",
		"include_alpha", cfg.Hex.IncludeAlpha,
		"leading_marker", cfg.Hex.LeadingMarker,
		"preview", string(cfg.Preview))
	return nil
}

// showPreview reports whether swatches should be written to out.
func (a *app) showPreview(out io.Writer) bool {
	if a.quiet {
		return false
	}
	if f, ok := out.(*os.File); ok {
		return a.cfg.ShowPreview(f.Fd())
	}
	return a.cfg.Preview == config.PreviewAlways
}

// print writes to the command's stdout unless --quiet is set.
func (a *app) print(cmd *cobra.Command, s string) {
	if a.quiet {
		return
	}
	fmt.Fprint(cmd.OutOrStdout(), s)
}

// newLogger returns a debug logger on w when verbose, and a discarding logger otherwise.
func newLogger(w io.Writer, verbose bool) hclog.Logger {
	if verbose {
		return hclog.New(&hclog.LoggerOptions{
			Name:   "colourcodec",
			Output: w,
			Level:  hclog.Debug,
		})
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "colourcodec",
		Output: io.Discard,
		Level:  hclog.Off,
	})
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Long:  `Print detailed version information including build date, commit hash, and Go version.`,
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintln(cmd.OutOrStdout(), version.String())
		},
	}
}
