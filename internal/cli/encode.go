package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourcodec/internal/colour"
)

func newEncodeCmd(a *app) *cobra.Command {
	var (
		hf        hexFlags
		withAlpha int
	)

	cmd := &cobra.Command{
		Use:   "encode <colour>...",
		Short: "Encode colours as hex strings",
		Long: `Encode one or more colours as uppercase hexadecimal strings.

A colour may be a hex string (#RRGGBB), an SVG colour name, or a decimal
channel list "r,g,b" or "r,g,b,a".

Examples:
  # Named colour to hex
  colourcodec encode cornflowerblue

  # Channels with alpha, printed as #AARRGGBB
  colourcodec encode --alpha 255,128,0,64

  # Hex without the leading '#'
  colourcodec encode --marker=false "#336699"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.logger.Named("encode")
			opts := hf.options(cmd.Flags(), a.cfg.Hex)
			preview := a.showPreview(cmd.OutOrStdout())

			for _, arg := range args {
				c, err := parseColourArg(arg)
				if err != nil {
					return err
				}
				if cmd.Flags().Changed("with-alpha") {
					if withAlpha < 0 || withAlpha > 255 {
						return fmt.Errorf("invalid --with-alpha %d: must be 0-255", withAlpha)
					}
					c = c.WithAlpha(uint8(withAlpha))
				}

				log.Debug("encoding colour", "input", arg, "colour", c.String(), "include_alpha", opts.IncludeAlpha)

				if preview {
					a.print(cmd, colour.FormatWithPreview(c, opts, 4)+"\n")
				} else {
					a.print(cmd, colour.EncodeHex(c, opts)+"\n")
				}
			}
			return nil
		},
	}

	hf.register(cmd.Flags())
	cmd.Flags().IntVar(&withAlpha, "with-alpha", 255, "override the alpha channel (0-255)")

	return cmd
}
