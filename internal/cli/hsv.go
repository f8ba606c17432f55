package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourcodec/internal/colour"
)

func newHSVCmd(a *app) *cobra.Command {
	var hf hexFlags

	cmd := &cobra.Command{
		Use:   "hsv <hue> <saturation> <value>",
		Short: "Convert an HSV triple to hex",
		Long: `Convert hue (degrees), saturation (0-1) and value (0-1) to a hex colour.

Any hue is accepted and wrapped into [0, 360). Out of range saturation or
value is not rejected; channels are clamped to 0-255. Place negative hues
after "--" so they are not read as flags.

Examples:
  colourcodec hsv 210 0.5 0.6
  colourcodec hsv -- -30 1 1`,
		Args: cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			h, err := parseFloatArg("hue", args[0])
			if err != nil {
				return err
			}
			s, err := parseFloatArg("saturation", args[1])
			if err != nil {
				return err
			}
			v, err := parseFloatArg("value", args[2])
			if err != nil {
				return err
			}

			c := colour.FromHSV(h, s, v)
			a.logger.Named("hsv").Debug("converted", "hue", h, "normalised_hue", colour.NormaliseHue(h),
				"saturation", s, "value", v, "colour", c.String())

			opts := hf.options(cmd.Flags(), a.cfg.Hex)
			if a.showPreview(cmd.OutOrStdout()) {
				a.print(cmd, colour.FormatWithPreview(c, opts, 4)+"\n")
			} else {
				a.print(cmd, colour.EncodeHex(c, opts)+"\n")
			}
			return nil
		},
	}

	hf.register(cmd.Flags())
	return cmd
}

func newWheelCmd(a *app) *cobra.Command {
	var (
		hf         hexFlags
		base       colourFlag
		steps      int
		saturation float64
		value      float64
		offset     float64
		format     string
	)

	cmd := &cobra.Command{
		Use:   "wheel",
		Short: "Generate evenly spaced hues",
		Long: `Generate a palette of evenly spaced hues at a fixed saturation and value.

With --base the saturation, value and starting hue are taken from the given
colour; explicit --saturation, --value and --offset flags still win.

Examples:
  colourcodec wheel --steps 6
  colourcodec wheel --steps 12 --saturation 0.6 --value 0.9
  colourcodec wheel --base "#336699" --steps 4 --format json`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			if steps < 1 || steps > 360 {
				return fmt.Errorf("invalid --steps %d: must be 1-360", steps)
			}

			if base.set {
				h, s, v := base.value.HSV()
				if !cmd.Flags().Changed("saturation") {
					saturation = s
				}
				if !cmd.Flags().Changed("value") {
					value = v
				}
				if !cmd.Flags().Changed("offset") {
					offset = h
				}
			}

			a.logger.Named("wheel").Debug("generating wheel", "steps", steps,
				"saturation", saturation, "value", value, "offset", offset)

			colours := colour.HueWheel(steps, saturation, value, offset)
			opts := hf.options(cmd.Flags(), a.cfg.Hex)
			out, err := renderColours(colours, format, opts, a.showPreview(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			a.print(cmd, out)
			return nil
		},
	}

	hf.register(cmd.Flags())
	cmd.Flags().Var(&base, "base", "derive saturation, value and starting hue from a colour")
	cmd.Flags().IntVarP(&steps, "steps", "n", 6, "number of colours (1-360)")
	cmd.Flags().Float64VarP(&saturation, "saturation", "s", 1, "saturation (0-1)")
	cmd.Flags().Float64Var(&value, "value", 1, "value/brightness (0-1)")
	cmd.Flags().Float64Var(&offset, "offset", 0, "hue of the first colour in degrees")
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")

	return cmd
}
