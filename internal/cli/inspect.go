package cli

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourcodec/internal/colour"
)

// inspectJSON is the JSON form of the inspect command.
type inspectJSON struct {
	colourJSON
	Hue        float64 `json:"hue"`
	Saturation float64 `json:"saturation"`
	Value      float64 `json:"value"`
}

func newInspectCmd(a *app) *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "inspect <colour>",
		Short: "Show every representation of a colour",
		Long: `Show the hex, RGB and HSV forms of a colour given as hex, name or "r,g,b[,a]".

Examples:
  colourcodec inspect tomato
  colourcodec inspect --format json "#336699"`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			c, err := parseColourArg(args[0])
			if err != nil {
				return err
			}
			h, s, v := c.HSV()

			switch format {
			case "text", "":
				var sb strings.Builder
				if a.showPreview(cmd.OutOrStdout()) {
					sb.WriteString(colour.PreviewWithText(c, colour.EncodeHex(c, colour.DefaultHexOptions()), 12) + "\n")
				}
				fmt.Fprintf(&sb, "hex:   %s\n", colour.EncodeHex(c, a.cfg.Hex))
				fmt.Fprintf(&sb, "argb:  %s\n", colour.EncodeHex(c, colour.HexOptions{IncludeAlpha: true, LeadingMarker: true}))
				fmt.Fprintf(&sb, "rgba:  %s\n", c.String())
				fmt.Fprintf(&sb, "hsv:   %.1f, %.3f, %.3f\n", h, s, v)
				a.print(cmd, sb.String())
			case "json":
				b, err := json.MarshalIndent(inspectJSON{
					colourJSON: toColourJSON(c, a.cfg.Hex),
					Hue:        h,
					Saturation: s,
					Value:      v,
				}, "", "  ")
				if err != nil {
					return fmt.Errorf("failed to convert to JSON: %w", err)
				}
				a.print(cmd, string(b)+"\n")
			default:
				return fmt.Errorf("unsupported format: %s (supported: text, json)", format)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", "text", "output format (text, json)")
	return cmd
}

func newNamesCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "names",
		Short: "List the SVG colour names accepted as input",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			table := NewTable([]string{"NAME", "HEX"})
			for _, name := range colour.Names() {
				c, _ := colour.Lookup(name)
				table.AddRow([]string{name, colour.EncodeHex(c, a.cfg.Hex)})
			}
			a.print(cmd, table.Render())
			return nil
		},
	}
}
