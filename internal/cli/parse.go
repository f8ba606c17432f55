package cli

import (
	"encoding/json"
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/jmylchreest/colourcodec/internal/colour"
)

// colourJSON is the JSON form of a colour in command output.
type colourJSON struct {
	Hex string `json:"hex"`
	R   uint8  `json:"r"`
	G   uint8  `json:"g"`
	B   uint8  `json:"b"`
	A   uint8  `json:"a"`
}

func toColourJSON(c colour.Colour, opts colour.HexOptions) colourJSON {
	return colourJSON{Hex: colour.EncodeHex(c, opts), R: c.R, G: c.G, B: c.B, A: c.A}
}

func newParseCmd(a *app) *cobra.Command {
	var (
		hf     hexFlags
		format string
	)

	cmd := &cobra.Command{
		Use:   "parse <hex>...",
		Short: "Parse hex strings into RGB channels",
		Long: `Parse "#RRGGBB" or "RRGGBB" strings into their channels.

Only the first six hex digits are read. An alpha pair is not parsed, so
"#80FF0000" reads as red 0x80, green 0xFF, blue 0x00, and every parsed
colour is fully opaque.

Examples:
  colourcodec parse "#336699" 112233
  colourcodec parse --format json "#336699"`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			log := a.logger.Named("parse")
			opts := hf.options(cmd.Flags(), a.cfg.Hex)

			colours := make([]colour.Colour, 0, len(args))
			for _, arg := range args {
				c, err := colour.ParseHex(arg)
				if err != nil {
					return err
				}
				log.Debug("parsed hex", "input", arg, "colour", c.String())
				colours = append(colours, c)
			}

			out, err := renderColours(colours, format, opts, a.showPreview(cmd.OutOrStdout()))
			if err != nil {
				return err
			}
			a.print(cmd, out)
			return nil
		},
	}

	hf.register(cmd.Flags())
	cmd.Flags().StringVarP(&format, "format", "f", "table", "output format (table, json)")

	return cmd
}

// renderColours formats colours as a table or JSON array.
func renderColours(colours []colour.Colour, format string, opts colour.HexOptions, preview bool) (string, error) {
	switch format {
	case "table", "":
		headers := []string{"HEX", "R", "G", "B", "A"}
		if preview {
			headers = append([]string{""}, headers...)
		}
		table := NewTable(headers)
		for _, c := range colours {
			row := []string{
				colour.EncodeHex(c, opts),
				strconv.Itoa(int(c.R)),
				strconv.Itoa(int(c.G)),
				strconv.Itoa(int(c.B)),
				strconv.Itoa(int(c.A)),
			}
			if preview {
				row = append([]string{colour.Preview(c, 4)}, row...)
			}
			table.AddRow(row)
		}
		return table.Render(), nil
	case "json":
		items := make([]colourJSON, len(colours))
		for i, c := range colours {
			items[i] = toColourJSON(c, opts)
		}
		b, err := json.MarshalIndent(items, "", "  ")
		if err != nil {
			return "", fmt.Errorf("failed to convert to JSON: %w", err)
		}
		return string(b) + "\n", nil
	default:
		return "", fmt.Errorf("unsupported format: %s (supported: table, json)", format)
	}
}
