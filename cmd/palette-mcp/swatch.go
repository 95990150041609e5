package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/imaging"
)

func newSwatchCmd(flags *rootFlags) *cobra.Command {
	pf := &paletteFlags{}
	var (
		out   string
		scale float64
	)

	cmd := &cobra.Command{
		Use:   "swatch <#rrggbb>",
		Short: "Render a palette to a PNG file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, cfg, err := buildPalette(flags, pf, args[0])
			if err != nil {
				return err
			}

			img, err := imaging.RenderSwatches(p.Hexes(), imaging.SwatchOptions{
				Width:  cfg.Swatch.Width,
				Height: cfg.Swatch.Height,
				Labels: cfg.Swatch.Labels,
				Scale:  scale,
			})
			if err != nil {
				return err
			}
			if err := imaging.SaveSwatches(out, img); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "wrote %s (%s)\n", out, p.Type)
			return nil
		},
	}

	cmd.Flags().StringVarP(&pf.paletteType, "type", "t", "", "Palette type: monochromatic, analogous, triadic, complementary")
	cmd.Flags().StringVarP(&out, "out", "o", "palette.png", "Output PNG path")
	cmd.Flags().Float64Var(&scale, "scale", 1.0, fmt.Sprintf("Scale factor for the rendered strip (0 to %v)", imaging.MaxSwatchScale))
	return cmd
}
