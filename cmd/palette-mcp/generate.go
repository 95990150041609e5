package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/ironsheep/palette-tools-mcp/internal/colorspace"
	"github.com/ironsheep/palette-tools-mcp/internal/config"
	"github.com/ironsheep/palette-tools-mcp/internal/palette"
)

type paletteFlags struct {
	paletteType string
}

// buildPalette generates the palette for a command invocation, honoring the
// configured default type and conversion cache setting.
func buildPalette(flags *rootFlags, pf *paletteFlags, hex string) (*palette.Palette, *config.Config, error) {
	cfg, log, err := loadConfig(flags)
	if err != nil {
		return nil, nil, err
	}

	token := pf.paletteType
	if token == "" {
		token = cfg.DefaultType
	}
	t, ok := palette.LookupType(token)
	if !ok {
		log.WithFields(map[string]interface{}{"type": token}).Warn("unknown palette type, using monochromatic")
	}

	var cache *colorspace.Cache
	if cfg.Cache.Enabled {
		cache = colorspace.NewCache()
	}
	p, err := palette.NewAssembler(colorspace.NewConverter(cache)).Generate(hex, t)
	if err != nil {
		return nil, nil, err
	}
	return p, cfg, nil
}

func newGenerateCmd(flags *rootFlags) *cobra.Command {
	pf := &paletteFlags{}

	cmd := &cobra.Command{
		Use:   "generate <#rrggbb>",
		Short: "Print a palette as hex colors, one per line",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := buildPalette(flags, pf, args[0])
			if err != nil {
				return err
			}
			for _, hex := range p.Hexes() {
				fmt.Fprintln(cmd.OutOrStdout(), hex)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&pf.paletteType, "type", "t", "", "Palette type: monochromatic, analogous, triadic, complementary")
	return cmd
}
