package palette

import (
	"fmt"
	"sort"

	"github.com/ironsheep/palette-tools-mcp/internal/colorspace"
)

// Swatch is one entry of a generated palette in every representation.
//
// HSL is the strategy output before conversion; RGB is unrounded.
type Swatch struct {
	Hex string         `json:"hex"`
	RGB colorspace.RGB `json:"rgb"`
	HSL colorspace.HSL `json:"hsl"`
}

// Palette is the result of generating colors from a base color.
type Palette struct {
	Base   string   `json:"base"`   // Normalized base hex
	Type   Type     `json:"type"`   // Strategy actually applied
	Colors []Swatch `json:"colors"` // Sorted by ascending hue
}

// Hexes returns the palette colors as hex strings, in palette order.
func (p *Palette) Hexes() []string {
	out := make([]string, len(p.Colors))
	for i, c := range p.Colors {
		out[i] = c.Hex
	}
	return out
}

// Assembler runs the palette pipeline using a Converter for the RGB/HSL
// steps.
type Assembler struct {
	conv *colorspace.Converter
}

// NewAssembler creates an Assembler. A nil converter converts without
// caching.
func NewAssembler(conv *colorspace.Converter) *Assembler {
	return &Assembler{conv: conv}
}

// Converter returns the converter used by the assembler.
func (a *Assembler) Converter() *colorspace.Converter {
	return a.conv
}

// Generate builds a palette of Size colors from baseHex using strategy t.
//
// Returns an error wrapping colorspace.ErrInvalidHex if baseHex is not a
// "#rrggbb" string. The same inputs always yield the same palette.
func (a *Assembler) Generate(baseHex string, t Type) (*Palette, error) {
	rgb, err := colorspace.HexToRGB(baseHex)
	if err != nil {
		return nil, fmt.Errorf("failed to parse base color: %w", err)
	}

	base := a.conv.RGBToHSL(rgb)
	colors := StrategyFor(t)(base)

	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].H < colors[j].H
	})

	swatches := make([]Swatch, 0, len(colors))
	for _, hsl := range colors {
		c := a.conv.HSLToRGB(hsl)
		swatches = append(swatches, Swatch{
			Hex: colorspace.RGBToHex(c),
			RGB: c,
			HSL: hsl,
		})
	}

	return &Palette{
		Base:   colorspace.RGBToHex(rgb),
		Type:   t,
		Colors: swatches,
	}, nil
}

// Generate builds a palette without caching and returns its hex strings.
// Unrecognized type tokens fall back to monochromatic.
func Generate(baseHex, paletteType string) ([]string, error) {
	p, err := NewAssembler(nil).Generate(baseHex, ParseType(paletteType))
	if err != nil {
		return nil, err
	}
	return p.Hexes(), nil
}
