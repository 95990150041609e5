package palette

import (
	"math"

	"github.com/ironsheep/palette-tools-mcp/internal/colorspace"
)

// Size is the number of colors every strategy produces.
const Size = 5

// Strategy maps a base color to Size derived colors. The base (or a variant
// of it) is always included.
type Strategy func(base colorspace.HSL) []colorspace.HSL

// StrategyFor returns the strategy implementing t. Out-of-range values get
// the monochromatic strategy.
func StrategyFor(t Type) Strategy {
	switch t {
	case Analogous:
		return AnalogousColors
	case Triadic:
		return TriadicColors
	case Complementary:
		return ComplementaryColors
	default:
		return MonochromaticColors
	}
}

// MonochromaticColors keeps hue and saturation and shifts lightness by
// -20, -10, +10 and +20.
func MonochromaticColors(base colorspace.HSL) []colorspace.HSL {
	return []colorspace.HSL{
		base,
		withLightness(base, base.L-20),
		withLightness(base, base.L-10),
		withLightness(base, base.L+10),
		withLightness(base, base.L+20),
	}
}

// AnalogousColors keeps saturation and lightness and rotates hue by
// -30, -15, +15 and +30 degrees.
func AnalogousColors(base colorspace.HSL) []colorspace.HSL {
	return []colorspace.HSL{
		base,
		withHue(base, base.H-30),
		withHue(base, base.H-15),
		withHue(base, base.H+15),
		withHue(base, base.H+30),
	}
}

// TriadicColors returns the base, the two hues 120 degrees apart, a lighter
// variant of the first and a darker variant of the second.
func TriadicColors(base colorspace.HSL) []colorspace.HSL {
	second := withHue(base, base.H+120)
	third := withHue(base, base.H+240)
	return []colorspace.HSL{
		base,
		second,
		third,
		withLightness(second, base.L+15),
		withLightness(third, base.L-15),
	}
}

// ComplementaryColors returns the base, its complement, a lighter base, and
// lighter and darker variants of the complement.
func ComplementaryColors(base colorspace.HSL) []colorspace.HSL {
	complement := withHue(base, base.H+180)
	return []colorspace.HSL{
		base,
		complement,
		withLightness(base, base.L+20),
		withLightness(complement, base.L+15),
		withLightness(complement, base.L-15),
	}
}

// WrapHue reduces h into [0,360).
func WrapHue(h float64) float64 {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	// -tiny + 360 can round up to exactly 360
	if h >= 360 {
		h = 0
	}
	return h
}

// ClampLightness bounds l into [0,100].
func ClampLightness(l float64) float64 {
	return math.Max(0, math.Min(100, l))
}

func withHue(c colorspace.HSL, h float64) colorspace.HSL {
	c.H = WrapHue(h)
	return c
}

func withLightness(c colorspace.HSL, l float64) colorspace.HSL {
	c.L = ClampLightness(l)
	return c
}
