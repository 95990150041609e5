// Package palette derives harmonious color sets from a single base color.
//
// A palette is produced by a fixed pipeline:
//
//	hex -> RGB -> HSL -> strategy -> stable sort by hue -> RGB -> hex
//
// Four strategies are available (see Type). Each returns exactly Size
// colors. Hue adjustments wrap into [0,360); lightness adjustments clamp
// into [0,100].
//
// The sort is stable, so colors sharing a hue keep the order their strategy
// emitted them in. A monochromatic palette, where every hue is equal, comes
// back in strategy order with the base first.
package palette
