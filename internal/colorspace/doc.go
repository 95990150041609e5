// Package colorspace converts colors between hex strings, RGB triples and
// HSL triples.
//
// # Representations
//
//   - Hex: 7-character "#rrggbb" string. Parsing accepts either case,
//     formatting always emits lowercase.
//   - RGB: float channels, semantically 0-255. Values are kept unrounded so
//     that HSL round-trips do not accumulate integer truncation.
//   - HSL: hue in degrees (0-360), saturation and lightness in percent
//     (0-100).
//
// # Error Handling
//
// Malformed hex input is rejected with ErrInvalidHex rather than producing
// NaN channels. RGB values outside 0-255 are clamped when formatted so the
// output is always a valid 7-character hex string.
//
// # Caching
//
// Converter optionally memoizes RGB->HSL and HSL->RGB results in a Cache
// keyed by the exact input value. A Converter with a nil Cache computes
// every conversion directly, which is what tests use when they need to rule
// out cache effects.
package colorspace
