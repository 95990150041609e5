// Package imaging provides the raster side of the palette server: loading
// images, finding their dominant colors, and rendering palettes as swatches.
//
// All pixel coordinates are 0-based with (0,0) at the top-left corner. For
// regions, (x1,y1) is inclusive and (x2,y2) is exclusive.
//
// # Thread Safety
//
// The ImageCache type is safe for concurrent use. The analysis and rendering
// functions are stateless and can be called concurrently.
//
// # Color Representation
//
// Colors cross this package as lowercase "#rrggbb" strings and are parsed
// with the colorspace package, so malformed hex input is rejected the same
// way everywhere.
//
// # Swatches
//
// RenderSwatches lays colors out left to right as equal blocks. Labels use a
// built-in 3x5 bitmap font limited to the characters of a hex string.
package imaging
