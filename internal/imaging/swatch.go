package imaging

import (
	"bytes"
	"encoding/base64"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/disintegration/imaging"
	colorful "github.com/lucasb-eyer/go-colorful"

	"github.com/ironsheep/palette-tools-mcp/internal/colorspace"
)

const (
	// labelMargin is the inset of a hex label from its swatch's top-left corner.
	labelMargin = 4

	// MaxSwatchEdge bounds either edge of a rendered strip, before and after
	// scaling.
	MaxSwatchEdge = 8192

	// MaxSwatchScale is the largest accepted Scale.
	MaxSwatchScale = 16.0
)

// SwatchOptions controls RenderSwatches output.
type SwatchOptions struct {
	Width  int     // Width of each swatch block in pixels
	Height int     // Height of each swatch block in pixels
	Labels bool    // Draw the hex string on each block
	Scale  float64 // Optional resize of the finished strip; 0 or 1 leaves it as is
}

// SwatchResult contains a rendered swatch strip encoded as PNG.
type SwatchResult struct {
	Width       int      `json:"width"`
	Height      int      `json:"height"`
	Colors      []string `json:"colors"`
	ImageBase64 string   `json:"image_base64"`
	MimeType    string   `json:"mime_type"`
	SavedTo     string   `json:"saved_to,omitempty"`
}

// RenderSwatches draws one solid block per hex color, left to right.
//
// When labels are enabled each block carries its hex string in a small bitmap
// font. The ink is black or white depending on the block's CIE L* so it stays
// readable on both light and dark colors. Labels that do not fit inside the
// block are omitted.
func RenderSwatches(hexes []string, opts SwatchOptions) (*image.NRGBA, error) {
	if len(hexes) == 0 {
		return nil, fmt.Errorf("no colors to render")
	}
	if opts.Width <= 0 || opts.Height <= 0 {
		return nil, fmt.Errorf("invalid swatch size %dx%d", opts.Width, opts.Height)
	}
	if opts.Width*len(hexes) > MaxSwatchEdge || opts.Height > MaxSwatchEdge {
		return nil, fmt.Errorf("swatch strip %dx%d exceeds %d px", opts.Width*len(hexes), opts.Height, MaxSwatchEdge)
	}
	if math.IsNaN(opts.Scale) || opts.Scale < 0 || opts.Scale > MaxSwatchScale {
		return nil, fmt.Errorf("scale %v out of range [0, %v]", opts.Scale, MaxSwatchScale)
	}

	canvas := imaging.New(opts.Width*len(hexes), opts.Height, color.Transparent)

	for i, hex := range hexes {
		rgb, err := colorspace.HexToRGB(hex)
		if err != nil {
			return nil, fmt.Errorf("swatch %d: %w", i, err)
		}
		fill := color.NRGBA{R: uint8(rgb.R), G: uint8(rgb.G), B: uint8(rgb.B), A: 255}
		block := imaging.New(opts.Width, opts.Height, fill)
		canvas = imaging.Paste(canvas, block, image.Pt(i*opts.Width, 0))

		if opts.Labels {
			clip := image.Rect(i*opts.Width, 0, (i+1)*opts.Width, opts.Height)
			drawLabel(canvas, clip, colorspace.RGBToHex(rgb), inkFor(rgb))
		}
	}

	if opts.Scale > 0 && opts.Scale != 1.0 {
		w := int(float64(canvas.Bounds().Dx()) * opts.Scale)
		h := int(float64(canvas.Bounds().Dy()) * opts.Scale)
		if w < 1 || h < 1 {
			return nil, fmt.Errorf("scale %.3f collapses the image", opts.Scale)
		}
		if w > MaxSwatchEdge || h > MaxSwatchEdge {
			return nil, fmt.Errorf("scaled strip %dx%d exceeds %d px", w, h, MaxSwatchEdge)
		}
		canvas = imaging.Resize(canvas, w, h, imaging.NearestNeighbor)
	}

	return canvas, nil
}

// EncodeSwatches returns a rendered strip as base64 PNG. hexes is echoed in
// the result for the caller's convenience.
func EncodeSwatches(img image.Image, hexes []string) (*SwatchResult, error) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return nil, fmt.Errorf("failed to encode swatches: %w", err)
	}

	return &SwatchResult{
		Width:       img.Bounds().Dx(),
		Height:      img.Bounds().Dy(),
		Colors:      hexes,
		ImageBase64: base64.StdEncoding.EncodeToString(buf.Bytes()),
		MimeType:    "image/png",
	}, nil
}

// SaveSwatches writes a rendered strip to path as PNG.
func SaveSwatches(path string, img image.Image) error {
	if err := imgio.Save(path, img, imgio.PNGEncoder()); err != nil {
		return fmt.Errorf("failed to save swatches: %w", err)
	}
	return nil
}

// inkFor picks black or white label ink for a background color.
func inkFor(bg colorspace.RGB) color.NRGBA {
	c := colorful.Color{R: bg.R / 255, G: bg.G / 255, B: bg.B / 255}
	l, _, _ := c.Lab()
	if l > 0.6 {
		return color.NRGBA{A: 255}
	}
	return color.NRGBA{R: 255, G: 255, B: 255, A: 255}
}

// glyphs is a 3x5 pixel font covering lowercase hex strings.
var glyphs = map[rune][]string{
	'#': {"101", "111", "101", "111", "101"},
	'0': {"111", "101", "101", "101", "111"},
	'1': {"010", "110", "010", "010", "111"},
	'2': {"111", "001", "111", "100", "111"},
	'3': {"111", "001", "111", "001", "111"},
	'4': {"101", "101", "111", "001", "001"},
	'5': {"111", "100", "111", "001", "111"},
	'6': {"111", "100", "111", "101", "111"},
	'7': {"111", "001", "001", "001", "001"},
	'8': {"111", "101", "111", "101", "111"},
	'9': {"111", "101", "111", "001", "111"},
	'a': {"010", "101", "111", "101", "101"},
	'b': {"110", "101", "110", "101", "110"},
	'c': {"111", "100", "100", "100", "111"},
	'd': {"110", "101", "101", "101", "110"},
	'e': {"111", "100", "111", "100", "111"},
	'f': {"111", "100", "111", "100", "100"},
}

// drawLabel draws text in the top-left corner of clip. Glyphs are drawn at
// 2x when that fits, otherwise 1x; if neither fits nothing is drawn.
// Unknown characters advance the cursor without drawing.
func drawLabel(img *image.NRGBA, clip image.Rectangle, text string, fg color.NRGBA) {
	clip = clip.Intersect(img.Bounds())

	scale := 0
	for _, s := range []int{2, 1} {
		w := len(text)*4*s - s
		h := 5 * s
		if w+2*labelMargin <= clip.Dx() && h+2*labelMargin <= clip.Dy() {
			scale = s
			break
		}
	}
	if scale == 0 {
		return
	}

	cx := clip.Min.X + labelMargin
	y := clip.Min.Y + labelMargin
	for _, ch := range text {
		glyph, ok := glyphs[ch]
		if ok {
			for row, line := range glyph {
				for col, pixel := range line {
					if pixel != '1' {
						continue
					}
					for dy := 0; dy < scale; dy++ {
						for dx := 0; dx < scale; dx++ {
							img.SetNRGBA(cx+col*scale+dx, y+row*scale+dy, fg)
						}
					}
				}
			}
		}
		cx += 4 * scale
	}
}
