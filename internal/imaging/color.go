package imaging

import (
	"fmt"
	"image"
	"sort"

	"github.com/disintegration/imaging"

	"github.com/ironsheep/palette-tools-mcp/internal/colorspace"
)

// maxAnalysisSize bounds the longer edge of the image scanned by
// DominantColors. Larger inputs are downsampled first.
const maxAnalysisSize = 512

// Region represents a rectangular region within an image.
//
// Coordinates follow the standard image convention:
//   - (X1, Y1) is the top-left corner (inclusive)
//   - (X2, Y2) is the bottom-right corner (exclusive)
//   - Width = X2 - X1, Height = Y2 - Y1
type Region struct {
	X1 int `json:"x1"` // Left edge X coordinate (inclusive)
	Y1 int `json:"y1"` // Top edge Y coordinate (inclusive)
	X2 int `json:"x2"` // Right edge X coordinate (exclusive)
	Y2 int `json:"y2"` // Bottom edge Y coordinate (exclusive)
}

// ColorFrequency represents a color and its occurrence frequency in an image.
type ColorFrequency struct {
	Hex        string         `json:"hex"`        // Mean color of the bucket, "#rrggbb"
	Percentage float64        `json:"percentage"` // Percentage of pixels in this bucket (0-100)
	RGB        colorspace.RGB `json:"rgb"`        // Mean RGB of the bucket
}

// DominantColorsResult contains the most frequently occurring colors in an image.
//
// Colors are sorted by frequency in descending order (most common first).
type DominantColorsResult struct {
	Colors []ColorFrequency `json:"colors"` // Colors sorted by frequency (descending)
}

type bucket struct {
	count   int
	r, g, b float64
}

// DominantColors extracts the N most common colors from an image or region.
//
// Parameters:
//   - img: The source image to analyze.
//   - count: Maximum number of colors to return. Must be positive.
//   - region: Optional rectangular region to analyze. If nil, the entire image
//     is analyzed.
//
// Returns:
//   - *DominantColorsResult: The dominant colors sorted by frequency.
//   - error: Non-nil if count is not positive or region is empty or outside
//     the image.
//
// # Color Quantization
//
// Similar colors are grouped by dividing each 8-bit component by 16. Each
// reported color is the mean of the pixels that fell into its bucket, so a
// flat #ff0000 area reports #ff0000 rather than the bucket floor #f00000.
//
// # Performance
//
// Regions whose longer edge exceeds 512 pixels are downsampled with
// nearest-neighbor sampling before counting, which keeps pixel colors exact
// while bounding the work.
func DominantColors(img image.Image, count int, region *Region) (*DominantColorsResult, error) {
	if count <= 0 {
		return nil, fmt.Errorf("count must be positive, got %d", count)
	}

	src := img
	if region != nil {
		bounds := img.Bounds()
		r := image.Rect(region.X1, region.Y1, region.X2, region.Y2)
		if region.X1 >= region.X2 || region.Y1 >= region.Y2 {
			return nil, fmt.Errorf("invalid region: x1 must be < x2, y1 must be < y2")
		}
		if !r.In(bounds) {
			return nil, fmt.Errorf("region (%d,%d)-(%d,%d) outside image bounds (%d,%d)-(%d,%d)",
				region.X1, region.Y1, region.X2, region.Y2, bounds.Min.X, bounds.Min.Y, bounds.Max.X, bounds.Max.Y)
		}
		src = imaging.Crop(img, r)
	}

	if b := src.Bounds(); b.Dx() > maxAnalysisSize || b.Dy() > maxAnalysisSize {
		src = imaging.Fit(src, maxAnalysisSize, maxAnalysisSize, imaging.NearestNeighbor)
	}

	bounds := src.Bounds()
	buckets := make(map[uint32]*bucket)
	totalPixels := 0

	for y := bounds.Min.Y; y < bounds.Max.Y; y++ {
		for x := bounds.Min.X; x < bounds.Max.X; x++ {
			r, g, b, _ := src.At(x, y).RGBA()
			r8, g8, b8 := r>>8, g>>8, b>>8
			// Quantize to reduce color space (group similar colors)
			key := (r8/16)<<8 | (g8/16)<<4 | b8/16

			bk, ok := buckets[key]
			if !ok {
				bk = &bucket{}
				buckets[key] = bk
			}
			bk.count++
			bk.r += float64(r8)
			bk.g += float64(g8)
			bk.b += float64(b8)
			totalPixels++
		}
	}

	colors := make([]ColorFrequency, 0, len(buckets))
	keys := make([]uint32, 0, len(buckets))
	for key := range buckets {
		keys = append(keys, key)
	}
	// Deterministic tie order regardless of map iteration.
	sort.Slice(keys, func(i, j int) bool { return keys[i] < keys[j] })

	for _, key := range keys {
		bk := buckets[key]
		n := float64(bk.count)
		mean := colorspace.RGB{R: bk.r / n, G: bk.g / n, B: bk.b / n}
		colors = append(colors, ColorFrequency{
			Hex:        colorspace.RGBToHex(mean),
			Percentage: n / float64(totalPixels) * 100,
			RGB:        mean,
		})
	}

	sort.SliceStable(colors, func(i, j int) bool {
		return colors[i].Percentage > colors[j].Percentage
	})

	if len(colors) > count {
		colors = colors[:count]
	}

	return &DominantColorsResult{Colors: colors}, nil
}

// DominantColor returns the hex of the most common color in img (or region).
func DominantColor(img image.Image, region *Region) (string, error) {
	result, err := DominantColors(img, 1, region)
	if err != nil {
		return "", err
	}
	if len(result.Colors) == 0 {
		return "", fmt.Errorf("image has no pixels")
	}
	return result.Colors[0].Hex, nil
}
