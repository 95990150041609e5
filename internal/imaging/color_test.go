package imaging

import (
	"image"
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// createInMemoryImage creates an in-memory test image
func createInMemoryImage(width, height int, c color.Color) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, c)
		}
	}
	return img
}

// createPatternImage creates an image with different colors in each quadrant
func createPatternImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			var c color.Color
			if x < width/2 && y < height/2 {
				c = color.RGBA{255, 0, 0, 255} // Red top-left
			} else if x >= width/2 && y < height/2 {
				c = color.RGBA{0, 255, 0, 255} // Green top-right
			} else if x < width/2 && y >= height/2 {
				c = color.RGBA{0, 0, 255, 255} // Blue bottom-left
			} else {
				c = color.RGBA{255, 255, 255, 255} // White bottom-right
			}
			img.Set(x, y, c)
		}
	}
	return img
}

func TestDominantColors(t *testing.T) {
	// Create an image with mostly red, some green
	img := image.NewRGBA(image.Rect(0, 0, 100, 100))
	for y := 0; y < 100; y++ {
		for x := 0; x < 100; x++ {
			if x < 80 {
				img.Set(x, y, color.RGBA{255, 0, 0, 255}) // 80% red
			} else {
				img.Set(x, y, color.RGBA{0, 255, 0, 255}) // 20% green
			}
		}
	}

	result, err := DominantColors(img, 5, nil)
	require.NoError(t, err)
	require.Len(t, result.Colors, 2)

	assert.Equal(t, "#ff0000", result.Colors[0].Hex)
	assert.Equal(t, 80.0, result.Colors[0].Percentage)
	assert.Equal(t, "#00ff00", result.Colors[1].Hex)
	assert.Equal(t, 20.0, result.Colors[1].Percentage)
}

func TestDominantColors_MeanOfBucket(t *testing.T) {
	// 250 and 254 share a bucket; the report is their mean, not the bucket floor
	img := image.NewRGBA(image.Rect(0, 0, 2, 1))
	img.Set(0, 0, color.RGBA{250, 0, 0, 255})
	img.Set(1, 0, color.RGBA{254, 0, 0, 255})

	result, err := DominantColors(img, 1, nil)
	require.NoError(t, err)
	require.Len(t, result.Colors, 1)
	assert.Equal(t, "#fc0000", result.Colors[0].Hex)
}

func TestDominantColors_WithRegion(t *testing.T) {
	img := createPatternImage(100, 100)

	// Sample only the top-left quadrant (red)
	region := &Region{X1: 0, Y1: 0, X2: 50, Y2: 50}
	result, err := DominantColors(img, 5, region)
	require.NoError(t, err)
	require.Len(t, result.Colors, 1)
	assert.Equal(t, "#ff0000", result.Colors[0].Hex, "red should dominate the top-left region")
}

func TestDominantColors_InvalidInput(t *testing.T) {
	img := createPatternImage(100, 100)

	tests := []struct {
		name   string
		count  int
		region *Region
	}{
		{"zero count", 0, nil},
		{"negative count", -1, nil},
		{"empty region", 3, &Region{X1: 10, Y1: 10, X2: 10, Y2: 20}},
		{"inverted region", 3, &Region{X1: 50, Y1: 50, X2: 10, Y2: 10}},
		{"outside bounds", 3, &Region{X1: 90, Y1: 90, X2: 120, Y2: 120}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DominantColors(img, tt.count, tt.region)
			assert.Error(t, err)
		})
	}
}

func TestDominantColors_SingleColor(t *testing.T) {
	img := createInMemoryImage(100, 100, color.RGBA{128, 128, 128, 255})

	result, err := DominantColors(img, 3, nil)
	require.NoError(t, err)

	// Uniform image yields one color covering everything
	require.Len(t, result.Colors, 1)
	assert.Equal(t, 100.0, result.Colors[0].Percentage)
}

func TestDominantColors_LargeImageDownsampled(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 2000, 1000))
	for y := 0; y < 1000; y++ {
		for x := 0; x < 2000; x++ {
			if x < 1500 {
				img.Set(x, y, color.RGBA{0, 0, 255, 255})
			} else {
				img.Set(x, y, color.RGBA{255, 255, 0, 255})
			}
		}
	}

	hex, err := DominantColor(img, nil)
	require.NoError(t, err)
	assert.Equal(t, "#0000ff", hex)
}

func TestDominantColor_Region(t *testing.T) {
	img := createPatternImage(100, 100)

	hex, err := DominantColor(img, &Region{X1: 50, Y1: 50, X2: 100, Y2: 100})
	require.NoError(t, err)
	assert.Equal(t, "#ffffff", hex)
}
