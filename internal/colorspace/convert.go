package colorspace

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// ErrInvalidHex is returned when a string is not of the form "#rrggbb".
var ErrInvalidHex = errors.New("invalid hex color")

// RGB represents a color as red, green and blue channels.
//
// Channels are semantically 0-255 but are not clamped on construction;
// RGBToHex clamps when encoding.
type RGB struct {
	R float64 `json:"r"` // Red component (0-255)
	G float64 `json:"g"` // Green component (0-255)
	B float64 `json:"b"` // Blue component (0-255)
}

// HSL represents a color in HSL (Hue, Saturation, Lightness) color space.
type HSL struct {
	H float64 `json:"h"` // Hue: 0-360 degrees (0=red, 120=green, 240=blue)
	S float64 `json:"s"` // Saturation: 0-100 percent (0=gray, 100=vivid)
	L float64 `json:"l"` // Lightness: 0-100 percent (0=black, 50=normal, 100=white)
}

// HexToRGB parses a "#rrggbb" string into its RGB channels.
//
// Both upper- and lowercase digits are accepted. Any other shape, including
// the 3-digit CSS shorthand and an 8-digit form with alpha, returns an error
// wrapping ErrInvalidHex.
func HexToRGB(hex string) (RGB, error) {
	if len(hex) != 7 || hex[0] != '#' {
		return RGB{}, fmt.Errorf("%w: %q must be '#' followed by 6 hex digits", ErrInvalidHex, hex)
	}

	val, err := strconv.ParseUint(hex[1:], 16, 32)
	if err != nil {
		return RGB{}, fmt.Errorf("%w: %q: %v", ErrInvalidHex, hex, err)
	}

	return RGB{
		R: float64(uint8(val >> 16)),
		G: float64(uint8(val >> 8)),
		B: float64(uint8(val)),
	}, nil
}

// RGBToHex encodes an RGB color as a lowercase "#rrggbb" string.
//
// Each channel is rounded to the nearest integer and clamped to 0-255 so the
// result is always 7 characters long. NaN channels encode as 00.
func RGBToHex(c RGB) string {
	return fmt.Sprintf("#%02x%02x%02x", toByte(c.R), toByte(c.G), toByte(c.B))
}

// NormalizeHex validates hex and returns it in lowercase.
func NormalizeHex(hex string) (string, error) {
	if _, err := HexToRGB(hex); err != nil {
		return "", err
	}
	return strings.ToLower(hex), nil
}

func toByte(v float64) uint8 {
	v = math.Round(v)
	switch {
	case math.IsNaN(v), v < 0:
		return 0
	case v > 255:
		return 255
	}
	return uint8(v)
}

// RGBToHSL converts an RGB color to HSL color space.
//
// The conversion follows the standard algorithm:
//  1. Normalize RGB to 0-1 range
//  2. Find min and max components
//  3. Calculate Lightness as (max + min) / 2
//  4. Calculate Saturation based on lightness
//  5. Calculate Hue based on which component is max
//
// Achromatic input (max == min) yields H=0 and S=0.
func RGBToHSL(c RGB) HSL {
	rf := c.R / 255.0
	gf := c.G / 255.0
	bf := c.B / 255.0

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))

	l := (max + min) / 2.0

	if max == min {
		return HSL{H: 0, S: 0, L: l * 100}
	}

	d := max - min
	var s float64
	if l > 0.5 {
		s = d / (2.0 - max - min)
	} else {
		s = d / (max + min)
	}

	var h float64
	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = 2.0 + (bf-rf)/d
	case bf:
		h = 4.0 + (rf-gf)/d
	}
	h /= 6

	return HSL{
		H: h * 360,
		S: s * 100,
		L: l * 100,
	}
}

// HSLToRGB converts an HSL color to RGB with channels scaled to 0-255.
//
// The result is not rounded; RGBToHex rounds when encoding.
func HSLToRGB(c HSL) RGB {
	h := c.H / 360
	s := c.S / 100
	l := c.L / 100

	if s == 0 {
		return RGB{R: l * 255, G: l * 255, B: l * 255}
	}

	var q float64
	if l < 0.5 {
		q = l * (1 + s)
	} else {
		q = l + s - l*s
	}
	p := 2*l - q

	return RGB{
		R: hueToChannel(p, q, h+1.0/3.0) * 255,
		G: hueToChannel(p, q, h) * 255,
		B: hueToChannel(p, q, h-1.0/3.0) * 255,
	}
}

// hueToChannel evaluates one channel of the HSL->RGB piecewise function.
// t is wrapped into [0,1] before one of four linear segments is selected.
func hueToChannel(p, q, t float64) float64 {
	if t < 0 {
		t++
	}
	if t > 1 {
		t--
	}
	switch {
	case t < 1.0/6.0:
		return p + (q-p)*6*t
	case t < 1.0/2.0:
		return q
	case t < 2.0/3.0:
		return p + (q-p)*(2.0/3.0-t)*6
	}
	return p
}
