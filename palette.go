package mandel

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	icolor "github.com/gogpu/mandel/internal/color"
)

// RGB is an opaque 8-bit color.
type RGB struct {
	R, G, B uint8
}

// RGBA implements color.Color.
func (c RGB) RGBA() (r, g, b, a uint32) {
	return color.RGBA{R: c.R, G: c.G, B: c.B, A: 0xff}.RGBA()
}

// Palette maps a normalized escape ratio to a color.
//
// The ratio is escape time divided by the iteration cap: 1 means the point
// is in the set and smaller values escaped sooner. Smoothed escape times can
// dip slightly below zero for points far outside the set, so
// implementations must tolerate ratios outside [0, 1]. Palettes are shared
// by all render workers and must be safe for concurrent use.
type Palette interface {
	At(ratio float64) RGB
}

// LinearPalette fades from cyan (ratio 0) to red (ratio 1):
//
//	r = ⌊255·ratio⌋, g = ⌊255·(1−ratio)⌋, b = ⌊255·(1−|ratio|)⌋
//
// Channels are clamped to [0, 255] and truncated, never rounded.
type LinearPalette struct{}

// At implements Palette.
func (LinearPalette) At(ratio float64) RGB {
	return RGB{
		R: truncByte(255 * ratio),
		G: truncByte(255 * (1 - ratio)),
		B: truncByte(255 * (1 - math.Abs(ratio))),
	}
}

// SinebowPalette cycles through the sinebow rainbow four times between
// ratio 0 and 1: the gradient is sampled at (4·ratio) mod 1.
type SinebowPalette struct{}

// At implements Palette.
func (SinebowPalette) At(ratio float64) RGB {
	r, g, b := icolor.SinebowFast(4 * ratio)
	return RGB{R: r, G: g, B: b}
}

// ClassicPalette fades from blue (ratio 0) to white (ratio 1) through
// (t, t, 255−t) with t = ⌊255·ratio⌋. It pairs well with EscapeCount.
type ClassicPalette struct{}

// At implements Palette.
func (ClassicPalette) At(ratio float64) RGB {
	t := truncByte(255 * ratio)
	return RGB{R: t, G: t, B: 255 - t}
}

// truncByte clamps v to [0, 255] and truncates it toward zero.
// Go leaves out-of-range float to uint8 conversions implementation-defined.
func truncByte(v float64) uint8 {
	switch {
	case v >= 255:
		return 255
	case v > 0:
		return uint8(v)
	default:
		// Negative and NaN.
		return 0
	}
}

// PaletteNames lists the names accepted by PaletteByName.
var PaletteNames = []string{"sinebow", "linear", "classic"}

// PaletteByName returns the palette registered under name.
func PaletteByName(name string) (Palette, error) {
	switch strings.ToLower(name) {
	case "sinebow":
		return SinebowPalette{}, nil
	case "linear":
		return LinearPalette{}, nil
	case "classic":
		return ClassicPalette{}, nil
	default:
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownPalette, name,
			strings.Join(PaletteNames, ", "))
	}
}
