// Package color provides the cyclic sinebow gradient used to color escape
// times, backed by a precomputed lookup table.
//
// The sinebow is a rainbow whose channels are squared sines offset by a third
// of a period, so it wraps smoothly from t=1 back to t=0. Evaluating three
// sines per pixel is the most expensive part of coloring, so the gradient is
// sampled once into an immutable table that every render worker reads
// concurrently without synchronization.
//
// References:
//   - Sinebow: https://basecase.org/env/on-rainbows
package color

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"
)

// sinebowSize is the number of table entries across one period.
// 4096 steps keep the table within one byte of the exact curve.
const sinebowSize = 4096

// sinebowLUT holds 8-bit RGB samples at t = i/sinebowSize.
var sinebowLUT [sinebowSize][3]uint8

func init() {
	for i := range sinebowSize {
		r, g, b := Sinebow(float64(i) / sinebowSize).RGB255()
		sinebowLUT[i] = [3]uint8{r, g, b}
	}
}

// Sinebow returns the exact gradient color at phase t.
// The gradient has period 1, so any finite t is accepted.
func Sinebow(t float64) colorful.Color {
	t = (0.5 - t) * math.Pi
	return colorful.Color{
		R: sq(math.Sin(t)),
		G: sq(math.Sin(t + math.Pi/3)),
		B: sq(math.Sin(t + 2*math.Pi/3)),
	}.Clamped()
}

func sq(v float64) float64 { return v * v }

// SinebowFast returns the 8-bit gradient color at phase t using the lookup
// table. t is wrapped into [0, 1); NaN maps to phase 0.
//
// Example:
//
//	r, g, b := SinebowFast(0) // 255, 64, 64 (red)
func SinebowFast(t float64) (r, g, b uint8) {
	idx := 0
	if !math.IsNaN(t) && !math.IsInf(t, 0) {
		t -= math.Floor(t)
		idx = int(t*sinebowSize+0.5) % sinebowSize
	}
	c := &sinebowLUT[idx]
	return c[0], c[1], c[2]
}

// SinebowSlow is the reference implementation of SinebowFast.
// Used for testing and verification only.
func SinebowSlow(t float64) (r, g, b uint8) {
	return Sinebow(t).RGB255()
}
