package mandel

import (
	"fmt"
	"math"
)

// Viewport is the rectangle of the complex plane that is rendered into an
// image. Real parts run along x, imaginary parts along y.
type Viewport struct {
	XMin, XMax float64
	YMin, YMax float64
}

// CenteredViewport returns the viewport spanning center ± (halfW, halfH).
func CenteredViewport(center Point, halfW, halfH float64) Viewport {
	return Viewport{
		XMin: center.Re - halfW,
		XMax: center.Re + halfW,
		YMin: center.Im - halfH,
		YMax: center.Im + halfH,
	}
}

// Validate reports ErrInvalidViewport unless XMax > XMin and YMax > YMin.
// NaN bounds fail both comparisons and are rejected too.
func (v Viewport) Validate() error {
	if !(v.XMax > v.XMin) || !(v.YMax > v.YMin) {
		return fmt.Errorf("%w: %v", ErrInvalidViewport, v)
	}
	return nil
}

// Width returns XMax − XMin.
func (v Viewport) Width() float64 { return v.XMax - v.XMin }

// Height returns YMax − YMin.
func (v Viewport) Height() float64 { return v.YMax - v.YMin }

// Center returns the midpoint of the viewport.
func (v Viewport) Center() Point {
	return Point{Re: (v.XMin + v.XMax) / 2, Im: (v.YMin + v.YMax) / 2}
}

// PixelToPoint maps pixel (x, y) of a width x height image onto the plane.
//
// Pixel (0, 0) lands exactly on (XMin, YMin) and the mapping is linear with
// no half-pixel offset, so (width, height) lands on (XMax, YMax) up to
// rounding. It is exact only when the extent divided by the size is exact,
// as with power-of-two sizes. Rendered
// pixels therefore sample their top-left corner.
func (v Viewport) PixelToPoint(x, y, width, height int) Point {
	scaleX := (v.XMax - v.XMin) / float64(width)
	scaleY := (v.YMax - v.YMin) / float64(height)
	return Point{
		Re: float64(x)*scaleX + v.XMin,
		Im: float64(y)*scaleY + v.YMin,
	}
}

// Zoom shrinks the viewport by factor around its own midpoint.
func (v Viewport) Zoom(factor float64) Viewport {
	c := v.Center()
	w := v.Width() / factor
	h := v.Height() / factor
	return Viewport{
		XMin: c.Re - w/2,
		XMax: c.Re + w/2,
		YMin: c.Im - h/2,
		YMax: c.Im + h/2,
	}
}

// precisionULPs is how many float64 steps apart neighbouring pixels must be
// for the image to still resolve detail.
const precisionULPs = 4

// PrecisionExhausted reports whether adjacent pixels of a width x height
// rendering are so close that float64 can no longer tell them apart.
// Past this depth a zoom renders blocky artifacts instead of new detail.
func (v Viewport) PrecisionExhausted(width, height int) bool {
	spacing := math.Min(v.Width()/float64(width), v.Height()/float64(height))

	mag := math.Max(math.Max(math.Abs(v.XMin), math.Abs(v.XMax)),
		math.Max(math.Abs(v.YMin), math.Abs(v.YMax)))
	ulp := math.Nextafter(mag, math.Inf(1)) - mag

	return spacing < precisionULPs*ulp
}

// String formats the bounds with full float64 precision.
func (v Viewport) String() string {
	return fmt.Sprintf("x[%.17g, %.17g] y[%.17g, %.17g]", v.XMin, v.XMax, v.YMin, v.YMax)
}
