package mandel

import (
	"fmt"
	"iter"
	"math"
	"strings"
)

// ZoomPolicy selects how the viewport of each frame is derived.
type ZoomPolicy uint8

const (
	// ZoomExponential divides the initial extent by Factor^i around the
	// fixed zoom center. Any frame can be computed directly from its index.
	ZoomExponential ZoomPolicy = iota

	// ZoomRecenter shrinks the previous frame's viewport by Factor around
	// that viewport's own midpoint. Frames must be produced in order.
	ZoomRecenter
)

// String returns the policy name as accepted by ParseZoomPolicy.
func (p ZoomPolicy) String() string {
	switch p {
	case ZoomExponential:
		return "exponential"
	case ZoomRecenter:
		return "recenter"
	default:
		return fmt.Sprintf("ZoomPolicy(%d)", uint8(p))
	}
}

// ParseZoomPolicy parses "exponential" or "recenter".
func ParseZoomPolicy(name string) (ZoomPolicy, error) {
	switch strings.ToLower(name) {
	case "exponential", "exp":
		return ZoomExponential, nil
	case "recenter", "walk":
		return ZoomRecenter, nil
	default:
		return 0, fmt.Errorf("%w: unknown zoom policy %q", ErrInvalidZoom, name)
	}
}

// ZoomSpec describes a zoom sequence: frames [Start, End) converging on
// Center, each Factor times narrower than the one before.
type ZoomSpec struct {
	// Center is the point the zoom converges on.
	Center Point

	// HalfExtent is half the width (and height) of frame 0.
	HalfExtent float64

	// Factor is the per-frame magnification; must be > 1.
	Factor float64

	// Start is the first frame index, End is one past the last.
	Start, End int

	Policy ZoomPolicy
}

// Validate checks that z describes at least one frame.
func (z ZoomSpec) Validate() error {
	switch {
	case !(z.Factor > 1) || math.IsInf(z.Factor, 1):
		return fmt.Errorf("%w: factor %v must be a finite number > 1", ErrInvalidZoom, z.Factor)
	case !(z.HalfExtent > 0) || math.IsInf(z.HalfExtent, 1):
		return fmt.Errorf("%w: half extent %v must be a finite number > 0", ErrInvalidZoom, z.HalfExtent)
	case z.Start < 0:
		return fmt.Errorf("%w: start frame %d is negative", ErrInvalidZoom, z.Start)
	case z.End <= z.Start:
		return fmt.Errorf("%w: empty frame range [%d, %d)", ErrInvalidZoom, z.Start, z.End)
	case z.Policy > ZoomRecenter:
		return fmt.Errorf("%w: %v", ErrInvalidZoom, z.Policy)
	}
	return nil
}

// Frames returns the number of frames in the sequence.
func (z ZoomSpec) Frames() int {
	return max(0, z.End-z.Start)
}

// Magnification returns Factor^i, the zoom of frame i relative to frame 0.
func (z ZoomSpec) Magnification(i int) float64 {
	return math.Pow(z.Factor, float64(i))
}

// ViewportAt returns the viewport of frame i under the exponential policy:
// the initial 2·HalfExtent square divided by Factor^i, centered on Center.
func (z ZoomSpec) ViewportAt(i int) Viewport {
	side := 2 * z.HalfExtent / z.Magnification(i)
	return CenteredViewport(z.Center, side/2, side/2)
}

// Viewports yields (frame index, viewport) for every frame in order,
// following z.Policy.
func (z ZoomSpec) Viewports() iter.Seq2[int, Viewport] {
	return func(yield func(int, Viewport) bool) {
		if z.Policy == ZoomRecenter {
			vp := z.ViewportAt(z.Start)
			for i := z.Start; i < z.End; i++ {
				if !yield(i, vp) {
					return
				}
				vp = vp.Zoom(z.Factor)
			}
			return
		}

		for i := z.Start; i < z.End; i++ {
			if !yield(i, z.ViewportAt(i)) {
				return
			}
		}
	}
}
