package mandel

import "math"

// Bailout is the squared escape radius: a trajectory with |z|² > Bailout has
// left the disk of radius 2 and will diverge.
const Bailout = 4.0

// Evaluator computes an escape-time value for c with at most maxIter steps.
// It must return maxIter for points assumed to be in the set and be safe for
// concurrent use.
type Evaluator func(c Point, maxIter int) float64

// EscapeTime returns the continuous (smoothed) escape time of c.
//
// Starting from z = 0 it applies z ← z² + c and stops at the first
// iteration i whose result has |z|² > 4, returning
//
//	i − log2(log2(|z|²)) / 2
//
// which interpolates between integer iteration counts and removes banding.
// The value is always below i, so escaping points stay under maxIter.
// Points that do not escape within maxIter steps return maxIter.
//
// EscapeTime is a pure function; NaN or infinite inputs are not handled
// specially.
func EscapeTime(c Point, maxIter int) float64 {
	var x, y float64
	for i := range maxIter {
		x, y = x*x-y*y+c.Re, 2*x*y+c.Im
		if mag := x*x + y*y; mag > Bailout {
			return float64(i) - math.Log2(math.Log2(mag))/2
		}
	}
	return float64(maxIter)
}

// EscapeCount returns the integer iteration at which c escapes, or maxIter.
// It produces visible bands between iteration counts; prefer EscapeTime
// unless the banded look is wanted.
func EscapeCount(c Point, maxIter int) float64 {
	var x, y float64
	for i := range maxIter {
		x, y = x*x-y*y+c.Re, 2*x*y+c.Im
		if x*x+y*y > Bailout {
			return float64(i)
		}
	}
	return float64(maxIter)
}
