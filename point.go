package mandel

import "fmt"

// Point is a point of the complex plane, Re + Im·i.
type Point struct {
	Re, Im float64
}

// Pt is a convenience function to create a Point.
func Pt(re, im float64) Point {
	return Point{Re: re, Im: im}
}

// String formats p as "(re, im)" with full float64 precision.
func (p Point) String() string {
	return fmt.Sprintf("(%.17g, %.17g)", p.Re, p.Im)
}
