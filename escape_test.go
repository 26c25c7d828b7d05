package mandel

import (
	"math"
	"testing"
)

func TestEscapeTime_ImmediateBailout(t *testing.T) {
	for _, c := range []Point{Pt(3, 0), Pt(0, 2.5), Pt(-2.1, 1), Pt(10, -10)} {
		got := EscapeTime(c, 100)
		if got >= 1 {
			t.Errorf("EscapeTime(%v) = %v, want < 1", c, got)
		}
		if math.IsNaN(got) || math.IsInf(got, 0) {
			t.Errorf("EscapeTime(%v) = %v, want finite", c, got)
		}
	}
}

func TestEscapeTime_SmoothFormula(t *testing.T) {
	// c = 3: z1 = 3, |z1|² = 9 escapes at i = 0.
	want := -math.Log2(math.Log2(9)) / 2
	if got := EscapeTime(Pt(3, 0), 10); got != want {
		t.Errorf("EscapeTime(3) = %v, want %v", got, want)
	}

	// c = 1: z = 1, 2, 5 -> |z|² = 25 at i = 2.
	want = 2 - math.Log2(math.Log2(25))/2
	if got := EscapeTime(Pt(1, 0), 10); got != want {
		t.Errorf("EscapeTime(1) = %v, want %v", got, want)
	}
}

func TestEscapeTime_Interior(t *testing.T) {
	interior := []Point{Pt(0, 0), Pt(-1, 0), Pt(-0.1, 0.1), Pt(0.25, 0)}
	for _, c := range interior {
		for _, maxIter := range []int{1, 10, 100, 1000} {
			if got := EscapeTime(c, maxIter); got != float64(maxIter) {
				t.Errorf("EscapeTime(%v, %d) = %v, want %d", c, maxIter, got, maxIter)
			}
		}
	}
}

func TestEscapeTime_Monotonic(t *testing.T) {
	points := []Point{
		Pt(0, 0), Pt(-0.75, 0.1), Pt(0.3, 0.5), Pt(-1.76, 0.01),
		Pt(0.26, 0), Pt(-0.7435, 0.1314), Pt(2, 2),
	}
	caps := []int{10, 50, 200, 1000}

	for _, c := range points {
		prev := EscapeTime(c, caps[0])
		for _, maxIter := range caps[1:] {
			got := EscapeTime(c, maxIter)
			if got < prev {
				t.Errorf("EscapeTime(%v) decreased from %v to %v when cap rose to %d", c, prev, got, maxIter)
			}
			// A point that escaped under the smaller cap is unaffected.
			if prev < float64(caps[0]) && got != prev {
				t.Errorf("EscapeTime(%v) = %v at cap %d, want %v as at smaller cap", c, got, maxIter, prev)
			}
			prev = got
		}
	}
}

func TestEscapeTime_BelowCap(t *testing.T) {
	// Escaping points stay strictly below the cap, so their ratio is < 1.
	for _, c := range []Point{Pt(0.26, 0), Pt(-0.75, 0.01), Pt(-0.75, 0.2)} {
		const maxIter = 5000
		if got := EscapeTime(c, maxIter); got >= maxIter {
			t.Errorf("EscapeTime(%v) = %v, expected escape below %d", c, got, maxIter)
		}
	}
}

func TestEscapeCount(t *testing.T) {
	tests := []struct {
		c    Point
		want float64
	}{
		{Pt(3, 0), 0},
		{Pt(1, 0), 2},
		{Pt(0, 0), 50},
		{Pt(-1, 0), 50},
	}
	for _, tt := range tests {
		if got := EscapeCount(tt.c, 50); got != tt.want {
			t.Errorf("EscapeCount(%v, 50) = %v, want %v", tt.c, got, tt.want)
		}
	}
}

func TestEscapeCount_FloorsEscapeTime(t *testing.T) {
	// The smooth value sits below the integer escape iteration.
	for _, c := range []Point{Pt(-0.75, 0.1), Pt(-0.75, 0.2), Pt(0.26, 0)} {
		count := EscapeCount(c, 1000)
		smooth := EscapeTime(c, 1000)
		if smooth > count || smooth < count-1.5 {
			t.Errorf("c=%v: EscapeTime %v not within (count-1.5, count] for count %v", c, smooth, count)
		}
	}
}

func BenchmarkEscapeTime(b *testing.B) {
	c := Pt(-0.7435, 0.1314)
	for b.Loop() {
		_ = EscapeTime(c, 1000)
	}
}
