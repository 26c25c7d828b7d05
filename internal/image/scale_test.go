package image

import (
	"image"
	"testing"
)

func TestFit(t *testing.T) {
	tests := []struct {
		name       string
		w, h       int
		maxW, maxH int
		wantW      int
		wantH      int
	}{
		{"square into wide", 100, 100, 80, 40, 40, 40},
		{"square into tall", 100, 100, 30, 90, 30, 30},
		{"wide", 200, 100, 50, 50, 50, 25},
		{"already fits", 10, 8, 80, 40, 10, 8},
		{"tiny result", 1000, 1, 10, 10, 10, 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := image.NewRGBA(image.Rect(0, 0, tt.w, tt.h))
			got := Fit(src, tt.maxW, tt.maxH)
			if got.Bounds().Dx() != tt.wantW || got.Bounds().Dy() != tt.wantH {
				t.Errorf("Fit(%dx%d, %d, %d) = %dx%d, want %dx%d",
					tt.w, tt.h, tt.maxW, tt.maxH,
					got.Bounds().Dx(), got.Bounds().Dy(), tt.wantW, tt.wantH)
			}
		})
	}
}

func TestFit_InvalidLimits(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	if Fit(src, 0, 10) != nil || Fit(src, 10, -1) != nil {
		t.Error("Fit with non-positive limits should return nil")
	}
}

func TestFit_CopiesExactly(t *testing.T) {
	src := image.NewRGBA(image.Rect(2, 3, 5, 5))
	for i := range src.Pix {
		src.Pix[i] = uint8(i * 7)
	}

	got := Fit(src, 10, 10)
	if got.Bounds() != image.Rect(0, 0, 3, 2) {
		t.Fatalf("bounds = %v, want 3x2 at origin", got.Bounds())
	}
	for y := range 2 {
		for x := range 3 {
			if got.RGBAAt(x, y) != src.RGBAAt(x+2, y+3) {
				t.Errorf("pixel (%d,%d) = %v, want %v", x, y, got.RGBAAt(x, y), src.RGBAAt(x+2, y+3))
			}
		}
	}
}
