package image

import (
	"image"
	"image/color"
	"testing"
)

func TestDrawLabel(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 200, 60))
	gray := color.RGBA{10, 20, 30, 255}
	for i := 0; i < len(dst.Pix); i += 4 {
		dst.Pix[i], dst.Pix[i+1], dst.Pix[i+2], dst.Pix[i+3] = gray.R, gray.G, gray.B, gray.A
	}

	fg := color.RGBA{255, 255, 255, 255}
	bg := color.RGBA{0, 0, 0, 255}
	box := DrawLabel(dst, 4, 8, "frame 0042", fg, bg)

	if box.Min != image.Pt(4, 8) {
		t.Errorf("box.Min = %v, want (4,8)", box.Min)
	}
	// 10 glyphs of the 7px face plus padding on both sides.
	if box.Dx() != 10*7+2*labelPadding {
		t.Errorf("box width = %d, want %d", box.Dx(), 10*7+2*labelPadding)
	}

	var foreground, background int
	for y := range 60 {
		for x := range 200 {
			c := dst.RGBAAt(x, y)
			inside := image.Pt(x, y).In(box)
			switch {
			case !inside && c != gray:
				t.Fatalf("pixel (%d,%d) outside the label changed to %v", x, y, c)
			case inside && c == fg:
				foreground++
			case inside && c == bg:
				background++
			}
		}
	}
	if foreground == 0 {
		t.Error("label drew no text pixels")
	}
	if background == 0 {
		t.Error("label drew no box pixels")
	}
}

func TestDrawLabel_Clipped(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 20, 10))

	// Must not panic when the box runs past the image.
	box := DrawLabel(dst, 10, 5, "overflowing label", color.White, color.Black)
	if box.In(dst.Bounds()) {
		t.Errorf("box %v should extend past %v", box, dst.Bounds())
	}
}
