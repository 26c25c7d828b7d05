package image

import (
	"image"

	xdraw "golang.org/x/image/draw"
)

// Fit scales src down to fit inside maxW x maxH, keeping its aspect ratio.
// Images that already fit are copied at their original size.
// Returns nil if either limit is not positive.
func Fit(src image.Image, maxW, maxH int) *image.RGBA {
	if maxW <= 0 || maxH <= 0 {
		return nil
	}

	sb := src.Bounds()
	w, h := sb.Dx(), sb.Dy()
	if w <= maxW && h <= maxH {
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		xdraw.Draw(dst, dst.Bounds(), src, sb.Min, xdraw.Src)
		return dst
	}

	// Compare maxW/w against maxH/h without floating point.
	if maxW*h <= maxH*w {
		h = max(1, h*maxW/w)
		w = maxW
	} else {
		w = max(1, w*maxH/h)
		h = maxH
	}

	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	xdraw.ApproxBiLinear.Scale(dst, dst.Bounds(), src, sb, xdraw.Src, nil)
	return dst
}
