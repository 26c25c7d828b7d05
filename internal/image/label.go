package image

import (
	"image"
	"image/color"
	"image/draw"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// labelPadding is the gap in pixels between the label box edge and the text.
const labelPadding = 3

// DrawLabel stamps text onto dst inside an opaque box whose top-left corner
// is at (x, y). The box is clipped to dst's bounds. It returns the box
// rectangle before clipping.
//
// The face is the fixed 7x13 bitmap font, so labels look the same on every
// frame and every machine.
func DrawLabel(dst draw.Image, x, y int, text string, fg, bg color.Color) image.Rectangle {
	face := basicfont.Face7x13
	metrics := face.Metrics()

	width := font.MeasureString(face, text).Ceil()
	height := metrics.Height.Ceil()
	box := image.Rect(x, y, x+width+2*labelPadding, y+height+2*labelPadding)

	draw.Draw(dst, box.Intersect(dst.Bounds()), image.NewUniform(bg), image.Point{}, draw.Src)

	d := font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(x+labelPadding, y+labelPadding+metrics.Ascent.Ceil()),
	}
	d.DrawString(text)

	return box
}
