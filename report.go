package mandel

import (
	"fmt"
	"math"
	"time"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// FrameReport describes a frame that has been handed to the sink.
type FrameReport struct {
	// Index is the frame number.
	Index int

	// Viewport is the region the frame shows.
	Viewport Viewport

	// Magnification is the zoom relative to frame 0.
	Magnification float64

	// Elapsed covers rendering, post-processing and saving the frame.
	Elapsed time.Duration

	// PrecisionExhausted is set once float64 can no longer separate
	// neighbouring pixels; deeper frames show artifacts.
	PrecisionExhausted bool
}

// printer formats operator-facing numbers with digit grouping.
var printer = message.NewPrinter(language.English)

// String formats the report as a single line for operators, e.g.
//
//	frame 0042 saved in 0.31s  ×1,234,567  x[-1.75, -1.74] y[...]
func (r FrameReport) String() string {
	s := fmt.Sprintf("frame %04d saved in %.2fs  ×%s  %v",
		r.Index, r.Elapsed.Seconds(), r.zoom(), r.Viewport)
	if r.PrecisionExhausted {
		s += "  (float64 precision exhausted)"
	}
	return s
}

// label is the short text stamped onto frames by WithLabels.
// It stays within ASCII, which is all the bitmap label font covers.
func (r FrameReport) label() string {
	return fmt.Sprintf("frame %04d  zoom %sx", r.Index, r.zoom())
}

// zoom formats the magnification with digit grouping, e.g. "1,234,567".
// Magnifications beyond int64 switch to exponent notation.
func (r FrameReport) zoom() string {
	if r.Magnification < 1e18 {
		return printer.Sprintf("%d", int64(math.Round(r.Magnification)))
	}
	return fmt.Sprintf("%.3g", r.Magnification)
}
