// Package mandel renders the Mandelbrot set and zoom sequences of it.
//
// # Overview
//
// A frame is produced by mapping every pixel onto a Viewport of the complex
// plane, computing the point's escape time, normalizing it by the iteration
// cap and coloring it with a Palette. Pixels are independent, so a Renderer
// spreads them over a pool of worker goroutines. A Sequencer drives the
// Renderer across a ZoomSpec and writes each frame to a FrameSink, usually a
// FileSink whose numbered files are assembled into a video by package video.
// Package stream broadcasts frames to browsers while they render, and
// package preview shows a frame in the terminal.
//
// # Quick Start
//
//	import "github.com/gogpu/mandel"
//
//	// Render one frame and save it
//	buf, err := mandel.Render(800, 800, 500, mandel.SeahorseValley, mandel.SinebowPalette{})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	err = mandel.SaveImage("seahorse.png", buf)
//
//	// Render a zoom sequence into frames/
//	sink, _ := mandel.NewFileSink("frames", "", "png")
//	spec := mandel.ZoomSpec{Center: mandel.Pt(-1.7499984109937408, 0), HalfExtent: 2, Factor: 1.1, End: 300}
//	err = mandel.NewSequencer(sink).Run(ctx, spec, 1200, 1200, 1000, mandel.SinebowPalette{})
//
// # Coordinate System
//
// Pixel (0, 0) is the top-left corner of the image and maps exactly onto
// (XMin, YMin). x grows to the right along the real axis, y grows downward
// along the imaginary axis. Pixels sample their top-left corner; there is no
// half-pixel offset. The far corner (width, height) reaches (XMax, YMax) up
// to floating-point rounding.
//
// # Precision
//
// All arithmetic is float64. Zoom centers given with more digits are
// rounded, and once neighbouring pixels are only a few float64 steps apart
// (around 1e13x magnification near |c| ≈ 2) frames degrade into blocks. The
// Sequencer reports this point through FrameReport.PrecisionExhausted and a
// warning log; it does not stop the run.
package mandel
