package mandel

import (
	"fmt"

	"github.com/gogpu/mandel/internal/parallel"
)

// Renderer draws frames of the Mandelbrot set on a pool of worker goroutines.
//
// Every pixel is independent: the flat pixel range is cut into disjoint
// spans and each span task writes only its own bytes of the output buffer,
// so no locking is needed and the output does not depend on scheduling.
//
// A Renderer is safe for concurrent use. Close releases its workers.
type Renderer struct {
	pool      *parallel.WorkerPool
	evaluator Evaluator
	spanSize  int
}

// NewRenderer starts a Renderer.
func NewRenderer(opts ...RendererOption) *Renderer {
	o := defaultRendererOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Renderer{
		pool:      parallel.NewWorkerPool(o.workers),
		evaluator: o.evaluator,
		spanSize:  o.spanSize,
	}
}

// Workers returns the number of render goroutines.
func (r *Renderer) Workers() int {
	return r.pool.Workers()
}

// Render computes a width x height image of viewport vp.
//
// Each pixel is mapped through Viewport.PixelToPoint, evaluated with at most
// maxIter iterations, normalized by maxIter and colored with p. A nil
// palette selects SinebowPalette.
func (r *Renderer) Render(width, height, maxIter int, vp Viewport, p Palette) (*PixelBuffer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	buf := NewPixelBuffer(width, height)
	if err := r.RenderInto(buf, maxIter, vp, p); err != nil {
		return nil, err
	}
	return buf, nil
}

// RenderInto is like Render but overwrites every pixel of an existing
// buffer, whose size sets the frame dimensions.
func (r *Renderer) RenderInto(buf *PixelBuffer, maxIter int, vp Viewport, p Palette) error {
	if buf == nil || buf.width <= 0 || buf.height <= 0 {
		return fmt.Errorf("%w: empty buffer", ErrInvalidDimensions)
	}
	if maxIter <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, maxIter)
	}
	if err := vp.Validate(); err != nil {
		return err
	}
	if p == nil {
		p = SinebowPalette{}
	}

	spans := parallel.Split(buf.width*buf.height, r.spanSize)

	tasks := make([]func(), len(spans))
	for i, s := range spans {
		tasks[i] = func() {
			r.renderSpan(buf, s, maxIter, vp, p)
		}
	}
	r.pool.Run(tasks)
	return nil
}

// renderSpan fills pixels [s.Start, s.End) of buf.
func (r *Renderer) renderSpan(buf *PixelBuffer, s parallel.Span, maxIter int, vp Viewport, p Palette) {
	w, h := buf.width, buf.height
	scale := float64(maxIter)
	out := buf.data[s.Start*3 : s.End*3]

	for i := s.Start; i < s.End; i++ {
		c := vp.PixelToPoint(i%w, i/w, w, h)
		col := p.At(r.evaluator(c, maxIter) / scale)

		o := (i - s.Start) * 3
		out[o+0] = col.R
		out[o+1] = col.G
		out[o+2] = col.B
	}
}

// Close stops the worker goroutines. After Close, Render still works but
// runs every span on the calling goroutine.
func (r *Renderer) Close() {
	r.pool.Close()
}

// Render draws a single frame on a temporary Renderer with default options.
// Use NewRenderer to render many frames on the same workers.
func Render(width, height, maxIter int, vp Viewport, p Palette) (*PixelBuffer, error) {
	r := NewRenderer()
	defer r.Close()
	return r.Render(width, height, maxIter, vp, p)
}
