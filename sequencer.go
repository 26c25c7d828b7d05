package mandel

import (
	"context"
	"errors"
	"fmt"
	"image/color"
	"time"

	"github.com/gogpu/mandel/internal/image"
)

// Label placement for WithLabels, in pixels from the top-left corner.
const labelInset = 8

// Sequencer renders a zoom sequence frame by frame and hands every frame to
// a FrameSink.
//
// Frames are strictly sequential: frame i+1 is not rendered before frame i
// has been written to the sink, so sinks see indices in increasing order.
// Within a frame all pixels are rendered in parallel.
type Sequencer struct {
	sink FrameSink
	opts sequencerOptions
}

// NewSequencer creates a Sequencer writing to sink.
func NewSequencer(sink FrameSink, opts ...SequencerOption) *Sequencer {
	o := defaultSequencerOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Sequencer{sink: sink, opts: o}
}

// Run renders every frame of spec at width x height with at most maxIter
// iterations per pixel, colored with p.
//
// Each frame is rendered, inverted (unless disabled with WithInvert),
// optionally labeled and written to the sink, then reported. The first
// render or sink error aborts the run; frames already written stay on the
// sink. ctx is checked between frames.
func (s *Sequencer) Run(ctx context.Context, spec ZoomSpec, width, height, maxIter int, p Palette) error {
	if s.sink == nil {
		return errors.New("mandel: sequencer has no frame sink")
	}
	if err := spec.Validate(); err != nil {
		return err
	}
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	if maxIter <= 0 {
		return fmt.Errorf("%w: %d", ErrInvalidIterations, maxIter)
	}

	r := s.opts.renderer
	if r == nil {
		r = NewRenderer()
		defer r.Close()
	}

	log := Logger()
	log.Debug("zoom sequence starting",
		"frames", spec.Frames(), "policy", spec.Policy.String(),
		"size", fmt.Sprintf("%dx%d", width, height), "max_iter", maxIter,
		"workers", r.Workers())

	// Frames are rendered one at a time and sinks must not keep the buffer,
	// so a single buffer serves the whole run.
	buf := NewPixelBuffer(width, height)

	warned := false
	for i, vp := range spec.Viewports() {
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("frame %d: %w", i, err)
		}

		report, err := s.frame(r, buf, spec, i, vp, maxIter, p)
		if err != nil {
			return err
		}

		if report.PrecisionExhausted && !warned {
			log.Warn("float64 precision exhausted; deeper frames will show artifacts",
				"frame", i, "viewport", vp.String())
			warned = true
		}
		log.Info("frame saved", "frame", i, "elapsed", report.Elapsed, "viewport", vp.String())

		if s.opts.reporter != nil {
			s.opts.reporter(report)
		}
	}
	return nil
}

// frame renders, post-processes and saves a single frame.
func (s *Sequencer) frame(r *Renderer, buf *PixelBuffer, spec ZoomSpec, i int, vp Viewport, maxIter int, p Palette) (FrameReport, error) {
	start := time.Now()

	report := FrameReport{
		Index:              i,
		Viewport:           vp,
		Magnification:      spec.Magnification(i),
		PrecisionExhausted: vp.PrecisionExhausted(buf.Width(), buf.Height()),
	}

	if err := r.RenderInto(buf, maxIter, vp, p); err != nil {
		return report, fmt.Errorf("render frame %d: %w", i, err)
	}
	if s.opts.invert {
		buf.Invert()
	}
	if s.opts.labels {
		image.DrawLabel(buf, labelInset, labelInset, report.label(), color.White, color.Black)
	}
	if err := s.sink.WriteFrame(i, buf); err != nil {
		return report, fmt.Errorf("frame %d: %w", i, err)
	}

	report.Elapsed = time.Since(start)
	return report, nil
}
