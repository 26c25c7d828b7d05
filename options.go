package mandel

import "github.com/gogpu/mandel/internal/parallel"

// RendererOption configures a Renderer during creation.
//
// Example:
//
//	// GOMAXPROCS workers, smoothed escape times
//	r := mandel.NewRenderer()
//
//	// Two workers, banded escape counts
//	r := mandel.NewRenderer(mandel.WithWorkers(2), mandel.WithEvaluator(mandel.EscapeCount))
type RendererOption func(*rendererOptions)

type rendererOptions struct {
	workers   int
	evaluator Evaluator
	spanSize  int
}

func defaultRendererOptions() rendererOptions {
	return rendererOptions{
		workers:   0, // GOMAXPROCS
		evaluator: EscapeTime,
		spanSize:  parallel.DefaultSpanSize,
	}
}

// WithWorkers sets the number of render goroutines.
// Zero or a negative value selects GOMAXPROCS.
func WithWorkers(n int) RendererOption {
	return func(o *rendererOptions) {
		o.workers = n
	}
}

// WithEvaluator replaces the escape-time function. A nil evaluator is ignored.
func WithEvaluator(e Evaluator) RendererOption {
	return func(o *rendererOptions) {
		if e != nil {
			o.evaluator = e
		}
	}
}

// WithSpanSize sets how many pixels one parallel task renders.
// Smaller spans balance better, larger spans cost less scheduling.
// A non-positive size selects the default.
func WithSpanSize(pixels int) RendererOption {
	return func(o *rendererOptions) {
		if pixels > 0 {
			o.spanSize = pixels
		}
	}
}

// SequencerOption configures a Sequencer during creation.
type SequencerOption func(*sequencerOptions)

type sequencerOptions struct {
	renderer *Renderer
	invert   bool
	labels   bool
	reporter func(FrameReport)
}

func defaultSequencerOptions() sequencerOptions {
	return sequencerOptions{
		invert: true,
	}
}

// WithRenderer makes the Sequencer render on r instead of creating its own.
// The caller keeps ownership of r and must Close it.
func WithRenderer(r *Renderer) SequencerOption {
	return func(o *sequencerOptions) {
		o.renderer = r
	}
}

// WithInvert controls the photometric inversion applied to every frame
// before it is saved. Inversion is on by default.
func WithInvert(on bool) SequencerOption {
	return func(o *sequencerOptions) {
		o.invert = on
	}
}

// WithLabels stamps each frame with its index and magnification.
func WithLabels(on bool) SequencerOption {
	return func(o *sequencerOptions) {
		o.labels = on
	}
}

// WithReporter registers a function called after every saved frame.
// It runs on the sequencing goroutine, so a slow reporter delays the next
// frame.
func WithReporter(fn func(FrameReport)) SequencerOption {
	return func(o *sequencerOptions) {
		o.reporter = fn
	}
}
