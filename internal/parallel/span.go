// Package parallel provides the data-parallel execution layer of the renderer.
//
// A frame is a flat range of pixel indices. Split cuts that range into
// contiguous, disjoint spans; each span is rendered by one task, so every task
// owns its own bytes of the output buffer and no locking is needed. The
// WorkerPool runs the tasks across GOMAXPROCS goroutines with work stealing.
package parallel

// DefaultSpanSize is the number of pixels per span when the caller does not
// choose one. 4096 pixels keep a span's output (12KB of RGB) inside L1 while
// still giving a 1200x1200 frame several hundred tasks to balance.
const DefaultSpanSize = 4096

// Span is a half-open range [Start, End) of flat pixel indices.
type Span struct {
	Start int
	End   int
}

// Len returns the number of pixels in the span.
func (s Span) Len() int {
	return s.End - s.Start
}

// Split partitions [0, total) into consecutive spans of at most size pixels.
// The last span is shorter when total is not a multiple of size.
// A non-positive size selects DefaultSpanSize.
func Split(total, size int) []Span {
	if total <= 0 {
		return nil
	}
	if size <= 0 {
		size = DefaultSpanSize
	}

	spans := make([]Span, 0, (total+size-1)/size)
	for start := 0; start < total; start += size {
		end := start + size
		if end > total {
			end = total
		}
		spans = append(spans, Span{Start: start, End: end})
	}
	return spans
}
