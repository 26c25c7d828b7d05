package parallel

import "testing"

func TestSplit(t *testing.T) {
	tests := []struct {
		name      string
		total     int
		size      int
		wantSpans int
		wantLast  int
	}{
		{"exact", 100, 10, 10, 10},
		{"remainder", 105, 10, 11, 5},
		{"single", 5, 10, 1, 5},
		{"default size", DefaultSpanSize*2 + 1, 0, 3, 1},
		{"empty", 0, 10, 0, 0},
		{"negative", -3, 10, 0, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			spans := Split(tt.total, tt.size)
			if len(spans) != tt.wantSpans {
				t.Fatalf("len(spans) = %d, want %d", len(spans), tt.wantSpans)
			}
			if len(spans) == 0 {
				return
			}
			if got := spans[len(spans)-1].Len(); got != tt.wantLast {
				t.Errorf("last span len = %d, want %d", got, tt.wantLast)
			}
		})
	}
}

func TestSplit_CoversRangeOnce(t *testing.T) {
	const total = 1200 * 7
	spans := Split(total, 333)

	next := 0
	for i, s := range spans {
		if s.Start != next {
			t.Fatalf("span %d starts at %d, want %d", i, s.Start, next)
		}
		if s.Len() <= 0 {
			t.Fatalf("span %d is empty", i)
		}
		next = s.End
	}
	if next != total {
		t.Errorf("spans end at %d, want %d", next, total)
	}
}
