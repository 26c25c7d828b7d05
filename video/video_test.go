package video

import (
	"context"
	"errors"
	"os/exec"
	"slices"
	"strings"
	"testing"
)

func TestEncoder_Args(t *testing.T) {
	e := New()

	tests := []struct {
		name  string
		start int
		want  []string
	}{
		{
			name:  "from zero",
			start: 0,
			want: []string{"-y", "-framerate", "30", "-i", "frames/mandelbrot_set_%04d.png",
				"-c:v", "libx264", "-pix_fmt", "yuv420p", "out.mp4"},
		},
		{
			name:  "offset start",
			start: 40,
			want: []string{"-y", "-framerate", "30", "-start_number", "40", "-i", "frames/mandelbrot_set_%04d.png",
				"-c:v", "libx264", "-pix_fmt", "yuv420p", "out.mp4"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := e.Args("frames/mandelbrot_set_%04d.png", tt.start, "out.mp4")
			if !slices.Equal(got, tt.want) {
				t.Errorf("Args() =\n  %q\nwant\n  %q", got, tt.want)
			}
		})
	}
}

func TestEncoder_AssembleRunsBinary(t *testing.T) {
	var gotName string
	var gotArgs []string

	e := New()
	e.Binary = "/opt/ffmpeg/bin/ffmpeg"
	e.FrameRate = 24
	e.Runner = RunnerFunc(func(_ context.Context, name string, args []string) ([]byte, error) {
		gotName, gotArgs = name, args
		return []byte("done"), nil
	})

	out, err := e.Assemble(context.Background(), "f_%04d.bmp", 0, "zoom.mp4")
	if err != nil {
		t.Fatalf("Assemble: %v", err)
	}
	if string(out) != "done" {
		t.Errorf("stdout = %q, want %q", out, "done")
	}
	if gotName != "/opt/ffmpeg/bin/ffmpeg" {
		t.Errorf("ran %q", gotName)
	}
	if !slices.Equal(gotArgs, e.Args("f_%04d.bmp", 0, "zoom.mp4")) || gotArgs[2] != "24" {
		t.Errorf("args = %q", gotArgs)
	}
}

func TestEncoder_AssembleExitFailure(t *testing.T) {
	e := New()
	e.Runner = RunnerFunc(func(context.Context, string, []string) ([]byte, error) {
		return nil, &exec.ExitError{Stderr: []byte("frame= 0\nUnknown encoder 'libx264'\n")}
	})

	_, err := e.Assemble(context.Background(), "f_%04d.png", 0, "out.mp4")
	if !errors.Is(err, ErrEncoderFailed) {
		t.Fatalf("Assemble error = %v, want ErrEncoderFailed", err)
	}
	if !strings.Contains(err.Error(), "Unknown encoder 'libx264'") {
		t.Errorf("error %q does not carry the encoder's last stderr line", err)
	}
}

func TestEncoder_AssembleLaunchFailure(t *testing.T) {
	e := New()
	e.Binary = "mandel-no-such-encoder-binary"

	_, err := e.Assemble(context.Background(), "f_%04d.png", 0, "out.mp4")
	if !errors.Is(err, ErrEncoderLaunch) {
		t.Fatalf("Assemble error = %v, want ErrEncoderLaunch", err)
	}
	if !errors.Is(err, exec.ErrNotFound) {
		t.Errorf("Assemble error = %v, want it to wrap exec.ErrNotFound", err)
	}
}

func TestEncoder_AssembleCanceled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	e := New()
	e.Runner = RunnerFunc(func(ctx context.Context, _ string, _ []string) ([]byte, error) {
		return nil, ctx.Err()
	})

	_, err := e.Assemble(ctx, "f_%04d.png", 0, "out.mp4")
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Assemble error = %v, want context.Canceled", err)
	}
	if errors.Is(err, ErrEncoderLaunch) {
		t.Errorf("canceled run reported as launch failure: %v", err)
	}
}

func TestEncoder_InvalidFrameRate(t *testing.T) {
	e := New()
	e.FrameRate = 0
	e.Runner = RunnerFunc(func(context.Context, string, []string) ([]byte, error) {
		t.Fatal("runner called with invalid frame rate")
		return nil, nil
	})
	if _, err := e.Assemble(context.Background(), "f_%04d.png", 0, "out.mp4"); err == nil {
		t.Error("Assemble with zero frame rate succeeded")
	}
}
