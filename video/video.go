// Package video assembles numbered frame images into a video file by
// running an external ffmpeg process.
package video

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strconv"

	"github.com/gogpu/mandel"
)

// Encoder errors.
var (
	// ErrEncoderLaunch is returned when the encoder process cannot be started,
	// typically because the binary is not installed.
	ErrEncoderLaunch = errors.New("video: failed to launch encoder")

	// ErrEncoderFailed is returned when the encoder exits with a nonzero status.
	ErrEncoderFailed = errors.New("video: encoder failed")
)

// Runner executes an external command and returns its standard output.
// A process that ran but exited unsuccessfully is reported as *exec.ExitError.
type Runner interface {
	Run(ctx context.Context, name string, args []string) ([]byte, error)
}

// RunnerFunc adapts a function to the Runner interface.
type RunnerFunc func(ctx context.Context, name string, args []string) ([]byte, error)

// Run implements Runner.
func (f RunnerFunc) Run(ctx context.Context, name string, args []string) ([]byte, error) {
	return f(ctx, name, args)
}

// execRunner runs commands with os/exec.
type execRunner struct{}

func (execRunner) Run(ctx context.Context, name string, args []string) ([]byte, error) {
	return exec.CommandContext(ctx, name, args...).Output()
}

// Encoder turns an image sequence into a video.
//
// The zero value is not usable; start from New and adjust fields.
type Encoder struct {
	// Binary is the encoder executable, looked up in PATH.
	Binary string

	// FrameRate is the output frame rate in frames per second.
	FrameRate int

	// Codec is the ffmpeg video codec name.
	Codec string

	// PixelFormat is the ffmpeg output pixel format. yuv420p keeps the
	// result playable in browsers and most players.
	PixelFormat string

	// Runner executes the encoder. Nil selects os/exec.
	Runner Runner
}

// New returns an Encoder with the default settings:
// ffmpeg, 30 fps, libx264, yuv420p.
func New() *Encoder {
	return &Encoder{
		Binary:      "ffmpeg",
		FrameRate:   30,
		Codec:       "libx264",
		PixelFormat: "yuv420p",
	}
}

// Args returns the encoder arguments for reading frames matching pattern,
// numbered from startNumber, into output. Existing output is overwritten.
func (e *Encoder) Args(pattern string, startNumber int, output string) []string {
	args := []string{"-y", "-framerate", strconv.Itoa(e.FrameRate)}
	if startNumber != 0 {
		args = append(args, "-start_number", strconv.Itoa(startNumber))
	}
	return append(args,
		"-i", pattern,
		"-c:v", e.Codec,
		"-pix_fmt", e.PixelFormat,
		output,
	)
}

// Assemble runs the encoder over the frames matching pattern and blocks
// until it exits. It returns the encoder's standard output.
//
// pattern is a printf-style file pattern such as frames/mandelbrot_set_%04d.png,
// and startNumber is the index of the first frame.
func (e *Encoder) Assemble(ctx context.Context, pattern string, startNumber int, output string) ([]byte, error) {
	if e.FrameRate <= 0 {
		return nil, fmt.Errorf("video: invalid frame rate %d", e.FrameRate)
	}

	runner := e.Runner
	if runner == nil {
		runner = execRunner{}
	}

	args := e.Args(pattern, startNumber, output)
	log := mandel.Logger()
	log.Debug("running encoder", "binary", e.Binary, "args", args)

	out, err := runner.Run(ctx, e.Binary, args)
	if err != nil {
		var exitErr *exec.ExitError
		switch {
		case errors.As(err, &exitErr):
			return out, fmt.Errorf("%w: %s: %v%s", ErrEncoderFailed, e.Binary, err, lastLine(exitErr.Stderr))
		case ctx.Err() != nil:
			return out, fmt.Errorf("video: %s: %w", e.Binary, ctx.Err())
		default:
			return out, fmt.Errorf("%w: %s: %w", ErrEncoderLaunch, e.Binary, err)
		}
	}

	log.Info("video assembled", "output", output, "fps", e.FrameRate, "codec", e.Codec)
	return out, nil
}

// lastLine returns the final non-empty line of the encoder's stderr,
// formatted as an error suffix.
func lastLine(stderr []byte) string {
	stderr = bytes.TrimSpace(stderr)
	if len(stderr) == 0 {
		return ""
	}
	if i := bytes.LastIndexByte(stderr, '\n'); i >= 0 {
		stderr = stderr[i+1:]
	}
	return ": " + string(bytes.TrimSpace(stderr))
}
