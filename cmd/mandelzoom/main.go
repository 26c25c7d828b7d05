// Command mandelzoom renders a Mandelbrot zoom sequence to numbered image
// files and assembles them into a video with ffmpeg.
//
// Usage:
//
//	mandelzoom [flags] <max_iter> <zoom_start> <zoom_end> <zoom_factor>
//
// For example, 300 frames at 1.05x per frame, 1000 iterations per pixel:
//
//	mandelzoom 1000 0 300 1.05
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/gogpu/mandel"
	"github.com/gogpu/mandel/preview"
	"github.com/gogpu/mandel/stream"
	"github.com/gogpu/mandel/video"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

// run executes the command and returns the process exit status.
func run(args []string, stdout, stderr io.Writer) int {
	cfg, err := parseArgs(args, stderr)
	switch {
	case errors.Is(err, flag.ErrHelp):
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "mandelzoom: %v\n%s\n", err, usageLine)
		return 1
	}

	level := slog.LevelWarn
	if cfg.verbose {
		level = slog.LevelDebug
	}
	mandel.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := zoom(ctx, cfg, stdout); err != nil {
		fmt.Fprintf(stderr, "mandelzoom: %v\n", err)
		return 1
	}
	return 0
}

// zoom renders the sequence, then runs the optional video, stream and
// preview stages.
func zoom(ctx context.Context, cfg *config, stdout io.Writer) error {
	files, err := mandel.NewFileSink(cfg.dir, cfg.prefix, cfg.format)
	if err != nil {
		return err
	}
	sinks := []mandel.FrameSink{files}

	if cfg.serve != "" {
		hub := stream.NewHub()
		shutdown, err := serve(cfg.serve, hub, stdout)
		if err != nil {
			return err
		}
		defer shutdown()
		sinks = append(sinks, hub)
	}

	var last *mandel.PixelBuffer
	if cfg.preview {
		sinks = append(sinks, mandel.FrameSinkFunc(func(_ int, buf *mandel.PixelBuffer) error {
			last = buf.Clone()
			return nil
		}))
	}

	renderer := mandel.NewRenderer(mandel.WithWorkers(cfg.workers), mandel.WithEvaluator(cfg.evaluator))
	defer renderer.Close()

	seq := mandel.NewSequencer(mandel.MultiSink(sinks...),
		mandel.WithRenderer(renderer),
		mandel.WithInvert(cfg.invert),
		mandel.WithLabels(cfg.label),
		mandel.WithReporter(func(r mandel.FrameReport) { fmt.Fprintln(stdout, r) }),
	)

	start := time.Now()
	if err := seq.Run(ctx, cfg.spec, cfg.width, cfg.height, cfg.maxIter, cfg.palette); err != nil {
		return err
	}
	elapsed := time.Since(start)
	frames := cfg.spec.Frames()
	fmt.Fprintf(stdout, "%d frames completed in %v (%.1f ms per frame)\n",
		frames, elapsed.Round(time.Millisecond), float64(elapsed.Milliseconds())/float64(frames))

	if cfg.video != "" {
		enc := video.New()
		enc.Binary = cfg.ffmpeg
		enc.FrameRate = cfg.fps
		out, err := enc.Assemble(ctx, files.Pattern(), cfg.spec.Start, cfg.video)
		if err != nil {
			return err
		}
		if len(out) > 0 {
			fmt.Fprintf(stdout, "encoder output: %s\n", out)
		}
		fmt.Fprintf(stdout, "video written to %s\n", cfg.video)
	}

	if last != nil {
		if err := preview.Show(last); err != nil {
			return err
		}
	}
	return nil
}

// serve starts streaming hub on addr and returns a function that disconnects
// clients and stops the server.
func serve(addr string, hub *stream.Hub, stdout io.Writer) (func(), error) {
	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("stream: %w", err)
	}

	srv := &http.Server{
		Handler:           stream.Handler(hub),
		ReadHeaderTimeout: 5 * time.Second,
	}
	go func() {
		if err := srv.Serve(ln); err != nil && !errors.Is(err, http.ErrServerClosed) {
			mandel.Logger().Error("stream server stopped", "err", err)
		}
	}()
	fmt.Fprintf(stdout, "streaming frames at http://%s/\n", ln.Addr())

	return func() {
		hub.Close()
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = srv.Shutdown(ctx)
	}, nil
}
