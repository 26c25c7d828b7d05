package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/gogpu/mandel"
	intImage "github.com/gogpu/mandel/internal/image"
)

// Zoom center used when -region is not given: a point on the real axis just
// inside the cusp of the period-3 minibrot. The literals carry more digits
// than float64 holds and are rounded on conversion.
const (
	defaultCenterRe = -1.74999841099374081749002483162428393452822172335808534616943930976364725846655540417646727085571962736578151132907961927190726789896685696750162524460775546580822744596887978637416593715319388030232414667046419863755743802804780843375
	defaultCenterIm = -0.00000000000000165712469295418692325810961981279189026504290127375760405334498110850956047368308707050735960323397389547038231194872482690340369921750514146922400928554011996123112902000856666847088788158433995358406779259404221904755

	defaultHalfExtent = 2.0
)

const usageLine = "usage: mandelzoom [flags] <max_iter> <zoom_start> <zoom_end> <zoom_factor>"

// errUsage marks errors that should be followed by the usage text.
var errUsage = errors.New("invalid arguments")

// config is the parsed command line.
type config struct {
	maxIter int
	spec    mandel.ZoomSpec

	width, height int
	palette       mandel.Palette
	evaluator     mandel.Evaluator
	invert        bool
	label         bool
	workers       int

	dir    string
	prefix string
	format string

	video  string
	ffmpeg string
	fps    int

	preview bool
	serve   string
	verbose bool
}

// parseArgs parses the command line. Usage errors wrap errUsage; -h returns
// flag.ErrHelp.
func parseArgs(args []string, stderr io.Writer) (*config, error) {
	fs := flag.NewFlagSet("mandelzoom", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.Usage = func() {
		fmt.Fprintln(fs.Output(), usageLine)
		fmt.Fprintln(fs.Output())
		fmt.Fprintln(fs.Output(), "Renders frames [zoom_start, zoom_end) of a Mandelbrot zoom, each")
		fmt.Fprintln(fs.Output(), "zoom_factor times deeper than the last, and assembles them into a video.")
		fmt.Fprintln(fs.Output())
		fs.PrintDefaults()
	}

	var (
		cfg = config{}

		width   = fs.Int("width", 1200, "frame width in pixels")
		height  = fs.Int("height", 1200, "frame height in pixels")
		palette = fs.String("palette", "sinebow", "color palette: "+strings.Join(mandel.PaletteNames, ", "))
		zoom    = fs.String("zoom", "exponential", "zoom policy: exponential or recenter")
		smooth  = fs.Bool("smooth", true, "smooth (fractional) escape times instead of integer bands")
		invert  = fs.Bool("invert", true, "invert frame colors before saving")
		label   = fs.Bool("label", false, "stamp frame index and zoom onto each frame")
		dir     = fs.String("dir", "frames", "frame output directory")
		prefix  = fs.String("prefix", mandel.DefaultFramePrefix, "frame file name prefix")
		format  = fs.String("format", "png", "frame file format: png, bmp or tiff")
		video   = fs.String("video", "out.mp4", "video output file; empty skips encoding")
		ffmpeg  = fs.String("ffmpeg", "ffmpeg", "video encoder binary")
		fps     = fs.Int("fps", 30, "video frame rate")
		workers = fs.Int("workers", 0, "render goroutines; 0 uses all CPUs")
		region  = fs.String("region", "", "zoom into a named region: "+strings.Join(mandel.RegionNames(), ", "))
		preview = fs.Bool("preview", false, "show the last frame in the terminal when done")
		serve   = fs.String("serve", "", "stream frames to browsers at this address, e.g. :8080")
		verbose = fs.Bool("v", false, "verbose logging")
	)

	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return nil, err
		}
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	pos := fs.Args()
	if len(pos) != 4 {
		return nil, fmt.Errorf("%w: expected 4 arguments, got %d", errUsage, len(pos))
	}

	var err error
	if cfg.maxIter, err = strconv.Atoi(pos[0]); err != nil || cfg.maxIter <= 0 {
		return nil, fmt.Errorf("%w: max_iter should be a positive integer, got %q", errUsage, pos[0])
	}
	if cfg.spec.Start, err = strconv.Atoi(pos[1]); err != nil {
		return nil, fmt.Errorf("%w: zoom_start should be an integer, got %q", errUsage, pos[1])
	}
	if cfg.spec.End, err = strconv.Atoi(pos[2]); err != nil {
		return nil, fmt.Errorf("%w: zoom_end should be an integer, got %q", errUsage, pos[2])
	}
	if cfg.spec.Factor, err = strconv.ParseFloat(pos[3], 64); err != nil {
		return nil, fmt.Errorf("%w: zoom_factor should be a number, got %q", errUsage, pos[3])
	}

	cfg.spec.Center = mandel.Pt(defaultCenterRe, defaultCenterIm)
	cfg.spec.HalfExtent = defaultHalfExtent
	if *region != "" {
		vp, err := mandel.RegionByName(*region)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", errUsage, err)
		}
		cfg.spec.Center = vp.Center()
		cfg.spec.HalfExtent = max(vp.Width(), vp.Height()) / 2
	}
	if cfg.spec.Policy, err = mandel.ParseZoomPolicy(*zoom); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if err := cfg.spec.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}

	if *width <= 0 || *height <= 0 {
		return nil, fmt.Errorf("%w: frame size %dx%d must be positive", errUsage, *width, *height)
	}
	if cfg.palette, err = mandel.PaletteByName(*palette); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if _, err := intImage.ParseFormat(*format); err != nil {
		return nil, fmt.Errorf("%w: %v", errUsage, err)
	}
	if *video != "" && *fps <= 0 {
		return nil, fmt.Errorf("%w: fps must be positive, got %d", errUsage, *fps)
	}

	cfg.evaluator = mandel.EscapeTime
	if !*smooth {
		cfg.evaluator = mandel.EscapeCount
	}

	cfg.width, cfg.height = *width, *height
	cfg.invert, cfg.label, cfg.workers = *invert, *label, *workers
	cfg.dir, cfg.prefix, cfg.format = *dir, *prefix, *format
	cfg.video, cfg.ffmpeg, cfg.fps = *video, *ffmpeg, *fps
	cfg.preview, cfg.serve, cfg.verbose = *preview, *serve, *verbose
	return &cfg, nil
}
