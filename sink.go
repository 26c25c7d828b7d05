package mandel

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/gogpu/mandel/internal/image"
)

// FrameSink receives finished frames in increasing index order.
// The buffer is only valid for the duration of the call.
type FrameSink interface {
	WriteFrame(index int, buf *PixelBuffer) error
}

// FrameSinkFunc adapts a function to the FrameSink interface.
type FrameSinkFunc func(index int, buf *PixelBuffer) error

// WriteFrame implements FrameSink.
func (f FrameSinkFunc) WriteFrame(index int, buf *PixelBuffer) error {
	return f(index, buf)
}

// SaveImage writes buf to path. The format is chosen from the extension:
// .png, .bmp, .tif or .tiff.
func SaveImage(path string, buf *PixelBuffer) error {
	return image.Save(path, buf.ToImage())
}

// FileSink saves frames as numbered image files,
// <Dir>/<Prefix>_0000.<ext>, <Dir>/<Prefix>_0001.<ext>, ...
//
// The zero-padded four-digit counter keeps the files in lexical order and
// matches the %04d pattern the video encoder reads.
type FileSink struct {
	dir    string
	prefix string
	format image.Format
}

// DefaultFramePrefix is the file name prefix used by NewFileSink when the
// prefix is empty.
const DefaultFramePrefix = "mandelbrot_set"

// NewFileSink creates dir if needed and returns a sink writing frames into it.
// ext selects the file format ("png", "bmp" or "tiff").
func NewFileSink(dir, prefix, ext string) (*FileSink, error) {
	f, err := image.ParseFormat(ext)
	if err != nil {
		return nil, err
	}
	if prefix == "" {
		prefix = DefaultFramePrefix
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("mandel: create frame directory: %w", err)
	}
	return &FileSink{dir: dir, prefix: prefix, format: f}, nil
}

// Path returns the file name of frame index.
func (s *FileSink) Path(index int) string {
	return filepath.Join(s.dir, fmt.Sprintf("%s_%04d%s", s.prefix, index, s.format.Ext()))
}

// Pattern returns the printf-style file pattern of the frames, as passed to
// the video encoder's -i argument.
func (s *FileSink) Pattern() string {
	return filepath.Join(s.dir, s.prefix+"_%04d"+s.format.Ext())
}

// WriteFrame implements FrameSink.
func (s *FileSink) WriteFrame(index int, buf *PixelBuffer) error {
	path := s.Path(index)
	if err := SaveImage(path, buf); err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}
	return nil
}

// MultiSink returns a sink that hands every frame to each sink in turn and
// stops at the first error.
func MultiSink(sinks ...FrameSink) FrameSink {
	return FrameSinkFunc(func(index int, buf *PixelBuffer) error {
		for _, s := range sinks {
			if err := s.WriteFrame(index, buf); err != nil {
				return err
			}
		}
		return nil
	})
}
