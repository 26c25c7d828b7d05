// Package image encodes, decodes and annotates rendered frames.
//
// Frames are written in lossless formats only so the video encoder sees the
// exact rendered bytes: PNG through the standard library, BMP and TIFF through
// golang.org/x/image.
package image

import (
	"fmt"
	"path/filepath"
	"strings"
)

// Format is a lossless raster file format.
type Format uint8

const (
	// FormatPNG is the default frame format.
	FormatPNG Format = iota

	// FormatBMP is uncompressed 24-bit BMP. Fastest to write.
	FormatBMP

	// FormatTIFF is TIFF with Deflate compression.
	FormatTIFF
)

// String returns the lower-case format name.
func (f Format) String() string {
	switch f {
	case FormatPNG:
		return "png"
	case FormatBMP:
		return "bmp"
	case FormatTIFF:
		return "tiff"
	default:
		return fmt.Sprintf("Format(%d)", uint8(f))
	}
}

// Ext returns the file extension for the format, including the dot.
func (f Format) Ext() string {
	switch f {
	case FormatBMP:
		return ".bmp"
	case FormatTIFF:
		return ".tif"
	default:
		return ".png"
	}
}

// ParseFormat parses a format name as accepted on the command line.
func ParseFormat(name string) (Format, error) {
	switch strings.ToLower(strings.TrimPrefix(name, ".")) {
	case "png":
		return FormatPNG, nil
	case "bmp":
		return FormatBMP, nil
	case "tif", "tiff":
		return FormatTIFF, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnsupportedFormat, name)
	}
}

// FormatFromPath selects the format from a file name's extension.
func FormatFromPath(path string) (Format, error) {
	ext := filepath.Ext(path)
	if ext == "" {
		return 0, fmt.Errorf("%w: %q has no extension", ErrUnsupportedFormat, path)
	}
	return ParseFormat(ext)
}
