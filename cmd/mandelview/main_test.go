package main

import (
	"bytes"
	"errors"
	"image"
	"path/filepath"
	"strings"
	"testing"

	intImage "github.com/gogpu/mandel/internal/image"
)

func TestRun_ShowsImage(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.png")
	if err := intImage.Save(path, image.NewRGBA(image.Rect(0, 0, 5, 3))); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var shown image.Image
	var stderr bytes.Buffer
	code := run([]string{path}, &stderr, func(img image.Image) error {
		shown = img
		return nil
	})

	if code != 0 {
		t.Fatalf("exit status = %d, stderr: %s", code, stderr.String())
	}
	if shown == nil || shown.Bounds().Dx() != 5 || shown.Bounds().Dy() != 3 {
		t.Errorf("shown image = %v", shown)
	}
}

func TestRun_Errors(t *testing.T) {
	noShow := func(image.Image) error {
		t.Error("show called")
		return nil
	}

	tests := []struct {
		name string
		args []string
		want string
	}{
		{"no path", nil, "usage: mandelview"},
		{"two paths", []string{"a.png", "b.png"}, "usage: mandelview"},
		{"missing file", []string{filepath.Join(t.TempDir(), "none.png")}, "open file"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var stderr bytes.Buffer
			if code := run(tt.args, &stderr, noShow); code != 1 {
				t.Errorf("exit status = %d, want 1", code)
			}
			if !strings.Contains(stderr.String(), tt.want) {
				t.Errorf("stderr = %q, want %q", stderr.String(), tt.want)
			}
		})
	}
}

func TestRun_ViewerFailure(t *testing.T) {
	path := filepath.Join(t.TempDir(), "frame.bmp")
	if err := intImage.Save(path, image.NewRGBA(image.Rect(0, 0, 2, 2))); err != nil {
		t.Fatalf("Save: %v", err)
	}

	var stderr bytes.Buffer
	code := run([]string{path}, &stderr, func(image.Image) error {
		return errors.New("no terminal")
	})
	if code != 1 || !strings.Contains(stderr.String(), "no terminal") {
		t.Errorf("exit %d, stderr %q", code, stderr.String())
	}
}
