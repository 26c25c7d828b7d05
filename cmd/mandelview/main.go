// Command mandelview shows an image file in the terminal.
//
// Usage:
//
//	mandelview <path>
//
// Press Esc, Enter or q to quit.
package main

import (
	"fmt"
	"image"
	"io"
	"os"

	intImage "github.com/gogpu/mandel/internal/image"
	"github.com/gogpu/mandel/preview"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stderr, preview.Show))
}

// run loads the image named by args and hands it to show.
func run(args []string, stderr io.Writer, show func(image.Image) error) int {
	if len(args) != 1 {
		fmt.Fprintln(stderr, "usage: mandelview <path>")
		return 1
	}

	img, err := intImage.Load(args[0])
	if err != nil {
		fmt.Fprintf(stderr, "mandelview: %v\n", err)
		return 1
	}
	if err := show(img); err != nil {
		fmt.Fprintf(stderr, "mandelview: %v\n", err)
		return 1
	}
	return 0
}
