// Package preview shows rendered frames in a terminal.
//
// Each character cell holds two vertically stacked pixels: the upper half
// block '▀' is drawn in the top pixel's color on a background of the bottom
// pixel's color. Images larger than the terminal are scaled down to fit.
package preview

import (
	"fmt"
	"image"

	"github.com/gdamore/tcell/v2"

	intImage "github.com/gogpu/mandel/internal/image"
)

// halfBlock is drawn with the top pixel as foreground.
const halfBlock = '▀'

// Show opens the terminal, displays img and blocks until the user presses
// Esc, Enter or q. The terminal is restored before Show returns.
func Show(img image.Image) error {
	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("preview: open terminal: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("preview: init terminal: %w", err)
	}
	defer screen.Fini()

	Run(screen, img)
	return nil
}

// Run displays img on an initialized screen and handles events until a quit
// key is pressed or the screen is finalized. The image is redrawn to fit
// whenever the terminal is resized.
func Run(screen tcell.Screen, img image.Image) {
	Draw(screen, img)
	screen.Show()

	for {
		switch ev := screen.PollEvent().(type) {
		case nil:
			return
		case *tcell.EventResize:
			screen.Sync()
			Draw(screen, img)
			screen.Show()
		case *tcell.EventKey:
			if isQuit(ev) {
				return
			}
		}
	}
}

func isQuit(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyEnter, tcell.KeyCtrlC:
		return true
	case tcell.KeyRune:
		return ev.Rune() == 'q' || ev.Rune() == 'Q'
	}
	return false
}

// Draw paints img centered on screen, scaled to fit two pixels per cell.
// It does not call Show.
func Draw(screen tcell.Screen, img image.Image) {
	screen.Clear()

	cols, rows := screen.Size()
	scaled := intImage.Fit(img, cols, rows*2)
	if scaled == nil {
		return
	}

	w, h := scaled.Bounds().Dx(), scaled.Bounds().Dy()
	cellRows := (h + 1) / 2
	offX := (cols - w) / 2
	offY := (rows - cellRows) / 2

	for cy := range cellRows {
		for x := range w {
			style := tcell.StyleDefault.Foreground(cellColor(scaled, x, 2*cy))
			if 2*cy+1 < h {
				style = style.Background(cellColor(scaled, x, 2*cy+1))
			}
			screen.SetContent(offX+x, offY+cy, halfBlock, nil, style)
		}
	}
}

func cellColor(img *image.RGBA, x, y int) tcell.Color {
	c := img.RGBAAt(x, y)
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
