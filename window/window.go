// Package window shows a rendered fractal in a desktop window until the
// window is closed or Escape is pressed.
//
// The default backend is ebiten. Building with -tags raylib switches to a
// raylib backend with a polling draw loop.
package window

import (
	"image"

	fractal "github.com/aueskinj/Mandelbrot-and-Julia-Sets"
)

// Window is a Display backed by a native window. A zero size uses the
// image's size.
type Window struct {
	Width, Height int
}

var _ fractal.Display = Window{}

func (w Window) size(img *image.RGBA) (int, int) {
	if w.Width > 0 && w.Height > 0 {
		return w.Width, w.Height
	}
	return img.Rect.Dx(), img.Rect.Dy()
}
