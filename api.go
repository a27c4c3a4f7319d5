package fractal

import (
	"context"
	"image"
)

// Renderer turns a render request into a displayable image.
type Renderer interface {
	Render(ctx context.Context, p Params, v Variant) (*image.RGBA, error)
}

// Display is the surface a finished image is handed off to.
// Show blocks until the surface is closed or the context is done.
type Display interface {
	Show(ctx context.Context, title string, img *image.RGBA) error
}
