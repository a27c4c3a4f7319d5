//go:build !raylib

package window

import (
	"context"
	"fmt"
	"image"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// game draws one precomputed image every frame.
type game struct {
	ctx context.Context
	src *image.RGBA
	img *ebiten.Image
}

func (g *game) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
		log.Printf("escape pressed")
		return ebiten.Termination
	}
	if g.ctx.Err() != nil {
		return ebiten.Termination
	}
	return nil
}

func (g *game) Draw(screen *ebiten.Image) {
	if g.img == nil {
		g.img = ebiten.NewImageFromImage(g.src)
	}
	screen.DrawImage(g.img, nil)
}

// Layout keeps the logical screen at image size; ebiten scales it to the window.
func (g *game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.src.Rect.Dx(), g.src.Rect.Dy()
}

// Show opens the window and blocks until it is closed, Escape is pressed
// or ctx is done.
func (w Window) Show(ctx context.Context, title string, img *image.RGBA) error {
	ebiten.SetWindowSize(w.size(img))
	ebiten.SetWindowTitle(title)

	if err := ebiten.RunGame(&game{ctx: ctx, src: img}); err != nil {
		return fmt.Errorf("ebiten.RunGame: %w", err)
	}
	return nil
}
