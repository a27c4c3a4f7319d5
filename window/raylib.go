//go:build raylib

package window

import (
	"context"
	"errors"
	"image"

	rl "github.com/gen2brain/raylib-go/raylib"
)

// Show opens the window and polls it until it is closed, Escape is pressed
// or ctx is done.
func (w Window) Show(ctx context.Context, title string, img *image.RGBA) error {
	width, height := w.size(img)
	rl.InitWindow(int32(width), int32(height), title)
	if !rl.IsWindowReady() {
		return errors.New("raylib: window creation failed")
	}
	defer rl.CloseWindow()

	rl.SetExitKey(rl.KeyEscape)
	rl.SetTargetFPS(60)

	tex := rl.LoadTextureFromImage(rl.NewImageFromImage(img))
	defer rl.UnloadTexture(tex)

	src := rl.NewRectangle(0, 0, float32(tex.Width), float32(tex.Height))
	dst := rl.NewRectangle(0, 0, float32(width), float32(height))

	for !rl.WindowShouldClose() && ctx.Err() == nil {
		rl.BeginDrawing()
		rl.ClearBackground(rl.Black)
		rl.DrawTexturePro(tex, src, dst, rl.NewVector2(0, 0), 0, rl.White)
		rl.EndDrawing()
	}
	return nil
}
