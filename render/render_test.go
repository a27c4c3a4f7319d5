package render

import (
	"context"
	"errors"
	"image"
	"image/color"
	"sync"
	"testing"

	fractal "github.com/aueskinj/Mandelbrot-and-Julia-Sets"
)

func TestRenderImage(t *testing.T) {
	p := fractal.DefaultParams(fractal.Mandelbrot)
	p.Width, p.Height, p.MaxIter = 64, 48, 50

	var (
		mu    sync.Mutex
		tiles int
	)
	r := RendererImpl{
		Workers:      2,
		OnTileRender: func(image.Rectangle) { mu.Lock(); tiles++; mu.Unlock() },
	}
	img, err := r.Render(context.Background(), p, fractal.Mandelbrot)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if got := img.Bounds(); got != image.Rect(0, 0, 64, 48) {
		t.Fatalf("bounds = %v", got)
	}
	if tiles != 1 {
		t.Errorf("OnTileRender called %d times, want 1", tiles)
	}
	for y := 0; y < 48; y++ {
		for x := 0; x < 64; x++ {
			if a := img.RGBAAt(x, y).A; a != 255 {
				t.Fatalf("pixel (%d,%d) alpha %d", x, y, a)
			}
		}
	}
}

func TestRenderMatchesPipeline(t *testing.T) {
	p := fractal.DefaultParams(fractal.Julia)
	p.Width, p.Height, p.MaxIter = 33, 21, 40

	field, err := fractal.Evaluate(context.Background(), p, fractal.Julia)
	if err != nil {
		t.Fatal(err)
	}
	grid, err := fractal.ColorizeWith(field, fractal.HSVPalette)
	if err != nil {
		t.Fatal(err)
	}
	want := grid.Image()

	got, err := RendererImpl{Palette: fractal.HSVPalette}.Render(context.Background(), p, fractal.Julia)
	if err != nil {
		t.Fatal(err)
	}
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			if got.RGBAAt(x, y) != want.RGBAAt(x, y) {
				t.Fatalf("pixel (%d,%d) = %v, want %v", x, y, got.RGBAAt(x, y), want.RGBAAt(x, y))
			}
		}
	}
}

func TestRenderBoundedPointIsPeakColor(t *testing.T) {
	// Single bounded pixel at the origin: intensity 1 in the Mandelbrot palette.
	p := fractal.Params{Width: 1, Height: 1, MaxIter: 20, EscapeRadius: 2, Region: fractal.Region{}}
	img, err := RendererImpl{}.Render(context.Background(), p, fractal.Mandelbrot)
	if err != nil {
		t.Fatal(err)
	}
	want := color.RGBA{R: 179, G: 102, B: 0, A: 255}
	if got := img.RGBAAt(0, 0); got != want {
		t.Errorf("pixel = %v, want %v", got, want)
	}
}

func TestRenderInvalidParameters(t *testing.T) {
	p := fractal.DefaultParams(fractal.Julia)
	p.MaxIter = 0
	if _, err := (RendererImpl{}).Render(context.Background(), p, fractal.Julia); !errors.Is(err, fractal.ErrInvalidParameters) {
		t.Errorf("err = %v, want ErrInvalidParameters", err)
	}
}
