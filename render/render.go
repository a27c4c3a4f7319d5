// Package render glues the evaluator and the colour mapper into a
// fractal.Renderer.
package render

import (
	"context"
	"fmt"
	"image"
	"log"
	"time"

	fractal "github.com/aueskinj/Mandelbrot-and-Julia-Sets"
)

// RendererImpl evaluates the field, normalizes it once the whole field is
// known and returns the colorized image.
type RendererImpl struct {
	// Palette overrides the variant's palette when set.
	Palette fractal.Palette
	// Workers bounds the evaluation goroutines; 0 means one per CPU.
	Workers int
	// OnTileRender is called after each tile is evaluated.
	OnTileRender func(tile image.Rectangle)
	// OnProgress receives the finished fraction of the grid.
	OnProgress func(done float32)
}

var _ fractal.Renderer = RendererImpl{}

func (imp RendererImpl) Render(ctx context.Context, p fractal.Params, v fractal.Variant) (*image.RGBA, error) {
	log.Printf("rendering %s %dx%d, %d iterations, region %s", v, p.Width, p.Height, p.MaxIter, p.Region)
	start := time.Now()

	opts := []fractal.Option{fractal.WithWorkers(imp.Workers)}
	if imp.OnTileRender != nil {
		opts = append(opts, fractal.WithOnTile(imp.OnTileRender))
	}
	if imp.OnProgress != nil {
		opts = append(opts, fractal.WithProgress(imp.OnProgress))
	}

	field, err := fractal.Evaluate(ctx, p, v, opts...)
	if err != nil {
		return nil, err
	}
	evaluated := time.Since(start)

	grid, err := fractal.ColorizeWith(field, imp.Palette)
	if err != nil {
		return nil, fmt.Errorf("colorize: %w", err)
	}
	img := grid.Image()

	log.Printf("render took %s (evaluate %s, peak count %d)", time.Since(start), evaluated, field.Max())
	return img, nil
}
