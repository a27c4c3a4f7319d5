package fractal

import (
	"context"
	"fmt"
	"image"
	"runtime"

	"golang.org/x/sync/errgroup"
)

// DefaultTileSize is the edge length of the square tiles Evaluate hands to
// its workers.
const DefaultTileSize = 64

type options struct {
	workers      int
	tileW, tileH int
	onTile       func(image.Rectangle)
	progress     func(float32)
}

// Option configures Evaluate.
type Option func(*options)

// WithWorkers bounds the number of goroutines evaluating tiles.
// Values below 1 keep the default of runtime.NumCPU().
func WithWorkers(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.workers = n
		}
	}
}

// WithTileSize sets the tile dimensions in pixels. Non-positive values are ignored.
func WithTileSize(w, h int) Option {
	return func(o *options) {
		if w > 0 && h > 0 {
			o.tileW, o.tileH = w, h
		}
	}
}

// WithOnTile registers fn to be called after each tile is evaluated.
// fn may be called from several goroutines at once.
func WithOnTile(fn func(tile image.Rectangle)) Option {
	return func(o *options) { o.onTile = fn }
}

// WithProgress registers fn to receive the finished fraction of the grid
// after each tile. fn may be called from several goroutines at once.
func WithProgress(fn func(done float32)) Option {
	return func(o *options) { o.progress = fn }
}

// Escape iterates z = z*z + c from z while |z| <= radius and fewer than
// maxIter iterations have completed, and returns the number of completed
// iterations. A point that never escapes returns maxIter.
func Escape(z, c complex128, maxIter int, radius float64) int {
	r2 := radius * radius
	n := 0
	for n < maxIter && real(z)*real(z)+imag(z)*imag(z) <= r2 {
		z = z*z + c
		n++
	}
	return n
}

// start returns the initial z and the constant c for the sampled plane point pt.
func (v Variant) start(pt, c complex128) (complex128, complex128) {
	if v == Julia {
		return pt, c
	}
	return 0, pt
}

// Evaluate computes the iteration count field of p for variant v.
//
// The grid is split into tiles which are evaluated concurrently; each
// worker writes a disjoint set of cells. The context is checked before
// every row, so cancelling it stops the render and Evaluate returns the
// context's error. Identical inputs always produce identical fields.
func Evaluate(ctx context.Context, p Params, v Variant, opts ...Option) (*Field, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	if v != Julia && v != Mandelbrot {
		return nil, fmt.Errorf("%w: unknown %s", ErrInvalidParameters, v)
	}

	o := options{
		workers: runtime.NumCPU(),
		tileW:   DefaultTileSize,
		tileH:   DefaultTileSize,
	}
	for _, opt := range opts {
		opt(&o)
	}

	f := &Field{
		Width:   p.Width,
		Height:  p.Height,
		MaxIter: p.MaxIter,
		Variant: v,
		Counts:  make([]int, p.Width*p.Height),
	}
	xs := p.Region.Xs(p.Width)
	ys := p.Region.Ys(p.Height)
	ts := newTileScheduler(p.Width, p.Height, o.tileW, o.tileH)

	g, ctx := errgroup.WithContext(ctx)
	for range min(o.workers, len(ts.tiles)) {
		g.Go(func() error {
			for {
				tile, found := ts.popTile()
				if !found {
					return nil
				}
				if err := evaluateTile(ctx, f, p, v, xs, ys, tile); err != nil {
					return err
				}
				done := ts.tileFinished(tile)
				if o.onTile != nil {
					o.onTile(tile)
				}
				if o.progress != nil {
					o.progress(done)
				}
			}
		})
	}
	if err := g.Wait(); err != nil {
		return nil, fmt.Errorf("evaluate %s: %w", v, err)
	}
	return f, nil
}

func evaluateTile(ctx context.Context, f *Field, p Params, v Variant, xs, ys []float64, tile image.Rectangle) error {
	for i := tile.Min.Y; i < tile.Max.Y; i++ {
		if err := ctx.Err(); err != nil {
			return err
		}
		row := f.Row(i)
		for j := tile.Min.X; j < tile.Max.X; j++ {
			z, c := v.start(complex(xs[j], ys[i]), p.C)
			row[j] = Escape(z, c, p.MaxIter, p.EscapeRadius)
		}
	}
	return nil
}
