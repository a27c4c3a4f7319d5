package fractal

import (
	"image"
	"sync"
)

// tileScheduler hands out every tile of the grid exactly once and keeps
// track of how much of the grid is done.
type tileScheduler struct {
	tiles []image.Rectangle
	next  int

	totalPixels    int
	finishedPixels int

	m sync.Mutex
}

func newTileScheduler(w, h, tileW, tileH int) *tileScheduler {
	return &tileScheduler{
		tiles:       splitRectNoClip(image.Rect(0, 0, w, h), tileW, tileH),
		totalPixels: w * h,
	}
}

func (ts *tileScheduler) popTile() (tile image.Rectangle, found bool) {
	ts.m.Lock()
	defer ts.m.Unlock()

	if ts.next >= len(ts.tiles) {
		return image.Rectangle{}, false
	}
	tile = ts.tiles[ts.next]
	ts.next++
	return tile, true
}

// tileFinished records tile and returns the finished fraction of the grid.
func (ts *tileScheduler) tileFinished(tile image.Rectangle) float32 {
	ts.m.Lock()
	defer ts.m.Unlock()

	ts.finishedPixels += tile.Dx() * tile.Dy()
	return float32(ts.finishedPixels) / float32(ts.totalPixels)
}

// splitRectNoClip splits r into tiles of size tileW × tileH, row by row.
// Tiles at the right and bottom edges are smaller if r is not divisible.
func splitRectNoClip(r image.Rectangle, tileW, tileH int) []image.Rectangle {
	if tileW <= 0 || tileH <= 0 {
		panic("tile dimensions must be positive")
	}

	w := r.Dx()
	h := r.Dy()

	var tiles []image.Rectangle

	for oy := 0; oy < h; oy += tileH {
		th := min(tileH, h-oy)

		for ox := 0; ox < w; ox += tileW {
			tw := min(tileW, w-ox)

			tiles = append(tiles, image.Rect(
				r.Min.X+ox,
				r.Min.Y+oy,
				r.Min.X+ox+tw,
				r.Min.Y+oy+th,
			))
		}
	}

	return tiles
}
