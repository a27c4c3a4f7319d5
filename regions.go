package fractal

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
)

// Region is the rectangle of the complex plane mapped onto the pixel grid.
type Region struct {
	Xmin, Xmax float64
	Ymin, Ymax float64
}

func (r Region) String() string {
	return fmt.Sprintf("%g,%g,%g,%g", r.Xmin, r.Xmax, r.Ymin, r.Ymax)
}

// Xs returns n evenly spaced samples over [Xmin, Xmax].
func (r Region) Xs(n int) []float64 { return linspace(r.Xmin, r.Xmax, n) }

// Ys returns n evenly spaced samples over [Ymin, Ymax].
func (r Region) Ys(n int) []float64 { return linspace(r.Ymin, r.Ymax, n) }

// linspace includes both ends. A single sample sits at lo.
func linspace(lo, hi float64, n int) []float64 {
	if n < 1 {
		return nil
	}
	div := n - 1
	if div < 1 {
		div = 1
	}
	step := (hi - lo) / float64(div)
	out := make([]float64, n)
	for i := range out {
		out[i] = lo + float64(i)*step
	}
	if n > 1 {
		out[n-1] = hi
	}
	return out
}

// Whole-set views used by the demos.
var (
	FullMandelbrot = Region{Xmin: -2.5, Xmax: 1.5, Ymin: -2, Ymax: 2}
	FullJulia      = Region{Xmin: -2, Xmax: 2, Ymin: -2, Ymax: 2}
)

// Regions are the named plane windows accepted by -region.
// Apart from the two full views they are classic Mandelbrot landmarks.
var Regions = map[string]Region{
	"mandelbrot": FullMandelbrot,
	"julia":      FullJulia,

	// dense filaments and repeating "seahorse" curls
	"seahorse-valley": {Xmin: -0.8, Xmax: -0.7, Ymin: 0.05, Ymax: 0.15},
	// large bulb with trunk-like tendrils
	"elephant-valley": {Xmin: -1.85, Xmax: -1.75, Ymin: -0.10, Ymax: -0.02},
	// small copy of the set with tight spiral arms
	"spiral-minibrot": {Xmin: -0.7435, Xmax: -0.7420, Ymin: 0.1310, Ymax: 0.1325},
	// threefold symmetric spiral
	"triple-spiral": {Xmin: -0.7480, Xmax: -0.7450, Ymin: 0.0950, Ymax: 0.0980},
	// deep, highly detailed spiral filaments
	"valley-of-the-dragon": {Xmin: -0.7400, Xmax: -0.7350, Ymin: 0.1800, Ymax: 0.1850},
	// self-similar copy inside a spiral arm
	"minibrot-in-mini-spiral": {Xmin: -1.7390, Xmax: -1.7375, Ymin: -0.0235, Ymax: -0.0220},
}

// RegionNames lists the keys of Regions in sorted order.
func RegionNames() []string {
	names := make([]string, 0, len(Regions))
	for name := range Regions {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// ParseRegion accepts a name from Regions or four comma separated
// numbers "xmin,xmax,ymin,ymax".
func ParseRegion(s string) (Region, error) {
	s = strings.TrimSpace(s)
	if r, ok := Regions[strings.ToLower(s)]; ok {
		return r, nil
	}

	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return Region{}, fmt.Errorf("%w: %q (known: %s)", ErrUnknownRegion, s, strings.Join(RegionNames(), ", "))
	}
	var v [4]float64
	for i, part := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(part), 64)
		if err != nil {
			return Region{}, fmt.Errorf("%w: %q: %w", ErrUnknownRegion, s, err)
		}
		v[i] = f
	}
	return Region{Xmin: v[0], Xmax: v[1], Ymin: v[2], Ymax: v[3]}, nil
}
