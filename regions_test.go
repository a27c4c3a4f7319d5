package fractal

import (
	"errors"
	"slices"
	"testing"
)

func TestLinspace(t *testing.T) {
	tests := []struct {
		lo, hi float64
		n      int
		want   []float64
	}{
		{-2.5, 1.5, 3, []float64{-2.5, -0.5, 1.5}},
		{-2, 2, 5, []float64{-2, -1, 0, 1, 2}},
		{-2, 2, 1, []float64{-2}},
		{0, 1, 2, []float64{0, 1}},
		{0, 1, 0, nil},
	}
	for _, tt := range tests {
		if got := linspace(tt.lo, tt.hi, tt.n); !slices.Equal(got, tt.want) {
			t.Errorf("linspace(%v, %v, %d) = %v, want %v", tt.lo, tt.hi, tt.n, got, tt.want)
		}
	}
}

func TestLinspaceEndsExactly(t *testing.T) {
	xs := linspace(-0.7435, -0.7420, 1920)
	if xs[0] != -0.7435 || xs[len(xs)-1] != -0.7420 {
		t.Errorf("ends = %v, %v", xs[0], xs[len(xs)-1])
	}
	for i := 1; i < len(xs); i++ {
		if xs[i] <= xs[i-1] {
			t.Fatalf("not increasing at %d: %v <= %v", i, xs[i], xs[i-1])
		}
	}
}

func TestParseRegion(t *testing.T) {
	tests := []struct {
		in   string
		want Region
	}{
		{"mandelbrot", FullMandelbrot},
		{"Julia", FullJulia},
		{"seahorse-valley", Regions["seahorse-valley"]},
		{"-1,1,-0.5,0.5", Region{Xmin: -1, Xmax: 1, Ymin: -0.5, Ymax: 0.5}},
		{" -2.5, 1.5, -2, 2 ", FullMandelbrot},
	}
	for _, tt := range tests {
		got, err := ParseRegion(tt.in)
		if err != nil || got != tt.want {
			t.Errorf("ParseRegion(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}

	for _, in := range []string{"atlantis", "1,2,3", "1,2,x,4"} {
		if _, err := ParseRegion(in); !errors.Is(err, ErrUnknownRegion) {
			t.Errorf("ParseRegion(%q) err = %v, want ErrUnknownRegion", in, err)
		}
	}
}

func TestRegionStringParses(t *testing.T) {
	for _, name := range RegionNames() {
		r := Regions[name]
		got, err := ParseRegion(r.String())
		if err != nil || got != r {
			t.Errorf("%s: ParseRegion(%q) = %v, %v", name, r.String(), got, err)
		}
	}
}
