package fractal

import (
	"fmt"
	"image"
	"image/color"
	"math"
	"strings"

	"github.com/go-gl/mathgl/mgl32"
)

// ColorSample is an RGB triple with channels in [0,1].
type ColorSample = mgl32.Vec3

// Palette maps a normalized intensity in [0,1] to a colour.
type Palette func(intensity float32) ColorSample

// JuliaPalette fades from blue to orange as intensity grows.
func JuliaPalette(i float32) ColorSample {
	return ColorSample{i, i * 0.5, 1 - i}
}

// MandelbrotPalette fades from blue to brown as intensity grows.
func MandelbrotPalette(i float32) ColorSample {
	return ColorSample{i * 0.7, i * 0.4, 1 - i}
}

// HSVPalette walks the hue circle with intensity. The field maximum,
// normally the points that never escaped, is black.
func HSVPalette(i float32) ColorSample {
	if i >= 1 {
		return ColorSample{}
	}
	return hsv(float64(i), 1, 1)
}

// ParsePalette resolves a palette name. The empty string and "default"
// return nil, which Colorize replaces with the variant's palette.
func ParsePalette(name string) (Palette, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "", "default":
		return nil, nil
	case "julia":
		return JuliaPalette, nil
	case "mandelbrot":
		return MandelbrotPalette, nil
	case "hsv":
		return HSVPalette, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownPalette, name)
}

// ColorGrid holds one ColorSample per field cell, row-major like Field.
type ColorGrid struct {
	Width, Height int
	Samples       []ColorSample
}

// At returns the sample of the given cell.
func (g *ColorGrid) At(row, col int) ColorSample {
	return g.Samples[row*g.Width+col]
}

// Colorize maps every count of f to a colour with the palette of f's variant.
func Colorize(f *Field) (*ColorGrid, error) {
	return ColorizeWith(f, nil)
}

// ColorizeWith maps every count to pal(count / f.Max()). A nil pal selects
// the palette of f's variant.
func ColorizeWith(f *Field, pal Palette) (*ColorGrid, error) {
	if err := f.validate(); err != nil {
		return nil, err
	}
	if pal == nil {
		pal = f.Variant.Palette()
	}

	peak := float64(f.Max())
	g := &ColorGrid{
		Width:   f.Width,
		Height:  f.Height,
		Samples: make([]ColorSample, len(f.Counts)),
	}
	for i, c := range f.Counts {
		s := pal(float32(float64(c) / peak))
		for k := range s {
			s[k] = mgl32.Clamp(s[k], 0, 1)
		}
		g.Samples[i] = s
	}
	return g, nil
}

// Image converts the grid to an opaque RGBA image. Row 0 of the grid, the
// Ymin samples, becomes the bottom row of the image and column 0 its left
// edge, matching a plot with the y axis pointing up.
func (g *ColorGrid) Image() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, g.Width, g.Height))
	for i := 0; i < g.Height; i++ {
		y := g.Height - 1 - i
		for j := 0; j < g.Width; j++ {
			s := g.At(i, j)
			img.SetRGBA(j, y, color.RGBA{R: channel(s[0]), G: channel(s[1]), B: channel(s[2]), A: 255})
		}
	}
	return img
}

func channel(v float32) uint8 {
	return uint8(mgl32.Clamp(v, 0, 1)*255 + 0.5)
}

// hsv converts a hue in [0,1) with saturation and value to a colour.
func hsv(h, s, v float64) ColorSample {
	h = math.Mod(h, 1)
	i := int(h * 6)
	f := h*6 - float64(i)
	p := v * (1 - s)
	q := v * (1 - f*s)
	t := v * (1 - (1-f)*s)

	var r, g, b float64
	switch i % 6 {
	case 0:
		r, g, b = v, t, p
	case 1:
		r, g, b = q, v, p
	case 2:
		r, g, b = p, v, t
	case 3:
		r, g, b = p, q, v
	case 4:
		r, g, b = t, p, v
	case 5:
		r, g, b = v, p, q
	}
	return ColorSample{float32(r), float32(g), float32(b)}
}
