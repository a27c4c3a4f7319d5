// Package fractal computes Julia and Mandelbrot escape-time fields and maps
// them to colours. Windowing, browser and file output live in sibling packages
// that only see the Renderer and Display interfaces.
package fractal

import (
	"fmt"
	"strings"
)

// Variant selects the initial-state rule of the recurrence z = z*z + c.
type Variant int

const (
	// Julia keeps c fixed and starts z at the sampled point.
	Julia Variant = iota + 1
	// Mandelbrot starts z at zero and uses the sampled point as c.
	Mandelbrot
)

func (v Variant) String() string {
	switch v {
	case Julia:
		return "julia"
	case Mandelbrot:
		return "mandelbrot"
	default:
		return fmt.Sprintf("variant(%d)", int(v))
	}
}

// Title is the window title used for the variant.
func (v Variant) Title() string {
	switch v {
	case Julia:
		return "Julia Set"
	case Mandelbrot:
		return "Mandelbrot Set"
	default:
		return "Fractal"
	}
}

// Palette returns the default colour mapping for the variant.
func (v Variant) Palette() Palette {
	if v == Julia {
		return JuliaPalette
	}
	return MandelbrotPalette
}

// ParseVariant accepts "julia" or "mandelbrot" in any case.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "julia":
		return Julia, nil
	case "mandelbrot":
		return Mandelbrot, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSelection, s)
}

// ParseSelection maps the interactive menu choice to a variant:
// "1" is Julia, "2" is Mandelbrot.
func ParseSelection(s string) (Variant, error) {
	switch strings.TrimSpace(s) {
	case "1":
		return Julia, nil
	case "2":
		return Mandelbrot, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrInvalidSelection, s)
}

// Default render request values.
const (
	DefaultWidth        = 800
	DefaultHeight       = 600
	DefaultMaxIter      = 300
	DefaultEscapeRadius = 2.0
)

// DefaultJuliaC is the recurrence constant of the Julia demo.
const DefaultJuliaC = complex(-0.7, 0.27015)

// Params is a single render request.
type Params struct {
	Width, Height int
	MaxIter       int
	EscapeRadius  float64
	Region        Region
	// C is the recurrence constant, used by Julia only.
	C complex128
}

// DefaultParams returns the demo settings for v.
func DefaultParams(v Variant) Params {
	p := Params{
		Width:        DefaultWidth,
		Height:       DefaultHeight,
		MaxIter:      DefaultMaxIter,
		EscapeRadius: DefaultEscapeRadius,
		Region:       FullMandelbrot,
		C:            DefaultJuliaC,
	}
	if v == Julia {
		p.Region = FullJulia
	}
	return p
}

// Validate reports ErrInvalidParameters for a request Evaluate cannot serve.
func (p Params) Validate() error {
	switch {
	case p.Width < 1:
		return fmt.Errorf("%w: width %d < 1", ErrInvalidParameters, p.Width)
	case p.Height < 1:
		return fmt.Errorf("%w: height %d < 1", ErrInvalidParameters, p.Height)
	case p.MaxIter < 1:
		return fmt.Errorf("%w: max iterations %d < 1", ErrInvalidParameters, p.MaxIter)
	case !(p.EscapeRadius > 0):
		return fmt.Errorf("%w: escape radius %v must be positive", ErrInvalidParameters, p.EscapeRadius)
	}
	return nil
}
