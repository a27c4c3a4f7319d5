package fractal

import "fmt"

// Field is the iteration count grid produced by Evaluate.
// Counts is row-major; row 0 is the Ymin sample. A Field is not modified
// after Evaluate returns it.
type Field struct {
	Width, Height int
	MaxIter       int
	Variant       Variant
	Counts        []int
}

// At returns the count of the given cell.
func (f *Field) At(row, col int) int {
	return f.Counts[row*f.Width+col]
}

// Row returns row i as a slice of Counts.
func (f *Field) Row(i int) []int {
	return f.Counts[i*f.Width : (i+1)*f.Width]
}

// Max is the largest count in the field, or 1 when every count is zero.
func (f *Field) Max() int {
	m := 0
	for _, c := range f.Counts {
		if c > m {
			m = c
		}
	}
	if m == 0 {
		return 1
	}
	return m
}

func (f *Field) validate() error {
	if f == nil {
		return fmt.Errorf("%w: nil", ErrInvalidField)
	}
	if f.Width < 1 || f.Height < 1 {
		return fmt.Errorf("%w: empty %dx%d", ErrInvalidField, f.Width, f.Height)
	}
	if len(f.Counts) != f.Width*f.Height {
		return fmt.Errorf("%w: %d counts for %dx%d", ErrInvalidField, len(f.Counts), f.Width, f.Height)
	}
	for i, c := range f.Counts {
		if c < 0 {
			return fmt.Errorf("%w: negative count %d at %d", ErrInvalidField, c, i)
		}
	}
	return nil
}
