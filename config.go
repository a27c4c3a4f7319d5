package fractal

import (
	"bufio"
	"errors"
	"flag"
	"fmt"
	"io"
)

// Config is the command line configuration shared by the commands.
type Config struct {
	// Variant is zero unless -variant was given.
	Variant Variant
	Palette string
	Workers int

	fs     *flag.FlagSet
	params Params
}

// NewConfig registers the render flags on fs. Call fs.Parse afterwards.
func NewConfig(fs *flag.FlagSet) *Config {
	c := &Config{fs: fs, params: DefaultParams(Mandelbrot)}
	fs.Var((*variantValue)(&c.Variant), "variant",
		"Fractal to render: julia or mandelbrot. Prompts on stdin when empty.")
	fs.StringVar(&c.Palette, "palette", "",
		"Colour palette: julia, mandelbrot or hsv. Defaults to the fractal's own.")
	fs.IntVar(&c.Workers, "workers", 0,
		"Number of goroutines evaluating the field; 0 uses one per CPU.")
	c.params.RegisterFlags(fs)
	return c
}

// Params returns DefaultParams(v) with the render flags that were set on the
// command line applied on top, so an unset -region keeps v's own window.
func (c *Config) Params(v Variant) (Params, error) {
	p := DefaultParams(v)
	pfs := flag.NewFlagSet(c.fs.Name(), flag.ContinueOnError)
	p.RegisterFlags(pfs)

	var err error
	c.fs.Visit(func(f *flag.Flag) {
		if err != nil || pfs.Lookup(f.Name) == nil {
			return
		}
		if serr := pfs.Set(f.Name, f.Value.String()); serr != nil {
			err = fmt.Errorf("-%s: %w", f.Name, serr)
		}
	})
	if err != nil {
		return Params{}, err
	}
	return p, p.Validate()
}

type variantValue Variant

func (v *variantValue) String() string {
	if *v == 0 {
		return ""
	}
	return Variant(*v).String()
}

func (v *variantValue) Set(s string) error {
	variant, err := ParseVariant(s)
	if err != nil {
		return err
	}
	*v = variantValue(variant)
	return nil
}

// PromptVariant prints the fractal menu to out and reads the choice from in.
func PromptVariant(in io.Reader, out io.Writer) (Variant, error) {
	fmt.Fprintln(out, "Select the fractal to render:")
	fmt.Fprintln(out, "1. Julia Set")
	fmt.Fprintln(out, "2. Mandelbrot Set")
	fmt.Fprint(out, "Enter your choice (1 or 2): ")

	line, err := bufio.NewReader(in).ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return 0, fmt.Errorf("read choice: %w", err)
	}
	return ParseSelection(line)
}
