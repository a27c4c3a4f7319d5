package fractal

import (
	"flag"
	"io"
	"testing"
)

func TestRegisterFlags(t *testing.T) {
	p := DefaultParams(Julia)
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	p.RegisterFlags(fs)

	err := fs.Parse([]string{
		"-width", "320",
		"-height", "200",
		"-iter", "50",
		"-radius", "4",
		"-region", "seahorse-valley",
		"-c", "0.285+0.01i",
	})
	if err != nil {
		t.Fatalf("Parse: %v", err)
	}
	want := Params{
		Width:        320,
		Height:       200,
		MaxIter:      50,
		EscapeRadius: 4,
		Region:       Regions["seahorse-valley"],
		C:            complex(0.285, 0.01),
	}
	if p != want {
		t.Errorf("params = %+v, want %+v", p, want)
	}
}

func TestRegisterFlagsDefaults(t *testing.T) {
	p := DefaultParams(Mandelbrot)
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	p.RegisterFlags(fs)
	if err := fs.Parse(nil); err != nil {
		t.Fatal(err)
	}
	if p != DefaultParams(Mandelbrot) {
		t.Errorf("params changed without flags: %+v", p)
	}
	if got := fs.Lookup("c").DefValue; got != "(-0.7+0.27015i)" {
		t.Errorf("-c default = %q", got)
	}
}

func TestRegisterFlagsRejectsBadValues(t *testing.T) {
	for _, args := range [][]string{
		{"-region", "nowhere"},
		{"-c", "not-a-number"},
		{"-width", "wide"},
	} {
		p := DefaultParams(Julia)
		fs := flag.NewFlagSet("test", flag.ContinueOnError)
		fs.SetOutput(io.Discard)
		p.RegisterFlags(fs)
		if err := fs.Parse(args); err == nil {
			t.Errorf("Parse(%v) succeeded", args)
		}
	}
}
