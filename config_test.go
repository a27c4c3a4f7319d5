package fractal

import (
	"bytes"
	"errors"
	"flag"
	"io"
	"strings"
	"testing"
)

func newTestConfig(t *testing.T, args ...string) *Config {
	t.Helper()
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	c := NewConfig(fs)
	if err := fs.Parse(args); err != nil {
		t.Fatalf("Parse(%v): %v", args, err)
	}
	return c
}

func TestConfigVariantDefaults(t *testing.T) {
	c := newTestConfig(t)
	if c.Variant != 0 {
		t.Errorf("Variant = %v without -variant", c.Variant)
	}
	for _, v := range []Variant{Julia, Mandelbrot} {
		p, err := c.Params(v)
		if err != nil {
			t.Fatal(err)
		}
		if p != DefaultParams(v) {
			t.Errorf("%s: params = %+v, want defaults", v, p)
		}
	}
}

func TestConfigFlagsOverrideDefaults(t *testing.T) {
	c := newTestConfig(t, "-variant", "julia", "-iter", "50", "-c", "0.285+0.01i", "-palette", "hsv", "-workers", "3")
	if c.Variant != Julia || c.Palette != "hsv" || c.Workers != 3 {
		t.Errorf("config = %+v", c)
	}
	p, err := c.Params(c.Variant)
	if err != nil {
		t.Fatal(err)
	}
	want := DefaultParams(Julia)
	want.MaxIter = 50
	want.C = complex(0.285, 0.01)
	if p != want {
		t.Errorf("params = %+v, want %+v", p, want)
	}
}

func TestConfigRegionOverride(t *testing.T) {
	c := newTestConfig(t, "-region", "elephant-valley", "-width", "1920", "-height", "1080")
	p, err := c.Params(Mandelbrot)
	if err != nil {
		t.Fatal(err)
	}
	if p.Region != Regions["elephant-valley"] || p.Width != 1920 || p.Height != 1080 {
		t.Errorf("params = %+v", p)
	}
}

func TestConfigInvalidParams(t *testing.T) {
	c := newTestConfig(t, "-radius", "0")
	if _, err := c.Params(Julia); !errors.Is(err, ErrInvalidParameters) {
		t.Errorf("err = %v, want ErrInvalidParameters", err)
	}
}

func TestConfigBadVariant(t *testing.T) {
	fs := flag.NewFlagSet("test", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	NewConfig(fs)
	if err := fs.Parse([]string{"-variant", "newton"}); err == nil {
		t.Error("Parse accepted -variant newton")
	}
}

func TestPromptVariant(t *testing.T) {
	tests := []struct {
		in      string
		want    Variant
		wantErr bool
	}{
		{"1\n", Julia, false},
		{"2\n", Mandelbrot, false},
		{"2", Mandelbrot, false},
		{"  1  \n", Julia, false},
		{"3\n", 0, true},
		{"", 0, true},
	}
	for _, tt := range tests {
		var out bytes.Buffer
		got, err := PromptVariant(strings.NewReader(tt.in), &out)
		if tt.wantErr {
			if !errors.Is(err, ErrInvalidSelection) {
				t.Errorf("PromptVariant(%q) err = %v, want ErrInvalidSelection", tt.in, err)
			}
		} else if err != nil || got != tt.want {
			t.Errorf("PromptVariant(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
		if !strings.Contains(out.String(), "Enter your choice (1 or 2): ") {
			t.Errorf("prompt = %q", out.String())
		}
	}
}
