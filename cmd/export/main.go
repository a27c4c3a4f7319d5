// export renders a fractal without a display and saves it as an image file.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	fractal "github.com/aueskinj/Mandelbrot-and-Julia-Sets"
	"github.com/aueskinj/Mandelbrot-and-Julia-Sets/export"
	"github.com/aueskinj/Mandelbrot-and-Julia-Sets/render"
)

var output = flag.String("o", "",
	"Name of the output image file (.png, .jpg or .gif). Defaults to <variant>.png.")

func main() {
	if err := run(); err != nil {
		log.Fatalf("run: %v", err)
	}
}

func run() error {
	cfg := fractal.NewConfig(flag.CommandLine)
	flag.Parse()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	v := cfg.Variant
	if v == 0 {
		v = fractal.Mandelbrot
	}
	path := *output
	if path == "" {
		path = v.String() + ".png"
	}
	if !export.Supported(filepath.Ext(path)) {
		return fmt.Errorf("unknown file format %q", filepath.Ext(path))
	}

	p, err := cfg.Params(v)
	if err != nil {
		return err
	}
	pal, err := fractal.ParsePalette(cfg.Palette)
	if err != nil {
		return err
	}

	renderer := render.RendererImpl{
		Palette:    pal,
		Workers:    cfg.Workers,
		OnProgress: render.ProgressLogger(0.1),
	}
	img, err := renderer.Render(ctx, p, v)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return export.File{Path: path}.Show(ctx, v.Title(), img)
}
