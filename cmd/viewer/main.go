// viewer is the interactive demo: it asks which fractal to render, computes
// it and shows it in a desktop window until the window is closed or Escape
// is pressed.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	fractal "github.com/aueskinj/Mandelbrot-and-Julia-Sets"
	"github.com/aueskinj/Mandelbrot-and-Julia-Sets/render"
	"github.com/aueskinj/Mandelbrot-and-Julia-Sets/window"
)

func main() {
	if err := run(); err != nil {
		if errors.Is(err, fractal.ErrInvalidSelection) {
			fmt.Println("Invalid choice. Exiting.")
			os.Exit(1)
		}
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
		var err error
		if v, err = fractal.PromptVariant(os.Stdin, os.Stdout); err != nil {
			return err
		}
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

	if err := (window.Window{}).Show(ctx, v.Title(), img); err != nil {
		return fmt.Errorf("window: %w", err)
	}
	return nil
}
