// webviewer renders the chosen fractal and serves it to a browser. Pressing
// Escape in the page, or interrupting the process, stops the server.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"image"
	"log"
	"os"
	"os/signal"
	"syscall"

	fractal "github.com/aueskinj/Mandelbrot-and-Julia-Sets"
	"github.com/aueskinj/Mandelbrot-and-Julia-Sets/render"
	"github.com/aueskinj/Mandelbrot-and-Julia-Sets/webview"
)

var addr = flag.String("addr", "localhost:8080", "Address the viewer listens on.")

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
		Palette:      pal,
		Workers:      cfg.Workers,
		OnTileRender: func(tile image.Rectangle) { log.Printf("rendered tile: %s", tile) },
		OnProgress:   render.ProgressLogger(0.25),
	}
	img, err := renderer.Render(ctx, p, v)
	if err != nil {
		return fmt.Errorf("render: %w", err)
	}

	return webview.NewServer(*addr).Show(ctx, v.Title(), img)
}
