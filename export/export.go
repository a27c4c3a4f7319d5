// Package export writes rendered fractals to image files.
package export

import (
	"context"
	"fmt"
	"image"
	"image/gif"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"

	fractal "github.com/aueskinj/Mandelbrot-and-Julia-Sets"
)

// File is a Display that saves the image to Path. The format follows the
// file extension.
type File struct {
	Path string
}

var _ fractal.Display = File{}

// Show writes img to f.Path and returns; the title is only logged.
func (f File) Show(_ context.Context, title string, img *image.RGBA) error {
	format := strings.ToLower(filepath.Ext(f.Path))
	if !Supported(format) {
		return fmt.Errorf("unknown file format %q", format)
	}

	out, err := os.Create(f.Path)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	if err := Encode(out, format, img); err != nil {
		out.Close()
		return err
	}
	if err := out.Close(); err != nil {
		return fmt.Errorf("close %q: %w", f.Path, err)
	}

	log.Printf("%s saved to %q", title, f.Path)
	return nil
}

// Supported reports whether Encode knows the extension.
func Supported(ext string) bool {
	switch strings.ToLower(ext) {
	case ".png", ".jpg", ".jpeg", ".gif":
		return true
	}
	return false
}

// Encode writes img to w in the format named by ext (".png", ".jpg",
// ".jpeg" or ".gif").
func Encode(w io.Writer, ext string, img image.Image) error {
	var err error
	switch strings.ToLower(ext) {
	case ".png":
		err = png.Encode(w, img)
	case ".jpg", ".jpeg":
		err = jpeg.Encode(w, img, &jpeg.Options{Quality: 95})
	case ".gif":
		err = gif.Encode(w, img, nil)
	default:
		return fmt.Errorf("unknown file format %q", ext)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", ext, err)
	}
	return nil
}
