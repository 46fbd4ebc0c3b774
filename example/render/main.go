// Package main renders the previews of a 9-patch asset to PNG files, one per
// view.
package main

import (
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"git.sr.ht/~gioverse/draw9/ninepatch"
	"git.sr.ht/~gioverse/draw9/preview"
	"git.sr.ht/~gioverse/draw9/stretch"
	"git.sr.ht/~gioverse/draw9/textlayout"
)

func main() {
	var (
		in      string
		out     string
		verbose bool
		cfg     = preview.DefaultConfig()
		scale   = float64(cfg.Scale)
	)
	flag.StringVar(&in, "in", "", "png to render; names ending in .9.png are read as annotated")
	flag.StringVar(&out, "out", ".", "directory receiving one png per view")
	flag.Float64Var(&scale, "scale", scale, "stretch factor of the scaled views")
	flag.StringVar(&cfg.Text, "text", "", "sample text; \\n breaks lines")
	flag.StringVar(&cfg.FontName, "font", cfg.FontName, "font name")
	flag.IntVar(&cfg.FontSize, "size", cfg.FontSize, "font size in pixels")
	flag.Var(&cfg.HorizontalGravity, "h", "horizontal gravity: left, center or right")
	flag.Var(&cfg.VerticalGravity, "v", "vertical gravity: top, center or bottom")
	flag.BoolVar(&cfg.ShowPadding, "padding", false, "tint the content box")
	flag.BoolVar(&cfg.ShowPatches, "patches", false, "tint the stretched cells")
	flag.BoolVar(&verbose, "verbose", false, "log recomputations")
	flag.Parse()
	cfg.Scale = float32(scale)
	if verbose {
		preview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	written, err := run(in, out, cfg)
	if err != nil {
		log.Fatalf("render: %v", err)
	}
	for _, path := range written {
		log.Printf("wrote %s", path)
	}
}

// run renders every view of the asset at in, writing them to dir and
// returning the written paths.
func run(in, dir string, cfg preview.Config) ([]string, error) {
	if in == "" {
		return nil, fmt.Errorf("no input: use -in")
	}
	f, err := os.Open(in)
	if err != nil {
		return nil, fmt.Errorf("opening asset: %w", err)
	}
	defer f.Close()
	img, p, err := ninepatch.Load(f, filepath.Base(in))
	if err != nil {
		return nil, err
	}
	lib, err := textlayout.NewLibrary()
	if err != nil {
		return nil, err
	}
	surface, err := preview.New(img, p, lib, cfg)
	if err != nil {
		return nil, err
	}
	frames, err := surface.RenderAll()
	if err != nil {
		return nil, err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}
	var (
		base    = strings.TrimSuffix(strings.TrimSuffix(filepath.Base(in), ninepatch.Extension), ".png")
		written = make([]string, 0, len(frames))
	)
	for ii, frame := range frames {
		if frame.Rect.Empty() {
			// Exact view of an asset without padding or text.
			continue
		}
		path := filepath.Join(dir, fmt.Sprintf("%s.%s.png", base, stretch.Variants[ii]))
		if err := save(path, frame); err != nil {
			return written, err
		}
		written = append(written, path)
	}
	return written, nil
}

func save(path string, img *image.NRGBA) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating %s: %w", path, err)
	}
	if err := ninepatch.Save(f, img); err != nil {
		f.Close()
		return fmt.Errorf("writing %s: %w", path, err)
	}
	return f.Close()
}
