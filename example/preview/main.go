// Package main is a preview window for 9-patch assets: it shows how an
// annotated image stretches and where text lands inside it.
package main

import (
	"context"
	"flag"
	"fmt"
	"image"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"gioui.org/app"
	"gioui.org/io/system"
	"gioui.org/layout"
	"gioui.org/op"
	"gioui.org/unit"
	lorem "github.com/drhodes/golorem"

	"git.sr.ht/~gioverse/draw9/ninepatch"
	"git.sr.ht/~gioverse/draw9/preview"
	"git.sr.ht/~gioverse/draw9/profile"
	"git.sr.ht/~gioverse/draw9/textlayout"
)

var (
	// in is the asset to preview. Empty previews a generated bubble.
	in string
	// ttf is an extra font made available to the preview.
	ttf string
	// verbose logs recomputations.
	verbose bool
	// profileOpt specifies what to profile.
	profileOpt = profile.None
)

func init() {
	flag.StringVar(&in, "in", "", "png to preview; names ending in .9.png are read as annotated")
	flag.StringVar(&ttf, "ttf", "", "additional TrueType font to offer")
	flag.BoolVar(&verbose, "v", false, "log recomputations")
	flag.Var(&profileOpt, "profile", profile.Usage())
}

func main() {
	flag.Parse()
	if verbose {
		preview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}
	ui, err := NewUI()
	if err != nil {
		log.Fatalf("preparing preview: %v", err)
	}
	go func() {
		w := app.NewWindow(
			app.Title(fmt.Sprintf("9-Patch Preview: %s", ui.Name)),
			app.Size(unit.Dp(900), unit.Dp(640)),
		)
		if err := ui.Run(w); err != nil {
			fmt.Fprintln(os.Stderr, err)
			os.Exit(1)
		}
		os.Exit(0)
	}()
	// Surrender main thread to OS.
	// Necessary for certain platforms.
	app.Main()
}

// NewUI loads the asset and fonts named by the flags.
func NewUI() (*UI, error) {
	lib, err := textlayout.NewLibrary()
	if err != nil {
		return nil, err
	}
	if ttf != "" {
		data, err := os.ReadFile(ttf)
		if err != nil {
			return nil, fmt.Errorf("reading font: %w", err)
		}
		if err := lib.Add(filepath.Base(ttf), data); err != nil {
			return nil, err
		}
	}
	name, img, p, err := load(in)
	if err != nil {
		return nil, err
	}
	cfg := preview.DefaultConfig()
	cfg.Text = lorem.Sentence(3, 6)
	surface, err := preview.New(img, p, lib, cfg)
	if err != nil {
		return nil, err
	}
	return newUI(name, surface, lib), nil
}

// load the asset at path, or the generated sample when path is empty.
func load(path string) (string, *image.NRGBA, ninepatch.Partition, error) {
	if path == "" {
		img := Sample()
		p, err := ninepatch.Decode(img)
		return "sample" + ninepatch.Extension, img, p, err
	}
	f, err := os.Open(path)
	if err != nil {
		return "", nil, ninepatch.Partition{}, fmt.Errorf("opening asset: %w", err)
	}
	defer f.Close()
	img, p, err := ninepatch.Load(f, filepath.Base(path))
	return filepath.Base(path), img, p, err
}

// Run handles window events and renders the application.
func (ui *UI) Run(w *app.Window) error {
	profiler := profileOpt.NewProfiler()
	profiler.Start()
	defer profiler.Stop()
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	go ui.Renderer.Run(ctx)
	ui.Renderer.Request()
	var ops op.Ops
	for {
		select {
		case <-ui.Renderer.Updated():
			w.Invalidate()
		case e := <-w.Events():
			switch e := e.(type) {
			case system.DestroyEvent:
				return e.Err
			case system.FrameEvent:
				gtx := layout.NewContext(&ops, e)
				profiler.Record(gtx)
				ui.Layout(gtx)
				e.Frame(&ops)
			}
		}
	}
}
