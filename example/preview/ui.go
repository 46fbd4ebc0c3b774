package main

import (
	"context"
	"errors"
	"fmt"
	"image"
	"image/color"
	"log"
	"sync"

	"gioui.org/font/gofont"
	"gioui.org/layout"
	"gioui.org/unit"
	"gioui.org/widget"
	"gioui.org/widget/material"
	"gioui.org/x/component"
	"golang.org/x/exp/shiny/materialdesign/icons"

	"git.sr.ht/~gioverse/draw9/async"
	"git.sr.ht/~gioverse/draw9/debug"
	previewlayout "git.sr.ht/~gioverse/draw9/layout"
	"git.sr.ht/~gioverse/draw9/preview"
	"git.sr.ht/~gioverse/draw9/stretch"
	"git.sr.ht/~gioverse/draw9/textlayout"
	previewwidget "git.sr.ht/~gioverse/draw9/widget"
)

type (
	C = layout.Context
	D = layout.Dimensions
)

// th is the active theme object.
var th = material.NewTheme(gofont.Collection())

// Gravity button icons, leading to trailing.
var (
	horizontalIcons = [...]*widget.Icon{
		mustIcon(icons.EditorFormatAlignLeft),
		mustIcon(icons.EditorFormatAlignCenter),
		mustIcon(icons.EditorFormatAlignRight),
	}
	verticalIcons = [...]*widget.Icon{
		mustIcon(icons.EditorVerticalAlignTop),
		mustIcon(icons.EditorVerticalAlignCenter),
		mustIcon(icons.EditorVerticalAlignBottom),
	}
)

func mustIcon(data []byte) *widget.Icon {
	icon, err := widget.NewIcon(data)
	if err != nil {
		panic(fmt.Errorf("decoding icon: %w", err))
	}
	return icon
}

// UI manages the state for the entire application's UI.
type UI struct {
	// Name of the previewed asset.
	Name string
	// Surface computes the previews.
	Surface *preview.Surface
	// Renderer rasterizes the views off the event loop. Bursts of edits
	// collapse into a single render.
	Renderer async.Coalescer

	lib *textlayout.Library

	// mu guards the rendered state below, written by Renderer.
	mu     sync.Mutex
	views  []preview.View
	frames []*image.NRGBA

	// Scale of the stretched views.
	Scale widget.Float
	// FontSize of the sample text.
	FontSize widget.Float
	// Text is the sample text.
	Text widget.Editor
	// Font selects the typeface by name.
	Font widget.Enum
	// Horizontal and Vertical gravity buttons.
	Horizontal, Vertical [3]widget.Clickable
	// Overlay toggles.
	ShowText, ShowPadding, ShowPatches widget.Bool
	// Tab selects the visible view by variant name.
	Tab widget.Enum
	// Controls adds scrolling to the controls.
	Controls widget.List

	images  [len(stretch.Variants)]previewwidget.CachedImage
	checker previewlayout.Checker
}

func newUI(name string, s *preview.Surface, lib *textlayout.Library) *UI {
	cfg := s.Config()
	ui := &UI{
		Name:        name,
		Surface:     s,
		lib:         lib,
		Scale:       widget.Float{Value: cfg.Scale},
		FontSize:    widget.Float{Value: float32(cfg.FontSize)},
		Text:        widget.Editor{SingleLine: true},
		Font:        widget.Enum{Value: cfg.FontName},
		ShowText:    widget.Bool{Value: cfg.ShowText},
		ShowPadding: widget.Bool{Value: cfg.ShowPadding},
		ShowPatches: widget.Bool{Value: cfg.ShowPatches},
		Tab:         widget.Enum{Value: stretch.Both.String()},
	}
	ui.Text.SetText(cfg.Text)
	ui.Controls.Axis = layout.Vertical
	ui.Renderer.Work = ui.render
	return ui
}

// render the views of the surface. Runs on the Renderer goroutine.
func (ui *UI) render(ctx context.Context) {
	views, err := ui.Surface.Views()
	var frames []*image.NRGBA
	if err == nil {
		frames = make([]*image.NRGBA, 0, len(views))
		for _, v := range views {
			if ctx.Err() != nil {
				return
			}
			var frame *image.NRGBA
			if frame, err = ui.Surface.Render(v); err != nil {
				break
			}
			frames = append(frames, frame)
		}
	}
	if errors.Is(err, preview.ErrStaleView) {
		// Inputs moved on; the follow-up render picks them up.
		return
	}
	if err != nil {
		log.Printf("rendering previews: %v", err)
		return
	}
	ui.mu.Lock()
	defer ui.mu.Unlock()
	ui.views, ui.frames = views, frames
}

// frame returns the latest render of a variant.
func (ui *UI) frame(v stretch.Variant) (preview.View, *image.NRGBA) {
	ui.mu.Lock()
	defer ui.mu.Unlock()
	if int(v) >= len(ui.frames) {
		return preview.View{}, nil
	}
	return ui.views[v], ui.frames[v]
}

// update applies control changes to the surface, requesting a render when
// anything changed.
func (ui *UI) update() {
	changed := false
	if ui.Scale.Changed() {
		ui.Surface.SetScale(ui.Scale.Value)
		changed = true
	}
	if ui.FontSize.Changed() {
		if err := ui.Surface.SetFontSize(int(ui.FontSize.Value)); err != nil {
			log.Printf("%v", err)
		}
		changed = true
	}
	for _, e := range ui.Text.Events() {
		if _, ok := e.(widget.ChangeEvent); ok {
			ui.Surface.SetText(ui.Text.Text())
			changed = true
		}
	}
	if ui.Font.Changed() {
		if err := ui.Surface.SetFont(ui.Font.Value); err != nil {
			log.Printf("%v", err)
		}
		changed = true
	}
	cfg := ui.Surface.Config()
	for ii := range ui.Horizontal {
		if ui.Horizontal[ii].Clicked() {
			ui.Surface.SetGravity(textlayout.Gravity(ii), cfg.VerticalGravity)
			changed = true
		}
		if ui.Vertical[ii].Clicked() {
			ui.Surface.SetGravity(cfg.HorizontalGravity, textlayout.Gravity(ii))
			changed = true
		}
	}
	for _, toggle := range []struct {
		b   *widget.Bool
		set func(bool)
	}{
		{&ui.ShowText, ui.Surface.SetShowText},
		{&ui.ShowPadding, ui.Surface.SetShowPadding},
		{&ui.ShowPatches, ui.Surface.SetShowPatches},
	} {
		if toggle.b.Changed() {
			toggle.set(toggle.b.Value)
			changed = true
		}
	}
	if changed {
		ui.Renderer.Request()
	}
}

// Layout the application UI.
func (ui *UI) Layout(gtx C) D {
	ui.update()
	return layout.Flex{
		Axis: layout.Horizontal,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			gtx.Constraints.Max.X = gtx.Dp(unit.Dp(320))
			gtx.Constraints.Min.X = gtx.Constraints.Max.X
			return material.List(th, &ui.Controls).Layout(gtx, 1, func(gtx C, _ int) D {
				return layout.UniformInset(unit.Dp(16)).Layout(gtx, ui.layoutControls)
			})
		}),
		layout.Rigid(func(gtx C) D {
			return component.Divider(th).Layout(gtx)
		}),
		layout.Flexed(1, ui.layoutPreview),
	)
}

func (ui *UI) layoutControls(gtx C) D {
	cfg := ui.Surface.Config()
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(
		gtx,
		layout.Rigid(func(gtx C) D {
			return material.H6(th, ui.Name).Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return LabeledSliderStyle{
				Label:  material.Body1(th, fmt.Sprintf("Scale: %.2fx", cfg.Scale)),
				Slider: material.Slider(th, &ui.Scale, preview.MinScale, preview.MaxScale),
			}.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return material.Body1(th, "Text (\\n breaks lines)").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return previewlayout.Background(th.Bg).Layout(gtx, func(gtx C) D {
				return widget.Border{
					Color: color.NRGBA{A: 100},
					Width: unit.Dp(1),
				}.Layout(gtx, func(gtx C) D {
					return layout.UniformInset(unit.Dp(6)).Layout(gtx, material.Editor(th, &ui.Text, "Sample text").Layout)
				})
			})
		}),
		layout.Rigid(layout.Spacer{Height: unit.Dp(8)}.Layout),
		layout.Rigid(func(gtx C) D {
			return LabeledSliderStyle{
				Label:  material.Body1(th, fmt.Sprintf("Font size: %dpx", cfg.FontSize)),
				Slider: material.Slider(th, &ui.FontSize, 8, 128),
			}.Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			names := ui.lib.Names()
			items := make([]layout.FlexChild, len(names))
			for ii, name := range names {
				name := name
				items[ii] = layout.Rigid(func(gtx C) D {
					return material.RadioButton(th, &ui.Font, name, name).Layout(gtx)
				})
			}
			return layout.Flex{Axis: layout.Vertical}.Layout(gtx, items...)
		}),
		layout.Rigid(func(gtx C) D {
			return ui.layoutGravity(gtx, ui.Horizontal[:], horizontalIcons[:], cfg.HorizontalGravity, "horizontal")
		}),
		layout.Rigid(func(gtx C) D {
			return ui.layoutGravity(gtx, ui.Vertical[:], verticalIcons[:], cfg.VerticalGravity, "vertical")
		}),
		layout.Rigid(func(gtx C) D {
			return material.CheckBox(th, &ui.ShowText, "Show text").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return material.CheckBox(th, &ui.ShowPadding, "Show content").Layout(gtx)
		}),
		layout.Rigid(func(gtx C) D {
			return material.CheckBox(th, &ui.ShowPatches, "Show patches").Layout(gtx)
		}),
	)
}

// layoutGravity lays out a row of gravity buttons, highlighting the current
// one.
func (ui *UI) layoutGravity(gtx C, buttons []widget.Clickable, glyphs []*widget.Icon, current textlayout.Gravity, axis string) D {
	items := make([]layout.FlexChild, 0, len(buttons)*2)
	for ii := range buttons {
		ii := ii
		items = append(items,
			layout.Rigid(func(gtx C) D {
				g := textlayout.Gravity(ii)
				btn := material.IconButton(th, &buttons[ii], glyphs[ii], fmt.Sprintf("%s %s", axis, g))
				btn.Size = unit.Dp(20)
				btn.Inset = layout.UniformInset(unit.Dp(6))
				if g != current {
					btn.Background = color.NRGBA{R: 0xbb, G: 0xbb, B: 0xbb, A: 0xff}
					btn.Color = th.Fg
				}
				return btn.Layout(gtx)
			}),
			layout.Rigid(layout.Spacer{Width: unit.Dp(6)}.Layout),
		)
	}
	return layout.Inset{Top: unit.Dp(4), Bottom: unit.Dp(4)}.Layout(gtx, func(gtx C) D {
		return layout.Flex{Alignment: layout.Middle}.Layout(gtx, items...)
	})
}

// layoutPreview lays out the view tabs above the selected view.
func (ui *UI) layoutPreview(gtx C) D {
	variant := stretch.Both
	for _, v := range stretch.Variants {
		if v.String() == ui.Tab.Value {
			variant = v
		}
	}
	view, frame := ui.frame(variant)
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(gtx,
		layout.Rigid(func(gtx C) D {
			items := make([]layout.FlexChild, len(stretch.Variants))
			for ii, v := range stretch.Variants {
				v := v
				items[ii] = layout.Rigid(func(gtx C) D {
					return material.RadioButton(th, &ui.Tab, v.String(), v.Label()).Layout(gtx)
				})
			}
			return layout.UniformInset(unit.Dp(8)).Layout(gtx, func(gtx C) D {
				return layout.Flex{Alignment: layout.Middle}.Layout(gtx, items...)
			})
		}),
		layout.Rigid(func(gtx C) D {
			status := "rendering"
			if frame != nil {
				status = fmt.Sprintf("%dx%d, %dpx horizontal and %dpx vertical to stretch",
					view.Width, view.Height, view.RemainderHorizontal, view.RemainderVertical)
			}
			return layout.Inset{Left: unit.Dp(8)}.Layout(gtx, material.Caption(th, status).Layout)
		}),
		layout.Flexed(1, func(gtx C) D {
			gtx.Constraints.Min = gtx.Constraints.Max
			return previewlayout.Background(color.NRGBA{R: 0x55, G: 0x55, B: 0x55, A: 0xff}).Layout(gtx, func(gtx C) D {
				if frame == nil {
					return D{Size: gtx.Constraints.Max}
				}
				ui.images[variant].Cache(frame)
				return previewlayout.Centered(gtx, frame.Bounds().Size(), func(gtx C) D {
					return debug.Outline(gtx, func(gtx C) D {
						return ui.checker.Layout(gtx, ui.images[variant].Layout)
					})
				})
			})
		}),
	)
}

// LabeledSliderStyle draws a slider with a label.
type LabeledSliderStyle struct {
	Label  material.LabelStyle
	Slider material.SliderStyle
}

func (slider LabeledSliderStyle) Layout(gtx C) D {
	gtx.Constraints.Min.X = gtx.Constraints.Max.X
	return layout.Flex{
		Axis: layout.Vertical,
	}.Layout(
		gtx,
		layout.Rigid(slider.Label.Layout),
		layout.Rigid(slider.Slider.Layout),
	)
}
