package main

import (
	"log/slog"

	"github.com/spnavcfg/spnavcfg/engine/assets"
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/draw"
	"github.com/spnavcfg/spnavcfg/engine/gfx/renderer2d"
	"github.com/spnavcfg/spnavcfg/engine/profiler"
	"github.com/spnavcfg/spnavcfg/engine/scene"
	"github.com/spnavcfg/spnavcfg/engine/ui"
	"github.com/spnavcfg/spnavcfg/internal/panel"
)

// panelFrame owns everything needed to turn Settings into backend calls:
// the coordinate space, the command buffer and the interpreter.
type panelFrame struct {
	settings panel.Settings
	space    *scene.Space
	interp   *draw.Interpreter
	out      *draw.Buffer
	pic      panel.Picture
	prof     *profiler.Profiler
}

// newPanelFrame uploads the device atlas to r. A failed upload only drops
// the picture.
func newPanelFrame(r core.Renderer, w, h int, s panel.Settings, prof *profiler.Profiler, logger *slog.Logger) *panelFrame {
	space := scene.NewSpace(w, h)
	f := &panelFrame{
		settings: s,
		space:    space,
		interp:   draw.New(r, space),
		out:      draw.NewBuffer(space),
		prof:     prof,
	}
	desc := assets.TextureFromImage(panel.DeviceAtlas())
	tex, err := r.CreateTexture(desc)
	if err != nil {
		logger.Warn("device picture unavailable", "error", err)
		return f
	}
	f.pic = panel.Picture{Texture: tex, W: desc.Width, H: desc.Height}
	return f
}

func (f *panelFrame) Resize(w, h int) { f.interp.Resize(w, h) }

// Render lays out the panel and interprets the resulting command stream.
func (f *panelFrame) Render() renderer2d.Statistics {
	defer f.prof.Start("frame")()

	endLayout := f.prof.Start("layout")
	f.out.Reset()
	vw, vh := f.space.VirtualSize()
	ctx := ui.NewContext(core.Rect{W: vw, H: vh}, f.interp.MeasureFunc(), f.interp.Metrics().LineHeight(), f.out)
	ui.Render(ctx, panel.Build(f.settings, f.pic))
	endLayout()

	endDraw := f.prof.Start("interpret")
	stats := f.interp.DrawFrame(f.out.Commands())
	endDraw()
	return stats
}
