package main

import (
	"log/slog"
	"os"
	"path/filepath"

	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/engine/gfx/renderer2d"
	"github.com/spnavcfg/spnavcfg/engine/profiler"
	"github.com/spnavcfg/spnavcfg/internal/panel"
)

// App only owns the panel layer.
type App struct {
	settings panel.Settings
	logger   *slog.Logger
	prof     *profiler.Profiler
	layer    *PanelLayer
}

func (a *App) OnStart(e *core.Engine) {
	a.layer = &PanelLayer{settings: a.settings, logger: a.logger, prof: a.prof}
	e.Layers.Push(a.layer)
}
func (a *App) OnUpdate(e *core.Engine, dt float64)    {}
func (a *App) OnRender(e *core.Engine, alpha float64) {}
func (a *App) OnEvent(e *core.Engine, ev core.Event)  {}
func (a *App) OnShutdown(e *core.Engine)              {}

// PanelLayer draws the configuration panel every frame.
//
// Keys: Escape quits, Tab cycles the device picture, Space logs the last
// frame statistics, Ctrl+P writes a speedscope profile.
type PanelLayer struct {
	settings panel.Settings
	logger   *slog.Logger
	prof     *profiler.Profiler
	frame    *panelFrame
	stats    renderer2d.Statistics
}

func (l *PanelLayer) OnAttach(e *core.Engine) {
	w, h := e.Window.FramebufferSize()
	l.frame = newPanelFrame(e.Renderer, w, h, l.settings, l.prof, l.logger)
}

func (l *PanelLayer) OnDetach(e *core.Engine) {}

func (l *PanelLayer) OnUpdate(e *core.Engine, dt float64) {
	if e.Input.IsKeyDown(core.KeyEscape) {
		e.Window.RequestClose()
	}
}

func (l *PanelLayer) OnRender(e *core.Engine, alpha float64) {
	l.stats = l.frame.Render()
}

func (l *PanelLayer) OnEvent(e *core.Engine, ev core.Event) bool {
	switch v := ev.(type) {
	case core.EventResize:
		l.frame.Resize(v.W, v.H)
	case core.EventKey:
		if !v.Down {
			return false
		}
		switch {
		case v.Key == core.KeyTab:
			m := panel.NextModel(l.frame.settings.DeviceType)
			l.frame.settings.DeviceType = m.Key
			e.Window.SetTitle(panel.Title + " - " + m.Name)
			return true
		case v.Key == core.KeySpace:
			l.logger.Info("frame",
				"commands", l.stats.Commands,
				"skipped", l.stats.Skipped,
				"draw_calls", l.stats.DrawCalls,
				"vertices", l.stats.Vertices,
				"uptime", e.Uptime())
			return true
		case v.Key == core.KeyP && v.Mods&core.ModCtrl != 0:
			path := filepath.Join(os.TempDir(), "spnavcfg.speedscope.json")
			if err := l.prof.Dump(path); err != nil {
				l.logger.Error("profile dump failed", "error", err)
			} else {
				l.logger.Info("profile written", "file", path)
			}
			return true
		}
	}
	return false
}
