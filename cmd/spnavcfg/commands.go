package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/spnavcfg/spnavcfg/engine/core"
	glbackend "github.com/spnavcfg/spnavcfg/engine/gfx/gl"
	"github.com/spnavcfg/spnavcfg/engine/gfx/record"
	"github.com/spnavcfg/spnavcfg/engine/gfx/soft"
	"github.com/spnavcfg/spnavcfg/engine/platform"
	"github.com/spnavcfg/spnavcfg/engine/profiler"
	"github.com/spnavcfg/spnavcfg/internal/panel"
)

// RunCmd opens a GLFW window and draws the panel with OpenGL.
type RunCmd struct{}

func (c *RunCmd) Run(cli *CLI, logger *slog.Logger) error {
	app := &App{settings: cli.Panel, logger: logger, prof: profiler.New(1 << 14)}

	var win *platform.GLFWWindow
	newWindow := func(cfg core.Config) (core.Window, error) {
		w, err := platform.NewGLFWWindow(cfg, nil)
		if err != nil {
			return nil, fmt.Errorf("create window: %w", err)
		}
		win = w
		return w, nil
	}
	newRenderer := func(w core.Window, cfg core.Config) (core.Renderer, error) {
		r, err := glbackend.NewRendererGL(w, cfg)
		if err != nil {
			return nil, fmt.Errorf("create gl renderer: %w", err)
		}
		return r, nil
	}
	defer func() {
		if win != nil {
			win.Destroy()
		}
	}()

	logger.Info("backend selected", "backend", "gl")
	return core.Run(app, cli.Window.config(), newWindow, newRenderer)
}

// SnapshotCmd renders one frame with the software backend.
type SnapshotCmd struct {
	Out string `short:"o" help:"Output PNG file." default:"spnavcfg.png" type:"path"`
}

func (c *SnapshotCmd) Run(cli *CLI, logger *slog.Logger) error {
	f, err := os.Create(c.Out)
	if err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	if err := snapshot(f, cli.Window.Width, cli.Window.Height, cli.Panel, logger); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	logger.Info("snapshot written", "file", c.Out)
	return nil
}

func snapshot(w io.Writer, width, height int, s panel.Settings, logger *slog.Logger) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("snapshot: invalid size %dx%d", width, height)
	}
	r := soft.New(width, height)
	defer r.Shutdown()
	if err := r.Init(); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	logger.Info("backend selected", "backend", "soft")

	frame := newPanelFrame(r, width, height, s, nil, logger)
	r.Clear(panel.Background)
	stats := frame.Render()
	logger.Debug("frame rendered", "commands", stats.Commands, "draw_calls", stats.DrawCalls)

	if err := r.EncodePNG(w); err != nil {
		return fmt.Errorf("snapshot: encode png: %w", err)
	}
	return nil
}

// TraceCmd prints the backend calls of one frame.
type TraceCmd struct {
	Profile string `help:"Also write a speedscope profile of the frame to this file." type:"path"`
}

func (c *TraceCmd) Run(cli *CLI, logger *slog.Logger) error {
	var prof *profiler.Profiler
	if c.Profile != "" {
		prof = profiler.New(256)
	}
	if err := trace(os.Stdout, cli.Window.Width, cli.Window.Height, cli.Panel, prof, logger); err != nil {
		return err
	}
	if prof != nil {
		if err := prof.Dump(c.Profile); err != nil {
			return fmt.Errorf("trace: write profile: %w", err)
		}
		logger.Info("profile written", "file", c.Profile)
	}
	return nil
}

func trace(w io.Writer, width, height int, s panel.Settings, prof *profiler.Profiler, logger *slog.Logger) error {
	rec := record.New()
	logger.Info("backend selected", "backend", "record")

	frame := newPanelFrame(rec, width, height, s, prof, logger)
	frame.Resize(width, height)
	rec.Clear(panel.Background)
	stats := frame.Render()

	if err := rec.Dump(w); err != nil {
		return fmt.Errorf("trace: %w", err)
	}
	_, err := fmt.Fprintf(w, "# commands=%d skipped=%d draw_calls=%d vertices=%d state_changes=%d scissors=%d\n",
		stats.Commands, stats.Skipped, stats.DrawCalls, stats.Vertices, stats.StateChanges, stats.Scissors)
	return err
}
