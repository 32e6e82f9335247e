package main

import (
	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/internal/panel"
)

// CLI is the root of the command line. Every flag can also come from a
// configuration file; see configpaths.ConfigCandidatePaths.
type CLI struct {
	ConfigFile string `name:"config" help:"Configuration file (json, yaml or toml)." type:"path" env:"SPNAVCFG_CONFIG"`

	Log    LogFlags       `embed:""`
	Window WindowFlags    `embed:"" group:"Window"`
	Panel  panel.Settings `embed:"" group:"Panel"`

	Run      RunCmd        `cmd:"" default:"1" help:"Open the configuration window."`
	Snapshot SnapshotCmd   `cmd:"" help:"Render one frame headless into a PNG file."`
	Trace    TraceCmd      `cmd:"" help:"Print the rasterization calls of one frame."`
	Config   ConfigCommand `cmd:"" help:"Manage configuration files."`
}

type LogFlags struct {
	Level string `name:"log-level" help:"Log level." enum:"trace,debug,info,warn,error" default:"info"`
	File  string `name:"log-file" help:"Write logs to this file instead of the console." type:"path"`
}

type WindowFlags struct {
	Width  int    `help:"Framebuffer width in pixels." default:"800"`
	Height int    `help:"Framebuffer height in pixels." default:"600"`
	Title  string `help:"Window title." default:"spacenav configuration"`
	VSync  bool   `name:"vsync" help:"Synchronize swaps with the display." default:"true" negatable:""`
}

func (w WindowFlags) config() core.Config {
	return core.Config{
		Title:      w.Title,
		Width:      w.Width,
		Height:     w.Height,
		VSync:      w.VSync,
		ClearColor: panel.Background,
	}
}
