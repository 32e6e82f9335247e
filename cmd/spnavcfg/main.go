package main

import (
	"os"
	"runtime"

	"github.com/spnavcfg/spnavcfg/engine/core"
	"github.com/spnavcfg/spnavcfg/internal/configpaths"
	"github.com/spnavcfg/spnavcfg/internal/log"

	"github.com/alecthomas/kong"
	kongtoml "github.com/alecthomas/kong-toml"
	kongyaml "github.com/alecthomas/kong-yaml"
)

// GLFW and GL calls must stay on the main OS thread.
func init() { runtime.LockOSThread() }

func main() {
	userCfg := configpaths.FindUserConfig(os.Args[1:])
	jsonPaths, yamlPaths, tomlPaths := configpaths.ConfigCandidatePaths(userCfg)

	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("spnavcfg"),
		kong.Description("Configuration panel for 6-DoF motion controllers"),
		kong.UsageOnError(),
		// Flags and environment override configuration file values.
		kong.Configuration(kong.JSON, jsonPaths...),
		kong.Configuration(kongyaml.Loader, yamlPaths...),
		kong.Configuration(kongtoml.Loader, tomlPaths...),
	)

	logger, closeFiles, err := log.SetupLogger(cli.Log.Level, cli.Log.File)
	if err != nil {
		_, _ = os.Stderr.WriteString("failed to setup logger: " + err.Error() + "\n")
		os.Exit(2)
	}
	defer func() {
		for _, c := range closeFiles {
			_ = c.Close()
		}
	}()
	core.SetLogger(logger)

	ctx.FatalIfErrorf(cli.Panel.Validate())
	ctx.Bind(logger)
	ctx.Bind(&cli)

	err = ctx.Run()
	ctx.FatalIfErrorf(err)
}
