// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command datagarden shows the animated data garden in a window, or
// renders it headless and writes a YAML summary of its state.
package main

import (
	"log/slog"

	"cogentcore.org/core/base/logx"
	"cogentcore.org/core/cli"
	"cogentcore.org/datagarden/garden"
)

// Config is the configuration of the datagarden command.
type Config struct {

	// Garden is an optional garden config file (.toml, .yaml or .json).
	Garden string `posarg:"0" required:"-"`

	// Seed fixes the random seed; 0 picks a new one per mount.
	Seed int64

	// Width of the window or headless container in pixels.
	Width int `default:"960"`

	// Height of the garden in pixels; 0 uses the garden config.
	Height int

	// Watch remounts the garden whenever the Garden file changes.
	Watch bool `cmd:"run"`

	// Frames is the number of frames to render.
	Frames int `cmd:"dump" default:"120"`

	// Out is the file the summary is written to; stdout if empty.
	Out string `cmd:"dump"`

	// Verbose logs debug messages.
	Verbose bool `flag:"v,verbose"`
}

func main() {
	opts := cli.DefaultOptions("datagarden", "An animated 3D data garden.")
	opts.DefaultFiles = []string{"datagarden.toml"}
	cli.Run(opts, &Config{}, commands()...)
}

// commands returns the commands of datagarden, with run as the root.
func commands() []*cli.Cmd[*Config] {
	return []*cli.Cmd[*Config]{
		{Func: Run, Name: "run", Doc: "Run shows the garden in a window.", Root: true},
		{Func: Dump, Name: "dump", Doc: "Dump renders the garden headless and writes a YAML summary."},
	}
}

// setup applies the logging options.
func (c *Config) setup() {
	if c.Verbose {
		logx.UserLevel = slog.LevelDebug
	}
}

// gardenConfig loads the garden config, applying the command flags.
// Without a Garden file it gives the defaults.
func (c *Config) gardenConfig() (garden.Config, error) {
	var gc garden.Config
	if c.Garden != "" {
		var err error
		gc, err = garden.OpenConfig(c.Garden)
		if err != nil {
			return gc, err
		}
	}
	return c.applyFlags(gc).Normalize(), nil
}

// applyFlags overrides gc with the flags that are set.
func (c *Config) applyFlags(gc garden.Config) garden.Config {
	if c.Seed != 0 {
		gc.Seed = c.Seed
	}
	if c.Height > 0 {
		gc.Height = c.Height
	}
	return gc
}

// logConfig logs the effective garden config at debug level.
func logConfig(gc garden.Config) {
	slog.Debug("garden config", "nodes", gc.Nodes.Count, "strands", gc.Strands.Count, "height", gc.Height, "seed", gc.Seed)
}
