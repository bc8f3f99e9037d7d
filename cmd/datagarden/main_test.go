// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"os"
	"testing"

	"cogentcore.org/core/cli"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// runArgs runs datagarden with args, recording the command run
// instead of running it.
func runArgs(t *testing.T, args ...string) (string, *Config) {
	old := os.Args
	t.Cleanup(func() { os.Args = old })
	os.Args = append([]string{"datagarden"}, args...)

	ran := ""
	cmds := commands()
	for _, c := range cmds {
		name := c.Name
		c.Func = func(*Config) error {
			ran = name
			return nil
		}
	}
	opts := cli.DefaultOptions("datagarden")
	opts.Fatal = false
	opts.PrintSuccess = false
	cfg := &Config{}
	require.NoError(t, cli.Run(opts, cfg, cmds...))
	return ran, cfg
}

func TestRootCommand(t *testing.T) {
	ran, _ := runArgs(t)
	assert.Equal(t, "run", ran)

	ran, cfg := runArgs(t, "garden.toml", "-watch")
	assert.Equal(t, "run", ran)
	assert.Equal(t, "garden.toml", cfg.Garden)
	assert.True(t, cfg.Watch)
}

func TestDumpCommand(t *testing.T) {
	ran, cfg := runArgs(t, "dump", "-frames", "10")
	assert.Equal(t, "dump", ran)
	assert.Equal(t, 10, cfg.Frames)
	assert.Equal(t, 960, cfg.Width)
}
