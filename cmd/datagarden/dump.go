// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"fmt"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/datagarden/host/headless"
	"cogentcore.org/datagarden/mount"
)

// Dump renders the garden headless for a number of frames and
// writes a YAML summary of its state.
func Dump(c *Config) error {
	c.setup()
	gc, err := c.gardenConfig()
	if err != nil {
		return err
	}
	logConfig(gc)

	ct := headless.NewContainer(c.Width, gc.Height)
	reg := mount.NewRegistry()
	if err := reg.Mount(ct, gc); err != nil {
		return fmt.Errorf("dump: %w", err)
	}
	ct.Clock.Run(c.Frames, time.Second/60)
	sm := headless.Summarize(reg.Scene(ct), ct.Surface())
	reg.UnmountAll()

	if c.Out == "" {
		return sm.WriteYAML(os.Stdout)
	}
	f, err := os.Create(c.Out)
	if err != nil {
		return err
	}
	if err := sm.WriteYAML(f); err != nil {
		f.Close()
		return err
	}
	slog.Info("wrote garden summary", "file", c.Out, "frames", sm.Frames)
	return f.Close()
}
