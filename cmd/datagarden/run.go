// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"log/slog"

	"cogentcore.org/core/base/errors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/datagarden/garden"
	"cogentcore.org/datagarden/host/corehost"
	"cogentcore.org/datagarden/mount"
)

// Run shows the garden in a window. With Watch, the garden is
// remounted whenever its config file changes.
func Run(c *Config) error {
	c.setup()
	gc, err := c.gardenConfig()
	if err != nil {
		return err
	}
	logConfig(gc)

	b := core.NewBody("Data Garden")
	ct := corehost.New(b, gc.Height)
	ct.Widget.Styler(func(s *styles.Style) {
		s.Min.X.Dp(float32(c.Width))
	})
	reg := mount.NewRegistry()
	b.OnShow(func(e events.Event) {
		errors.Log(corehost.Mount(reg, ct, gc))
	})
	b.OnClose(func(e events.Event) {
		reg.UnmountAll()
	})

	if c.Watch && c.Garden != "" {
		w, err := garden.WatchConfig(c.Garden, func(next garden.Config) {
			next = c.applyFlags(next).Normalize()
			slog.Info("garden config changed, remounting", "file", c.Garden)
			ct.Widget.AsyncLock()
			defer ct.Widget.AsyncUnlock()
			errors.Log(corehost.Mount(reg, ct, next))
		})
		if err != nil {
			return err
		}
		defer w.Close()
	}
	b.RunMainWindow()
	return nil
}
