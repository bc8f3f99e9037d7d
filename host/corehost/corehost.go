// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package corehost hosts gardens in Cogent Core windows, drawing
// into an [xyzcore.Scene] widget on the GPU.
package corehost

import (
	"image"
	"time"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/core"
	"cogentcore.org/core/events"
	"cogentcore.org/core/styles"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz/xyzcore"
	"cogentcore.org/datagarden/garden"
	"cogentcore.org/datagarden/mount"
	"cogentcore.org/datagarden/render"
	"cogentcore.org/datagarden/render/xyzsurface"
)

// FrameInterval is the frame period of the widget ticker.
const FrameInterval = time.Second / 60

// Container is a [mount.Container] backed by an xyzcore.Scene widget.
type Container struct {
	Widget *xyzcore.Scene

	// Height is the widget height in dp.
	Height int

	// Reduced is the reported reduced-motion preference; desktop
	// platforms have no system setting for it.
	Reduced bool

	// Background overrides the page background taken from the
	// color scheme.
	Background string

	// Ticker delivers the frames.
	Ticker *mount.Ticker

	// OnClick, if set, is called on a click on the widget.
	OnClick func()

	// OnDrag, if set, is called with the pointer movement of a
	// drag on the widget, in place of the camera navigation.
	OnDrag func(dx, dy float32)

	// OnDragEnd, if set, is called when a drag ends.
	OnDragEnd func()
}

// New adds a garden widget to parent and returns its container.
func New(parent tree.Node, height int) *Container {
	w := xyzcore.NewScene(parent)
	c := &Container{Widget: w, Height: height}
	c.Ticker = &mount.Ticker{Lock: w.AsyncLock, Unlock: w.AsyncUnlock}
	w.Styler(func(s *styles.Style) {
		s.Grow.Set(1, 0)
		s.Min.Y.Dp(float32(c.Height))
	})
	w.On(events.Click, func(e events.Event) {
		if c.OnClick != nil {
			c.OnClick()
		}
	})
	w.On(events.SlideMove, func(e events.Event) {
		if c.OnDrag == nil {
			return
		}
		e.SetHandled()
		d := e.PrevDelta()
		c.OnDrag(float32(d.X), float32(d.Y))
	})
	w.On(events.SlideStop, func(e events.Event) {
		if c.OnDragEnd != nil {
			c.OnDragEnd()
		}
	})
	core.TheApp.AddQuitCleanFunc(c.Ticker.Stop)
	return c
}

func (c *Container) Size() image.Point {
	return c.Widget.Geom.Size.Actual.Content.ToPointFloor()
}

func (c *Container) ReducedMotion() bool {
	return c.Reduced
}

func (c *Container) PageBackground() string {
	if c.Background != "" {
		return c.Background
	}
	return colors.AsHex(colors.ToUniform(colors.Scheme.Background))
}

func (c *Container) NewSurface(size image.Point) (render.Surface, error) {
	s := xyzsurface.New(c.Widget.SceneXYZ())
	s.OnRender = c.Widget.NeedsRender
	c.Ticker.Start(FrameInterval)
	return s, nil
}

func (c *Container) Scheduler() mount.Scheduler {
	return c.Ticker
}

// Mount mounts a garden on c with reg, nudging it on clicks and
// rotating it on drags.
func Mount(reg *mount.Registry, c *Container, cfg garden.Config) error {
	if cfg.Height == 0 {
		cfg.Height = c.Height
	}
	c.OnClick = func() {
		if sc := reg.Scene(c); sc != nil {
			sc.Nudge()
		}
	}
	c.OnDrag = func(dx, dy float32) {
		if sc := reg.Scene(c); sc != nil {
			sc.Drag(dx, dy)
		}
	}
	c.OnDragEnd = func() {
		if sc := reg.Scene(c); sc != nil {
			sc.EndDrag()
		}
	}
	return reg.Mount(c, cfg)
}
