// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package headless provides an in-memory [mount.Container] with a
// manually advanced frame clock and recording surfaces. It is used
// in tests and to render gardens without a display.
package headless

import (
	"image"
	"time"

	"cogentcore.org/datagarden/mount"
	"cogentcore.org/datagarden/render"
	"cogentcore.org/datagarden/render/recorder"
)

// Container is a headless [mount.Container].
type Container struct {

	// Width and Height are the container size in pixels.
	Width, Height int

	// Reduced is the reported reduced-motion preference.
	Reduced bool

	// Background is the reported page background.
	Background string

	// SurfaceErr, if set, makes NewSurface fail with it.
	SurfaceErr error

	// Clock delivers the frames.
	Clock *Clock

	// Surfaces are all the surfaces handed out, in order.
	Surfaces []*recorder.Surface
}

// NewContainer returns a container of the given size with its own clock.
func NewContainer(width, height int) *Container {
	return &Container{Width: width, Height: height, Clock: &Clock{}}
}

func (c *Container) Size() image.Point {
	return image.Pt(c.Width, c.Height)
}

func (c *Container) ReducedMotion() bool {
	return c.Reduced
}

func (c *Container) PageBackground() string {
	return c.Background
}

func (c *Container) NewSurface(size image.Point) (render.Surface, error) {
	if c.SurfaceErr != nil {
		return nil, c.SurfaceErr
	}
	s := recorder.New(size)
	c.Surfaces = append(c.Surfaces, s)
	return s, nil
}

func (c *Container) Scheduler() mount.Scheduler {
	return c.Clock
}

// Surface returns the most recent surface, or nil.
func (c *Container) Surface() *recorder.Surface {
	if len(c.Surfaces) == 0 {
		return nil
	}
	return c.Surfaces[len(c.Surfaces)-1]
}

// Clock is a [mount.Scheduler] whose frames are delivered by Tick.
type Clock struct {

	// Now is the current frame time.
	Now time.Duration

	pending []*request
}

type request struct {
	fn       mount.FrameFunc
	canceled bool
}

func (ck *Clock) RequestFrame(fn mount.FrameFunc) func() {
	rq := &request{fn: fn}
	ck.pending = append(ck.pending, rq)
	return func() { rq.canceled = true }
}

// Pending returns the number of frame requests waiting to run.
func (ck *Clock) Pending() int {
	n := 0
	for _, rq := range ck.pending {
		if !rq.canceled {
			n++
		}
	}
	return n
}

// Tick advances the clock by dt and runs the requests pending
// before the tick. Requests made during the tick wait for the next one.
func (ck *Clock) Tick(dt time.Duration) {
	ck.Now += dt
	run := ck.pending
	ck.pending = nil
	for _, rq := range run {
		if !rq.canceled {
			rq.fn(ck.Now)
		}
	}
}

// Run ticks n frames of dt each.
func (ck *Clock) Run(n int, dt time.Duration) {
	for range n {
		ck.Tick(dt)
	}
}
