// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mount

import (
	"time"

	"cogentcore.org/datagarden/garden"
)

// maxFrameStep bounds the time step of one frame, so a tab that was
// hidden for a while does not make pulses jump.
const maxFrameStep = 100 * time.Millisecond

// instance is one mounted garden and its frame loop.
type instance struct {
	container Container
	scene     *garden.Scene
	sched     Scheduler

	// alive is cleared by stop; frames check it before touching the scene.
	alive bool

	cancel  func()
	started bool
	start   time.Duration
	last    time.Duration
}

// request schedules the next frame.
func (in *instance) request() {
	in.cancel = in.sched.RequestFrame(in.frame)
}

// frame is the per-refresh callback.
func (in *instance) frame(now time.Duration) {
	in.cancel = nil
	if !in.alive {
		return
	}
	if !in.started {
		in.started = true
		in.start, in.last = now, now
	}
	dt := min(max(now-in.last, 0), maxFrameStep)
	in.last = now
	if sz := in.container.Size(); sz.X > 0 && sz.Y > 0 {
		in.scene.Resize(sz)
	}
	in.scene.Step(float32((now - in.start).Seconds()), float32(dt.Seconds()))
	if in.alive {
		in.request()
	}
}

// stop ends the loop and releases the scene. It is idempotent.
func (in *instance) stop() {
	if !in.alive {
		return
	}
	in.alive = false
	if in.cancel != nil {
		in.cancel()
		in.cancel = nil
	}
	in.scene.Release()
}
