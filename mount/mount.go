// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package mount attaches garden scenes to host containers and drives
// them once per display refresh.
//
// A [Registry] maps containers to their mounted scene. It is owned by
// the host application and, like the frame callbacks it schedules, is
// used from a single goroutine (or under the host's render lock): the
// host delivers frames serially and never re-enters a frame callback.
package mount

import (
	"fmt"
	"image"
	"log/slog"
	"time"

	"cogentcore.org/datagarden/garden"
	"cogentcore.org/datagarden/randx"
	"cogentcore.org/datagarden/render"
)

// Container is a host element that a garden can be mounted into.
// Implementations must be comparable (typically pointers); they are
// used as registry keys.
type Container interface {
	// Size returns the current pixel size of the container.
	Size() image.Point

	// ReducedMotion returns the user's reduced-motion preference.
	ReducedMotion() bool

	// PageBackground returns the ambient page background color,
	// or "" if there is none.
	PageBackground() string

	// NewSurface acquires a render surface attached to the container.
	NewSurface(size image.Point) (render.Surface, error)

	// Scheduler returns the frame scheduler of the host.
	Scheduler() Scheduler
}

// FrameFunc is called by a [Scheduler] for one display refresh,
// with the host's monotonic frame time.
type FrameFunc func(now time.Duration)

// Scheduler delivers frame callbacks at the display refresh cadence.
type Scheduler interface {
	// RequestFrame schedules fn to be called once, on the next frame.
	// The returned function cancels the request if it has not run yet.
	RequestFrame(fn FrameFunc) (cancel func())
}

// Registry maps containers to mounted scenes.
type Registry struct {
	mounts map[Container]*instance
	seeds  randx.Seeds
}

// NewRegistry returns a new empty registry.
func NewRegistry() *Registry {
	return &Registry{mounts: map[Container]*instance{}}
}

// Mount builds a new garden from cfg and attaches it to c, starting
// its frame loop. If c already has a garden, it is unmounted first.
// Failure to acquire a render surface is returned, and leaves
// nothing mounted on c.
func (r *Registry) Mount(c Container, cfg garden.Config) error {
	r.Unmount(c)
	cfg = cfg.Normalize()
	env := garden.Env{
		Size:           c.Size(),
		ReducedMotion:  c.ReducedMotion(),
		PageBackground: c.PageBackground(),
	}
	if env.Size.Y <= 0 {
		env.Size.Y = cfg.Height
	}
	surf, err := c.NewSurface(env.Size)
	if err != nil {
		return fmt.Errorf("mount: acquire surface: %w", err)
	}
	if surf == nil {
		return fmt.Errorf("mount: acquire surface: container returned no surface")
	}
	rnd := r.seeds.NewRand(cfg.Seed)
	sc, err := garden.NewScene(cfg, env, surf, rnd)
	if err != nil {
		surf.Release()
		return fmt.Errorf("mount: %w", err)
	}
	in := &instance{container: c, scene: sc, sched: c.Scheduler(), alive: true}
	r.mounts[c] = in
	slog.Debug("garden mounted", "size", env.Size, "seed", rnd.Seed, "reducedMotion", env.ReducedMotion)
	in.request()
	return nil
}

// Unmount stops the frame loop of the garden on c and releases its
// render resources. It does nothing if c has no garden, so it is
// safe to call any number of times.
func (r *Registry) Unmount(c Container) {
	in, ok := r.mounts[c]
	if !ok {
		return
	}
	delete(r.mounts, c)
	in.stop()
	slog.Debug("garden unmounted")
}

// Scene returns the scene mounted on c, or nil.
func (r *Registry) Scene(c Container) *garden.Scene {
	if in, ok := r.mounts[c]; ok {
		return in.scene
	}
	return nil
}

// Len returns the number of mounted gardens.
func (r *Registry) Len() int {
	return len(r.mounts)
}

// UnmountAll unmounts every garden.
func (r *Registry) UnmountAll() {
	for c := range r.mounts {
		r.Unmount(c)
	}
}
