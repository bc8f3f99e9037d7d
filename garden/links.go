// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/randx"
)

// pulseRate converts link speed into progress per second.
const pulseRate = 0.35

// LinksConfig parameterizes the links between strand tips and nodes.
type LinksConfig struct {

	// PerTip is the number of links from each strand tip.
	// Use [Config.NoLinks] for none.
	PerTip int `default:"1" min:"1"`

	// Samples is the number of points each link curve is resampled into.
	Samples int `default:"40" min:"2"`

	// Lift raises the curve control point above the midpoint.
	Lift float32 `default:"0.6"`
}

// Link is an arcing connector from a strand tip to a node, with
// a pulse travelling along it.
type Link struct {

	// Tip is the strand tip this link starts from (not owned).
	Tip *math32.Vector3

	// Target is the index of the node the link ends at.
	Target int

	// Speed is the pulse speed of this link.
	Speed float32

	// Progress is the pulse position along the curve, in [0, 1).
	Progress float32

	// Path is the resampled curve, updated every frame.
	Path []math32.Vector3

	// Pulse is the current pulse position.
	Pulse math32.Vector3
}

// Advance moves the pulse forward by step and wraps it into [0, 1).
func (ln *Link) Advance(step float32) {
	ln.Progress += step
	if ln.Progress >= 1 || ln.Progress < 0 {
		ln.Progress -= math32.Floor(ln.Progress)
	}
	if ln.Progress >= 1 { // rounding
		ln.Progress = 0
	}
}

// LinkRouter keeps the links between strand tips and graph nodes.
// Node targets are chosen once, at construction.
type LinkRouter struct {
	Links []*Link

	// Offset is added to tip positions to bring them into the
	// frame of the node positions.
	Offset math32.Vector3

	// Lift raises the curve control point above the midpoint.
	Lift float32

	graph *NodeGraph
}

// NewLinkRouter connects every tip to its perTip nearest nodes in
// graph (by current position), after shifting tips by offset.
// perTip is clamped to the number of nodes. Speeds and starting
// progress are drawn from rnd. With no tips or no graph the router
// has no links and Update does nothing.
func NewLinkRouter(tips []*math32.Vector3, graph *NodeGraph, offset math32.Vector3, cfg LinksConfig, rnd randx.Rand) *LinkRouter {
	lr := &LinkRouter{Offset: offset, Lift: cfg.Lift, graph: graph}
	if graph == nil || len(graph.Current) == 0 {
		return lr
	}
	samples := max(cfg.Samples, 2)
	for _, tip := range tips {
		for _, idx := range graph.Nearest(tip.Add(offset), cfg.PerTip) {
			lr.Links = append(lr.Links, &Link{
				Tip:      tip,
				Target:   idx,
				Speed:    randx.Range(rnd, 0.45, 0.9),
				Progress: rnd.Float32(),
				Path:     make([]math32.Vector3, samples),
			})
		}
	}
	return lr
}

// Update recomputes every link curve from the current tip and node
// positions and advances the pulses by dt seconds, scaled by speed.
// Tips must already be updated for this frame.
func (lr *LinkRouter) Update(dt, speed float32) {
	if lr.graph == nil || len(lr.graph.Current) == 0 {
		return
	}
	for _, ln := range lr.Links {
		p0 := ln.Tip.Add(lr.Offset)
		p2 := lr.graph.Current[ln.Target]
		pc := p0.Add(p2).MulScalar(0.5)
		pc.Y += lr.Lift
		last := float32(len(ln.Path) - 1)
		for n := range ln.Path {
			ln.Path[n] = QuadraticBezier(p0, pc, p2, float32(n)/last)
		}
		ln.Advance(ln.Speed * dt * pulseRate * speed)
		ln.Pulse = QuadraticBezier(p0, pc, p2, ln.Progress)
	}
}

// QuadraticBezier returns the point at parameter t of the quadratic
// Bezier curve with end points p0, p2 and control point p1.
func QuadraticBezier(p0, p1, p2 math32.Vector3, t float32) math32.Vector3 {
	u := 1 - t
	return p0.MulScalar(u * u).Add(p1.MulScalar(2 * u * t)).Add(p2.MulScalar(t * t))
}
