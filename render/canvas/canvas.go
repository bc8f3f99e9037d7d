// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package canvas is a [render.Surface] that projects the scene onto
// a flat 2D [Painter], such as an HTML canvas 2D context. Elements
// are drawn back to front by view depth.
package canvas

import (
	"image"
	"image/color"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/render"
)

// diskSegments is the number of polygon points of a projected disk.
const diskSegments = 32

// Painter draws 2D primitives in pixel coordinates.
type Painter interface {
	// Clear fills the whole target of the given size.
	Clear(size image.Point, c color.RGBA)

	// Polyline strokes an open line strip.
	Polyline(pts []math32.Vector2, width float32, c color.RGBA, opacity float32)

	// Polygon fills a closed polygon.
	Polygon(pts []math32.Vector2, c color.RGBA, opacity float32)

	// Circle fills a circle.
	Circle(center math32.Vector2, radius float32, c color.RGBA, opacity float32)
}

// Surface is a [render.Surface] drawing to a [Painter].
type Surface struct {
	Painter    Painter
	Size       image.Point
	Background color.RGBA
	Camera     render.Camera

	lines    []*polyline
	markers  []*marker
	released bool
	prims    []prim
}

// New returns a new surface of the given size drawing to p.
func New(p Painter, size image.Point) *Surface {
	return &Surface{Painter: p, Size: size}
}

type group struct {
	parent *group
	pos    math32.Vector3
	rot    math32.Vector3
	scale  float32
}

func (g *group) SetPose(pos, rot math32.Vector3, scale float32) {
	g.pos, g.rot, g.scale = pos, rot, scale
}

// toWorld maps a point in the frame of g to the world frame.
func (g *group) toWorld(p math32.Vector3) math32.Vector3 {
	for ; g != nil; g = g.parent {
		p = rotateEuler(p.MulScalar(g.scale), g.rot).Add(g.pos)
	}
	return p
}

// worldScale is the accumulated scale of g.
func (g *group) worldScale() float32 {
	s := float32(1)
	for ; g != nil; g = g.parent {
		s *= g.scale
	}
	return s
}

type polyline struct {
	parent *group
	style  render.LineStyle
	pts    []math32.Vector3
}

func (l *polyline) SetPoints(pts []math32.Vector3) {
	l.pts = append(l.pts[:0], pts...)
}

type marker struct {
	parent *group
	style  render.MarkerStyle
	pos    math32.Vector3
	scale  float32
	disk   bool
}

func (m *marker) SetPos(pos math32.Vector3) { m.pos = pos }
func (m *marker) SetScale(s float32)        { m.scale = s }

func asGroup(g render.Group) *group {
	if g == nil {
		return nil
	}
	return g.(*group)
}

func (s *Surface) SetBackground(c color.RGBA)  { s.Background = c }
func (s *Surface) SetCamera(cam render.Camera) { s.Camera = cam }
func (s *Surface) Resize(size image.Point)     { s.Size = size }

func (s *Surface) NewGroup(parent render.Group, name string) render.Group {
	return &group{parent: asGroup(parent), scale: 1}
}

func (s *Surface) NewPolyline(parent render.Group, name string, style render.LineStyle) render.Polyline {
	l := &polyline{parent: asGroup(parent), style: style}
	s.lines = append(s.lines, l)
	return l
}

func (s *Surface) NewMarker(parent render.Group, name string, style render.MarkerStyle) render.Marker {
	m := &marker{parent: asGroup(parent), style: style, scale: 1}
	s.markers = append(s.markers, m)
	return m
}

func (s *Surface) NewDisk(parent render.Group, name string, radius float32, style render.MarkerStyle) render.Marker {
	m := &marker{parent: asGroup(parent), style: style, scale: radius, disk: true}
	s.markers = append(s.markers, m)
	return m
}

// prim is one projected primitive awaiting painting.
type prim struct {
	depth float32
	draw  func(p Painter)
}

// Render projects all elements and paints them back to front.
func (s *Surface) Render() {
	if s.released || s.Painter == nil || s.Size.X <= 0 || s.Size.Y <= 0 {
		return
	}
	pj := NewProjector(s.Camera, s.Size)
	s.prims = s.prims[:0]
	for _, l := range s.lines {
		s.addLine(pj, l)
	}
	for _, m := range s.markers {
		if m.disk {
			s.addDisk(pj, m)
		} else {
			s.addMarker(pj, m)
		}
	}
	slices.SortStableFunc(s.prims, func(a, b prim) int {
		switch {
		case a.depth > b.depth:
			return -1
		case a.depth < b.depth:
			return 1
		}
		return 0
	})
	s.Painter.Clear(s.Size, s.Background)
	for _, p := range s.prims {
		p.draw(s.Painter)
	}
}

func (s *Surface) addLine(pj *Projector, l *polyline) {
	if len(l.pts) < 2 {
		return
	}
	pts := make([]math32.Vector2, 0, len(l.pts))
	var depth float32
	for _, p := range l.pts {
		px, d, ok := pj.Project(l.parent.toWorld(p))
		if !ok {
			continue
		}
		pts = append(pts, px)
		depth += d
	}
	if len(pts) < 2 {
		return
	}
	depth /= float32(len(pts))
	width := max(l.style.Width*l.parent.worldScale()*pj.PixelsPerUnit(depth), 0.5)
	st := l.style
	s.prims = append(s.prims, prim{depth, func(p Painter) {
		p.Polyline(pts, width, st.Color, st.Opacity)
	}})
}

func (s *Surface) addMarker(pj *Projector, m *marker) {
	c, depth, ok := pj.Project(m.parent.toWorld(m.pos))
	if !ok {
		return
	}
	r := m.scale * m.parent.worldScale() * pj.PixelsPerUnit(depth)
	st := m.style
	s.prims = append(s.prims, prim{depth, func(p Painter) {
		if st.Emissive != (color.RGBA{}) {
			p.Circle(c, 2.2*r, st.Emissive, 0.22*st.Opacity)
		}
		p.Circle(c, r, st.Color, st.Opacity)
	}})
}

func (s *Surface) addDisk(pj *Projector, m *marker) {
	pts := make([]math32.Vector2, 0, diskSegments)
	var depth float32
	for i := range diskSegments {
		sn, cs := math32.Sincos(2 * math32.Pi * float32(i) / diskSegments)
		local := m.pos.Add(math32.Vec3(cs*m.scale, 0, sn*m.scale))
		px, d, ok := pj.Project(m.parent.toWorld(local))
		if !ok {
			return
		}
		pts = append(pts, px)
		depth += d
	}
	depth /= diskSegments
	st := m.style
	s.prims = append(s.prims, prim{depth, func(p Painter) {
		p.Polygon(pts, st.Color, st.Opacity)
	}})
}

// Release drops all elements. Later calls do nothing.
func (s *Surface) Release() {
	s.released = true
	s.lines = nil
	s.markers = nil
	s.prims = nil
}

// Released returns whether [Surface.Release] was called.
func (s *Surface) Released() bool {
	return s.released
}
