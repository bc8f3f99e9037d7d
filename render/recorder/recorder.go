// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package recorder provides a headless [render.Surface] that keeps
// the state of every element and counts mutations. It is used to
// test scenes and to dump frames without a GPU.
package recorder

import (
	"image"
	"image/color"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/render"
)

// Surface is a [render.Surface] that records state in memory.
type Surface struct {

	// Size is the current pixel size.
	Size image.Point

	// Background is the clear color.
	Background color.RGBA

	// Camera is the last camera set.
	Camera render.Camera

	// Groups, Lines and Markers are the created elements, in creation order.
	Groups  []*Group
	Lines   []*Line
	Markers []*Marker

	// Mutations counts every call that changes the surface state.
	Mutations int

	// Frames counts calls to Render.
	Frames int

	// Released is set by Release.
	Released bool
}

// New returns a new recording surface of the given size.
func New(size image.Point) *Surface {
	return &Surface{Size: size}
}

func (s *Surface) touch() {
	if s.Released {
		panic("recorder: use of released surface")
	}
	s.Mutations++
}

func (s *Surface) SetBackground(c color.RGBA) {
	s.touch()
	s.Background = c
}

func (s *Surface) SetCamera(cam render.Camera) {
	s.touch()
	s.Camera = cam
}

func (s *Surface) Resize(size image.Point) {
	s.touch()
	s.Size = size
}

func (s *Surface) NewGroup(parent render.Group, name string) render.Group {
	s.touch()
	g := &Group{surf: s, Name: name, Scale: 1}
	if p, ok := parent.(*Group); ok {
		g.Parent = p
	}
	s.Groups = append(s.Groups, g)
	return g
}

func (s *Surface) NewPolyline(parent render.Group, name string, style render.LineStyle) render.Polyline {
	s.touch()
	ln := &Line{surf: s, Name: name, Style: style}
	ln.Parent, _ = parent.(*Group)
	s.Lines = append(s.Lines, ln)
	return ln
}

func (s *Surface) NewMarker(parent render.Group, name string, style render.MarkerStyle) render.Marker {
	s.touch()
	mk := &Marker{surf: s, Name: name, Style: style, Scale: 1}
	mk.Parent, _ = parent.(*Group)
	s.Markers = append(s.Markers, mk)
	return mk
}

func (s *Surface) NewDisk(parent render.Group, name string, radius float32, style render.MarkerStyle) render.Marker {
	mk := s.NewMarker(parent, name, style).(*Marker)
	mk.Disk = true
	mk.Scale = radius
	return mk
}

func (s *Surface) Render() {
	if s.Released {
		panic("recorder: render of released surface")
	}
	s.Frames++
}

func (s *Surface) Release() {
	s.Released = true
}

// LineByName returns the first line with the given name, or nil.
func (s *Surface) LineByName(name string) *Line {
	i := slices.IndexFunc(s.Lines, func(l *Line) bool { return l.Name == name })
	if i < 0 {
		return nil
	}
	return s.Lines[i]
}

// GroupByName returns the first group with the given name, or nil.
func (s *Surface) GroupByName(name string) *Group {
	i := slices.IndexFunc(s.Groups, func(g *Group) bool { return g.Name == name })
	if i < 0 {
		return nil
	}
	return s.Groups[i]
}

// Group is a recorded [render.Group].
type Group struct {
	surf   *Surface
	Name   string
	Parent *Group
	Pos    math32.Vector3
	Rot    math32.Vector3
	Scale  float32
}

func (g *Group) SetPose(pos, rot math32.Vector3, scale float32) {
	g.surf.touch()
	g.Pos, g.Rot, g.Scale = pos, rot, scale
}

// Line is a recorded [render.Polyline].
type Line struct {
	surf   *Surface
	Name   string
	Parent *Group
	Style  render.LineStyle
	Points []math32.Vector3
}

func (l *Line) SetPoints(pts []math32.Vector3) {
	l.surf.touch()
	l.Points = append(l.Points[:0], pts...)
}

// Marker is a recorded [render.Marker].
type Marker struct {
	surf   *Surface
	Name   string
	Parent *Group
	Style  render.MarkerStyle
	Disk   bool
	Pos    math32.Vector3
	Scale  float32
}

func (m *Marker) SetPos(pos math32.Vector3) {
	m.surf.touch()
	m.Pos = pos
}

func (m *Marker) SetScale(scale float32) {
	m.surf.touch()
	m.Scale = scale
}
