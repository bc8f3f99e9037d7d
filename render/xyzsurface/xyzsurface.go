// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package xyzsurface implements [render.Surface] on an [xyz.Scene],
// rendered on the GPU by the xyz Phong pipeline.
package xyzsurface

import (
	"image"
	"image/color"

	"cogentcore.org/core/colors"
	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
	"cogentcore.org/core/xyz"
	"cogentcore.org/datagarden/render"
)

// Surface draws into an xyz scene. The scene itself is owned by the
// caller (typically an xyzcore.Scene widget); Release only removes
// what the surface added.
type Surface struct {
	XYZ *xyz.Scene

	// OnRender, if set, is called after each [Surface.Render],
	// for the host to schedule a redraw of the widget.
	OnRender func()

	// OnResize, if set, is called with each new size.
	OnResize func(size image.Point)

	root     *xyz.Group
	sphere   xyz.Mesh
	disk     xyz.Mesh
	released bool
}

// Names of the lights added to the scene.
const (
	AmbientLight     = "garden-ambient"
	DirectionalLight = "garden-directional"
)

// New returns a surface drawing into sc. The lights are added to sc
// on the first call and shared by later surfaces on the same scene.
func New(sc *xyz.Scene) *Surface {
	s := &Surface{XYZ: sc}
	if _, ok := sc.Lights.ValueByKeyTry(AmbientLight); !ok {
		xyz.NewAmbient(sc, AmbientLight, 0.45, xyz.DirectSun)
	}
	if _, ok := sc.Lights.ValueByKeyTry(DirectionalLight); !ok {
		dir := xyz.NewDirectional(sc, DirectionalLight, 1, xyz.DirectSun)
		dir.Pos.Set(2, 4, 3)
	}
	s.root = xyz.NewGroup(sc)
	s.root.SetName("garden-surface")
	s.sphere = xyz.NewSphere(sc, "garden-sphere", 1, 16)
	s.disk = xyz.NewCylinder(sc, "garden-disk", 0.02, 1, 48, 1, true, true)
	return s
}

func (s *Surface) SetBackground(c color.RGBA) {
	s.XYZ.Background = colors.Uniform(c)
}

func (s *Surface) SetCamera(cam render.Camera) {
	c := &s.XYZ.Camera
	c.Pose.Pos = cam.Pos
	c.FOV = cam.FOV
	c.Near = cam.Near
	c.Far = cam.Far
	c.LookAt(cam.Target, math32.Vec3(0, 1, 0))
}

func (s *Surface) Resize(size image.Point) {
	if s.OnResize != nil {
		s.OnResize(size)
	}
}

// parent returns the xyz node for g.
func (s *Surface) parent(g render.Group) tree.Node {
	if g == nil {
		return s.root
	}
	return g.(*group).Group
}

type group struct {
	*xyz.Group
}

func (g *group) SetPose(pos, rot math32.Vector3, scale float32) {
	g.Pose.Pos = pos
	g.Pose.SetEulerRotation(math32.RadToDeg(rot.X), math32.RadToDeg(rot.Y), math32.RadToDeg(rot.Z))
	g.Pose.Scale.SetScalar(scale)
}

func (s *Surface) NewGroup(parent render.Group, name string) render.Group {
	g := xyz.NewGroup(s.parent(parent))
	g.SetName(name)
	return &group{g}
}

func alpha(c color.RGBA, opacity float32) color.RGBA {
	c.A = uint8(math32.Clamp(opacity, 0, 1) * float32(c.A))
	return c
}

type polyline struct {
	sc    *xyz.Scene
	lines *xyz.Lines
}

func (l *polyline) SetPoints(pts []math32.Vector3) {
	if len(pts) < 2 {
		return
	}
	l.lines.Points = append(l.lines.Points[:0], pts...)
	l.sc.SetMesh(l.lines)
}

func (s *Surface) NewPolyline(parent render.Group, name string, style render.LineStyle) render.Polyline {
	w := math32.Vec2(style.Width, style.Width)
	// Lines need at least one segment to build a mesh.
	ms := xyz.NewLines(s.XYZ, "garden-line-"+name, []math32.Vector3{{}, {Y: 1e-4}}, w, xyz.OpenLines)
	sld := xyz.NewSolid(s.parent(parent))
	sld.SetName(name)
	sld.SetMesh(ms).SetColor(alpha(style.Color, style.Opacity))
	return &polyline{sc: s.XYZ, lines: ms}
}

type marker struct {
	*xyz.Solid
}

func (m *marker) SetPos(pos math32.Vector3) { m.Pose.Pos = pos }

func (m *marker) SetScale(v float32) { m.Pose.Scale.SetScalar(v) }

type disk struct {
	*xyz.Solid
}

func (d *disk) SetPos(pos math32.Vector3) { d.Pose.Pos = pos }

func (d *disk) SetScale(v float32) { d.Pose.Scale.Set(v, 1, v) }

func (s *Surface) solid(parent render.Group, name string, ms xyz.Mesh, style render.MarkerStyle) *xyz.Solid {
	sld := xyz.NewSolid(s.parent(parent))
	sld.SetName(name)
	sld.SetMesh(ms).SetColor(alpha(style.Color, style.Opacity))
	if style.Emissive != (color.RGBA{}) {
		sld.SetEmissive(style.Emissive)
	}
	return sld
}

func (s *Surface) NewMarker(parent render.Group, name string, style render.MarkerStyle) render.Marker {
	return &marker{s.solid(parent, name, s.sphere, style)}
}

func (s *Surface) NewDisk(parent render.Group, name string, radius float32, style render.MarkerStyle) render.Marker {
	d := &disk{s.solid(parent, name, s.disk, style)}
	d.SetScale(radius)
	return d
}

// Render marks the scene for update and redraw.
func (s *Surface) Render() {
	if s.released {
		return
	}
	s.XYZ.SetNeedsUpdate()
	if s.OnRender != nil {
		s.OnRender()
	}
}

// Release removes the nodes and meshes the surface added to the
// scene. The lights stay for the next surface.
func (s *Surface) Release() {
	if s.released {
		return
	}
	s.released = true
	s.XYZ.DeleteChildren()
	s.XYZ.ResetMeshes()
	s.XYZ.SetNeedsUpdate()
	s.OnRender = nil
	s.OnResize = nil
}
