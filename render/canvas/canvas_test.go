// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"
	"image/color"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/render"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCamera = render.Camera{Pos: math32.Vec3(0, 0, 5), FOV: 90, Near: 0.1, Far: 100}

type op struct {
	kind   string
	pts    []math32.Vector2
	radius float32
	width  float32
	color  color.RGBA
}

type recordPainter struct {
	ops []op
}

func (r *recordPainter) Clear(size image.Point, c color.RGBA) {
	r.ops = append(r.ops, op{kind: "clear", color: c})
}

func (r *recordPainter) Polyline(pts []math32.Vector2, width float32, c color.RGBA, opacity float32) {
	r.ops = append(r.ops, op{kind: "line", pts: pts, width: width, color: c})
}

func (r *recordPainter) Polygon(pts []math32.Vector2, c color.RGBA, opacity float32) {
	r.ops = append(r.ops, op{kind: "polygon", pts: pts, color: c})
}

func (r *recordPainter) Circle(center math32.Vector2, radius float32, c color.RGBA, opacity float32) {
	r.ops = append(r.ops, op{kind: "circle", pts: []math32.Vector2{center}, radius: radius, color: c})
}

func TestProject(t *testing.T) {
	pj := NewProjector(testCamera, image.Pt(200, 200))

	px, depth, ok := pj.Project(math32.Vector3{})
	require.True(t, ok)
	assert.InDelta(t, 100, px.X, 1e-3)
	assert.InDelta(t, 100, px.Y, 1e-3)
	assert.InDelta(t, 5, depth, 1e-5)

	px, _, ok = pj.Project(math32.Vec3(1, 1, 0))
	require.True(t, ok)
	assert.InDelta(t, 120, px.X, 1e-3)
	assert.InDelta(t, 80, px.Y, 1e-3)
	assert.InDelta(t, 20, pj.PixelsPerUnit(5), 1e-3)

	_, _, ok = pj.Project(math32.Vec3(0, 0, 6))
	assert.False(t, ok)
	_, _, ok = pj.Project(math32.Vec3(0, 0, -200))
	assert.False(t, ok)
}

func TestProjectStraightDown(t *testing.T) {
	pj := NewProjector(render.Camera{Pos: math32.Vec3(0, 5, 0), FOV: 60, Near: 0.1}, image.Pt(100, 100))
	px, depth, ok := pj.Project(math32.Vector3{})
	require.True(t, ok)
	assert.InDelta(t, 5, depth, 1e-5)
	assert.InDelta(t, 50, px.X, 1e-3)
	assert.InDelta(t, 50, px.Y, 1e-3)
}

func TestRotateEuler(t *testing.T) {
	v := rotateEuler(math32.Vec3(1, 0, 0), math32.Vec3(0, math32.Pi/2, 0))
	assert.InDelta(t, 0, v.X, 1e-6)
	assert.InDelta(t, -1, v.Z, 1e-6)
	v = rotateEuler(math32.Vec3(0, 1, 0), math32.Vec3(math32.Pi/2, 0, 0))
	assert.InDelta(t, 1, v.Z, 1e-6)
}

func TestSurfaceRender(t *testing.T) {
	rp := &recordPainter{}
	s := New(rp, image.Pt(200, 200))
	s.SetCamera(testCamera)
	bg := color.RGBA{15, 23, 34, 255}
	s.SetBackground(bg)

	root := s.NewGroup(nil, "root")
	root.SetPose(math32.Vec3(1, 0, 0), math32.Vector3{}, 2)
	near := s.NewMarker(root, "near", render.MarkerStyle{Color: color.RGBA{R: 255, A: 255}, Opacity: 1})
	near.SetPos(math32.Vec3(0, 0, 1))
	near.SetScale(0.1)
	far := s.NewMarker(nil, "far", render.MarkerStyle{Color: color.RGBA{G: 255, A: 255}, Opacity: 1})
	far.SetPos(math32.Vec3(0, 0, -5))
	ln := s.NewPolyline(nil, "line", render.LineStyle{Color: color.RGBA{B: 255, A: 255}, Width: 0.05, Opacity: 1})
	ln.SetPoints([]math32.Vector3{{X: -1}, {X: 1}})

	s.Render()
	require.Len(t, rp.ops, 4)
	assert.Equal(t, "clear", rp.ops[0].kind)
	assert.Equal(t, bg, rp.ops[0].color)

	// back to front: far marker, line, near marker
	assert.Equal(t, uint8(255), rp.ops[1].color.G)
	assert.Equal(t, "line", rp.ops[2].kind)
	assert.Equal(t, "circle", rp.ops[3].kind)

	// the near marker is at world (1, 0, 2), depth 3
	c := rp.ops[3].pts[0]
	assert.InDelta(t, 100+100.0/3, c.X, 1e-2)
	assert.InDelta(t, 0.2*100.0/3, rp.ops[3].radius, 1e-3)
	assert.InDelta(t, 1, rp.ops[2].width, 1e-3)
}

func TestSurfaceDiskAndGlow(t *testing.T) {
	rp := &recordPainter{}
	s := New(rp, image.Pt(200, 200))
	s.SetCamera(render.Camera{Pos: math32.Vec3(0, 4, 4), FOV: 60, Near: 0.1})
	s.NewDisk(nil, "base", 1, render.MarkerStyle{Color: color.RGBA{A: 255}, Opacity: 1})
	glow := color.RGBA{R: 255, G: 255, A: 255}
	s.NewMarker(nil, "pulse", render.MarkerStyle{Color: glow, Emissive: glow, Opacity: 1}).SetPos(math32.Vec3(0, 1, 0))
	s.Render()
	require.Len(t, rp.ops, 4)
	assert.Equal(t, "polygon", rp.ops[1].kind)
	assert.Len(t, rp.ops[1].pts, diskSegments)
	assert.Greater(t, rp.ops[2].radius, rp.ops[3].radius)
}

func TestSurfaceRelease(t *testing.T) {
	rp := &recordPainter{}
	s := New(rp, image.Pt(100, 100))
	s.SetCamera(testCamera)
	s.NewMarker(nil, "m", render.MarkerStyle{Opacity: 1})
	s.Release()
	s.Release()
	s.Render()
	assert.True(t, s.Released())
	assert.Empty(t, rp.ops)
}
