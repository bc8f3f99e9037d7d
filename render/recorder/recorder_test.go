// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package recorder

import (
	"image"
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/render"
	"github.com/stretchr/testify/assert"
)

func TestSurface(t *testing.T) {
	s := New(image.Pt(10, 10))
	root := s.NewGroup(nil, "root")
	ln := s.NewPolyline(root, "line", render.LineStyle{Width: 1})
	pts := []math32.Vector3{{X: 1}, {X: 2}}
	ln.SetPoints(pts)
	pts[0].X = 5
	assert.Equal(t, float32(1), s.LineByName("line").Points[0].X)
	assert.Same(t, s.GroupByName("root"), s.LineByName("line").Parent)

	d := s.NewDisk(root, "disk", 2, render.MarkerStyle{})
	d.SetPos(math32.Vec3(0, -1, 0))
	assert.True(t, s.Markers[0].Disk)
	assert.Equal(t, float32(2), s.Markers[0].Scale)
	assert.Equal(t, 5, s.Mutations)

	s.Render()
	assert.Equal(t, 1, s.Frames)
	assert.Nil(t, s.LineByName("none"))
}

func TestSurfaceReleased(t *testing.T) {
	s := New(image.Pt(10, 10))
	mk := s.NewMarker(nil, "m", render.MarkerStyle{})
	s.Release()
	s.Release()
	assert.True(t, s.Released)
	assert.Panics(t, func() { mk.SetPos(math32.Vector3{}) })
	assert.Panics(t, s.Render)
}
