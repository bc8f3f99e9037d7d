// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"testing"

	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/randx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildGraph(t *testing.T) {
	pts, err := SpherePoints(90, 1.55)
	require.NoError(t, err)
	gr, err := BuildGraph(pts, 2, 0.05, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, gr.K)
	for i, nb := range gr.Neighbors {
		assert.Len(t, nb, 2)
		for _, j := range nb {
			assert.NotEqual(t, i, j)
		}
		// nearest first
		assert.LessOrEqual(t, pts[i].DistanceTo(pts[nb[0]]), pts[i].DistanceTo(pts[nb[1]]))
	}
	seen := map[Edge]bool{}
	for _, e := range gr.Edges {
		assert.Less(t, e.A, e.B)
		assert.False(t, seen[e], "duplicate edge %v", e)
		seen[e] = true
	}
	assert.LessOrEqual(t, len(gr.Edges), 90*2)
	assert.GreaterOrEqual(t, len(gr.Edges), 90)
	for _, s := range gr.Scales {
		assert.Equal(t, float32(0.05), s)
	}
}

func TestBuildGraphNearest(t *testing.T) {
	pts := []math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 3, Y: 0, Z: 0}, {X: 10, Y: 0, Z: 0}}
	gr, err := BuildGraph(pts, 1, 1, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, [][]int{{1}, {0}, {1}, {2}}, gr.Neighbors)
	assert.Equal(t, []Edge{{0, 1}, {1, 2}, {2, 3}}, gr.Edges)
}

func TestBuildGraphClampK(t *testing.T) {
	pts, _ := SpherePoints(3, 1)
	gr, err := BuildGraph(pts, 5, 1, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 2, gr.K)
	for i, nb := range gr.Neighbors {
		assert.Len(t, nb, 2)
		assert.NotContains(t, nb, i)
	}

	one, _ := SpherePoints(1, 1)
	gr, err = BuildGraph(one, 2, 1, 0, nil)
	require.NoError(t, err)
	assert.Equal(t, 0, gr.K)
	assert.Empty(t, gr.Edges)
}

func TestBuildGraphInvalid(t *testing.T) {
	_, err := BuildGraph(nil, 2, 1, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	pts, _ := SpherePoints(4, 1)
	_, err = BuildGraph(pts, -1, 1, 0, nil)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestBuildGraphJitter(t *testing.T) {
	pts, _ := SpherePoints(30, 1)
	gr, err := BuildGraph(pts, 2, 0.05, 0.5, randx.NewSysRand(3))
	require.NoError(t, err)
	for _, s := range gr.Scales {
		assert.GreaterOrEqual(t, s, float32(0.025))
		assert.LessOrEqual(t, s, float32(0.075))
	}
}

func TestGraphRotate(t *testing.T) {
	pts := []math32.Vector3{{X: 1, Y: 0, Z: 0}, {X: 0, Y: 1, Z: 0}}
	gr, err := BuildGraph(pts, 1, 1, 0, nil)
	require.NoError(t, err)
	gr.Rotate(0, math32.Pi/2)
	assert.InDelta(t, 0, gr.Current[0].X, 1e-6)
	assert.InDelta(t, -1, gr.Current[0].Z, 1e-6)
	assert.Equal(t, math32.Vector3{X: 1, Y: 0, Z: 0}, gr.Points[0])

	gr.Rotate(math32.Pi/2, 0)
	assert.InDelta(t, 0, gr.Current[1].Y, 1e-6)
	assert.InDelta(t, 1, gr.Current[1].Z, 1e-6)
	for i := range pts {
		assert.InDelta(t, 1, gr.Current[i].Length(), 1e-6)
	}
}

func TestGraphNearest(t *testing.T) {
	pts := []math32.Vector3{{X: 0, Y: 0, Z: 0}, {X: 1, Y: 0, Z: 0}, {X: 3, Y: 0, Z: 0}}
	gr, _ := BuildGraph(pts, 1, 1, 0, nil)
	assert.Equal(t, []int{2, 1}, gr.Nearest(math32.Vec3(2.9, 0, 0), 2))
	assert.Len(t, gr.Nearest(math32.Vec3(0, 0, 0), 10), 3)
}
