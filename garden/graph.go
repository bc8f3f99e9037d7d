// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"cmp"
	"fmt"
	"slices"

	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/randx"
)

// Edge is an unordered pair of node indices, stored with A < B.
type Edge struct {
	A, B int
}

// NodeGraph is the static topology of the constellation: every point
// is linked to its K nearest neighbors.
type NodeGraph struct {

	// Points are the node positions in the constellation's own frame.
	Points []math32.Vector3

	// Current are the node positions after the current rotation.
	// Links read these.
	Current []math32.Vector3

	// Neighbors holds, for each point, the indices of its K nearest
	// other points, nearest first.
	Neighbors [][]int

	// Edges are the deduplicated edges for rendering.
	Edges []Edge

	// Scales are the render scales of the node instances.
	Scales []float32

	// K is the number of neighbors actually used (after clamping).
	K int
}

// NodesConfig parameterizes the constellation.
type NodesConfig struct {

	// Count is the number of nodes.
	Count int `default:"90" min:"1"`

	// Radius of the constellation sphere.
	Radius float32 `default:"1.55"`

	// Neighbors is the number of nearest-neighbor edges per node.
	// Use [Config.NoEdges] for none.
	Neighbors int `default:"2" min:"1"`

	// Scale is the render scale of each node.
	Scale float32 `default:"0.05"`

	// ScaleJitter randomizes node scales by up to this fraction.
	ScaleJitter float32 `default:"0"`
}

// BuildGraph links every point to its k nearest other points.
// k is clamped to len(points)-1. Ties in distance are broken by index.
// Node scales are scale varied by up to jitter (a fraction), drawn from rnd;
// rnd may be nil if jitter is 0.
func BuildGraph(points []math32.Vector3, k int, scale, jitter float32, rnd randx.Rand) (*NodeGraph, error) {
	if len(points) == 0 {
		return nil, fmt.Errorf("%w: empty point distribution", ErrInvalidArgument)
	}
	if k < 0 {
		return nil, fmt.Errorf("%w: negative neighbor count %d", ErrInvalidArgument, k)
	}
	k = min(k, len(points)-1)
	gr := &NodeGraph{
		Points:    points,
		Current:   slices.Clone(points),
		Neighbors: make([][]int, len(points)),
		Scales:    make([]float32, len(points)),
		K:         k,
	}
	type cand struct {
		idx  int
		dist float32
	}
	cands := make([]cand, 0, len(points))
	seen := make(map[Edge]struct{})
	for i, p := range points {
		cands = cands[:0]
		for j, q := range points {
			if j == i {
				continue
			}
			cands = append(cands, cand{j, p.DistanceTo(q)})
		}
		slices.SortStableFunc(cands, func(a, b cand) int {
			return cmp.Compare(a.dist, b.dist)
		})
		nb := make([]int, k)
		for n := range k {
			j := cands[n].idx
			nb[n] = j
			e := Edge{min(i, j), max(i, j)}
			if _, has := seen[e]; !has {
				seen[e] = struct{}{}
				gr.Edges = append(gr.Edges, e)
			}
		}
		gr.Neighbors[i] = nb
		s := scale
		if jitter > 0 && rnd != nil {
			s *= 1 + jitter*(2*rnd.Float32()-1)
		}
		gr.Scales[i] = s
	}
	return gr, nil
}

// Rotate sets Current to Points rotated about the y axis by ry and
// then about the x axis by rx (radians), matching a group with Euler
// rotation (rx, ry, 0).
func (gr *NodeGraph) Rotate(rx, ry float32) {
	for i, p := range gr.Points {
		gr.Current[i] = rotateXY(p, rx, ry)
	}
}

// Nearest returns the indices of the n points in Current nearest to p,
// nearest first. n is clamped to the number of points.
func (gr *NodeGraph) Nearest(p math32.Vector3, n int) []int {
	idx := make([]int, len(gr.Current))
	for i := range idx {
		idx[i] = i
	}
	slices.SortStableFunc(idx, func(a, b int) int {
		return cmp.Compare(gr.Current[a].DistanceTo(p), gr.Current[b].DistanceTo(p))
	})
	return idx[:min(n, len(idx))]
}

// rotateXY rotates v by ry about y, then by rx about x.
func rotateXY(v math32.Vector3, rx, ry float32) math32.Vector3 {
	sy, cy := math32.Sincos(ry)
	x := v.X*cy + v.Z*sy
	z := -v.X*sy + v.Z*cy
	sx, cx := math32.Sincos(rx)
	y := v.Y*cx - z*sx
	z = v.Y*sx + z*cx
	return math32.Vec3(x, y, z)
}
