// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEllipse(t *testing.T) {
	pts := Ellipse(2, 1, 0, 8)
	assert.Len(t, pts, 9)
	assert.Equal(t, pts[0], pts[8])
	assert.InDelta(t, 2, pts[0].X, 1e-6)
	assert.InDelta(t, 1, pts[2].Y, 1e-6)
	for _, p := range pts {
		assert.Equal(t, float32(0), p.Z)
	}
}

func TestOrbitRings(t *testing.T) {
	rings := OrbitRings(1.7)
	assert.Len(t, rings, 3)
	for _, r := range rings {
		assert.Len(t, r, 121)
		for _, p := range r {
			assert.LessOrEqual(t, p.Length(), float32(1.7+1e-5))
		}
	}
}
