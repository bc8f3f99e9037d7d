// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"testing"

	"cogentcore.org/core/math32"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSpherePoints(t *testing.T) {
	for _, count := range []int{1, 2, 3, 38, 90, 250} {
		for _, radius := range []float32{0.5, 1.55, 5} {
			pts, err := SpherePoints(count, radius)
			require.NoError(t, err)
			assert.Len(t, pts, count)
			for _, p := range pts {
				assert.InDelta(t, radius, p.Length(), 1e-4*float64(radius))
			}
		}
	}
}

func TestSpherePointsSingle(t *testing.T) {
	pts, err := SpherePoints(1, 5)
	require.NoError(t, err)
	require.Len(t, pts, 1)
	assert.InDelta(t, 5, pts[0].Length(), 1e-5)
	assert.False(t, math32.IsNaN(pts[0].X))
}

func TestSpherePointsDeterministic(t *testing.T) {
	a, _ := SpherePoints(90, 1.55)
	b, _ := SpherePoints(90, 1.55)
	assert.Equal(t, a, b)
}

func TestSpherePointsCoverage(t *testing.T) {
	pts, _ := SpherePoints(200, 1)
	var upper, lower int
	var centroid math32.Vector3
	for _, p := range pts {
		if p.Y > 0 {
			upper++
		} else {
			lower++
		}
		centroid = centroid.Add(p)
	}
	assert.Equal(t, upper, lower)
	assert.Less(t, centroid.MulScalar(1/float32(len(pts))).Length(), float32(0.05))
}

func TestSpherePointsInvalid(t *testing.T) {
	_, err := SpherePoints(0, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = SpherePoints(-3, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = SpherePoints(10, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
	_, err = SpherePoints(10, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
