// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"fmt"

	"cogentcore.org/core/math32"
)

// goldenAngle is the angular increment between successive sphere points.
var goldenAngle = math32.Pi * (3 - math32.Sqrt(5))

// SpherePoints returns count points spread near-uniformly over the
// surface of a sphere of the given radius centered at the origin.
// It uses the golden-angle spiral with latitudes offset by half a
// step, so no point sits on a pole and count == 1 is well defined.
// The result is deterministic.
func SpherePoints(count int, radius float32) ([]math32.Vector3, error) {
	if count < 1 {
		return nil, fmt.Errorf("%w: point count %d < 1", ErrInvalidArgument, count)
	}
	if !(radius > 0) {
		return nil, fmt.Errorf("%w: sphere radius %g <= 0", ErrInvalidArgument, radius)
	}
	pts := make([]math32.Vector3, count)
	n := float32(count)
	for i := range pts {
		y := 1 - ((float32(i)+0.5)/n)*2
		r := math32.Sqrt(max(0, 1-y*y))
		th := goldenAngle * float32(i)
		pts[i] = math32.Vec3(math32.Cos(th)*r*radius, y*radius, math32.Sin(th)*r*radius)
	}
	return pts, nil
}
