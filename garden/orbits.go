// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import "cogentcore.org/core/math32"

// orbitSpin is the rotation rate of the orbit rings, relative to the
// constellation spin.
const orbitSpin = 0.1

// Ellipse returns count+1 points of a closed ellipse with radii rx, ry
// in the xy plane, tilted about z by tilt radians. The last point
// repeats the first.
func Ellipse(rx, ry, tilt float32, count int) []math32.Vector3 {
	count = max(count, 3)
	pts := make([]math32.Vector3, count+1)
	st, ct := math32.Sincos(tilt)
	for i := range pts {
		a := float32(i) / float32(count) * 2 * math32.Pi
		x := math32.Cos(a) * rx
		y := math32.Sin(a) * ry
		pts[i] = math32.Vec3(x*ct-y*st, x*st+y*ct, 0)
	}
	pts[count] = pts[0]
	return pts
}

// OrbitRings returns the three decorative orbit rings around a
// constellation of radius r.
func OrbitRings(r float32) [][]math32.Vector3 {
	return [][]math32.Vector3{
		Ellipse(r, r*0.85, 0.25, 120),
		Ellipse(r*0.95, r*0.75, -0.35, 120),
		Ellipse(r*0.9, r, 0.1, 120),
	}
}
