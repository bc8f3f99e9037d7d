// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package canvas

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/render"
)

// Projector maps scene points to pixel coordinates for a
// perspective camera.
type Projector struct {
	Camera render.Camera
	Size   image.Point

	forward, right, up math32.Vector3

	// focal is the distance of the image plane in pixels.
	focal float32
}

// NewProjector returns a projector for the given camera and
// pixel size.
func NewProjector(cam render.Camera, size image.Point) *Projector {
	pj := &Projector{Camera: cam, Size: size}
	pj.forward = cam.Target.Sub(cam.Pos).Normal()
	worldUp := math32.Vec3(0, 1, 0)
	if math32.Abs(pj.forward.Dot(worldUp)) > 0.999 {
		worldUp = math32.Vec3(0, 0, -1)
	}
	pj.right = pj.forward.Cross(worldUp).Normal()
	pj.up = pj.right.Cross(pj.forward)
	fov := cam.FOV
	if fov <= 0 || fov >= 180 {
		fov = 60
	}
	pj.focal = 0.5 * float32(size.Y) / math32.Tan(math32.DegToRad(fov)/2)
	return pj
}

// Project returns the pixel position and view depth of p. ok is
// false if p is in front of the near plane or beyond the far plane.
func (pj *Projector) Project(p math32.Vector3) (px math32.Vector2, depth float32, ok bool) {
	d := p.Sub(pj.Camera.Pos)
	depth = d.Dot(pj.forward)
	near := max(pj.Camera.Near, 1e-4)
	if depth <= near || (pj.Camera.Far > 0 && depth > pj.Camera.Far) {
		return px, depth, false
	}
	s := pj.focal / depth
	px.X = 0.5*float32(pj.Size.X) + d.Dot(pj.right)*s
	px.Y = 0.5*float32(pj.Size.Y) - d.Dot(pj.up)*s
	return px, depth, true
}

// PixelsPerUnit returns the pixel length of one scene unit at the
// given view depth.
func (pj *Projector) PixelsPerUnit(depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	return pj.focal / depth
}

// rotateEuler rotates v by Euler angles r in radians, applied in
// Z, Y, X order.
func rotateEuler(v, r math32.Vector3) math32.Vector3 {
	if r.Z != 0 {
		s, c := math32.Sincos(r.Z)
		v.X, v.Y = v.X*c-v.Y*s, v.X*s+v.Y*c
	}
	if r.Y != 0 {
		s, c := math32.Sincos(r.Y)
		v.X, v.Z = v.X*c+v.Z*s, -v.X*s+v.Z*c
	}
	if r.X != 0 {
		s, c := math32.Sincos(r.X)
		v.Y, v.Z = v.Y*c-v.Z*s, v.Y*s+v.Z*c
	}
	return v
}
