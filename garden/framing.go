// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"image"

	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/render"
)

// CameraDistance returns the distance at which a sphere of the given
// radius, scaled by margin, fits a field of view of fov degrees.
func CameraDistance(radius, margin, fov float32) float32 {
	return (radius * margin) / math32.Tan(math32.DegToRad(fov)/2)
}

// FramingConfig parameterizes camera framing.
type FramingConfig struct {

	// Radius of the sphere that must stay in view.
	Radius float32 `default:"2.35"`

	// Margin is the extra room around the sphere.
	Margin float32 `default:"1.08"`
}

// Framing places the camera so that the composition stays in view
// for any container size.
type Framing struct {
	FramingConfig

	// Direction is the direction from the target to the camera.
	Direction math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	size image.Point
	cam  render.Camera
}

// EffectiveFOV returns the smaller of the vertical field of view and
// the horizontal one implied by the aspect ratio of size, in degrees.
func (fr *Framing) EffectiveFOV(size image.Point) float32 {
	if size.X <= 0 || size.Y <= 0 {
		return fr.FOV
	}
	aspect := float32(size.X) / float32(size.Y)
	if aspect >= 1 {
		return fr.FOV
	}
	half := math32.DegToRad(fr.FOV) / 2
	return math32.RadToDeg(2 * math32.Atan(math32.Tan(half)*aspect))
}

// Camera returns the camera for the given container size.
func (fr *Framing) Camera(size image.Point) render.Camera {
	dist := CameraDistance(fr.Radius, fr.Margin, fr.EffectiveFOV(size))
	dir := fr.Direction
	if dir == (math32.Vector3{}) {
		dir = math32.Vec3(0, 0, 1)
	}
	return render.Camera{
		Pos:    fr.Target.Add(dir.Normal().MulScalar(dist)),
		Target: fr.Target,
		FOV:    fr.FOV,
		Near:   0.1,
		Far:    100,
	}
}

// Update recomputes the camera if size or field of view changed since
// the last call, returning the camera and whether it changed.
func (fr *Framing) Update(size image.Point) (render.Camera, bool) {
	if size == fr.size && fr.cam.FOV == fr.FOV && fr.cam.FOV != 0 {
		return fr.cam, false
	}
	fr.size = size
	fr.cam = fr.Camera(size)
	return fr.cam, true
}
