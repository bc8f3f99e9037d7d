// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package render defines the render surface that a garden scene draws
// into. A Surface is a small retained scene graph: the scene creates
// its groups, lines and markers once and then only updates their
// positions and poses every frame. Backends live in subpackages.
package render

import (
	"image"
	"image/color"

	"cogentcore.org/core/math32"
)

// Surface is a render target attached to a host container.
// All methods are called from the frame loop only.
type Surface interface {
	// SetBackground sets the clear color of the surface.
	SetBackground(c color.RGBA)

	// SetCamera places the camera.
	SetCamera(cam Camera)

	// Resize resizes the render target to the given pixel size.
	Resize(size image.Point)

	// NewGroup adds a new transform group under parent,
	// or at the top level if parent is nil.
	NewGroup(parent Group, name string) Group

	// NewPolyline adds a line strip under parent.
	NewPolyline(parent Group, name string, style LineStyle) Polyline

	// NewMarker adds a small sphere under parent.
	NewMarker(parent Group, name string, style MarkerStyle) Marker

	// NewDisk adds a flat horizontal disk under parent.
	NewDisk(parent Group, name string, radius float32, style MarkerStyle) Marker

	// Render draws the current state of the surface.
	Render()

	// Release frees all resources held by the surface. The surface
	// must not be used afterwards. Release is idempotent.
	Release()
}

// Group is a transform node that other elements are attached to.
type Group interface {
	// SetPose sets the position, rotation (Euler angles in radians)
	// and uniform scale of the group relative to its parent.
	SetPose(pos, rot math32.Vector3, scale float32)
}

// Polyline is a line strip.
type Polyline interface {
	// SetPoints replaces the points of the line. The slice is
	// not retained.
	SetPoints(pts []math32.Vector3)
}

// Marker is a solid placed at a single position.
type Marker interface {
	SetPos(pos math32.Vector3)
	SetScale(scale float32)
}

// Camera is a perspective camera.
type Camera struct {

	// Pos is the camera position.
	Pos math32.Vector3

	// Target is the point the camera looks at.
	Target math32.Vector3

	// FOV is the vertical field of view in degrees.
	FOV float32

	// Near and Far are the clipping planes.
	Near, Far float32
}

// LineStyle is the appearance of a [Polyline].
type LineStyle struct {
	Color color.RGBA

	// Width is the line width in scene units.
	Width float32

	// Opacity in [0,1].
	Opacity float32
}

// MarkerStyle is the appearance of a [Marker].
type MarkerStyle struct {
	Color color.RGBA

	// Emissive is the glow color; zero for none.
	Emissive color.RGBA

	// Opacity in [0,1].
	Opacity float32
}
