// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package garden composes the animated data garden: swaying strands
// rising from a base disk, a rotating constellation of nodes on a
// sphere, and arcing links that carry pulses from every strand tip
// to its nearest nodes.
//
// A [Scene] is built once from a [Config] and then advanced by the
// host once per display refresh with [Scene.Step].
package garden

import (
	"fmt"
	"image"
	"image/color"

	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/randx"
	"cogentcore.org/datagarden/render"
)

const (
	// skyHeight is the height of the constellation center above the strand bases.
	skyHeight = 1.05

	// baseY is the height of the base disk.
	baseY = -0.6

	// shadowY is the height of the ground shadow.
	shadowY = -0.7

	// nudgeJitter is the initial jitter of a nudge, decaying by nudgeDecay per frame.
	nudgeJitter = 0.07
	nudgeDecay  = 0.9

	// dragSnap is the rate per second at which a released drag
	// rotation springs back.
	dragSnap = 6
)

// Limits of the drag rotation, in radians: azimuth about the vertical
// axis and polar about the horizontal one.
var (
	DragAzimuth = [2]float32{-0.7, 0.7}
	DragPolar   = [2]float32{-0.2, 0.5}
)

// Env is the host environment as read once when a scene is created.
type Env struct {

	// Size is the container size in pixels.
	Size image.Point

	// ReducedMotion is the user's reduced-motion preference.
	ReducedMotion bool

	// PageBackground is the ambient page background color, if any.
	PageBackground string
}

// Scene is one instance of the garden, owning all of its state and
// the render elements it created on its surface.
type Scene struct {

	// Config is the normalized configuration.
	Config Config

	// Env is the host environment at creation.
	Env Env

	// Motion is the motion profile in use.
	Motion Motion

	// Palette holds the colors in use.
	Palette Palette

	// Graph is the constellation.
	Graph *NodeGraph

	// Strands are the swaying strands.
	Strands Strands

	// Links connect strand tips to nodes.
	Links *LinkRouter

	// Framing places the camera.
	Framing Framing

	// Rand is the random source of this scene.
	Rand randx.Rand

	// Time is the elapsed time of the last step, in seconds.
	Time float32

	surf          render.Surface
	root          render.Group
	constellation render.Group
	orbits        render.Group
	strandLines   []render.Polyline
	linkLines     []render.Polyline
	pulses        []render.Marker

	jitter  float32
	rootRot math32.Vector3

	// drag is the drag rotation, azimuth in X and polar in Y.
	drag     math32.Vector2
	dragging bool
	size     image.Point
}

// NewScene builds a scene on the given surface. cfg is normalized
// first. The surface is owned by the scene from here on and freed
// by [Scene.Release].
func NewScene(cfg Config, env Env, surf render.Surface, rnd randx.Rand) (*Scene, error) {
	sc := &Scene{
		Config:  cfg.Normalize(),
		Env:     env,
		Motion:  MotionFor(env.ReducedMotion),
		Palette: DefaultPalette(),
		Rand:    rnd,
		surf:    surf,
	}
	cfg = sc.Config
	sc.Palette.Background = ResolveBackground(cfg.Background, env.PageBackground)

	pts, err := SpherePoints(cfg.Nodes.Count, cfg.Nodes.Radius)
	if err != nil {
		return nil, fmt.Errorf("garden.NewScene: %w", err)
	}
	sc.Graph, err = BuildGraph(pts, cfg.Nodes.Neighbors, cfg.Nodes.Scale, cfg.Nodes.ScaleJitter, rnd)
	if err != nil {
		return nil, fmt.Errorf("garden.NewScene: %w", err)
	}
	sc.Strands = NewStrands(cfg.Strands, rnd)
	sc.Strands.Update(0, sc.Motion.Strand)
	sc.Links = NewLinkRouter(sc.Strands.Tips(), sc.Graph, math32.Vec3(0, -skyHeight, 0), cfg.Links, rnd)
	sc.Framing = Framing{
		FramingConfig: cfg.Framing,
		Direction:     cfg.Camera.Position.V(),
		FOV:           cfg.Camera.FOV,
	}
	sc.build()
	sc.Resize(env.Size)
	return sc, nil
}

// build creates the render elements.
func (sc *Scene) build() {
	s := sc.surf
	pal := sc.Palette
	s.SetBackground(pal.Background)

	sc.root = s.NewGroup(nil, "garden")
	sc.root.SetPose(math32.Vec3(0, sc.Config.OffsetY, 0), math32.Vector3{}, sc.Config.Scale)

	if !sc.Config.NoShadow {
		sh := s.NewDisk(sc.root, "shadow", 1.5, render.MarkerStyle{Color: pal.Shadow, Opacity: float32(pal.Shadow.A) / 255})
		sh.SetPos(math32.Vec3(0, shadowY, 0))
	}
	base := s.NewDisk(sc.root, "base", 1.05, render.MarkerStyle{Color: pal.Base, Opacity: 1})
	base.SetPos(math32.Vec3(0, baseY, 0))

	strands := s.NewGroup(sc.root, "strands")
	strandStyle := render.LineStyle{Color: pal.Strand, Width: 0.026, Opacity: 0.96}
	sc.strandLines = make([]render.Polyline, len(sc.Strands))
	for i, st := range sc.Strands {
		ln := s.NewPolyline(strands, fmt.Sprintf("strand-%d", i), strandStyle)
		ln.SetPoints(st.Spine)
		sc.strandLines[i] = ln
	}

	sky := s.NewGroup(sc.root, "sky")
	sky.SetPose(math32.Vec3(0, skyHeight, 0), math32.Vector3{}, 1)

	sc.constellation = s.NewGroup(sky, "constellation")
	nodeStyle := render.MarkerStyle{Color: pal.Node, Opacity: 1}
	if sc.Config.Glow {
		nodeStyle.Emissive = pal.Node
	}
	for i, p := range sc.Graph.Points {
		mk := s.NewMarker(sc.constellation, fmt.Sprintf("node-%d", i), nodeStyle)
		mk.SetPos(p)
		mk.SetScale(sc.Graph.Scales[i])
	}
	edgeStyle := render.LineStyle{Color: pal.LinkDim, Width: 0.009, Opacity: 0.18}
	for _, e := range sc.Graph.Edges {
		ln := s.NewPolyline(sc.constellation, fmt.Sprintf("edge-%d-%d", e.A, e.B), edgeStyle)
		ln.SetPoints([]math32.Vector3{sc.Graph.Points[e.A], sc.Graph.Points[e.B]})
	}

	if !sc.Config.NoOrbits {
		sc.orbits = s.NewGroup(sky, "orbits")
		orbitStyle := render.LineStyle{Color: pal.LinkDim, Width: 0.008, Opacity: 0.12}
		for i, ring := range OrbitRings(sc.Config.Nodes.Radius * 1.1) {
			s.NewPolyline(sc.orbits, fmt.Sprintf("orbit-%d", i), orbitStyle).SetPoints(ring)
		}
	}

	links := s.NewGroup(sky, "links")
	linkStyle := render.LineStyle{Color: pal.Link, Width: 0.018, Opacity: 0.72}
	pulseStyle := render.MarkerStyle{Color: pal.Node, Emissive: pal.Node, Opacity: 1}
	sc.linkLines = make([]render.Polyline, len(sc.Links.Links))
	sc.pulses = make([]render.Marker, len(sc.Links.Links))
	for i := range sc.Links.Links {
		sc.linkLines[i] = s.NewPolyline(links, fmt.Sprintf("link-%d", i), linkStyle)
		sc.pulses[i] = s.NewMarker(links, fmt.Sprintf("pulse-%d", i), pulseStyle)
		sc.pulses[i].SetScale(0.05)
	}
}

// Resize updates the render size and camera framing for a new
// container size. It does nothing if neither the size nor the field
// of view changed.
func (sc *Scene) Resize(size image.Point) {
	sc.size = size
	cam, changed := sc.Framing.Update(size)
	if !changed {
		return
	}
	sc.surf.Resize(size)
	sc.surf.SetCamera(cam)
}

// Step advances the scene to elapsed time t, dt seconds after the
// previous step, and renders it. Strands are updated before the
// links that read their tips.
func (sc *Scene) Step(t, dt float32) {
	sc.Time = t
	m := sc.Motion

	sc.Strands.Update(t, m.Strand)
	for i, st := range sc.Strands {
		sc.strandLines[i].SetPoints(st.Spine)
	}

	spin := t * m.Spin
	rot := math32.Vec3(math32.Sin(spin)*0.1, spin, 0)
	sc.Graph.Rotate(rot.X, rot.Y)
	sc.constellation.SetPose(math32.Vector3{}, rot, 1)
	if sc.orbits != nil {
		sc.orbits.SetPose(math32.Vector3{}, math32.Vec3(0, spin*orbitSpin, 0), 1)
	}

	sc.Links.Update(dt, m.Pulse)
	for i, ln := range sc.Links.Links {
		sc.linkLines[i].SetPoints(ln.Path)
		sc.pulses[i].SetPos(ln.Pulse)
	}

	if sc.jitter > 0.0001 {
		sc.rootRot.X += (sc.Rand.Float32() - 0.5) * sc.jitter
		sc.rootRot.Z += (sc.Rand.Float32() - 0.5) * sc.jitter
		sc.jitter *= nudgeDecay
	}
	if !sc.dragging {
		sc.drag = sc.drag.MulScalar(max(0, 1-dt*dragSnap))
	}
	rootRot := sc.rootRot
	rootRot.X += sc.drag.Y
	rootRot.Y += sc.drag.X
	y := sc.Config.OffsetY + math32.Sin(t*0.9)*m.Float
	sc.root.SetPose(math32.Vec3(0, y, 0), rootRot, sc.Config.Scale)

	sc.surf.Render()
}

// Nudge gives the composition a small decaying shake, as on a click.
func (sc *Scene) Nudge() {
	sc.jitter = nudgeJitter
}

// Drag rotates the composition by a pointer drag of dx, dy pixels.
// A drag across the whole container turns it by half a revolution,
// within [DragAzimuth] and [DragPolar]. The rotation springs back
// after [Scene.EndDrag].
func (sc *Scene) Drag(dx, dy float32) {
	w := float32(max(sc.size.X, 1))
	h := float32(max(sc.size.Y, 1))
	sc.dragging = true
	sc.drag.X = math32.Clamp(sc.drag.X+dx/w*math32.Pi, DragAzimuth[0], DragAzimuth[1])
	sc.drag.Y = math32.Clamp(sc.drag.Y+dy/h*math32.Pi, DragPolar[0], DragPolar[1])
}

// EndDrag releases the drag rotation.
func (sc *Scene) EndDrag() {
	sc.dragging = false
}

// DragRotation returns the current drag rotation, azimuth in X and
// polar in Y.
func (sc *Scene) DragRotation() math32.Vector2 {
	return sc.drag
}

// Background returns the resolved backdrop color.
func (sc *Scene) Background() color.RGBA {
	return sc.Palette.Background
}

// Release frees the surface. The scene must not be stepped afterwards.
func (sc *Scene) Release() {
	sc.surf.Release()
}
