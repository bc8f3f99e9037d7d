// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package headless

import (
	"io"

	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/garden"
	"cogentcore.org/datagarden/render/recorder"
	"gopkg.in/yaml.v3"
)

// Summary is a snapshot of a running garden, for inspection and
// regression diffs.
type Summary struct {
	Time    float32       `yaml:"time"`
	Frames  int           `yaml:"frames"`
	Size    [2]int        `yaml:"size,flow"`
	Camera  CameraState   `yaml:"camera"`
	Nodes   int           `yaml:"nodes"`
	Edges   int           `yaml:"edges"`
	Strands []StrandState `yaml:"strands"`
	Links   []LinkState   `yaml:"links"`
}

// CameraState is the camera part of a [Summary].
type CameraState struct {
	Pos    [3]float32 `yaml:"pos,flow"`
	Target [3]float32 `yaml:"target,flow"`
	FOV    float32    `yaml:"fov"`
}

// StrandState is one strand in a [Summary].
type StrandState struct {
	Seed   float32    `yaml:"seed"`
	Height float32    `yaml:"height"`
	Tip    [3]float32 `yaml:"tip,flow"`
}

// LinkState is one link in a [Summary].
type LinkState struct {
	Target   int        `yaml:"target"`
	Progress float32    `yaml:"progress"`
	Pulse    [3]float32 `yaml:"pulse,flow"`
}

func vec(v math32.Vector3) [3]float32 {
	return [3]float32{v.X, v.Y, v.Z}
}

// Summarize returns the summary of sc drawn on surf.
func Summarize(sc *garden.Scene, surf *recorder.Surface) *Summary {
	sm := &Summary{
		Time:   sc.Time,
		Frames: surf.Frames,
		Size:   [2]int{surf.Size.X, surf.Size.Y},
		Camera: CameraState{Pos: vec(surf.Camera.Pos), Target: vec(surf.Camera.Target), FOV: surf.Camera.FOV},
		Nodes:  len(sc.Graph.Points),
		Edges:  len(sc.Graph.Edges),
	}
	for _, st := range sc.Strands {
		sm.Strands = append(sm.Strands, StrandState{Seed: st.Seed, Height: st.Height, Tip: vec(*st.Tip())})
	}
	for _, ln := range sc.Links.Links {
		sm.Links = append(sm.Links, LinkState{Target: ln.Target, Progress: ln.Progress, Pulse: vec(ln.Pulse)})
	}
	return sm
}

// WriteYAML writes the summary as YAML.
func (sm *Summary) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(sm); err != nil {
		return err
	}
	return enc.Close()
}
