// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

import (
	"cogentcore.org/core/math32"
	"cogentcore.org/datagarden/randx"
)

// Strand is one swaying plant-like polyline with its base at y = 0
// and a free tip at y = Height. Its shape is a closed-form function
// of time, so Update can be called with any time in any order.
type Strand struct {

	// Seed decorrelates the sway of this strand from the others.
	Seed float32

	// Height of the strand.
	Height float32

	// Radius of the sway circle at the base; it tapers toward the tip.
	Radius float32

	// Spine holds the sample points, updated in place.
	Spine []math32.Vector3
}

// NewStrand returns a strand with the given number of samples (at least 2).
func NewStrand(seed, height, radius float32, samples int) *Strand {
	return &Strand{Seed: seed, Height: height, Radius: radius, Spine: make([]math32.Vector3, max(samples, 2))}
}

// Update recomputes the spine for elapsed time t (seconds), with
// the time terms scaled by speed.
func (st *Strand) Update(t, speed float32) {
	last := float32(len(st.Spine) - 1)
	for i := range st.Spine {
		f := float32(i) / last
		y := f * st.Height
		sway := math32.Sin((y*2.2+t*1.05*speed+st.Seed)*0.9)*0.22 +
			math32.Sin((t*0.55*speed+st.Seed)*0.7)*0.12
		taper := st.Radius * (0.5 + 0.5*(1-f))
		st.Spine[i] = math32.Vec3(math32.Sin(sway)*taper, y, math32.Cos(sway)*taper)
	}
}

// Tip returns a pointer to the tip of the strand. The pointer stays
// valid for the life of the strand and always reflects the last Update.
func (st *Strand) Tip() *math32.Vector3 {
	return &st.Spine[len(st.Spine)-1]
}

// StrandsConfig parameterizes a set of strands.
type StrandsConfig struct {

	// Count is the number of strands.
	Count int `default:"7" min:"1"`

	// Height is the nominal strand height; each strand varies it by [0.9, 1.15).
	Height float32 `default:"1.25"`

	// Radius is the nominal sway radius; each strand varies it by [0.8, 1.25).
	Radius float32 `default:"0.36"`

	// Samples is the number of points along each strand.
	Samples int `default:"38" min:"2"`
}

// Strands is the set of strands in a scene.
type Strands []*Strand

// NewStrands makes the strands described by cfg, drawing seeds
// and per-strand size variation from rnd.
func NewStrands(cfg StrandsConfig, rnd randx.Rand) Strands {
	ss := make(Strands, cfg.Count)
	for i := range ss {
		seed := rnd.Float32()*1000 + float32(i)*13.37
		h := cfg.Height * randx.Range(rnd, 0.9, 1.15)
		r := cfg.Radius * randx.Range(rnd, 0.8, 1.25)
		ss[i] = NewStrand(seed, h, r, cfg.Samples)
	}
	return ss
}

// Update updates all strands for time t.
func (ss Strands) Update(t, speed float32) {
	for _, st := range ss {
		st.Update(t, speed)
	}
}

// Tips returns the tip pointers of all strands.
func (ss Strands) Tips() []*math32.Vector3 {
	tips := make([]*math32.Vector3, len(ss))
	for i, st := range ss {
		tips[i] = st.Tip()
	}
	return tips
}

// Seeds returns the seeds of all strands.
func (ss Strands) Seeds() []float32 {
	seeds := make([]float32, len(ss))
	for i, st := range ss {
		seeds[i] = st.Seed
	}
	return seeds
}
