// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package randx provides the random sources used to decorrelate
// the procedural elements of a garden scene. Every scene owns its
// own source so that two scenes never share random state.
package randx

import "math/rand"

// Rand is the subset of the standard rand.Rand methods used by
// scene construction, so tests can substitute a fixed sequence.
type Rand interface {
	// Float32 returns, as a float32, a pseudo-random number in the half-open interval [0.0,1.0).
	Float32() float32

	// Float64 returns, as a float64, a pseudo-random number in the half-open interval [0.0,1.0).
	Float64() float64

	// Intn returns, as an int, a non-negative pseudo-random number in the half-open interval [0,n).
	// It panics if n <= 0.
	Intn(n int) int
}

// SysRand implements [Rand] on top of its own rand.Rand source.
type SysRand struct {

	// Seed is the seed the source was created with.
	Seed int64

	rand *rand.Rand
}

// NewSysRand returns a new SysRand with a new
// rand.Rand random source with given initial seed.
func NewSysRand(seed int64) *SysRand {
	return &SysRand{Seed: seed, rand: rand.New(rand.NewSource(seed))}
}

func (r *SysRand) Float32() float32 {
	return r.rand.Float32()
}

func (r *SysRand) Float64() float64 {
	return r.rand.Float64()
}

func (r *SysRand) Intn(n int) int {
	return r.rand.Intn(n)
}

// Range returns a value uniformly drawn from [lo, hi).
func Range(r Rand, lo, hi float32) float32 {
	return lo + r.Float32()*(hi-lo)
}
