// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package garden

// Motion holds the factors applied to every time-dependent term of
// the scene. Reduced motion slows the scene down rather than
// freezing it.
type Motion struct {

	// Strand scales the strand sway clock.
	Strand float32

	// Pulse scales the link pulse speed.
	Pulse float32

	// Spin is the constellation rotation rate in radians per second.
	Spin float32

	// Float is the amplitude of the root float.
	Float float32
}

// FullMotion is the default motion profile.
var FullMotion = Motion{Strand: 1, Pulse: 1, Spin: 0.45, Float: 0.035}

// ReducedMotion is used when the host reports a reduced-motion preference.
var ReducedMotion = Motion{Strand: 0.15, Pulse: 0.35, Spin: 0.3, Float: 0.02}

// MotionFor returns the motion profile for the given preference.
func MotionFor(reduced bool) Motion {
	if reduced {
		return ReducedMotion
	}
	return FullMotion
}
