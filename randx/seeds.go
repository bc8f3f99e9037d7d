// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package randx

import (
	"sync/atomic"
	"time"
)

// Seeds hands out a distinct seed for every call to Next,
// based on the current time plus a sequence number, so that
// two mounts in the same clock tick still get different seeds.
type Seeds struct {
	seq atomic.Int64

	// Now returns the current time; time.Now if nil.
	Now func() time.Time
}

// Next returns a new seed.
func (s *Seeds) Next() int64 {
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	n := s.seq.Add(1)
	return now().UnixNano() + n*7919
}

// NewRand returns a new [SysRand] using the given seed,
// or the next seed from s if seed is 0.
func (s *Seeds) NewRand(seed int64) *SysRand {
	if seed == 0 {
		seed = s.Next()
	}
	return NewSysRand(seed)
}
