// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mount

import (
	"sync"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestTickerFrames(t *testing.T) {
	var mu sync.Mutex
	locked := atomic.Int32{}
	tk := &Ticker{
		Lock:   func() { mu.Lock(); locked.Add(1) },
		Unlock: func() { locked.Add(-1); mu.Unlock() },
	}
	var frames atomic.Int32
	var inLock atomic.Bool
	inLock.Store(true)
	var frame func(now time.Duration)
	frame = func(now time.Duration) {
		if locked.Load() != 1 {
			inLock.Store(false)
		}
		if frames.Add(1) < 3 {
			tk.RequestFrame(frame)
		}
	}
	tk.RequestFrame(frame)
	tk.Start(time.Millisecond)
	defer tk.Stop()
	assert.Eventually(t, func() bool { return frames.Load() == 3 }, 2*time.Second, time.Millisecond)
	assert.True(t, inLock.Load())
}

func TestTickerCancel(t *testing.T) {
	tk := &Ticker{}
	var ran atomic.Bool
	cancel := tk.RequestFrame(func(time.Duration) { ran.Store(true) })
	cancel()
	var done atomic.Bool
	tk.RequestFrame(func(time.Duration) { done.Store(true) })
	tk.Start(time.Millisecond)
	assert.Eventually(t, done.Load, 2*time.Second, time.Millisecond)
	assert.False(t, ran.Load())
	tk.Stop()
	tk.Stop()
}

func TestTickerStopDropsPending(t *testing.T) {
	tk := &Ticker{}
	tk.Start(time.Hour)
	var ran atomic.Bool
	tk.RequestFrame(func(time.Duration) { ran.Store(true) })
	tk.Stop()
	tk.mu.Lock()
	assert.Empty(t, tk.pending)
	tk.mu.Unlock()
	assert.False(t, ran.Load())
}
