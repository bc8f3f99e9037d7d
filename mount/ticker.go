// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package mount

import (
	"sync"
	"time"
)

// Ticker is a [Scheduler] that delivers frames from a
// [time.Ticker] goroutine. Frame callbacks run with Lock held.
type Ticker struct {

	// Lock and Unlock, if both set, bracket each batch of frame
	// callbacks, typically the widget AsyncLock and AsyncUnlock.
	Lock, Unlock func()

	ticker  *time.Ticker
	done    chan struct{}
	start   time.Time
	pending []*tickRequest

	// mu protects the fields above.
	mu sync.Mutex
}

type tickRequest struct {
	fn       FrameFunc
	canceled bool
}

// Start starts delivering frames every interval. It does nothing if
// the ticker is already running.
func (tk *Ticker) Start(interval time.Duration) {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	if tk.ticker != nil {
		return
	}
	tk.ticker = time.NewTicker(interval)
	tk.done = make(chan struct{})
	tk.start = time.Now()
	go tk.loop(tk.ticker, tk.done)
}

// Stop stops the ticker; pending requests are dropped. It is safe
// to call any number of times and is suitable for
// an app quit-clean function.
func (tk *Ticker) Stop() {
	tk.mu.Lock()
	defer tk.mu.Unlock()
	if tk.ticker == nil {
		return
	}
	tk.ticker.Stop()
	close(tk.done)
	tk.ticker = nil
	tk.pending = nil
}

func (tk *Ticker) RequestFrame(fn FrameFunc) func() {
	rq := &tickRequest{fn: fn}
	tk.mu.Lock()
	tk.pending = append(tk.pending, rq)
	tk.mu.Unlock()
	return func() {
		tk.mu.Lock()
		rq.canceled = true
		tk.mu.Unlock()
	}
}

func (tk *Ticker) loop(t *time.Ticker, done chan struct{}) {
	for {
		var now time.Time
		select {
		case <-done:
			return
		case now = <-t.C:
		}
		tk.mu.Lock()
		if tk.ticker != t {
			tk.mu.Unlock()
			return
		}
		run := tk.pending
		tk.pending = nil
		elapsed := now.Sub(tk.start)
		tk.mu.Unlock()
		if len(run) == 0 {
			continue
		}
		tk.run(run, elapsed)
	}
}

func (tk *Ticker) run(run []*tickRequest, elapsed time.Duration) {
	if tk.Lock != nil && tk.Unlock != nil {
		tk.Lock()
		defer tk.Unlock()
	}
	for _, rq := range run {
		tk.mu.Lock()
		canceled := rq.canceled
		tk.mu.Unlock()
		if !canceled {
			rq.fn(elapsed)
		}
	}
}
