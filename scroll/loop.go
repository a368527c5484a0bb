// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scroll

// RunLoop is an explicit FIFO continuation queue modeling deferred
// next-turn work on the host main loop. Post-layout geometry is only
// valid after the platform's layout pass commits, so reads of it are
// deferred through here rather than performed same-tick. Continuations
// enqueued while the queue is draining run after everything already
// queued, so multiple nested deferrals preserve their relative order:
// layout commit, then read geometry, then apply derived constraint,
// then re-layout.
//
// A RunLoop is owned by one surface and driven only from the host
// main loop; nothing blocks and no locking is involved.
type RunLoop struct {
	queue []func()
}

// Defer enqueues the given continuation to run on a subsequent turn.
func (rl *RunLoop) Defer(f func()) {
	rl.queue = append(rl.queue, f)
}

// Len returns the number of pending continuations.
func (rl *RunLoop) Len() int {
	return len(rl.queue)
}

// Step runs the single next continuation, if any, returning whether
// one ran. The host calls this once per main-loop turn.
func (rl *RunLoop) Step() bool {
	if len(rl.queue) == 0 {
		return false
	}
	f := rl.queue[0]
	rl.queue = rl.queue[1:]
	f()
	return true
}

// Flush drains the queue in order, including continuations enqueued
// while draining.
func (rl *RunLoop) Flush() {
	for rl.Step() {
	}
}
