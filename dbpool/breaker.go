/*
 * MIT License
 *
 * Copyright (c) 2025 Nicolas JUHEL
 *
 * Permission is hereby granted, free of charge, to any person obtaining a copy
 * of this software and associated documentation files (the "Software"), to deal
 * in the Software without restriction, including without limitation the rights
 * to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
 * copies of the Software, and to permit persons to whom the Software is
 * furnished to do so, subject to the following conditions:
 *
 * The above copyright notice and this permission notice shall be included in all
 * copies or substantial portions of the Software.
 *
 * THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
 * IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
 * FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
 * AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
 * LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
 * OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN THE
 * SOFTWARE.
 *
 *
 */

package dbpool

import (
	"sync/atomic"
	"time"
)

// circuitBreaker is a process-wide, per-Pool failure gate: once Threshold
// consecutive failures have been recorded it refuses every caller for
// Cooldown, then lets exactly one probe call through to decide whether to
// reset. Grounded on original_source/pg_pool.h's CircuitBreaker member
// (tracked failure count plus a cooldown before the next attempt).
type circuitBreaker struct {
	threshold int32
	cooldown  time.Duration

	failures    atomic.Int32
	lastFailure atomic.Int64 // UnixNano
	probing     atomic.Bool
}

func newCircuitBreaker(threshold int, cooldown time.Duration) *circuitBreaker {
	return &circuitBreaker{threshold: int32(threshold), cooldown: cooldown}
}

// Allow reports whether a new call may proceed: always true under
// threshold, true for exactly one probing call per cooldown window once
// tripped, false otherwise.
func (b *circuitBreaker) Allow() bool {
	if b.failures.Load() < b.threshold {
		return true
	}
	since := time.Since(time.Unix(0, b.lastFailure.Load()))
	if since < b.cooldown {
		return false
	}
	return b.probing.CompareAndSwap(false, true)
}

// RecordSuccess resets the breaker to fully closed.
func (b *circuitBreaker) RecordSuccess() {
	b.failures.Store(0)
	b.probing.Store(false)
}

// RecordFailure counts a failure and restarts the cooldown window from now.
func (b *circuitBreaker) RecordFailure() {
	b.failures.Add(1)
	b.lastFailure.Store(time.Now().UnixNano())
	b.probing.Store(false)
}

// Open reports whether the breaker is currently tripped and outside any
// probe window, for diagnostics/metrics.
func (b *circuitBreaker) Open() bool {
	if b.failures.Load() < b.threshold {
		return false
	}
	return time.Since(time.Unix(0, b.lastFailure.Load())) < b.cooldown
}
