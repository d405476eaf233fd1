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
	"testing"
	"time"
)

func TestBreakerAllowsUnderThreshold(t *testing.T) {
	b := newCircuitBreaker(3, 50*time.Millisecond)
	b.RecordFailure()
	b.RecordFailure()
	if !b.Allow() {
		t.Fatalf("expected Allow to be true below threshold")
	}
}

func TestBreakerTripsAtThreshold(t *testing.T) {
	b := newCircuitBreaker(2, 50*time.Millisecond)
	b.RecordFailure()
	b.RecordFailure()
	if b.Allow() {
		t.Fatalf("expected Allow to be false once tripped, within cooldown")
	}
}

func TestBreakerProbesExactlyOnceAfterCooldown(t *testing.T) {
	b := newCircuitBreaker(1, 20*time.Millisecond)
	b.RecordFailure()
	time.Sleep(30 * time.Millisecond)

	if !b.Allow() {
		t.Fatalf("expected the first call after cooldown to probe through")
	}
	if b.Allow() {
		t.Fatalf("expected a second concurrent call to be refused while the probe is in flight")
	}
}

func TestBreakerResetsOnSuccess(t *testing.T) {
	b := newCircuitBreaker(1, 20*time.Millisecond)
	b.RecordFailure()
	time.Sleep(30 * time.Millisecond)
	if !b.Allow() {
		t.Fatalf("expected probe to be allowed")
	}
	b.RecordSuccess()
	if !b.Allow() {
		t.Fatalf("expected Allow to be true after a recorded success")
	}
	if b.Open() {
		t.Fatalf("expected Open to report false after a recorded success")
	}
}

func TestBreakerRecordFailureRestartsCooldown(t *testing.T) {
	b := newCircuitBreaker(1, 50*time.Millisecond)
	b.RecordFailure()
	time.Sleep(60 * time.Millisecond)
	if !b.Allow() {
		t.Fatalf("expected probe to be allowed after cooldown")
	}
	// The probe itself failed: the cooldown window restarts from now.
	b.RecordFailure()
	if b.Allow() {
		t.Fatalf("expected Allow to be false immediately after a failed probe")
	}
}
