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
	"net/http"
	"time"

	liberr "github/sabouaram/blaze/errors"
)

const (
	// DefaultSize is the fixed number of pool entries Open creates when
	// Config.Size is unset.
	DefaultSize = 10

	// DefaultMaxWait is how long Acquire waits for a free entry before
	// failing, when Config.MaxWait is unset.
	DefaultMaxWait = 5 * time.Second

	// DefaultBreakerThreshold is the number of consecutive failures that
	// trips the circuit breaker, when Config.BreakerThreshold is unset.
	DefaultBreakerThreshold = 5

	// DefaultBreakerCooldown is how long the breaker stays open before
	// letting a single probe through, when Config.BreakerCooldown is
	// unset.
	DefaultBreakerCooldown = 5 * time.Second
)

// Config configures a Pool. Grounded on original_source/pg_pool.h's
// constructor parameters (connection count, DSN) plus its CircuitBreaker
// member's threshold/cooldown, shaped the way nabbar-golib/database/gorm's
// Config struct groups pool-size/lifetime/driver fields together.
type Config struct {
	// Driver selects the SQL engine and its placeholder/dial conventions.
	Driver Driver

	// DSN is the engine-specific connection string handed to database/sql.
	DSN string

	// Size is the fixed number of connections the pool leases from.
	// Defaults to DefaultSize.
	Size int

	// MaxWait bounds how long Acquire queues for a free entry before
	// returning ErrCodeAcquireTimeout. Defaults to DefaultMaxWait.
	MaxWait time.Duration

	// BreakerThreshold is the number of consecutive failures that trips
	// the breaker. Defaults to DefaultBreakerThreshold.
	BreakerThreshold int

	// BreakerCooldown is how long the breaker stays open before allowing
	// a single probe through. Defaults to DefaultBreakerCooldown.
	BreakerCooldown time.Duration
}

func (c Config) withDefaults() Config {
	if c.Size <= 0 {
		c.Size = DefaultSize
	}
	if c.MaxWait <= 0 {
		c.MaxWait = DefaultMaxWait
	}
	if c.BreakerThreshold <= 0 {
		c.BreakerThreshold = DefaultBreakerThreshold
	}
	if c.BreakerCooldown <= 0 {
		c.BreakerCooldown = DefaultBreakerCooldown
	}
	return c
}

// Validate reports whether c names a known Driver and a non-empty DSN.
func (c Config) Validate() error {
	if !c.Driver.valid() {
		return liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError,
			ErrCodeBadConfig, "dbpool: unknown driver "+string(c.Driver))
	}
	if c.DSN == "" {
		return liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError,
			ErrCodeBadConfig, "dbpool: empty DSN")
	}
	return nil
}
