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

package reactor

import (
	"time"

	libcfg "github/sabouaram/blaze/config"
	liberr "github/sabouaram/blaze/errors"
)

// Config describes a single listener's shape: address, shard count, and the
// graceful-shutdown drain deadline.
type Config struct {
	// Addr is the "host:port" to listen on.
	Addr string `mapstructure:"addr" json:"addr" yaml:"addr" validate:"required"`

	// Shards is the number of goroutines concurrently calling Accept on the
	// listener. 0 or 1 means a single accept loop.
	Shards int `mapstructure:"shards" json:"shards" yaml:"shards" validate:"min=0"`

	// Reuseport sets SO_REUSEPORT on the listening socket so multiple
	// reactor.Engine processes can bind the same Addr (platform-dependent;
	// see reuseport_unix.go).
	Reuseport bool `mapstructure:"reuseport" json:"reuseport" yaml:"reuseport"`

	// KeepAlivePeriod is the TCP keep-alive interval applied to every
	// accepted connection. 0 (or negative) uses a 3-minute default.
	KeepAlivePeriod time.Duration `mapstructure:"keep_alive_period" json:"keep_alive_period" yaml:"keep_alive_period"`

	// DrainTimeout bounds how long Stop waits for in-flight connections to
	// finish before it returns anyway.
	DrainTimeout time.Duration `mapstructure:"drain_timeout" json:"drain_timeout" yaml:"drain_timeout"`
}

// Validate checks the struct tags above via the shared config validator.
func (c *Config) Validate() liberr.Error {
	return libcfg.Validate(c)
}

// shardCount normalizes Shards to at least 1.
func (c *Config) shardCount() int {
	if c.Shards < 1 {
		return 1
	}
	return c.Shards
}

// drainTimeout normalizes DrainTimeout to a sane default.
func (c *Config) drainTimeout() time.Duration {
	if c.DrainTimeout <= 0 {
		return 30 * time.Second
	}
	return c.DrainTimeout
}

// keepAlive normalizes KeepAlivePeriod to the teacher's 3-minute default
// (badu-http/tcp_keep_alive_listener.go) when unset.
func (c *Config) keepAlive() time.Duration {
	if c.KeepAlivePeriod <= 0 {
		return 3 * time.Minute
	}
	return c.KeepAlivePeriod
}
