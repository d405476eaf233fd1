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

package session

import (
	"time"

	"github/sabouaram/blaze/httpcodec"
)

// Config bounds one connection's timing and framing limits.
type Config struct {
	// HeaderTimeout bounds how long Reading may wait for a complete
	// request-line + header section before the session sends 408 and
	// closes. Zero disables the deadline.
	HeaderTimeout time.Duration

	// IdleTimeout bounds how long a kept-alive connection may sit with no
	// bytes before the session closes it (no response sent). Zero
	// disables the deadline.
	IdleTimeout time.Duration

	// WriteTimeout bounds how long Writing may take to flush a response.
	// Zero disables the deadline.
	WriteTimeout time.Duration

	// Limits are the httpcodec size limits applied to every request read
	// on this connection.
	Limits httpcodec.Limits
}

func (c Config) limits() httpcodec.Limits {
	if c.Limits.MaxHeaderBytes == 0 && c.Limits.MaxBodyBytes == 0 {
		return httpcodec.DefaultLimits()
	}
	return c.Limits
}
