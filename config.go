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

package blaze

import (
	"crypto/tls"
	"net/http"

	liberr "github/sabouaram/blaze/errors"
	liblog "github/sabouaram/blaze/logger"
	"github/sabouaram/blaze/reactor"
	"github/sabouaram/blaze/session"
)

// Config configures a Server: its listener shape (Reactor), its
// per-connection timing/framing limits (Session), an optional leveled
// logger, and the WebSocket upgrader's origin check.
//
// Ground: LoginRadius-atreugo/types.go's Config groups the same kind of
// listener/TLS/logger fields flat on one struct; this one splits the
// listener and per-connection concerns into the reactor/session packages'
// own Config types instead of re-declaring their fields here.
type Config struct {
	// Reactor configures the listening socket(s) Listen/ListenTLS open.
	Reactor reactor.Config

	// Session bounds every accepted connection's header/idle/write
	// deadlines and httpcodec size limits.
	Session session.Config

	// TLS is the base TLS configuration ListenTLS clones and adds the
	// loaded certificate to. Nil means an empty *tls.Config.
	TLS *tls.Config

	// Logger is used by the reactor, session and WebSocket hub. Nil
	// means a no-op discard logger.
	Logger liblog.Logger

	// CheckOrigin validates the Origin header of an incoming WebSocket
	// handshake. Nil means gorilla/websocket's own same-origin default
	// (ground: wsock/hub.go's NewHub).
	CheckOrigin func(r *http.Request) bool
}

// Validate checks the Reactor sub-config. Session carries no struct tags
// of its own (session.Config.limits() normalizes zero values internally).
func (c Config) Validate() liberr.Error {
	return c.Reactor.Validate()
}
