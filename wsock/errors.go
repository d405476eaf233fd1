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

package wsock

import (
	liberr "github/sabouaram/blaze/errors"
)

const (
	// ErrCodeNotHijackable is reserved for a net.Conn that cannot hand over
	// its buffered I/O. hijackShim.Hijack never fails, so nothing in this
	// package raises it.
	ErrCodeNotHijackable = liberr.MinPkgWebSocket + iota

	// ErrCodeHandshakeFailed is reserved for a gorilla/websocket handshake
	// error. HandleUpgrade logs such an error and raises none.
	ErrCodeHandshakeFailed

	// ErrCodeQueueOverflow is reserved for a session closed for a full
	// outbound queue. Conn.send closes such a session with a 1008 close
	// frame and raises no error.
	ErrCodeQueueOverflow
)
