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

// Package wsock upgrades a matching HTTP/1.1 connection to a WebSocket and
// manages the sessions that result: one Hub tracks, per registered path,
// the set of currently open connections, so Broadcast can fan a message out
// to all of them without the caller tracking anything itself.
//
// The rest of this module drives its own request codec over a raw net.Conn
// rather than net/http, so the handshake is performed through a small
// http.ResponseWriter/http.Hijacker shim (hijack.go) that lets
// gorilla/websocket's Upgrader do the handshake it already knows how to do
// — the same trick any non-net/http server reaches for to reuse gorilla's
// handshake instead of reimplementing RFC 6455's Sec-WebSocket-Accept
// derivation by hand.
//
// Grounded on original_source/framework/include/blaze/websocket.h's
// WebSocket/WebSocketHandlers shape (on_open/on_message/on_close, a close
// method, opaque user_data) and original_source/tests/test_websocket.cpp's
// two scenarios (echo, and broadcast to multiple open sessions on one
// path), reworked into Go's connection-per-goroutine idiom: each Conn owns
// a dedicated writer goroutine draining a bounded outbound channel, so one
// slow client never stalls a broadcast to the others.
package wsock
