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
	"bufio"
	"net"
	"net/http"
	"net/url"

	"github/sabouaram/blaze/httpcodec"
)

// hijackShim adapts a raw net.Conn plus the bufio.Reader the session had
// already been reading request bytes from into the
// http.ResponseWriter/http.Hijacker pair gorilla/websocket's Upgrader
// expects. gorilla never calls Write/WriteHeader on a successful upgrade —
// it hijacks and writes the 101 response itself straight to the returned
// bufio.ReadWriter — so those methods exist only to satisfy the interface.
type hijackShim struct {
	conn   net.Conn
	br     *bufio.Reader
	header http.Header
}

func newHijackShim(conn net.Conn, br *bufio.Reader) *hijackShim {
	return &hijackShim{conn: conn, br: br, header: make(http.Header)}
}

func (h *hijackShim) Header() http.Header { return h.header }

func (h *hijackShim) Write(b []byte) (int, error) { return h.conn.Write(b) }

func (h *hijackShim) WriteHeader(int) {}

func (h *hijackShim) Hijack() (net.Conn, *bufio.ReadWriter, error) {
	bw := bufio.NewWriter(h.conn)
	return h.conn, bufio.NewReadWriter(h.br, bw), nil
}

// toHTTPRequest rebuilds enough of an *http.Request from req for
// Upgrader.Upgrade to validate the handshake (method, Sec-WebSocket-*
// headers, Host) against. The body is never read by the upgrader, so it's
// left nil.
func toHTTPRequest(conn net.Conn, req *httpcodec.Request) *http.Request {
	hdr := make(http.Header, len(req.Header))
	for k, v := range req.Header {
		hdr[http.CanonicalHeaderKey(k)] = v
	}
	return &http.Request{
		Method:     req.Method,
		URL:        &url.URL{Path: req.Path, RawQuery: req.RawQuery},
		Proto:      req.Proto,
		ProtoMajor: req.ProtoMajor,
		ProtoMinor: req.ProtoMinor,
		Header:     hdr,
		Host:       req.Host,
		RemoteAddr: conn.RemoteAddr().String(),
	}
}
