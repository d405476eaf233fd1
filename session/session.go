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
	"bufio"
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"runtime"
	"strings"
	"time"

	liberr "github/sabouaram/blaze/errors"
	"github/sabouaram/blaze/httpcodec"
	liblog "github/sabouaram/blaze/logger"
)

const (
	// ErrCodePanic is raised when a Handler panics mid-dispatch.
	ErrCodePanic = liberr.MinPkgSession + iota
)

// Handler dispatches one fully-parsed request to the pipeline/router and
// returns the response to write back. It must not retain req.Body past
// return, since the session discards any unread bytes immediately after.
type Handler func(ctx context.Context, req *httpcodec.Request) *httpcodec.Response

// UpgradeFunc takes ownership of a connection that asked for a protocol
// upgrade (e.g. WebSocket's Connection: Upgrade / Upgrade: websocket pair).
// It is handed the raw conn and the bufio.Reader the session had been
// reading from (which may already hold bytes following the request's blank
// line, on a client that pipelines its handshake), plus the parsed request.
// A true return means the func took the connection; Serve stops driving it
// and does not close it itself. A false return means the upgrade was
// declined (e.g. unknown path); Serve falls through to ordinary dispatch so
// hdl can answer with its own error response.
type UpgradeFunc func(conn net.Conn, br *bufio.Reader, req *httpcodec.Request) bool

// closeWriter is satisfied by *net.TCPConn and similar: a half-close that
// sends a FIN without tearing down the read side, used to nudge the peer
// while we finish draining per badu-http/conn.go's closeWriteAndWait.
type closeWriter interface {
	CloseWrite() error
}

// Session owns the Reading/Dispatching/Writing/Closed state machine for one
// accepted connection.
type Session struct {
	conn    net.Conn
	br      *bufio.Reader
	cfg     Config
	hdl     Handler
	log     liblog.Logger
	upgrade UpgradeFunc
}

// SetUpgrade installs fn as the session's protocol-upgrade hook. It must be
// called before Serve; nil (the default) means the session never inspects
// a request for an upgrade and always dispatches it through hdl.
func (s *Session) SetUpgrade(fn UpgradeFunc) {
	s.upgrade = fn
}

// isUpgradeRequest reports whether req's Connection header lists "upgrade",
// per RFC 7230 §6.7 — the session itself doesn't know or care which
// protocol is being asked for, only that ownership of the connection may
// need to pass to s.upgrade.
func isUpgradeRequest(req *httpcodec.Request) bool {
	for _, v := range req.Header.Values("Connection") {
		for _, tok := range strings.Split(v, ",") {
			if strings.EqualFold(strings.TrimSpace(tok), "upgrade") {
				return true
			}
		}
	}
	return false
}

// New builds a Session over conn. log may be nil, in which case a no-op
// discard logger is used.
func New(conn net.Conn, hdl Handler, cfg Config, log liblog.Logger) *Session {
	if log == nil {
		log = liblog.New(nil)
		log.SetLevel(liblog.NilLevel)
	}
	return &Session{
		conn: conn,
		br:   bufio.NewReader(conn),
		cfg:  cfg,
		hdl:  hdl,
		log:  log,
	}
}

// Serve runs the state machine to completion: one or more Reading ->
// Dispatching -> Writing cycles over the pipelined connection, until the
// peer disconnects, a keep-alive-less response is written, or a framing
// error forces a close. It closes conn before returning, unless the upgrade
// hook took the connection.
func (s *Session) Serve(ctx context.Context) {
	handedOff := false
	defer func() {
		if !handedOff {
			s.conn.Close()
		}
	}()

	for {
		if s.cfg.HeaderTimeout > 0 {
			_ = s.conn.SetReadDeadline(time.Now().Add(s.cfg.HeaderTimeout))
		}

		req, err := httpcodec.ReadRequest(s.br, s.cfg.limits())
		if err != nil {
			s.handleReadError(err)
			return
		}
		_ = s.conn.SetReadDeadline(time.Time{})

		if s.upgrade != nil && isUpgradeRequest(req) && s.upgrade(s.conn, s.br, req) {
			handedOff = true
			return
		}

		if s.cfg.WriteTimeout > 0 {
			_ = s.conn.SetWriteDeadline(time.Now().Add(s.cfg.WriteTimeout))
		}

		resp := s.dispatch(ctx, req)
		_ = req.Discard()

		keepAlive := req.KeepAlive
		if resp.Header != nil && strings.EqualFold(resp.Header.Get("Connection"), "close") {
			keepAlive = false
		}

		if err := httpcodec.WriteResponse(s.conn, resp, keepAlive); err != nil {
			s.log.Warning("write response failed", liblog.Fields{"error": err.Error()})
			return
		}
		_ = s.conn.SetWriteDeadline(time.Time{})

		if !keepAlive {
			if cw, ok := s.conn.(closeWriter); ok {
				_ = cw.CloseWrite()
			}
			return
		}

		if s.cfg.IdleTimeout > 0 {
			_ = s.conn.SetReadDeadline(time.Now().Add(s.cfg.IdleTimeout))
			if _, err := s.br.Peek(1); err != nil {
				return
			}
			_ = s.conn.SetReadDeadline(time.Time{})
		}
	}
}

// dispatch invokes the handler, recovering a panic into a 500 response
// rather than letting it take the whole reactor goroutine down.
func (s *Session) dispatch(ctx context.Context, req *httpcodec.Request) (resp *httpcodec.Response) {
	defer func() {
		if r := recover(); r != nil {
			const size = 64 << 10
			buf := make([]byte, size)
			buf = buf[:runtime.Stack(buf, false)]
			s.log.Error("handler panic", liblog.Fields{"recovered": r, "stack": string(buf), "code": ErrCodePanic})
			resp = errorResponse(http.StatusInternalServerError, "internal server error")
		}
	}()
	return s.hdl(ctx, req)
}

// handleReadError classifies a ReadRequest failure per §4.3's table: a
// header-timeout net.Error becomes 408, a KindError becomes its mapped
// status, and a plain I/O error (peer reset or EOF mid-request) closes
// silently without a response.
func (s *Session) handleReadError(err error) {
	var ne net.Error
	if errors.As(err, &ne) && ne.Timeout() {
		s.writeAndDiscard(errorResponse(http.StatusRequestTimeout, "request header timeout"))
		return
	}
	if errors.Is(err, io.EOF) || errors.Is(err, io.ErrUnexpectedEOF) {
		return
	}
	if ke, ok := liberr.AsKind(err); ok {
		s.writeAndDiscard(errorResponse(ke.Status(), ke.Error()))
		return
	}
	// Unrecognized transport error (e.g. connection reset): close silently.
}

func (s *Session) writeAndDiscard(resp *httpcodec.Response) {
	_ = httpcodec.WriteResponse(s.conn, resp, false)
}

func errorResponse(status int, message string) *httpcodec.Response {
	return &httpcodec.Response{
		StatusCode: status,
		Header:     httpcodec.Header{"content-type": {"text/plain; charset=utf-8"}},
		Body:       strings.NewReader(message),
		BodySize:   int64(len(message)),
	}
}
