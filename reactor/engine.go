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
	"context"
	"net"
	"sync"
	"sync/atomic"
	"time"

	liberr "github/sabouaram/blaze/errors"
	liblog "github/sabouaram/blaze/logger"
)

const (
	// ErrCodeListen is raised when the listening socket cannot be opened.
	ErrCodeListen = liberr.MinPkgReactor + iota

	// ErrCodeAlreadyRunning is raised by Listen on an Engine already serving.
	ErrCodeAlreadyRunning
)

// Handler processes one accepted connection. It owns conn for its entire
// lifetime and must close it before returning.
type Handler func(ctx context.Context, conn net.Conn)

// Engine is one listener's lifecycle: accept loop(s), per-connection
// dispatch, live-connection accounting, and graceful drain.
type Engine struct {
	cfg Config
	log liblog.Logger
	hdl Handler

	mu      sync.Mutex
	ln      net.Listener
	running bool
	cancel  context.CancelFunc

	wg     sync.WaitGroup
	active int64
}

// New builds an Engine bound to cfg and hdl. log may be nil, in which case
// a no-op discard logger is used.
func New(cfg Config, hdl Handler, log liblog.Logger) *Engine {
	if log == nil {
		log = liblog.New(nil)
		log.SetLevel(liblog.NilLevel)
	}

	return &Engine{cfg: cfg, hdl: hdl, log: log}
}

// ActiveConns returns the number of connections currently being served.
func (e *Engine) ActiveConns() int64 {
	return atomic.LoadInt64(&e.active)
}

// Listen opens the listening socket and starts cfg.Shards goroutines
// Accept()-ing from it concurrently — Go's net.Listener supports
// concurrent Accept calls, so this models "N worker threads each running
// their own accept loop" without requiring a distinct fd per shard. When
// cfg.Reuseport is set the socket is opened with SO_REUSEPORT so multiple
// Engine processes may additionally share the same Addr.
func (e *Engine) Listen(ctx context.Context) liberr.Error {
	e.mu.Lock()
	if e.running {
		e.mu.Unlock()
		return liberr.New(ErrCodeAlreadyRunning, "engine already running")
	}

	lc := net.ListenConfig{}
	if e.cfg.Reuseport {
		lc = reuseportListenConfig()
	}

	ln, err := lc.Listen(ctx, "tcp", e.cfg.Addr)
	if err != nil {
		e.mu.Unlock()
		return liberr.New(ErrCodeListen, "listen", err)
	}

	ln = wrapKeepAlive(ln, e.cfg.keepAlive())

	runCtx, cancel := context.WithCancel(ctx)
	e.ln = ln
	e.cancel = cancel
	e.running = true
	e.mu.Unlock()

	shards := e.cfg.shardCount()
	e.wg.Add(shards)
	for i := 0; i < shards; i++ {
		go e.acceptLoop(runCtx, ln)
	}

	e.log.Info("reactor listening", liblog.Fields{"addr": e.cfg.Addr, "shards": shards})
	return nil
}

func (e *Engine) acceptLoop(ctx context.Context, ln net.Listener) {
	defer e.wg.Done()

	for {
		conn, err := ln.Accept()
		if err != nil {
			select {
			case <-ctx.Done():
				return
			default:
				e.log.Warning("accept error", liblog.Fields{"error": err.Error()})
				continue
			}
		}

		atomic.AddInt64(&e.active, 1)
		e.wg.Add(1)
		go func() {
			defer e.wg.Done()
			defer atomic.AddInt64(&e.active, -1)
			e.hdl(ctx, conn)
		}()
	}
}

// Stop closes the listener (unblocking every accept loop) and waits up to
// cfg.DrainTimeout for in-flight connections to finish. It returns after
// the deadline regardless of whether connections are still active.
func (e *Engine) Stop() {
	e.mu.Lock()
	if !e.running {
		e.mu.Unlock()
		return
	}
	e.running = false
	ln := e.ln
	cancel := e.cancel
	e.mu.Unlock()

	cancel()
	_ = ln.Close()

	done := make(chan struct{})
	go func() {
		e.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(e.cfg.drainTimeout()):
		e.log.Warning("drain timeout exceeded, connections still active", liblog.Fields{
			"active": e.ActiveConns(),
		})
	}
}
