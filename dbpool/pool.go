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
	"context"
	"database/sql"
	"database/sql/driver"
	"errors"
	"net/http"
	"sync/atomic"
	"time"

	liberr "github/sabouaram/blaze/errors"
)

// Pool is a fixed-size lease over a *sql.DB: Size tokens are handed out
// FIFO by a buffered channel (Go's channel runtime wakes the
// longest-waiting receiver first, which is exactly the waiter-queue
// behavior original_source/pg_pool.h implements by hand with an explicit
// queue). The pool bypasses database/sql's own pooling semantics for
// leasing — SetMaxOpenConns is pinned to Size purely so database/sql never
// silently opens more physical connections than the token count implies.
type Pool struct {
	cfg Config
	db  *sql.DB
	sem chan struct{}

	breaker *circuitBreaker
	closed  atomic.Bool
}

// Open dials the engine named by cfg.Driver and returns a ready Pool.
func Open(cfg Config) (*Pool, error) {
	cfg = cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	db, err := sql.Open(cfg.Driver.sqlDriverName(), cfg.DSN)
	if err != nil {
		return nil, liberr.NewKindStatus(liberr.KindResource, http.StatusServiceUnavailable,
			ErrCodeQueryFailed, "dbpool: open failed", err)
	}
	db.SetMaxOpenConns(cfg.Size)
	db.SetMaxIdleConns(cfg.Size)

	sem := make(chan struct{}, cfg.Size)
	for i := 0; i < cfg.Size; i++ {
		sem <- struct{}{}
	}

	return &Pool{
		cfg:     cfg,
		db:      db,
		sem:     sem,
		breaker: newCircuitBreaker(cfg.BreakerThreshold, cfg.BreakerCooldown),
	}, nil
}

// Close stops accepting new work and closes the underlying *sql.DB. Leases
// already checked out are unaffected until released.
func (p *Pool) Close() error {
	p.closed.Store(true)
	return p.db.Close()
}

// Conn is one leased pool entry, pinned to a single physical connection for
// the caller's exclusive use until Release.
type Conn struct {
	pool     *Pool
	raw      *sql.Conn
	released atomic.Bool
}

// Acquire waits up to cfg.MaxWait for a free entry, or for ctx to be
// canceled, whichever comes first. A dead leased connection is retried
// exactly once against a fresh physical connection before Acquire gives up.
func (p *Pool) Acquire(ctx context.Context) (*Conn, error) {
	if p.closed.Load() {
		return nil, liberr.NewKindStatus(liberr.KindResource, http.StatusServiceUnavailable,
			ErrCodePoolClosed, "dbpool: pool closed")
	}
	if !p.breaker.Allow() {
		return nil, liberr.NewKindStatus(liberr.KindResource, http.StatusServiceUnavailable,
			ErrCodeBreakerOpen, "dbpool: circuit breaker open")
	}

	timer := time.NewTimer(p.cfg.MaxWait)
	defer timer.Stop()

	select {
	case <-p.sem:
	case <-timer.C:
		return nil, liberr.NewKindStatus(liberr.KindResource, http.StatusServiceUnavailable,
			ErrCodeAcquireTimeout, "dbpool: timed out waiting for a connection")
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	raw, err := p.dialLive(ctx)
	if err != nil {
		p.sem <- struct{}{}
		p.breaker.RecordFailure()
		return nil, liberr.NewKindStatus(liberr.KindResource, http.StatusServiceUnavailable,
			ErrCodeQueryFailed, "dbpool: acquire failed", err)
	}
	return &Conn{pool: p, raw: raw}, nil
}

// dialLive leases a physical connection from the underlying *sql.DB and
// pings it, retrying once against a brand new physical connection if the
// first one is dead — the single reconnect-on-connection-error retry.
func (p *Pool) dialLive(ctx context.Context) (*sql.Conn, error) {
	raw, err := p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	if err := raw.PingContext(ctx); err == nil {
		return raw, nil
	}
	_ = raw.Close()

	raw, err = p.db.Conn(ctx)
	if err != nil {
		return nil, err
	}
	if err := raw.PingContext(ctx); err != nil {
		_ = raw.Close()
		return nil, err
	}
	return raw, nil
}

// Release returns the pool entry, idempotently. Safe to call more than
// once; only the first call has effect.
func (c *Conn) Release() {
	if c.released.CompareAndSwap(false, true) {
		_ = c.raw.Close()
		c.pool.sem <- struct{}{}
	}
}

// Query acquires a connection, runs query, and releases it, feeding the
// circuit breaker and retrying once on a connection-level failure (not on
// a query-semantic one, which is returned without a retry, wrapped as a
// KindResource error).
func (p *Pool) Query(ctx context.Context, query string, args ...any) (*Result, error) {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	rows, qerr := conn.raw.QueryContext(ctx, query, args...)
	if isConnError(qerr) {
		retry, rerr := p.dialLive(ctx)
		if rerr != nil {
			p.breaker.RecordFailure()
			return nil, liberr.NewKindStatus(liberr.KindResource, http.StatusServiceUnavailable,
				ErrCodeQueryFailed, "dbpool: reconnect failed", rerr)
		}
		_ = conn.raw.Close()
		conn.raw = retry
		rows, qerr = conn.raw.QueryContext(ctx, query, args...)
	}
	if qerr != nil {
		p.breaker.RecordFailure()
		return nil, liberr.NewKindStatus(liberr.KindResource, http.StatusBadGateway,
			ErrCodeQueryFailed, "dbpool: query failed", qerr)
	}

	res, serr := scanResult(rows)
	if serr != nil {
		p.breaker.RecordFailure()
		return nil, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
			ErrCodeQueryFailed, "dbpool: scan failed", serr)
	}
	p.breaker.RecordSuccess()
	return res, nil
}

// Exec is Query's counterpart for statements that return no rows (INSERT,
// UPDATE, DELETE, DDL), applying the same reconnect-once and breaker
// policy.
func (p *Pool) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	conn, err := p.Acquire(ctx)
	if err != nil {
		return nil, err
	}
	defer conn.Release()

	res, eerr := conn.raw.ExecContext(ctx, query, args...)
	if isConnError(eerr) {
		retry, rerr := p.dialLive(ctx)
		if rerr != nil {
			p.breaker.RecordFailure()
			return nil, liberr.NewKindStatus(liberr.KindResource, http.StatusServiceUnavailable,
				ErrCodeQueryFailed, "dbpool: reconnect failed", rerr)
		}
		_ = conn.raw.Close()
		conn.raw = retry
		res, eerr = conn.raw.ExecContext(ctx, query, args...)
	}
	if eerr != nil {
		p.breaker.RecordFailure()
		return nil, liberr.NewKindStatus(liberr.KindResource, http.StatusBadGateway,
			ErrCodeQueryFailed, "dbpool: exec failed", eerr)
	}
	p.breaker.RecordSuccess()
	return res, nil
}

// Placeholder exposes the configured Driver's parameter-marker syntax, for
// callers building SQL by hand.
func (p *Pool) Placeholder(index int) string {
	return p.cfg.Driver.Placeholder(index)
}

func isConnError(err error) bool {
	return err != nil && (errors.Is(err, driver.ErrBadConn) || errors.Is(err, sql.ErrConnDone))
}
