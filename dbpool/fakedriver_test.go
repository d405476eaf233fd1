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
	"io"
	"strconv"
	"sync"
	"sync/atomic"
)

var fakeDriverSeq atomic.Int64

// fakeDriver is a minimal in-memory database/sql driver used so Pool's
// acquire/release/retry/transaction/breaker mechanics can be exercised
// deterministically, with no cgo and no real database, mirroring the
// teacher's own CGO-skip precedent (database_test.go) by avoiding a real
// engine dependency entirely rather than skipping.
type fakeDriver struct {
	mu             sync.Mutex
	dead           bool // every Open'd connection already reports dead on Ping
	failFirstQuery bool // the very next Stmt.Query call fails as if the conn died mid-query
	opens          int
	pings          int
	execs          int
	queries        int
}

func (d *fakeDriver) Open(name string) (driver.Conn, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.opens++
	return &fakeConn{d: d, dead: d.dead}, nil
}

type fakeConn struct {
	d      *fakeDriver
	dead   bool
	closed bool
}

func (c *fakeConn) Prepare(query string) (driver.Stmt, error) {
	return &fakeStmt{c: c, query: query}, nil
}
func (c *fakeConn) Close() error { c.closed = true; return nil }
func (c *fakeConn) Begin() (driver.Tx, error) {
	return fakeTx{}, nil
}
func (c *fakeConn) Ping(ctx context.Context) error {
	c.d.mu.Lock()
	defer c.d.mu.Unlock()
	c.d.pings++
	if c.closed || c.dead {
		return driver.ErrBadConn
	}
	return nil
}

type fakeStmt struct {
	c     *fakeConn
	query string
}

func (s *fakeStmt) Close() error  { return nil }
func (s *fakeStmt) NumInput() int { return -1 }
func (s *fakeStmt) Exec(args []driver.Value) (driver.Result, error) {
	s.c.d.mu.Lock()
	s.c.d.execs++
	s.c.d.mu.Unlock()
	return fakeResult{}, nil
}
func (s *fakeStmt) Query(args []driver.Value) (driver.Rows, error) {
	s.c.d.mu.Lock()
	if s.c.d.failFirstQuery {
		s.c.d.failFirstQuery = false
		s.c.d.mu.Unlock()
		return nil, driver.ErrBadConn
	}
	s.c.d.queries++
	s.c.d.mu.Unlock()
	return &fakeRows{cols: []string{"id", "name"}, data: [][]driver.Value{{int64(1), "ada"}}}, nil
}

type fakeResult struct{}

func (fakeResult) LastInsertId() (int64, error) { return 1, nil }
func (fakeResult) RowsAffected() (int64, error) { return 1, nil }

type fakeTx struct{}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

type fakeRows struct {
	cols []string
	data [][]driver.Value
	pos  int
}

func (r *fakeRows) Columns() []string { return r.cols }
func (r *fakeRows) Close() error      { return nil }
func (r *fakeRows) Next(dest []driver.Value) error {
	if r.pos >= len(r.data) {
		return io.EOF
	}
	copy(dest, r.data[r.pos])
	r.pos++
	return nil
}

// newFakePool wires a Pool straight onto a *sql.DB backed by a freshly
// registered fakeDriver instance, bypassing Open's Driver-name dispatch so
// tests don't need a real engine (or a name collision with the drivers
// driver.go registers for real).
func newFakePool(t testingT, size int) (*Pool, *fakeDriver) {
	name := "dbpoolfake-" + t.Name() + "-" + strconv.FormatInt(fakeDriverSeq.Add(1), 10)
	fd := &fakeDriver{}
	sql.Register(name, fd)
	db, err := sql.Open(name, "fake")
	if err != nil {
		t.Fatalf("sql.Open: %v", err)
	}
	db.SetMaxOpenConns(size)

	cfg := Config{Driver: DriverPostgreSQL, DSN: "fake", Size: size}.withDefaults()
	p := &Pool{
		cfg:     cfg,
		db:      db,
		sem:     make(chan struct{}, size),
		breaker: newCircuitBreaker(cfg.BreakerThreshold, cfg.BreakerCooldown),
	}
	for i := 0; i < size; i++ {
		p.sem <- struct{}{}
	}
	return p, fd
}

// testingT is the subset of *testing.T this helper needs.
type testingT interface {
	Name() string
	Fatalf(format string, args ...any)
}
