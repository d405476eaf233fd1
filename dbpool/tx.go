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
	"net/http"

	liberr "github/sabouaram/blaze/errors"
)

type txKey struct{}

// Tx is a transaction scope pinned to one leased connection: every
// statement run through it shares that connection for BEGIN/COMMIT/
// ROLLBACK, per original_source/pg_pool.h's single-connection transaction
// semantics. There is no nested-transaction support — Transaction called
// with a context that already carries a Tx (the one passed to another
// Transaction's callback) fails fast.
type Tx struct {
	conn *Conn
}

// Query runs query against this transaction's pinned connection.
func (tx *Tx) Query(ctx context.Context, query string, args ...any) (*Result, error) {
	rows, err := tx.conn.raw.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, liberr.NewKindStatus(liberr.KindResource, http.StatusBadGateway,
			ErrCodeQueryFailed, "dbpool: tx query failed", err)
	}
	return scanResult(rows)
}

// Exec runs query against this transaction's pinned connection.
func (tx *Tx) Exec(ctx context.Context, query string, args ...any) (sql.Result, error) {
	res, err := tx.conn.raw.ExecContext(ctx, query, args...)
	if err != nil {
		return nil, liberr.NewKindStatus(liberr.KindResource, http.StatusBadGateway,
			ErrCodeQueryFailed, "dbpool: tx exec failed", err)
	}
	return res, nil
}

// Transaction acquires a connection, runs BEGIN, invokes fn, then COMMITs
// on a nil return or ROLLBACKs otherwise (including on panic, which is
// re-raised after rolling back). fn is passed a context carrying this
// Tx, so a nested Transaction call sharing that context fails fast with
// ErrCodeNestedTransaction instead of deadlocking on the same Pool.
func (p *Pool) Transaction(ctx context.Context, fn func(ctx context.Context, tx *Tx) error) (err error) {
	if ctx.Value(txKey{}) != nil {
		return liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError,
			ErrCodeNestedTransaction, "dbpool: nested transaction")
	}

	conn, aerr := p.Acquire(ctx)
	if aerr != nil {
		return aerr
	}
	defer conn.Release()

	if _, berr := conn.raw.ExecContext(ctx, "BEGIN"); berr != nil {
		p.breaker.RecordFailure()
		return liberr.NewKindStatus(liberr.KindResource, http.StatusBadGateway,
			ErrCodeQueryFailed, "dbpool: BEGIN failed", berr)
	}

	tx := &Tx{conn: conn}
	txCtx := context.WithValue(ctx, txKey{}, tx)

	defer func() {
		if r := recover(); r != nil {
			_, _ = conn.raw.ExecContext(ctx, "ROLLBACK")
			p.breaker.RecordFailure()
			panic(r)
		}
	}()

	if err = fn(txCtx, tx); err != nil {
		_, _ = conn.raw.ExecContext(ctx, "ROLLBACK")
		p.breaker.RecordFailure()
		return err
	}

	if _, cerr := conn.raw.ExecContext(ctx, "COMMIT"); cerr != nil {
		p.breaker.RecordFailure()
		return liberr.NewKindStatus(liberr.KindResource, http.StatusBadGateway,
			ErrCodeQueryFailed, "dbpool: COMMIT failed", cerr)
	}
	p.breaker.RecordSuccess()
	return nil
}
