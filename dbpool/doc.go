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

// Package dbpool is a fixed-size, async-friendly connection pool in front
// of database/sql: a FIFO waiter queue bounds how many callers can hold a
// connection at once, a process-wide circuit breaker trips after repeated
// failures, and a transaction scope pins one connection for a callback's
// duration.
//
// gorm.io/driver/{postgres,mysql,sqlite} supply the Dialector a caller can
// hand to gorm.Open if it wants the ORM surface (Dialector in driver.go);
// the pool itself bypasses gorm's own connection pool entirely, leasing and
// returning *sql.Conn handles by hand, so "a pool entry is either available
// or leased to exactly one goroutine" can be enforced exactly rather than
// left to database/sql's own (looser) pool bookkeeping.
//
// Grounded on original_source/framework/include/blaze/pg_pool.h and
// mysql_pool.h (acquire/release over a fixed connection slice, a FIFO
// waiter queue of suspended callers, a process-wide CircuitBreaker member)
// and db_result.h/model.h (row/cell-by-index-or-name access, a
// reflection-driven row-to-struct hydration helper).
package dbpool
