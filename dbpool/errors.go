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
	liberr "github/sabouaram/blaze/errors"
)

const (
	// ErrCodeBadConfig is raised by Open when a Config fails Validate.
	ErrCodeBadConfig = liberr.MinPkgDbPool + iota

	// ErrCodePoolClosed is raised by Acquire/Query/Transaction on a Pool
	// that has already been Closed.
	ErrCodePoolClosed

	// ErrCodeAcquireTimeout is raised when no pool entry became available
	// within Config.MaxWait.
	ErrCodeAcquireTimeout

	// ErrCodeBreakerOpen is raised when the circuit breaker has tripped
	// and is still within its cooldown window.
	ErrCodeBreakerOpen

	// ErrCodeNestedTransaction is raised when Transaction is called from
	// within a callback already running inside another Transaction on the
	// same Pool.
	ErrCodeNestedTransaction

	// ErrCodeNoSuchColumn is raised by Row.Get for a column name absent
	// from the result set.
	ErrCodeNoSuchColumn

	// ErrCodeNullValue is raised converting a SQL NULL cell to a
	// non-pointer Go type.
	ErrCodeNullValue

	// ErrCodeBadModel is raised by model hydration when T is not a struct
	// or a field's Go type can't hold its column's value.
	ErrCodeBadModel

	// ErrCodeQueryFailed wraps a query-semantic error returned by the
	// underlying driver (not retried; fed to the circuit breaker).
	ErrCodeQueryFailed
)
