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

package services

import (
	liberr "github/sabouaram/blaze/errors"
)

const (
	// ErrCodeNotRegistered is raised when Resolve/ResolveType is called for
	// a type with no matching Provide*.
	ErrCodeNotRegistered = liberr.MinPkgServices + iota

	// ErrCodeCycle is raised when a service's own construction, directly
	// or transitively, depends on itself.
	ErrCodeCycle

	// ErrCodeAfterStart is raised by a Provide* call made after
	// MarkStarted, per §4.7's registration lockout.
	ErrCodeAfterStart

	// ErrCodeBadConstructor is raised, at Provide time, for a
	// ProvideAutoWired constructor that isn't a func or returns the wrong
	// shape.
	ErrCodeBadConstructor

	// ErrCodeConstructFailed wraps an error returned by a service's own
	// factory/constructor.
	ErrCodeConstructFailed
)
