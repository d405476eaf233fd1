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

package binder

import (
	liberr "github/sabouaram/blaze/errors"
)

const (
	// ErrCodeConversion is raised when a path/query value fails strict
	// conversion to its declared type.
	ErrCodeConversion = liberr.MinPkgBinder + iota

	// ErrCodeBodyDecode is raised when the request body fails to
	// JSON-decode as a Body[T] parameter's T.
	ErrCodeBodyDecode

	// ErrCodeMissingContext is raised when a Context[T] parameter has no
	// stashed value of type T.
	ErrCodeMissingContext

	// ErrCodeUnresolvedService is raised when a handler parameter names a
	// service type the registry cannot resolve.
	ErrCodeUnresolvedService

	// ErrCodeUnsupportedParam is raised, at Bind time, for a parameter
	// shape that matches none of §4.6's rules.
	ErrCodeUnsupportedParam

	// ErrCodeUnsupportedReturn is raised, at Bind time, for a return shape
	// Bind doesn't know how to serialize.
	ErrCodeUnsupportedReturn
)
