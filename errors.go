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

package blaze

import (
	"net/http"

	liberr "github/sabouaram/blaze/errors"
)

const (
	// ErrCodeAlreadyListening is raised by Listen/ListenTLS on a Server
	// that already has a reactor.Engine bound.
	ErrCodeAlreadyListening = liberr.MinPkgBlaze + iota

	// ErrCodeTLSLoad is raised by ListenTLS when the certificate/key pair
	// cannot be loaded.
	ErrCodeTLSLoad

	// ErrCodeBindFailed is raised by Route when binder.Bind rejects a
	// handler's signature.
	ErrCodeBindFailed

	// ErrCodeUnknownDB is reserved for a DB lookup under a name with no
	// registered pool. DB itself returns nil in that case and raises none.
	ErrCodeUnknownDB
)

func newAlreadyListening() liberr.KindError {
	return liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError,
		ErrCodeAlreadyListening, "blaze: server already listening")
}

func newTLSLoadErr(parent error) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError,
		ErrCodeTLSLoad, "blaze: failed to load TLS certificate", parent)
}

func newBindFailed(method, pattern string, parent error) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError,
		ErrCodeBindFailed, "blaze: failed to bind handler for "+method+" "+pattern, parent)
}
