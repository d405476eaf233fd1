/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

package errors

import "net/http"

// Kind classifies an Error along the pipeline's error-propagation policy:
// a handler or middleware that fails communicates one of these eight kinds,
// and the top-level recovery middleware maps it to an HTTP status and a
// Return envelope without ever inspecting package-specific error codes.
type Kind uint8

const (
	// KindProtocol is a malformed request at the wire level (bad request
	// line, oversized header, invalid chunked framing).
	KindProtocol Kind = iota + 1

	// KindRouting is "no route matched" or "route matched, method did not".
	KindRouting

	// KindBinding is a parameter/body conversion failure in the binder.
	KindBinding

	// KindAuth is an authentication or authorization failure raised by a
	// handler or middleware.
	KindAuth

	// KindDomain is an application-level rejection (business rule failed)
	// raised deliberately by handler code.
	KindDomain

	// KindResource is exhaustion or unavailability of a pooled resource
	// (DB pool exhausted, circuit breaker open).
	KindResource

	// KindInternal is an unexpected failure in framework code itself.
	KindInternal

	// KindFatal is a failure severe enough that the session or connection
	// cannot continue (panic recovered mid-handler, write-side I/O error).
	KindFatal
)

// defaultStatus is this Kind's default HTTP status code, used when a
// KindError isn't given an explicit override.
func (k Kind) defaultStatus() int {
	switch k {
	case KindProtocol:
		return http.StatusBadRequest
	case KindRouting:
		return http.StatusNotFound
	case KindBinding:
		return http.StatusUnprocessableEntity
	case KindAuth:
		return http.StatusUnauthorized
	case KindDomain:
		return http.StatusConflict
	case KindResource:
		return http.StatusServiceUnavailable
	case KindInternal:
		return http.StatusInternalServerError
	case KindFatal:
		return http.StatusInternalServerError
	default:
		return http.StatusInternalServerError
	}
}

func (k Kind) String() string {
	switch k {
	case KindProtocol:
		return "protocol"
	case KindRouting:
		return "routing"
	case KindBinding:
		return "binding"
	case KindAuth:
		return "auth"
	case KindDomain:
		return "domain"
	case KindResource:
		return "resource"
	case KindInternal:
		return "internal"
	case KindFatal:
		return "fatal"
	default:
		return "unknown"
	}
}

// KindError pairs a coded Error with the Kind that determines how the
// pipeline's recovery middleware reports it to the client.
type KindError interface {
	Error

	// Kind returns the error-propagation kind carried by this error.
	Kind() Kind

	// Status returns the HTTP status this error maps to: the kind's
	// default unless overridden at construction.
	Status() int
}

type kindErs struct {
	*ers
	k Kind
	s int
}

// NewKind builds a KindError of the given kind, code and message, with
// the kind's default HTTP status. Parents are attached the same way New does.
func NewKind(kind Kind, code uint16, message string, parent ...error) KindError {
	return &kindErs{
		ers: New(code, message, parent...).(*ers),
		k:   kind,
		s:   kind.defaultStatus(),
	}
}

// NewKindStatus is NewKind with an explicit status override, for the rare
// handler that needs a non-default status for an otherwise-ordinary kind
// (e.g. a KindDomain rejection reported as 422 instead of 409).
func NewKindStatus(kind Kind, status int, code uint16, message string, parent ...error) KindError {
	return &kindErs{
		ers: New(code, message, parent...).(*ers),
		k:   kind,
		s:   status,
	}
}

func (k *kindErs) Kind() Kind {
	return k.k
}

func (k *kindErs) Status() int {
	return k.s
}

// AsKind reports whether err (or one of its parents in the case of a plain
// Error) carries a Kind, returning it if so.
func AsKind(err error) (KindError, bool) {
	if err == nil {
		return nil, false
	}

	if ke, ok := err.(KindError); ok {
		return ke, true
	}

	if ce, ok := err.(Error); ok {
		for _, p := range ce.Unwrap() {
			if ke, ok := AsKind(p); ok {
				return ke, true
			}
		}
	}

	return nil, false
}
