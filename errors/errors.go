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

// Package errors is the coded error type every package in this module raises
// through New: a message, a package-scoped numeric code (see modules.go for
// the code ranges) and an optional chain of parent errors. kind.go builds
// Kind/KindError on top of it so the pipeline's recovery middleware can map
// any error back to an HTTP status without inspecting package-specific codes.
package errors

import "fmt"

// Error is the value every New call returns: the standard error interface
// plus code inspection and standard-library Unwrap support.
type Error interface {
	error

	// IsCode reports whether this error's own code equals code. It does
	// not look at parent errors.
	IsCode(code CodeError) bool
	// HasCode reports whether this error or any of its parents carries code.
	HasCode(code CodeError) bool
	// GetCode returns this error's own code.
	GetCode() CodeError
	// Unwrap exposes the parent chain to errors.Is/errors.As.
	Unwrap() []error
}

type ers struct {
	code    uint16
	message string
	parent  []error
}

func (e *ers) Error() string {
	if len(e.parent) == 0 {
		return e.message
	}
	return fmt.Sprintf("%s: %s", e.message, e.parent[0].Error())
}

func (e *ers) IsCode(code CodeError) bool {
	return e.code == uint16(code)
}

func (e *ers) HasCode(code CodeError) bool {
	if e.IsCode(code) {
		return true
	}
	for _, p := range e.parent {
		if ce, ok := p.(Error); ok && ce.HasCode(code) {
			return true
		}
	}
	return false
}

func (e *ers) GetCode() CodeError {
	return CodeError(e.code)
}

func (e *ers) Unwrap() []error {
	return e.parent
}

// New builds an Error with the given code, message and optional parent
// errors. Nil parents are dropped.
func New(code uint16, message string, parent ...error) Error {
	p := make([]error, 0, len(parent))
	for _, pe := range parent {
		if pe != nil {
			p = append(p, pe)
		}
	}

	return &ers{
		code:    code,
		message: message,
		parent:  p,
	}
}
