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

// Package binder turns a handler func of (almost) any shape into a
// pipeline.Handler by reflecting over its parameter list once, at route
// registration time, and building one closure per parameter that knows how
// to pull that argument's value out of a *pipeline.Context at request time.
//
// Supported parameter shapes, matching §4.6's precedence table: *httpcodec.
// Request, *httpcodec.Response, *pipeline.Context, Path[T] (k-th captured
// path segment, positional), Body[T] (JSON-decoded request body), Query[T]
// (query string projected onto T's fields), Context[T] (a value stashed
// earlier in the pipeline under T's type), and a pointer to a type
// resolvable from the service registry. The wrapper types themselves carry
// no logic beyond holding the bound value — Bind is what does the work,
// the Go generics analogue of the original_source reflection.h template
// wrappers.
package binder
