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

// Package httpcodec implements an incremental HTTP/1.1 request parser and a
// response serializer over a buffered connection. It enforces the
// request-line/header-section size limits and body-framing rules a session
// needs before it can hand a request to the router, and writes responses
// with an injected Content-Length/Connection pair plus a zero-copy fast path
// for file bodies.
//
// Grounded on badu-http's conn_reader.go (background/limited reads off a
// shared net.Conn) and types_request.go/types_response.go/utils_transfer.go
// (field shape, Transfer-Encoding/Content-Length handling), reworked around
// a plain bufio.Reader instead of that package's goroutine-driven
// background-read machinery, since sessions here are handled one at a time
// per connection rather than overlapped with an io.ReadCloser Body the
// handler can outlive.
package httpcodec
