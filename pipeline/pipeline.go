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

package pipeline

// Next resumes the chain at the following middleware (or the terminal
// Handler, for the last middleware). Its return value is whatever that
// downstream link returned.
type Next func() error

// Middleware wraps the chain at one position. Code before calling next runs
// on the way in; code after next returns runs on the way out, in reverse
// registration order, realizing the onion model. A middleware that returns
// an error without calling next short-circuits everything downstream.
type Middleware func(c *Context, next Next) error

// Handler is the terminal link: it inspects c.Request/c.Params and sets
// c.Response (or returns an error, mapped to a response via MapError).
type Handler func(c *Context) error

// Compose builds one Handler from an ordered middleware list wrapping
// final. Calling the result runs mws[0]'s before-code, which calls next to
// reach mws[1], ..., which calls next to reach final; each middleware's
// after-code then runs as the call stack unwinds back out through mws[0].
func Compose(mws []Middleware, final Handler) Handler {
	h := final
	for i := len(mws) - 1; i >= 0; i-- {
		mw := mws[i]
		next := h
		h = func(c *Context) error {
			return mw(c, func() error { return next(c) })
		}
	}
	return h
}
