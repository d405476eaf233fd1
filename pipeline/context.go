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

import (
	"context"
	"sync"

	"github/sabouaram/blaze/httpcodec"
)

// Params holds a route's captured path segments, both by name and in
// declaration order, for the binder's Path[T] lookups.
type Params struct {
	names  []string
	values []string
}

// Set records name's captured value, in declaration order.
func (p *Params) Set(name, value string) {
	p.names = append(p.names, name)
	p.values = append(p.values, value)
}

// Get returns the value captured for name, or "" if name was never captured.
func (p Params) Get(name string) string {
	for i, n := range p.names {
		if n == name {
			return p.values[i]
		}
	}
	return ""
}

// At returns the i-th captured value in declaration order, or "" if out of
// range.
func (p Params) At(i int) string {
	if i < 0 || i >= len(p.values) {
		return ""
	}
	return p.values[i]
}

// Len reports how many segments were captured.
func (p Params) Len() int {
	return len(p.values)
}

// Context carries one request through the middleware chain into its
// handler: the parsed request, the response the handler/middleware builds,
// captured path parameters, and a small type-keyed value store backing the
// binder's Context[T] parameter shape.
type Context struct {
	context.Context

	Request  *httpcodec.Request
	Response *httpcodec.Response
	Params   Params

	mu    sync.RWMutex
	store map[any]any
}

// NewContext builds a Context wrapping std, bound to req.
func NewContext(std context.Context, req *httpcodec.Request) *Context {
	return &Context{Context: std, Request: req}
}

// Set stores value under key, available to downstream middlewares/handlers
// and to the binder's Context[T] resolution (key is typically a type, per
// binder convention).
func (c *Context) Set(key, value any) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.store == nil {
		c.store = make(map[any]any)
	}
	c.store[key] = value
}

// Get returns the value stored under key, and whether it was present.
func (c *Context) Get(key any) (any, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()
	v, ok := c.store[key]
	return v, ok
}
