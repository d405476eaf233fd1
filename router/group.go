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

package router

import "github/sabouaram/blaze/pipeline"

// Group is a path prefix plus an ordered list of middlewares. Use appends to
// that list; Register snapshots the list as it stands at call time, so a
// middleware only wraps routes registered after it within the same group —
// routes registered earlier keep the chain they were given.
type Group struct {
	router *Router
	prefix string
	mws    []pipeline.Middleware
}

// Use appends mw to the group's middleware chain. It affects only routes
// registered on this group after the call.
func (g *Group) Use(mw pipeline.Middleware) *Group {
	g.mws = append(g.mws, mw)
	return g
}

// Register adds a route at prefix+pattern, wrapped with a snapshot of the
// group's current middleware chain composed around handler.
func (g *Group) Register(method, pattern string, handler pipeline.Handler) {
	g.router.addRoute(method, joinPath(g.prefix, pattern), g.compose(handler))
}

// MergeRegister behaves like Register, but replaces an existing route with
// the same method and full pattern instead of appending a duplicate.
func (g *Group) MergeRegister(method, pattern string, handler pipeline.Handler) {
	g.router.mergeRoute(method, joinPath(g.prefix, pattern), g.compose(handler))
}

// Group returns a child group whose prefix is this group's prefix joined
// with subPrefix, inheriting a snapshot of this group's current middleware
// chain as its own starting chain.
func (g *Group) Group(subPrefix string) *Group {
	inherited := make([]pipeline.Middleware, len(g.mws))
	copy(inherited, g.mws)
	return &Group{router: g.router, prefix: joinPath(g.prefix, subPrefix), mws: inherited}
}

func (g *Group) compose(handler pipeline.Handler) pipeline.Handler {
	snapshot := make([]pipeline.Middleware, len(g.mws))
	copy(snapshot, g.mws)
	return pipeline.Compose(snapshot, handler)
}
