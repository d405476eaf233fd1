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

import (
	"context"
	"net/http"
	"sync"

	liberr "github/sabouaram/blaze/errors"
	"github/sabouaram/blaze/httpcodec"
	liblog "github/sabouaram/blaze/logger"
	"github/sabouaram/blaze/pipeline"
)

// MatchResult reports how Match resolved a (method, path) lookup.
type MatchResult int

const (
	// Matched means a route served both the path and the method.
	Matched MatchResult = iota
	// NotFound means no registered route's pattern matched the path.
	NotFound
	// MethodNotAllowed means a route's pattern matched the path, but no
	// route at that path serves the request method.
	MethodNotAllowed
)

// Router holds the route table in insertion order and matches requests
// against it with a linear, per-segment scan — no radix tree, no
// precompiled regexp. First matching route wins.
type Router struct {
	mu     sync.RWMutex
	routes []*route
	root   *Group
	log    liblog.Logger
	docs   docs
}

// New builds an empty Router. log may be nil; it is used only for the
// default Recovery middleware's panic logging.
func New(log liblog.Logger) *Router {
	r := &Router{log: log}
	r.root = &Group{router: r, prefix: "", mws: []pipeline.Middleware{pipeline.Recovery(log)}}
	return r
}

// Use appends mw to the router's top-level group, affecting routes
// registered on it (via Register) after the call.
func (r *Router) Use(mw pipeline.Middleware) *Router {
	r.root.Use(mw)
	return r
}

// Group returns a group rooted at prefix, inheriting the router's top-level
// middleware chain as it stands now.
func (r *Router) Group(prefix string) *Group {
	return r.root.Group(prefix)
}

// Register adds a route on the router's top-level group.
func (r *Router) Register(method, pattern string, handler pipeline.Handler) {
	r.root.Register(method, pattern, handler)
}

// RegisterInGroup adds a route under prefix and returns the Group it used.
// Each call builds a fresh Group for prefix from the router's top-level
// middleware chain as it stands now; groups are not cached, so middleware
// added with Use on a returned Group does not carry over to a later call.
func (r *Router) RegisterInGroup(prefix, method, pattern string, handler pipeline.Handler) *Group {
	g := r.Group(prefix)
	g.Register(method, pattern, handler)
	return g
}

// RegisterMergeInGroup behaves like RegisterInGroup, but replaces an
// existing route with the same method and full path instead of appending a
// duplicate that would shadow it.
func (r *Router) RegisterMergeInGroup(prefix, method, pattern string, handler pipeline.Handler) *Group {
	g := r.Group(prefix)
	g.MergeRegister(method, pattern, handler)
	return g
}

func (r *Router) addRoute(method, pattern string, handler pipeline.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.routes = append(r.routes, &route{
		method:   method,
		pattern:  pattern,
		segments: compileSegments(pattern),
		handler:  handler,
	})
}

func (r *Router) mergeRoute(method, pattern string, handler pipeline.Handler) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, rt := range r.routes {
		if rt.method == method && rt.pattern == pattern {
			rt.handler = handler
			return
		}
	}
	r.routes = append(r.routes, &route{
		method:   method,
		pattern:  pattern,
		segments: compileSegments(pattern),
		handler:  handler,
	})
}

// Match finds the first route whose pattern matches path. If that route's
// method differs from method, the scan continues looking for a route that
// matches both; if at least one route matched the path but none matched the
// method, Match reports MethodNotAllowed instead of NotFound.
func (r *Router) Match(method, path string) (pipeline.Handler, pipeline.Params, MatchResult) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	reqSegs := splitPath(path)
	pathMatched := false

	for _, rt := range r.routes {
		if len(rt.segments) != len(reqSegs) {
			continue
		}
		params, ok := matchSegments(rt.segments, reqSegs)
		if !ok {
			continue
		}
		pathMatched = true
		if rt.method == method {
			return rt.handler, params, Matched
		}
	}

	if pathMatched {
		return nil, pipeline.Params{}, MethodNotAllowed
	}
	return nil, pipeline.Params{}, NotFound
}

// Dispatch resolves req against the route table and runs the matched
// handler, or maps a 404/405 straight to a Response. Its signature matches
// session.Handler, so a Router can be wired in as one directly:
// session.New(conn, router.Dispatch, cfg, log).
func (r *Router) Dispatch(ctx context.Context, req *httpcodec.Request) *httpcodec.Response {
	handler, params, result := r.Match(req.Method, req.Path)

	switch result {
	case NotFound:
		return pipeline.MapError(liberr.NewKindStatus(liberr.KindRouting, http.StatusNotFound,
			ErrCodeNotFound, "no route matched "+req.Method+" "+req.Path))
	case MethodNotAllowed:
		return pipeline.MapError(liberr.NewKindStatus(liberr.KindRouting, http.StatusMethodNotAllowed,
			ErrCodeMethodNotAllowed, "method not allowed for "+req.Path))
	}

	c := pipeline.NewContext(ctx, req)
	c.Params = params

	if err := handler(c); err != nil {
		return pipeline.MapError(err)
	}
	if c.Response == nil {
		return pipeline.MapError(liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
			ErrCodeNoResponse, "handler produced no response"))
	}
	return c.Response
}
