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

import "sync"

// ParamDoc is a best-effort schema stub for one bound handler parameter,
// keyed by Go kind rather than a full JSON Schema, matching the depth of
// original_source's openapi.h.
type ParamDoc struct {
	Name string `json:"name"`
	In   string `json:"in"` // "path", "query", "body", "context", "service"
	Type string `json:"type"`
}

// RouteDoc is the OpenAPI-adjacent description of one registered route,
// assembled by binder.Inspect from a handler's reflected parameter list at
// registration time.
type RouteDoc struct {
	Method  string     `json:"method"`
	Path    string     `json:"path"`
	Summary string     `json:"summary,omitempty"`
	Params  []ParamDoc `json:"params,omitempty"`
}

// docs is the router's aggregate RouteDoc set, consulted by the blaze
// façade's OpenAPI().
type docs struct {
	mu   sync.Mutex
	list []RouteDoc
}

// AddDoc registers doc in the router's aggregate document set. Callers
// (typically blaze's Server.Route, passing the RouteDoc binder.Bind
// returned) supply one RouteDoc per route at registration time.
func (r *Router) AddDoc(doc RouteDoc) {
	r.docs.mu.Lock()
	defer r.docs.mu.Unlock()
	r.docs.list = append(r.docs.list, doc)
}

// Docs returns a copy of the router's aggregate RouteDoc set, in
// registration order.
func (r *Router) Docs() []RouteDoc {
	r.docs.mu.Lock()
	defer r.docs.mu.Unlock()
	out := make([]RouteDoc, len(r.docs.list))
	copy(out, r.docs.list)
	return out
}
