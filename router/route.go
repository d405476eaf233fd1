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
	"net/url"
	"strings"

	"github/sabouaram/blaze/pipeline"
)

// segment is one path element of a compiled route pattern: either a literal
// to compare verbatim, or a named capture (":id") that matches any single
// request segment.
type segment struct {
	literal string
	name    string
	param   bool
}

// route is one registered endpoint: a method, its compiled pattern, and the
// fully composed handler (group middleware already baked in via Compose).
type route struct {
	method   string
	pattern  string
	segments []segment
	handler  pipeline.Handler
}

// compileSegments splits a route pattern into literal/capture segments.
// A leading ":" marks a capture; everything else is compared literally.
func compileSegments(pattern string) []segment {
	parts := splitPath(pattern)
	segs := make([]segment, len(parts))
	for i, p := range parts {
		if strings.HasPrefix(p, ":") && len(p) > 1 {
			segs[i] = segment{name: p[1:], param: true}
		} else {
			segs[i] = segment{literal: p}
		}
	}
	return segs
}

// splitPath strips a trailing slash (except for the root "/") and splits
// the remainder on "/", returning zero segments for the root path.
func splitPath(path string) []string {
	if path != "/" {
		path = strings.TrimSuffix(path, "/")
	}
	trimmed := strings.TrimPrefix(path, "/")
	if trimmed == "" {
		return nil
	}
	return strings.Split(trimmed, "/")
}

// matchSegments compares a compiled route's segments against a request's
// split path segments, one-for-one. It assumes len(segs) == len(reqSegs).
func matchSegments(segs []segment, reqSegs []string) (pipeline.Params, bool) {
	var params pipeline.Params
	for i, s := range segs {
		if s.param {
			decoded, err := url.PathUnescape(reqSegs[i])
			if err != nil {
				decoded = reqSegs[i]
			}
			params.Set(s.name, decoded)
			continue
		}
		if s.literal != reqSegs[i] {
			return pipeline.Params{}, false
		}
	}
	return params, true
}

// joinPath concatenates a group prefix and a route pattern into a single
// path, collapsing the joint so "/api" + "/users" and "/api/" + "users"
// both produce "/api/users".
func joinPath(prefix, pattern string) string {
	prefix = strings.TrimSuffix(prefix, "/")
	if !strings.HasPrefix(pattern, "/") {
		pattern = "/" + pattern
	}
	joined := prefix + pattern
	if joined == "" {
		return "/"
	}
	return joined
}
