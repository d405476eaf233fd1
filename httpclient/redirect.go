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

package httpclient

import "net/http"

// isRedirectStatus reports whether status is one Do should follow.
func isRedirectStatus(status int) bool {
	switch status {
	case http.StatusMovedPermanently, http.StatusFound, http.StatusSeeOther,
		http.StatusTemporaryRedirect, http.StatusPermanentRedirect:
		return true
	default:
		return false
	}
}

// nextHop computes the method and whether the body survives a redirect hop
// from status to a new request, given the previous hop's method.
//
// net/http's own built-in CheckRedirect only sees the request it has
// already rewritten using its own (always-rewrite-to-GET-on-301/302/303)
// policy, with no way to recover which status triggered the hop - so this
// client never lets net/http auto-follow at all (its http.Client is built
// with CheckRedirect always returning http.ErrUseLastResponse in
// client.go); Do drives the hop loop itself instead and decides the next
// method directly from the status code it just read off the wire.
//
// Default (legacy == false) follows RFC 7231 §6.4: 303 always rewrites to
// GET; 301, 302, 307 and 308 preserve the original method and body.
// With legacy == true, 301 and 302 rewrite to GET too (dropping the body),
// matching nearly every browser's and net/http's own historical behavior,
// for callers migrating off that assumption gradually.
func nextHop(status int, prevMethod string, legacy bool) (method string, keepBody bool) {
	switch status {
	case http.StatusSeeOther:
		return http.MethodGet, false
	case http.StatusMovedPermanently, http.StatusFound:
		if legacy {
			return http.MethodGet, false
		}
		return prevMethod, true
	default: // 307, 308
		return prevMethod, true
	}
}
