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

package httpcodec

import "strings"

// Header holds request/response header fields keyed by their lower-cased
// name, preserving duplicate values in insertion order. Unlike net/http's
// textproto.MIMEHeader (title-cased canonical form), this module's wire
// rules canonicalize to lower-case for lookup.
type Header map[string][]string

func canon(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// Add appends value to name's value list.
func (h Header) Add(name, value string) {
	k := canon(name)
	h[k] = append(h[k], value)
}

// Set replaces name's value list with a single value.
func (h Header) Set(name, value string) {
	h[canon(name)] = []string{value}
}

// Get returns the first value for name, or "" if absent.
func (h Header) Get(name string) string {
	v := h[canon(name)]
	if len(v) == 0 {
		return ""
	}
	return v[0]
}

// Values returns every value stored for name.
func (h Header) Values(name string) []string {
	return h[canon(name)]
}

// Del removes every value stored for name.
func (h Header) Del(name string) {
	delete(h, canon(name))
}

// Has reports whether name has at least one value.
func (h Header) Has(name string) bool {
	return len(h[canon(name)]) > 0
}

// Clone returns a deep copy of h.
func (h Header) Clone() Header {
	if h == nil {
		return nil
	}
	out := make(Header, len(h))
	for k, v := range h {
		cp := make([]string, len(v))
		copy(cp, v)
		out[k] = cp
	}
	return out
}
