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

// Limits bounds what ReadRequest accepts before it gives up on a connection.
type Limits struct {
	// MaxHeaderBytes caps the request-line + header section, CRLF CRLF
	// included. Exceeding it before the terminator is seen is a 400.
	MaxHeaderBytes int64

	// MaxBodyBytes caps Content-Length. A larger declared length is a 413.
	MaxBodyBytes int64
}

// DefaultLimits mirrors the framework defaults: an 8 KiB request line and
// header section, a 100 MiB body.
func DefaultLimits() Limits {
	return Limits{
		MaxHeaderBytes: 8192,
		MaxBodyBytes:   100 << 20,
	}
}

func (l Limits) headerCap() int64 {
	if l.MaxHeaderBytes <= 0 {
		return DefaultLimits().MaxHeaderBytes
	}
	return l.MaxHeaderBytes
}

func (l Limits) bodyCap() int64 {
	if l.MaxBodyBytes <= 0 {
		return DefaultLimits().MaxBodyBytes
	}
	return l.MaxBodyBytes
}
