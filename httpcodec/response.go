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

import (
	"bufio"
	"fmt"
	"io"
	"net/http"
	"os"
	"strconv"
)

// Response is one outgoing HTTP response. Body may be nil (no body), a
// *os.File (eligible for the zero-copy fast path), or any other io.Reader;
// BodySize must report its exact length since this codec never emits
// chunked responses.
type Response struct {
	StatusCode int
	Header     Header
	Body       io.Reader
	BodySize   int64
}

// excludedResponseHeader lists header names WriteResponse injects itself
// and so strips from the caller-supplied Header before writing, the same
// bookkeeping badu-http's respExcludeHeader map does for its Write path.
var excludedResponseHeader = map[string]bool{
	"content-length": true,
	"connection":     true,
}

// WriteResponse serializes resp to w as status line, headers (duplicates
// preserved), an injected Content-Length matching BodySize, an injected
// Connection reflecting keepAlive, CRLF CRLF, then the body. When Body is
// an *os.File, io.Copy takes the runtime's zero-copy fast path (ReadFrom on
// the destination, e.g. net.TCPConn, when available) automatically; for
// any other Body it falls back to a buffered copy.
func WriteResponse(w io.Writer, resp *Response, keepAlive bool) error {
	bw := bufio.NewWriter(w)

	status := resp.StatusCode
	if status == 0 {
		status = http.StatusOK
	}
	if _, err := fmt.Fprintf(bw, "HTTP/1.1 %d %s\r\n", status, http.StatusText(status)); err != nil {
		return err
	}

	for name, values := range resp.Header {
		if excludedResponseHeader[name] {
			continue
		}
		for _, v := range values {
			if _, err := fmt.Fprintf(bw, "%s: %s\r\n", name, v); err != nil {
				return err
			}
		}
	}

	if _, err := fmt.Fprintf(bw, "Content-Length: %s\r\n", strconv.FormatInt(resp.BodySize, 10)); err != nil {
		return err
	}
	conn := "close"
	if keepAlive {
		conn = "keep-alive"
	}
	if _, err := fmt.Fprintf(bw, "Connection: %s\r\n\r\n", conn); err != nil {
		return err
	}

	if err := bw.Flush(); err != nil {
		return err
	}

	// Body is copied straight to w, bypassing bw, so that a w implementing
	// io.ReaderFrom (e.g. net.TCPConn) gets io.Copy's zero-copy fast path;
	// routing it through the buffered writer above would hide that.
	if resp.Body != nil && resp.BodySize != 0 {
		if _, err := io.Copy(w, resp.Body); err != nil {
			return err
		}
	}

	return nil
}

// FileBody builds a Response body from an *os.File, stat-ing it for
// BodySize so the caller doesn't have to.
func FileBody(f *os.File) (io.Reader, int64, error) {
	fi, err := f.Stat()
	if err != nil {
		return nil, 0, err
	}
	return f, fi.Size(), nil
}
