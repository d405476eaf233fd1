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
	"io"
	"net/url"
	"strconv"
	"strings"
)

// allowedMethods is the fixed set of methods this framework serves.
var allowedMethods = map[string]bool{
	"GET": true, "POST": true, "PUT": true, "DELETE": true,
	"PATCH": true, "OPTIONS": true, "HEAD": true,
}

// Request is one parsed HTTP/1.1 (or 1.0) request. Body is bounded to
// exactly ContentLength bytes; bytes beyond it stay buffered in the
// bufio.Reader ReadRequest was given, available to the next pipelined call.
type Request struct {
	Method     string
	Target     string // raw request-target as sent on the wire
	Path       string
	RawQuery   string
	Proto      string
	ProtoMajor int
	ProtoMinor int

	Header Header
	Host   string

	ContentLength int64
	Body          io.Reader

	// KeepAlive reports whether the connection should remain open after
	// this request's response is written, per §4.2's default-by-version
	// rule with Connection header override.
	KeepAlive bool
}

// ReadRequest parses one HTTP request off br, enforcing limits. On error it
// returns a *errors.kindErs (via the errors package's KindError) classifying
// the failure as KindProtocol with the correct HTTP status (400/413), or the
// raw I/O error (typically io.EOF or io.ErrUnexpectedEOF) when the peer
// closed or reset the connection before a complete request arrived.
func ReadRequest(br *bufio.Reader, limits Limits) (*Request, error) {
	capBytes := limits.headerCap()
	var total int64

	line, overflow, err := readLine(br, &total, capBytes)
	if overflow {
		return nil, errLineTooLong(nil)
	}
	if err != nil {
		return nil, err
	}

	method, target, proto, perr := parseRequestLine(line)
	if perr != nil {
		return nil, perr
	}
	if !allowedMethods[method] {
		return nil, errUnsupportedMethod(method)
	}
	major, minor, ok := parseHTTPVersion(proto)
	if !ok {
		return nil, errUnsupportedVersion(proto)
	}

	hdr := Header{}
	for {
		line, overflow, err := readLine(br, &total, capBytes)
		if overflow {
			return nil, errHeaderTooLong(nil)
		}
		if err != nil {
			return nil, err
		}
		if line == "" {
			break
		}
		idx := strings.IndexByte(line, ':')
		if idx < 0 {
			return nil, errMalformedHeader(line)
		}
		hdr.Add(line[:idx], strings.TrimSpace(line[idx+1:]))
	}

	if hdr.Has("Transfer-Encoding") {
		return nil, errChunkedUnsupported()
	}

	contentLength, cerr := parseContentLength(hdr, limits)
	if cerr != nil {
		return nil, cerr
	}

	u, uerr := url.ParseRequestURI(target)
	path, rawQuery := target, ""
	if uerr == nil {
		path, rawQuery = u.Path, u.RawQuery
	}

	req := &Request{
		Method:        method,
		Target:        target,
		Path:          path,
		RawQuery:      rawQuery,
		Proto:         proto,
		ProtoMajor:    major,
		ProtoMinor:    minor,
		Header:        hdr,
		Host:          hdr.Get("Host"),
		ContentLength: contentLength,
		Body:          io.LimitReader(br, contentLength),
		KeepAlive:     keepAlive(major, minor, hdr.Get("Connection")),
	}
	return req, nil
}

// Discard reads and throws away any unread bytes of req.Body, so the next
// pipelined request's bytes are positioned correctly in the shared reader.
func (r *Request) Discard() error {
	_, err := io.Copy(io.Discard, r.Body)
	return err
}

func parseRequestLine(line string) (method, target, proto string, err error) {
	parts := strings.SplitN(line, " ", 3)
	if len(parts) != 3 {
		return "", "", "", errMalformedLine(nil)
	}
	return parts[0], parts[1], parts[2], nil
}

func parseHTTPVersion(proto string) (major, minor int, ok bool) {
	switch proto {
	case "HTTP/1.1":
		return 1, 1, true
	case "HTTP/1.0":
		return 1, 0, true
	default:
		return 0, 0, false
	}
}

func parseContentLength(hdr Header, limits Limits) (int64, error) {
	v := hdr.Get("Content-Length")
	if v == "" {
		return 0, nil
	}
	n, err := strconv.ParseInt(v, 10, 64)
	if err != nil || n < 0 {
		return 0, errMalformedContentLength(v)
	}
	if n > limits.bodyCap() {
		return 0, errBodyTooLarge(nil)
	}
	return n, nil
}

// keepAlive implements §4.2's default-by-version rule: HTTP/1.1 defaults to
// keep-alive unless Connection: close; HTTP/1.0 defaults to close unless
// Connection: keep-alive.
func keepAlive(major, minor int, connection string) bool {
	c := strings.ToLower(strings.TrimSpace(connection))
	if major == 1 && minor == 1 {
		return c != "close"
	}
	return c == "keep-alive"
}

// readLine reads one CRLF- or LF-terminated line off br, stripped of its
// terminator, tracking cumulative bytes consumed in *total against capBytes.
// overflow is true once *total exceeds capBytes, taking priority over any
// I/O error on the same read (a too-long line that also hits EOF is still
// reported as too-long).
func readLine(br *bufio.Reader, total *int64, capBytes int64) (line string, overflow bool, err error) {
	raw, rerr := br.ReadString('\n')
	*total += int64(len(raw))
	if *total > capBytes {
		return "", true, nil
	}
	if rerr != nil {
		return "", false, rerr
	}
	return strings.TrimRight(raw, "\r\n"), false, nil
}
