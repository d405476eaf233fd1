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
	"net/http"

	liberr "github/sabouaram/blaze/errors"
)

const (
	// ErrCodeLineTooLong is raised when the request-line is not found
	// within the header-section byte budget.
	ErrCodeLineTooLong = liberr.MinPkgHttpCodec + iota

	// ErrCodeHeaderTooLong is raised when the header section does not
	// terminate in CRLF CRLF before the byte budget is exhausted.
	ErrCodeHeaderTooLong

	// ErrCodeMalformedLine is raised when the request-line cannot be
	// split into method/target/version.
	ErrCodeMalformedLine

	// ErrCodeUnsupportedMethod is raised for any method outside the
	// fixed set this framework serves.
	ErrCodeUnsupportedMethod

	// ErrCodeUnsupportedVersion is raised for any HTTP version other
	// than 1.0 or 1.1.
	ErrCodeUnsupportedVersion

	// ErrCodeMalformedHeader is raised when a header line has no colon.
	ErrCodeMalformedHeader

	// ErrCodeMalformedContentLength is raised when Content-Length is not
	// a valid non-negative integer.
	ErrCodeMalformedContentLength

	// ErrCodeBodyTooLarge is raised when Content-Length exceeds the
	// configured body cap.
	ErrCodeBodyTooLarge

	// ErrCodeChunkedUnsupported is raised when Transfer-Encoding is
	// present on a request.
	ErrCodeChunkedUnsupported

	// ErrCodeHeaderTimeout is the code of ErrHeaderTimeout: the header
	// section did not complete before the read deadline.
	ErrCodeHeaderTimeout
)

func errLineTooLong(parent error) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindProtocol, http.StatusBadRequest, ErrCodeLineTooLong, "request line exceeds header byte budget", parent)
}

func errHeaderTooLong(parent error) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindProtocol, http.StatusBadRequest, ErrCodeHeaderTooLong, "header section exceeds byte budget", parent)
}

func errMalformedLine(parent error) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindProtocol, http.StatusBadRequest, ErrCodeMalformedLine, "malformed request line", parent)
}

func errUnsupportedMethod(method string) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindProtocol, http.StatusBadRequest, ErrCodeUnsupportedMethod, "unsupported method: "+method)
}

func errUnsupportedVersion(proto string) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindProtocol, http.StatusBadRequest, ErrCodeUnsupportedVersion, "unsupported HTTP version: "+proto)
}

func errMalformedHeader(line string) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindProtocol, http.StatusBadRequest, ErrCodeMalformedHeader, "malformed header line: "+line)
}

func errMalformedContentLength(value string) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindProtocol, http.StatusBadRequest, ErrCodeMalformedContentLength, "malformed Content-Length: "+value)
}

func errBodyTooLarge(parent error) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindProtocol, http.StatusRequestEntityTooLarge, ErrCodeBodyTooLarge, "content length exceeds configured maximum", parent)
}

func errChunkedUnsupported() liberr.KindError {
	return liberr.NewKindStatus(liberr.KindProtocol, http.StatusBadRequest, ErrCodeChunkedUnsupported, "chunked transfer encoding is not supported")
}

// ErrHeaderTimeout is the 408 KindError for a header section that did not
// reach its CRLF CRLF terminator before the read deadline. ReadRequest does
// not return it; the session layer detects the deadline's net.Error timeout
// itself and writes its own 408 response.
var ErrHeaderTimeout = liberr.NewKindStatus(liberr.KindProtocol, http.StatusRequestTimeout, ErrCodeHeaderTimeout, "no complete header section before idle timeout")
