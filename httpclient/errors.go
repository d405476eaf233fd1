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

import (
	"net/http"

	liberr "github/sabouaram/blaze/errors"
)

const (
	// ErrCodeBadConfig is raised when Options.Validate rejects a client
	// configuration (bad timeout, malformed proxy URL, ...).
	ErrCodeBadConfig = liberr.MinPkgHttpClient + iota

	// ErrCodeBadURL is raised when Endpoint/SetURL is given an unparsable
	// URL, or AddPath is called before an endpoint is set.
	ErrCodeBadURL

	// ErrCodeEncode is raised when RequestJSON fails to marshal its body.
	ErrCodeEncode

	// ErrCodeDo is raised when the underlying round trip fails (dial,
	// TLS, timeout, or the retry budget is exhausted).
	ErrCodeDo

	// ErrCodeDecode is raised when DoParse fails to read or unmarshal
	// the response body.
	ErrCodeDecode

	// ErrCodeStatus is raised when DoParse receives a status code outside
	// its caller-supplied allow-list.
	ErrCodeStatus
)

func newBadConfig(message string, parent error) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError, ErrCodeBadConfig, message, parent)
}

func newBadURL(message string, parent ...error) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindRouting, http.StatusBadRequest, ErrCodeBadURL, message, parent...)
}

func newEncodeErr(parent error) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError, ErrCodeEncode, "httpclient: failed to encode request body", parent)
}

func newDoErr(parent error) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindResource, http.StatusBadGateway, ErrCodeDo, "httpclient: request failed", parent)
}

func newDecodeErr(parent error) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError, ErrCodeDecode, "httpclient: failed to decode response body", parent)
}

func newStatusErr(status int) liberr.KindError {
	return liberr.NewKindStatus(liberr.KindDomain, status, ErrCodeStatus, "httpclient: unexpected response status")
}
