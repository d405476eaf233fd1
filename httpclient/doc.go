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

// Package httpclient is an outbound HTTP client builder: a mutex-guarded
// Request builder accumulates a URL, headers, query params, and a body the
// way a caller assembles a request piece by piece, then Do/DoParse executes
// it over a Client wrapping hashicorp/go-retryablehttp for transient-failure
// retries with exponential backoff.
//
// The transport's TLS, proxy and dialer behavior, and the Request builder's
// method chain (Endpoint/AddPath/AddParams/AuthBearer/AuthBasic/ContentType/
// RequestJSON/RequestReader/Do/DoParse) are grounded on
// nabbar-golib/httpcli/{model,options,network,http}.go. The redirect policy
// in redirect.go departs deliberately from that model: RFC 7231 compliant
// by default (303 rewrites to GET; 301/302 preserve the original method),
// with Options.LegacyRedirect reproducing the historical rewrite-to-GET
// behavior for callers that still depend on it.
package httpclient
