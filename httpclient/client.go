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
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"

	"github.com/hashicorp/go-retryablehttp"

	liberr "github/sabouaram/blaze/errors"
	liblog "github/sabouaram/blaze/logger"
)

var errTooManyRedirects = errors.New("httpclient: stopped after too many redirects")

// Client executes Request values built by New/Clone, retrying transient
// failures (connection reset, 5xx, timeout) via hashicorp/go-retryablehttp
// and following redirects itself per the policy in redirect.go.
//
// Grounded on nabbar-golib/httpcli/model.go's request.cli field (a plain
// FctHttpClient-supplied *http.Client) - here promoted to its own type
// since this module wires retryablehttp for the retry concern the teacher
// left to its caller.
type Client struct {
	opts Options
	http *retryablehttp.Client
}

// NewClient builds a Client from opts. Zero MaxRedirects, RetryWaitMin and
// RetryWaitMax take DefaultOptions' values; a zero Timeout means no timeout
// and a zero RetryMax means no retries.
func NewClient(opts Options) (*Client, liberr.Error) {
	opts = opts.withDefaults()
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	tr, terr := buildTransport(opts)
	if terr != nil {
		if ke, ok := terr.(liberr.Error); ok {
			return nil, ke
		}
		return nil, newBadConfig("httpclient: failed to build transport", terr)
	}

	std := &http.Client{
		Transport: tr,
		Timeout:   opts.Timeout,
		// Do drives redirects by hand (redirect.go's nextHop), since
		// net/http's own CheckRedirect hook has already rewritten the
		// method by the time it's called and gives no way back to the
		// triggering status code.
		CheckRedirect: func(_ *http.Request, _ []*http.Request) error {
			return http.ErrUseLastResponse
		},
	}

	rc := retryablehttp.NewClient()
	rc.HTTPClient = std
	rc.RetryMax = opts.RetryMax
	rc.RetryWaitMin = opts.RetryWaitMin
	rc.RetryWaitMax = opts.RetryWaitMax
	rc.Logger = nil

	return &Client{opts: opts, http: rc}, nil
}

// SetLogger wires a leveled logger into the client's retry loop, the way
// the teacher threads a liblog.Logger through its own httpcli/httpserver
// components. A nil logger silences retryablehttp's own default logging.
func (c *Client) SetLogger(log liblog.Logger) {
	if log == nil {
		c.http.Logger = nil
		return
	}
	c.http.Logger = retryableLogAdapter{log: log}
}

type retryableLogAdapter struct {
	log liblog.Logger
}

func (a retryableLogAdapter) Printf(format string, v ...interface{}) {
	a.log.Warning(fmt.Sprintf(format, v...), nil)
}

// do sends req, following up to opts.MaxRedirects hops by hand, rewriting
// the method/body per redirect.go's nextHop at each hop, and letting
// retryablehttp retry transient failures within each individual hop.
func (c *Client) do(ctx context.Context, req *Request) (*http.Response, liberr.Error) {
	method := req.method
	body := req.body
	base := req.url
	header := req.header.Clone()

	for hop := 0; ; hop++ {
		rreq, err := retryablehttp.NewRequestWithContext(ctx, method, base.String(), body)
		if err != nil {
			return nil, newDoErr(err)
		}
		rreq.Header = header.Clone()

		resp, err := c.http.Do(rreq)
		if err != nil {
			return nil, newDoErr(err)
		}

		if !isRedirectStatus(resp.StatusCode) {
			return resp, nil
		}

		loc := resp.Header.Get("Location")
		_ = resp.Body.Close()
		if loc == "" {
			return resp, nil
		}
		if hop >= c.opts.MaxRedirects {
			return nil, newDoErr(errTooManyRedirects)
		}

		ref, err := url.Parse(loc)
		if err != nil {
			return nil, newDoErr(err)
		}
		base = base.ResolveReference(ref)

		nextMethod, keepBody := nextHop(resp.StatusCode, method, c.opts.LegacyRedirect)
		method = nextMethod
		if !keepBody {
			body = nil
			header.Del("Content-Type")
		}
	}
}
