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
	"encoding/base64"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"path"
	"strings"
	"sync"

	liberr "github/sabouaram/blaze/errors"
)

// Request accumulates a single outbound call's URL, headers, query
// parameters and body, the way nabbar-golib/httpcli/model.go's *request
// builder does (Endpoint/AddPath/AddParams/AuthBearer/AuthBasic/
// ContentType/Header/Method/RequestJson/RequestReader/Do/DoParse), one
// mutex-guarded method chain per call. Build with New, not a literal.
type Request struct {
	mu     sync.Mutex
	client *Client
	method string
	url    *url.URL
	params url.Values
	header http.Header
	body   []byte
	err    liberr.Error
}

// New starts a Request against client, with no endpoint set yet - call
// Endpoint before Do.
func New(client *Client) *Request {
	return &Request{
		client: client,
		method: http.MethodGet,
		params: url.Values{},
		header: http.Header{},
	}
}

// Clone returns an independent copy of r, the way the teacher's own
// Clone lets a caller fork a base request (shared auth/headers) per call
// site without re-building it from scratch.
func (r *Request) Clone() *Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	c := &Request{
		client: r.client,
		method: r.method,
		params: url.Values{},
		header: r.header.Clone(),
		err:    r.err,
	}
	if r.url != nil {
		u := *r.url
		c.url = &u
	}
	for k, v := range r.params {
		c.params[k] = append([]string(nil), v...)
	}
	if r.body != nil {
		c.body = append([]byte(nil), r.body...)
	}
	return c
}

// Endpoint sets (or replaces) the request's base URL.
func (r *Request) Endpoint(uri string) *Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	u, err := url.Parse(uri)
	if err != nil {
		r.err = newBadURL("httpclient: invalid endpoint "+uri, err)
		return r
	}
	r.url = u
	return r
}

// AddPath appends a path segment to the endpoint, joining with exactly one
// slash regardless of leading/trailing slashes on either side - the same
// filepath.Join-based joining rule as the teacher's AddPath.
func (r *Request) AddPath(segment string) *Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.url == nil {
		r.err = newBadURL("httpclient: AddPath called before Endpoint")
		return r
	}
	r.url.Path = path.Join(r.url.Path, segment)
	return r
}

// AddParams adds a query parameter, repeatable for the same key.
func (r *Request) AddParams(key, value string) *Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.params.Add(key, value)
	return r
}

// AuthBearer sets an "Authorization: Bearer <token>" header.
func (r *Request) AuthBearer(token string) *Request {
	return r.Header("Authorization", "Bearer "+token)
}

// AuthBasic sets an "Authorization: Basic <base64(user:pass)>" header, the
// same encoding the teacher's AuthBasic uses.
func (r *Request) AuthBasic(user, pass string) *Request {
	enc := base64.StdEncoding.EncodeToString([]byte(user + ":" + pass))
	return r.Header("Authorization", "Basic "+enc)
}

// ContentType sets the Content-Type header.
func (r *Request) ContentType(contentType string) *Request {
	return r.Header("Content-Type", contentType)
}

// Header sets a header, replacing any previous value for key.
func (r *Request) Header(key, value string) *Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.header.Set(key, value)
	return r
}

// Method sets the HTTP method. Defaults to GET.
func (r *Request) Method(method string) *Request {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.method = strings.ToUpper(method)
	return r
}

// RequestJSON marshals body as the request body and sets
// Content-Type: application/json, mirroring the teacher's RequestJson.
func (r *Request) RequestJSON(body interface{}) *Request {
	p, err := json.Marshal(body)
	if err != nil {
		r.mu.Lock()
		r.err = newEncodeErr(err)
		r.mu.Unlock()
		return r
	}

	r.mu.Lock()
	r.body = p
	r.mu.Unlock()
	return r.ContentType("application/json")
}

// RequestReader reads body fully into memory so it can be replayed across
// retries and redirect hops, the same buffering retryablehttp itself would
// otherwise have to do on the caller's behalf.
func (r *Request) RequestReader(body io.Reader) *Request {
	p, err := io.ReadAll(body)
	r.mu.Lock()
	defer r.mu.Unlock()

	if err != nil {
		r.err = newEncodeErr(err)
		return r
	}
	r.body = p
	return r
}

// Error returns the first builder-time error recorded by a prior call, if
// any - mirroring the teacher's own Error() accessor.
func (r *Request) Error() liberr.Error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.err
}

func (r *Request) snapshot() (method string, u *url.URL, header http.Header, body []byte, err liberr.Error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.err != nil {
		return "", nil, nil, nil, r.err
	}
	if r.url == nil {
		return "", nil, nil, nil, newBadURL("httpclient: Do called with no endpoint set")
	}

	full := *r.url
	if len(r.params) > 0 {
		q := full.Query()
		for k, v := range r.params {
			for _, val := range v {
				q.Add(k, val)
			}
		}
		full.RawQuery = q.Encode()
	}

	return r.method, &full, r.header.Clone(), append([]byte(nil), r.body...), nil
}

// Do executes the request and returns the raw *http.Response - the caller
// owns closing its Body.
func (r *Request) Do(ctx context.Context) (*http.Response, liberr.Error) {
	method, u, header, body, err := r.snapshot()
	if err != nil {
		return nil, err
	}

	snap := &Request{method: method, url: u, header: header, body: body}
	return r.client.do(ctx, snap)
}

// DoParse executes the request, validates the response status against
// validStatus (any 2xx when empty), and json.Unmarshals the body into
// model - mirroring the teacher's DoParse.
func (r *Request) DoParse(ctx context.Context, model interface{}, validStatus ...int) liberr.Error {
	resp, err := r.Do(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = resp.Body.Close() }()

	p, rerr := io.ReadAll(resp.Body)
	if rerr != nil {
		return newDecodeErr(rerr)
	}

	if !isValidStatus(validStatus, resp.StatusCode) {
		return newStatusErr(resp.StatusCode)
	}

	if model == nil || len(p) == 0 {
		return nil
	}
	if jerr := json.Unmarshal(p, model); jerr != nil {
		return newDecodeErr(jerr)
	}
	return nil
}

func isValidStatus(allow []int, status int) bool {
	if len(allow) == 0 {
		return status >= 200 && status < 300
	}
	for _, s := range allow {
		if s == status {
			return true
		}
	}
	return false
}
