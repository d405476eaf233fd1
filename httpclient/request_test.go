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
	"testing"

	liberr "github/sabouaram/blaze/errors"
)

func TestRequestAddPathJoinsSegments(t *testing.T) {
	r := New(nil).Endpoint("https://example.com/api/")
	r.AddPath("/users/").AddPath("42")

	if r.Error() != nil {
		t.Fatalf("unexpected builder error: %v", r.Error())
	}
	if got, want := r.url.String(), "https://example.com/api/users/42"; got != want {
		t.Fatalf("url = %q, want %q", got, want)
	}
}

func TestRequestAddPathBeforeEndpointFails(t *testing.T) {
	r := New(nil).AddPath("users")
	if r.Error() == nil {
		t.Fatalf("expected AddPath before Endpoint to record an error")
	}
}

func TestRequestEndpointRejectsInvalidURL(t *testing.T) {
	r := New(nil).Endpoint("://bad")
	err := r.Error()
	if err == nil {
		t.Fatalf("expected Endpoint to reject a malformed URL")
	}
	ke, ok := liberr.AsKind(err)
	if !ok || !ke.IsCode(liberr.CodeError(ErrCodeBadURL)) {
		t.Fatalf("expected an ErrCodeBadURL KindError, got %v", err)
	}
}

func TestRequestJSONSetsBodyAndContentType(t *testing.T) {
	r := New(nil).Endpoint("https://example.com")
	r.RequestJSON(map[string]int{"a": 1})

	if r.Error() != nil {
		t.Fatalf("unexpected builder error: %v", r.Error())
	}
	if got, want := string(r.body), `{"a":1}`; got != want {
		t.Fatalf("body = %q, want %q", got, want)
	}
	if got := r.header.Get("Content-Type"); got != "application/json" {
		t.Fatalf("Content-Type = %q, want application/json", got)
	}
}

func TestRequestAddParamsAppendsRepeatableQuery(t *testing.T) {
	r := New(nil).Endpoint("https://example.com/search")
	r.AddParams("tag", "go").AddParams("tag", "http")

	method, u, _, _, err := r.snapshot()
	if err != nil {
		t.Fatalf("snapshot: %v", err)
	}
	_ = method
	if got := u.Query()["tag"]; len(got) != 2 || got[0] != "go" || got[1] != "http" {
		t.Fatalf("tag query values = %v, want [go http]", got)
	}
}

func TestRequestCloneIsIndependent(t *testing.T) {
	base := New(nil).Endpoint("https://example.com").Header("X-Base", "1")
	clone := base.Clone()
	clone.Header("X-Clone", "2").AddPath("child")

	if base.header.Get("X-Clone") != "" {
		t.Fatalf("mutating the clone's header leaked back onto the base request")
	}
	if base.url.Path == clone.url.Path {
		t.Fatalf("AddPath on the clone mutated the base request's URL")
	}
}

func TestRequestAuthBasicEncodesCredentials(t *testing.T) {
	r := New(nil).Endpoint("https://example.com").AuthBasic("ada", "lovelace")
	if got, want := r.header.Get("Authorization"), "Basic YWRhOmxvdmVsYWNl"; got != want {
		t.Fatalf("Authorization = %q, want %q", got, want)
	}
}

func TestRequestDoRequiresEndpoint(t *testing.T) {
	r := New(nil)
	if _, err := r.Do(context.Background()); err == nil {
		t.Fatalf("expected Do to fail when no endpoint was set")
	}
}

func TestIsValidStatusDefaultsToAny2xx(t *testing.T) {
	if !isValidStatus(nil, 204) {
		t.Fatalf("expected 204 to be a valid status with no explicit allow-list")
	}
	if isValidStatus(nil, 404) {
		t.Fatalf("expected 404 to be rejected with no explicit allow-list")
	}
	if !isValidStatus([]int{404}, 404) {
		t.Fatalf("expected 404 to be valid when explicitly allow-listed")
	}
}
