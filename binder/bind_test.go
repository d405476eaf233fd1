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

package binder_test

import (
	"context"
	"io"
	"reflect"
	"strings"
	"testing"

	"github/sabouaram/blaze/binder"
	liberr "github/sabouaram/blaze/errors"
	"github/sabouaram/blaze/httpcodec"
	"github/sabouaram/blaze/pipeline"
)

type user struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

func newCtx(req *httpcodec.Request) *pipeline.Context {
	return pipeline.NewContext(context.Background(), req)
}

func TestBindPathParam(t *testing.T) {
	h, doc, err := binder.Bind("GET", "/users/:id", func(id binder.Path[int]) (string, error) {
		return "ok", nil
	}, nil)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if len(doc.Params) != 1 || doc.Params[0].In != "path" {
		t.Fatalf("doc.Params = %+v", doc.Params)
	}

	c := newCtx(&httpcodec.Request{Method: "GET"})
	c.Params.Set("id", "42")
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	if c.Response.StatusCode != 200 {
		t.Fatalf("StatusCode = %d, want 200", c.Response.StatusCode)
	}
}

func TestBindPathParamStrictConversionFailure(t *testing.T) {
	h, _, err := binder.Bind("GET", "/users/:id", func(id binder.Path[int]) error {
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	c := newCtx(&httpcodec.Request{Method: "GET"})
	c.Params.Set("id", "not-a-number")
	err = h(c)
	if err == nil {
		t.Fatalf("expected conversion failure")
	}
	ke, ok := liberr.AsKind(err)
	if !ok || ke.Status() != 400 {
		t.Fatalf("expected a 400 KindBinding error, got %v", err)
	}
}

func TestBindBodyParam(t *testing.T) {
	h, _, err := binder.Bind("POST", "/users", func(body binder.Body[user]) (user, error) {
		return body.Value, nil
	}, nil)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	req := &httpcodec.Request{Method: "POST", Body: strings.NewReader(`{"id":7,"name":"ada"}`)}
	c := newCtx(req)
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	body, _ := io.ReadAll(c.Response.Body)
	if !strings.Contains(string(body), "ada") {
		t.Fatalf("body = %s, want it to contain ada", body)
	}
}

func TestBindBodyParamDecodeFailureIs400(t *testing.T) {
	h, _, _ := binder.Bind("POST", "/users", func(body binder.Body[user]) error {
		return nil
	}, nil)

	req := &httpcodec.Request{Method: "POST", Body: strings.NewReader(`not json`)}
	c := newCtx(req)
	err := h(c)
	if err == nil {
		t.Fatalf("expected decode failure")
	}
	ke, ok := liberr.AsKind(err)
	if !ok || ke.Status() != 400 {
		t.Fatalf("expected a 400 KindBinding error, got %v", err)
	}
}

type listFilter struct {
	Limit int    `blaze:"limit"`
	Name  string `blaze:"name"`
}

func TestBindQueryParam(t *testing.T) {
	h, _, err := binder.Bind("GET", "/users", func(q binder.Query[listFilter]) error {
		if q.Value.Limit != 10 || q.Value.Name != "ada" {
			t.Fatalf("q.Value = %+v", q.Value)
		}
		return nil
	}, nil)
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}

	req := &httpcodec.Request{Method: "GET", RawQuery: "limit=10&name=ada"}
	c := newCtx(req)
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
}

func TestBindContextParamMissingIs500(t *testing.T) {
	h, _, _ := binder.Bind("GET", "/me", func(v binder.Context[string]) error {
		return nil
	}, nil)

	c := newCtx(&httpcodec.Request{Method: "GET"})
	err := h(c)
	if err == nil {
		t.Fatalf("expected missing-context failure")
	}
	ke, ok := liberr.AsKind(err)
	if !ok || ke.Status() != 500 {
		t.Fatalf("expected a 500 KindInternal error, got %v", err)
	}
}

func TestBindContextParamProvided(t *testing.T) {
	h, _, _ := binder.Bind("GET", "/me", func(v binder.Context[string]) (string, error) {
		return v.Value, nil
	}, nil)

	c := newCtx(&httpcodec.Request{Method: "GET"})
	binder.ProvideContext(c, "alice")
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	body, _ := io.ReadAll(c.Response.Body)
	if string(body) != "alice" {
		t.Fatalf("body = %q, want alice", body)
	}
}

type fakeService struct{ greeting string }

type fakeResolver struct{ svc *fakeService }

func (f fakeResolver) ResolveType(t reflect.Type) (any, bool) {
	if t == reflect.TypeOf(f.svc) {
		return f.svc, true
	}
	return nil, false
}

func TestBindServiceParam(t *testing.T) {
	svc := &fakeService{greeting: "hi"}
	h, doc, err := binder.Bind("GET", "/hello", func(s *fakeService) (string, error) {
		return s.greeting, nil
	}, fakeResolver{svc: svc})
	if err != nil {
		t.Fatalf("Bind: %v", err)
	}
	if len(doc.Params) != 1 || doc.Params[0].In != "service" {
		t.Fatalf("doc.Params = %+v", doc.Params)
	}

	c := newCtx(&httpcodec.Request{Method: "GET"})
	if err := h(c); err != nil {
		t.Fatalf("handler: %v", err)
	}
	body, _ := io.ReadAll(c.Response.Body)
	if string(body) != "hi" {
		t.Fatalf("body = %q, want hi", body)
	}
}

func TestBindUnresolvedServiceIs500(t *testing.T) {
	h, _, _ := binder.Bind("GET", "/hello", func(s *fakeService) error {
		return nil
	}, nil)

	c := newCtx(&httpcodec.Request{Method: "GET"})
	err := h(c)
	if err == nil {
		t.Fatalf("expected unresolved-service failure")
	}
	ke, ok := liberr.AsKind(err)
	if !ok || ke.Status() != 500 {
		t.Fatalf("expected a 500 KindInternal error, got %v", err)
	}
}

func TestInspectReturnsRouteDoc(t *testing.T) {
	doc, err := binder.Inspect("GET", "/users/:id", func(id binder.Path[int], q binder.Query[listFilter]) error {
		return nil
	})
	if err != nil {
		t.Fatalf("Inspect: %v", err)
	}
	if doc.Method != "GET" || doc.Path != "/users/:id" {
		t.Fatalf("doc = %+v", doc)
	}
	if len(doc.Params) != 2 {
		t.Fatalf("doc.Params = %+v, want 2", doc.Params)
	}
}
