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
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func testClient(t *testing.T, opts Options) *Client {
	t.Helper()
	opts.RetryMax = 0 // these tests exercise redirects/status handling, not backoff timing
	opts.Timeout = 2 * time.Second
	c, err := NewClient(opts)
	if err != nil {
		t.Fatalf("NewClient: %v", err)
	}
	return c
}

func TestClientDoSucceeds(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	}))
	defer srv.Close()

	c := testClient(t, DefaultOptions())
	req := New(c).Endpoint(srv.URL)

	resp, err := req.Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()

	body, _ := io.ReadAll(resp.Body)
	if string(body) != "ok" {
		t.Fatalf("body = %q, want ok", body)
	}
}

func TestClientFollowsSeeOtherRewritingToGet(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dest", http.StatusSeeOther)
	})
	mux.HandleFunc("/dest", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("dest method = %s, want GET", r.Method)
		}
		if n, _ := io.Copy(io.Discard, r.Body); n != 0 {
			t.Errorf("dest body length = %d, want 0", n)
		}
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := testClient(t, DefaultOptions())
	req := New(c).Endpoint(srv.URL + "/start").Method(http.MethodPost).RequestJSON(map[string]int{"n": 1})

	resp, err := req.Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d, want 200", resp.StatusCode)
	}
}

func TestClientPreservesMethodOn302ByDefault(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dest", http.StatusFound)
	})
	mux.HandleFunc("/dest", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("dest method = %s, want POST", r.Method)
		}
		body, _ := io.ReadAll(r.Body)
		if string(body) != `{"n":1}` {
			t.Errorf("dest body = %q, want preserved JSON body", body)
		}
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	c := testClient(t, DefaultOptions())
	req := New(c).Endpoint(srv.URL + "/start").Method(http.MethodPost).RequestJSON(map[string]int{"n": 1})

	resp, err := req.Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
}

func TestClientLegacyRedirectRewritesOn302(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/start", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/dest", http.StatusFound)
	})
	mux.HandleFunc("/dest", func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			t.Errorf("dest method = %s, want GET under LegacyRedirect", r.Method)
		}
		w.WriteHeader(http.StatusOK)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	opts := DefaultOptions()
	opts.LegacyRedirect = true
	c := testClient(t, opts)
	req := New(c).Endpoint(srv.URL + "/start").Method(http.MethodPost).RequestJSON(map[string]int{"n": 1})

	resp, err := req.Do(context.Background())
	if err != nil {
		t.Fatalf("Do: %v", err)
	}
	defer func() { _ = resp.Body.Close() }()
}

func TestClientStopsAfterMaxRedirects(t *testing.T) {
	mux := http.NewServeMux()
	mux.HandleFunc("/loop", func(w http.ResponseWriter, r *http.Request) {
		http.Redirect(w, r, "/loop", http.StatusFound)
	})
	srv := httptest.NewServer(mux)
	defer srv.Close()

	opts := DefaultOptions()
	opts.MaxRedirects = 2
	c := testClient(t, opts)
	req := New(c).Endpoint(srv.URL + "/loop")

	if _, err := req.Do(context.Background()); err == nil {
		t.Fatalf("expected Do to fail after exceeding MaxRedirects")
	}
}

func TestClientDoParseDecodesJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(map[string]string{"name": "ada"})
	}))
	defer srv.Close()

	c := testClient(t, DefaultOptions())
	req := New(c).Endpoint(srv.URL)

	var out struct {
		Name string `json:"name"`
	}
	if err := req.DoParse(context.Background(), &out); err != nil {
		t.Fatalf("DoParse: %v", err)
	}
	if out.Name != "ada" {
		t.Fatalf("Name = %q, want ada", out.Name)
	}
}

func TestClientDoParseRejectsUnexpectedStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTeapot)
	}))
	defer srv.Close()

	c := testClient(t, DefaultOptions())
	req := New(c).Endpoint(srv.URL)

	if err := req.DoParse(context.Background(), nil); err == nil {
		t.Fatalf("expected DoParse to reject an unlisted status code")
	}
}
