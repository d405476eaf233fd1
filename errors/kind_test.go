/*
 * MIT License
 *
 * Copyright (c) 2020 Nicolas JUHEL
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

package errors_test

import (
	"net/http"
	"testing"

	liberr "github/sabouaram/blaze/errors"
)

func TestKindDefaultStatus(t *testing.T) {
	cases := []struct {
		kind liberr.Kind
		want int
	}{
		{liberr.KindProtocol, http.StatusBadRequest},
		{liberr.KindRouting, http.StatusNotFound},
		{liberr.KindBinding, http.StatusUnprocessableEntity},
		{liberr.KindAuth, http.StatusUnauthorized},
		{liberr.KindDomain, http.StatusConflict},
		{liberr.KindResource, http.StatusServiceUnavailable},
		{liberr.KindInternal, http.StatusInternalServerError},
		{liberr.KindFatal, http.StatusInternalServerError},
	}

	for _, c := range cases {
		got := liberr.NewKind(c.kind, 1, "boom").Status()
		if got != c.want {
			t.Errorf("%s: default status = %d, want %d", c.kind, got, c.want)
		}
	}
}

func TestKindStringNames(t *testing.T) {
	cases := map[liberr.Kind]string{
		liberr.KindProtocol: "protocol",
		liberr.KindRouting:  "routing",
		liberr.KindBinding:  "binding",
		liberr.KindAuth:     "auth",
		liberr.KindDomain:   "domain",
		liberr.KindResource: "resource",
		liberr.KindInternal: "internal",
		liberr.KindFatal:    "fatal",
	}

	for kind, want := range cases {
		if got := kind.String(); got != want {
			t.Errorf("Kind(%d).String() = %q, want %q", kind, got, want)
		}
	}

	if got := liberr.Kind(0).String(); got != "unknown" {
		t.Errorf("zero Kind.String() = %q, want %q", got, "unknown")
	}
}

func TestNewKindStatusOverridesDefault(t *testing.T) {
	ke := liberr.NewKindStatus(liberr.KindDomain, http.StatusUnprocessableEntity, 1, "rejected")
	if ke.Kind() != liberr.KindDomain {
		t.Fatalf("Kind() = %v, want %v", ke.Kind(), liberr.KindDomain)
	}
	if ke.Status() != http.StatusUnprocessableEntity {
		t.Fatalf("Status() = %d, want %d overriding the kind's own default (409)", ke.Status(), http.StatusUnprocessableEntity)
	}
}

func TestAsKindUnwrapsKindError(t *testing.T) {
	ke := liberr.NewKind(liberr.KindAuth, 2, "missing token")

	got, ok := liberr.AsKind(ke)
	if !ok || got.Kind() != liberr.KindAuth {
		t.Fatalf("AsKind did not recover the KindError: ok=%v kind=%v", ok, got)
	}

	if _, ok := liberr.AsKind(liberr.New(3, "plain coded error")); ok {
		t.Fatalf("AsKind should not report ok for a plain Error lacking Kind/Status")
	}

	if _, ok := liberr.AsKind(nil); ok {
		t.Fatalf("AsKind(nil) should report ok=false")
	}
}

func TestNewCarriesParentChain(t *testing.T) {
	parent := liberr.New(10, "dial tcp: connection refused")
	err := liberr.New(20, "opening env file", parent, nil)

	if !err.IsCode(20) {
		t.Fatalf("IsCode(20) = false on the error's own code")
	}
	if err.IsCode(10) {
		t.Fatalf("IsCode(10) = true, want false: that code belongs to the parent, not err itself")
	}
	if !err.HasCode(10) {
		t.Fatalf("HasCode(10) = false, want true: should walk into the parent chain")
	}
	if err.HasCode(99) {
		t.Fatalf("HasCode(99) = true, want false: no error in the chain carries that code")
	}

	unwrapped := err.Unwrap()
	if len(unwrapped) != 1 || unwrapped[0] != parent {
		t.Fatalf("Unwrap() = %v, want a single-element slice holding the parent (nil parents dropped)", unwrapped)
	}
}
