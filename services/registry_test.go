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

package services_test

import (
	"errors"
	"sync"
	"testing"

	liberr "github/sabouaram/blaze/errors"
	"github/sabouaram/blaze/services"
)

type counter struct{ n int }

func TestProvideAndResolveSingleton(t *testing.T) {
	r := services.New()
	builds := 0
	services.Provide(r, func(r *services.Registry) (*counter, error) {
		builds++
		return &counter{n: 1}, nil
	})

	c1, err := services.Resolve[*counter](r)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	c2, err := services.Resolve[*counter](r)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if c1 != c2 {
		t.Fatalf("singleton resolved to two different instances")
	}
	if builds != 1 {
		t.Fatalf("builds = %d, want 1", builds)
	}
}

func TestProvideTransientBuildsEveryTime(t *testing.T) {
	r := services.New()
	builds := 0
	services.ProvideTransient(r, func(r *services.Registry) (*counter, error) {
		builds++
		return &counter{n: builds}, nil
	})

	c1, _ := services.Resolve[*counter](r)
	c2, _ := services.Resolve[*counter](r)
	if c1 == c2 {
		t.Fatalf("transient resolved to the same instance twice")
	}
	if builds != 2 {
		t.Fatalf("builds = %d, want 2", builds)
	}
}

func TestProvideValueReturnsSameInstance(t *testing.T) {
	r := services.New()
	want := &counter{n: 42}
	services.ProvideValue[*counter](r, want)

	got, err := services.Resolve[*counter](r)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if got != want {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestResolveUnregisteredIs500(t *testing.T) {
	r := services.New()
	_, err := services.Resolve[*counter](r)
	if err == nil {
		t.Fatalf("expected an error for unregistered type")
	}
	ke, ok := liberr.AsKind(err)
	if !ok || ke.Status() != 500 {
		t.Fatalf("expected a 500 KindInternal error, got %v", err)
	}
}

type repo struct{}
type svc struct{ repo *repo }

func TestProvideAutoWiredResolvesDependencies(t *testing.T) {
	r := services.New()
	services.Provide(r, func(r *services.Registry) (*repo, error) {
		return &repo{}, nil
	})
	services.ProvideAutoWired[*svc](r, func(rp *repo) (*svc, error) {
		return &svc{repo: rp}, nil
	})

	s, err := services.Resolve[*svc](r)
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if s.repo == nil {
		t.Fatalf("svc.repo not wired")
	}
}

type a struct{}
type b struct{}

func TestProvideAutoWiredCycleIsFatal(t *testing.T) {
	r := services.New()
	services.ProvideAutoWired[*a](r, func(bb *b) (*a, error) { return &a{}, nil })
	services.ProvideAutoWired[*b](r, func(aa *a) (*b, error) { return &b{}, nil })

	_, err := services.Resolve[*a](r)
	if err == nil {
		t.Fatalf("expected a cycle error")
	}
	ke, ok := liberr.AsKind(err)
	if !ok || ke.Kind() != liberr.KindFatal {
		t.Fatalf("expected a KindFatal error, got %v", err)
	}
}

func TestProvideAfterStartIsRejected(t *testing.T) {
	r := services.New()
	r.MarkStarted()
	err := services.Provide(r, func(r *services.Registry) (*counter, error) {
		return &counter{}, nil
	})
	if err == nil {
		t.Fatalf("expected registration-after-start to fail")
	}
}

func TestProvideAutoWiredConstructorErrorPropagates(t *testing.T) {
	r := services.New()
	boom := errors.New("boom")
	services.ProvideAutoWired[*counter](r, func() (*counter, error) {
		return nil, boom
	})
	_, err := services.Resolve[*counter](r)
	if err == nil {
		t.Fatalf("expected constructor error to propagate")
	}
}

func TestSingletonConcurrentResolveBuildsOnce(t *testing.T) {
	r := services.New()
	var builds int
	var mu sync.Mutex
	services.Provide(r, func(r *services.Registry) (*counter, error) {
		mu.Lock()
		builds++
		mu.Unlock()
		return &counter{}, nil
	})

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _ = services.Resolve[*counter](r)
		}()
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if builds != 1 {
		t.Fatalf("builds = %d, want 1 (singleton must build exactly once under concurrent resolution)", builds)
	}
}
