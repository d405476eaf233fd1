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

package services

import (
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"sync"
	"sync/atomic"

	liberr "github/sabouaram/blaze/errors"
)

// Lifetime is a service's construction policy: singleton (built at most
// once, cached) or transient (built fresh on every resolution).
type Lifetime int

const (
	Singleton Lifetime = iota
	Transient
)

// buildFunc constructs a service instance, given the registry (so it can
// resolve its own dependencies) and the chain of types already under
// construction in this call (for cycle detection).
type buildFunc func(r *Registry, chain []reflect.Type) (any, error)

type descriptor struct {
	lifetime Lifetime
	build    buildFunc

	mu       sync.Mutex
	built    bool
	instance any
}

// Registry is the process-wide service container. The zero value is not
// usable; construct one with New.
type Registry struct {
	mu       sync.RWMutex
	services map[reflect.Type]*descriptor
	started  atomic.Bool
}

// New builds an empty Registry.
func New() *Registry {
	return &Registry{services: make(map[reflect.Type]*descriptor)}
}

// MarkStarted locks the registry against further Provide* calls. A server
// calls this once, at Listen, per §4.7's "registration after the server
// has started is not supported".
func (r *Registry) MarkStarted() {
	r.started.Store(true)
}

func typeOf[T any]() reflect.Type {
	return reflect.TypeOf((*T)(nil)).Elem()
}

func (r *Registry) register(t reflect.Type, d *descriptor) error {
	if r.started.Load() {
		return liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError,
			ErrCodeAfterStart, "cannot register service "+t.String()+" after the server has started")
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.services[t] = d
	return nil
}

// Provide registers a singleton service of type T, built at most once by
// factory on first resolution.
func Provide[T any](r *Registry, factory func(*Registry) (T, error)) error {
	t := typeOf[T]()
	return r.register(t, &descriptor{
		lifetime: Singleton,
		build: func(reg *Registry, _ []reflect.Type) (any, error) {
			return factory(reg)
		},
	})
}

// ProvideTransient registers a service of type T, built fresh by factory on
// every resolution.
func ProvideTransient[T any](r *Registry, factory func(*Registry) (T, error)) error {
	t := typeOf[T]()
	return r.register(t, &descriptor{
		lifetime: Transient,
		build: func(reg *Registry, _ []reflect.Type) (any, error) {
			return factory(reg)
		},
	})
}

// ProvideValue registers an already-constructed value as a singleton.
func ProvideValue[T any](r *Registry, value T) error {
	t := typeOf[T]()
	return r.register(t, &descriptor{lifetime: Singleton, built: true, instance: value})
}

// ProvideAutoWired registers a singleton of type T built by reflecting over
// ctor's own parameter list and resolving each parameter from the registry,
// depth-first — the Go realization of di.h/injector.h's dependency-tuple
// construction. ctor must be a func whose return is T or (T, error).
func ProvideAutoWired[T any](r *Registry, ctor any) error {
	t := typeOf[T]()
	cv := reflect.ValueOf(ctor)
	ct := cv.Type()

	if ct.Kind() != reflect.Func {
		return liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError,
			ErrCodeBadConstructor, "ProvideAutoWired constructor for "+t.String()+" must be a func")
	}
	if ct.NumOut() != 1 && ct.NumOut() != 2 {
		return liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError,
			ErrCodeBadConstructor, "ProvideAutoWired constructor for "+t.String()+" must return (T) or (T, error)")
	}

	paramTypes := make([]reflect.Type, ct.NumIn())
	for i := range paramTypes {
		paramTypes[i] = ct.In(i)
	}

	build := func(reg *Registry, chain []reflect.Type) (any, error) {
		args := make([]reflect.Value, len(paramTypes))
		for i, pt := range paramTypes {
			v, err := reg.resolve(pt, chain)
			if err != nil {
				return nil, err
			}
			args[i] = reflect.ValueOf(v)
		}
		out := cv.Call(args)
		if len(out) == 2 && !out[1].IsNil() {
			return nil, liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError,
				ErrCodeConstructFailed, "constructing "+t.String()+": "+out[1].Interface().(error).Error())
		}
		return out[0].Interface(), nil
	}

	return r.register(t, &descriptor{lifetime: Singleton, build: build})
}

// Has reports whether a service of type T is registered.
func Has[T any](r *Registry) bool {
	t := typeOf[T]()
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.services[t]
	return ok
}

// Resolve returns the service of type T, constructing it (and, depth-first,
// its own ProvideAutoWired dependencies) if this is the first resolution of
// a singleton, or fresh if T is transient.
func Resolve[T any](r *Registry) (T, error) {
	var zero T
	t := typeOf[T]()
	v, err := r.resolve(t, nil)
	if err != nil {
		return zero, err
	}
	out, ok := v.(T)
	if !ok {
		return zero, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
			ErrCodeNotRegistered, fmt.Sprintf("service registered for %s does not assert to requested type", t))
	}
	return out, nil
}

// ResolveType satisfies binder.Resolver, letting the binder resolve a
// handler's service-typed parameters without importing this package's
// generic API.
func (r *Registry) ResolveType(t reflect.Type) (any, bool) {
	v, err := r.resolve(t, nil)
	if err != nil {
		return nil, false
	}
	return v, true
}

// resolve is the shared construction path for Resolve, ResolveType, and
// ProvideAutoWired's own dependency lookups. chain is the list of types
// already under construction in this call — threaded down by value so
// concurrent, unrelated resolutions of the same type never collide on it;
// only a real self-referential construction chain trips the cycle check.
//
// This only protects the ProvideAutoWired dependency-resolution path: a
// custom Provide/ProvideTransient factory that itself calls Resolve[U]
// inside its own body starts a fresh chain (chain == nil) rather than
// extending this one, since the generic Resolve[T] entry point has no way
// to thread an ambient chain through arbitrary user code. A genuine cycle
// built that way blocks on the descriptor mutex instead of failing fast;
// declare dependencies through ProvideAutoWired to get the fail-fast check.
func (r *Registry) resolve(t reflect.Type, chain []reflect.Type) (any, error) {
	for _, seen := range chain {
		if seen == t {
			return nil, liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError,
				ErrCodeCycle, "dependency cycle detected: "+cycleTrace(chain, t))
		}
	}

	r.mu.RLock()
	d, ok := r.services[t]
	r.mu.RUnlock()
	if !ok {
		return nil, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
			ErrCodeNotRegistered, "no service registered for type "+t.String())
	}

	nextChain := make([]reflect.Type, len(chain), len(chain)+1)
	copy(nextChain, chain)
	nextChain = append(nextChain, t)

	if d.lifetime == Transient {
		return d.build(r, nextChain)
	}

	d.mu.Lock()
	defer d.mu.Unlock()
	if d.built {
		return d.instance, nil
	}
	v, err := d.build(r, nextChain)
	if err != nil {
		return nil, err
	}
	d.built = true
	d.instance = v
	return v, nil
}

func cycleTrace(chain []reflect.Type, closing reflect.Type) string {
	names := make([]string, 0, len(chain)+1)
	for _, t := range chain {
		names = append(names, t.String())
	}
	names = append(names, closing.String())
	return strings.Join(names, " -> ")
}
