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

package binder

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"reflect"
	"strings"

	liberr "github/sabouaram/blaze/errors"
	"github/sabouaram/blaze/httpcodec"
	"github/sabouaram/blaze/pipeline"
	"github/sabouaram/blaze/router"
)

var (
	requestType  = reflect.TypeOf((*httpcodec.Request)(nil))
	responseType = reflect.TypeOf((*httpcodec.Response)(nil))
	ctxType      = reflect.TypeOf((*pipeline.Context)(nil))
	errorType    = reflect.TypeOf((*error)(nil)).Elem()
)

// argBinder produces one call argument from the request's Context at
// dispatch time.
type argBinder func(c *pipeline.Context) (reflect.Value, error)

// Bind reflects over fn's signature once and returns the equivalent
// pipeline.Handler, plus a best-effort RouteDoc describing its parameters.
// fn must be a func whose parameters are each one of the shapes in §4.6's
// precedence table, and whose return is one of: nothing, error, a value, or
// (value, error). resolver may be nil if fn declares no service parameters.
func Bind(method, path string, fn any, resolver Resolver) (pipeline.Handler, router.RouteDoc, error) {
	doc := router.RouteDoc{Method: method, Path: path}

	fv := reflect.ValueOf(fn)
	ft := fv.Type()
	if ft.Kind() != reflect.Func {
		return nil, doc, fmt.Errorf("binder: Bind requires a func, got %s", ft.Kind())
	}

	binders := make([]argBinder, ft.NumIn())
	pathIndex := 0
	for i := 0; i < ft.NumIn(); i++ {
		pt := ft.In(i)
		b, pdoc, consumesPath, err := compileParam(pt, pathIndex, resolver)
		if err != nil {
			return nil, doc, err
		}
		if consumesPath {
			pathIndex++
		}
		binders[i] = b
		if pdoc != nil {
			doc.Params = append(doc.Params, *pdoc)
		}
	}

	outKind, err := classifyReturn(ft)
	if err != nil {
		return nil, doc, err
	}

	handler := func(c *pipeline.Context) error {
		args := make([]reflect.Value, len(binders))
		for i, b := range binders {
			v, err := b(c)
			if err != nil {
				return err
			}
			args[i] = v
		}

		results := fv.Call(args)
		if err := extractError(results, outKind); err != nil {
			return err
		}
		if c.Response != nil {
			return nil
		}
		return writeResult(c, results, outKind)
	}

	return handler, doc, nil
}

// returnKind classifies a handler's return signature.
type returnKind int

const (
	returnNone returnKind = iota
	returnErrorOnly
	returnValueOnly
	returnValueAndError
)

func classifyReturn(ft reflect.Type) (returnKind, error) {
	switch ft.NumOut() {
	case 0:
		return returnNone, nil
	case 1:
		if ft.Out(0) == errorType {
			return returnErrorOnly, nil
		}
		return returnValueOnly, nil
	case 2:
		if ft.Out(1) != errorType {
			return 0, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
				ErrCodeUnsupportedReturn, "second return value must be error")
		}
		return returnValueAndError, nil
	default:
		return 0, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
			ErrCodeUnsupportedReturn, "handler must return at most (value, error)")
	}
}

func extractError(results []reflect.Value, kind returnKind) error {
	switch kind {
	case returnErrorOnly:
		if !results[0].IsNil() {
			return results[0].Interface().(error)
		}
	case returnValueAndError:
		if !results[1].IsNil() {
			return results[1].Interface().(error)
		}
	}
	return nil
}

// writeResult serializes a handler's non-error return value into c.Response:
// a string becomes text/plain, anything else is JSON-marshaled, covering
// both "a BLAZE-model type" and "a sequence of a BLAZE-model type" per §4.6.
func writeResult(c *pipeline.Context, results []reflect.Value, kind returnKind) error {
	var value reflect.Value
	switch kind {
	case returnNone, returnErrorOnly:
		c.Response = &httpcodec.Response{StatusCode: http.StatusNoContent}
		return nil
	case returnValueOnly:
		value = results[0]
	case returnValueAndError:
		value = results[0]
	}

	if value.Kind() == reflect.String {
		body := value.String()
		c.Response = &httpcodec.Response{
			StatusCode: http.StatusOK,
			Header:     httpcodec.Header{"content-type": {"text/plain; charset=utf-8"}},
			Body:       strings.NewReader(body),
			BodySize:   int64(len(body)),
		}
		return nil
	}

	payload, err := json.Marshal(value.Interface())
	if err != nil {
		return liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
			ErrCodeUnsupportedReturn, "failed to marshal handler result: "+err.Error())
	}
	c.Response = &httpcodec.Response{
		StatusCode: http.StatusOK,
		Header:     httpcodec.Header{"content-type": {"application/json; charset=utf-8"}},
		Body:       strings.NewReader(string(payload)),
		BodySize:   int64(len(payload)),
	}
	return nil
}

// compileParam builds the argBinder for one handler parameter, identified
// by its static type. pathIndex is this parameter's position among Path[_]
// parameters seen so far; consumesPath reports whether this call consumed
// one (so Bind can advance its own counter).
func compileParam(pt reflect.Type, pathIndex int, resolver Resolver) (argBinder, *router.ParamDoc, bool, error) {
	switch {
	case pt == requestType:
		return func(c *pipeline.Context) (reflect.Value, error) {
			return reflect.ValueOf(c.Request), nil
		}, nil, false, nil

	case pt == responseType:
		return func(c *pipeline.Context) (reflect.Value, error) {
			return reflect.ValueOf(c.Response), nil
		}, nil, false, nil

	case pt == ctxType:
		return func(c *pipeline.Context) (reflect.Value, error) {
			return reflect.ValueOf(c), nil
		}, nil, false, nil
	}

	if pt.Kind() == reflect.Struct {
		zero := reflect.New(pt).Elem().Interface()
		switch zero.(type) {
		case pathMarker:
			idx := pathIndex
			valueField := pt.Field(0).Type
			return func(c *pipeline.Context) (reflect.Value, error) {
				raw := c.Params.At(idx)
				converted, err := convertString(raw, valueField)
				if err != nil {
					return reflect.Value{}, err
				}
				out := reflect.New(pt).Elem()
				out.Field(0).Set(converted)
				return out, nil
			}, &router.ParamDoc{Name: fmt.Sprintf("path[%d]", idx), In: "path", Type: valueField.String()}, true, nil

		case bodyMarker:
			valueField := pt.Field(0).Type
			return func(c *pipeline.Context) (reflect.Value, error) {
				out := reflect.New(pt)
				if c.Request == nil || c.Request.Body == nil {
					return reflect.Value{}, liberr.NewKindStatus(liberr.KindBinding, http.StatusBadRequest,
						ErrCodeBodyDecode, "request has no body to decode")
				}
				dec := json.NewDecoder(c.Request.Body)
				target := reflect.New(valueField).Interface()
				if err := dec.Decode(target); err != nil {
					return reflect.Value{}, liberr.NewKindStatus(liberr.KindBinding, http.StatusBadRequest,
						ErrCodeBodyDecode, "failed to decode request body: "+err.Error())
				}
				out.Elem().Field(0).Set(reflect.ValueOf(target).Elem())
				return out.Elem(), nil
			}, &router.ParamDoc{Name: "body", In: "body", Type: valueField.String()}, false, nil

		case queryMarker:
			valueField := pt.Field(0).Type
			return func(c *pipeline.Context) (reflect.Value, error) {
				values, err := url.ParseQuery(c.Request.RawQuery)
				if err != nil {
					return reflect.Value{}, liberr.NewKindStatus(liberr.KindBinding, http.StatusBadRequest,
						ErrCodeConversion, "malformed query string: "+err.Error())
				}
				target := reflect.New(valueField).Elem()
				if err := projectQuery(values, target); err != nil {
					return reflect.Value{}, err
				}
				out := reflect.New(pt).Elem()
				out.Field(0).Set(target)
				return out, nil
			}, &router.ParamDoc{Name: "query", In: "query", Type: valueField.String()}, false, nil

		case contextMarker:
			valueField := pt.Field(0).Type
			return func(c *pipeline.Context) (reflect.Value, error) {
				stored, ok := c.Get(valueField)
				if !ok {
					return reflect.Value{}, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
						ErrCodeMissingContext, "no context value stashed for type "+valueField.String())
				}
				out := reflect.New(pt).Elem()
				out.Field(0).Set(reflect.ValueOf(stored))
				return out, nil
			}, &router.ParamDoc{Name: "context", In: "context", Type: valueField.String()}, false, nil
		}
	}

	// Anything else is a reference or owned pointer to a registered
	// service type, resolved from the registry (§4.6's last two rows).
	if pt.Kind() == reflect.Ptr || pt.Kind() == reflect.Interface {
		return func(c *pipeline.Context) (reflect.Value, error) {
			if resolver == nil {
				return reflect.Value{}, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
					ErrCodeUnresolvedService, "no service registry configured to resolve "+pt.String())
			}
			v, ok := resolver.ResolveType(pt)
			if !ok {
				return reflect.Value{}, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
					ErrCodeUnresolvedService, "no registered service for type "+pt.String())
			}
			return reflect.ValueOf(v), nil
		}, &router.ParamDoc{Name: "service", In: "service", Type: pt.String()}, false, nil
	}

	return nil, nil, false, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
		ErrCodeUnsupportedParam, "unsupported handler parameter type "+pt.String())
}

// ProvideContext stashes value under T's reflected type, for a later
// Context[T] handler parameter to pick up. Middlewares call this to hand
// request-scoped values (an authenticated principal, a request ID) down
// to handlers without a global.
func ProvideContext[T any](c *pipeline.Context, value T) {
	c.Set(reflect.TypeOf((*T)(nil)).Elem(), value)
}
