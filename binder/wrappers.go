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

// Path wraps the k-th captured path segment, converted to T. k is this
// parameter's position among Path[_] parameters in the handler's
// declaration order, not its position among all parameters.
type Path[T any] struct {
	Value T
}

func (Path[T]) isPath() {}

// Body wraps the request body, JSON-decoded as T.
type Body[T any] struct {
	Value T
}

func (Body[T]) isBody() {}

// Query wraps the request's query string, projected onto T's fields.
type Query[T any] struct {
	Value T
}

func (Query[T]) isQuery() {}

// Context wraps a value of type T previously stashed in the pipeline
// Context under T's type (see ProvideContext). Binding fails with a 500 if
// no such value was ever stashed.
type Context[T any] struct {
	Value T
}

func (Context[T]) isContextValue() {}

type pathMarker interface{ isPath() }
type bodyMarker interface{ isBody() }
type queryMarker interface{ isQuery() }
type contextMarker interface{ isContextValue() }
