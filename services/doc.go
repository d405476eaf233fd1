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

// Package services is the dependency-injection registry: singleton and
// transient service lifetimes keyed by reflected type, depth-first
// construction of a service's own dependencies via ProvideAutoWired,
// cycle detection over that construction chain, and a registration lockout
// once the server has started.
//
// Go has no constructor-parameter reflection the way the original_source
// di.h/injector.h's template machinery does, so ProvideAutoWired takes the
// constructor func itself and reflects over ITS parameter list instead of a
// separate BlazeDeps declaration — the same trick binder.Bind uses for
// handler parameters, and a direct application of injector.h's
// call_with_deps_impl (resolve each parameter by its own type, recursively).
package services
