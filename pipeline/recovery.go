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

package pipeline

import (
	"net/http"
	"strings"

	liberr "github/sabouaram/blaze/errors"
	"github/sabouaram/blaze/httpcodec"
	liblog "github/sabouaram/blaze/logger"
)

const (
	// ErrCodeUnhandled is the code attached to an error that reached
	// Recovery/MapError without already carrying a Kind.
	ErrCodeUnhandled = liberr.MinPkgPipeline + iota

	// ErrCodePanic is the code attached to a recovered panic.
	ErrCodePanic
)

// Recovery is the outermost middleware a Router installs by default: it
// recovers a panic from any downstream middleware or handler and turns it
// into a KindFatal 500, so one bad handler can't take the session down.
func Recovery(log liblog.Logger) Middleware {
	return func(c *Context, next Next) (err error) {
		defer func() {
			if r := recover(); r != nil {
				if log != nil {
					log.Error("pipeline panic recovered", liblog.Fields{"recovered": r})
				}
				err = liberr.NewKindStatus(liberr.KindFatal, http.StatusInternalServerError, ErrCodePanic, "handler panic")
			}
		}()
		return next()
	}
}

// MapError converts err (typically returned up through Compose's chain)
// into the response it should produce: a KindError's own status/message if
// err carries one, otherwise a generic KindInternal 500. Per §7, this is
// the single place pipeline errors become wire responses.
func MapError(err error) *httpcodec.Response {
	if err == nil {
		return nil
	}

	ke, ok := liberr.AsKind(err)
	if !ok {
		ke = liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError, ErrCodeUnhandled, err.Error())
	}
	status := ke.Status()
	message := ke.Error()

	return &httpcodec.Response{
		StatusCode: status,
		Header:     httpcodec.Header{"content-type": {"text/plain; charset=utf-8"}},
		Body:       strings.NewReader(message),
		BodySize:   int64(len(message)),
	}
}
