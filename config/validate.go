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

// Package config carries this module's ambient configuration concerns:
// optional .env loading (grounded on original_source/framework/src/environment.cpp's
// grammar) and struct-tag validation shared by every package's Config type
// (reactor.Config, dbpool.Config, httpclient.Options, ...), grounded on the
// teacher's "every Config has a Validate() error" convention across
// httpserver/httpcli/database (nabbar-golib), backed by go-playground/validator.
package config

import (
	"sync"

	"github.com/go-playground/validator/v10"

	liberr "github/sabouaram/blaze/errors"
)

const (
	// ErrCodeValidate is raised when struct-tag validation fails.
	ErrCodeValidate = ErrCodeEnvOpen + 1
)

var (
	once sync.Once
	vld  *validator.Validate
)

func instance() *validator.Validate {
	once.Do(func() {
		vld = validator.New()
	})
	return vld
}

// Validate runs go-playground/validator struct-tag validation against cfg
// and wraps any failure as a liberr.Error, so every package's Config.Validate
// method can be a one-line call to config.Validate(c).
func Validate(cfg interface{}) liberr.Error {
	if err := instance().Struct(cfg); err != nil {
		return liberr.New(ErrCodeValidate, "config validation failed", err)
	}
	return nil
}
