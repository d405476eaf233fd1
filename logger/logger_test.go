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

package logger_test

import (
	"bytes"
	"errors"

	. "github/sabouaram/blaze/logger"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
)

var _ = Describe("Logger", func() {
	var buf *bytes.Buffer
	var log Logger

	BeforeEach(func() {
		buf = &bytes.Buffer{}
		log = New(buf)
	})

	Describe("level filtering", func() {
		It("defaults to InfoLevel", func() {
			Expect(log.GetLevel()).To(Equal(InfoLevel))
		})

		It("drops messages below the configured level", func() {
			log.SetLevel(WarnLevel)
			log.Info("should not appear", nil)
			Expect(buf.String()).To(BeEmpty())
		})

		It("emits messages at or above the configured level", func() {
			log.SetLevel(WarnLevel)
			log.Error("should appear", nil)
			Expect(buf.String()).To(ContainSubstring("should appear"))
		})

		It("never emits at NilLevel", func() {
			log.SetLevel(NilLevel)
			log.Error("silenced", nil)
			Expect(buf.String()).To(BeEmpty())
		})
	})

	Describe("fields", func() {
		It("merges default fields onto every entry", func() {
			log.SetFields(Fields{"service": "blaze"})
			log.Info("hello", Fields{"route": "/x"})
			Expect(buf.String()).To(ContainSubstring("service=blaze"))
			Expect(buf.String()).To(ContainSubstring("route=/x"))
		})
	})

	Describe("Clone", func() {
		It("shares output but not level/field state", func() {
			log.SetFields(Fields{"a": "1"})
			c := log.Clone()
			c.SetLevel(NilLevel)

			Expect(log.GetLevel()).To(Equal(InfoLevel))
			Expect(c.GetFields()).To(Equal(Fields{"a": "1"}))
		})
	})

	Describe("CheckError", func() {
		It("logs at lvlKO and returns false for a non-nil error", func() {
			ok := log.CheckError(ErrorLevel, InfoLevel, "op failed", errors.New("boom"))
			Expect(ok).To(BeFalse())
			Expect(buf.String()).To(ContainSubstring("op failed"))
			Expect(buf.String()).To(ContainSubstring("boom"))
		})

		It("logs at lvlOK and returns true for a nil error", func() {
			ok := log.CheckError(ErrorLevel, InfoLevel, "op succeeded", nil)
			Expect(ok).To(BeTrue())
			Expect(buf.String()).To(ContainSubstring("op succeeded"))
		})

		It("stays silent on success when lvlOK is NilLevel", func() {
			ok := log.CheckError(ErrorLevel, NilLevel, "op succeeded", nil)
			Expect(ok).To(BeTrue())
			Expect(buf.String()).To(BeEmpty())
		})
	})
})
