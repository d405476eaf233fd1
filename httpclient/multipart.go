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
	"bytes"
	"io"
	"mime/multipart"
)

// Multipart accumulates form fields and file parts for a single
// multipart/form-data body, the way a caller builds one field/file at a
// time before attaching it to a Request via RequestMultipart. There's no
// multipart-building library in the pack (the teacher's own httpcli never
// encodes one; it only ever sends JSON or a raw io.Reader), so this is
// built directly on stdlib mime/multipart - the package that defines the
// wire format in the first place, with nothing to adapt from a third party.
type Multipart struct {
	buf *bytes.Buffer
	w   *multipart.Writer
	err error
}

// NewMultipart starts an empty multipart/form-data body.
func NewMultipart() *Multipart {
	buf := &bytes.Buffer{}
	return &Multipart{buf: buf, w: multipart.NewWriter(buf)}
}

// Field adds a plain form field.
func (m *Multipart) Field(name, value string) *Multipart {
	if m.err != nil {
		return m
	}
	m.err = m.w.WriteField(name, value)
	return m
}

// File adds a file part named filename under form field name, copying
// content in full.
func (m *Multipart) File(name, filename string, content io.Reader) *Multipart {
	if m.err != nil {
		return m
	}
	part, err := m.w.CreateFormFile(name, filename)
	if err != nil {
		m.err = err
		return m
	}
	_, m.err = io.Copy(part, content)
	return m
}

// ContentType is the Content-Type value (including the boundary parameter)
// the caller must set alongside the encoded body.
func (m *Multipart) ContentType() string {
	return m.w.FormDataContentType()
}

// Bytes closes the writer (finalizing the trailing boundary) and returns
// the encoded body. Field/File calls made afterward still write parts to
// the buffer, after the closing boundary.
func (m *Multipart) Bytes() ([]byte, error) {
	if m.err != nil {
		return nil, m.err
	}
	if err := m.w.Close(); err != nil {
		return nil, err
	}
	return m.buf.Bytes(), nil
}

// RequestMultipart attaches m as the request body, setting Content-Type to
// m's boundary-bearing value.
func (r *Request) RequestMultipart(m *Multipart) *Request {
	body, err := m.Bytes()
	if err != nil {
		r.mu.Lock()
		r.err = newEncodeErr(err)
		r.mu.Unlock()
		return r
	}

	r.mu.Lock()
	r.body = body
	r.mu.Unlock()
	return r.ContentType(m.ContentType())
}
