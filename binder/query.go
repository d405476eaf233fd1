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
	"net/url"
	"reflect"
	"strings"
)

// fieldName is the query key T's field f binds to: the field's own name,
// lower-cased, unless overridden by a `blaze:"name"` tag — the same
// case-insensitive-unless-tagged convention the Model type uses elsewhere
// in this repo (ground: nabbar-golib/database/gorm/model.go's tag walking).
func fieldName(f reflect.StructField) string {
	if tag := f.Tag.Get("blaze"); tag != "" && tag != "-" {
		return tag
	}
	return strings.ToLower(f.Name)
}

// projectQuery fills target's exported fields from values, matching query
// keys to field names case-insensitively. A field with no matching query
// key is left at its zero value; an unconvertible value raises a 400.
func projectQuery(values url.Values, target reflect.Value) error {
	t := target.Type()
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		name := fieldName(f)
		raw := firstMatch(values, name)
		if raw == "" {
			continue
		}
		converted, err := convertString(raw, f.Type)
		if err != nil {
			return err
		}
		target.Field(i).Set(converted)
	}
	return nil
}

func firstMatch(values url.Values, name string) string {
	for key, vs := range values {
		if strings.EqualFold(key, name) && len(vs) > 0 {
			return vs[0]
		}
	}
	return ""
}
