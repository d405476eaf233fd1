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

package dbpool

import (
	"net/http"
	"reflect"
	"strings"

	liberr "github/sabouaram/blaze/errors"
)

// columnName is the column a struct field binds to: its "db" tag if
// present, else its lower-cased name; a `db:"-"` tag excludes the field
// (returns ""). Same tag-else-lower-cased-name shape as the binder
// package's query field resolution, keyed on "db" instead of "blaze".
func columnName(f reflect.StructField) string {
	if tag := f.Tag.Get("db"); tag != "" {
		if tag == "-" {
			return ""
		}
		return tag
	}
	return strings.ToLower(f.Name)
}

// Hydrate fills a new T from row, matching each exported field to a column
// by columnName. Grounded on original_source/model.h's row_to_struct<T>,
// which walks a boost::describe-reflected struct the same way.
func Hydrate[T any](row Row) (T, error) {
	var out T
	rv := reflect.ValueOf(&out).Elem()
	if rv.Kind() != reflect.Struct {
		return out, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
			ErrCodeBadModel, "dbpool: Hydrate target must be a struct")
	}

	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		field := rt.Field(i)
		if field.PkgPath != "" {
			continue
		}
		name := columnName(field)
		if name == "" {
			continue
		}
		cell, err := row.Get(name)
		if err != nil {
			continue
		}
		if err := assignCell(rv.Field(i), cell); err != nil {
			return out, err
		}
	}
	return out, nil
}

// HydrateAll hydrates every row of res into a []T.
func HydrateAll[T any](res *Result) ([]T, error) {
	out := make([]T, 0, res.Size())
	for _, row := range res.Rows() {
		v, err := Hydrate[T](row)
		if err != nil {
			return nil, err
		}
		out = append(out, v)
	}
	return out, nil
}

func assignCell(fv reflect.Value, cell Cell) error {
	if cell.Null() {
		return nil
	}
	switch fv.Kind() {
	case reflect.String:
		fv.SetString(cell.String())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := cell.Int64()
		if err != nil {
			return badModel(err)
		}
		fv.SetInt(n)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := cell.Int64()
		if err != nil {
			return badModel(err)
		}
		fv.SetUint(uint64(n))
	case reflect.Float32, reflect.Float64:
		n, err := cell.Float64()
		if err != nil {
			return badModel(err)
		}
		fv.SetFloat(n)
	case reflect.Bool:
		b, err := cell.Bool()
		if err != nil {
			return badModel(err)
		}
		fv.SetBool(b)
	default:
		return liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
			ErrCodeBadModel, "dbpool: unsupported field kind "+fv.Kind().String())
	}
	return nil
}

func badModel(parent error) error {
	return liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
		ErrCodeBadModel, "dbpool: field conversion failed", parent)
}
