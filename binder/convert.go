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
	"fmt"
	"reflect"
	"strconv"

	liberr "github/sabouaram/blaze/errors"
)

// convertString strictly converts raw into a value of typ, per §4.6:
// "conversion of segments/query values to numeric/boolean types uses strict
// parsing; parse failure raises a 400 with a descriptive message." Strict
// means strconv's base-10, full-string parses — no locale tolerance, no
// partial-prefix parsing, no silent truncation.
func convertString(raw string, typ reflect.Type) (reflect.Value, error) {
	switch typ.Kind() {
	case reflect.String:
		return reflect.ValueOf(raw).Convert(typ), nil

	case reflect.Bool:
		b, err := strconv.ParseBool(raw)
		if err != nil {
			return reflect.Value{}, conversionError(raw, typ)
		}
		return reflect.ValueOf(b).Convert(typ), nil

	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		n, err := strconv.ParseInt(raw, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, conversionError(raw, typ)
		}
		v := reflect.New(typ).Elem()
		v.SetInt(n)
		return v, nil

	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		n, err := strconv.ParseUint(raw, 10, typ.Bits())
		if err != nil {
			return reflect.Value{}, conversionError(raw, typ)
		}
		v := reflect.New(typ).Elem()
		v.SetUint(n)
		return v, nil

	case reflect.Float32, reflect.Float64:
		f, err := strconv.ParseFloat(raw, typ.Bits())
		if err != nil {
			return reflect.Value{}, conversionError(raw, typ)
		}
		v := reflect.New(typ).Elem()
		v.SetFloat(f)
		return v, nil

	default:
		return reflect.Value{}, liberr.NewKindStatus(liberr.KindBinding, 400,
			ErrCodeConversion, fmt.Sprintf("unsupported target type %s for string conversion", typ))
	}
}

func conversionError(raw string, typ reflect.Type) error {
	return liberr.NewKindStatus(liberr.KindBinding, 400,
		ErrCodeConversion, fmt.Sprintf("cannot parse %q as %s", raw, typ))
}
