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
	"database/sql"
	"net/http"
	"strconv"
	"strings"

	liberr "github/sabouaram/blaze/errors"
)

// Cell is one column's value in one row, grounded on
// original_source/db_result.h's Cell — a single untyped wire value with
// typed accessors instead of Go's usual driver.Value juggling.
type Cell struct {
	raw  []byte
	null bool
}

// Null reports whether this cell was SQL NULL.
func (c Cell) Null() bool { return c.null }

// String returns the cell's text form ("" for NULL).
func (c Cell) String() string {
	if c.null {
		return ""
	}
	return string(c.raw)
}

// Int64 parses the cell as a base-10 integer.
func (c Cell) Int64() (int64, error) {
	if c.null {
		return 0, nullErr()
	}
	return strconv.ParseInt(string(c.raw), 10, 64)
}

// Float64 parses the cell as a floating-point number.
func (c Cell) Float64() (float64, error) {
	if c.null {
		return 0, nullErr()
	}
	return strconv.ParseFloat(string(c.raw), 64)
}

// Bool parses the cell as a boolean, accepting the forms SQL engines in
// this pool actually emit: "1"/"0", "true"/"false", "t"/"f".
func (c Cell) Bool() (bool, error) {
	if c.null {
		return false, nullErr()
	}
	switch strings.ToLower(string(c.raw)) {
	case "1", "t", "true":
		return true, nil
	case "0", "f", "false":
		return false, nil
	default:
		return strconv.ParseBool(string(c.raw))
	}
}

func nullErr() error {
	return liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
		ErrCodeNullValue, "dbpool: cell is NULL")
}

// Row is one result row, addressable by column index or name.
type Row struct {
	cols   map[string]int
	values []Cell
}

// At returns the cell at the given 0-based column index.
func (r Row) At(i int) Cell {
	if i < 0 || i >= len(r.values) {
		return Cell{null: true}
	}
	return r.values[i]
}

// Get returns the cell for the named column (case-insensitive).
func (r Row) Get(name string) (Cell, error) {
	i, ok := r.cols[strings.ToLower(name)]
	if !ok {
		return Cell{}, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
			ErrCodeNoSuchColumn, "dbpool: no such column "+name)
	}
	return r.values[i], nil
}

// Len reports the number of columns in this row.
func (r Row) Len() int { return len(r.values) }

// Result is the full set of rows returned by a query, grounded on
// original_source/db_result.h's DbResult.
type Result struct {
	columns []string
	rows    []Row
}

// Columns returns the result's column names in order.
func (res *Result) Columns() []string { return res.columns }

// Size reports the number of rows.
func (res *Result) Size() int { return len(res.rows) }

// Empty reports whether the result has no rows.
func (res *Result) Empty() bool { return len(res.rows) == 0 }

// Row returns the i'th (0-based) row.
func (res *Result) Row(i int) (Row, error) {
	if i < 0 || i >= len(res.rows) {
		return Row{}, liberr.NewKindStatus(liberr.KindInternal, http.StatusInternalServerError,
			ErrCodeNoSuchColumn, "dbpool: row index out of range")
	}
	return res.rows[i], nil
}

// Rows returns every row.
func (res *Result) Rows() []Row { return res.rows }

func scanResult(rows *sql.Rows) (*Result, error) {
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return nil, err
	}
	colIndex := make(map[string]int, len(cols))
	for i, c := range cols {
		colIndex[strings.ToLower(c)] = i
	}

	var out []Row
	for rows.Next() {
		raw := make([]sql.RawBytes, len(cols))
		ptrs := make([]any, len(cols))
		for i := range raw {
			ptrs[i] = &raw[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, err
		}
		values := make([]Cell, len(cols))
		for i, b := range raw {
			if b == nil {
				values[i] = Cell{null: true}
				continue
			}
			cp := make([]byte, len(b))
			copy(cp, b)
			values[i] = Cell{raw: cp}
		}
		out = append(out, Row{cols: colIndex, values: values})
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return &Result{columns: cols, rows: out}, nil
}
