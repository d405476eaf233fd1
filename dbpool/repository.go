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
	"context"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	liberr "github/sabouaram/blaze/errors"
)

// Repository is a thin, reflection-driven CRUD surface over one table for
// model type T, supplementing pg_pool.h/model.h's raw query+hydrate pair
// with the repository shape the rest of the pack's services favor (see
// services.Registry's constructor-style registration).
type Repository[T any] struct {
	pool  *Pool
	table string
	pk    string
}

// NewRepository builds a Repository for T backed by table, using pk
// ("id" if empty) as the primary-key column for Find/Update/Remove.
func NewRepository[T any](pool *Pool, table, pk string) *Repository[T] {
	if pk == "" {
		pk = "id"
	}
	return &Repository[T]{pool: pool, table: table, pk: pk}
}

func (r *Repository[T]) columns() []string {
	var t T
	rt := reflect.TypeOf(t)
	cols := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.PkgPath != "" {
			continue
		}
		if name := columnName(f); name != "" {
			cols = append(cols, name)
		}
	}
	return cols
}

func (r *Repository[T]) values(v T) []any {
	rv := reflect.ValueOf(v)
	rt := rv.Type()
	vals := make([]any, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rt.Field(i)
		if f.PkgPath != "" {
			continue
		}
		if columnName(f) != "" {
			vals = append(vals, rv.Field(i).Interface())
		}
	}
	return vals
}

// All returns every row in the table.
func (r *Repository[T]) All(ctx context.Context) ([]T, error) {
	return r.Query().All(ctx)
}

// Count returns the table's row count.
func (r *Repository[T]) Count(ctx context.Context) (int64, error) {
	res, err := r.pool.Query(ctx, "SELECT COUNT(*) FROM "+r.table)
	if err != nil {
		return 0, err
	}
	row, err := res.Row(0)
	if err != nil {
		return 0, err
	}
	return row.At(0).Int64()
}

// Find fetches the single row whose primary key equals id.
func (r *Repository[T]) Find(ctx context.Context, id any) (T, error) {
	var zero T
	rows, err := r.Query().Where(r.pk+" = "+r.pool.Placeholder(1), id).All(ctx)
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, liberr.NewKindStatus(liberr.KindResource, http.StatusNotFound,
			ErrCodeNoSuchColumn, "dbpool: no row with "+r.pk+" = given id")
	}
	return rows[0], nil
}

// Save inserts v as a new row.
func (r *Repository[T]) Save(ctx context.Context, v T) error {
	cols := r.columns()
	placeholders := make([]string, len(cols))
	for i := range cols {
		placeholders[i] = r.pool.Placeholder(i + 1)
	}
	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s)",
		r.table, strings.Join(cols, ", "), strings.Join(placeholders, ", "))
	_, err := r.pool.Exec(ctx, query, r.values(v)...)
	return err
}

// Update overwrites every column of the row whose primary key equals id.
func (r *Repository[T]) Update(ctx context.Context, id any, v T) error {
	cols := r.columns()
	sets := make([]string, len(cols))
	args := r.values(v)
	for i, c := range cols {
		sets[i] = c + " = " + r.pool.Placeholder(i+1)
	}
	args = append(args, id)
	query := fmt.Sprintf("UPDATE %s SET %s WHERE %s = %s",
		r.table, strings.Join(sets, ", "), r.pk, r.pool.Placeholder(len(cols)+1))
	_, err := r.pool.Exec(ctx, query, args...)
	return err
}

// Remove deletes the row whose primary key equals id.
func (r *Repository[T]) Remove(ctx context.Context, id any) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE %s = %s", r.table, r.pk, r.pool.Placeholder(1))
	_, err := r.pool.Exec(ctx, query, id)
	return err
}

// Query starts a fluent filtered read over this repository's table.
func (r *Repository[T]) Query() *Query[T] {
	return &Query[T]{repo: r}
}

// Query is a fluent WHERE/ORDER BY/LIMIT/OFFSET builder terminated by All
// or First.
type Query[T any] struct {
	repo  *Repository[T]
	where string
	args  []any
	order string
	limit int
	// 0 (the zero value) means no OFFSET clause; build emits one only for
	// a positive value.
	offset int
}

// Where ANDs an additional raw SQL condition (using the repository's own
// placeholder syntax) with its bound arguments onto the query.
func (q *Query[T]) Where(cond string, args ...any) *Query[T] {
	if q.where == "" {
		q.where = cond
	} else {
		q.where += " AND " + cond
	}
	q.args = append(q.args, args...)
	return q
}

// OrderBy sets the ORDER BY clause verbatim (e.g. "created_at DESC").
func (q *Query[T]) OrderBy(col string) *Query[T] {
	q.order = col
	return q
}

// Limit caps the number of rows returned.
func (q *Query[T]) Limit(n int) *Query[T] {
	q.limit = n
	return q
}

// Offset skips the first n matching rows.
func (q *Query[T]) Offset(n int) *Query[T] {
	q.offset = n
	return q
}

func (q *Query[T]) build() (string, []any) {
	sb := strings.Builder{}
	sb.WriteString("SELECT * FROM ")
	sb.WriteString(q.repo.table)
	if q.where != "" {
		sb.WriteString(" WHERE ")
		sb.WriteString(q.where)
	}
	if q.order != "" {
		sb.WriteString(" ORDER BY ")
		sb.WriteString(q.order)
	}
	if q.limit > 0 {
		sb.WriteString(fmt.Sprintf(" LIMIT %d", q.limit))
	}
	if q.offset > 0 {
		sb.WriteString(fmt.Sprintf(" OFFSET %d", q.offset))
	}
	return sb.String(), q.args
}

// All runs the built query and hydrates every row into a T.
func (q *Query[T]) All(ctx context.Context) ([]T, error) {
	query, args := q.build()
	res, err := q.repo.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return HydrateAll[T](res)
}

// First runs the built query with an implicit LIMIT 1 and returns the
// first row, or ErrCodeNoSuchColumn-backed error if there is none.
func (q *Query[T]) First(ctx context.Context) (T, error) {
	var zero T
	q.limit = 1
	rows, err := q.All(ctx)
	if err != nil {
		return zero, err
	}
	if len(rows) == 0 {
		return zero, liberr.NewKindStatus(liberr.KindResource, http.StatusNotFound,
			ErrCodeNoSuchColumn, "dbpool: query matched no rows")
	}
	return rows[0], nil
}
