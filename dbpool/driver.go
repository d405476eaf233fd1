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
	"strconv"

	"gorm.io/driver/mysql"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	// Registered with database/sql for their side effect only: the pool
	// dials through database/sql directly (sql.Open + *sql.Conn leases)
	// rather than through gorm's own connection pool, so gorm's driver
	// packages above are wired in purely to hand a caller a Dialector for
	// gorm.Open, while these blank imports are what actually make
	// sql.Open(driverName, dsn) resolvable.
	_ "github.com/go-sql-driver/mysql"
	_ "github.com/jackc/pgx/v5/stdlib"
	_ "github.com/mattn/go-sqlite3"
)

// Driver names one of the SQL engines this pool knows how to dial and
// parameterize, grounded on original_source/framework/include/blaze/pg_pool.h
// and mysql_pool.h (each engine ships its own connection/placeholder
// idiosyncrasies behind a single acquire/release surface).
type Driver string

const (
	DriverPostgreSQL Driver = "postgres"
	DriverMySQL      Driver = "mysql"
	DriverSQLite     Driver = "sqlite"
)

// sqlDriverName is the name this Driver is registered under with
// database/sql (see the blank imports above).
func (d Driver) sqlDriverName() string {
	switch d {
	case DriverPostgreSQL:
		return "pgx"
	case DriverMySQL:
		return "mysql"
	case DriverSQLite:
		return "sqlite3"
	default:
		return ""
	}
}

// Placeholder renders the parameter marker for the index'th (1-based) bound
// argument in a query, per pg_pool.h's placeholder() — Postgres takes
// positional "$N" markers, MySQL and SQLite take a single repeated "?".
func (d Driver) Placeholder(index int) string {
	if d == DriverPostgreSQL {
		return "$" + strconv.Itoa(index)
	}
	return "?"
}

// Dialector builds the gorm.io Dialector for this engine and dsn, for a
// caller that wants gorm's query-building/migration surface in addition to
// the pool's own Query/Transaction/Repository API. The pool never calls
// this itself.
func (d Driver) Dialector(dsn string) gorm.Dialector {
	switch d {
	case DriverPostgreSQL:
		return postgres.Open(dsn)
	case DriverMySQL:
		return mysql.Open(dsn)
	case DriverSQLite:
		return sqlite.Open(dsn)
	default:
		return nil
	}
}

func (d Driver) valid() bool {
	return d.sqlDriverName() != ""
}
