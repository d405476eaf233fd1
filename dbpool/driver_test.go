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

import "testing"

func TestDriverPlaceholderSyntax(t *testing.T) {
	if got := DriverPostgreSQL.Placeholder(3); got != "$3" {
		t.Fatalf("postgres Placeholder(3) = %q, want $3", got)
	}
	if got := DriverMySQL.Placeholder(3); got != "?" {
		t.Fatalf("mysql Placeholder(3) = %q, want ?", got)
	}
	if got := DriverSQLite.Placeholder(1); got != "?" {
		t.Fatalf("sqlite Placeholder(1) = %q, want ?", got)
	}
}

func TestDriverValidity(t *testing.T) {
	if !DriverPostgreSQL.valid() || !DriverMySQL.valid() || !DriverSQLite.valid() {
		t.Fatalf("expected all three known drivers to be valid")
	}
	if Driver("oracle").valid() {
		t.Fatalf("expected an unknown driver to be invalid")
	}
}

func TestConfigValidateRejectsUnknownDriverAndEmptyDSN(t *testing.T) {
	if err := (Config{Driver: "oracle", DSN: "x"}).Validate(); err == nil {
		t.Fatalf("expected Validate to reject an unknown driver")
	}
	if err := (Config{Driver: DriverSQLite, DSN: ""}).Validate(); err == nil {
		t.Fatalf("expected Validate to reject an empty DSN")
	}
	if err := (Config{Driver: DriverSQLite, DSN: "file::memory:"}).Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
