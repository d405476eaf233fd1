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
	"testing"
)

type account struct {
	ID   int64
	Name string
}

func TestRepositoryAllHydratesRows(t *testing.T) {
	p, _ := newFakePool(t, 1)
	repo := NewRepository[account](p, "accounts", "id")

	rows, err := repo.All(context.Background())
	if err != nil {
		t.Fatalf("All: %v", err)
	}
	if len(rows) != 1 || rows[0].Name != "ada" {
		t.Fatalf("All() = %+v", rows)
	}
}

func TestRepositorySaveIssuesInsert(t *testing.T) {
	p, fd := newFakePool(t, 1)
	repo := NewRepository[account](p, "accounts", "id")

	if err := repo.Save(context.Background(), account{ID: 1, Name: "grace"}); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if fd.execs != 1 {
		t.Fatalf("execs = %d, want 1", fd.execs)
	}
}

func TestRepositoryFindReturnsFirstMatch(t *testing.T) {
	p, _ := newFakePool(t, 1)
	repo := NewRepository[account](p, "accounts", "id")

	a, err := repo.Find(context.Background(), 1)
	if err != nil {
		t.Fatalf("Find: %v", err)
	}
	if a.Name != "ada" {
		t.Fatalf("Find() = %+v", a)
	}
}

func TestQueryBuilderComposesClauses(t *testing.T) {
	p, _ := newFakePool(t, 1)
	repo := NewRepository[account](p, "accounts", "id")

	query, args := repo.Query().
		Where("name = "+p.Placeholder(1), "ada").
		OrderBy("id DESC").
		Limit(10).
		Offset(5).
		build()

	want := "SELECT * FROM accounts WHERE name = $1 ORDER BY id DESC LIMIT 10 OFFSET 5"
	if query != want {
		t.Fatalf("query = %q, want %q", query, want)
	}
	if len(args) != 1 || args[0] != "ada" {
		t.Fatalf("args = %v", args)
	}
}
