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

package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github/sabouaram/blaze/config"
)

func TestLoadEnv(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")

	content := "" +
		"# a comment\n" +
		"\n" +
		"PLAIN=value\n" +
		"  SPACED  =   spaced value  \n" +
		"QUOTED=\"quoted value\"\n" +
		"SINGLE='single value'\n" +
		"NOEQUALS\n"

	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write .env: %v", err)
	}

	ok, err := config.LoadEnv(path)
	if err != nil {
		t.Fatalf("LoadEnv: %v", err)
	}
	if !ok {
		t.Fatalf("LoadEnv: expected ok=true for an existing file")
	}

	cases := map[string]string{
		"PLAIN":  "value",
		"SPACED": "spaced value",
		"QUOTED": "quoted value",
		"SINGLE": "single value",
	}

	for k, want := range cases {
		if got := os.Getenv(k); got != want {
			t.Errorf("env %s = %q, want %q", k, got, want)
		}
	}

	if v, ok := os.LookupEnv("NOEQUALS"); ok {
		t.Errorf("NOEQUALS should not have been set, got %q", v)
	}
}

func TestLoadEnvMissingFile(t *testing.T) {
	ok, err := config.LoadEnv(filepath.Join(t.TempDir(), "does-not-exist.env"))
	if err != nil {
		t.Fatalf("LoadEnv on missing file should not error, got %v", err)
	}
	if ok {
		t.Fatalf("LoadEnv on missing file should report ok=false")
	}
}

func TestEnvHelpers(t *testing.T) {
	t.Setenv("BLAZE_TEST_INT", "42")
	t.Setenv("BLAZE_TEST_BOOL", "YES")

	if v := config.EnvInt("BLAZE_TEST_INT", 0); v != 42 {
		t.Errorf("EnvInt = %d, want 42", v)
	}
	if v := config.EnvInt("BLAZE_TEST_MISSING", 7); v != 7 {
		t.Errorf("EnvInt default = %d, want 7", v)
	}
	if v := config.EnvBool("BLAZE_TEST_BOOL", false); v != true {
		t.Errorf("EnvBool = %v, want true", v)
	}
	if v := config.EnvBool("BLAZE_TEST_MISSING", true); v != true {
		t.Errorf("EnvBool default = %v, want true", v)
	}
}
