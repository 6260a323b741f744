// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package refdata

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"slices"
	"strings"
	"testing"

	"github.com/bkearan/passwordclarity/internal/logging"
	"github.com/google/go-cmp/cmp"
	"github.com/klauspost/compress/zstd"
)

func TestDefault_BuiltinLists(t *testing.T) {
	set := Default()
	if set != Default() {
		t.Fatalf("Default should return the same set on every call")
	}
	if len(set.Words) == 0 || len(set.KeyboardPatterns) == 0 || len(set.CommonPasswords) == 0 {
		t.Fatalf("built-in lists should not be empty: %d words, %d patterns, %d common",
			len(set.Words), len(set.KeyboardPatterns), len(set.CommonPasswords))
	}
	for _, w := range set.Words {
		if len([]rune(w)) < MinWordLen {
			t.Fatalf("word %q shorter than %d", w, MinWordLen)
		}
	}
	want := []string{"@", "#", "$", "%", "&", "*", "!", "?", ">", "<", "+"}
	if diff := cmp.Diff(want, set.Symbols); diff != "" {
		t.Fatalf("symbol alphabet mismatch (-want +got):\n%s", diff)
	}
	if !set.IsCommon("QWERTY") || !set.IsCommon("password") {
		t.Fatalf("expected case-insensitive common password lookup")
	}
}

func TestIsCommon_NilSet(t *testing.T) {
	var s *Set
	if s.IsCommon("password") {
		t.Fatalf("nil set should know no passwords")
	}
}

func TestParseList_CommentsAndHash(t *testing.T) {
	got := parseList("# header comment\n\n  alpha  \n#\n#not a symbol\nbeta\n")
	if diff := cmp.Diff([]string{"alpha", "#", "beta"}, got); diff != "" {
		t.Fatalf("parseList mismatch (-want +got):\n%s", diff)
	}
}

func TestNew_NormalisesWords(t *testing.T) {
	set := New([]string{"Kitchen", "cat", "KITCHEN", "  garden "}, []string{"Hunter2"}, []string{"QWE"}, []string{"!", "!", "?"})
	if diff := cmp.Diff([]string{"kitchen", "garden"}, set.Words); diff != "" {
		t.Fatalf("words mismatch (-want +got):\n%s", diff)
	}
	if !set.IsCommon("hunter2") {
		t.Fatalf("common passwords should be lowercased")
	}
	if diff := cmp.Diff([]string{"qwe"}, set.KeyboardPatterns); diff != "" {
		t.Fatalf("patterns mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"!", "?"}, set.Symbols); diff != "" {
		t.Fatalf("symbols mismatch (-want +got):\n%s", diff)
	}
}

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	if err := os.WriteFile(p, []byte(content), 0o600); err != nil {
		t.Fatalf("write %s: %v", p, err)
	}
	return p
}

func TestLoad_ZeroSourcesIsDefault(t *testing.T) {
	set, err := Load(Sources{})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if set != Default() {
		t.Fatalf("empty sources should return the default set")
	}
}

func TestLoad_PlainAndYAML(t *testing.T) {
	dir := t.TempDir()
	src := Sources{
		Words:   writeFile(t, dir, "words.txt", "# my words\nOrchard\nlamp\nox\n"),
		Symbols: writeFile(t, dir, "symbols.yaml", "- \"#\"\n- \"~\"\n"),
	}
	set, err := Load(src)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if diff := cmp.Diff([]string{"orchard", "lamp"}, set.Words); diff != "" {
		t.Fatalf("words mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]string{"#", "~"}, set.Symbols); diff != "" {
		t.Fatalf("symbols mismatch (-want +got):\n%s", diff)
	}
	// Lists that were not overridden keep the built-in data.
	if !slices.Equal(set.KeyboardPatterns, Default().KeyboardPatterns) {
		t.Fatalf("keyboard patterns should fall back to defaults")
	}
}

func TestLoad_WarnsAboutSkippedWords(t *testing.T) {
	var buf bytes.Buffer
	logging.SetOutput(&buf)
	defer logging.SetOutput(os.Stderr)

	dir := t.TempDir()
	if _, err := Load(Sources{Words: writeFile(t, dir, "words.txt", "orchard\nOrchard\nox\n")}); err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if !strings.Contains(buf.String(), "skipped 2") {
		t.Fatalf("expected a warning about skipped entries, got %q", buf.String())
	}
}

func TestLoad_Zstd(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "common.txt.zst")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	zw, err := zstd.NewWriter(f)
	if err != nil {
		t.Fatal(err)
	}
	if _, err := zw.Write([]byte("Sunshine99\nletmein\n")); err != nil {
		t.Fatal(err)
	}
	if err := zw.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	set, err := Load(Sources{CommonPasswords: path})
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(set.CommonPasswords) != 2 || !set.IsCommon("sunshine99") {
		t.Fatalf("unexpected common set: %v", set.CommonPasswords)
	}
}

func TestLoad_EmptyLists(t *testing.T) {
	dir := t.TempDir()
	if _, err := Load(Sources{Words: writeFile(t, dir, "w.txt", "# only short words\nab\ncat\n")}); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList for words, got %v", err)
	}
	if _, err := Load(Sources{Symbols: writeFile(t, dir, "s.yaml", "")}); !errors.Is(err, ErrEmptyList) {
		t.Fatalf("expected ErrEmptyList for symbols, got %v", err)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	if _, err := Load(Sources{Words: filepath.Join(t.TempDir(), "missing.txt")}); err == nil {
		t.Fatalf("expected error for missing file")
	}
}
