// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFlattenYAMLAndLoadKeys(t *testing.T) {
	dir := t.TempDir()
	p := filepath.Join(dir, "en.yaml")
	if err := os.WriteFile(p, []byte("top:\n  sub: value\n  deeper:\n    leaf: x\nother: v\n"), 0o600); err != nil {
		t.Fatalf("write yaml: %v", err)
	}
	got, err := loadKeysFromLocale(p)
	if err != nil {
		t.Fatalf("loadKeysFromLocale failed: %v", err)
	}
	want := map[string]struct{}{"top.sub": {}, "top.deeper.leaf": {}, "other": {}}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("keys mismatch (-want +got):\n%s", diff)
	}
}

func TestLint_ReportsMissingAndOrphaned(t *testing.T) {
	dir := t.TempDir()
	src := "package foo\nfunc f() {\n\t_ = i18n.T(\"cli.score\", 1, \"x\")\n\t_ = i18n.T(\"band.\" + b)\n}\n"
	if err := os.MkdirAll(filepath.Join(dir, "pkg"), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "pkg", "a.go"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}

	locales := filepath.Join(dir, "locales")
	if err := os.MkdirAll(locales, 0o755); err != nil {
		t.Fatal(err)
	}
	var en strings.Builder
	en.WriteString("cli:\n  score: s\n  stale: s\n")
	en.WriteString("severity:\n  warning: W\n  tip: T\nband:\n")
	for _, b := range []string{"very_weak", "weak", "good", "strong"} {
		en.WriteString("  " + b + ": x\n")
	}
	en.WriteString("finding:\n")
	for _, k := range dynamicKeys() {
		if rest, ok := strings.CutPrefix(k, "finding."); ok {
			en.WriteString("  " + rest + ": x\n")
		}
	}
	if err := os.WriteFile(filepath.Join(locales, "en.yaml"), []byte(en.String()), 0o600); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(locales, "de.yaml"), []byte("cli:\n  stale: s\n"), 0o600); err != nil {
		t.Fatal(err)
	}

	r, err := lint(dir, locales)
	if err != nil {
		t.Fatalf("lint failed: %v", err)
	}
	if diff := cmp.Diff([]string{"cli.stale"}, r.Orphaned); diff != "" {
		t.Fatalf("orphaned mismatch (-want +got):\n%s", diff)
	}
	if len(r.Missing["en.yaml"]) != 0 {
		t.Fatalf("en.yaml should be complete, missing %v", r.Missing["en.yaml"])
	}
	if !strings.Contains(strings.Join(r.Missing["de.yaml"], ","), "cli.score") || r.ok() {
		t.Fatalf("de.yaml should be reported incomplete: %v", r.Missing["de.yaml"])
	}

	var out bytes.Buffer
	printReport(&out, r)
	if !strings.Contains(out.String(), "- cli.stale") {
		t.Fatalf("report should list orphaned keys:\n%s", out.String())
	}
}

// TestLint_Repository keeps the shipped locales in sync with the code.
func TestLint_Repository(t *testing.T) {
	root := filepath.Join("..", "..")
	r, err := lint(root, filepath.Join(root, localesDir))
	if err != nil {
		t.Fatalf("lint failed: %v", err)
	}
	if !r.ok() {
		t.Fatalf("locales are missing keys: %v", r.Missing)
	}
	if len(r.Orphaned) != 0 {
		t.Fatalf("locales carry unused keys: %v", r.Orphaned)
	}
}
