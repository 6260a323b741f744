// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// i18n-linter checks the locale files for missing and orphaned keys. It scans
// the Go sources for i18n.T("...") calls, adds the keys that are built at
// runtime from finding kinds, bands and severities, and compares the result
// against every YAML file in the locales directory.
package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"strings"

	"github.com/bkearan/passwordclarity/internal/strength"
	"gopkg.in/yaml.v3"
)

const (
	localesDir    = "internal/i18n/locales"
	primaryLocale = "en.yaml"
	projectRoot   = "."
)

var usedKeyRe = regexp.MustCompile(`\bT\("([^"]+)"`)

// report is the outcome of one lint run.
type report struct {
	Used     int
	Orphaned []string            // in the primary locale, never used
	Missing  map[string][]string // locale file -> used keys it lacks
}

func (r report) ok() bool {
	for _, keys := range r.Missing {
		if len(keys) > 0 {
			return false
		}
	}
	return true
}

func main() {
	r, err := lint(projectRoot, localesDir)
	if err != nil {
		fmt.Fprintf(os.Stderr, "i18n-linter: %v\n", err)
		os.Exit(1)
	}
	printReport(os.Stdout, r)
	if !r.ok() {
		os.Exit(1)
	}
}

func lint(root, locales string) (report, error) {
	used, err := findUsedKeys(root)
	if err != nil {
		return report{}, fmt.Errorf("scan sources: %w", err)
	}
	for _, k := range dynamicKeys() {
		used[k] = struct{}{}
	}

	primary, err := loadKeysFromLocale(filepath.Join(locales, primaryLocale))
	if err != nil {
		return report{}, fmt.Errorf("load primary locale: %w", err)
	}

	r := report{Used: len(used), Missing: map[string][]string{}}
	for key := range primary {
		if _, ok := used[key]; !ok {
			r.Orphaned = append(r.Orphaned, key)
		}
	}
	sort.Strings(r.Orphaned)

	files, err := filepath.Glob(filepath.Join(locales, "*.yaml"))
	if err != nil {
		return report{}, err
	}
	for _, file := range files {
		keys, err := loadKeysFromLocale(file)
		if err != nil {
			return report{}, fmt.Errorf("load %s: %w", file, err)
		}
		var missing []string
		for key := range used {
			if _, ok := keys[key]; !ok {
				missing = append(missing, key)
			}
		}
		sort.Strings(missing)
		r.Missing[filepath.Base(file)] = missing
	}
	return r, nil
}

// dynamicKeys lists the keys the i18n package composes at runtime.
func dynamicKeys() []string {
	keys := []string{
		"severity." + strings.ToLower(string(strength.Warning)),
		"severity." + strings.ToLower(string(strength.Tip)),
	}
	for k := strength.CommonPassword; k <= strength.MissingSymbol; k++ {
		keys = append(keys, "finding."+k.String())
	}
	for b := strength.VeryWeak; b <= strength.Strong; b++ {
		keys = append(keys, "band."+b.String())
	}
	return keys
}

// findUsedKeys scans all non-test .go files below root for i18n.T calls.
func findUsedKeys(root string) (map[string]struct{}, error) {
	keys := make(map[string]struct{})
	err := filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			switch name := info.Name(); {
			case name == "tools", name == "vendor", path != root && strings.HasPrefix(name, "_"), path != root && strings.HasPrefix(name, "."):
				return filepath.SkipDir
			}
			return nil
		}
		if !strings.HasSuffix(path, ".go") || strings.HasSuffix(path, "_test.go") {
			return nil
		}
		content, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		for _, m := range usedKeyRe.FindAllStringSubmatch(string(content), -1) {
			// "band." + ... style prefixes are covered by dynamicKeys.
			if strings.HasSuffix(m[1], ".") {
				continue
			}
			keys[m[1]] = struct{}{}
		}
		return nil
	})
	return keys, err
}

// loadKeysFromLocale reads a YAML file and returns a flat map of its keys.
func loadKeysFromLocale(path string) (map[string]struct{}, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var data map[string]any
	if err := yaml.Unmarshal(content, &data); err != nil {
		return nil, err
	}

	keys := make(map[string]struct{})
	flattenYAML("", data, keys)
	return keys, nil
}

// flattenYAML converts a nested map into dot-separated leaf keys.
func flattenYAML(prefix string, node any, keys map[string]struct{}) {
	switch v := node.(type) {
	case map[string]any:
		for k, val := range v {
			next := k
			if prefix != "" {
				next = prefix + "." + k
			}
			flattenYAML(next, val, keys)
		}
	default:
		if prefix != "" {
			keys[prefix] = struct{}{}
		}
	}
}

func printReport(w io.Writer, r report) {
	fmt.Fprintf(w, "%d translation keys in use.\n\n", r.Used)

	fmt.Fprintln(w, "--- Orphaned keys (in primary locale but not used) ---")
	if len(r.Orphaned) == 0 {
		fmt.Fprintln(w, "  none")
	}
	for _, k := range r.Orphaned {
		fmt.Fprintf(w, "  - %s\n", k)
	}

	fmt.Fprintln(w, "\n--- Missing keys ---")
	files := make([]string, 0, len(r.Missing))
	for f := range r.Missing {
		files = append(files, f)
	}
	sort.Strings(files)
	for _, f := range files {
		if len(r.Missing[f]) == 0 {
			fmt.Fprintf(w, "%s: all keys present\n", f)
			continue
		}
		fmt.Fprintf(w, "%s:\n", f)
		for _, k := range r.Missing[f] {
			fmt.Fprintf(w, "  - %s\n", k)
		}
	}
}
