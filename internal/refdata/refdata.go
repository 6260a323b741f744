// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package refdata holds the fixed reference lists the analyzer and the
// passphrase generator work from: the dictionary word list, the set of
// common passwords, the keyboard walks and the symbol alphabet.
//
// The built-in lists are embedded into the binary. Callers may overlay any
// of them with their own files via Load; the resulting Set is never mutated
// after it is returned.
package refdata

import (
	_ "embed"
	"errors"
	"strings"
	"sync"
	"unicode/utf8"
)

// MinWordLen is the shortest word kept in a Set's word list.
const MinWordLen = 4

// ErrEmptyList is returned when a list required by a consumer ends up empty.
var ErrEmptyList = errors.New("reference list is empty")

var (
	//go:embed data/words.txt
	builtinWords string
	//go:embed data/common_passwords.txt
	builtinCommon string
	//go:embed data/keyboard_patterns.txt
	builtinKeyboard string
	//go:embed data/symbols.txt
	builtinSymbols string
)

// Set is an immutable bundle of reference lists.
type Set struct {
	// Words are lowercase dictionary words, in file order, without duplicates.
	Words []string
	// CommonPasswords is keyed by the lowercased password.
	CommonPasswords map[string]struct{}
	// KeyboardPatterns are lowercase substrings checked in list order.
	KeyboardPatterns []string
	// Symbols is the alphabet passphrase symbols are drawn from.
	Symbols []string
}

// IsCommon reports whether pw is a known common password, ignoring case.
func (s *Set) IsCommon(pw string) bool {
	if s == nil {
		return false
	}
	_, ok := s.CommonPasswords[strings.ToLower(pw)]
	return ok
}

var (
	defaultOnce sync.Once
	defaultSet  *Set
)

// Default returns the process-wide set built from the embedded lists.
func Default() *Set {
	defaultOnce.Do(func() {
		defaultSet = &Set{
			Words:            normalizeWords(parseList(builtinWords)),
			CommonPasswords:  toSet(parseList(builtinCommon)),
			KeyboardPatterns: lowerAll(parseList(builtinKeyboard)),
			Symbols:          dedupe(parseList(builtinSymbols)),
		}
	})
	return defaultSet
}

// New assembles a Set from in-memory lists, applying the same normalisation
// as the file loaders. It is mostly useful in tests.
func New(words, common, keyboard, symbols []string) *Set {
	return &Set{
		Words:            normalizeWords(words),
		CommonPasswords:  toSet(common),
		KeyboardPatterns: lowerAll(keyboard),
		Symbols:          dedupe(symbols),
	}
}

// parseList splits a newline separated list. Blank lines are skipped, as are
// comment lines: a line starting with '#' that has more than one character.
// A lone "#" is kept so it can appear in the symbol alphabet.
func parseList(data string) []string {
	var out []string
	for _, line := range strings.Split(data, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if strings.HasPrefix(line, "#") && utf8.RuneCountInString(line) > 1 {
			continue
		}
		out = append(out, line)
	}
	return out
}

func normalizeWords(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, w := range in {
		w = strings.ToLower(strings.TrimSpace(w))
		if utf8.RuneCountInString(w) < MinWordLen {
			continue
		}
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

func toSet(in []string) map[string]struct{} {
	out := make(map[string]struct{}, len(in))
	for _, p := range in {
		out[strings.ToLower(p)] = struct{}{}
	}
	return out
}

func lowerAll(in []string) []string {
	out := make([]string, 0, len(in))
	for _, p := range in {
		if p = strings.ToLower(strings.TrimSpace(p)); p != "" {
			out = append(out, p)
		}
	}
	return out
}

func dedupe(in []string) []string {
	seen := make(map[string]struct{}, len(in))
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s == "" {
			continue
		}
		if _, ok := seen[s]; ok {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}
