// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"regexp"
	"strings"
	"unicode/utf8"

	"github.com/bkearan/passwordclarity/internal/refdata"
)

// MinLength is the length below which a password is reported as too short.
const MinLength = 8

// dictionaryMinLen: only words strictly longer than 3 runes count as hits.
const dictionaryMinLen = 4

var sequentialRuns = [...]string{"012", "123", "234", "345", "456", "567", "678", "789", "890"}

// predictablePatterns run against the lowercased password, first match wins.
var predictablePatterns = []*regexp.Regexp{
	regexp.MustCompile(`\b(19|20)\d{2}\b`),
	regexp.MustCompile(`\b(jan|feb|mar|apr|may|jun|jul|aug|sep|oct|nov|dec)`),
	regexp.MustCompile(`\b(monday|tuesday|wednesday|thursday|friday|saturday|sunday)`),
	regexp.MustCompile(`\b(password|login|admin|user|guest|test|demo)\b`),
}

// Detect runs the full rule battery against s using the default English
// messages. Findings come back in rule order.
func Detect(s string, ref *refdata.Set) []Finding {
	return detect(s, ref, DefaultMessage)
}

func detect(s string, ref *refdata.Set, msg MessageFunc) []Finding {
	if s == "" {
		return nil
	}
	if ref == nil {
		ref = &refdata.Set{}
	}

	var out []Finding
	add := func(k Kind, match string) {
		out = append(out, Finding{Kind: k, Severity: k.Severity(), Message: msg(k, match), Match: match})
	}

	lower := strings.ToLower(s)

	if ref.IsCommon(s) {
		add(CommonPassword, lower)
	}
	if m, ok := firstContained(lower, ref.KeyboardPatterns, 0); ok {
		add(KeyboardPattern, m)
	}
	if m, ok := firstContained(s, sequentialRuns[:], 0); ok {
		add(SequentialDigits, m)
	}
	if m, ok := repeatedRun(s, 3); ok {
		add(RepeatedCharacter, m)
	}
	if m, ok := firstContained(lower, ref.Words, dictionaryMinLen); ok {
		add(DictionaryWord, m)
	}
	if m, ok := predictable(lower); ok {
		add(PredictablePattern, m)
	}
	if utf8.RuneCountInString(s) < MinLength {
		add(TooShort, "")
	}

	c := Classify(s)
	if !c.Has(Capital) {
		add(MissingUppercase, "")
	}
	if !c.Has(Lower) {
		add(MissingLowercase, "")
	}
	if !c.Has(Number) {
		add(MissingDigit, "")
	}
	if !c.Has(Symbol) {
		add(MissingSymbol, "")
	}
	return out
}

// firstContained returns the first needle, in list order, that occurs in s.
// Needles shorter than minLen runes are ignored.
func firstContained(s string, needles []string, minLen int) (string, bool) {
	for _, n := range needles {
		if n == "" || utf8.RuneCountInString(n) < minLen {
			continue
		}
		if strings.Contains(s, n) {
			return n, true
		}
	}
	return "", false
}

// repeatedRun finds the first rune repeated at least n times in a row and
// returns exactly n copies of it.
func repeatedRun(s string, n int) (string, bool) {
	var prev rune
	run := 0
	for i, r := range s {
		if i > 0 && r == prev {
			run++
		} else {
			prev, run = r, 1
		}
		if run >= n {
			return strings.Repeat(string(r), n), true
		}
	}
	return "", false
}

func predictable(lower string) (string, bool) {
	for _, re := range predictablePatterns {
		if m := re.FindString(lower); m != "" {
			return m, true
		}
	}
	return "", false
}
