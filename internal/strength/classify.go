// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package strength implements the password analysis engine: character
// classification, weakness detection and scoring. Everything in here is
// pure; the only inputs besides the password are the read-only reference
// lists and a scoring profile.
package strength

// Category is one of the four mutually exclusive character buckets.
type Category int

const (
	Capital Category = iota
	Lower
	Number
	Symbol
)

// Categories lists every category in display order.
var Categories = [...]Category{Capital, Lower, Number, Symbol}

func (c Category) String() string {
	switch c {
	case Capital:
		return "capital"
	case Lower:
		return "lower"
	case Number:
		return "number"
	default:
		return "symbol"
	}
}

// ClassifyChar buckets a single rune. Only ASCII letters and digits get
// their own category; everything else, including whitespace and non-ASCII
// letters, is a Symbol.
func ClassifyChar(r rune) Category {
	switch {
	case r >= 'A' && r <= 'Z':
		return Capital
	case r >= 'a' && r <= 'z':
		return Lower
	case r >= '0' && r <= '9':
		return Number
	default:
		return Symbol
	}
}

// Counts holds per-category character totals for one string.
type Counts struct {
	Capitals int `json:"capitals"`
	Lowers   int `json:"lowers"`
	Numbers  int `json:"numbers"`
	Symbols  int `json:"symbols"`
}

// Classify counts the characters of s by category. The counts always sum to
// the number of runes in s.
func Classify(s string) Counts {
	var c Counts
	for _, r := range s {
		c.add(ClassifyChar(r))
	}
	return c
}

func (c *Counts) add(cat Category) {
	switch cat {
	case Capital:
		c.Capitals++
	case Lower:
		c.Lowers++
	case Number:
		c.Numbers++
	default:
		c.Symbols++
	}
}

// Of returns the count for one category.
func (c Counts) Of(cat Category) int {
	switch cat {
	case Capital:
		return c.Capitals
	case Lower:
		return c.Lowers
	case Number:
		return c.Numbers
	default:
		return c.Symbols
	}
}

// Has reports whether at least one character of the category was seen.
func (c Counts) Has(cat Category) bool { return c.Of(cat) > 0 }

// Len is the total number of characters counted.
func (c Counts) Len() int { return c.Capitals + c.Lowers + c.Numbers + c.Symbols }

// Kinds is the number of categories present.
func (c Counts) Kinds() int {
	n := 0
	for _, cat := range Categories {
		if c.Has(cat) {
			n++
		}
	}
	return n
}
