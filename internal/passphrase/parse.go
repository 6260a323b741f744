// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package passphrase

import (
	"errors"
	"strconv"
	"strings"

	"github.com/bkearan/passwordclarity/internal/refdata"
)

// ErrNoTemplate is returned by Parse when no template shape fits.
var ErrNoTemplate = errors.New("passphrase: text does not match any template")

// Parts are the pieces a passphrase was assembled from. Words are lowercase;
// Words[1] is the one rendered upper-case.
type Parts struct {
	Words   [3]string
	Numbers [2]int
	Symbols [2]string
}

// Parse splits text back into its parts, trying each template in order. Every
// word must come from ref.Words and every symbol from ref.Symbols.
func Parse(text string, ref *refdata.Set) (Template, Parts, error) {
	if ref == nil {
		ref = refdata.Default()
	}
	for _, tpl := range Templates {
		var p Parts
		if matchLayout(text, layouts[tpl], ref, &p) {
			return tpl, p, nil
		}
	}
	return 0, Parts{}, ErrNoTemplate
}

// matchLayout consumes text slot by slot, backtracking over ambiguous
// prefixes.
func matchLayout(text string, layout []part, ref *refdata.Set, p *Parts) bool {
	if len(layout) == 0 {
		return text == ""
	}
	slot, rest := layout[0], layout[1:]

	switch slot {
	case word1, word2, word3:
		for _, w := range ref.Words {
			candidate := w
			if slot == word2 {
				candidate = strings.ToUpper(w)
			}
			if !strings.HasPrefix(text, candidate) {
				continue
			}
			p.Words[slot-word1] = w
			if matchLayout(text[len(candidate):], rest, ref, p) {
				return true
			}
		}
	case num1, num2:
		if len(text) < 2 {
			return false
		}
		n, err := strconv.Atoi(text[:2])
		if err != nil || n < minNumber || n > maxNumber {
			return false
		}
		p.Numbers[slot-num1] = n
		return matchLayout(text[2:], rest, ref, p)
	case sym1, sym2:
		for _, s := range ref.Symbols {
			if !strings.HasPrefix(text, s) {
				continue
			}
			p.Symbols[slot-sym1] = s
			if matchLayout(text[len(s):], rest, ref, p) {
				return true
			}
		}
	}
	return false
}
