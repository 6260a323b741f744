// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// Package passphrase builds memorable random passphrases out of three words,
// two two-digit numbers and two symbols, arranged by one of three fixed
// templates.
package passphrase

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"strconv"
	"strings"
	"time"

	"github.com/bkearan/passwordclarity/internal/refdata"
)

// ErrConfig is returned when the reference data cannot support generation.
var ErrConfig = errors.New("passphrase: invalid reference data")

// Number bounds, inclusive.
const (
	minNumber = 10
	maxNumber = 99
)

// Template selects the order in which the parts are joined.
type Template int

const (
	// T1 is word+num+symbol+WORD+symbol+word+num.
	T1 Template = iota + 1
	// T2 is word+symbol+WORD+num+symbol+word+num.
	T2
	// T3 is word+num+symbol+WORD+num+symbol+word.
	T3
)

// Templates lists all templates in order.
var Templates = [...]Template{T1, T2, T3}

// part identifies one slot in a template.
type part int

const (
	word1 part = iota
	word2
	word3
	num1
	num2
	sym1
	sym2
)

var layouts = map[Template][]part{
	T1: {word1, num1, sym1, word2, sym2, word3, num2},
	T2: {word1, sym1, word2, num1, sym2, word3, num2},
	T3: {word1, num1, sym1, word2, num2, sym2, word3},
}

func (p part) label() string {
	switch p {
	case word1, word3:
		return "word"
	case word2:
		return "WORD"
	case num1, num2:
		return "num"
	default:
		return "symbol"
	}
}

// Pattern describes the template, e.g. "word+num+symbol+WORD+symbol+word+num".
func (t Template) Pattern() string {
	layout, ok := layouts[t]
	if !ok {
		return ""
	}
	labels := make([]string, len(layout))
	for i, p := range layout {
		labels[i] = p.label()
	}
	return strings.Join(labels, "+")
}

func (t Template) String() string {
	if _, ok := layouts[t]; !ok {
		return "unknown"
	}
	return "T" + strconv.Itoa(int(t))
}

// Passphrase is a generated phrase and the template that produced it.
type Passphrase struct {
	Text     string   `json:"text"`
	Template Template `json:"template"`
}

func (p Passphrase) String() string { return p.Text }

// Generator draws passphrases from a reference set. A Generator is not safe
// for concurrent use.
type Generator struct {
	ref *refdata.Set
	rnd *rand.Rand
}

// New returns a generator over ref using src for randomness. A nil src gets
// a time-seeded PCG source.
func New(ref *refdata.Set, src rand.Source) *Generator {
	if ref == nil {
		ref = refdata.Default()
	}
	if src == nil {
		seed := uint64(time.Now().UnixNano())
		src = rand.NewPCG(seed, seed>>1|1)
	}
	return &Generator{ref: ref, rnd: rand.New(src)}
}

// Generate composes one passphrase.
func (g *Generator) Generate() (Passphrase, error) {
	if len(g.ref.Words) == 0 {
		return Passphrase{}, fmt.Errorf("%w: word list is empty", ErrConfig)
	}
	if len(g.ref.Symbols) == 0 {
		return Passphrase{}, fmt.Errorf("%w: symbol alphabet is empty", ErrConfig)
	}

	parts := map[part]string{
		word1: g.pick(g.ref.Words),
		word2: strings.ToUpper(g.pick(g.ref.Words)),
		word3: g.pick(g.ref.Words),
		num1:  strconv.Itoa(g.number()),
		num2:  strconv.Itoa(g.number()),
		sym1:  g.pick(g.ref.Symbols),
		sym2:  g.pick(g.ref.Symbols),
	}
	tpl := Templates[g.rnd.IntN(len(Templates))]

	var b strings.Builder
	for _, p := range layouts[tpl] {
		b.WriteString(parts[p])
	}
	return Passphrase{Text: b.String(), Template: tpl}, nil
}

func (g *Generator) pick(list []string) string {
	return list[g.rnd.IntN(len(list))]
}

func (g *Generator) number() int {
	return minNumber + g.rnd.IntN(maxNumber-minNumber+1)
}
