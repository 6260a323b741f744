// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"github.com/bkearan/passwordclarity/internal/refdata"
)

// Result is the full evaluation of one password.
type Result struct {
	Score    int       `json:"score"`
	Counts   Counts    `json:"counts"`
	Findings []Finding `json:"findings"`
}

// Band is the coarse strength bucket of the result's score.
func (r Result) Band() Band { return BandOf(r.Score) }

// Warnings returns the findings with Warning severity, in order.
func (r Result) Warnings() []Finding { return r.filter(Warning) }

// Tips returns the findings with Tip severity, in order.
func (r Result) Tips() []Finding { return r.filter(Tip) }

func (r Result) filter(sev Severity) []Finding {
	var out []Finding
	for _, f := range r.Findings {
		if f.Severity == sev {
			out = append(out, f)
		}
	}
	return out
}

// Analyzer evaluates passwords against a fixed reference set and profile.
// It holds no mutable state and may be shared between goroutines.
type Analyzer struct {
	ref     *refdata.Set
	profile Profile
	message MessageFunc
}

// Option customises an Analyzer.
type Option func(*Analyzer)

// WithMessages replaces the built-in English finding messages.
func WithMessages(fn MessageFunc) Option {
	return func(a *Analyzer) {
		if fn != nil {
			a.message = fn
		}
	}
}

// NewAnalyzer returns an analyzer for the given reference data and profile.
// A nil ref falls back to refdata.Default(); a zero profile to DefaultProfile.
func NewAnalyzer(ref *refdata.Set, p Profile, opts ...Option) *Analyzer {
	if ref == nil {
		ref = refdata.Default()
	}
	if p == (Profile{}) {
		p = DefaultProfile
	}
	a := &Analyzer{ref: ref, profile: p, message: DefaultMessage}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Profile returns the scoring profile in use.
func (a *Analyzer) Profile() Profile { return a.profile }

// Detect runs the rule battery with the analyzer's messages.
func (a *Analyzer) Detect(s string) []Finding {
	return detect(s, a.ref, a.message)
}

// Evaluate classifies, detects and scores s in one call.
func (a *Analyzer) Evaluate(s string) Result {
	counts := Classify(s)
	findings := a.Detect(s)
	return Result{
		Score:    Score(counts, findings, a.profile),
		Counts:   counts,
		Findings: findings,
	}
}
