// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

// Band is a coarse bucket for presenting a score.
type Band int

const (
	VeryWeak Band = iota // below 30
	Weak                 // 30-59
	Good                 // 60-79
	Strong               // 80 and above
)

func (b Band) String() string {
	switch b {
	case VeryWeak:
		return "very_weak"
	case Weak:
		return "weak"
	case Good:
		return "good"
	default:
		return "strong"
	}
}

// MarshalText makes bands render by name in JSON.
func (b Band) MarshalText() ([]byte, error) { return []byte(b.String()), nil }

// BandOf maps a score to its band.
func BandOf(score int) Band {
	switch {
	case score < 30:
		return VeryWeak
	case score < 60:
		return Weak
	case score < 80:
		return Good
	default:
		return Strong
	}
}

// Summarize returns the rendered text of at most max findings and the number
// of findings left out. A max of zero or less keeps everything.
func Summarize(findings []Finding, max int) (shown []string, more int) {
	if max <= 0 || max > len(findings) {
		max = len(findings)
	}
	shown = make([]string, 0, max)
	for _, f := range findings[:max] {
		shown = append(shown, f.String())
	}
	return shown, len(findings) - max
}
