// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// MaxScore is the upper bound of every score.
const MaxScore = 100

// ErrUnknownProfile is returned when a profile name is not registered.
var ErrUnknownProfile = errors.New("unknown scoring profile")

// Profile is a named set of scoring constants.
type Profile struct {
	Name string
	// LengthWeight is the number of points each character is worth.
	LengthWeight int
	// LengthCap bounds the length component.
	LengthCap int
	// DiversityBonus is awarded once per category present.
	DiversityBonus int
}

func (p Profile) String() string { return p.Name }

// MarshalText renders the profile by name, so configs and JSON reports carry
// "strict" rather than the raw constants.
func (p Profile) MarshalText() ([]byte, error) { return []byte(p.Name), nil }

var (
	// Strict is the pattern-aware calibration: 3 points per character.
	Strict = Profile{Name: "strict", LengthWeight: 3, LengthCap: 40, DiversityBonus: 5}
	// Lenient is the earlier calibration: 4 points per character.
	Lenient = Profile{Name: "lenient", LengthWeight: 4, LengthCap: 40, DiversityBonus: 5}
)

// DefaultProfile is used when no profile is configured.
var DefaultProfile = Strict

var profiles = map[string]Profile{
	Strict.Name:  Strict,
	Lenient.Name: Lenient,
}

// ProfileByName looks up a profile, ignoring case and surrounding space.
func ProfileByName(name string) (Profile, error) {
	p, ok := profiles[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q (valid: %s)", ErrUnknownProfile, name, strings.Join(ProfileNames(), ", "))
	}
	return p, nil
}

// ProfileNames returns the registered profile names in sorted order.
func ProfileNames() []string {
	names := make([]string, 0, len(profiles))
	for n := range profiles {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}

// category caps: points per character and the ceiling for each bucket.
var categoryPoints = [...]struct{ per, limit int }{
	Capital: {2, 10},
	Lower:   {2, 10},
	Number:  {2, 10},
	Symbol:  {3, 15},
}

// penalties are subtracted once per kind, however often it appears.
var penalties = map[Kind]int{
	CommonPassword:    30,
	KeyboardPattern:   15,
	SequentialDigits:  15,
	RepeatedCharacter: 10,
	DictionaryWord:    5,
}

// Penalty returns the points deducted for a finding kind.
func Penalty(k Kind) int { return penalties[k] }

// Score combines the category counts and findings into a value in [0, 100].
func Score(c Counts, findings []Finding, p Profile) int {
	length := c.Len()
	if length == 0 {
		return 0
	}

	score := min(length*p.LengthWeight, p.LengthCap)
	for _, cat := range Categories {
		if n := c.Of(cat); n > 0 {
			pts := categoryPoints[cat]
			score += min(n*pts.per, pts.limit)
		}
	}
	score += c.Kinds() * p.DiversityBonus

	seen := make(map[Kind]bool, len(findings))
	penalty := 0
	for _, f := range findings {
		if seen[f.Kind] {
			continue
		}
		seen[f.Kind] = true
		penalty += penalties[f.Kind]
	}

	return clamp(score-penalty, 0, MaxScore)
}

func clamp(v, lo, hi int) int {
	return max(lo, min(v, hi))
}
