// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"strings"

	"github.com/bkearan/passwordclarity/internal/i18n"
	"github.com/bkearan/passwordclarity/internal/strength"
	"github.com/charmbracelet/x/ansi"
)

const maskRune = "•"

// renderCategories colours every character of s by its category. With mask
// set, each character is replaced by a bullet that still carries the colour.
func renderCategories(s string, mask bool) string {
	var b strings.Builder
	for _, r := range s {
		ch := string(r)
		if mask {
			ch = maskRune
		}
		b.WriteString(categoryStyles[strength.ClassifyChar(r)].Render(ch))
	}
	return b.String()
}

// renderScore renders "Strength: N/100 (band)" in the band colour.
func renderScore(res strength.Result) string {
	band := res.Band()
	label := i18n.T("tui.strength", res.Score) + " (" + i18n.T("band."+band.String()) + ")"
	return bandStyles[band].Render(label)
}

// renderCounts renders the per-category counters.
func renderCounts(c strength.Counts) string {
	return i18n.T("cli.counts", c.Capitals, c.Lowers, c.Numbers, c.Symbols)
}

// renderWarnings joins at most max findings and cuts the line to width
// cells. A width of zero or less leaves the line untouched.
func renderWarnings(findings []strength.Finding, max, width int) string {
	line := i18n.Summary(findings, max)
	if width > 0 {
		line = ansi.Truncate(line, width, "…")
	}
	return line
}
