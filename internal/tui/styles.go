// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// package tui provides the interactive terminal front end for PasswordClarity.
// This file defines the shared lipgloss styles.
package tui

import (
	"github.com/bkearan/passwordclarity/internal/strength"
	"github.com/charmbracelet/lipgloss"
)

// colorPalette defines the core colors used in the TUI.
const (
	colorSubtle    = lipgloss.Color("240") // Muted gray
	colorHighlight = lipgloss.Color("81")  // Teal/cyan
	colorSpecial   = lipgloss.Color("208") // Orange
	colorError     = lipgloss.Color("196") // Bright red
	colorSuccess   = lipgloss.Color("40")  // Green
	colorFair      = lipgloss.Color("220") // Yellow
	colorLower     = lipgloss.Color("33")  // Blue
)

var (
	docStyle = lipgloss.NewStyle().Margin(1, 2)

	titleStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Bold(true)

	helpStyle    = lipgloss.NewStyle().Foreground(colorSubtle)
	errorStyle   = lipgloss.NewStyle().Foreground(colorError)
	successStyle = lipgloss.NewStyle().Foreground(colorSuccess)
	warningStyle = lipgloss.NewStyle().Foreground(colorSpecial)

	suggestionStyle = lipgloss.NewStyle().
			Foreground(colorHighlight).
			Italic(true)
)

// categoryStyles colour each character of the password by its category.
// Symbols keep the terminal's default colour.
var categoryStyles = map[strength.Category]lipgloss.Style{
	strength.Capital: lipgloss.NewStyle().Foreground(colorSuccess),
	strength.Lower:   lipgloss.NewStyle().Foreground(colorLower),
	strength.Number:  lipgloss.NewStyle().Foreground(colorError),
	strength.Symbol:  lipgloss.NewStyle(),
}

// bandStyles colour the strength label.
var bandStyles = map[strength.Band]lipgloss.Style{
	strength.VeryWeak: lipgloss.NewStyle().Foreground(colorError).Bold(true),
	strength.Weak:     lipgloss.NewStyle().Foreground(colorSpecial).Bold(true),
	strength.Good:     lipgloss.NewStyle().Foreground(colorFair).Bold(true),
	strength.Strong:   lipgloss.NewStyle().Foreground(colorSuccess).Bold(true),
}
