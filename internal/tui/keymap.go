// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"github.com/bkearan/passwordclarity/internal/i18n"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap lists the bindings of the password screen. Everything else is
// forwarded to the text input.
type KeyMap struct {
	Accept   key.Binding
	Cancel   key.Binding
	Generate key.Binding
	Use      key.Binding
	Copy     key.Binding
	Reveal   key.Binding
	Help     key.Binding
}

func (km KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{km.Accept, km.Generate, km.Cancel, km.Help}
}

func (km KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{km.Accept, km.Cancel},
		{km.Generate, km.Use, km.Copy},
		{km.Reveal, km.Help},
	}
}

// *KeyMap implements help.KeyMap
var _ help.KeyMap = (*KeyMap)(nil)

// newKeyMap builds the bindings with help text in the active language.
func newKeyMap() KeyMap {
	return KeyMap{
		Accept: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", i18n.T("help.accept")),
		),
		Cancel: key.NewBinding(
			key.WithKeys("esc", "ctrl+c"),
			key.WithHelp("esc", i18n.T("help.cancel")),
		),
		Generate: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", i18n.T("help.generate")),
		),
		Use: key.NewBinding(
			key.WithKeys("ctrl+u"),
			key.WithHelp("ctrl+u", i18n.T("help.use")),
		),
		Copy: key.NewBinding(
			key.WithKeys("ctrl+y"),
			key.WithHelp("ctrl+y", i18n.T("help.copy")),
		),
		Reveal: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", i18n.T("help.reveal")),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", i18n.T("help.more")),
		),
	}
}
