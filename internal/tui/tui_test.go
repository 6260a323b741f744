// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"math/rand/v2"
	"strings"
	"testing"

	"github.com/bkearan/passwordclarity/internal/i18n"
	"github.com/bkearan/passwordclarity/internal/passphrase"
	"github.com/bkearan/passwordclarity/internal/state"
	"github.com/bkearan/passwordclarity/internal/strength"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func newTestModel(t *testing.T, opts Options) model {
	t.Helper()
	i18n.Init("en")
	if opts.Copy == nil {
		opts.Copy = func(string) error { return nil }
	}
	return newModel(opts)
}

func typeText(m model, s string) model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)})
	return next.(model)
}

func press(m model, k tea.KeyType) (model, tea.Cmd) {
	next, cmd := m.Update(tea.KeyMsg{Type: k})
	return next.(model), cmd
}

func TestModel_EvaluatesOnEveryEdit(t *testing.T) {
	m := newTestModel(t, Options{MaxWarnings: 3})
	if m.result.Score != 0 {
		t.Fatalf("empty input should score 0, got %d", m.result.Score)
	}

	m = typeText(m, "Kitchen#2024")
	if m.result.Score != 74 {
		t.Fatalf("expected score 74, got %d", m.result.Score)
	}
	view := m.View()
	for _, want := range []string{"Strength: 74/100", "good", "Capital: 1", "Contains dictionary word"} {
		if !strings.Contains(view, want) {
			t.Fatalf("view missing %q:\n%s", want, view)
		}
	}

	m, _ = press(m, tea.KeyBackspace)
	if m.input.Value() != "Kitchen#202" {
		t.Fatalf("unexpected value after backspace: %q", m.input.Value())
	}
	if want := strength.NewAnalyzer(nil, strength.Strict).Evaluate("Kitchen#202").Score; m.result.Score != want {
		t.Fatalf("result should be recomputed after an edit: got %d, want %d", m.result.Score, want)
	}
}

func TestModel_WarningsOverflow(t *testing.T) {
	m := newTestModel(t, Options{MaxWarnings: 3})
	m = typeText(m, "aaaa")
	view := m.View()
	if !strings.Contains(view, "+2 more issues") {
		t.Fatalf("expected overflow marker:\n%s", view)
	}
}

func TestModel_WarningsTruncatedToWidth(t *testing.T) {
	m := newTestModel(t, Options{MaxWarnings: 3})
	next, _ := m.Update(tea.WindowSizeMsg{Width: 40, Height: 20})
	m = typeText(next.(model), "aaaa")
	for _, line := range strings.Split(m.View(), "\n") {
		if strings.Contains(line, "WARNING") && ansi.StringWidth(strings.TrimSpace(line)) > 36 {
			t.Fatalf("warnings line not truncated: %q", line)
		}
	}
}

func TestModel_AcceptStoresPassword(t *testing.T) {
	state.PasswordCache.Clear()
	m := newTestModel(t, Options{})
	m = typeText(m, "hunter2")
	m, cmd := press(m, tea.KeyEnter)
	if !m.accepted || cmd == nil {
		t.Fatalf("enter should accept and quit")
	}
	s, ok := state.PasswordCache.Take()
	if !ok || string(s.Bytes()) != "hunter2" {
		t.Fatalf("accepted password not cached: ok=%v", ok)
	}
}

func TestModel_AcceptEmptyPassword(t *testing.T) {
	state.PasswordCache.Clear()
	m := newTestModel(t, Options{})
	press(m, tea.KeyEnter)
	s, ok := state.PasswordCache.Take()
	if !ok || s.Len() != 0 {
		t.Fatalf("an accepted empty password should be distinguishable from cancel")
	}
}

func TestModel_CancelLeavesCacheEmpty(t *testing.T) {
	state.PasswordCache.Clear()
	m := newTestModel(t, Options{})
	m = typeText(m, "secret")
	m, cmd := press(m, tea.KeyEsc)
	if !m.cancelled || cmd == nil {
		t.Fatalf("esc should cancel and quit")
	}
	if _, ok := state.PasswordCache.Take(); ok {
		t.Fatalf("cancel must not store a password")
	}
}

func TestModel_GenerateUseAndCopy(t *testing.T) {
	var copied string
	gen := passphrase.New(nil, rand.NewPCG(5, 6))
	m := newTestModel(t, Options{
		Generator: gen,
		Copy:      func(s string) error { copied = s; return nil },
	})

	m, _ = press(m, tea.KeyCtrlG)
	if m.suggestion.Text == "" {
		t.Fatalf("ctrl+g should produce a suggestion")
	}
	if !strings.Contains(m.View(), m.suggestion.Text) {
		t.Fatalf("suggestion should be shown")
	}

	m, _ = press(m, tea.KeyCtrlY)
	if copied != m.suggestion.Text || !strings.Contains(m.View(), "copied") {
		t.Fatalf("ctrl+y should copy the suggestion, got %q", copied)
	}

	m, _ = press(m, tea.KeyCtrlU)
	if m.input.Value() != m.suggestion.Text {
		t.Fatalf("ctrl+u should adopt the suggestion")
	}
	if m.result.Score == 0 {
		t.Fatalf("adopted suggestion should be evaluated")
	}
}

func TestModel_CopyFailureIsReported(t *testing.T) {
	m := newTestModel(t, Options{
		Generator: passphrase.New(nil, rand.NewPCG(1, 1)),
		Copy:      func(string) error { return errors.New("no display") },
	})
	m, _ = press(m, tea.KeyCtrlG)
	m, _ = press(m, tea.KeyCtrlY)
	if !m.statusErr || !strings.Contains(m.View(), "no display") {
		t.Fatalf("copy failure should be shown: %q", m.status)
	}
}

func TestModel_GenerateWithoutGenerator(t *testing.T) {
	m := newTestModel(t, Options{})
	m, _ = press(m, tea.KeyCtrlG)
	if !m.statusErr || m.suggestion.Text != "" {
		t.Fatalf("missing generator should surface an error")
	}
}

func TestModel_RevealToggle(t *testing.T) {
	m := newTestModel(t, Options{Mask: true})
	m = typeText(m, "Zz9!")
	if strings.Contains(m.View(), "Zz9!") {
		t.Fatalf("masked view must not show the password")
	}
	m, _ = press(m, tea.KeyCtrlR)
	if m.masked || !strings.Contains(m.View(), "Zz9!") {
		t.Fatalf("ctrl+r should reveal the password")
	}
}

func TestRenderCategories_Masked(t *testing.T) {
	got := ansi.Strip(renderCategories("aB3$", true))
	if got != strings.Repeat(maskRune, 4) {
		t.Fatalf("got %q", got)
	}
	if got := ansi.Strip(renderCategories("aB3$", false)); got != "aB3$" {
		t.Fatalf("got %q", got)
	}
}
