// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package tui

import (
	"errors"
	"io"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/bkearan/passwordclarity/internal/i18n"
	"github.com/bkearan/passwordclarity/internal/logging"
	"github.com/bkearan/passwordclarity/internal/passphrase"
	"github.com/bkearan/passwordclarity/internal/state"
	"github.com/bkearan/passwordclarity/internal/strength"
	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// errNoGenerator is shown when suggestions are requested but not configured.
var errNoGenerator = errors.New("no passphrase generator configured")

// Options configure the password screen.
type Options struct {
	Analyzer  *strength.Analyzer
	Generator *passphrase.Generator
	// MaxWarnings caps the findings shown at once; zero shows all.
	MaxWarnings int
	// Mask starts the input hidden.
	Mask bool
	// Copy places text on the clipboard. Defaults to the system clipboard.
	Copy func(string) error
	// Output is where the program draws. Defaults to stderr so stdout stays
	// free for the accepted password.
	Output io.Writer
}

// model is the single-screen password analyzer.
type model struct {
	opts  Options
	input textinput.Model
	keys  KeyMap
	help  help.Model

	result     strength.Result
	suggestion passphrase.Passphrase
	status     string
	statusErr  bool
	width      int
	masked     bool

	accepted  bool
	cancelled bool
}

func newModel(opts Options) model {
	if opts.Analyzer == nil {
		opts.Analyzer = strength.NewAnalyzer(nil, strength.DefaultProfile, strength.WithMessages(i18n.FindingMessage))
	}
	if opts.Copy == nil {
		opts.Copy = clipboard.WriteAll
	}

	ti := textinput.New()
	ti.Placeholder = i18n.T("tui.placeholder")
	ti.Prompt = "> "
	ti.CharLimit = 256
	ti.Width = 48
	ti.Focus()

	m := model{
		opts:  opts,
		input: ti,
		keys:  newKeyMap(),
		help:  help.New(),
	}
	m.setMask(opts.Mask)
	m.evaluate()
	return m
}

func (m *model) setMask(on bool) {
	m.masked = on
	if on {
		m.input.EchoMode = textinput.EchoPassword
		m.input.EchoCharacter = '•'
	} else {
		m.input.EchoMode = textinput.EchoNormal
	}
}

func (m *model) evaluate() {
	m.result = m.opts.Analyzer.Evaluate(m.input.Value())
}

func (m *model) setStatus(text string, isErr bool) {
	m.status, m.statusErr = text, isErr
}

// Init starts the cursor blinking.
func (m model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles key presses; every edit re-runs the analysis.
func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.help.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, m.keys.Accept):
			state.PasswordCache.Set(append([]byte{}, m.input.Value()...))
			m.accepted = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Cancel):
			m.cancelled = true
			return m, tea.Quit

		case key.Matches(msg, m.keys.Generate):
			m.generate()
			return m, nil

		case key.Matches(msg, m.keys.Use):
			if m.suggestion.Text != "" {
				m.input.SetValue(m.suggestion.Text)
				m.input.CursorEnd()
				m.evaluate()
			}
			return m, nil

		case key.Matches(msg, m.keys.Copy):
			if m.suggestion.Text == "" {
				return m, nil
			}
			if err := m.opts.Copy(m.suggestion.Text); err != nil {
				logging.Debugf("clipboard write failed: %v", err)
				m.setStatus(i18n.T("tui.copy_failed", err), true)
			} else {
				m.setStatus(i18n.T("tui.copied"), false)
			}
			return m, nil

		case key.Matches(msg, m.keys.Reveal):
			m.setMask(!m.masked)
			return m, nil

		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		}
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() != before {
		m.evaluate()
		m.setStatus("", false)
	}
	return m, cmd
}

func (m *model) generate() {
	if m.opts.Generator == nil {
		m.setStatus(i18n.T("tui.generate_failed", errNoGenerator), true)
		return
	}
	pp, err := m.opts.Generator.Generate()
	if err != nil {
		m.setStatus(i18n.T("tui.generate_failed", err), true)
		return
	}
	m.suggestion = pp
	m.setStatus("", false)
}

// View renders the input, the live analysis and the help footer.
func (m model) View() string {
	var lines []string
	lines = append(lines, titleStyle.Render(i18n.T("tui.title")), "", m.input.View())

	if value := m.input.Value(); value != "" {
		lines = append(lines,
			"  "+renderCategories(value, m.masked),
			"",
			renderScore(m.result),
			renderCounts(m.result.Counts),
		)
		if len(m.result.Findings) > 0 {
			width := 0
			if m.width > 0 {
				// docStyle margins take four cells.
				width = m.width - 4
			}
			lines = append(lines, warningStyle.Render(renderWarnings(m.result.Findings, m.opts.MaxWarnings, width)))
		}
	}

	lines = append(lines, "")
	if m.suggestion.Text != "" {
		lines = append(lines, suggestionStyle.Render(i18n.T("tui.suggestion", m.suggestion.Text)))
	} else {
		lines = append(lines, helpStyle.Render(i18n.T("tui.suggestion_hint")))
	}

	if m.status != "" {
		style := successStyle
		if m.statusErr {
			style = errorStyle
		}
		lines = append(lines, style.Render(m.status))
	}

	lines = append(lines, "", m.help.View(m.keys))
	return docStyle.Render(strings.Join(lines, "\n"))
}

// Run shows the password screen until the user accepts or cancels. An
// accepted password is left in state.PasswordCache.
func Run(opts Options) error {
	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	// The program owns the terminal; keep log lines from tearing the view.
	logging.SetOutput(io.Discard)
	defer logging.SetOutput(os.Stderr)

	state.PasswordCache.Clear()
	if _, err := tea.NewProgram(newModel(opts), tea.WithOutput(out)).Run(); err != nil {
		return err
	}
	return nil
}
