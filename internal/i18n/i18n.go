// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

// package i18n provides localisation for PasswordClarity's user-facing
// text. It uses the go-i18n library over YAML translation files embedded in
// the binary. Character classification is never localised, only messages.
package i18n

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"
	"strings"
	"sync"

	"github.com/bkearan/passwordclarity/internal/strength"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
	"gopkg.in/yaml.v3"
)

// localeFS embeds the YAML translation files from the 'locales' directory
// into the application binary.
//
//go:embed locales/*.yaml
var localeFS embed.FS

var (
	mu        sync.RWMutex
	bundle    *i18n.Bundle
	localizer *i18n.Localizer
	current   string
	available []string
)

// Init initializes the bundle and sets up the localizer for lang. Unknown
// languages fall back to English message by message.
func Init(lang string) {
	b := i18n.NewBundle(language.English)
	b.RegisterUnmarshalFunc("yaml", yaml.Unmarshal)

	var langs []string
	files, _ := fs.ReadDir(localeFS, "locales")
	for _, f := range files {
		if f.IsDir() {
			continue
		}
		data, err := localeFS.ReadFile("locales/" + f.Name())
		if err != nil {
			continue
		}
		if _, err := b.ParseMessageFileBytes(data, f.Name()); err != nil {
			continue
		}
		langs = append(langs, strings.TrimSuffix(f.Name(), ".yaml"))
	}
	sort.Strings(langs)

	if lang == "" {
		lang = "en"
	}

	mu.Lock()
	defer mu.Unlock()
	bundle = b
	localizer = i18n.NewLocalizer(b, lang)
	current = lang
	available = langs
}

// SetLang changes the active language.
func SetLang(lang string) {
	Init(lang)
}

// GetLang returns the active language tag.
func GetLang() string {
	mu.RLock()
	defer mu.RUnlock()
	return current
}

// AvailableLocales lists the languages that ship with the binary.
func AvailableLocales() []string {
	ensure()
	mu.RLock()
	defer mu.RUnlock()
	return append([]string(nil), available...)
}

func ensure() {
	mu.RLock()
	ready := localizer != nil
	mu.RUnlock()
	if !ready {
		Init("en")
	}
}

// T translates a message by its ID. Extra arguments are applied fmt-style.
// If the ID is unknown, the ID itself is returned.
func T(messageID string, args ...any) string {
	ensure()
	mu.RLock()
	l := localizer
	mu.RUnlock()

	msg, err := l.Localize(&i18n.LocalizeConfig{MessageID: messageID})
	if err != nil {
		msg = messageID
	}
	if len(args) > 0 {
		return fmt.Sprintf(msg, args...)
	}
	return msg
}

// FindingMessage is a strength.MessageFunc backed by the active locale.
func FindingMessage(k strength.Kind, _ string) string {
	id := "finding." + k.String()
	if msg := T(id); msg != id {
		return msg
	}
	return strength.DefaultMessage(k, "")
}

// RenderFinding formats a finding with a localised severity label.
func RenderFinding(f strength.Finding) string {
	return T("severity."+strings.ToLower(string(f.Severity))) + ": " + f.Message
}

// Summary renders at most max findings joined by " | ", followed by an
// overflow marker when some were left out.
func Summary(findings []strength.Finding, max int) string {
	shown, more := strength.Summarize(findings, max)
	parts := make([]string, 0, len(shown)+1)
	for i := range shown {
		parts = append(parts, RenderFinding(findings[i]))
	}
	if more > 0 {
		parts = append(parts, T("tui.more_issues", more))
	}
	return strings.Join(parts, " | ")
}
