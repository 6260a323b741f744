// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package i18n

import (
	"strings"
	"testing"

	"github.com/bkearan/passwordclarity/internal/strength"
	"github.com/google/go-cmp/cmp"
)

func TestT_FallsBackToID(t *testing.T) {
	Init("en")
	if got := T("no.such.key"); got != "no.such.key" {
		t.Fatalf("expected id fallback, got %q", got)
	}
}

func TestT_FormatsArguments(t *testing.T) {
	Init("en")
	if got := T("tui.strength", 42); got != "Strength: 42/100" {
		t.Fatalf("got %q", got)
	}
}

func TestAvailableLocales(t *testing.T) {
	Init("en")
	if diff := cmp.Diff([]string{"de", "en"}, AvailableLocales()); diff != "" {
		t.Fatalf("locales mismatch (-want +got):\n%s", diff)
	}
}

func TestFindingMessage_EveryKindTranslated(t *testing.T) {
	for _, lang := range []string{"en", "de"} {
		Init(lang)
		for k := strength.CommonPassword; k <= strength.MissingSymbol; k++ {
			if msg := T("finding." + k.String()); msg == "finding."+k.String() {
				t.Fatalf("%s: missing translation for %v", lang, k)
			}
		}
	}
	Init("en")
}

func TestFindingMessage_EnglishMatchesDefaults(t *testing.T) {
	Init("en")
	for k := strength.CommonPassword; k <= strength.MissingSymbol; k++ {
		if got, want := FindingMessage(k, ""), strength.DefaultMessage(k, ""); got != want {
			t.Fatalf("%v: got %q, want %q", k, got, want)
		}
	}
}

func TestUnknownLanguageFallsBackToEnglish(t *testing.T) {
	Init("xx")
	defer Init("en")
	if GetLang() != "xx" {
		t.Fatalf("GetLang = %q", GetLang())
	}
	if got := T("band.strong"); got != "strong" {
		t.Fatalf("expected English fallback, got %q", got)
	}
}

func TestSetLang_SwitchesMessages(t *testing.T) {
	Init("en")
	defer Init("en")
	SetLang("de")
	if GetLang() != "de" {
		t.Fatalf("GetLang = %q", GetLang())
	}
	if got := T("tui.strength", 42); got != "Stärke: 42/100" {
		t.Fatalf("got %q", got)
	}
}

func TestSummary_Overflow(t *testing.T) {
	Init("en")
	a := strength.NewAnalyzer(nil, strength.Strict, strength.WithMessages(FindingMessage))
	res := a.Evaluate("aaaa")
	got := Summary(res.Findings, 3)
	if !strings.HasPrefix(got, "WARNING: ") {
		t.Fatalf("summary should start with a warning: %q", got)
	}
	if strings.Count(got, " | ") < 3 || !strings.Contains(got, "more issues") {
		t.Fatalf("expected three findings plus an overflow marker: %q", got)
	}
}
