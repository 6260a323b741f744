// Copyright (c) 2026 PasswordClarity Team
// PasswordClarity - password strength analyzer
// This source code is licensed under the MIT license found in the LICENSE file.

package strength

// Kind identifies which rule produced a finding.
type Kind int

const (
	CommonPassword Kind = iota
	KeyboardPattern
	SequentialDigits
	RepeatedCharacter
	DictionaryWord
	PredictablePattern
	TooShort
	MissingUppercase
	MissingLowercase
	MissingDigit
	MissingSymbol
)

var kindNames = [...]string{
	CommonPassword:     "common_password",
	KeyboardPattern:    "keyboard_pattern",
	SequentialDigits:   "sequential_digits",
	RepeatedCharacter:  "repeated_character",
	DictionaryWord:     "dictionary_word",
	PredictablePattern: "predictable_pattern",
	TooShort:           "too_short",
	MissingUppercase:   "missing_uppercase",
	MissingLowercase:   "missing_lowercase",
	MissingDigit:       "missing_digit",
	MissingSymbol:      "missing_symbol",
}

// String returns the stable snake_case identifier of the kind. It doubles as
// the message key suffix in the locale files.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}
	return kindNames[k]
}

// MarshalText makes kinds render by name in JSON.
func (k Kind) MarshalText() ([]byte, error) { return []byte(k.String()), nil }

// Severity separates hard warnings from advisory tips.
type Severity string

const (
	Warning Severity = "WARNING"
	Tip     Severity = "TIP"
)

// Severity reports the severity class of the kind. The missing-category
// findings are tips, everything else is a warning.
func (k Kind) Severity() Severity {
	switch k {
	case MissingUppercase, MissingLowercase, MissingDigit, MissingSymbol:
		return Tip
	default:
		return Warning
	}
}

// Finding is one detected weakness or tip.
type Finding struct {
	Kind     Kind     `json:"kind"`
	Severity Severity `json:"severity"`
	Message  string   `json:"message"`
	// Match is the literal text that triggered the rule, if any.
	Match string `json:"match,omitempty"`
}

// String renders the finding the way it is shown to users, e.g.
// "WARNING: Contains keyboard pattern".
func (f Finding) String() string {
	return string(f.Severity) + ": " + f.Message
}

// MessageFunc produces the human readable text for a finding.
type MessageFunc func(k Kind, match string) string

// DefaultMessage returns the built-in English message for a kind.
func DefaultMessage(k Kind, _ string) string {
	switch k {
	case CommonPassword:
		return "This is a commonly used password"
	case KeyboardPattern:
		return "Contains keyboard pattern"
	case SequentialDigits:
		return "Contains sequential numbers"
	case RepeatedCharacter:
		return "Contains repeated characters"
	case DictionaryWord:
		return "Contains dictionary word"
	case PredictablePattern:
		return "Contains predictable pattern"
	case TooShort:
		return "Password is too short (minimum 8 characters)"
	case MissingUppercase:
		return "Consider adding uppercase letters"
	case MissingLowercase:
		return "Consider adding lowercase letters"
	case MissingDigit:
		return "Consider adding numbers"
	case MissingSymbol:
		return "Consider adding symbols"
	default:
		return k.String()
	}
}

// Has reports whether any finding of kind k is present.
func Has(findings []Finding, k Kind) bool {
	for _, f := range findings {
		if f.Kind == k {
			return true
		}
	}
	return false
}
