package models

import "strings"

// Language is a guest-facing display language
type Language string

const (
	Japanese Language = "ja"
	English  Language = "en"
	Spanish  Language = "es"
)

// DefaultLanguage is used until a preference has been stored
const DefaultLanguage = Japanese

// SupportedLanguages lists languages in toggle order
var SupportedLanguages = []Language{Japanese, English, Spanish}

// ParseLanguage validates a language code
func ParseLanguage(code string) (Language, bool) {
	switch Language(strings.ToLower(strings.TrimSpace(code))) {
	case Japanese:
		return Japanese, true
	case English:
		return English, true
	case Spanish:
		return Spanish, true
	}
	return "", false
}

// DisplayName returns the English name of the language, as used in model prompts
func (l Language) DisplayName() string {
	switch l {
	case English:
		return "English"
	case Spanish:
		return "Spanish"
	default:
		return "Japanese"
	}
}

// NativeName returns the label shown on the language switcher
func (l Language) NativeName() string {
	switch l {
	case English:
		return "English"
	case Spanish:
		return "Español"
	default:
		return "日本語"
	}
}

func (l Language) String() string {
	return string(l)
}
