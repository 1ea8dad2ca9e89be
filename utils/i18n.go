package utils

import (
	"tablecomm/locales"

	"github.com/BurntSushi/toml"
	"github.com/nicksnyder/go-i18n/v2/i18n"
	"golang.org/x/text/language"
)

var (
	// Bundle is the global translation bundle
	Bundle *i18n.Bundle
	// Localizer is the default localizer
	Localizer *i18n.Localizer
)

// InitI18n initializes the i18n system with the embedded message files.
// defaultLang is the staff UI language used when no localizer is given.
func InitI18n(defaultLang string) error {
	Bundle = i18n.NewBundle(language.Japanese)
	Bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	for _, file := range locales.Files {
		if _, err := Bundle.LoadMessageFileFS(locales.FS, file); err != nil {
			Log.Warn("Failed to load locale %s: %v", file, err)
		}
	}

	Localizer = GetLocalizer(defaultLang)

	Log.Info("i18n system initialized (ui language: %s)", defaultLang)
	return nil
}

// GetLocalizer returns a localizer for the specified language
func GetLocalizer(lang string) *i18n.Localizer {
	if lang == "" {
		lang = "ja"
	}
	if Bundle == nil {
		if err := InitI18n(lang); err != nil {
			Log.Error("i18n init failed: %v", err)
		}
	}
	return i18n.NewLocalizer(Bundle, lang)
}

// T translates a message ID
func T(localizer *i18n.Localizer, messageID string) string {
	if localizer == nil {
		localizer = Localizer
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID: messageID,
	})
	if err != nil {
		Log.Debug("Translation error for '%s': %v", messageID, err)
		return messageID
	}
	return msg
}

// TWithData translates a message ID with template data
func TWithData(localizer *i18n.Localizer, messageID string, data map[string]interface{}) string {
	if localizer == nil {
		localizer = Localizer
	}
	msg, err := localizer.Localize(&i18n.LocalizeConfig{
		MessageID:    messageID,
		TemplateData: data,
	})
	if err != nil {
		Log.Debug("Translation error for '%s': %v", messageID, err)
		return messageID
	}
	return msg
}
