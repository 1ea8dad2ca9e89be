package gemini

import (
	"strings"

	"tablecomm/models"
)

const spanishMarks = "áéíóúüñ¿¡"

// DetectLanguage guesses the language of text from its characters. The kana
// blocks (U+3040-U+30FF) or CJK ideographs mean Japanese, Spanish accents or inverted punctuation mean
// Spanish, anything else is English. The result is informational only.
func DetectLanguage(text string) models.Language {
	for _, r := range text {
		if (r >= 0x3040 && r <= 0x30ff) || (r >= 0x4e00 && r <= 0x9faf) {
			return models.Japanese
		}
	}
	if strings.ContainsAny(text, spanishMarks) {
		return models.Spanish
	}
	return models.English
}
