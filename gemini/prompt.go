package gemini

import (
	"fmt"
	"strings"

	"tablecomm/models"
)

// BuildTranslatePrompt embeds the target language name and optional domain context
func BuildTranslatePrompt(req models.TranslationRequest) string {
	var b strings.Builder
	fmt.Fprintf(&b, "Translate the following text to %s: \"%s\"", req.TargetLanguage.DisplayName(), req.Text)

	if req.Context != "" {
		fmt.Fprintf(&b, "\n\nContext: This is for restaurant staff communicating with foreign customers. %s", req.Context)
	}

	b.WriteString("\n\nPlease provide only the translated text without any additional explanations or quotes.")
	return b.String()
}

// BuildGeneratePrompt asks for a short staff reply
func BuildGeneratePrompt(prompt, extra string) string {
	var b strings.Builder
	fmt.Fprintf(&b, "You are a helpful restaurant staff assistant. Generate a polite, clear response for: \"%s\"", prompt)

	if extra != "" {
		fmt.Fprintf(&b, "\n\nContext: %s", extra)
	}

	b.WriteString("\n\nKeep the response concise and friendly. Focus on clear communication.")
	return b.String()
}

// BuildImprovePrompt asks for a more polite version of text
func BuildImprovePrompt(text string, lang models.Language) string {
	return fmt.Sprintf("Improve this restaurant response to make it more polite, clear, and culturally appropriate for %s speakers: \"%s\"\n\nPlease provide only the improved response without quotes or explanations.",
		lang.DisplayName(), text)
}
