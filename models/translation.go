package models

// TranslationRequest asks the gateway to translate text into a display language
type TranslationRequest struct {
	Text           string   `json:"text"`
	TargetLanguage Language `json:"targetLanguage"`
	Context        string   `json:"context,omitempty"`
}

// TranslationResponse is the result of a translation
type TranslationResponse struct {
	TranslatedText   string   `json:"translatedText"`
	DetectedLanguage string   `json:"detectedLanguage,omitempty"`
	Confidence       *float64 `json:"confidence,omitempty"`
}

// GenerateAction selects what the generate endpoint does with the prompt
type GenerateAction string

const (
	ActionGenerate GenerateAction = "generate"
	ActionImprove  GenerateAction = "improve"
)

// GenerateRequest is the body of the generate endpoint
type GenerateRequest struct {
	Prompt   string         `json:"prompt"`
	Context  string         `json:"context,omitempty"`
	Action   GenerateAction `json:"action,omitempty"`
	Language Language       `json:"language,omitempty"`
}

// GenerateResponse is the reply of the generate endpoint
type GenerateResponse struct {
	Response string `json:"response"`
}
