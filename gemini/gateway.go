// Package gemini wraps the generative model behind the three operations the
// application needs: translate, generate and improve.
package gemini

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"tablecomm/config"
	"tablecomm/models"
	"tablecomm/utils"
)

// Gateway is the contract handlers and the menu pipeline depend on
type Gateway interface {
	Translate(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error)
	Generate(ctx context.Context, prompt, promptContext string) (string, error)
	Improve(ctx context.Context, text string, lang models.Language) (string, error)
}

var (
	// ErrNotConfigured is returned when no credentials were provided at startup
	ErrNotConfigured = errors.New("Gemini API is not configured")
	// ErrInvalidAPIKey is returned when the provider rejects the API key
	ErrInvalidAPIKey = errors.New("Invalid Gemini API key. Please check your GOOGLE_AI_API_KEY.")
	// ErrTranslationFailed hides provider details from callers
	ErrTranslationFailed = errors.New("Translation failed. Please try again later.")
	// ErrGenerationFailed hides provider details from callers
	ErrGenerationFailed = errors.New("Response generation failed. Please try again later.")
)

// Service is the Gateway implementation. A nil model means "not configured".
type Service struct {
	model   TextModel
	backend string
	hint    string
	log     *utils.Logger
}

// New selects the backend from configuration. Missing or unusable credentials
// leave the service unconfigured instead of failing startup.
func New(ctx context.Context, cfg config.GeminiConfig, breaker config.BreakerConfig) *Service {
	log := utils.Log.WithField("component", "gemini")
	mode := cfg.ResolvedGeminiMode()

	s := &Service{
		backend: mode,
		hint:    credentialsHint(mode),
		log:     log,
	}

	if !cfg.Configured() {
		log.Warn("%s. Gemini API features will not work.", s.notConfigured())
		return s
	}

	var (
		model TextModel
		err   error
	)
	switch mode {
	case config.ModeVertex:
		model, err = NewVertexModel(ctx, cfg.Project, cfg.Location, cfg.Model)
	default:
		model, err = NewStudioModel(ctx, cfg.APIKey, cfg.Model)
	}
	if err != nil {
		log.Error("Failed to create %s client, running unconfigured: %v", mode, err)
		return s
	}

	if breaker.Enabled {
		model = WithBreaker(model, breaker, log)
	}

	s.model = model
	log.Info("Gemini gateway ready (backend: %s, model: %s)", mode, cfg.Model)
	return s
}

// NewWithModel builds a service around an existing model; nil yields an unconfigured service
func NewWithModel(model TextModel) *Service {
	return &Service{
		model:   model,
		backend: config.ModeAPIKey,
		hint:    credentialsHint(config.ModeAPIKey),
		log:     utils.Log.WithField("component", "gemini"),
	}
}

// Configured reports whether a backend is available
func (s *Service) Configured() bool {
	return s.model != nil
}

// Backend returns the selected backend mode
func (s *Service) Backend() string {
	return s.backend
}

// Translate translates req.Text into req.TargetLanguage
func (s *Service) Translate(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
	if s.model == nil {
		return nil, s.notConfigured()
	}

	text, err := s.model.GenerateText(ctx, BuildTranslatePrompt(req))
	if err != nil {
		s.log.Error("Gemini API error (translate): %v", err)
		if strings.Contains(err.Error(), "API_KEY") {
			return nil, ErrInvalidAPIKey
		}
		return nil, ErrTranslationFailed
	}

	return &models.TranslationResponse{
		TranslatedText:   strings.TrimSpace(text),
		DetectedLanguage: DetectLanguage(req.Text).String(),
	}, nil
}

// Generate produces a polite staff response for prompt
func (s *Service) Generate(ctx context.Context, prompt, promptContext string) (string, error) {
	if s.model == nil {
		return "", s.notConfigured()
	}

	text, err := s.model.GenerateText(ctx, BuildGeneratePrompt(prompt, promptContext))
	if err != nil {
		s.log.Error("Gemini API error (generate): %v", err)
		return "", ErrGenerationFailed
	}

	return strings.TrimSpace(text), nil
}

// Improve polishes an existing response. It never fails: the original text is
// returned when the gateway is unconfigured, the provider errors or the reply
// is only whitespace.
func (s *Service) Improve(ctx context.Context, text string, lang models.Language) (string, error) {
	if s.model == nil {
		s.log.Warn("Gemini API is not configured. Returning original text.")
		return text, nil
	}

	improved, err := s.model.GenerateText(ctx, BuildImprovePrompt(text, lang))
	if err != nil {
		s.log.Error("Gemini API error (improve): %v", err)
		return text, nil
	}

	improved = strings.TrimSpace(improved)
	if improved == "" {
		return text, nil
	}
	return improved, nil
}

// Validate sends a trivial prompt to check the credentials work
func (s *Service) Validate(ctx context.Context) bool {
	if s.model == nil {
		s.log.Error("Gemini API is not configured")
		return false
	}
	if _, err := s.model.GenerateText(ctx, "Hello"); err != nil {
		s.log.Error("Gemini API validation failed: %v", err)
		return false
	}
	return true
}

func (s *Service) notConfigured() error {
	return fmt.Errorf("%w. Please set %s", ErrNotConfigured, s.hint)
}

func credentialsHint(mode string) string {
	if mode == config.ModeVertex {
		return "GOOGLE_CLOUD_PROJECT and GOOGLE_CLOUD_LOCATION environment variables."
	}
	return "GOOGLE_AI_API_KEY environment variable."
}
