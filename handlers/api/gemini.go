package api

import (
	"strings"

	"tablecomm/gemini"
	"tablecomm/models"
	"tablecomm/utils"

	"github.com/gofiber/fiber/v2"
)

// Public error messages. Provider details are only logged.
const (
	msgMissingTranslateFields = "Missing required fields: text and targetLanguage"
	msgMissingPrompt          = "Missing required field: prompt"
	msgTranslationFailed      = "Translation failed"
	msgGenerationFailed       = "Response generation failed"
)

// GeminiHandler exposes the gateway over HTTP
type GeminiHandler struct {
	gateway gemini.Gateway
}

// NewGeminiHandler creates a new gemini handler
func NewGeminiHandler(gateway gemini.Gateway) *GeminiHandler {
	return &GeminiHandler{gateway: gateway}
}

// Translate handles POST /api/gemini/translate
func (h *GeminiHandler) Translate(c *fiber.Ctx) error {
	var req models.TranslationRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError(msgMissingTranslateFields, err)
	}

	lang, ok := models.ParseLanguage(string(req.TargetLanguage))
	if strings.TrimSpace(req.Text) == "" || !ok {
		return utils.BadRequestError(msgMissingTranslateFields, nil)
	}
	req.TargetLanguage = lang

	resp, err := h.gateway.Translate(c.UserContext(), req)
	if err != nil {
		return utils.InternalServerError(msgTranslationFailed, err).
			WithContext("target", lang)
	}

	return c.JSON(resp)
}

// Generate handles POST /api/gemini/generate. action=improve polishes the
// prompt for speakers of the given language, Japanese by default.
func (h *GeminiHandler) Generate(c *fiber.Ctx) error {
	var req models.GenerateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError(msgMissingPrompt, err)
	}
	if strings.TrimSpace(req.Prompt) == "" {
		return utils.BadRequestError(msgMissingPrompt, nil)
	}

	var (
		result string
		err    error
	)
	switch req.Action {
	case models.ActionImprove:
		lang, ok := models.ParseLanguage(string(req.Language))
		if !ok {
			lang = models.DefaultLanguage
		}
		result, err = h.gateway.Improve(c.UserContext(), req.Prompt, lang)
	default:
		result, err = h.gateway.Generate(c.UserContext(), req.Prompt, req.Context)
	}
	if err != nil {
		return utils.InternalServerError(msgGenerationFailed, err).
			WithContext("action", req.Action)
	}

	return c.JSON(models.GenerateResponse{Response: result})
}
