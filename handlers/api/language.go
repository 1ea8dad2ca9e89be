package api

import (
	"time"

	"tablecomm/middleware"
	"tablecomm/models"
	"tablecomm/preference"
	"tablecomm/utils"

	"github.com/gofiber/fiber/v2"
)

type languageOption struct {
	Code models.Language `json:"code"`
	Name string          `json:"name"`
}

// LanguageHandler reads and writes the guest display language
type LanguageHandler struct {
	store *preference.Store
}

// NewLanguageHandler creates a new language handler
func NewLanguageHandler(store *preference.Store) *LanguageHandler {
	return &LanguageHandler{store: store}
}

// Get handles GET /api/language
func (h *LanguageHandler) Get(c *fiber.Ctx) error {
	options := make([]languageOption, len(models.SupportedLanguages))
	for i, lang := range models.SupportedLanguages {
		options[i] = languageOption{Code: lang, Name: lang.NativeName()}
	}

	return c.JSON(fiber.Map{
		"language":  h.store.Get(),
		"supported": options,
	})
}

// Set handles POST /api/language
func (h *LanguageHandler) Set(c *fiber.Ctx) error {
	var req struct {
		Language string `json:"language"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}

	lang, ok := middleware.NormalizeLanguage(req.Language)
	if !ok {
		return utils.BadRequestError("Unsupported language", nil).
			WithContext("language", req.Language)
	}

	if err := h.store.Set(lang); err != nil {
		return utils.InternalServerError("Failed to save language", err)
	}

	c.Cookie(&fiber.Cookie{
		Name:     middleware.LangCookie,
		Value:    lang.String(),
		Path:     "/",
		Expires:  time.Now().Add(365 * 24 * time.Hour),
		SameSite: "Lax",
	})

	return c.JSON(fiber.Map{"language": lang})
}
