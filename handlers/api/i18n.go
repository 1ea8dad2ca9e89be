package api

import (
	"tablecomm/middleware"
	"tablecomm/models"
	"tablecomm/utils"

	"github.com/gofiber/fiber/v2"
)

// clientMessageIDs are the strings assets/app.js needs
var clientMessageIDs = []string{
	"improve_button",
	"improving",
	"revert",
	"copy",
	"copy_all",
	"copied",
	"translating",
	"translate_button",
	"remove_item",
	"menu_input_placeholder",
	"no_results",
	"error_translation",
	"error_generation",
	"error_network",
	"error_404",
	"error_500",
}

// I18nHandler handles i18n-related requests
type I18nHandler struct{}

// GetTranslations returns translations for the client-side JavaScript
func (h *I18nHandler) GetTranslations(c *fiber.Ctx) error {
	lang, ok := middleware.NormalizeLanguage(c.Params("lang"))
	if !ok {
		lang = models.DefaultLanguage
	}

	localizer := utils.GetLocalizer(lang.String())

	translations := make(map[string]string, len(clientMessageIDs))
	for _, id := range clientMessageIDs {
		translations[id] = utils.T(localizer, id)
	}

	return c.JSON(translations)
}
