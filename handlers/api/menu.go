package api

import (
	"tablecomm/config"
	"tablecomm/menu"
	"tablecomm/models"
	"tablecomm/utils"

	"github.com/gofiber/fiber/v2"
)

// MenuTranslateRequest accepts either explicit lines or a free-text block
type MenuTranslateRequest struct {
	Lines []string `json:"lines"`
	Text  string   `json:"text"`
}

// MenuTranslateResponse is the result of a menu translation run
type MenuTranslateResponse struct {
	Items    []models.MenuItem    `json:"items"`
	Sections []models.MenuSection `json:"sections"`
	CopyText string               `json:"copyText"`
}

// MenuPrintRequest asks for a printable document of translated items
type MenuPrintRequest struct {
	Items          []models.MenuItem `json:"items"`
	RestaurantName string            `json:"restaurantName"`
	Tagline        string            `json:"tagline"`
}

// MenuHandler translates menus and builds printable documents
type MenuHandler struct {
	pipeline  *menu.Pipeline
	documents *menu.Documents
	config    config.MenuConfig
}

// NewMenuHandler creates a new menu handler
func NewMenuHandler(pipeline *menu.Pipeline, documents *menu.Documents, cfg config.MenuConfig) *MenuHandler {
	return &MenuHandler{
		pipeline:  pipeline,
		documents: documents,
		config:    cfg,
	}
}

// Sample handles GET /api/menu/sample
func (h *MenuHandler) Sample(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"lines": menu.SampleMenu})
}

// Translate handles POST /api/menu/translate. Translation failures never
// surface here: affected items carry their source text.
func (h *MenuHandler) Translate(c *fiber.Ctx) error {
	var req MenuTranslateRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}

	lines := append(req.Lines, menu.SplitLines(req.Text)...)
	if len(menu.NonBlank(lines)) == 0 {
		return utils.BadRequestError("Missing required field: lines", nil)
	}

	items := h.pipeline.Run(c.UserContext(), lines)

	return c.JSON(MenuTranslateResponse{
		Items:    items,
		Sections: menu.Categorize(items),
		CopyText: menu.CopyText(items),
	})
}

// Print handles POST /api/menu/print and returns where the document can be opened
func (h *MenuHandler) Print(c *fiber.Ctx) error {
	var req MenuPrintRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.BadRequestError("Invalid request", err)
	}
	if len(req.Items) == 0 {
		return utils.BadRequestError("Missing required field: items", nil)
	}

	name := req.RestaurantName
	if name == "" {
		name = h.config.RestaurantName
	}
	tagline := req.Tagline
	if tagline == "" {
		tagline = h.config.Tagline
	}

	doc, err := menu.RenderDocument(req.Items, name, tagline)
	if err != nil {
		return utils.InternalServerError("Failed to render menu", err)
	}

	id := h.documents.Save(doc)
	return c.Status(fiber.StatusCreated).JSON(fiber.Map{
		"id":  id,
		"url": "/menu/print/" + id,
	})
}
