package api

import (
	"tablecomm/catalog"
	"tablecomm/middleware"

	"github.com/gofiber/fiber/v2"
)

// CatalogHandler serves the quick-response catalog
type CatalogHandler struct{}

// List handles GET /api/catalog?q=&category=&lang=
func (h *CatalogHandler) List(c *fiber.Ctx) error {
	lang := middleware.DisplayLanguage(c)
	if l, ok := middleware.NormalizeLanguage(c.Query("lang")); ok {
		lang = l
	}

	all := catalog.All()
	items := catalog.Filter(all, catalog.Query{
		Text:     c.Query("q"),
		Category: catalog.ParseCategory(c.Query("category")),
		Language: lang,
	})

	return c.JSON(fiber.Map{
		"items":    items,
		"counts":   catalog.Counts(all),
		"language": lang,
	})
}

// Get handles GET /api/catalog/:id
func (h *CatalogHandler) Get(c *fiber.Ctx) error {
	item, ok := catalog.Find(c.Params("id"))
	if !ok {
		return fiber.NewError(fiber.StatusNotFound, "Response not found")
	}
	return c.JSON(item)
}
