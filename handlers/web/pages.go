package web

import (
	"tablecomm/catalog"
	"tablecomm/config"
	"tablecomm/menu"
	"tablecomm/middleware"
	"tablecomm/models"
	"tablecomm/utils"

	"github.com/gofiber/fiber/v2"
)

type categoryTab struct {
	Value     models.Category
	MessageID string
	Count     int
	Active    bool
}

var categoryMessageIDs = map[models.Category]string{
	models.CategoryAll:      "tab_all",
	models.CategoryBilling:  "category_billing",
	models.CategoryAllergy:  "category_allergy",
	models.CategoryHowToEat: "category_how_to_eat",
	models.CategoryOther:    "category_other",
}

// PageHandler renders the staff pages
type PageHandler struct {
	config    *config.Config
	documents *menu.Documents
	aiEnabled bool
}

// NewPageHandler creates a new page handler
func NewPageHandler(cfg *config.Config, documents *menu.Documents, aiEnabled bool) *PageHandler {
	return &PageHandler{
		config:    cfg,
		documents: documents,
		aiEnabled: aiEnabled,
	}
}

func (h *PageHandler) common(c *fiber.Ctx, page string) fiber.Map {
	return fiber.Map{
		"Page":      page,
		"Lang":      middleware.DisplayLanguage(c),
		"UILang":    middleware.UILanguage(c),
		"Localizer": c.Locals("localizer"),
		"Languages": models.SupportedLanguages,
		"AIEnabled": h.aiEnabled,
	}
}

// QuickResponses renders the catalog page
func (h *PageHandler) QuickResponses(c *fiber.Ctx) error {
	lang := middleware.DisplayLanguage(c)
	category := catalog.ParseCategory(c.Query("category"))
	query := c.Query("q")

	all := catalog.All()
	counts := catalog.Counts(all)

	tabs := make([]categoryTab, 0, len(models.Categories)+1)
	for _, cat := range append([]models.Category{models.CategoryAll}, models.Categories...) {
		tabs = append(tabs, categoryTab{
			Value:     cat,
			MessageID: categoryMessageIDs[cat],
			Count:     counts[cat],
			Active:    cat == category,
		})
	}

	data := h.common(c, "quick")
	data["Items"] = catalog.Filter(all, catalog.Query{Text: query, Category: category, Language: lang})
	data["Tabs"] = tabs
	data["Query"] = query
	data["Category"] = category
	return c.Render("quick_responses", data)
}

// Menu renders the menu translator page
func (h *PageHandler) Menu(c *fiber.Ctx) error {
	data := h.common(c, "menu")
	data["RestaurantName"] = h.config.Menu.RestaurantName
	data["Tagline"] = h.config.Menu.Tagline
	data["Sample"] = menu.SampleMenu
	return c.Render("menu", data)
}

// PrintMenu serves a rendered menu document by id
func (h *PageHandler) PrintMenu(c *fiber.Ctx) error {
	doc, ok := h.documents.Load(c.Params("id"))
	if !ok {
		return utils.NotFoundError("Menu not found or expired", nil)
	}
	c.Type("html", "utf-8")
	return c.SendString(doc)
}
