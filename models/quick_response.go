package models

// Category groups quick responses on the catalog tabs
type Category string

const (
	CategoryBilling  Category = "billing"
	CategoryAllergy  Category = "allergy"
	CategoryHowToEat Category = "how-to-eat"
	CategoryOther    Category = "other"

	// CategoryAll is the tab value that disables category filtering
	CategoryAll Category = "all"
)

// Categories lists the real categories in tab order
var Categories = []Category{CategoryOther, CategoryBilling, CategoryAllergy, CategoryHowToEat}

// ContentTranslations holds the phrase in every display language
type ContentTranslations struct {
	JA string `json:"ja"`
	EN string `json:"en"`
	ES string `json:"es"`
}

// In returns the translation for the given language
func (c ContentTranslations) In(lang Language) string {
	switch lang {
	case English:
		return c.EN
	case Spanish:
		return c.ES
	default:
		return c.JA
	}
}

// QuickResponse is a pre-translated phrase staff show to guests
type QuickResponse struct {
	ID                  string              `json:"id"`
	Category            Category            `json:"category"`
	Title               string              `json:"title_jp"`
	ContentTranslations ContentTranslations `json:"content_translations"`
	ImageURL            string              `json:"image_url,omitempty"`
}
