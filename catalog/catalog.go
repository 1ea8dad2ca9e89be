// Package catalog holds the static quick-response phrases and their search.
package catalog

import (
	"strings"

	"tablecomm/models"
)

// Query narrows the catalog. Empty fields match everything.
type Query struct {
	Text     string
	Category models.Category
	Language models.Language
}

// All returns a copy of the catalog in display order
func All() []models.QuickResponse {
	out := make([]models.QuickResponse, len(responses))
	copy(out, responses)
	return out
}

// Find looks up a response by id
func Find(id string) (models.QuickResponse, bool) {
	for _, r := range responses {
		if r.ID == id {
			return r, true
		}
	}
	return models.QuickResponse{}, false
}

// Filter returns the items matching q, preserving order. A text query matches
// case-insensitively against the Japanese title or the content in q.Language.
func Filter(items []models.QuickResponse, q Query) []models.QuickResponse {
	text := strings.ToLower(strings.TrimSpace(q.Text))
	lang := q.Language
	if lang == "" {
		lang = models.DefaultLanguage
	}

	out := make([]models.QuickResponse, 0, len(items))
	for _, item := range items {
		if q.Category != "" && q.Category != models.CategoryAll && item.Category != q.Category {
			continue
		}
		if text != "" &&
			!strings.Contains(strings.ToLower(item.Title), text) &&
			!strings.Contains(strings.ToLower(item.ContentTranslations.In(lang)), text) {
			continue
		}
		out = append(out, item)
	}
	return out
}

// Counts returns the number of items per category, plus the total under CategoryAll
func Counts(items []models.QuickResponse) map[models.Category]int {
	counts := map[models.Category]int{models.CategoryAll: len(items)}
	for _, c := range models.Categories {
		counts[c] = 0
	}
	for _, item := range items {
		counts[item.Category]++
	}
	return counts
}

// ParseCategory accepts a tab value from a query string. Unknown values mean all.
func ParseCategory(s string) models.Category {
	c := models.Category(strings.TrimSpace(s))
	for _, known := range models.Categories {
		if c == known {
			return c
		}
	}
	return models.CategoryAll
}
