package menu

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"tablecomm/models"
	"tablecomm/utils"
)

//go:embed templates/print.html
var templateFS embed.FS

var printTemplate = template.Must(template.ParseFS(templateFS, "templates/print.html"))

// Footer lines of the printable menu
const (
	FooterText = `"Bringing the authentic flavors of Italy to your table"`
	FooterNote = "* All prices include tax • Subject to change without notice"
)

type documentData struct {
	RestaurantName string
	Tagline        string
	Sections       []models.MenuSection
	FooterText     string
	FooterNote     string
}

// RenderDocument renders a self-contained printable HTML menu. Only sections
// with items are included. All text is escaped.
func RenderDocument(items []models.MenuItem, restaurantName, tagline string) (string, error) {
	var nonEmpty []models.MenuSection
	for _, s := range Categorize(items) {
		if len(s.Items) > 0 {
			nonEmpty = append(nonEmpty, s)
		}
	}

	data := documentData{
		RestaurantName: utils.CleanText(restaurantName),
		Tagline:        utils.CleanText(tagline),
		Sections:       nonEmpty,
		FooterText:     FooterText,
		FooterNote:     FooterNote,
	}

	var buf bytes.Buffer
	if err := printTemplate.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("failed to render menu: %w", err)
	}
	return buf.String(), nil
}
