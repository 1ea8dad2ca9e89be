package menu

import (
	"regexp"
	"strings"

	"tablecomm/models"
	"tablecomm/utils"
)

// Bucket is one section of the printable menu
type Bucket string

const (
	BucketAntipasti   Bucket = "antipasti"
	BucketPrimi       Bucket = "primi"
	BucketPizza       Bucket = "pizza"
	BucketSecondi     Bucket = "secondi"
	BucketDolci       Bucket = "dolci"
	BucketSpecialties Bucket = "altri"
)

type section struct {
	bucket   Bucket
	title    string
	subtitle string
	keywords []string
}

// sections are in display order
var sections = []section{
	{BucketAntipasti, "Antipasti", "Appetizers", []string{"bruschetta", "antipasti", "appetizer"}},
	{BucketPrimi, "Primi Piatti", "First Courses", []string{"pasta", "risotto"}},
	{BucketPizza, "Pizza", "Wood-fired Pizzas", []string{"pizza"}},
	{BucketSecondi, "Secondi Piatti", "Main Courses", []string{"osso buco", "meat", "fish"}},
	{BucketDolci, "Dolci", "Desserts", []string{"tiramisu", "dessert"}},
	{BucketSpecialties, "Specialità", "Specialties", nil},
}

// priority decides between buckets when an item matches several keyword sets.
// Dish types win over ingredients, so "pasta with meat sauce" is a first course.
var priority = []Bucket{BucketPizza, BucketPrimi, BucketDolci, BucketAntipasti, BucketSecondi}

func keywordsFor(b Bucket) []string {
	for _, s := range sections {
		if s.bucket == b {
			return s.keywords
		}
	}
	return nil
}

// Classify assigns text to exactly one bucket by case-insensitive keyword
// matching. Text matching no keyword is a specialty.
func Classify(text string) Bucket {
	lower := strings.ToLower(text)
	for _, b := range priority {
		for _, kw := range keywordsFor(b) {
			if strings.Contains(lower, kw) {
				return b
			}
		}
	}
	return BucketSpecialties
}

// Group buckets items by their translated text, keeping input order within a bucket
func Group(items []models.MenuItem) map[Bucket][]models.MenuItem {
	groups := make(map[Bucket][]models.MenuItem, len(sections))
	for _, item := range items {
		b := Classify(item.Target)
		groups[b] = append(groups[b], item)
	}
	return groups
}

// Categorize returns all six sections in display order. Sections may be empty.
func Categorize(items []models.MenuItem) []models.MenuSection {
	groups := Group(items)

	out := make([]models.MenuSection, 0, len(sections))
	for _, s := range sections {
		entries := make([]models.MenuEntry, 0, len(groups[s.bucket]))
		for _, item := range groups[s.bucket] {
			entries = append(entries, ParseEntry(utils.CleanText(item.Target)))
		}
		out = append(out, models.MenuSection{
			Key:      string(s.bucket),
			Title:    s.title,
			Subtitle: s.subtitle,
			Items:    entries,
		})
	}
	return out
}

var (
	// a price written with a currency marker: ¥2,800, $12 or 2,800円
	markedPrice = regexp.MustCompile(`[¥$]\d+(?:,\d{3})*|\d+(?:,\d{3})*円`)
	// any number, used when no marked price exists
	barePrice = regexp.MustCompile(`\d+(?:,\d{3})*`)
)

// ParseEntry splits a translated line into name, description and price.
//
// The first price token is removed and the rest is split on whitespace: the
// first word is the name and the remaining words the description. This is a
// lossy heuristic. Multi-word names such as "Margherita Pizza" come out as
// name "Margherita" with "Pizza ..." in the description, and lines without a
// price get an empty price.
func ParseEntry(text string) models.MenuEntry {
	price := markedPrice.FindString(text)
	if price == "" {
		price = barePrice.FindString(text)
	}

	rest := text
	if price != "" {
		rest = strings.Replace(rest, price, "", 1)
	}

	fields := strings.Fields(rest)
	entry := models.MenuEntry{Name: "Menu Item", Price: price}
	if len(fields) > 0 {
		entry.Name = fields[0]
		entry.Description = strings.Join(fields[1:], " ")
	}
	return entry
}
