package catalog

import (
	"testing"

	"tablecomm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAll_EveryResponseTranslated(t *testing.T) {
	items := All()
	require.Len(t, items, 14)

	seen := map[string]bool{}
	for _, item := range items {
		assert.False(t, seen[item.ID], "duplicate id %s", item.ID)
		seen[item.ID] = true

		assert.NotEmpty(t, item.Title, item.ID)
		for _, lang := range models.SupportedLanguages {
			assert.NotEmpty(t, item.ContentTranslations.In(lang), "%s missing %s", item.ID, lang)
		}
		assert.Contains(t, models.Categories, item.Category)
	}
}

func TestAll_ReturnsCopy(t *testing.T) {
	items := All()
	items[0].Title = "changed"

	assert.NotEqual(t, "changed", All()[0].Title)
}

func TestFilter_Category(t *testing.T) {
	items := All()

	billing := Filter(items, Query{Category: models.CategoryBilling})
	require.Len(t, billing, 3)
	for _, item := range billing {
		assert.Equal(t, models.CategoryBilling, item.Category)
	}

	assert.Len(t, Filter(items, Query{Category: models.CategoryAll}), len(items))
	assert.Len(t, Filter(items, Query{}), len(items))
}

func TestFilter_Text(t *testing.T) {
	items := All()

	t.Run("title", func(t *testing.T) {
		got := Filter(items, Query{Text: "箸"})
		require.Len(t, got, 1)
		assert.Equal(t, "how-to-eat-3", got[0].ID)
	})

	t.Run("content in current language, case-insensitive", func(t *testing.T) {
		got := Filter(items, Query{Text: "  TAKEOUT ", Language: models.English})
		ids := make([]string, len(got))
		for i, item := range got {
			ids[i] = item.ID
		}
		assert.Equal(t, []string{"other-4", "other-5"}, ids)
	})

	t.Run("other languages not searched", func(t *testing.T) {
		assert.Empty(t, Filter(items, Query{Text: "receipt", Language: models.Spanish}))
		assert.Len(t, Filter(items, Query{Text: "recibo", Language: models.Spanish}), 1)
	})

	t.Run("combined with category", func(t *testing.T) {
		assert.Empty(t, Filter(items, Query{Text: "pizza", Language: models.English, Category: models.CategoryBilling}))
	})
}

func TestFilter_DoesNotMutate(t *testing.T) {
	items := All()
	before := All()

	Filter(items, Query{Text: "soup", Language: models.English, Category: models.CategoryHowToEat})

	assert.Equal(t, before, items)
}

func TestCounts(t *testing.T) {
	counts := Counts(All())

	assert.Equal(t, 14, counts[models.CategoryAll])
	assert.Equal(t, 3, counts[models.CategoryBilling])
	assert.Equal(t, 3, counts[models.CategoryAllergy])
	assert.Equal(t, 3, counts[models.CategoryHowToEat])
	assert.Equal(t, 5, counts[models.CategoryOther])
}

func TestFind(t *testing.T) {
	item, ok := Find("other-1")
	require.True(t, ok)
	assert.Equal(t, "/images/restroom.svg", item.ImageURL)

	_, ok = Find("missing")
	assert.False(t, ok)
}

func TestParseCategory(t *testing.T) {
	assert.Equal(t, models.CategoryHowToEat, ParseCategory("how-to-eat"))
	assert.Equal(t, models.CategoryAll, ParseCategory("all"))
	assert.Equal(t, models.CategoryAll, ParseCategory("drinks"))
	assert.Equal(t, models.CategoryAll, ParseCategory(""))
}
