// Package menu turns free-text menu lines into translated items, sorts them
// into the sections of an Italian menu and renders a printable document.
package menu

import (
	"context"
	"strings"

	"tablecomm/models"
	"tablecomm/utils"

	"github.com/google/uuid"
	"github.com/sourcegraph/conc/pool"
)

// Translator is satisfied by the gemini gateway and by the HTTP client
type Translator interface {
	Translate(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error)
}

// Strategy selects how many model calls a translation run makes
type Strategy string

const (
	// StrategyBatch sends every line in one call and realigns the reply by position
	StrategyBatch Strategy = "batch"
	// StrategyPerLine sends one call per line
	StrategyPerLine Strategy = "per_line"
)

// BatchContext is the instruction sent with a batch translation
const BatchContext = `You are a professional restaurant menu translator. Translate every menu line into English.

Rules:
1. Each line has the form "name price description".
2. Keep prices (for example 2,800円) exactly as written, written as ¥2,800.
3. Translate names and descriptions into natural, fluent English.
4. Use refined wording that suits a restaurant menu.
5. Keep the line structure: one output line per input line, in the same order.

Example:
Input: Margherita Pizza 2,800円 トマトソース、モッツァレラチーズ、バジル
Output: Margherita Pizza ¥2,800 Fresh tomato sauce, mozzarella cheese, basil

Input: Carbonara Pasta 2,200円 クリームソース、ベーコン、パルメザンチーズ
Output: Carbonara Pasta ¥2,200 Rich cream sauce, pancetta, parmesan cheese

Return the translated lines separated by newlines. Make the descriptions sound appetizing.`

// LineContext is the instruction sent with a single-line translation
const LineContext = "This is one restaurant menu line (name price description). Keep the price unchanged and translate the rest into fluent English."

// SampleMenu is the demo input of the menu page
var SampleMenu = []string{
	"Margherita Pizza 2,800円 トマトソース、モッツァレラチーズ、バジル",
	"Carbonara Pasta 2,200円 クリームソース、ベーコン、パルメザンチーズ",
	"Osso Buco 4,500円 仔牛すね肉の煮込み、野菜のラグーソース",
	"Tiramisu 800円 マスカルポーネクリーム、コーヒーシロップ",
	"Bruschetta 1,200円 トマト、バジル、ニンニクのトースト",
}

// Pipeline runs translation for the menu page
type Pipeline struct {
	translator  Translator
	strategy    Strategy
	concurrency int
}

// NewPipeline creates a pipeline. Unknown strategies fall back to batch.
func NewPipeline(translator Translator, strategy Strategy, concurrency int) *Pipeline {
	if strategy != StrategyPerLine {
		strategy = StrategyBatch
	}
	if concurrency < 1 {
		concurrency = 1
	}
	return &Pipeline{
		translator:  translator,
		strategy:    strategy,
		concurrency: concurrency,
	}
}

// Run translates the non-blank lines. It never fails; see BatchTranslate.
func (p *Pipeline) Run(ctx context.Context, lines []string) []models.MenuItem {
	if p.strategy == StrategyPerLine {
		return TranslatePerLine(ctx, p.translator, lines, p.concurrency)
	}
	return BatchTranslate(ctx, p.translator, lines)
}

// SplitLines splits a free-text block into lines
func SplitLines(text string) []string {
	return strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
}

// NonBlank returns the trimmed lines that contain text
func NonBlank(lines []string) []string {
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		if trimmed := strings.TrimSpace(line); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}

// BatchTranslate translates all lines with one model call. Line i of the reply
// is paired with input line i. Missing reply lines fall back to the source
// line, and any error makes every item echo its source. The reply is not
// checked for matching prices or order.
func BatchTranslate(ctx context.Context, translator Translator, lines []string) []models.MenuItem {
	sources := NonBlank(lines)
	if len(sources) == 0 {
		return []models.MenuItem{}
	}

	var translated []string
	resp, err := translator.Translate(ctx, models.TranslationRequest{
		Text:           strings.Join(sources, "\n"),
		TargetLanguage: models.English,
		Context:        BatchContext,
	})
	if err != nil {
		utils.Log.Error("Menu batch translation failed, echoing %d source lines: %v", len(sources), err)
	} else {
		translated = NonBlank(SplitLines(resp.TranslatedText))
		if len(translated) < len(sources) {
			utils.Log.Warn("Menu batch returned %d lines for %d inputs", len(translated), len(sources))
		}
	}

	items := make([]models.MenuItem, len(sources))
	for i, source := range sources {
		target := source
		if i < len(translated) {
			target = translated[i]
		}
		items[i] = models.MenuItem{
			ID:     uuid.NewString(),
			Source: source,
			Target: target,
		}
	}
	return items
}

// TranslatePerLine translates each line with its own call, at most concurrency
// at a time. A failed line keeps its source text.
func TranslatePerLine(ctx context.Context, translator Translator, lines []string, concurrency int) []models.MenuItem {
	sources := NonBlank(lines)
	items := make([]models.MenuItem, len(sources))
	if concurrency < 1 {
		concurrency = 1
	}

	p := pool.New().WithMaxGoroutines(concurrency)
	for i, source := range sources {
		p.Go(func() {
			target := source
			resp, err := translator.Translate(ctx, models.TranslationRequest{
				Text:           source,
				TargetLanguage: models.English,
				Context:        LineContext,
			})
			if err != nil {
				utils.Log.Error("Menu line %d translation failed: %v", i+1, err)
			} else if t := strings.TrimSpace(resp.TranslatedText); t != "" {
				target = t
			}
			items[i] = models.MenuItem{
				ID:     uuid.NewString(),
				Source: source,
				Target: target,
			}
		})
	}
	p.Wait()

	return items
}

// CopyText formats items for the clipboard: source and translation on
// consecutive lines, items separated by a blank line
func CopyText(items []models.MenuItem) string {
	blocks := make([]string, len(items))
	for i, item := range items {
		blocks[i] = item.Source + "\n" + item.Target
	}
	return strings.Join(blocks, "\n\n")
}
