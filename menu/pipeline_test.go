package menu

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	"tablecomm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslator struct {
	mu       sync.Mutex
	reply    func(req models.TranslationRequest) (string, error)
	requests []models.TranslationRequest
}

func (f *fakeTranslator) Translate(_ context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
	f.mu.Lock()
	f.requests = append(f.requests, req)
	f.mu.Unlock()

	text, err := f.reply(req)
	if err != nil {
		return nil, err
	}
	return &models.TranslationResponse{TranslatedText: text}, nil
}

func (f *fakeTranslator) count() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.requests)
}

func replyWith(text string) func(models.TranslationRequest) (string, error) {
	return func(models.TranslationRequest) (string, error) { return text, nil }
}

func TestBatchTranslate_AlignsByPosition(t *testing.T) {
	tr := &fakeTranslator{reply: replyWith("Margherita Pizza ¥2,800 Tomato\n\nTiramisu ¥800 Mascarpone\n")}
	lines := []string{
		"Margherita Pizza 2,800円 トマト",
		"",
		"Tiramisu 800円 マスカルポーネ",
	}

	items := BatchTranslate(context.Background(), tr, lines)

	require.Len(t, items, 2)
	assert.Equal(t, "Margherita Pizza 2,800円 トマト", items[0].Source)
	assert.Equal(t, "Margherita Pizza ¥2,800 Tomato", items[0].Target)
	assert.Equal(t, "Tiramisu ¥800 Mascarpone", items[1].Target)
	assert.NotEqual(t, items[0].ID, items[1].ID)

	require.Equal(t, 1, tr.count())
	req := tr.requests[0]
	assert.Equal(t, models.English, req.TargetLanguage)
	assert.Equal(t, BatchContext, req.Context)
	assert.Equal(t, "Margherita Pizza 2,800円 トマト\nTiramisu 800円 マスカルポーネ", req.Text)
}

func TestBatchTranslate_ShortReplyFallsBackToSource(t *testing.T) {
	tr := &fakeTranslator{reply: replyWith("one\ntwo")}
	lines := []string{"a", "b", "c", "d"}

	items := BatchTranslate(context.Background(), tr, lines)

	require.Len(t, items, 4)
	assert.Equal(t, "one", items[0].Target)
	assert.Equal(t, "two", items[1].Target)
	assert.Equal(t, "c", items[2].Target)
	assert.Equal(t, "d", items[3].Target)
}

func TestBatchTranslate_ExtraReplyLinesIgnored(t *testing.T) {
	tr := &fakeTranslator{reply: replyWith("one\ntwo\nthree")}

	items := BatchTranslate(context.Background(), tr, []string{"a"})

	require.Len(t, items, 1)
	assert.Equal(t, "one", items[0].Target)
}

func TestBatchTranslate_ErrorEchoesSources(t *testing.T) {
	tr := &fakeTranslator{reply: func(models.TranslationRequest) (string, error) {
		return "", errors.New("provider down")
	}}
	lines := []string{"Osso Buco 4,500円", "Bruschetta 1,200円"}

	items := BatchTranslate(context.Background(), tr, lines)

	require.Len(t, items, 2)
	for i, item := range items {
		assert.Equal(t, lines[i], item.Source)
		assert.Equal(t, lines[i], item.Target)
	}
}

func TestBatchTranslate_BlankInputMakesNoCall(t *testing.T) {
	tr := &fakeTranslator{reply: replyWith("unused")}

	items := BatchTranslate(context.Background(), tr, []string{"", "   ", "\t"})

	assert.Empty(t, items)
	assert.Equal(t, 0, tr.count())
}

func TestTranslatePerLine(t *testing.T) {
	tr := &fakeTranslator{reply: func(req models.TranslationRequest) (string, error) {
		if strings.HasPrefix(req.Text, "bad") {
			return "", errors.New("boom")
		}
		return strings.ToUpper(req.Text), nil
	}}
	lines := []string{"pizza", "bad line", "", "risotto", "tiramisu"}

	items := TranslatePerLine(context.Background(), tr, lines, 2)

	require.Len(t, items, 4)
	assert.Equal(t, "PIZZA", items[0].Target)
	assert.Equal(t, "bad line", items[1].Target)
	assert.Equal(t, "RISOTTO", items[2].Target)
	assert.Equal(t, "TIRAMISU", items[3].Target)
	assert.Equal(t, 4, tr.count())
	for _, req := range tr.requests {
		assert.Equal(t, LineContext, req.Context)
	}
}

func TestPipeline_SelectsStrategy(t *testing.T) {
	tr := &fakeTranslator{reply: func(req models.TranslationRequest) (string, error) { return req.Text, nil }}

	NewPipeline(tr, StrategyPerLine, 3).Run(context.Background(), []string{"a", "b", "c"})
	assert.Equal(t, 3, tr.count())

	tr = &fakeTranslator{reply: func(req models.TranslationRequest) (string, error) { return req.Text, nil }}
	NewPipeline(tr, Strategy("unknown"), 0).Run(context.Background(), []string{"a", "b", "c"})
	assert.Equal(t, 1, tr.count())
}

func TestSplitLines(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "", "c"}, SplitLines("a\r\nb\n\nc"))
	assert.Equal(t, []string{"a", "c"}, NonBlank(SplitLines(" a \n\n c")))
}

func TestCopyText(t *testing.T) {
	items := []models.MenuItem{
		{Source: "ティラミス 800円", Target: "Tiramisu ¥800"},
		{Source: "リゾット 1,800円", Target: "Risotto ¥1,800"},
	}

	assert.Equal(t, "ティラミス 800円\nTiramisu ¥800\n\nリゾット 1,800円\nRisotto ¥1,800", CopyText(items))
	assert.Equal(t, "", CopyText(nil))
}
