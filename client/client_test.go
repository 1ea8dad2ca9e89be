package client

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"tablecomm/menu"
	"tablecomm/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newServer(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return New(srv.URL + "/")
}

func TestTranslate(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, translatePath, r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req models.TranslationRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.Spanish, req.TargetLanguage)

		_ = json.NewEncoder(w).Encode(models.TranslationResponse{TranslatedText: "Hola " + req.Text, DetectedLanguage: "en"})
	})

	resp, err := c.Translate(context.Background(), models.TranslationRequest{Text: "world", TargetLanguage: models.Spanish})
	require.NoError(t, err)
	assert.Equal(t, "Hola world", resp.TranslatedText)
	assert.Equal(t, "en", resp.DetectedLanguage)
	assert.NoError(t, c.Err())
	assert.False(t, c.IsLoading())
}

func TestTranslate_ServerErrorIsGeneric(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Translation failed"}`))
	})

	_, err := c.Translate(context.Background(), models.TranslationRequest{Text: "x", TargetLanguage: models.English})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrTranslationFailed)
	assert.ErrorIs(t, c.Err(), ErrTranslationFailed)
	assert.False(t, c.IsLoading())
}

func TestImprove(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, generatePath, r.URL.Path)

		var req models.GenerateRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, models.ActionImprove, req.Action)
		assert.Equal(t, models.Japanese, req.Language)

		_ = json.NewEncoder(w).Encode(models.GenerateResponse{Response: req.Prompt + "ませ"})
	})

	out, err := c.Improve(context.Background(), "いらっしゃい", "")
	require.NoError(t, err)
	assert.Equal(t, "いらっしゃいませ", out)
}

func TestGenerate_BadRequest(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
	})

	_, err := c.Generate(context.Background(), models.GenerateRequest{})
	assert.ErrorIs(t, err, ErrGenerationFailed)
}

func TestErrClearedOnNextSuccess(t *testing.T) {
	fail := true
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		if fail {
			w.WriteHeader(http.StatusBadGateway)
			return
		}
		_ = json.NewEncoder(w).Encode(models.GenerateResponse{Response: "ok"})
	})

	_, _ = c.Generate(context.Background(), models.GenerateRequest{Prompt: "p"})
	require.Error(t, c.Err())

	fail = false
	_, err := c.Generate(context.Background(), models.GenerateRequest{Prompt: "p"})
	require.NoError(t, err)
	assert.NoError(t, c.Err())
}

func TestCanceledContext(t *testing.T) {
	c := New("http://127.0.0.1:1")
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := c.Translate(ctx, models.TranslationRequest{Text: "x", TargetLanguage: models.English})
	assert.ErrorIs(t, err, ErrTranslationFailed)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClientDrivesMenuBatch(t *testing.T) {
	c := newServer(t, func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(models.TranslationResponse{TranslatedText: "Margherita Pizza ¥2,800\nTiramisu ¥800"})
	})

	items := menu.BatchTranslate(context.Background(), c, menu.SampleMenu)

	require.Len(t, items, len(menu.SampleMenu))
	assert.Equal(t, "Margherita Pizza ¥2,800", items[0].Target)
	assert.Equal(t, "Tiramisu ¥800", items[1].Target)
	assert.Equal(t, menu.SampleMenu[2], items[2].Target)
}
