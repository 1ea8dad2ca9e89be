// Package client calls the translation endpoints of a running server. It is
// the Go counterpart of the browser client in assets/app.js.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"sync"

	"tablecomm/models"

	"github.com/valyala/fasthttp"
)

var (
	// ErrTranslationFailed is returned for any failed translate call
	ErrTranslationFailed = errors.New("Translation failed")
	// ErrGenerationFailed is returned for any failed generate call
	ErrGenerationFailed = errors.New("Response generation failed")
)

const (
	translatePath = "/api/gemini/translate"
	generatePath  = "/api/gemini/generate"
)

// Client tracks whether a call is in flight and the last error, like the
// page hooks it mirrors. Calls are not retried.
type Client struct {
	baseURL string
	http    *fasthttp.Client

	mu       sync.Mutex
	inFlight int
	lastErr  error
}

// New creates a client for the server at baseURL, e.g. "http://localhost:3000"
func New(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &fasthttp.Client{Name: "tablecomm-client"},
	}
}

// IsLoading reports whether any call is in flight
func (c *Client) IsLoading() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.inFlight > 0
}

// Err returns the error of the most recent call, nil if it succeeded
func (c *Client) Err() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.lastErr
}

func (c *Client) begin() {
	c.mu.Lock()
	c.inFlight++
	c.lastErr = nil
	c.mu.Unlock()
}

func (c *Client) end(err error) {
	c.mu.Lock()
	c.inFlight--
	c.lastErr = err
	c.mu.Unlock()
}

// Translate posts to the translate endpoint
func (c *Client) Translate(ctx context.Context, req models.TranslationRequest) (*models.TranslationResponse, error) {
	c.begin()

	var resp models.TranslationResponse
	err := c.post(ctx, translatePath, req, &resp)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrTranslationFailed, err)
		c.end(err)
		return nil, err
	}

	c.end(nil)
	return &resp, nil
}

// Generate posts to the generate endpoint and returns the response text
func (c *Client) Generate(ctx context.Context, req models.GenerateRequest) (string, error) {
	c.begin()

	var resp models.GenerateResponse
	err := c.post(ctx, generatePath, req, &resp)
	if err != nil {
		err = fmt.Errorf("%w: %w", ErrGenerationFailed, err)
		c.end(err)
		return "", err
	}

	c.end(nil)
	return resp.Response, nil
}

// Improve asks the server to polish text for speakers of lang (Japanese when empty)
func (c *Client) Improve(ctx context.Context, text string, lang models.Language) (string, error) {
	if lang == "" {
		lang = models.DefaultLanguage
	}
	return c.Generate(ctx, models.GenerateRequest{
		Prompt:   text,
		Action:   models.ActionImprove,
		Language: lang,
	})
}

func (c *Client) post(ctx context.Context, path string, body, out interface{}) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return err
	}

	req := fasthttp.AcquireRequest()
	defer fasthttp.ReleaseRequest(req)
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(c.baseURL + path)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	req.SetBody(payload)

	if deadline, ok := ctx.Deadline(); ok {
		err = c.http.DoDeadline(req, resp, deadline)
	} else {
		err = c.http.Do(req, resp)
	}
	if err != nil {
		return err
	}

	if status := resp.StatusCode(); status < 200 || status >= 300 {
		return fmt.Errorf("status %d", status)
	}

	return json.Unmarshal(resp.Body(), out)
}
