package api

import (
	"bufio"
	"encoding/json"
	"fmt"
	"time"

	"tablecomm/models"
	"tablecomm/preference"
	"tablecomm/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/valyala/fasthttp"
)

const keepAliveInterval = 30 * time.Second

// LanguageEvent is pushed to every open page when the display language changes
type LanguageEvent struct {
	ID       string          `json:"id"`
	Language models.Language `json:"language"`
	Time     time.Time       `json:"time"`
}

// EventsHandler streams language changes using SSE
type EventsHandler struct {
	store     *preference.Store
	keepAlive time.Duration
}

// NewEventsHandler creates a new events handler
func NewEventsHandler(store *preference.Store) *EventsHandler {
	return &EventsHandler{store: store, keepAlive: keepAliveInterval}
}

// HandleSSE handles GET /api/language/events. The current language is sent
// first, then every change.
func (h *EventsHandler) HandleSSE(c *fiber.Ctx) error {
	c.Set("Content-Type", "text/event-stream")
	c.Set("Cache-Control", "no-cache")
	c.Set("Connection", "keep-alive")
	c.Set("Transfer-Encoding", "chunked")

	subscriberID := uuid.NewString()
	events, cancel := subscribeLanguageEvents(h.store, subscriberID)

	utils.Log.Debug("SSE subscriber connected: %s", subscriberID)

	c.Context().SetBodyStreamWriter(fasthttp.StreamWriter(func(w *bufio.Writer) {
		defer func() {
			cancel()
			utils.Log.Debug("SSE subscriber disconnected: %s", subscriberID)
		}()
		streamLanguageEvents(w, events, h.keepAlive)
	}))

	return nil
}

// subscribeLanguageEvents returns a channel that receives the current language
// followed by every change
func subscribeLanguageEvents(store *preference.Store, subscriberID string) (<-chan models.Language, func()) {
	events := make(chan models.Language, 10)
	cancel := store.Watch(func(lang models.Language) {
		select {
		case events <- lang:
		default:
			utils.Log.Warn("Language event channel full for subscriber %s", subscriberID)
		}
	})
	return events, cancel
}

// streamLanguageEvents writes events until the channel closes or the client goes away
func streamLanguageEvents(w *bufio.Writer, events <-chan models.Language, keepAlive time.Duration) {
	ticker := time.NewTicker(keepAlive)
	defer ticker.Stop()

	for {
		select {
		case lang, ok := <-events:
			if !ok {
				return
			}
			data, err := json.Marshal(LanguageEvent{ID: uuid.NewString(), Language: lang, Time: time.Now()})
			if err != nil {
				utils.Log.Error("Failed to encode language event: %v", err)
				continue
			}
			fmt.Fprintf(w, "event: language\ndata: %s\n\n", data)
			if err := w.Flush(); err != nil {
				return
			}

		case <-ticker.C:
			w.WriteString(": keepalive\n\n")
			if err := w.Flush(); err != nil {
				return
			}
		}
	}
}
