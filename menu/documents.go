package menu

import (
	"time"

	"tablecomm/utils"

	"github.com/google/uuid"
)

const documentKeyPrefix = "menu:print:"

// Documents keeps rendered menus in memory for a limited time so a browser tab
// can open them by id
type Documents struct {
	cache *utils.MemoryCache
	ttl   time.Duration
}

// NewDocuments stores documents in cache for ttl
func NewDocuments(cache *utils.MemoryCache, ttl time.Duration) *Documents {
	if ttl <= 0 {
		ttl = time.Hour
	}
	return &Documents{cache: cache, ttl: ttl}
}

// Save stores doc and returns its id
func (d *Documents) Save(doc string) string {
	id := uuid.NewString()
	d.cache.Set(documentKeyPrefix+id, doc, d.ttl)
	return id
}

// Load returns a stored document. Expired and unknown ids are not found.
func (d *Documents) Load(id string) (string, bool) {
	if _, err := uuid.Parse(id); err != nil {
		return "", false
	}
	return d.cache.GetString(documentKeyPrefix + id)
}
