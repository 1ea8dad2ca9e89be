package storage

import (
	"encoding/json"
	"fmt"
	"time"

	"tablecomm/models"

	"go.etcd.io/bbolt"
)

const languageKey = "language"

type languageRecord struct {
	Language  models.Language `json:"language"`
	UpdatedAt time.Time       `json:"updated_at"`
}

// PreferenceStorage persists the guest display language
type PreferenceStorage struct {
	db *bbolt.DB
}

// NewPreferenceStorage uses a database opened by InitDB
func NewPreferenceStorage(db *bbolt.DB) *PreferenceStorage {
	return &PreferenceStorage{db: db}
}

// LoadLanguage returns the stored language. ok is false when nothing valid is stored.
func (s *PreferenceStorage) LoadLanguage() (lang models.Language, ok bool, err error) {
	err = s.db.View(func(tx *bbolt.Tx) error {
		b := tx.Bucket([]byte(preferenceBucket))
		if b == nil {
			return nil
		}
		data := b.Get([]byte(languageKey))
		if data == nil {
			return nil
		}

		var record languageRecord
		if err := json.Unmarshal(data, &record); err != nil {
			return fmt.Errorf("failed to decode language preference: %w", err)
		}
		lang, ok = models.ParseLanguage(string(record.Language))
		return nil
	})
	return lang, ok, err
}

// SaveLanguage stores the language, replacing any previous value
func (s *PreferenceStorage) SaveLanguage(lang models.Language) error {
	data, err := json.Marshal(languageRecord{Language: lang, UpdatedAt: time.Now().UTC()})
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bbolt.Tx) error {
		b, err := tx.CreateBucketIfNotExists([]byte(preferenceBucket))
		if err != nil {
			return err
		}
		return b.Put([]byte(languageKey), data)
	})
}
