// Package preference holds the guest display language shared by every view.
package preference

import (
	"sync"

	"tablecomm/models"
	"tablecomm/utils"
)

// Persister saves the language between restarts
type Persister interface {
	LoadLanguage() (models.Language, bool, error)
	SaveLanguage(lang models.Language) error
}

// Listener is called after the language changes
type Listener func(lang models.Language)

// Store is the process-wide language preference. Writes are last-write-wins.
type Store struct {
	// writeMu orders whole writes so the persisted value always matches
	// memory. Listeners run under it and must not call Set.
	writeMu   sync.Mutex
	mu        sync.RWMutex
	lang      models.Language
	persister Persister
	nextID    int
	listeners map[int]Listener
}

// NewStore starts at the default language and hydrates from persister when given.
// A failed load is logged and the default is kept.
func NewStore(persister Persister) *Store {
	s := &Store{
		lang:      models.DefaultLanguage,
		persister: persister,
		listeners: make(map[int]Listener),
	}

	if persister != nil {
		lang, ok, err := persister.LoadLanguage()
		switch {
		case err != nil:
			utils.Log.Warn("Could not load language preference, using %s: %v", s.lang, err)
		case ok:
			s.lang = lang
		}
	}

	return s
}

// Get returns the current language
func (s *Store) Get() models.Language {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.lang
}

// Set changes the language, persists it and notifies listeners. The in-memory
// value changes even when persisting fails; the error is returned.
func (s *Store) Set(lang models.Language) error {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	s.mu.Lock()
	s.lang = lang
	listeners := make([]Listener, 0, len(s.listeners))
	for _, l := range s.listeners {
		listeners = append(listeners, l)
	}
	s.mu.Unlock()

	var err error
	if s.persister != nil {
		if err = s.persister.SaveLanguage(lang); err != nil {
			utils.Log.Error("Failed to persist language preference: %v", err)
		}
	}

	for _, l := range listeners {
		l(lang)
	}
	return err
}

// Subscribe registers fn for changes and returns a function that removes it
func (s *Store) Subscribe(fn Listener) (cancel func()) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.listeners, id)
		s.mu.Unlock()
	}
}

// Watch is Subscribe that first calls fn with the current language. No write
// can land between that call and the registration.
func (s *Store) Watch(fn Listener) (cancel func()) {
	s.writeMu.Lock()
	defer s.writeMu.Unlock()

	fn(s.Get())
	return s.Subscribe(fn)
}
