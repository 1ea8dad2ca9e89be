package preference

import (
	"errors"
	"sync"
	"testing"

	"tablecomm/models"
	"tablecomm/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memPersister struct {
	lang    models.Language
	ok      bool
	loadErr error
	saveErr error
	saved   []models.Language
}

func (m *memPersister) LoadLanguage() (models.Language, bool, error) {
	return m.lang, m.ok, m.loadErr
}

func (m *memPersister) SaveLanguage(lang models.Language) error {
	m.saved = append(m.saved, lang)
	return m.saveErr
}

func TestNewStore_Defaults(t *testing.T) {
	assert.Equal(t, models.Japanese, NewStore(nil).Get())
	assert.Equal(t, models.Japanese, NewStore(&memPersister{}).Get())
	assert.Equal(t, models.Japanese, NewStore(&memPersister{loadErr: errors.New("corrupt")}).Get())
}

func TestNewStore_Hydrates(t *testing.T) {
	store := NewStore(&memPersister{lang: models.Spanish, ok: true})
	assert.Equal(t, models.Spanish, store.Get())
}

func TestSet_PersistsAndNotifies(t *testing.T) {
	p := &memPersister{}
	store := NewStore(p)

	var seen []models.Language
	cancel := store.Subscribe(func(lang models.Language) { seen = append(seen, lang) })

	require.NoError(t, store.Set(models.English))
	require.NoError(t, store.Set(models.Spanish))
	cancel()
	require.NoError(t, store.Set(models.Japanese))

	assert.Equal(t, models.Japanese, store.Get())
	assert.Equal(t, []models.Language{models.English, models.Spanish}, seen)
	assert.Equal(t, []models.Language{models.English, models.Spanish, models.Japanese}, p.saved)
}

func TestSet_ConcurrentWritesPersistFinalValue(t *testing.T) {
	p := &memPersister{}
	store := NewStore(p)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		lang := models.SupportedLanguages[i%len(models.SupportedLanguages)]
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = store.Set(lang)
		}()
	}
	wg.Wait()

	require.Len(t, p.saved, 50)
	assert.Equal(t, store.Get(), p.saved[len(p.saved)-1])
}

func TestSet_PersistFailureStillUpdates(t *testing.T) {
	p := &memPersister{saveErr: errors.New("disk full")}
	store := NewStore(p)

	err := store.Set(models.English)
	assert.Error(t, err)
	assert.Equal(t, models.English, store.Get())
}

func TestStore_WithBoltPersister(t *testing.T) {
	dir := t.TempDir()

	db, err := storage.InitDB(dir)
	require.NoError(t, err)
	require.NoError(t, NewStore(storage.NewPreferenceStorage(db)).Set(models.English))
	require.NoError(t, db.Close())

	db, err = storage.InitDB(dir)
	require.NoError(t, err)
	defer db.Close()

	assert.Equal(t, models.English, NewStore(storage.NewPreferenceStorage(db)).Get())
}

func TestWatch_CurrentValueThenChanges(t *testing.T) {
	store := NewStore(&memPersister{lang: models.Spanish, ok: true})

	var seen []models.Language
	cancel := store.Watch(func(lang models.Language) { seen = append(seen, lang) })
	require.NoError(t, store.Set(models.English))
	cancel()
	require.NoError(t, store.Set(models.Japanese))

	assert.Equal(t, []models.Language{models.Spanish, models.English}, seen)
}
