package database

import (
	"sync"
	"time"

	"gym-tracker/models"
	"gym-tracker/storage"
	"gym-tracker/validator"
)

// Repository is the typed view over every collection in the store. Each
// collection lives under its own key and is replaced as a whole on write.
type Repository struct {
	store    storage.Store
	validate *validator.Validator
	mu       sync.Mutex
	now      func() time.Time
}

func NewRepository(store storage.Store, v *validator.Validator) *Repository {
	return &Repository{
		store:    store,
		validate: v,
		now:      time.Now,
	}
}

// loadList reads a collection. A missing key yields an empty, non-nil slice.
func loadList[T any](r *Repository, key string) ([]T, error) {
	items, err := storage.Get(r.store, key, []T{})
	if items == nil {
		items = []T{}
	}
	return items, err
}

// appendItem validates item and appends it to the collection under key.
// The collection is re-read under the lock so concurrent appends never
// overwrite each other. A failed read aborts before anything is written.
func appendItem[T any](r *Repository, key string, item T) (T, error) {
	if err := r.validate.Validate(item); err != nil {
		return item, err
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	items, err := loadList[T](r, key)
	if err != nil {
		return item, err
	}

	items = append(items, item)
	if err := storage.Set(r.store, key, items); err != nil {
		return item, err
	}
	return item, nil
}

// stamp fills id, timestamp and date when the caller left them empty
func (r *Repository) stamp(id *string, ts *time.Time, date *string) {
	if *id == "" {
		*id = models.NewID()
	}
	if ts.IsZero() {
		*ts = r.now()
	}
	if *date == "" {
		*date = ts.Format(models.DateLayout)
	}
}
