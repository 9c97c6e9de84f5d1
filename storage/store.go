package storage

import (
	"encoding/json"
	"errors"
	"fmt"
)

// Keys under which each collection is persisted
const (
	KeyWaterLogs          = "waterLogs"
	KeyProteinLogs        = "proteinLogs"
	KeyMealLogs           = "mealLogs"
	KeyGymLogs            = "gymLogs"
	KeyWorkoutTemplates   = "workoutTemplates"
	KeyWorkoutSessions    = "workoutSessions"
	KeyUserProfile        = "userProfile"
	KeyUserSettings       = "userSettings"
	KeyScheduledReminders = "scheduledReminders"
)

// MaxValueSize is the largest encoded value a single key may hold
const MaxValueSize = 5 << 20

var ErrValueTooLarge = errors.New("value exceeds storage limit")

// Store is a durable mapping from string keys to encoded values.
// Set fully replaces the previous value for a key and a later Get
// on the same key observes it.
type Store interface {
	// Get returns the raw value for key. The bool is false when the key was never set.
	Get(key string) ([]byte, bool, error)

	// Set replaces the raw value for key.
	Set(key string, value []byte) error
}

// StorageError reports a failed read or write against the underlying medium.
// Callers treat it as non-fatal and continue with their in-memory default.
type StorageError struct {
	Op  string
	Key string
	Err error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage %s %q: %v", e.Op, e.Key, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

// IsStorageError reports whether err carries a StorageError
func IsStorageError(err error) bool {
	var se *StorageError
	return errors.As(err, &se)
}

// Get decodes the value stored under key. When the key is missing def is
// returned; on failure def is returned together with a *StorageError.
func Get[T any](s Store, key string, def T) (T, error) {
	raw, ok, err := s.Get(key)
	if err != nil {
		return def, &StorageError{Op: "get", Key: key, Err: err}
	}
	if !ok {
		return def, nil
	}

	var value T
	if err := json.Unmarshal(raw, &value); err != nil {
		return def, &StorageError{Op: "decode", Key: key, Err: err}
	}
	return value, nil
}

// Set encodes value and stores it under key. The encoded copy is what gets
// persisted, so later changes to value never leak into the store.
func Set[T any](s Store, key string, value T) error {
	raw, err := json.Marshal(value)
	if err != nil {
		return &StorageError{Op: "encode", Key: key, Err: err}
	}
	if len(raw) > MaxValueSize {
		return &StorageError{Op: "set", Key: key, Err: ErrValueTooLarge}
	}
	if err := s.Set(key, raw); err != nil {
		return &StorageError{Op: "set", Key: key, Err: err}
	}
	return nil
}
