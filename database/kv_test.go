package database

import (
	"os"
	"path/filepath"
	"testing"

	"gym-tracker/storage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTestDB(t *testing.T) (*DB, func()) {
	t.Helper()

	tmpDir, err := os.MkdirTemp("", "gym-tracker-test-*")
	require.NoError(t, err)

	db, err := New(filepath.Join(tmpDir, "test.db"))
	require.NoError(t, err)
	require.NoError(t, db.Migrate())

	cleanup := func() {
		db.Close()
		os.RemoveAll(tmpDir)
	}

	return db, cleanup
}

func TestDB_GetMissingKey(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	value, ok, err := db.Get(storage.KeyWaterLogs)
	require.NoError(t, err)
	assert.False(t, ok)
	assert.Nil(t, value)
}

func TestDB_SetOverwrites(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, db.Set(storage.KeyWaterLogs, []byte(`[{"id":"a"}]`)))
	require.NoError(t, db.Set(storage.KeyWaterLogs, []byte(`[{"id":"b"}]`)))

	value, ok, err := db.Get(storage.KeyWaterLogs)
	require.NoError(t, err)
	assert.True(t, ok)
	assert.JSONEq(t, `[{"id":"b"}]`, string(value))

	keys, err := db.Keys()
	require.NoError(t, err)
	assert.Len(t, keys, 1)
	assert.Contains(t, keys, storage.KeyWaterLogs)
}

func TestDB_SurvivesReopen(t *testing.T) {
	tmpDir, err := os.MkdirTemp("", "gym-tracker-test-*")
	require.NoError(t, err)
	defer os.RemoveAll(tmpDir)

	path := filepath.Join(tmpDir, "nested", "test.db")

	db, err := New(path)
	require.NoError(t, err)
	require.NoError(t, db.Migrate())
	require.NoError(t, storage.Set(db, storage.KeyUserSettings, map[string]int{"water": 2500}))
	require.NoError(t, db.Close())

	db, err = New(path)
	require.NoError(t, err)
	defer db.Close()
	require.NoError(t, db.Migrate())

	got, err := storage.Get(db, storage.KeyUserSettings, map[string]int{})
	require.NoError(t, err)
	assert.Equal(t, 2500, got["water"])
}

func TestDB_ClosedMediumIsStorageError(t *testing.T) {
	db, cleanup := setupTestDB(t)
	defer cleanup()

	require.NoError(t, storage.Set(db, storage.KeyGymLogs, []string{"kept"}))
	require.NoError(t, db.Close())

	def := []string{}
	got, err := storage.Get(db, storage.KeyGymLogs, def)
	require.Error(t, err)
	assert.True(t, storage.IsStorageError(err))
	assert.Equal(t, def, got)
}
