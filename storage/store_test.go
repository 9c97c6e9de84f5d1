package storage

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type brokenStore struct {
	err error
}

func (b *brokenStore) Get(key string) ([]byte, bool, error) { return nil, false, b.err }
func (b *brokenStore) Set(key string, value []byte) error   { return b.err }

type entry struct {
	ID     string   `json:"id"`
	Amount float64  `json:"amount"`
	Tags   []string `json:"tags"`
}

func TestGet_MissingKeyReturnsDefault(t *testing.T) {
	s := NewMemoryStore()

	got, err := Get(s, KeyWaterLogs, []entry{})
	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestSetThenGet_ReadYourWrites(t *testing.T) {
	s := NewMemoryStore()

	require.NoError(t, Set(s, KeyWaterLogs, []entry{{ID: "a", Amount: 250}}))
	require.NoError(t, Set(s, KeyWaterLogs, []entry{{ID: "b", Amount: 500}}))

	got, err := Get(s, KeyWaterLogs, []entry{})
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "b", got[0].ID)
	assert.Equal(t, 500.0, got[0].Amount)
}

func TestSet_StoresCopyNotAlias(t *testing.T) {
	s := NewMemoryStore()

	value := []entry{{ID: "a", Amount: 250, Tags: []string{"morning"}}}
	require.NoError(t, Set(s, KeyWaterLogs, value))

	value[0].Amount = 9999
	value[0].Tags[0] = "changed"

	got, err := Get(s, KeyWaterLogs, []entry{})
	require.NoError(t, err)
	assert.Equal(t, 250.0, got[0].Amount)
	assert.Equal(t, "morning", got[0].Tags[0])

	got[0].Amount = 1
	again, err := Get(s, KeyWaterLogs, []entry{})
	require.NoError(t, err)
	assert.Equal(t, 250.0, again[0].Amount)
}

func TestSet_RejectsOversizedValue(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, Set(s, KeyMealLogs, "small"))

	err := Set(s, KeyMealLogs, strings.Repeat("x", MaxValueSize))
	require.Error(t, err)
	assert.True(t, IsStorageError(err))
	assert.ErrorIs(t, err, ErrValueTooLarge)

	got, err := Get(s, KeyMealLogs, "")
	require.NoError(t, err)
	assert.Equal(t, "small", got)
}

func TestGet_UnavailableMediumFallsBackToDefault(t *testing.T) {
	medium := errors.New("disk unavailable")
	s := &brokenStore{err: medium}

	def := []entry{{ID: "default"}}
	got, err := Get(s, KeyGymLogs, def)

	require.Error(t, err)
	assert.ErrorIs(t, err, medium)
	var se *StorageError
	require.True(t, errors.As(err, &se))
	assert.Equal(t, "get", se.Op)
	assert.Equal(t, KeyGymLogs, se.Key)
	assert.Equal(t, def, got)
}

func TestGet_CorruptValueIsStorageError(t *testing.T) {
	s := NewMemoryStore()
	require.NoError(t, s.Set(KeyUserSettings, []byte("{not json")))

	got, err := Get(s, KeyUserSettings, map[string]int{"water": 2000})
	require.Error(t, err)
	assert.True(t, IsStorageError(err))
	assert.Equal(t, 2000, got["water"])
}

func TestSet_UnavailableMedium(t *testing.T) {
	s := &brokenStore{err: errors.New("quota exceeded")}

	err := Set(s, KeyProteinLogs, []entry{{ID: "a"}})
	require.Error(t, err)
	assert.True(t, IsStorageError(err))
	assert.Contains(t, err.Error(), "proteinLogs")
}
