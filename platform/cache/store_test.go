package cache_test

import (
	"testing"
	"time"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/cache"
	"github.com/DedS3t/cashflow-backend/platform/saves"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) (*cache.Store, *miniredis.Miniredis) {
	mr := miniredis.RunT(t)
	pool := cache.CreateRedisPool(mr.Addr())
	t.Cleanup(func() { pool.Close() })
	return cache.NewStore(pool), mr
}

func TestStoreRoundTrip(t *testing.T) {
	store, mr := newStore(t)
	require.NoError(t, store.Ping())

	_, err := store.Get("cashflow-save-0")
	assert.ErrorIs(t, err, saves.ErrNotFound)

	require.NoError(t, store.Set("cashflow-save-0", `{"turn":3}`))
	mr.CheckGet(t, "cashflow-save-0", `{"turn":3}`)

	val, err := store.Get("cashflow-save-0")
	require.NoError(t, err)
	assert.Equal(t, `{"turn":3}`, val)

	ok, err := store.Exists("cashflow-save-0")
	require.NoError(t, err)
	assert.True(t, ok)

	require.NoError(t, store.Del("cashflow-save-0"))
	assert.False(t, mr.Exists("cashflow-save-0"))
}

func TestStoreBacksSaveAdapter(t *testing.T) {
	store, mr := newStore(t)
	adapter := saves.New(store, "cashflow-").WithClock(func() time.Time {
		return time.Date(2025, 1, 2, 3, 4, 5, 0, time.UTC)
	})

	st := models.GameState{
		Turn:    2,
		Phase:   models.PhaseRatRace,
		Board:   []models.BoardSpace{{Type: models.SpaceOpportunity, Name: "Opportunity"}},
		Players: []models.Player{{Id: 1, Name: "Ana"}},
	}
	require.True(t, adapter.Save(0, st))
	require.True(t, adapter.AutoSave(st))
	assert.True(t, mr.Exists("cashflow-save-0"))
	assert.True(t, mr.Exists("cashflow-autosave"))
	assert.True(t, adapter.HasAutoSave())

	list := adapter.ListSaves()
	require.Len(t, list, 1)
	assert.Equal(t, "2025-01-02T03:04:05.000Z", list[0].SavedAt)

	loaded, ok := adapter.Load(0)
	require.True(t, ok)
	assert.Equal(t, "Ana", loaded.Players[0].Name)
}

func TestStoreReportsConnectionFailures(t *testing.T) {
	store, mr := newStore(t)
	mr.Close()

	_, err := store.Get("k")
	assert.Error(t, err)
	assert.NotErrorIs(t, err, saves.ErrNotFound)
	assert.Error(t, store.Set("k", "v"))

	adapter := saves.New(store, "cashflow-")
	assert.False(t, adapter.Save(1, models.GameState{}))
	assert.False(t, adapter.DeleteSave(1))
}
