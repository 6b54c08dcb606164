package repositories

import (
	"testing"

	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestDB(t *testing.T) *sqlx.DB {
	t.Helper()
	db, err := sqlx.Connect("sqlite3", ":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	_, err = db.Exec(`
		CREATE TABLE attendee_presets (
			id TEXT PRIMARY KEY,
			name TEXT NOT NULL UNIQUE,
			participants TEXT NOT NULL DEFAULT '[]',
			created_at TIMESTAMP NOT NULL,
			updated_at TIMESTAMP NOT NULL
		)`)
	require.NoError(t, err)
	return db
}

func TestPresetRepository_UpsertAndGetAll(t *testing.T) {
	repo := NewPresetRepository(newTestDB(t))

	require.NoError(t, repo.Upsert("weekly-sync", []string{"Alice", "Bob"}))
	require.NoError(t, repo.Upsert("standup", []string{"Carol"}))

	presets, err := repo.GetAll()
	require.NoError(t, err)
	assert.Equal(t, map[string][]string{
		"weekly-sync": {"Alice", "Bob"},
		"standup":     {"Carol"},
	}, presets)
}

func TestPresetRepository_UpsertReplacesParticipants(t *testing.T) {
	repo := NewPresetRepository(newTestDB(t))

	require.NoError(t, repo.Upsert("weekly-sync", []string{"Alice"}))
	require.NoError(t, repo.Upsert("weekly-sync", []string{"Alice", "Dave"}))

	participants, err := repo.Get("weekly-sync")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alice", "Dave"}, participants)
}

func TestPresetRepository_Delete(t *testing.T) {
	repo := NewPresetRepository(newTestDB(t))

	require.NoError(t, repo.Upsert("weekly-sync", []string{"Alice"}))
	require.NoError(t, repo.Delete("weekly-sync"))

	_, err := repo.Get("weekly-sync")
	assert.Error(t, err)

	assert.Error(t, repo.Delete("weekly-sync"), "deleting a missing preset reports an error")
}
