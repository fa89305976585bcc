package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func exerciseRepository(t *testing.T, repo Repository) {
	t.Helper()

	_, err := repo.Load()
	require.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, repo.Save([]byte(`{"mode":"focus"}`)))
	require.NoError(t, repo.Save([]byte(`{"mode":"break"}`)))

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, `{"mode":"break"}`, string(got))

	require.NoError(t, repo.Clear())
	require.NoError(t, repo.Clear())

	_, err = repo.Load()
	require.ErrorIs(t, err, ErrNotFound)
}

func TestBoltRepository(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hardmode.db")

	repo, err := NewBolt(path)
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = repo.Close()
	})

	exerciseRepository(t, repo)
}

func TestBoltSingleInstance(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hardmode.db")

	repo, err := NewBolt(path)
	require.NoError(t, err)

	defer repo.Close()

	_, err = NewBolt(path)
	require.Error(t, err)
	assert.True(t, IsLocked(err))
}

func TestBoltSurvivesReopen(t *testing.T) {
	path := filepath.Join(t.TempDir(), "hardmode.db")

	repo, err := NewBolt(path)
	require.NoError(t, err)
	require.NoError(t, repo.Save([]byte("42")))
	require.NoError(t, repo.Close())

	repo, err = NewBolt(path)
	require.NoError(t, err)

	defer repo.Close()

	got, err := repo.Load()
	require.NoError(t, err)
	assert.Equal(t, "42", string(got))
}

func TestSQLiteRepository(t *testing.T) {
	repo, err := NewSQLite(filepath.Join(t.TempDir(), "hardmode.sqlite"))
	require.NoError(t, err)

	t.Cleanup(func() {
		_ = repo.Close()
	})

	exerciseRepository(t, repo)
}

func TestMemoryRepository(t *testing.T) {
	exerciseRepository(t, NewMemory())
}
