package store

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	path := filepath.Join(t.TempDir(), "test.db")
	s, err := Open(path)
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestOpenCreatesSchema(t *testing.T) {
	s := openTestStore(t)

	n, err := s.ReviewCount()
	require.NoError(t, err)
	assert.Equal(t, int64(0), n)
}

func TestReviewCountAfterInsert(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.DB().Create(&CardReview{CardID: "s1"}).Error)
	require.NoError(t, s.DB().Create(&CardReview{CardID: "s2"}).Error)

	n, err := s.ReviewCount()
	require.NoError(t, err)
	assert.Equal(t, int64(2), n)
}

func TestCardIDUnique(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.DB().Create(&CardReview{CardID: "s1"}).Error)
	err := s.DB().Create(&CardReview{CardID: "s1"}).Error
	assert.Error(t, err)
}

func TestReviewDefaults(t *testing.T) {
	s := openTestStore(t)

	require.NoError(t, s.DB().Create(&CardReview{CardID: "s1"}).Error)

	var r CardReview
	require.NoError(t, s.DB().First(&r, "card_id = ?", "s1").Error)
	assert.Equal(t, StateNew, r.State)
	assert.Equal(t, 0, r.IntervalD)
	assert.InDelta(t, 2.5, r.EaseFactor, 0.001)
}

func TestDefaultDBPathEnvOverride(t *testing.T) {
	dir := t.TempDir()
	want := filepath.Join(dir, "custom", "my.db")
	t.Setenv("FRDOJO_DB", want)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, want, got)

	// parent dir must exist afterwards
	_, err = os.Stat(filepath.Dir(want))
	assert.NoError(t, err)
}

func TestDefaultDBPathXDG(t *testing.T) {
	dir := t.TempDir()
	t.Setenv("FRDOJO_DB", "")
	t.Setenv("XDG_DATA_HOME", dir)

	got, err := DefaultDBPath()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "frdojo", "frdojo.db"), got)
}
