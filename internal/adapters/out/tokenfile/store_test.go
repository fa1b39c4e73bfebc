package tokenfile_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"parceltrack/internal/adapters/out/tokenfile"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newStore(t *testing.T) *tokenfile.Store {
	t.Helper()
	s, err := tokenfile.NewStore(filepath.Join(t.TempDir(), "nested", "token"))
	require.NoError(t, err)
	return s
}

func TestNewStore_RequiresPath(t *testing.T) {
	_, err := tokenfile.NewStore("  ")
	require.Error(t, err)
}

func TestStore_LoadEmpty(t *testing.T) {
	token, err := newStore(t).Load(t.Context())

	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStore_SaveLoadClear(t *testing.T) {
	s := newStore(t)

	require.NoError(t, s.Save(t.Context(), "first"))
	require.NoError(t, s.Save(t.Context(), "second"))

	token, err := s.Load(t.Context())
	require.NoError(t, err)
	assert.Equal(t, "second", token)

	require.NoError(t, s.Clear(t.Context()))
	require.NoError(t, s.Clear(t.Context()))

	token, err = s.Load(t.Context())
	require.NoError(t, err)
	assert.Empty(t, token)
}

func TestStore_FileIsPrivate(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("unix permissions")
	}
	s := newStore(t)
	require.NoError(t, s.Save(t.Context(), "secret"))

	info, err := os.Stat(s.Path())
	require.NoError(t, err)
	assert.Equal(t, os.FileMode(0o600), info.Mode().Perm())

	entries, err := os.ReadDir(filepath.Dir(s.Path()))
	require.NoError(t, err)
	assert.Len(t, entries, 1, "temporary files must not be left behind")
}

func TestStore_SaveRejectsEmptyToken(t *testing.T) {
	require.Error(t, newStore(t).Save(t.Context(), ""))
}
