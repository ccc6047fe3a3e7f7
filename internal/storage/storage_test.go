package storage

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/hailam/gridboard/internal/board"
	"github.com/stretchr/testify/require"
)

func TestPreferences(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		prefs := DefaultPreferences()
		require.Equal(t, board.Chess, prefs.Layout())
		require.Equal(t, "-", prefs.EmptyChar)
		require.Equal(t, "x", prefs.SetChar)
		require.NoError(t, prefs.Validate())
	})

	t.Run("Validate", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.Files = 0
		require.ErrorIs(t, prefs.Validate(), ErrInvalidPreferences)
		require.ErrorIs(t, prefs.Validate(), board.ErrEmptyLayout)

		prefs = DefaultPreferences()
		prefs.SetChar = "xx"
		require.ErrorIs(t, prefs.Validate(), ErrInvalidPreferences)

		prefs = DefaultPreferences()
		prefs.CellSize = -1
		require.ErrorIs(t, prefs.Validate(), ErrInvalidPreferences)
	})
}

func TestStorage_InMemory(t *testing.T) {
	s, err := OpenInMemory()
	require.NoError(t, err)
	defer s.Close()

	t.Run("LoadMissingReturnsDefaults", func(t *testing.T) {
		prefs, err := s.LoadPreferences()
		require.NoError(t, err)
		require.Equal(t, DefaultPreferences(), prefs)
	})

	t.Run("SaveLoad", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.Files, prefs.Ranks, prefs.CheckRange = 10, 10, false
		prefs.EmptyChar, prefs.SetChar = ".", "#"
		require.NoError(t, s.SavePreferences(prefs))
		require.False(t, prefs.UpdatedAt.IsZero())

		got, err := s.LoadPreferences()
		require.NoError(t, err)
		require.Equal(t, board.Unchecked(10, 10), got.Layout())
		require.Equal(t, ".", got.EmptyChar)
		require.Equal(t, "#", got.SetChar)
		require.True(t, prefs.UpdatedAt.Equal(got.UpdatedAt))
	})

	t.Run("SaveRejectsInvalid", func(t *testing.T) {
		prefs := DefaultPreferences()
		prefs.Ranks = 0
		require.ErrorIs(t, s.SavePreferences(prefs), ErrInvalidPreferences)
	})

	t.Run("Reset", func(t *testing.T) {
		require.NoError(t, s.ResetPreferences())
		prefs, err := s.LoadPreferences()
		require.NoError(t, err)
		require.Equal(t, board.Chess, prefs.Layout())
	})
}

func TestStorage_OnDisk(t *testing.T) {
	dir := t.TempDir()

	s, err := Open(dir)
	require.NoError(t, err)
	prefs := DefaultPreferences()
	prefs.Files = 5
	require.NoError(t, s.SavePreferences(prefs))
	require.NoError(t, s.Close())

	s, err = Open(dir)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.LoadPreferences()
	require.NoError(t, err)
	require.Equal(t, uint(5), got.Files)
}

func TestDataPaths(t *testing.T) {
	t.Setenv("HOME", t.TempDir())
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())

	dataDir, err := DataDir()
	require.NoError(t, err)
	require.Equal(t, appName, filepath.Base(dataDir))
	_, err = os.Stat(dataDir)
	require.NoError(t, err, "data directory was not created")

	dbDir, err := DatabaseDir("")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dataDir, dbSubdir), dbDir)
	_, err = os.Stat(dbDir)
	require.NoError(t, err)
}

func TestDatabaseDir_Override(t *testing.T) {
	t.Setenv("XDG_DATA_HOME", t.TempDir())
	t.Setenv("APPDATA", t.TempDir())
	override := filepath.Join(t.TempDir(), "nested", "prefs")

	dbDir, err := DatabaseDir(override)
	require.NoError(t, err)
	require.Equal(t, override, dbDir)
	_, err = os.Stat(override)
	require.NoError(t, err, "override directory was not created")

	s, err := NewStorage(override)
	require.NoError(t, err)
	prefs := DefaultPreferences()
	prefs.Files = 7
	require.NoError(t, s.SavePreferences(prefs))
	require.NoError(t, s.Close())

	s, err = Open(override)
	require.NoError(t, err)
	defer s.Close()
	got, err := s.LoadPreferences()
	require.NoError(t, err)
	require.Equal(t, uint(7), got.Files)
}

func TestDataHome(t *testing.T) {
	xdg, appData := t.TempDir(), t.TempDir()
	t.Setenv("XDG_DATA_HOME", xdg)
	t.Setenv("APPDATA", appData)

	dir, err := dataHome("linux")
	require.NoError(t, err)
	require.Equal(t, xdg, dir)

	dir, err = dataHome("windows")
	require.NoError(t, err)
	require.Equal(t, appData, dir)

	home, err := os.UserHomeDir()
	require.NoError(t, err)

	dir, err = dataHome("darwin")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, "Library", "Application Support"), dir)

	t.Setenv("XDG_DATA_HOME", "")
	dir, err = dataHome("freebsd")
	require.NoError(t, err)
	require.Equal(t, filepath.Join(home, ".local", "share"), dir)
}
