package config

import (
	"os"
	"path/filepath"
	"testing"

	"gomoku/game"

	"github.com/stretchr/testify/require"
)

func TestLoad(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, game.NewStandardRules(), cfg.Rules)
		require.Equal(t, -1, cfg.CenterRadius)
		require.Equal(t, "8080", cfg.Port)
		require.Equal(t, uint64(1), cfg.Seed)
	})

	t.Run("environment overrides", func(t *testing.T) {
		t.Setenv("GOMOKU_BOARD_SIZE", "9")
		t.Setenv("GOMOKU_WIN_SIZE", "4")
		t.Setenv("GOMOKU_CENTER_RADIUS", "2")
		t.Setenv("GOMOKU_SEED", "77")
		t.Setenv("GOMOKU_GAMES", "not-a-number")

		cfg, err := Load()
		require.NoError(t, err)
		require.Equal(t, game.Rules{BoardSize: 9, WinSize: 4}, cfg.Rules)
		require.Equal(t, 2, cfg.CenterRadius)
		require.Equal(t, uint64(77), cfg.Seed)
		require.Equal(t, 10, cfg.Games, "Unparsable values fall back to the default")
	})

	t.Run("invalid rules are rejected", func(t *testing.T) {
		t.Setenv("GOMOKU_BOARD_SIZE", "4")
		t.Setenv("GOMOKU_WIN_SIZE", "5")

		_, err := Load()
		require.Error(t, err)
	})
}

func TestLoadDotEnv(t *testing.T) {
	t.Setenv("GOMOKU_PORT", "")
	os.Unsetenv("GOMOKU_PORT")
	path := filepath.Join(t.TempDir(), ".env")
	require.NoError(t, os.WriteFile(path, []byte("GOMOKU_PORT=9191\n"), 0644))

	require.False(t, LoadDotEnv(filepath.Join(t.TempDir(), "missing.env")))
	require.True(t, LoadDotEnv("missing.env", path))
	require.Equal(t, "9191", GetEnv("GOMOKU_PORT", "8080"))
}
