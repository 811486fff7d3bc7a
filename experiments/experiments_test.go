package experiments

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"testing"

	"gomoku/game"

	"github.com/stretchr/testify/require"
)

func countRows(t *testing.T, path string) int {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()
	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)
	return len(rows)
}

func TestRunBaseline(t *testing.T) {
	dir, err := RunBaseline(t.TempDir(), game.Rules{BoardSize: 6, WinSize: 4}, 1)
	require.NoError(t, err)

	require.Equal(t, 3, countRows(t, filepath.Join(dir, "agent_configs.csv")))
	require.Equal(t, 4, countRows(t, filepath.Join(dir, "game_records.csv")), "One game per matchup plus header")
	require.Greater(t, countRows(t, filepath.Join(dir, "move_records.csv")), 4)
}

func TestRunCenterRadius(t *testing.T) {
	dir, err := RunCenterRadius(t.TempDir(), game.Rules{BoardSize: 5, WinSize: 4}, 1)
	require.NoError(t, err)

	require.Equal(t, 5, countRows(t, filepath.Join(dir, "agent_configs.csv")))
	require.Equal(t, 7, countRows(t, filepath.Join(dir, "game_records.csv")))
}

func TestRunExperimentRejectsInvalidRules(t *testing.T) {
	_, err := RunBaseline(t.TempDir(), game.Rules{BoardSize: 3, WinSize: 5}, 1)
	require.Error(t, err)
}
