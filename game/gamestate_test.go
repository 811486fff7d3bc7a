package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRulesValidate(t *testing.T) {
	require.NoError(t, NewStandardRules().Validate())
	require.Error(t, Rules{BoardSize: 0, WinSize: 1}.Validate())
	require.Error(t, Rules{BoardSize: 5, WinSize: 6}.Validate())
	require.Error(t, Rules{BoardSize: 5, WinSize: 1}.Validate())
}

func TestGameStatePlay(t *testing.T) {
	t.Run("alternates players without mutating the receiver", func(t *testing.T) {
		gs, err := NewGameState(Rules{BoardSize: 5, WinSize: 4})
		require.NoError(t, err)

		next, err := gs.Play(Move{Row: 2, Column: 2})
		require.NoError(t, err)

		require.Equal(t, Max, next.Player())
		require.True(t, next.Board().Has(Min, 2, 2))
		require.True(t, gs.Cells.IsEmpty(2, 2), "Play should return a new state")
		require.Equal(t, Min, gs.Player())
		require.Len(t, next.LegalMoves(), 24)
		require.NotEqual(t, gs.Hash(), next.Hash())
	})

	t.Run("rejects an occupied cell", func(t *testing.T) {
		gs, err := NewGameState(Rules{BoardSize: 3, WinSize: 3})
		require.NoError(t, err)
		next, err := gs.Play(Move{Row: 0, Column: 0})
		require.NoError(t, err)

		_, err = next.Play(Move{Row: 0, Column: 0})
		require.ErrorIs(t, err, ErrOccupied)
	})

	t.Run("detects a completed run", func(t *testing.T) {
		gs, err := NewGameState(Rules{BoardSize: 5, WinSize: 3})
		require.NoError(t, err)
		moves := []Move{
			{Row: 0, Column: 0}, {Row: 4, Column: 4},
			{Row: 1, Column: 1}, {Row: 4, Column: 3},
			{Row: 2, Column: 2},
		}

		var state State = gs
		for _, m := range moves {
			state, err = state.Play(m)
			require.NoError(t, err)
		}

		require.Equal(t, "min", state.Winner())
		require.True(t, state.Over())
		require.Empty(t, state.LegalMoves(), "No moves after a win")
		_, err = state.Play(Move{Row: 3, Column: 3})
		require.Error(t, err)
	})

	t.Run("a full board without a run is over with no winner", func(t *testing.T) {
		board, err := FromRows(
			"xox",
			"xoo",
			"ox.",
		)
		require.NoError(t, err)
		gs := &GameState{Cells: board, Rules: Rules{BoardSize: 3, WinSize: 3}, CurrentPlayer: Min}

		next, err := gs.Play(Move{Row: 2, Column: 2})
		require.NoError(t, err)
		require.Equal(t, "", next.Winner())
		require.True(t, next.Over())
	})
}

func TestGameStateValidate(t *testing.T) {
	gs, err := NewGameState(NewStandardRules())
	require.NoError(t, err)
	require.NoError(t, gs.Validate())

	gs.Cells = NewBoard(9)
	require.Error(t, gs.Validate())

	gs.Cells = nil
	require.Error(t, gs.Validate())
}
