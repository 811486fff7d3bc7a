package searcher

import (
	"testing"

	"gomoku/game"

	"github.com/stretchr/testify/require"
)

func emptyBoard(size int) *game.Board {
	return game.NewBoard(size)
}

func placeAll(t *testing.T, board *game.Board, player game.Player, moves ...game.Move) {
	t.Helper()
	for _, m := range moves {
		_, err := board.Place(player, m)
		require.NoError(t, err)
	}
}

func row(r int, columns ...int) []game.Move {
	moves := []game.Move{}
	for _, c := range columns {
		moves = append(moves, game.Move{Row: r, Column: c})
	}
	return moves
}

func TestCandidates(t *testing.T) {
	t.Run("centered cells come first in row-major order", func(t *testing.T) {
		s := NewSelector(game.NewStandardRules())
		mid, radius := s.Center()
		require.Equal(t, 7, mid)
		require.Equal(t, 3, radius)

		candidates := s.Candidates(emptyBoard(15))

		require.Len(t, candidates, 225)
		require.Equal(t, Candidate{Move: game.Move{Row: 4, Column: 4}, Priority: 1}, candidates[0])
		require.Equal(t, Candidate{Move: game.Move{Row: 10, Column: 10}, Priority: 1}, candidates[48])
		require.Equal(t, Candidate{Move: game.Move{Row: 0, Column: 0}, Priority: 0}, candidates[49])
		require.Equal(t, 0, candidates[224].Priority)
	})

	t.Run("occupied cells are skipped", func(t *testing.T) {
		s := NewSelector(game.Rules{BoardSize: 3, WinSize: 3})
		board, err := game.FromRows(
			"x.o",
			"...",
			"...",
		)
		require.NoError(t, err)

		candidates := s.Candidates(board)
		require.Len(t, candidates, 7)
		for _, c := range candidates {
			require.True(t, board.IsEmpty(c.Move.Row, c.Move.Column))
		}
	})

	t.Run("center derives from the board size and can be overridden", func(t *testing.T) {
		s := NewSelector(game.Rules{BoardSize: 9, WinSize: 4})
		mid, radius := s.Center()
		require.Equal(t, 4, mid)
		require.Equal(t, 1, radius)

		s = NewSelector(game.Rules{BoardSize: 9, WinSize: 4}, WithCenter(0, 0))
		candidates := s.Candidates(emptyBoard(9))
		require.Equal(t, Candidate{Move: game.Move{Row: 0, Column: 0}, Priority: 1}, candidates[0])
		require.Equal(t, game.Move{Row: 0, Column: 1}, candidates[1].Move)
	})
}

func TestBestMove(t *testing.T) {
	rules := game.NewStandardRules()

	t.Run("empty board picks the first centered cell", func(t *testing.T) {
		s := NewSelector(rules)

		move, ok := s.BestMove(emptyBoard(15), game.Min)

		require.True(t, ok)
		require.Equal(t, game.Move{Row: 4, Column: 4}, move)
	})

	t.Run("full board has no move", func(t *testing.T) {
		s := NewSelector(game.Rules{BoardSize: 3, WinSize: 3})
		board, err := game.FromRows(
			"xox",
			"xoo",
			"oxx",
		)
		require.NoError(t, err)

		_, ok := s.BestMove(board, game.Max)
		require.False(t, ok)
	})

	t.Run("completes a winning run", func(t *testing.T) {
		s := NewSelector(rules)
		board := emptyBoard(15)
		placeAll(t, board, game.Min, row(7, 3, 4, 5, 6)...)

		move, ok := s.BestMove(board, game.Min)

		require.True(t, ok)
		require.Equal(t, game.Move{Row: 7, Column: 7}, move)
	})

	t.Run("blocks the open end of an opponent four", func(t *testing.T) {
		s := NewSelector(rules)
		board := emptyBoard(15)
		placeAll(t, board, game.Min, game.Move{Row: 7, Column: 2})
		placeAll(t, board, game.Max, row(7, 3, 4, 5, 6)...)

		move, ok := s.BestMove(board, game.Min)

		require.True(t, ok)
		require.Equal(t, game.Move{Row: 7, Column: 7}, move)
	})

	t.Run("still answers when the opponent has already won", func(t *testing.T) {
		s := NewSelector(rules, WithMetrics())
		board := emptyBoard(15)
		placeAll(t, board, game.Max, row(0, 0, 1, 2, 3, 4)...)

		move, ok, metric := s.Search(board, game.Min)

		require.True(t, ok)
		require.Equal(t, game.Move{Row: 4, Column: 4}, move)
		require.Equal(t, "-inf", metric.Best)
	})

	t.Run("polarity follows the mover", func(t *testing.T) {
		s := NewSelector(rules)
		board := emptyBoard(15)
		placeAll(t, board, game.Max, game.Move{Row: 7, Column: 2})
		placeAll(t, board, game.Min, row(7, 3, 4, 5, 6)...)

		move, ok := s.BestMove(board, game.Max)

		require.True(t, ok)
		require.Equal(t, game.Move{Row: 7, Column: 7}, move)
	})

	t.Run("leaves the board untouched and is deterministic", func(t *testing.T) {
		s := NewSelector(rules)
		board := emptyBoard(15)
		placeAll(t, board, game.Min, row(6, 5, 6, 8)...)
		placeAll(t, board, game.Max, row(8, 6, 7)...)
		before := board.Clone()

		first, ok := s.BestMove(board, game.Max)
		require.True(t, ok)
		require.True(t, board.Equal(before), "Search should not leave any stone behind")

		second, ok := s.BestMove(board, game.Max)
		require.True(t, ok)
		require.Equal(t, first, second)
	})
}

func TestFindMoveMetrics(t *testing.T) {
	rules := game.Rules{BoardSize: 7, WinSize: 4}
	state, err := game.NewGameState(rules)
	require.NoError(t, err)

	t.Run("collects metrics when enabled", func(t *testing.T) {
		s := NewSelector(rules, WithMetrics())

		move, ok, metric := s.FindMove(state)

		require.True(t, ok)
		require.Equal(t, game.Move{Row: 2, Column: 2}, move)
		require.Equal(t, 49, metric.Candidates)
		require.Equal(t, 49, metric.Evaluations)
		require.Equal(t, "8", metric.Best)
	})

	t.Run("reports nothing by default", func(t *testing.T) {
		s := NewSelector(rules)

		_, ok, metric := s.FindMove(state)

		require.True(t, ok)
		require.Zero(t, metric.Candidates)
	})
}
