package agent

import (
	"errors"

	"gomoku/experiments/metrics"
	"gomoku/game"
)

// ErrNoMove is returned when the board has no empty cell left.
var ErrNoMove = errors.New("no move available")

type Agent interface {
	// FindMove returns the move for the player to move in state and the
	// search metrics (if collected)
	FindMove(state game.State) (game.Move, metrics.SearchMetric, error)
}
