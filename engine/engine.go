package engine

import "gomoku/experiments/metrics"

const MaxMoves = 10000

type Runner interface {
	// Run plays a game till there's a winner, the board is full or the move cap is reached
	Run() (winner string, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric, err error)
}
