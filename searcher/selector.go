package searcher

import (
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/pattern"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

type Option func(s *Selector)

// Candidate is an empty cell tagged with its enumeration priority. The
// priority only orders candidates, it never enters the score.
type Candidate struct {
	Move     game.Move
	Priority int
}

// Selector picks the empty cell whose one-ply differential is the greatest.
type Selector struct {
	evaluator    *pattern.Evaluator
	mid          int
	radius       int
	newCollector func() metrics.Collector
}

// WithCenter overrides the centered priority region.
func WithCenter(mid, radius int) Option {
	return func(s *Selector) {
		if mid >= 0 && radius >= 0 {
			s.mid = mid
			s.radius = radius
		}
	}
}

func WithMetrics() Option {
	return func(s *Selector) {
		s.newCollector = metrics.NewCollector
	}
}

func NewSelector(rules game.Rules, options ...Option) *Selector {
	s := &Selector{ // Default values
		evaluator:    pattern.NewEvaluator(rules.WinSize),
		mid:          rules.BoardSize / 2,
		radius:       rules.BoardSize / CenterDivisor,
		newCollector: metrics.NewDummyCollector,
	}
	for _, option := range options {
		option(s)
	}
	return s
}

func (s *Selector) Center() (mid, radius int) {
	return s.mid, s.radius
}

func (s *Selector) centered(row, column int) bool {
	return abs(row-s.mid) <= s.radius && abs(column-s.mid) <= s.radius
}

// Candidates lists the empty cells, centered ones first, otherwise row-major.
func (s *Selector) Candidates(board *game.Board) []Candidate {
	candidates := []Candidate{}
	for _, move := range board.EmptyCells() {
		priority := OuterPriority
		if s.centered(move.Row, move.Column) {
			priority = CenterPriority
		}
		candidates = append(candidates, Candidate{Move: move, Priority: priority})
	}
	slices.SortStableFunc(candidates, func(a, b Candidate) int {
		return b.Priority - a.Priority
	})
	return candidates
}

// BestMove returns the move for mover, or false when the board is full.
// The board is left untouched.
func (s *Selector) BestMove(board *game.Board, mover game.Player) (game.Move, bool) {
	move, ok, _ := s.Search(board, mover)
	return move, ok
}

// FindMove answers for the player to move in state.
func (s *Selector) FindMove(state game.State) (game.Move, bool, metrics.SearchMetric) {
	return s.Search(state.Board(), state.Player())
}

// Search simulates each candidate on a private copy of board: place, score
// both players, revert.
func (s *Selector) Search(board *game.Board, mover game.Player) (game.Move, bool, metrics.SearchMetric) {
	collector := s.newCollector()
	candidates := s.Candidates(board)
	collector.Start(len(candidates))

	scratch := board.Clone()
	var best game.Move
	var bestDiff pattern.Differential
	found := false

	for _, candidate := range candidates {
		move := candidate.Move
		if !scratch.IsEmpty(move.Row, move.Column) {
			continue
		}
		undo, err := scratch.Place(mover, move)
		if err != nil {
			log.Warn().Err(err).Msgf("skipping candidate %s", move)
			continue
		}
		diff := pattern.Diff(
			s.evaluator.Score(scratch, mover),
			s.evaluator.Score(scratch, mover.Opponent()),
		)
		scratch.Revert(undo)
		collector.AddEvaluation()

		if !found || diff.Greater(bestDiff) {
			best, bestDiff, found = move, diff, true
		}
	}

	if !found {
		log.Debug().Str("player", mover.String()).Msg("no empty cell left")
		return game.Move{}, false, collector.Complete("")
	}

	log.Debug().
		Str("player", mover.String()).
		Int("candidates", len(candidates)).
		Stringer("move", best).
		Stringer("differential", bestDiff).
		Msg("selected move")
	return best, true, collector.Complete(bestDiff.String())
}

func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
