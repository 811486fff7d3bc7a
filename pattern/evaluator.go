package pattern

import "gomoku/game"

const (
	NearWinOpenScore     = 20000 // one stone short, both ends open
	NearWinHalfOpenScore = 10000 // one stone short, one end open
	RunWeight            = 1000  // per stone in a shorter run
)

// Evaluator measures the positional pressure of a player's stones. It keeps
// no state between calls.
type Evaluator struct {
	winSize int
}

func NewEvaluator(winSize int) *Evaluator {
	return &Evaluator{winSize: winSize}
}

func (e *Evaluator) WinSize() int {
	return e.winSize
}

// Classify converts a scanned line into its score contribution.
func (e *Evaluator) Classify(line Line) Score {
	switch {
	case line.Stones >= e.winSize-1:
		return Decisive()
	case line.Stones == e.winSize-2:
		switch line.OpenEnds {
		case 2:
			return Bounded(NearWinOpenScore)
		case 1:
			return Bounded(NearWinHalfOpenScore)
		default:
			return Bounded(int64(line.OpenEnds))
		}
	case line.Stones >= 2:
		score := int64(RunWeight * line.Stones)
		if line.OpenEnds > 0 {
			score *= 2
		}
		return Bounded(score)
	default:
		// An isolated stone is only worth its room to grow.
		return Bounded(int64(line.OpenEnds))
	}
}

// CellScore sums the four axes through a stone of player at (row, column).
func (e *Evaluator) CellScore(board *game.Board, player game.Player, row, column int) Score {
	total := Bounded(0)
	for _, dir := range Directions {
		total = total.Add(e.Classify(Scan(board, player, row, column, dir, e.winSize)))
	}
	return total
}

// Score sums CellScore over every stone of player. A stone shared by several
// lines is counted once per line through it.
func (e *Evaluator) Score(board *game.Board, player game.Player) Score {
	total := Bounded(0)
	for r := 0; r < board.Size; r++ {
		for c := 0; c < board.Size; c++ {
			if board.Has(player, r, c) {
				total = total.Add(e.CellScore(board, player, r, c))
			}
		}
	}
	return total
}
