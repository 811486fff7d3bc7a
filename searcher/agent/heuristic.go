package agent

import (
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher"
)

type heuristicAgent struct {
	selector *searcher.Selector
}

// NewHeuristicAgent returns the one-ply pattern agent for a board of the given
// rules.
func NewHeuristicAgent(rules game.Rules, options ...searcher.Option) Agent {
	return heuristicAgent{selector: searcher.NewSelector(rules, options...)}
}

func (a heuristicAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	move, ok, metric := a.selector.FindMove(state)
	if !ok {
		return game.Move{}, metric, ErrNoMove
	}
	return move, metric, nil
}
