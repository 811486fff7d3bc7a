package engine

import (
	"errors"
	"fmt"
	"time"

	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher/agent"

	"github.com/rs/zerolog/log"
	"golang.org/x/exp/slices"
)

var _ Runner = (*Engine)(nil)

// Engine drives two agents on one board. Agents[0] plays Min, Agents[1] plays Max.
type Engine struct {
	State    *game.GameState
	Agents   [2]agent.Agent
	MaxMoves int
}

func LocalEngine(agents []agent.Agent, rules game.Rules) (*Engine, error) {
	if len(agents) != 2 {
		panic("need exactly two agents")
	}

	state, err := game.NewGameState(rules)
	if err != nil {
		return nil, err
	}

	return &Engine{
		State:    state,
		Agents:   [2]agent.Agent{agents[0], agents[1]},
		MaxMoves: MaxMoves,
	}, nil
}

// Run executes the entire game loop until the game is over.
func (e *Engine) Run() (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	gameMetric := metrics.GameMetric{
		StartingPlayer: e.State.Player().String(),
		StartTime:      time.Now(),
	}
	moveMetrics := []metrics.MoveMetric{}

	log.Info().Msgf("player %s is starting", e.State.Player())

	for !e.State.Over() && e.State.MoveCount < e.MaxMoves {
		player := e.State.Player()

		move, searchMetric, err := e.Agents[player].FindMove(e.State)
		if errors.Is(err, agent.ErrNoMove) {
			log.Info().Msgf("player %s has no move left", player)
			break
		}
		if err != nil {
			return "", gameMetric, moveMetrics, fmt.Errorf("player %s failed to find a move: %w", player, err)
		}

		legal := e.State.LegalMoves()
		if slices.Index(legal, move) < 0 {
			log.Warn().Msgf("player %s returned an illegal move %s => forcing %s", player, move, legal[0])
			move = legal[0]
		}

		next, err := e.State.Play(move)
		if err != nil {
			return "", gameMetric, moveMetrics, err
		}
		e.State = next.(*game.GameState)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         e.State.MoveCount,
			Player:       player.String(),
			Row:          move.Row,
			Column:       move.Column,
			SearchMetric: searchMetric,
		})
		log.Debug().Msgf("move %d: player %s plays %s", e.State.MoveCount, player, move)
	}

	gameMetric.EndTime = time.Now()
	gameMetric.Duration = gameMetric.EndTime.Sub(gameMetric.StartTime)
	gameMetric.TotalMoves = e.State.MoveCount
	gameMetric.Winner = e.State.Winner()

	if gameMetric.Winner != "" {
		log.Info().Msgf("game ended with winner %s after %d moves", gameMetric.Winner, gameMetric.TotalMoves)
	} else {
		log.Info().Msgf("game ended without a winner after %d moves", gameMetric.TotalMoves)
	}

	return gameMetric.Winner, gameMetric, moveMetrics, nil
}
