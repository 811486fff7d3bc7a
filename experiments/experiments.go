package experiments

import (
	"fmt"

	"gomoku/engine"
	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher"
	"gomoku/searcher/agent"

	"github.com/rs/zerolog/log"
)

const (
	HeuristicAgent = "heuristic"
	RandomAgent    = "random"
)

// RunBaseline pits the heuristic agent against the random baseline, in both
// colours, and against itself. It returns the directory holding the records.
func RunBaseline(root string, rules game.Rules, numGames int) (string, error) {
	heuristic := metrics.AgentConfig{ID: 1, Kind: HeuristicAgent, Radius: -1}
	random := metrics.AgentConfig{ID: 2, Kind: RandomAgent, Seed: 1}
	matchUps := [][]metrics.AgentConfig{
		{heuristic, random},
		{random, heuristic},
		{heuristic, heuristic},
	}

	return runExperiment(root, "baseline", rules, []metrics.AgentConfig{heuristic, random}, matchUps, numGames)
}

// RunCenterRadius pairs heuristic agents that only differ by the size of their
// centered priority region.
func RunCenterRadius(root string, rules game.Rules, numGames int) (string, error) {
	baseline := metrics.AgentConfig{ID: 0, Kind: HeuristicAgent, Radius: -1}
	configs := []metrics.AgentConfig{
		{ID: 1, Kind: HeuristicAgent, Radius: 0},
		{ID: 2, Kind: HeuristicAgent, Radius: 1},
		{ID: 3, Kind: HeuristicAgent, Radius: rules.BoardSize / 2},
	}

	matchUps := [][]metrics.AgentConfig{}
	for _, config := range configs {
		matchUps = append(matchUps, []metrics.AgentConfig{baseline, config}, []metrics.AgentConfig{config, baseline})
	}

	return runExperiment(root, "center_radius", rules, append(configs, baseline), matchUps, numGames)
}

func runExperiment(root, name string, rules game.Rules, configs []metrics.AgentConfig, matchUps [][]metrics.AgentConfig, numGames int) (string, error) {
	count := 0
	gameRecords := []metrics.GameRecord{}
	moveRecords := []metrics.MoveRecord{}

	log.Info().Msgf("starting %s experiment...", name)

	for mi, matchUp := range matchUps {
		config1 := matchUp[0]
		config2 := matchUp[1]

		log.Info().Msgf("starting matchup %d of %d between agent1=%+v and agent2=%+v...", mi+1, len(matchUps), config1, config2)

		for i := 0; i < numGames; i++ {
			count++
			winner, gameMetric, moveMetrics, err := runGame(rules, config1, config2, uint64(count))
			if err != nil {
				return "", fmt.Errorf("matchup %d game %d: %w", mi+1, i+1, err)
			}
			gameRecords = append(gameRecords, metrics.GameRecord{
				ID:         count,
				Agent1:     config1.ID,
				Agent2:     config2.ID,
				GameMetric: gameMetric,
			})
			for _, mm := range moveMetrics {
				moveRecords = append(moveRecords, metrics.MoveRecord{
					Game:       count,
					MoveMetric: mm,
				})
			}

			log.Info().Msgf("completed matchup %d of %d game %d with winner: %q", mi+1, len(matchUps), i+1, winner)
		}
	}

	log.Info().Msgf("completed %s experiment", name)

	writer, err := metrics.NewWriter(root, name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}
	if err := writer.WriteAgentConfigs(configs); err != nil {
		return "", fmt.Errorf("failed to store agent configs: %w", err)
	}
	if err := writer.WriteGameRecords(gameRecords); err != nil {
		return "", fmt.Errorf("failed to write game records: %w", err)
	}
	if err := writer.WriteMoveRecords(moveRecords); err != nil {
		return "", fmt.Errorf("failed to write move records: %w", err)
	}
	log.Info().Msgf("stored records in %s", writer.Dir())

	return writer.Dir(), nil
}

// runGame plays a single game, config1 as Min, and returns the winner
func runGame(rules game.Rules, config1, config2 metrics.AgentConfig, gameID uint64) (string, metrics.GameMetric, []metrics.MoveMetric, error) {
	agents := []agent.Agent{
		createAgent(rules, config1, gameID),
		createAgent(rules, config2, gameID),
	}
	e, err := engine.LocalEngine(agents, rules)
	if err != nil {
		return "", metrics.GameMetric{}, nil, err
	}
	return e.Run()
}

func createAgent(rules game.Rules, config metrics.AgentConfig, gameID uint64) agent.Agent {
	if config.Kind == RandomAgent {
		// Vary the seed per game so repeated games differ but stay reproducible
		return agent.NewRandomAgent(config.Seed + gameID)
	}

	options := []searcher.Option{searcher.WithMetrics()}
	if config.Radius >= 0 {
		options = append(options, searcher.WithCenter(rules.BoardSize/2, config.Radius))
	}
	return agent.NewHeuristicAgent(rules, options...)
}
