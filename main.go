package main

import (
	"flag"
	"os"
	"time"

	"gomoku/config"
	"gomoku/engine"
	"gomoku/experiments"
	"gomoku/searcher"
	"gomoku/searcher/agent"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

func main() {
	if !config.LoadDotEnv(".env", "../.env") {
		log.Debug().Msg("no .env file found")
	}

	mode := flag.String("mode", "play", "One of play, serve or experiment")
	remote := flag.String("remote", "", "URL of an agent server playing Max in play mode")
	port := flag.String("port", "", "Port of the agent server (overrides GOMOKU_PORT)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal().Err(err).Msg("invalid configuration")
	}
	setupLogging(cfg.LogLevel)

	switch *mode {
	case "play":
		play(cfg, *remote)
	case "serve":
		if *port != "" {
			cfg.Port = *port
		}
		server := agent.NewServer(agent.NewHeuristicAgent(cfg.Rules, selectorOptions(cfg)...), cfg.Rules)
		if err := server.ListenAndServe(cfg.Port); err != nil {
			log.Fatal().Err(err).Msg("agent server stopped")
		}
	case "experiment":
		if _, err := experiments.RunBaseline(cfg.OutputDir, cfg.Rules, cfg.Games); err != nil {
			log.Fatal().Err(err).Msg("baseline experiment failed")
		}
		if _, err := experiments.RunCenterRadius(cfg.OutputDir, cfg.Rules, cfg.Games); err != nil {
			log.Fatal().Err(err).Msg("center radius experiment failed")
		}
	default:
		log.Fatal().Msgf("unknown mode %q", *mode)
	}
}

func setupLogging(level string) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.Kitchen})
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Msgf("unknown log level %q, using info", level)
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}

func selectorOptions(cfg *config.Config) []searcher.Option {
	options := []searcher.Option{searcher.WithMetrics()}
	if cfg.CenterRadius >= 0 {
		options = append(options, searcher.WithCenter(cfg.Rules.BoardSize/2, cfg.CenterRadius))
	}
	return options
}

// play runs a single game of the heuristic agent (Min) against the random
// baseline or a remote agent (Max) and prints the final board.
func play(cfg *config.Config, remote string) {
	opponent := agent.NewRandomAgent(cfg.Seed)
	if remote != "" {
		opponent = engine.NewHTTPAgent(remote, nil)
	}

	e, err := engine.LocalEngine([]agent.Agent{
		agent.NewHeuristicAgent(cfg.Rules, selectorOptions(cfg)...),
		opponent,
	}, cfg.Rules)
	if err != nil {
		log.Fatal().Err(err).Msg("failed to create engine")
	}

	winner, gameMetric, _, err := e.Run()
	if err != nil {
		log.Fatal().Err(err).Msg("game aborted")
	}
	if winner == "" {
		winner = "nobody"
	}
	log.Info().Msgf("winner: %s after %d moves in %s\n%s", winner, gameMetric.TotalMoves, gameMetric.Duration, e.State.Cells)
}
