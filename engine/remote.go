package engine

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"gomoku/experiments/metrics"
	"gomoku/game"
	"gomoku/searcher/agent"
)

// HTTPAgent asks a remote agent server for each move.
type HTTPAgent struct {
	URL    string
	Client *http.Client
}

func NewHTTPAgent(url string, client *http.Client) *HTTPAgent {
	if client == nil {
		client = &http.Client{Timeout: 30 * time.Second}
	}
	return &HTTPAgent{
		URL:    strings.TrimRight(url, "/"),
		Client: client,
	}
}

// FindMove encodes the current state in JSON and posts it to /findmove on the agent side.
func (a *HTTPAgent) FindMove(state game.State) (game.Move, metrics.SearchMetric, error) {
	start := time.Now()

	gs, ok := state.(*game.GameState)
	if !ok {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("unexpected state type %T", state)
	}

	bodyBytes, err := json.Marshal(agent.FindMoveRequest{State: *gs})
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to encode state: %w", err)
	}

	resp, err := a.Client.Post(a.URL+"/findmove", "application/json", bytes.NewReader(bodyBytes))
	if err != nil {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to reach agent: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
	case http.StatusNoContent:
		return game.Move{}, metrics.SearchMetric{}, agent.ErrNoMove
	default:
		out, _ := io.ReadAll(resp.Body)
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("agent returned status %d: %s", resp.StatusCode, strings.TrimSpace(string(out)))
	}

	var move game.Move
	if err := json.NewDecoder(resp.Body).Decode(&move); err != nil {
		return game.Move{}, metrics.SearchMetric{}, fmt.Errorf("failed to decode move: %w", err)
	}

	return move, metrics.SearchMetric{Duration: time.Since(start)}, nil
}
