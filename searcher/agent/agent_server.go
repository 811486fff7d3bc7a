package agent

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"gomoku/game"

	"github.com/rs/zerolog/log"
)

// FindMoveRequest is the body of POST /findmove.
type FindMoveRequest struct {
	State game.GameState `json:"state"`
}

// Server answers move requests for a single agent over HTTP. Requests must
// carry the rules the agent was built for.
type Server struct {
	agent Agent
	rules game.Rules
}

func NewServer(agent Agent, rules game.Rules) *Server {
	return &Server{agent: agent, rules: rules}
}

// Handler routes /findmove on a local mux rather than the global DefaultServeMux.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("POST /findmove", s.handleFindMove)
	return mux
}

// ListenAndServe blocks serving on the given port.
func (s *Server) ListenAndServe(port string) error {
	log.Info().Msgf("starting agent server on :%s ...", port)
	return http.ListenAndServe(":"+port, s.Handler())
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	var payload FindMoveRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if err := payload.State.Validate(); err != nil {
		http.Error(w, "bad request: "+err.Error(), http.StatusBadRequest)
		return
	}
	if payload.State.Rules != s.rules {
		http.Error(w, fmt.Sprintf("bad request: rules %+v do not match server rules %+v", payload.State.Rules, s.rules), http.StatusBadRequest)
		return
	}

	move, metric, err := s.agent.FindMove(&payload.State)
	if errors.Is(err, ErrNoMove) {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("agent failed to find a move")
		http.Error(w, "failed to find move: "+err.Error(), http.StatusInternalServerError)
		return
	}

	log.Debug().
		Stringer("move", move).
		Dur("duration", metric.Duration).
		Int("moves", payload.State.MoveCount).
		Msg("answered move request")

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(move); err != nil {
		http.Error(w, "failed to encode move: "+err.Error(), http.StatusInternalServerError)
	}
}
