package game

import (
	"encoding/binary"
	"fmt"
	"hash/fnv"
)

// GameState is the game environment: the board, the rules and whose turn it
// is. Min always moves first.
type GameState struct {
	Cells         *Board `json:"board"`
	Rules         Rules  `json:"rules"`
	CurrentPlayer Player `json:"current_player"`
	LastMove      *Move  `json:"last_move,omitempty"`
	MoveCount     int    `json:"move_count"`
	Won           string `json:"winner"` // "" while nobody has won
}

// NewGameState returns an empty board for the given rules.
func NewGameState(rules Rules) (*GameState, error) {
	if err := rules.Validate(); err != nil {
		return nil, err
	}
	return &GameState{
		Cells:         NewBoard(rules.BoardSize),
		Rules:         rules,
		CurrentPlayer: Min,
	}, nil
}

func (gs GameState) Copy() *GameState {
	var last *Move
	if gs.LastMove != nil {
		m := *gs.LastMove
		last = &m
	}
	return &GameState{
		Cells:         gs.Cells.Clone(),
		Rules:         gs.Rules,
		CurrentPlayer: gs.CurrentPlayer,
		LastMove:      last,
		MoveCount:     gs.MoveCount,
		Won:           gs.Won,
	}
}

// Validate checks a state received from outside, e.g. over HTTP.
func (gs *GameState) Validate() error {
	if err := gs.Rules.Validate(); err != nil {
		return err
	}
	if gs.Cells == nil {
		return fmt.Errorf("invalid state: missing board")
	}
	if gs.Cells.Size != gs.Rules.BoardSize {
		return fmt.Errorf("invalid state: board size %d does not match rules board size %d", gs.Cells.Size, gs.Rules.BoardSize)
	}
	if gs.CurrentPlayer != Min && gs.CurrentPlayer != Max {
		return fmt.Errorf("invalid state: unknown current player %d", gs.CurrentPlayer)
	}
	return gs.Cells.Validate()
}

func (gs GameState) Player() Player {
	return gs.CurrentPlayer
}

func (gs GameState) Board() *Board {
	return gs.Cells
}

// LegalMoves returns every empty cell, or nothing once the game is over.
func (gs GameState) LegalMoves() []Move {
	if gs.Won != "" {
		return []Move{}
	}
	return gs.Cells.EmptyCells()
}

func (gs GameState) Play(move Move) (State, error) {
	if gs.Won != "" {
		return nil, fmt.Errorf("game is over - no moves allowed")
	}
	next := gs.Copy()
	if _, err := next.Cells.Place(gs.CurrentPlayer, move); err != nil {
		return nil, fmt.Errorf("illegal move: %w", err)
	}
	if next.completesRun(gs.CurrentPlayer, move) {
		next.Won = gs.CurrentPlayer.String()
	}
	m := move
	next.LastMove = &m
	next.MoveCount++
	next.CurrentPlayer = gs.CurrentPlayer.Opponent()
	return next, nil
}

// completesRun reports whether the stone at move is part of at least WinSize
// consecutive stones of player along any axis.
func (gs *GameState) completesRun(player Player, move Move) bool {
	axes := [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}
	for _, axis := range axes {
		run := 1
		for _, sign := range [2]int{1, -1} {
			r, c := move.Row+sign*axis[0], move.Column+sign*axis[1]
			for gs.Cells.Has(player, r, c) {
				run++
				r, c = r+sign*axis[0], c+sign*axis[1]
			}
		}
		if run >= gs.Rules.WinSize {
			return true
		}
	}
	return false
}

func (gs GameState) Winner() string {
	return gs.Won
}

// Over is true once someone has won or the board is full.
func (gs GameState) Over() bool {
	return gs.Won != "" || gs.Cells.Full()
}

func (gs GameState) Hash() StateHash {
	hasher := fnv.New64a()

	binary.Write(hasher, binary.LittleEndian, int64(gs.CurrentPlayer))
	binary.Write(hasher, binary.LittleEndian, int64(gs.Cells.Size))

	for _, plane := range gs.Cells.Planes {
		for _, set := range plane {
			var b byte
			if set {
				b = 1
			}
			hasher.Write([]byte{b})
		}
	}

	return StateHash(hasher.Sum64())
}
