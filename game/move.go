package game

import "fmt"

// Player selects one of the two occupancy planes of a Board.
type Player int

const (
	Min Player = iota
	Max
)

func (p Player) Opponent() Player {
	if p == Min {
		return Max
	}
	return Min
}

func (p Player) String() string {
	switch p {
	case Min:
		return "min"
	case Max:
		return "max"
	default:
		return fmt.Sprintf("player(%d)", int(p))
	}
}

// Move is a cell coordinate, 0-indexed.
type Move struct {
	Row    int `json:"row"`
	Column int `json:"column"`
}

func (m Move) String() string {
	return fmt.Sprintf("(%d,%d)", m.Row, m.Column)
}
