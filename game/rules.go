package game

import "fmt"

// Rules fixes the geometry of a game for its whole lifetime.
type Rules struct {
	BoardSize int `json:"board_size"`
	WinSize   int `json:"win_size"`
}

func NewStandardRules() Rules {
	return Rules{
		BoardSize: 15,
		WinSize:   5,
	}
}

func (r Rules) Validate() error {
	if r.BoardSize <= 0 {
		return fmt.Errorf("invalid rules: board size %d must be positive", r.BoardSize)
	}
	if r.WinSize < 2 || r.WinSize > r.BoardSize {
		return fmt.Errorf("invalid rules: win size %d must be between 2 and board size %d", r.WinSize, r.BoardSize)
	}
	return nil
}
