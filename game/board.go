package game

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrOutOfBounds = errors.New("cell is out of bounds")
	ErrOccupied    = errors.New("cell is occupied")
)

// Board holds one boolean plane per player, row-major. A cell is empty iff
// it is set in neither plane.
type Board struct {
	Size   int       `json:"size"`
	Planes [2][]bool `json:"planes"`
}

// Undo reverts a single Place.
type Undo struct {
	player Player
	index  int
	valid  bool
}

func NewBoard(size int) *Board {
	return &Board{
		Size:   size,
		Planes: [2][]bool{make([]bool, size*size), make([]bool, size*size)},
	}
}

// FromRows builds a board from text rows: 'x' for Min, 'o' for Max and '.'
// for an empty cell.
func FromRows(rows ...string) (*Board, error) {
	b := NewBoard(len(rows))
	for r, row := range rows {
		if len(row) != b.Size {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(row), b.Size)
		}
		for c, ch := range row {
			switch ch {
			case 'x':
				b.Planes[Min][b.index(r, c)] = true
			case 'o':
				b.Planes[Max][b.index(r, c)] = true
			case '.':
			default:
				return nil, fmt.Errorf("row %d: unexpected cell %q", r, ch)
			}
		}
	}
	return b, nil
}

func (b *Board) index(row, column int) int {
	return row*b.Size + column
}

func (b *Board) InBounds(row, column int) bool {
	return row >= 0 && row < b.Size && column >= 0 && column < b.Size
}

// Has reports whether player occupies the cell. Out of bounds cells are never
// occupied.
func (b *Board) Has(player Player, row, column int) bool {
	if !b.InBounds(row, column) {
		return false
	}
	return b.Planes[player][b.index(row, column)]
}

func (b *Board) IsEmpty(row, column int) bool {
	if !b.InBounds(row, column) {
		return false
	}
	i := b.index(row, column)
	return !b.Planes[Min][i] && !b.Planes[Max][i]
}

// Place puts a stone of player on an empty cell and returns the token that
// takes it back.
func (b *Board) Place(player Player, move Move) (Undo, error) {
	if !b.InBounds(move.Row, move.Column) {
		return Undo{}, fmt.Errorf("place %s at %s: %w", player, move, ErrOutOfBounds)
	}
	if !b.IsEmpty(move.Row, move.Column) {
		return Undo{}, fmt.Errorf("place %s at %s: %w", player, move, ErrOccupied)
	}
	i := b.index(move.Row, move.Column)
	b.Planes[player][i] = true
	return Undo{player: player, index: i, valid: true}, nil
}

func (b *Board) Revert(u Undo) {
	if !u.valid {
		return
	}
	b.Planes[u.player][u.index] = false
}

func (b *Board) Clone() *Board {
	clone := &Board{Size: b.Size}
	for p := range b.Planes {
		clone.Planes[p] = make([]bool, len(b.Planes[p]))
		copy(clone.Planes[p], b.Planes[p])
	}
	return clone
}

func (b *Board) Equal(other *Board) bool {
	if other == nil || b.Size != other.Size {
		return false
	}
	for p := range b.Planes {
		if len(b.Planes[p]) != len(other.Planes[p]) {
			return false
		}
		for i := range b.Planes[p] {
			if b.Planes[p][i] != other.Planes[p][i] {
				return false
			}
		}
	}
	return true
}

// EmptyCells lists the empty cells in row-major order.
func (b *Board) EmptyCells() []Move {
	cells := []Move{}
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.IsEmpty(r, c) {
				cells = append(cells, Move{Row: r, Column: c})
			}
		}
	}
	return cells
}

func (b *Board) Full() bool {
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			if b.IsEmpty(r, c) {
				return false
			}
		}
	}
	return true
}

// Validate checks the plane sizes and that no cell is set in both planes.
func (b *Board) Validate() error {
	if b.Size <= 0 {
		return fmt.Errorf("invalid board: size %d must be positive", b.Size)
	}
	cells := b.Size * b.Size
	for p := range b.Planes {
		if len(b.Planes[p]) != cells {
			return fmt.Errorf("invalid board: plane %s has %d cells, want %d", Player(p), len(b.Planes[p]), cells)
		}
	}
	for i := 0; i < cells; i++ {
		if b.Planes[Min][i] && b.Planes[Max][i] {
			return fmt.Errorf("invalid board: cell (%d,%d) is set in both planes", i/b.Size, i%b.Size)
		}
	}
	return nil
}

func (b *Board) String() string {
	var sb strings.Builder
	for r := 0; r < b.Size; r++ {
		for c := 0; c < b.Size; c++ {
			switch {
			case b.Has(Min, r, c):
				sb.WriteByte('x')
			case b.Has(Max, r, c):
				sb.WriteByte('o')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	return sb.String()
}
