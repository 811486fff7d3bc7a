package pattern

import "gomoku/game"

// Direction is one of the four undirected line axes of the grid.
type Direction struct {
	DRow    int
	DColumn int
}

var Directions = [4]Direction{
	{DRow: 1, DColumn: 0},  // vertical
	{DRow: 0, DColumn: 1},  // horizontal
	{DRow: 1, DColumn: 1},  // diagonal \
	{DRow: 1, DColumn: -1}, // diagonal /
}

// Line is what a scan finds through one cell along one axis.
type Line struct {
	Stones   int // same-player stones contiguous with the origin, origin excluded
	OpenEnds int // 0, 1 or 2
}

// Scan walks up to winSize-1 cells each way from (row, column), which must
// hold a stone of player.
func Scan(board *game.Board, player game.Player, row, column int, dir Direction, winSize int) Line {
	var line Line
	for _, sign := range [2]int{1, -1} {
		stones, open := walk(board, player, row, column, sign*dir.DRow, sign*dir.DColumn, winSize)
		line.Stones += stones
		line.OpenEnds += open
	}
	return line
}

// walk stops at the edge, at an opponent stone or right after the first empty
// cell, which counts as the single open end of this sense.
func walk(board *game.Board, player game.Player, row, column, dRow, dColumn, winSize int) (stones, open int) {
	for i := 1; i < winSize; i++ {
		r, c := row+i*dRow, column+i*dColumn
		if !board.InBounds(r, c) {
			break
		}
		if board.Has(player, r, c) {
			stones++
			continue
		}
		if board.IsEmpty(r, c) {
			open = 1
		}
		break
	}
	return stones, open
}
