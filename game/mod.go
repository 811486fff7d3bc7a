package game

type StateHash uint64

// State is a position as seen by an agent. Play never mutates the receiver.
type State interface {
	Player() Player
	Board() *Board
	LegalMoves() []Move
	Play(Move) (State, error)
	Hash() StateHash
	Winner() string
	Over() bool
}
