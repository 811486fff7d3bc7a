package pattern

import "strconv"

// Score is either a bounded non-negative value or decisive, meaning the
// player already has a winning run. Decisive absorbs any addition.
type Score struct {
	decisive bool
	value    int64
}

func Bounded(value int64) Score {
	return Score{value: value}
}

func Decisive() Score {
	return Score{decisive: true}
}

func (s Score) IsDecisive() bool {
	return s.decisive
}

// Value is meaningless for a decisive score.
func (s Score) Value() int64 {
	return s.value
}

func (s Score) Add(other Score) Score {
	if s.decisive || other.decisive {
		return Decisive()
	}
	return Bounded(s.value + other.value)
}

func (s Score) String() string {
	if s.decisive {
		return "+inf"
	}
	return strconv.FormatInt(s.value, 10)
}

// Differential ranks a candidate move: gain minus loss, where a decisive side
// dominates any finite value.
type Differential struct {
	rank  int // -1 opponent decisive, 0 finite, +1 own decisive
	value int64
}

// Diff computes gain - loss. When both sides are decisive they cancel out to
// a finite zero.
func Diff(gain, loss Score) Differential {
	switch {
	case gain.decisive && loss.decisive:
		return Differential{}
	case gain.decisive:
		return Differential{rank: 1}
	case loss.decisive:
		return Differential{rank: -1}
	default:
		return Differential{value: gain.value - loss.value}
	}
}

func (d Differential) IsDecisive() bool {
	return d.rank != 0
}

func (d Differential) Greater(other Differential) bool {
	if d.rank != other.rank {
		return d.rank > other.rank
	}
	return d.rank == 0 && d.value > other.value
}

func (d Differential) String() string {
	switch d.rank {
	case 1:
		return "+inf"
	case -1:
		return "-inf"
	default:
		return strconv.FormatInt(d.value, 10)
	}
}
