package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Duration    time.Duration
	Candidates  int
	Evaluations int
	Best        string // Best differential, "" when no move was found
}

type MoveMetric struct {
	Step   int
	Player string
	Row    int
	Column int
	SearchMetric
}

type GameMetric struct {
	StartingPlayer string
	Winner         string // "" for a draw
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(candidates int)
	AddEvaluation()
	Complete(best string) SearchMetric
}

type collector struct {
	startTime   time.Time
	candidates  int
	evaluations atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(candidates int) {
	m.startTime = time.Now()
	m.candidates = candidates
	m.evaluations.Store(0)
}

func (m *collector) AddEvaluation() {
	m.evaluations.Add(1)
}

func (m *collector) Complete(best string) SearchMetric {
	return SearchMetric{
		Duration:    time.Since(m.startTime),
		Candidates:  m.candidates,
		Evaluations: int(m.evaluations.Load()),
		Best:        best,
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(candidates int)              {}
func (m *dummyCollector) AddEvaluation()                    {}
func (m *dummyCollector) Complete(best string) SearchMetric { return SearchMetric{} }
