package metrics

import (
	"sync/atomic"
	"time"
)

type SearchMetric struct {
	Playouts   int
	CutoffHits int
	Cutoff     int
	Duration   time.Duration
}

type MoveMetric struct {
	Step     int
	Player   int // seat index
	ActionID int
	Action   string
	SearchMetric
}

type GameMetric struct {
	Seed           uint64
	StartingPlayer int
	Winner         int // seat index, -1 when the step cap hit
	Rounds         int
	Bankruptcies   int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
}

type Collector interface {
	Start(cutoff int)
	AddPlayout()
	AddCutoffHit()
	Complete() SearchMetric
}

type collector struct {
	cutoff     int
	startTime  time.Time
	playouts   atomic.Int32
	cutoffHits atomic.Int32
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(cutoff int) {
	m.startTime = time.Now()
	m.cutoff = cutoff
	m.playouts.Store(0)
	m.cutoffHits.Store(0)
}

func (m *collector) AddPlayout() {
	m.playouts.Add(1)
}

func (m *collector) AddCutoffHit() {
	m.cutoffHits.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Playouts:   int(m.playouts.Load()),
		CutoffHits: int(m.cutoffHits.Load()),
		Cutoff:     m.cutoff,
		Duration:   time.Since(m.startTime),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(cutoff int)       {}
func (m *dummyCollector) AddPlayout()            {}
func (m *dummyCollector) AddCutoffHit()          {}
func (m *dummyCollector) Complete() SearchMetric { return SearchMetric{} }
