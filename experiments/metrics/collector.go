package metrics

import (
	"sync/atomic"
	"time"

	"othello/game"
)

type SearchMetric struct {
	Searcher     string
	Goroutines   int
	Duration     time.Duration
	Depth        int // Deepest completed minimax iteration
	Nodes        int // Positions visited
	Episodes     int // MCTS simulations
	FullPlayouts int // Rollouts that reached a terminal position
	Cutoff       int
	IsTreeReused bool
}

type MoveMetric struct {
	Step   int
	Player game.Player
	Move   game.Move
	SearchMetric
}

type GameMetric struct {
	ID             string
	StartingPlayer game.Player
	Winner         game.Player // 0 on a draw
	Score          int
	StartTime      time.Time
	EndTime        time.Time
	Duration       time.Duration
	TotalMoves     int
	Passes         int
}

type Collector interface {
	Start(searcher string, goroutines, cutoff int)
	SetTreeReused(value bool)
	SetDepth(depth int)
	AddNode()
	AddFullPlayout()
	AddEpisode()
	Complete() SearchMetric
}

type collector struct {
	searcher     string
	goroutines   int
	cutoff       int
	startTime    time.Time
	depth        atomic.Int32
	nodes        atomic.Int64
	episodes     atomic.Int32
	fullPlayouts atomic.Int32
	isTreeReused atomic.Bool
}

func NewCollector() Collector {
	return &collector{}
}

func (m *collector) Start(searcher string, goroutines, cutoff int) {
	m.startTime = time.Now()
	m.searcher = searcher
	m.goroutines = goroutines
	m.cutoff = cutoff
	m.depth.Store(0)
	m.nodes.Store(0)
	m.episodes.Store(0)
	m.fullPlayouts.Store(0)
}

func (m *collector) SetTreeReused(value bool) {
	m.isTreeReused.Store(value)
}

func (m *collector) SetDepth(depth int) {
	m.depth.Store(int32(depth))
}

func (m *collector) AddNode() {
	m.nodes.Add(1)
}

func (m *collector) AddFullPlayout() {
	m.fullPlayouts.Add(1)
}

func (m *collector) AddEpisode() {
	m.episodes.Add(1)
}

func (m *collector) Complete() SearchMetric {
	return SearchMetric{
		Searcher:     m.searcher,
		Goroutines:   m.goroutines,
		Duration:     time.Since(m.startTime),
		Depth:        int(m.depth.Load()),
		Nodes:        int(m.nodes.Load()),
		Episodes:     int(m.episodes.Load()),
		FullPlayouts: int(m.fullPlayouts.Load()),
		Cutoff:       m.cutoff,
		IsTreeReused: m.isTreeReused.Load(),
	}
}

type dummyCollector struct{}

func NewDummyCollector() Collector {
	return &dummyCollector{}
}

func (m *dummyCollector) Start(searcher string, goroutines, cutoff int) {}
func (m *dummyCollector) SetTreeReused(value bool)                      {}
func (m *dummyCollector) SetDepth(depth int)                            {}
func (m *dummyCollector) AddNode()                                      {}
func (m *dummyCollector) AddFullPlayout()                               {}
func (m *dummyCollector) AddEpisode()                                   {}
func (m *dummyCollector) Complete() SearchMetric                        { return SearchMetric{} }
