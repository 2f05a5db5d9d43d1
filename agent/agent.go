package agent

import (
	"github.com/JonesRobM/Monopoly/experiments/metrics"
	"github.com/JonesRobM/Monopoly/game"
)

// Agent picks one of the legal action ids for the seat whose decision it is.
// The legal slice is never empty and is sorted ascending.
type Agent interface {
	Act(gs *game.GameState, legal []int) (int, metrics.SearchMetric)
}
