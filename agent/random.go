package agent

import (
	"golang.org/x/exp/rand"

	"github.com/JonesRobM/Monopoly/experiments/metrics"
	"github.com/JonesRobM/Monopoly/game"
)

type randomAgent struct {
	rng *rand.Rand
}

// NewRandom returns an agent that picks uniformly among the legal actions.
// The same seed always reproduces the same choices.
func NewRandom(seed uint64) Agent {
	return &randomAgent{rng: rand.New(rand.NewSource(seed))}
}

func (a *randomAgent) Act(gs *game.GameState, legal []int) (int, metrics.SearchMetric) {
	return legal[a.rng.Intn(len(legal))], metrics.SearchMetric{}
}
