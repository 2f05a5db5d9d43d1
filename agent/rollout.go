package agent

import (
	"golang.org/x/exp/rand"

	"github.com/JonesRobM/Monopoly/experiments/metrics"
	"github.com/JonesRobM/Monopoly/game"
)

// MaxCutoff bounds a single playout when no cutoff option is given.
const MaxCutoff = 1000

type Option func(r *Rollout)

// Rollout is a flat Monte Carlo agent: every legal action is evaluated by
// random playouts and the best mean score wins. No tree is kept between
// moves.
type Rollout struct {
	playouts int
	cutoff   int
	enc      *game.ActionEncoder
	rng      *rand.Rand
	metrics  metrics.Collector
}

func WithPlayouts(playouts int) Option {
	return func(r *Rollout) {
		if playouts > 0 {
			r.playouts = playouts
		}
	}
}

func WithCutoff(depth int) Option {
	return func(r *Rollout) {
		if depth > 0 {
			r.cutoff = depth
		}
	}
}

func WithMetrics() Option {
	return func(r *Rollout) {
		r.metrics = metrics.NewCollector()
	}
}

func NewRollout(enc *game.ActionEncoder, seed uint64, options ...Option) *Rollout {
	r := &Rollout{ // Default values
		playouts: 32,
		cutoff:   MaxCutoff,
		enc:      enc,
		rng:      rand.New(rand.NewSource(seed)),
		metrics:  metrics.NewDummyCollector(),
	}
	for _, option := range options {
		option(r)
	}
	return r
}

func (r *Rollout) Act(gs *game.GameState, legal []int) (int, metrics.SearchMetric) {
	r.metrics.Start(r.cutoff)

	actor := gs.ActingPlayer()
	best := legal[0]
	bestScore := -1.0
	for _, id := range legal {
		act, err := r.enc.Decode(id)
		if err != nil {
			continue
		}
		total := 0.0
		for p := 0; p < r.playouts; p++ {
			total += r.playout(gs, act, actor)
		}
		if score := total / float64(r.playouts); score > bestScore {
			best, bestScore = id, score
		}
	}

	return best, r.metrics.Complete()
}

// playout applies the candidate action and plays random moves until the game
// ends or the depth cutoff hits, returning the actor's score in [0, 1].
func (r *Rollout) playout(gs *game.GameState, act game.Action, actor int) float64 {
	ns, err := game.Apply(gs, act)
	if err != nil {
		return 0
	}
	// Decouple this playout's dice stream from its siblings; the perturbation
	// comes from the agent's own seeded generator, so runs stay reproducible.
	ns.DiceRNG ^= r.rng.Uint64() | 1

	rules := game.NewRules(ns.Board, ns.Config)
	for depth := 0; !ns.IsTerminal(); depth++ {
		if depth >= r.cutoff {
			r.metrics.AddCutoffHit()
			r.metrics.AddPlayout()
			return r.evaluate(ns, rules, actor)
		}
		moves := rules.LegalActions(ns)
		next, err := game.Apply(ns, moves[r.rng.Intn(len(moves))])
		if err != nil {
			break
		}
		ns = next
	}
	r.metrics.AddPlayout()

	if ns.Winner == actor {
		return 1
	}
	return 0
}

// evaluate scores a non-won position as the actor's share of total net
// worth.
func (r *Rollout) evaluate(gs *game.GameState, rules game.Rules, actor int) float64 {
	if gs.Players[actor].Bankrupt {
		return 0
	}
	total := 0
	mine := 0
	for _, id := range gs.ActivePlayers() {
		w := rules.NetWorth(gs, id)
		total += w
		if id == actor {
			mine = w
		}
	}
	if total <= 0 {
		return 0
	}
	return float64(mine) / float64(total)
}
