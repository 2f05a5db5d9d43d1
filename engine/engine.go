package engine

import (
	"sort"

	"github.com/JonesRobM/Monopoly/experiments/metrics"
	"github.com/JonesRobM/Monopoly/game"
)

// MaxSteps caps a single game so a pathological agent pairing cannot spin
// forever.
const MaxSteps = 100000

type Engine interface {
	// Run plays a game to completion (or the step cap) and returns the
	// winning seat, -1 if the cap hit first.
	Run() (winner int, gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}

// MonopolyChange records a full colour group changing hands in a way that
// creates or destroys a monopoly.
type MonopolyChange struct {
	Player    int
	Group     string
	Completed bool // false means an existing monopoly was broken
}

// Outcome carries the externally observable side information of one step, so
// a reward-shaping collaborator never has to diff states itself.
type Outcome struct {
	Actor      int
	Action     game.Action
	CashDeltas []int
	Monopolies []MonopolyChange
	Bankrupted []int
	GameOver   bool
	Winner     int
}

// LegalMask returns the fixed-size action mask for the acting player.
func LegalMask(gs *game.GameState, enc *game.ActionEncoder) []bool {
	r := game.NewRules(gs.Board, gs.Config)
	return enc.LegalMask(gs, r)
}

// Step decodes and applies one action id, returning the successor state and
// its outcome. The input state is never mutated, legal or not.
func Step(gs *game.GameState, enc *game.ActionEncoder, id int) (*game.GameState, Outcome, error) {
	a, err := enc.Decode(id)
	if err != nil {
		return nil, Outcome{}, err
	}
	actor := gs.ActingPlayer()
	ns, err := game.Apply(gs, a)
	if err != nil {
		return nil, Outcome{}, err
	}
	return ns, diffOutcome(gs, ns, actor, a), nil
}

func diffOutcome(before, after *game.GameState, actor int, a game.Action) Outcome {
	out := Outcome{
		Actor:      actor,
		Action:     a,
		CashDeltas: make([]int, len(before.Players)),
		GameOver:   after.Over,
		Winner:     after.Winner,
	}
	for i := range before.Players {
		out.CashDeltas[i] = after.Players[i].Cash - before.Players[i].Cash
		if after.Players[i].Bankrupt && !before.Players[i].Bankrupt {
			out.Bankrupted = append(out.Bankrupted, i)
		}
	}

	r := game.NewRules(before.Board, before.Config)
	names := make([]string, 0, len(before.Board.Groups()))
	for group := range before.Board.Groups() {
		names = append(names, group)
	}
	sort.Strings(names)
	for _, group := range names {
		for i := range before.Players {
			had := r.HasMonopoly(before, i, group)
			has := r.HasMonopoly(after, i, group)
			if had == has {
				continue
			}
			out.Monopolies = append(out.Monopolies, MonopolyChange{
				Player:    i,
				Group:     group,
				Completed: has,
			})
		}
	}
	return out
}
