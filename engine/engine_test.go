package engine

import (
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/exp/rand"

	"github.com/JonesRobM/Monopoly/agent"
	"github.com/JonesRobM/Monopoly/game"
)

func newEngineState(t *testing.T, players int) *game.GameState {
	t.Helper()
	cfg := game.DefaultConfig(players)
	cfg.Seed = 42
	gs, err := game.NewGameState(game.StandardBoard(), cfg)
	require.NoError(t, err)
	return gs
}

func TestStepRejectsIllegalAction(t *testing.T) {
	gs := newEngineState(t, 2)
	enc := game.NewActionEncoder(gs.Board)

	_, _, err := Step(gs, enc, 0) // buy, but the game is in the roll phase
	require.Error(t, err)
	_, _, err = Step(gs, enc, -1)
	require.Error(t, err)

	require.Equal(t, game.PhaseRoll, gs.Phase, "a failed step leaves the state alone")
}

func TestStepOutcomePurchase(t *testing.T) {
	gs := newEngineState(t, 2)
	gs.Properties[1].Owner = 0
	gs.Players[0].Position = 3
	gs.Phase = game.PhasePurchase
	enc := game.NewActionEncoder(gs.Board)

	ns, out, err := Step(gs, enc, 0) // buy Baltic at 60
	require.NoError(t, err)
	require.Equal(t, 0, out.Actor)
	require.Equal(t, game.ActBuy, out.Action.Type)
	require.Equal(t, []int{-60, 0}, out.CashDeltas)
	require.Equal(t, []MonopolyChange{{Player: 0, Group: "brown", Completed: true}},
		out.Monopolies, "buying Baltic completes the brown group")
	require.False(t, out.GameOver)
	require.Equal(t, 0, ns.Properties[3].Owner)
}

func TestDiffOutcomeBankruptcy(t *testing.T) {
	gs := newEngineState(t, 2)
	gs.Properties[1].Owner = 0
	gs.Properties[3].Owner = 0

	after := game.BankruptPlayer(gs, 0, 1)
	out := diffOutcome(gs, after, 0, game.Action{Type: game.ActEndTurn})

	require.Equal(t, []int{0}, out.Bankrupted)
	require.True(t, out.GameOver, "heads-up, one bankruptcy ends the game")
	require.Equal(t, 1, out.Winner)
	require.Equal(t, []MonopolyChange{
		{Player: 0, Group: "brown", Completed: false},
		{Player: 1, Group: "brown", Completed: true},
	}, out.Monopolies, "the brown monopoly moved from the debtor to the creditor")
}

func TestLegalMaskNeverEmptyUntilTerminal(t *testing.T) {
	gs := newEngineState(t, 2)
	enc := game.NewActionEncoder(gs.Board)
	rng := rand.New(rand.NewSource(7))

	for step := 0; step < 5000 && !gs.IsTerminal(); step++ {
		legal := legalIDs(LegalMask(gs, enc))
		require.NotEmpty(t, legal, "phase %v must offer an action", gs.Phase)

		ns, _, err := Step(gs, enc, legal[rng.Intn(len(legal))])
		require.NoError(t, err)
		gs = ns
	}
}

// A long random playout must preserve the bank inventory and the bankruptcy
// bookkeeping at every step.
func TestRandomPlayoutInvariants(t *testing.T) {
	cfg := game.DefaultConfig(4)
	cfg.Seed = 99
	cfg.MaxRounds = 200
	gs, err := game.NewGameState(game.StandardBoard(), cfg)
	require.NoError(t, err)

	enc := game.NewActionEncoder(gs.Board)
	rng := rand.New(rand.NewSource(3))

	for step := 0; step < MaxSteps && !gs.IsTerminal(); step++ {
		legal := legalIDs(LegalMask(gs, enc))
		require.NotEmpty(t, legal)
		ns, _, err := Step(gs, enc, legal[rng.Intn(len(legal))])
		require.NoError(t, err)
		gs = ns

		houses, hotels := 0, 0
		for id := 0; id < gs.Board.NumTiles(); id++ {
			lvl := gs.Properties[id].Level
			if lvl == game.MaxDevelopment {
				hotels++
			} else {
				houses += lvl
			}
		}
		require.Equal(t, cfg.HousesInBank, houses+gs.HousesLeft, "houses leaked at step %d", step)
		require.Equal(t, cfg.HotelsInBank, hotels+gs.HotelsLeft, "hotels leaked at step %d", step)

		for _, group := range []string{"brown", "light_blue", "pink", "orange"} {
			min, max := game.MaxDevelopment, 0
			for _, id := range gs.Board.GroupTiles(group) {
				lvl := gs.Properties[id].Level
				if lvl < min {
					min = lvl
				}
				if lvl > max {
					max = lvl
				}
			}
			require.LessOrEqual(t, max-min, 1, "uneven %s development at step %d", group, step)
		}

		for i := range gs.Players {
			if gs.Players[i].Bankrupt {
				require.Zero(t, gs.Players[i].Cash, "bankrupt player %d holds cash", i)
				require.Empty(t, gs.OwnedTiles(i), "bankrupt player %d holds tiles", i)
			}
		}
	}
	require.True(t, gs.IsTerminal(), "round cap must terminate the game")
	require.GreaterOrEqual(t, gs.Winner, 0)
}

func TestLocalEngineDeterministicReplay(t *testing.T) {
	run := func() (int, []int) {
		cfg := game.DefaultConfig(2)
		cfg.Seed = 11
		cfg.MaxRounds = 300
		agents := []agent.Agent{agent.NewRandom(1), agent.NewRandom(2)}
		e := LocalEngine(game.StandardBoard(), cfg, agents)
		winner, _, moves := e.Run()

		ids := make([]int, len(moves))
		for i, m := range moves {
			ids[i] = m.ActionID
		}
		return winner, ids
	}

	w1, ids1 := run()
	w2, ids2 := run()
	require.Equal(t, w1, w2, "same seeds must reproduce the winner")
	require.Equal(t, ids1, ids2, "same seeds must reproduce the full move sequence")
}

func TestLocalEnginePanicsOnAgentMismatch(t *testing.T) {
	cfg := game.DefaultConfig(3)
	require.Panics(t, func() {
		LocalEngine(game.StandardBoard(), cfg, []agent.Agent{agent.NewRandom(1)})
	})
}
