package agent

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/JonesRobM/Monopoly/game"
)

func newAgentState(t *testing.T, players int) *game.GameState {
	t.Helper()
	cfg := game.DefaultConfig(players)
	cfg.Seed = 42
	gs, err := game.NewGameState(game.StandardBoard(), cfg)
	require.NoError(t, err)
	return gs
}

func legalIDs(gs *game.GameState, enc *game.ActionEncoder) []int {
	r := game.NewRules(gs.Board, gs.Config)
	var ids []int
	for id, ok := range enc.LegalMask(gs, r) {
		if ok {
			ids = append(ids, id)
		}
	}
	return ids
}

func TestRandomAgentStaysLegal(t *testing.T) {
	gs := newAgentState(t, 2)
	gs.Players[0].Position = 39
	gs.Phase = game.PhasePurchase
	enc := game.NewActionEncoder(gs.Board)
	legal := legalIDs(gs, enc)

	a := NewRandom(7)
	for i := 0; i < 50; i++ {
		id, _ := a.Act(gs, legal)
		require.Contains(t, legal, id)
	}
}

func TestRandomAgentIsReproducible(t *testing.T) {
	gs := newAgentState(t, 2)
	gs.Players[0].Position = 39
	gs.Phase = game.PhasePurchase
	enc := game.NewActionEncoder(gs.Board)
	legal := legalIDs(gs, enc)

	pick := func(seed uint64) []int {
		a := NewRandom(seed)
		ids := make([]int, 20)
		for i := range ids {
			ids[i], _ = a.Act(gs, legal)
		}
		return ids
	}
	require.Equal(t, pick(3), pick(3))
}

func TestGreedyBuysWhenItCan(t *testing.T) {
	gs := newAgentState(t, 2)
	gs.Players[0].Position = 39
	gs.Phase = game.PhasePurchase
	enc := game.NewActionEncoder(gs.Board)

	a := NewGreedy(enc)
	id, _ := a.Act(gs, legalIDs(gs, enc))
	act, err := enc.Decode(id)
	require.NoError(t, err)
	require.Equal(t, game.ActBuy, act.Type)
}

func TestGreedyDeclinesWhenBroke(t *testing.T) {
	gs := newAgentState(t, 2)
	gs.Players[0].Position = 39
	gs.Players[0].Cash = 10
	gs.Phase = game.PhasePurchase
	enc := game.NewActionEncoder(gs.Board)

	a := NewGreedy(enc)
	id, _ := a.Act(gs, legalIDs(gs, enc))
	act, err := enc.Decode(id)
	require.NoError(t, err)
	require.Equal(t, game.ActDecline, act.Type, "buy is off the mask, decline remains")
}

func TestGreedyBuildsBeforeEndingTheTurn(t *testing.T) {
	gs := newAgentState(t, 2)
	for _, id := range gs.Board.GroupTiles("brown") {
		gs.Properties[id].Owner = 0
	}
	gs.Phase = game.PhaseManage
	enc := game.NewActionEncoder(gs.Board)

	a := NewGreedy(enc)
	id, _ := a.Act(gs, legalIDs(gs, enc))
	act, err := enc.Decode(id)
	require.NoError(t, err)
	require.Equal(t, game.ActBuildHouse, act.Type)
	require.Equal(t, 1, act.Tile, "ties resolve to the lowest tile id")
}

func TestGreedyPrefersJailCardOverFine(t *testing.T) {
	gs := newAgentState(t, 2)
	ns := game.SendToJail(gs, 0)
	ns.Phase = game.PhaseJail
	ns.Players[0].JailCards = 1
	enc := game.NewActionEncoder(ns.Board)

	a := NewGreedy(enc)
	id, _ := a.Act(ns, legalIDs(ns, enc))
	act, err := enc.Decode(id)
	require.NoError(t, err)
	require.Equal(t, game.ActUseJailCard, act.Type)
}

func TestRolloutPicksLegalMove(t *testing.T) {
	gs := newAgentState(t, 2)
	enc := game.NewActionEncoder(gs.Board)
	legal := legalIDs(gs, enc)

	a := NewRollout(enc, 5, WithPlayouts(4), WithCutoff(30))
	id, _ := a.Act(gs, legal)
	require.Contains(t, legal, id)
	require.Equal(t, game.PhaseRoll, gs.Phase, "search must not mutate the live state")
	require.Equal(t, 1500, gs.Players[0].Cash)
}

func TestRolloutCollectsSearchMetrics(t *testing.T) {
	gs := newAgentState(t, 2)
	enc := game.NewActionEncoder(gs.Board)
	legal := legalIDs(gs, enc)

	a := NewRollout(enc, 5, WithPlayouts(4), WithCutoff(10), WithMetrics())
	_, sm := a.Act(gs, legal)
	require.Equal(t, 4*len(legal), sm.Playouts)
	require.Equal(t, 10, sm.Cutoff)
}

func TestRolloutOptions(t *testing.T) {
	enc := game.NewActionEncoder(game.StandardBoard())
	r := NewRollout(enc, 1, WithPlayouts(16), WithCutoff(250))
	require.Equal(t, 16, r.playouts)
	require.Equal(t, 250, r.cutoff)

	r = NewRollout(enc, 1, WithPlayouts(0), WithCutoff(-5))
	require.Equal(t, 32, r.playouts, "non-positive overrides keep the default")
	require.Equal(t, MaxCutoff, r.cutoff)
}
