package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func newTestState(t *testing.T, players int) *GameState {
	t.Helper()
	cfg := DefaultConfig(players)
	cfg.Seed = 42
	gs, err := NewGameState(StandardBoard(), cfg)
	require.NoError(t, err)
	return gs
}

func TestNewGameState(t *testing.T) {
	gs := newTestState(t, 3)

	require.Len(t, gs.Players, 3)
	for i, p := range gs.Players {
		require.Equal(t, i, p.ID)
		require.Equal(t, 0, p.Position)
		require.Equal(t, 1500, p.Cash)
		require.False(t, p.Bankrupt)
	}
	for id, ps := range gs.Properties {
		require.Equal(t, -1, ps.Owner, "tile %d should start unowned", id)
		require.Equal(t, 0, ps.Level)
		require.False(t, ps.Mortgaged)
	}
	require.Equal(t, PhaseRoll, gs.Phase)
	require.Equal(t, 32, gs.HousesLeft)
	require.Equal(t, 12, gs.HotelsLeft)
	require.Equal(t, 16, gs.Chance.Size())
	require.Equal(t, 16, gs.Chest.Size())
	require.Equal(t, -1, gs.Winner)
	require.False(t, gs.IsTerminal())
}

func TestNewGameStateRejectsBadConfig(t *testing.T) {
	cfg := DefaultConfig(1)
	_, err := NewGameState(StandardBoard(), cfg)
	require.Error(t, err)
}

func TestCopyIsDeep(t *testing.T) {
	gs := newTestState(t, 2)
	gs.Properties[1].Owner = 0
	gs.Players[0].Cash = 777

	clone := gs.Copy()
	clone.Players[0].Cash = 1
	clone.Properties[1].Owner = 1
	clone.Properties[3].Level = 4
	clone.Chance.Draw()
	clone.rollDice()

	require.Equal(t, 777, gs.Players[0].Cash, "player mutation must not leak back")
	require.Equal(t, 0, gs.Properties[1].Owner, "property mutation must not leak back")
	require.Equal(t, 0, gs.Properties[3].Level)
	require.Equal(t, 0, gs.Chance.Remaining(), "deck draw on the copy must not touch the original")
	require.Equal(t, uint64(42), gs.DiceRNG, "dice stream on the copy must not advance the original")
}

func TestCopyPreservesAuctionAndTrade(t *testing.T) {
	gs := newTestState(t, 3)
	gs.Auction = &AuctionState{Tile: 1, HighBidder: -1, Eligible: []bool{true, true, true}}
	gs.Trade = &TradeOffer{From: 0, To: 1, OfferedTiles: []int{1}, RequestedCash: 60}

	clone := gs.Copy()
	clone.Auction.Eligible[2] = false
	clone.Trade.RequestedCash = 999

	require.True(t, gs.Auction.Eligible[2], "auction state must be deep copied")
	require.Equal(t, 60, gs.Trade.RequestedCash, "trade offer must be deep copied")
}

func TestDiceAreDeterministicAndInRange(t *testing.T) {
	a := newTestState(t, 2)
	b := newTestState(t, 2)

	for i := 0; i < 200; i++ {
		a1, a2 := a.rollDice()
		b1, b2 := b.rollDice()
		require.Equal(t, a1, b1, "same seed must roll the same dice")
		require.Equal(t, a2, b2, "same seed must roll the same dice")
		require.GreaterOrEqual(t, a1, 1)
		require.LessOrEqual(t, a1, 6)
		require.GreaterOrEqual(t, a2, 1)
		require.LessOrEqual(t, a2, 6)
	}
}

func TestActivePlayersAndWinner(t *testing.T) {
	gs := newTestState(t, 3)
	require.Equal(t, []int{0, 1, 2}, gs.ActivePlayers())

	gs.Players[1].Bankrupt = true
	gs.checkWinner()
	require.Equal(t, []int{0, 2}, gs.ActivePlayers())
	require.False(t, gs.Over, "two players left is not a finished game")

	gs.Players[2].Bankrupt = true
	gs.checkWinner()
	require.True(t, gs.Over)
	require.Equal(t, 0, gs.Winner)
	require.Equal(t, PhaseOver, gs.Phase)
}

func TestOwnedTilesAscending(t *testing.T) {
	gs := newTestState(t, 2)
	gs.Properties[39].Owner = 0
	gs.Properties[1].Owner = 0
	gs.Properties[12].Owner = 0
	gs.Properties[5].Owner = 1

	require.Equal(t, []int{1, 12, 39}, gs.OwnedTiles(0))
	require.Equal(t, []int{5}, gs.OwnedTiles(1))
	require.Equal(t, 1, gs.CountOwnedOfKind(0, UtilityTile))
	require.Equal(t, 1, gs.CountOwnedOfKind(1, RailroadTile))
}
