package agent

import (
	"github.com/JonesRobM/Monopoly/experiments/metrics"
	"github.com/JonesRobM/Monopoly/game"
)

type greedyAgent struct {
	enc *game.ActionEncoder
}

// NewGreedy returns a deterministic baseline agent: buy and build whenever
// possible, keep holdings unmortgaged, get out of jail cheaply, bid small in
// auctions, never trade.
func NewGreedy(enc *game.ActionEncoder) Agent {
	return &greedyAgent{enc: enc}
}

func (a *greedyAgent) Act(gs *game.GameState, legal []int) (int, metrics.SearchMetric) {
	best := legal[0]
	bestScore := int(^uint(0) >> 1)
	for _, id := range legal {
		act, err := a.enc.Decode(id)
		if err != nil {
			continue
		}
		if s := a.score(gs, act); s < bestScore {
			best, bestScore = id, s
		}
	}
	return best, metrics.SearchMetric{}
}

// score ranks an action; lower is better. Ties keep the lowest action id.
func (a *greedyAgent) score(gs *game.GameState, act game.Action) int {
	switch act.Type {
	case game.ActBuy:
		return 0
	case game.ActBuildHouse:
		return 10
	case game.ActUnmortgage:
		return 20
	case game.ActUseJailCard:
		return 30
	case game.ActPayJailFine:
		return 40
	case game.ActRollJail:
		return 50
	case game.ActRoll:
		return 50
	case game.ActBid:
		amount := game.AuctionBidLevels[act.BidLevel]
		if gs.Auction != nil {
			bidder := gs.Auction.Turn
			price := gs.Board.Tile(gs.Auction.Tile).Price
			// A small bid below list price is a bargain; overpaying or
			// committing more than half the bankroll is not.
			if amount <= price && amount*2 <= gs.Players[bidder].Cash {
				return 60 + act.BidLevel
			}
		}
		return 900
	case game.ActAuctionPass:
		return 100
	case game.ActRejectTrade:
		return 110
	case game.ActEndTurn:
		return 200
	case game.ActDecline:
		return 300
	case game.ActAcceptTrade:
		return 400
	case game.ActSellHouse, game.ActMortgage:
		return 500
	case game.ActProposeTrade:
		return 600
	}
	return 1000
}
