package game

import "fmt"

// ActionType is the high-level semantic action category.
type ActionType int

const (
	ActBuy ActionType = iota
	ActDecline
	ActBid
	ActAuctionPass
	ActBuildHouse
	ActSellHouse
	ActMortgage
	ActUnmortgage
	ActProposeTrade
	ActAcceptTrade
	ActRejectTrade
	ActPayJailFine
	ActUseJailCard
	ActRollJail
	ActRoll
	ActEndTurn
)

var actionTypeNames = map[ActionType]string{
	ActBuy:          "buy",
	ActDecline:      "decline",
	ActBid:          "bid",
	ActAuctionPass:  "auction_pass",
	ActBuildHouse:   "build_house",
	ActSellHouse:    "sell_house",
	ActMortgage:     "mortgage",
	ActUnmortgage:   "unmortgage",
	ActProposeTrade: "propose_trade",
	ActAcceptTrade:  "accept_trade",
	ActRejectTrade:  "reject_trade",
	ActPayJailFine:  "pay_jail_fine",
	ActUseJailCard:  "use_jail_card",
	ActRollJail:     "roll_for_jail",
	ActRoll:         "roll",
	ActEndTurn:      "end_turn",
}

func (t ActionType) String() string { return actionTypeNames[t] }

// Action is one semantic action. Which parameter fields are meaningful
// depends on Type: Tile for build/sell/mortgage/unmortgage, BidLevel for
// bids, Template and Target (seat offset from the proposer, 1..MaxPlayers-1)
// for trade proposals.
type Action struct {
	Type     ActionType
	Tile     int
	BidLevel int
	Template int
	Target   int
}

func (a Action) String() string {
	switch a.Type {
	case ActBuildHouse, ActSellHouse, ActMortgage, ActUnmortgage:
		return fmt.Sprintf("%s(tile=%d)", a.Type, a.Tile)
	case ActBid:
		return fmt.Sprintf("bid(%d)", AuctionBidLevels[a.BidLevel])
	case ActProposeTrade:
		return fmt.Sprintf("propose_trade(template=%d, target=+%d)", a.Template, a.Target)
	default:
		return a.Type.String()
	}
}

// AuctionBidLevels are the discrete bid amounts available in an auction.
var AuctionBidLevels = []int{10, 20, 50, 100, 150, 200, 250, 300, 400, 500}

// NumBidLevels is the number of discrete auction bid levels.
var NumBidLevels = len(AuctionBidLevels)

// NumTradeTemplates bounds the trade-template set: 5 kinds x 10 tiers.
const NumTradeTemplates = 50

// tradeTiers is the number of tiers per template kind.
const tradeTiers = 10

// ActionEncoder is a stable bijection between a fixed-size discrete id space
// and semantic actions. The layout depends only on the board size, so ids
// stay stable for every game on the same board:
//
//	0                buy
//	1                decline
//	2 .. 2+B-1       auction bid at level i (B = NumBidLevels)
//	2+B              auction pass
//	base + t         build house on tile t     (base = 3+B)
//	base + T + t     sell house on tile t      (T = num tiles)
//	base + 2T + t    mortgage tile t
//	base + 3T + t    unmortgage tile t
//	tb + k*(M-1)+o-1 propose trade template k to seat offset o (tb = base+4T,
//	                 M = MaxPlayers)
//	tb + S ..        accept, reject, pay fine, use card, roll for jail,
//	                 roll, end turn            (S = NumTradeTemplates*(M-1))
//
// The classic 40-tile board yields a space of 430 ids.
type ActionEncoder struct {
	numTiles  int
	buildBase int
	tradeBase int
	fixedBase int // accept-trade onward
	size      int
}

// NewActionEncoder sizes the action space for a board.
func NewActionEncoder(b *Board) *ActionEncoder {
	e := &ActionEncoder{numTiles: b.NumTiles()}
	e.buildBase = 3 + NumBidLevels
	e.tradeBase = e.buildBase + 4*e.numTiles
	e.fixedBase = e.tradeBase + NumTradeTemplates*(MaxPlayers-1)
	e.size = e.fixedBase + 7
	return e
}

// Size returns the size of the discrete action space.
func (e *ActionEncoder) Size() int { return e.size }

// Encode maps a semantic action to its id.
func (e *ActionEncoder) Encode(a Action) (int, error) {
	switch a.Type {
	case ActBuy:
		return 0, nil
	case ActDecline:
		return 1, nil
	case ActBid:
		if a.BidLevel < 0 || a.BidLevel >= NumBidLevels {
			return 0, fmt.Errorf("encode: bid level %d out of range", a.BidLevel)
		}
		return 2 + a.BidLevel, nil
	case ActAuctionPass:
		return 2 + NumBidLevels, nil
	case ActBuildHouse, ActSellHouse, ActMortgage, ActUnmortgage:
		if a.Tile < 0 || a.Tile >= e.numTiles {
			return 0, fmt.Errorf("encode: tile %d out of range", a.Tile)
		}
		slot := int(a.Type - ActBuildHouse)
		return e.buildBase + slot*e.numTiles + a.Tile, nil
	case ActProposeTrade:
		if a.Template < 0 || a.Template >= NumTradeTemplates {
			return 0, fmt.Errorf("encode: trade template %d out of range", a.Template)
		}
		if a.Target < 1 || a.Target >= MaxPlayers {
			return 0, fmt.Errorf("encode: trade target offset %d out of range", a.Target)
		}
		return e.tradeBase + a.Template*(MaxPlayers-1) + a.Target - 1, nil
	case ActAcceptTrade, ActRejectTrade, ActPayJailFine, ActUseJailCard, ActRollJail, ActRoll, ActEndTurn:
		return e.fixedBase + int(a.Type-ActAcceptTrade), nil
	}
	return 0, fmt.Errorf("encode: unknown action type %d", a.Type)
}

// Decode maps an id back to its semantic action. Decode(Encode(a)) == a for
// every well-formed action.
func (e *ActionEncoder) Decode(id int) (Action, error) {
	switch {
	case id < 0 || id >= e.size:
		return Action{}, fmt.Errorf("decode: action id %d out of range [0, %d)", id, e.size)
	case id == 0:
		return Action{Type: ActBuy}, nil
	case id == 1:
		return Action{Type: ActDecline}, nil
	case id < 2+NumBidLevels:
		return Action{Type: ActBid, BidLevel: id - 2}, nil
	case id == 2+NumBidLevels:
		return Action{Type: ActAuctionPass}, nil
	case id < e.tradeBase:
		offset := id - e.buildBase
		return Action{
			Type: ActBuildHouse + ActionType(offset/e.numTiles),
			Tile: offset % e.numTiles,
		}, nil
	case id < e.fixedBase:
		offset := id - e.tradeBase
		return Action{
			Type:     ActProposeTrade,
			Template: offset / (MaxPlayers - 1),
			Target:   offset%(MaxPlayers-1) + 1,
		}, nil
	default:
		return Action{Type: ActAcceptTrade + ActionType(id-e.fixedBase)}, nil
	}
}

// LegalMask returns the fixed-size legality vector for the acting player.
// Bit i is set iff applying action i would succeed.
func (e *ActionEncoder) LegalMask(gs *GameState, r Rules) []bool {
	mask := make([]bool, e.size)
	for _, a := range r.LegalActions(gs) {
		id, err := e.Encode(a)
		if err != nil {
			panic("legal action failed to encode: " + err.Error())
		}
		mask[id] = true
	}
	return mask
}

// tradeableTiles returns the tiles a player can put into a trade: owned and
// carrying no buildings. Ascending tile id keeps template resolution
// deterministic.
func tradeableTiles(gs *GameState, player int) []int {
	var ids []int
	for _, id := range gs.OwnedTiles(player) {
		if gs.Properties[id].Level == 0 {
			ids = append(ids, id)
		}
	}
	return ids
}

// ResolveTradeTemplate expands a template id into a concrete TradeOffer
// against the current state. Template k = kind*10 + tier:
//
//	kind 0: sell own tier-th tradeable tile for cash at list price
//	kind 1: buy the target's tier-th tradeable tile for cash at list price
//	kind 2: swap own tier-th tradeable tile for the target's tier-th
//	kind 3: own tier-th and tier+1-th for the target's tier-th
//	kind 4: own tier-th for the target's tier-th and tier+1-th
//
// Resolution fails when a side lacks the indexed tiles or the cash leg.
func ResolveTradeTemplate(gs *GameState, r Rules, proposer, target, template int) (*TradeOffer, error) {
	if template < 0 || template >= NumTradeTemplates {
		return nil, illegal(ReasonBadTradeTemplate, proposer, -1)
	}
	if proposer == target || gs.Players[target].Bankrupt {
		return nil, illegal(ReasonBadTradeTemplate, proposer, -1)
	}
	kind, tier := template/tradeTiers, template%tradeTiers

	own := tradeableTiles(gs, proposer)
	theirs := tradeableTiles(gs, target)

	offer := &TradeOffer{From: proposer, To: target, Template: template}
	switch kind {
	case 0:
		if tier >= len(own) {
			return nil, illegal(ReasonBadTradeTemplate, proposer, -1)
		}
		offer.OfferedTiles = []int{own[tier]}
		offer.RequestedCash = r.Board.Tile(own[tier]).Price
	case 1:
		if tier >= len(theirs) {
			return nil, illegal(ReasonBadTradeTemplate, proposer, -1)
		}
		offer.RequestedTiles = []int{theirs[tier]}
		offer.OfferedCash = r.Board.Tile(theirs[tier]).Price
		if gs.Players[proposer].Cash < offer.OfferedCash {
			return nil, illegal(ReasonInsufficientFunds, proposer, theirs[tier])
		}
	case 2:
		if tier >= len(own) || tier >= len(theirs) {
			return nil, illegal(ReasonBadTradeTemplate, proposer, -1)
		}
		offer.OfferedTiles = []int{own[tier]}
		offer.RequestedTiles = []int{theirs[tier]}
	case 3:
		if tier+1 >= len(own) || tier >= len(theirs) {
			return nil, illegal(ReasonBadTradeTemplate, proposer, -1)
		}
		offer.OfferedTiles = []int{own[tier], own[tier+1]}
		offer.RequestedTiles = []int{theirs[tier]}
	case 4:
		if tier >= len(own) || tier+1 >= len(theirs) {
			return nil, illegal(ReasonBadTradeTemplate, proposer, -1)
		}
		offer.OfferedTiles = []int{own[tier]}
		offer.RequestedTiles = []int{theirs[tier], theirs[tier+1]}
	}
	return offer, nil
}
