package game

// Rules is the stateless legality/derived-computation layer. It is consulted
// both inside transitions and by the external driver for legal-action
// enumeration, so the two can never disagree.
type Rules struct {
	Board  *Board
	Config GameConfig
}

func NewRules(b *Board, cfg GameConfig) Rules {
	return Rules{Board: b, Config: cfg}
}

// Rent computes the rent owed for landing on a tile. diceRoll is the sum of
// the dice that moved the player (utilities scale on it). Mortgaged tiles
// yield zero, and a player never pays rent to themselves.
func (r Rules) Rent(gs *GameState, tile, diceRoll int) int {
	ps := &gs.Properties[tile]
	if ps.Owner < 0 || ps.Mortgaged {
		return 0
	}
	t := r.Board.Tile(tile)

	switch t.Kind {
	case PropertyTile:
		if ps.Level == 0 && r.HasMonopoly(gs, ps.Owner, t.Group) {
			return t.Rent[0] * 2 // undeveloped monopoly bonus
		}
		return t.Rent[ps.Level]
	case RailroadTile:
		owned := gs.CountOwnedOfKind(ps.Owner, RailroadTile)
		rent := t.BaseRent
		for i := 1; i < owned; i++ {
			rent *= 2
		}
		return rent
	case UtilityTile:
		if gs.CountOwnedOfKind(ps.Owner, UtilityTile) == 1 {
			return diceRoll * 4
		}
		return diceRoll * 10
	}
	return 0
}

// HasMonopoly reports whether a player owns every tile in the named group.
// Pure set-subset check, valid for any group size.
func (r Rules) HasMonopoly(gs *GameState, player int, group string) bool {
	members := r.Board.GroupTiles(group)
	if len(members) == 0 {
		return false
	}
	for _, id := range members {
		if gs.Properties[id].Owner != player {
			return false
		}
	}
	return true
}

// CanPurchase returns nil when player may buy the tile at its list price.
func (r Rules) CanPurchase(gs *GameState, player, tile int) error {
	t := r.Board.Tile(tile)
	if !t.Purchasable() {
		return illegal(ReasonNotPurchasable, player, tile)
	}
	if gs.Properties[tile].Owner >= 0 {
		return illegal(ReasonAlreadyOwned, player, tile)
	}
	if gs.Players[player].Cash < t.Price {
		return illegal(ReasonInsufficientFunds, player, tile)
	}
	return nil
}

// groupLevels returns min and max development level across a group.
func (r Rules) groupLevels(gs *GameState, group string) (minLevel, maxLevel int) {
	members := r.Board.GroupTiles(group)
	minLevel, maxLevel = MaxDevelopment, 0
	for _, id := range members {
		lvl := gs.Properties[id].Level
		if lvl < minLevel {
			minLevel = lvl
		}
		if lvl > maxLevel {
			maxLevel = lvl
		}
	}
	return minLevel, maxLevel
}

// CanBuildHouse returns nil when building one level on tile keeps the group
// even and the bank inventory can satisfy it.
func (r Rules) CanBuildHouse(gs *GameState, player, tile int) error {
	t := r.Board.Tile(tile)
	if t.Kind != PropertyTile {
		return illegal(ReasonNotPurchasable, player, tile)
	}
	ps := &gs.Properties[tile]
	if ps.Owner != player {
		return illegal(ReasonNotOwner, player, tile)
	}
	if !r.HasMonopoly(gs, player, t.Group) {
		return illegal(ReasonNoMonopoly, player, tile)
	}
	// No building anywhere in a group with a mortgaged member.
	for _, id := range r.Board.GroupTiles(t.Group) {
		if gs.Properties[id].Mortgaged {
			return illegal(ReasonMortgaged, player, id)
		}
	}
	if ps.Level >= MaxDevelopment {
		return illegal(ReasonMaxDevelopment, player, tile)
	}
	minLevel, _ := r.groupLevels(gs, t.Group)
	if ps.Level > minLevel {
		return illegal(ReasonUnevenBuilding, player, tile)
	}
	if ps.Level == MaxDevelopment-1 {
		if gs.HotelsLeft <= 0 {
			return illegal(ReasonHotelShortage, player, tile)
		}
	} else if gs.HousesLeft <= 0 {
		return illegal(ReasonHouseShortage, player, tile)
	}
	if gs.Players[player].Cash < t.HouseCost {
		return illegal(ReasonInsufficientFunds, player, tile)
	}
	return nil
}

// CanSellHouse returns nil when selling one level from tile keeps the group
// even. Downgrading a hotel requires four houses back from the bank.
func (r Rules) CanSellHouse(gs *GameState, player, tile int) error {
	t := r.Board.Tile(tile)
	if t.Kind != PropertyTile {
		return illegal(ReasonNotPurchasable, player, tile)
	}
	ps := &gs.Properties[tile]
	if ps.Owner != player {
		return illegal(ReasonNotOwner, player, tile)
	}
	if ps.Level == 0 {
		return illegal(ReasonNoDevelopment, player, tile)
	}
	_, maxLevel := r.groupLevels(gs, t.Group)
	if ps.Level < maxLevel {
		return illegal(ReasonUnevenBuilding, player, tile)
	}
	if ps.Level == MaxDevelopment && gs.HousesLeft < MaxDevelopment-1 {
		return illegal(ReasonHouseShortage, player, tile)
	}
	return nil
}

// CanMortgage returns nil when the tile can be mortgaged. A property that
// carries buildings cannot be mortgaged; the owner must sell them first.
func (r Rules) CanMortgage(gs *GameState, player, tile int) error {
	if !r.Board.Tile(tile).Purchasable() {
		return illegal(ReasonNotPurchasable, player, tile)
	}
	ps := &gs.Properties[tile]
	if ps.Owner != player {
		return illegal(ReasonNotOwner, player, tile)
	}
	if ps.Mortgaged {
		return illegal(ReasonMortgaged, player, tile)
	}
	if ps.Level > 0 {
		return illegal(ReasonDeveloped, player, tile)
	}
	return nil
}

// CanUnmortgage returns nil when the player can redeem the mortgage at 110%.
func (r Rules) CanUnmortgage(gs *GameState, player, tile int) error {
	if !r.Board.Tile(tile).Purchasable() {
		return illegal(ReasonNotPurchasable, player, tile)
	}
	ps := &gs.Properties[tile]
	if ps.Owner != player {
		return illegal(ReasonNotOwner, player, tile)
	}
	if !ps.Mortgaged {
		return illegal(ReasonNotMortgaged, player, tile)
	}
	if gs.Players[player].Cash < UnmortgageCost(r.Board.Tile(tile).Mortgage) {
		return illegal(ReasonInsufficientFunds, player, tile)
	}
	return nil
}

// UnmortgageCost is the redemption price: mortgage value plus 10% interest.
func UnmortgageCost(mortgageValue int) int {
	return mortgageValue + mortgageValue/10
}

// LiquidationValue returns the cash a player could still raise: current cash
// plus half-price building sales plus the mortgage value of every unmortgaged
// holding. A pending obligation above this is insolvency.
func (r Rules) LiquidationValue(gs *GameState, player int) int {
	total := gs.Players[player].Cash
	for _, id := range gs.OwnedTiles(player) {
		ps := &gs.Properties[id]
		t := r.Board.Tile(id)
		if ps.Level > 0 {
			if ps.Level == MaxDevelopment {
				// A hotel liquidates as five building units.
				total += MaxDevelopment * (t.HouseCost / 2)
			} else {
				total += ps.Level * (t.HouseCost / 2)
			}
		}
		if !ps.Mortgaged {
			total += t.Mortgage
		}
	}
	return total
}

// NetWorth ranks players when a game hits the round cutoff: cash plus
// unmortgaged purchase prices plus building value at cost.
func (r Rules) NetWorth(gs *GameState, player int) int {
	total := gs.Players[player].Cash
	for _, id := range gs.OwnedTiles(player) {
		ps := &gs.Properties[id]
		t := r.Board.Tile(id)
		if !ps.Mortgaged {
			total += t.Price
		}
		if ps.Level > 0 {
			if ps.Level == MaxDevelopment {
				total += MaxDevelopment * t.HouseCost
			} else {
				total += ps.Level * t.HouseCost
			}
		}
	}
	return total
}

// ActingPlayer returns the player the current phase is waiting on.
func (gs *GameState) ActingPlayer() int {
	switch gs.Phase {
	case PhaseAuction:
		return gs.Auction.Turn
	case PhaseTrade:
		return gs.Trade.To
	default:
		return gs.Current
	}
}

// LegalActions returns the semantic actions the acting player may take.
// Every action returned here succeeds when applied, and vice versa.
func (r Rules) LegalActions(gs *GameState) []Action {
	if gs.Over {
		return nil
	}

	var acts []Action
	switch gs.Phase {
	case PhaseRoll:
		acts = append(acts, Action{Type: ActRoll})

	case PhaseJail:
		p := gs.CurrentPlayer()
		acts = append(acts, Action{Type: ActRollJail})
		if p.Cash >= r.Config.JailFine {
			acts = append(acts, Action{Type: ActPayJailFine})
		}
		if p.JailCards > 0 {
			acts = append(acts, Action{Type: ActUseJailCard})
		}

	case PhasePurchase:
		tile := gs.CurrentPlayer().Position
		if r.CanPurchase(gs, gs.Current, tile) == nil {
			acts = append(acts, Action{Type: ActBuy})
		}
		acts = append(acts, Action{Type: ActDecline})

	case PhaseAuction:
		a := gs.Auction
		bidder := a.Turn
		cash := gs.Players[bidder].Cash
		for lvl, amount := range AuctionBidLevels {
			if amount > a.HighBid && amount <= cash {
				acts = append(acts, Action{Type: ActBid, BidLevel: lvl})
			}
		}
		acts = append(acts, Action{Type: ActAuctionPass})

	case PhaseTrade:
		if r.canAcceptTrade(gs) == nil {
			acts = append(acts, Action{Type: ActAcceptTrade})
		}
		acts = append(acts, Action{Type: ActRejectTrade})

	case PhaseManage:
		player := gs.Current
		for tile := 0; tile < r.Board.NumTiles(); tile++ {
			if r.CanBuildHouse(gs, player, tile) == nil {
				acts = append(acts, Action{Type: ActBuildHouse, Tile: tile})
			}
			if r.CanSellHouse(gs, player, tile) == nil {
				acts = append(acts, Action{Type: ActSellHouse, Tile: tile})
			}
			if r.CanMortgage(gs, player, tile) == nil {
				acts = append(acts, Action{Type: ActMortgage, Tile: tile})
			}
			if r.CanUnmortgage(gs, player, tile) == nil {
				acts = append(acts, Action{Type: ActUnmortgage, Tile: tile})
			}
		}
		if gs.Trade == nil {
			for offset := 1; offset < MaxPlayers; offset++ {
				target := (player + offset) % len(gs.Players)
				if offset >= len(gs.Players) || target == player || gs.Players[target].Bankrupt {
					continue
				}
				for tmpl := 0; tmpl < NumTradeTemplates; tmpl++ {
					if _, err := ResolveTradeTemplate(gs, r, player, target, tmpl); err == nil {
						acts = append(acts, Action{Type: ActProposeTrade, Template: tmpl, Target: offset})
					}
				}
			}
		}
		acts = append(acts, Action{Type: ActEndTurn})
	}
	return acts
}

// canAcceptTrade validates the pending offer against the current state: both
// sides must still own what they put up and afford the cash legs.
func (r Rules) canAcceptTrade(gs *GameState) error {
	tr := gs.Trade
	if tr == nil {
		return illegal(ReasonNoTrade, -1, -1)
	}
	for _, id := range tr.OfferedTiles {
		if gs.Properties[id].Owner != tr.From || gs.Properties[id].Level > 0 {
			return illegal(ReasonNotOwner, tr.From, id)
		}
	}
	for _, id := range tr.RequestedTiles {
		if gs.Properties[id].Owner != tr.To || gs.Properties[id].Level > 0 {
			return illegal(ReasonNotOwner, tr.To, id)
		}
	}
	if gs.Players[tr.From].Cash < tr.OfferedCash {
		return illegal(ReasonInsufficientFunds, tr.From, -1)
	}
	if gs.Players[tr.To].Cash < tr.RequestedCash {
		return illegal(ReasonInsufficientFunds, tr.To, -1)
	}
	return nil
}
