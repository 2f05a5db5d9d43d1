package game

// Pure state transitions. Every exported function validates against the
// current state, copies it, and mutates only the copy; the input state is
// never changed, even on failure. Lowercase helpers operate on a state that
// has already been copied.

// Apply executes the semantic action for the acting player and returns the
// resulting state. An action is accepted here exactly when the legal mask
// marks it legal.
func Apply(gs *GameState, a Action) (*GameState, error) {
	if gs.Over {
		return nil, illegal(ReasonGameOver, gs.Current, -1)
	}
	switch a.Type {
	case ActRoll:
		return RollAndMove(gs)
	case ActPayJailFine:
		return PayJailFine(gs)
	case ActUseJailCard:
		return UseJailCard(gs)
	case ActRollJail:
		return RollForJail(gs)
	case ActBuy:
		return BuyLanded(gs)
	case ActDecline:
		return DeclinePurchase(gs)
	case ActBid:
		return AuctionBid(gs, a.BidLevel)
	case ActAuctionPass:
		return AuctionPass(gs)
	case ActBuildHouse, ActSellHouse, ActMortgage, ActUnmortgage:
		// Property management is a manage-phase decision even when the
		// underlying transition would be valid on its own.
		if gs.Phase != PhaseManage {
			return nil, illegal(ReasonWrongPhase, gs.Current, a.Tile)
		}
		switch a.Type {
		case ActBuildHouse:
			return BuildHouse(gs, gs.Current, a.Tile)
		case ActSellHouse:
			return SellHouse(gs, gs.Current, a.Tile)
		case ActMortgage:
			return MortgageProperty(gs, gs.Current, a.Tile)
		default:
			return UnmortgageProperty(gs, gs.Current, a.Tile)
		}
	case ActProposeTrade:
		if a.Target < 1 || a.Target >= len(gs.Players) {
			return nil, illegal(ReasonBadTradeTemplate, gs.Current, -1)
		}
		target := (gs.Current + a.Target) % len(gs.Players)
		return ProposeTrade(gs, target, a.Template)
	case ActAcceptTrade:
		return AcceptTrade(gs)
	case ActRejectTrade:
		return RejectTrade(gs)
	case ActEndTurn:
		return EndTurn(gs)
	}
	return nil, illegal(ReasonUnknown, gs.Current, -1)
}

// ---------------------------------------------------------------------------
// Movement
// ---------------------------------------------------------------------------

// MovePlayer advances a player by spaces, crediting the GO salary once per
// wrap past the start tile, even for multi-lap moves.
func MovePlayer(gs *GameState, player, spaces int) *GameState {
	ns := gs.Copy()
	ns.movePlayer(player, spaces)
	return ns
}

func (gs *GameState) movePlayer(player, spaces int) {
	n := gs.Board.NumTiles()
	p := &gs.Players[player]
	wraps := (p.Position + spaces) / n
	p.Position = (p.Position + spaces) % n
	if wraps > 0 {
		salary := gs.Board.GoSalary
		if gs.Config.DoubleSalaryOnGo && p.Position == gs.Board.StartIndex() {
			salary *= 2
		}
		p.Cash += wraps * salary
	}
}

// MoveTo teleports a player to a tile. Salary is credited only when
// collectGo is set (cards that explicitly say "advance to GO").
func MoveTo(gs *GameState, player, tile int, collectGo bool) *GameState {
	ns := gs.Copy()
	ns.moveTo(player, tile, collectGo)
	return ns
}

func (gs *GameState) moveTo(player, tile int, collectGo bool) {
	p := &gs.Players[player]
	if collectGo && tile <= p.Position {
		p.Cash += gs.Board.GoSalary
	}
	p.Position = tile
}

// RollAndMove is the awaiting-roll action: roll the state-owned dice, track
// doubles (a third consecutive double jails the player), move and resolve
// the landing tile.
func RollAndMove(gs *GameState) (*GameState, error) {
	if gs.Phase != PhaseRoll {
		return nil, illegal(ReasonWrongPhase, gs.Current, -1)
	}
	ns := gs.Copy()
	d1, d2 := ns.rollDice()
	ns.LastDice = [2]int{d1, d2}

	if d1 == d2 {
		ns.DoublesCount++
		if ns.DoublesCount >= 3 {
			ns.sendToJail(ns.Current)
			ns.advanceTurn()
			return ns, nil
		}
	} else {
		// A non-double ends the streak, so an earned extra roll does not
		// grant another one at end of turn.
		ns.DoublesCount = 0
	}

	ns.movePlayer(ns.Current, d1+d2)
	ns.resolveLanding(ns.Current)
	return ns, nil
}

// resolveLanding applies the effect of the tile the player now occupies and
// sets the follow-up phase. May recurse through card-driven movement.
func (gs *GameState) resolveLanding(player int) {
	if gs.Over {
		return
	}
	p := &gs.Players[player]
	t := gs.Board.Tile(p.Position)

	switch t.Kind {
	case PropertyTile, RailroadTile, UtilityTile:
		ps := &gs.Properties[p.Position]
		if ps.Owner < 0 {
			gs.Phase = PhasePurchase
			return
		}
		if ps.Owner != player && !ps.Mortgaged {
			rules := NewRules(gs.Board, gs.Config)
			rent := rules.Rent(gs, p.Position, gs.LastDice[0]+gs.LastDice[1])
			gs.settleDebt(player, ps.Owner, rent)
		}
		gs.afterLanding(player)

	case TaxTile:
		gs.settleDebt(player, Bank, t.Tax)
		if gs.Config.FreeParkingPool && !gs.Players[player].Bankrupt {
			gs.FreeParkingPool += t.Tax
		}
		gs.afterLanding(player)

	case ChanceTile:
		effect := gs.Chance.Draw()
		gs.applyCardEffect(player, effect)

	case CommunityChestTile:
		effect := gs.Chest.Draw()
		gs.applyCardEffect(player, effect)

	case GoToJailTile:
		gs.sendToJail(player)
		gs.advanceTurn()

	case FreeParkingTile:
		if gs.Config.FreeParkingPool && gs.FreeParkingPool > 0 {
			p.Cash += gs.FreeParkingPool
			gs.FreeParkingPool = 0
		}
		gs.afterLanding(player)

	default: // start, jail (just visiting)
		gs.afterLanding(player)
	}
}

// afterLanding routes to the management phase, or on to the next player when
// the landing bankrupted the mover.
func (gs *GameState) afterLanding(player int) {
	if gs.Over {
		return
	}
	if gs.Players[player].Bankrupt {
		gs.advanceTurn()
		return
	}
	gs.Phase = PhaseManage
}

// ---------------------------------------------------------------------------
// Purchases and auctions
// ---------------------------------------------------------------------------

// PurchaseProperty buys a tile for the given price: deducts the price, sets
// the owner, and closes any open auction on that tile.
func PurchaseProperty(gs *GameState, player, tile, price int) (*GameState, error) {
	t := gs.Board.Tile(tile)
	if !t.Purchasable() {
		return nil, illegal(ReasonNotPurchasable, player, tile)
	}
	if gs.Properties[tile].Owner >= 0 {
		return nil, illegal(ReasonAlreadyOwned, player, tile)
	}
	if gs.Players[player].Cash < price {
		return nil, illegal(ReasonInsufficientFunds, player, tile)
	}
	ns := gs.Copy()
	ns.Players[player].Cash -= price
	ns.Properties[tile].Owner = player
	if ns.Auction != nil && ns.Auction.Tile == tile {
		ns.Auction = nil
	}
	return ns, nil
}

// BuyLanded is the purchase-decision "buy": the current player buys the tile
// they stand on at list price.
func BuyLanded(gs *GameState) (*GameState, error) {
	if gs.Phase != PhasePurchase {
		return nil, illegal(ReasonWrongPhase, gs.Current, -1)
	}
	tile := gs.CurrentPlayer().Position
	ns, err := PurchaseProperty(gs, gs.Current, tile, gs.Board.Tile(tile).Price)
	if err != nil {
		return nil, err
	}
	ns.Phase = PhaseManage
	return ns, nil
}

// DeclinePurchase sends the declined tile to auction among all solvent
// players, the declining player included.
func DeclinePurchase(gs *GameState) (*GameState, error) {
	if gs.Phase != PhasePurchase {
		return nil, illegal(ReasonWrongPhase, gs.Current, -1)
	}
	ns := gs.Copy()
	tile := ns.CurrentPlayer().Position
	eligible := make([]bool, len(ns.Players))
	for i := range ns.Players {
		eligible[i] = !ns.Players[i].Bankrupt
	}
	ns.Auction = &AuctionState{
		Tile:       tile,
		HighBidder: -1,
		Eligible:   eligible,
		Turn:       ns.nextEligibleBidder(eligible, ns.Current),
	}
	ns.Phase = PhaseAuction
	return ns, nil
}

func (gs *GameState) nextEligibleBidder(eligible []bool, after int) int {
	for i := 1; i <= len(eligible); i++ {
		idx := (after + i) % len(eligible)
		if eligible[idx] {
			return idx
		}
	}
	return after
}

// AuctionBid places a bid at one of the discrete levels for the player whose
// bid decision it is.
func AuctionBid(gs *GameState, level int) (*GameState, error) {
	if gs.Phase != PhaseAuction || gs.Auction == nil {
		return nil, illegal(ReasonNoAuction, gs.Current, -1)
	}
	if level < 0 || level >= NumBidLevels {
		return nil, illegal(ReasonBidTooLow, gs.Auction.Turn, gs.Auction.Tile)
	}
	a := gs.Auction
	bidder := a.Turn
	amount := AuctionBidLevels[level]
	if !a.Eligible[bidder] {
		return nil, illegal(ReasonNotBidder, bidder, a.Tile)
	}
	if amount <= a.HighBid {
		return nil, illegal(ReasonBidTooLow, bidder, a.Tile)
	}
	if gs.Players[bidder].Cash < amount {
		return nil, illegal(ReasonInsufficientFunds, bidder, a.Tile)
	}

	ns := gs.Copy()
	na := ns.Auction
	na.HighBid = amount
	na.HighBidder = bidder
	na.Turn = ns.nextEligibleBidder(na.Eligible, bidder)
	return ns, nil
}

// AuctionPass withdraws the deciding player from the auction. The auction
// settles once nobody is left who could outbid the standing high bid: the
// high bidder takes the tile at that bid, or it stays with the bank when no
// bid was ever placed.
func AuctionPass(gs *GameState) (*GameState, error) {
	if gs.Phase != PhaseAuction || gs.Auction == nil {
		return nil, illegal(ReasonNoAuction, gs.Current, -1)
	}
	ns := gs.Copy()
	a := ns.Auction
	passer := a.Turn
	a.Eligible[passer] = false

	remaining := a.EligibleCount()
	if remaining > 1 || (remaining == 1 && (a.HighBidder < 0 || !a.Eligible[a.HighBidder])) {
		a.Turn = ns.nextEligibleBidder(a.Eligible, passer)
		return ns, nil
	}

	// The recorded high bid stands even when the bidder later withdrew.
	if a.HighBidder >= 0 {
		ns.Players[a.HighBidder].Cash -= a.HighBid
		ns.Properties[a.Tile].Owner = a.HighBidder
	}
	ns.Auction = nil
	ns.Phase = PhaseManage
	return ns, nil
}

// ---------------------------------------------------------------------------
// Building, mortgaging
// ---------------------------------------------------------------------------

// BuildHouse raises the development level of a tile by one, enforcing
// monopoly, even-building and bank inventory. Level 5 swaps four houses for
// a hotel.
func BuildHouse(gs *GameState, player, tile int) (*GameState, error) {
	rules := NewRules(gs.Board, gs.Config)
	if err := rules.CanBuildHouse(gs, player, tile); err != nil {
		return nil, err
	}
	ns := gs.Copy()
	ps := &ns.Properties[tile]
	ns.Players[player].Cash -= ns.Board.Tile(tile).HouseCost
	ps.Level++
	if ps.Level == MaxDevelopment {
		ns.HotelsLeft--
		ns.HousesLeft += MaxDevelopment - 1 // four houses return to the bank
	} else {
		ns.HousesLeft--
	}
	return ns, nil
}

// SellHouse lowers the development level by one, refunding half the build
// cost. Downgrading a hotel takes four houses back out of the bank.
func SellHouse(gs *GameState, player, tile int) (*GameState, error) {
	rules := NewRules(gs.Board, gs.Config)
	if err := rules.CanSellHouse(gs, player, tile); err != nil {
		return nil, err
	}
	ns := gs.Copy()
	ns.sellHouse(player, tile)
	return ns, nil
}

func (gs *GameState) sellHouse(player, tile int) {
	ps := &gs.Properties[tile]
	if ps.Level == MaxDevelopment {
		gs.HotelsLeft++
		gs.HousesLeft -= MaxDevelopment - 1
	} else {
		gs.HousesLeft++
	}
	ps.Level--
	gs.Players[player].Cash += gs.Board.Tile(tile).HouseCost / 2
}

// MortgageProperty converts an undeveloped holding into cash at its mortgage
// value. Mortgaging a developed tile is rejected; sell the buildings first.
func MortgageProperty(gs *GameState, player, tile int) (*GameState, error) {
	rules := NewRules(gs.Board, gs.Config)
	if err := rules.CanMortgage(gs, player, tile); err != nil {
		return nil, err
	}
	ns := gs.Copy()
	ns.mortgage(player, tile)
	return ns, nil
}

func (gs *GameState) mortgage(player, tile int) {
	gs.Properties[tile].Mortgaged = true
	gs.Players[player].Cash += gs.Board.Tile(tile).Mortgage
}

// UnmortgageProperty redeems a mortgage at 110% of the mortgage value.
func UnmortgageProperty(gs *GameState, player, tile int) (*GameState, error) {
	rules := NewRules(gs.Board, gs.Config)
	if err := rules.CanUnmortgage(gs, player, tile); err != nil {
		return nil, err
	}
	ns := gs.Copy()
	ns.Properties[tile].Mortgaged = false
	ns.Players[player].Cash -= UnmortgageCost(ns.Board.Tile(tile).Mortgage)
	return ns, nil
}

// ---------------------------------------------------------------------------
// Jail
// ---------------------------------------------------------------------------

// SendToJail moves a player to the jail tile and flags them in jail. The
// doubles streak resets.
func SendToJail(gs *GameState, player int) *GameState {
	ns := gs.Copy()
	ns.sendToJail(player)
	return ns
}

func (gs *GameState) sendToJail(player int) {
	p := &gs.Players[player]
	p.Position = gs.Board.JailIndex()
	p.InJail = true
	p.JailTurns = 0
	gs.DoublesCount = 0
}

// ReleaseFromJail clears the jail flag and counter.
func ReleaseFromJail(gs *GameState, player int) *GameState {
	ns := gs.Copy()
	ns.releaseFromJail(player)
	return ns
}

func (gs *GameState) releaseFromJail(player int) {
	p := &gs.Players[player]
	p.InJail = false
	p.JailTurns = 0
}

// PayJailFine buys release before rolling; the turn proceeds normally.
func PayJailFine(gs *GameState) (*GameState, error) {
	if gs.Phase != PhaseJail {
		return nil, illegal(ReasonWrongPhase, gs.Current, -1)
	}
	p := gs.CurrentPlayer()
	if !p.InJail {
		return nil, illegal(ReasonNotInJail, gs.Current, -1)
	}
	if p.Cash < gs.Config.JailFine {
		return nil, illegal(ReasonInsufficientFunds, gs.Current, -1)
	}
	ns := gs.Copy()
	ns.CurrentPlayer().Cash -= ns.Config.JailFine
	if ns.Config.FreeParkingPool {
		ns.FreeParkingPool += ns.Config.JailFine
	}
	ns.releaseFromJail(ns.Current)
	ns.Phase = PhaseRoll
	return ns, nil
}

// UseJailCard consumes a held get-out-of-jail card for release.
func UseJailCard(gs *GameState) (*GameState, error) {
	if gs.Phase != PhaseJail {
		return nil, illegal(ReasonWrongPhase, gs.Current, -1)
	}
	p := gs.CurrentPlayer()
	if !p.InJail {
		return nil, illegal(ReasonNotInJail, gs.Current, -1)
	}
	if p.JailCards == 0 {
		return nil, illegal(ReasonNoJailCard, gs.Current, -1)
	}
	ns := gs.Copy()
	ns.CurrentPlayer().JailCards--
	ns.releaseFromJail(ns.Current)
	ns.Phase = PhaseRoll
	return ns, nil
}

// RollForJail attempts doubles for a free release. A double releases and
// moves without a re-roll; the third failed attempt forces the fine and
// moves anyway.
func RollForJail(gs *GameState) (*GameState, error) {
	if gs.Phase != PhaseJail {
		return nil, illegal(ReasonWrongPhase, gs.Current, -1)
	}
	if !gs.CurrentPlayer().InJail {
		return nil, illegal(ReasonNotInJail, gs.Current, -1)
	}
	ns := gs.Copy()
	d1, d2 := ns.rollDice()
	ns.LastDice = [2]int{d1, d2}
	// DoublesCount stays 0 here so a double earns no extra roll.

	if d1 == d2 {
		ns.releaseFromJail(ns.Current)
		ns.movePlayer(ns.Current, d1+d2)
		ns.resolveLanding(ns.Current)
		return ns, nil
	}

	p := ns.CurrentPlayer()
	p.JailTurns++
	if p.JailTurns >= ns.Config.MaxJailTurns {
		ns.settleDebt(ns.Current, Bank, ns.Config.JailFine)
		if ns.Config.FreeParkingPool && !p.Bankrupt {
			ns.FreeParkingPool += ns.Config.JailFine
		}
		if p.Bankrupt {
			ns.advanceTurn()
			return ns, nil
		}
		ns.releaseFromJail(ns.Current)
		ns.movePlayer(ns.Current, d1+d2)
		ns.resolveLanding(ns.Current)
		return ns, nil
	}

	ns.advanceTurn()
	return ns, nil
}

// ---------------------------------------------------------------------------
// Trades
// ---------------------------------------------------------------------------

// ProposeTrade expands a template against the current state and parks it as
// the pending offer for the target to answer.
func ProposeTrade(gs *GameState, target, template int) (*GameState, error) {
	if gs.Phase != PhaseManage {
		return nil, illegal(ReasonWrongPhase, gs.Current, -1)
	}
	if gs.Trade != nil {
		return nil, illegal(ReasonTradePending, gs.Current, -1)
	}
	if target == gs.Current || target < 0 || target >= len(gs.Players) {
		return nil, illegal(ReasonBadTradeTemplate, gs.Current, -1)
	}
	if gs.Players[target].Bankrupt {
		return nil, illegal(ReasonPlayerBankrupt, target, -1)
	}
	rules := NewRules(gs.Board, gs.Config)
	offer, err := ResolveTradeTemplate(gs, rules, gs.Current, target, template)
	if err != nil {
		return nil, err
	}
	ns := gs.Copy()
	ns.Trade = offer
	ns.Phase = PhaseTrade
	return ns, nil
}

// AcceptTrade executes the pending offer: tiles and cash change hands
// atomically, then control returns to the proposer's management phase.
func AcceptTrade(gs *GameState) (*GameState, error) {
	if gs.Phase != PhaseTrade {
		return nil, illegal(ReasonWrongPhase, gs.Current, -1)
	}
	rules := NewRules(gs.Board, gs.Config)
	if err := rules.canAcceptTrade(gs); err != nil {
		return nil, err
	}
	ns := gs.Copy()
	tr := ns.Trade
	for _, id := range tr.OfferedTiles {
		ns.Properties[id].Owner = tr.To
	}
	for _, id := range tr.RequestedTiles {
		ns.Properties[id].Owner = tr.From
	}
	ns.Players[tr.From].Cash += tr.RequestedCash - tr.OfferedCash
	ns.Players[tr.To].Cash += tr.OfferedCash - tr.RequestedCash
	ns.Trade = nil
	ns.Phase = PhaseManage
	return ns, nil
}

// RejectTrade discards the pending offer.
func RejectTrade(gs *GameState) (*GameState, error) {
	if gs.Phase != PhaseTrade {
		return nil, illegal(ReasonWrongPhase, gs.Current, -1)
	}
	if gs.Trade == nil {
		return nil, illegal(ReasonNoTrade, gs.Current, -1)
	}
	ns := gs.Copy()
	ns.Trade = nil
	ns.Phase = PhaseManage
	return ns, nil
}

// ---------------------------------------------------------------------------
// Debt, bankruptcy, turn rotation
// ---------------------------------------------------------------------------

// PayDebt settles an obligation from debtor to creditor (Bank for the bank),
// liquidating assets deterministically when cash falls short. When even full
// liquidation cannot cover the debt, PayDebt returns ErrInsolvent with the
// input state untouched; the caller routes to BankruptPlayer.
func PayDebt(gs *GameState, debtor, creditor, amount int) (*GameState, error) {
	if amount < 0 {
		return nil, illegal(ReasonUnknown, debtor, -1)
	}
	ns := gs.Copy()
	ns.liquidateFor(debtor, amount)
	if ns.Players[debtor].Cash < amount {
		return nil, ErrInsolvent
	}
	ns.Players[debtor].Cash -= amount
	if creditor != Bank {
		ns.Players[creditor].Cash += amount
	}
	return ns, nil
}

// liquidateFor raises cash toward amount: sell buildings evenly (ascending
// tile id), then mortgage (ascending tile id), stopping as soon as cash
// covers the target.
func (gs *GameState) liquidateFor(debtor, amount int) {
	p := &gs.Players[debtor]
	rules := NewRules(gs.Board, gs.Config)

	for p.Cash < amount {
		tile := -1
		for id := 0; id < gs.Board.NumTiles(); id++ {
			if rules.CanSellHouse(gs, debtor, id) == nil {
				tile = id
				break
			}
		}
		if tile < 0 {
			break
		}
		gs.sellHouse(debtor, tile)
	}
	for p.Cash < amount {
		tile := -1
		for id := 0; id < gs.Board.NumTiles(); id++ {
			if rules.CanMortgage(gs, debtor, id) == nil {
				tile = id
				break
			}
		}
		if tile < 0 {
			break
		}
		gs.mortgage(debtor, tile)
	}
}

// settleDebt pays amount from debtor to creditor, liquidating first. If the
// debt still exceeds everything the debtor can raise, the full amount is
// paid anyway (cash goes transiently negative) and bankruptcy transfers the
// shortfall back to the creditor, so no cash is created or destroyed.
func (gs *GameState) settleDebt(debtor, creditor, amount int) {
	gs.liquidateFor(debtor, amount)
	p := &gs.Players[debtor]
	p.Cash -= amount
	if creditor != Bank {
		gs.Players[creditor].Cash += amount
	}
	if p.Cash < 0 {
		gs.bankruptPlayer(debtor, creditor)
	}
}

// BankruptPlayer transfers every asset of the debtor to the creditor (or
// back to the bank) and removes the debtor from the turn rotation.
func BankruptPlayer(gs *GameState, debtor, creditor int) *GameState {
	ns := gs.Copy()
	ns.bankruptPlayer(debtor, creditor)
	return ns
}

func (gs *GameState) bankruptPlayer(debtor, creditor int) {
	p := &gs.Players[debtor]

	for _, id := range gs.OwnedTiles(debtor) {
		ps := &gs.Properties[id]
		// Developments always return to the bank inventory.
		if ps.Level > 0 {
			if ps.Level == MaxDevelopment {
				gs.HotelsLeft++
			} else {
				gs.HousesLeft += ps.Level
			}
			ps.Level = 0
		}
		if creditor != Bank {
			ps.Owner = creditor // mortgage flag carries over as-is
		} else {
			ps.Owner = -1
			ps.Mortgaged = false
		}
	}

	// Remaining cash (possibly negative after a forced overpayment) follows
	// the assets, as do any held jail cards.
	if creditor != Bank {
		gs.Players[creditor].Cash += p.Cash
		gs.Players[creditor].JailCards += p.JailCards
	}
	p.Cash = 0
	p.JailCards = 0
	p.Bankrupt = true
	p.InJail = false
	p.JailTurns = 0

	// A bankrupt player cannot hold up an auction or a trade.
	if gs.Auction != nil {
		gs.Auction.Eligible[debtor] = false
		if gs.Auction.Turn == debtor {
			gs.Auction.Turn = gs.nextEligibleBidder(gs.Auction.Eligible, debtor)
		}
	}
	if gs.Trade != nil && (gs.Trade.From == debtor || gs.Trade.To == debtor) {
		gs.Trade = nil
	}

	gs.checkWinner()
}

// EndTurn leaves the management phase. A live doubles streak earns the same
// player another roll; otherwise the turn passes to the next solvent player.
func EndTurn(gs *GameState) (*GameState, error) {
	if gs.Phase != PhaseManage {
		return nil, illegal(ReasonWrongPhase, gs.Current, -1)
	}
	ns := gs.Copy()
	if ns.DoublesCount > 0 && !ns.CurrentPlayer().InJail && !ns.CurrentPlayer().Bankrupt {
		ns.Turn++
		ns.Phase = PhaseRoll
		return ns, nil
	}
	ns.advanceTurn()
	return ns, nil
}

// AdvanceTurn rotates to the next non-bankrupt player, resetting the doubles
// streak.
func AdvanceTurn(gs *GameState) *GameState {
	ns := gs.Copy()
	ns.advanceTurn()
	return ns
}

func (gs *GameState) advanceTurn() {
	if gs.Over {
		return
	}
	gs.DoublesCount = 0
	gs.LastDice = [2]int{}
	gs.Turn++

	prev := gs.Current
	for i := 1; i <= len(gs.Players); i++ {
		idx := (prev + i) % len(gs.Players)
		if !gs.Players[idx].Bankrupt {
			gs.Current = idx
			break
		}
	}
	if gs.Current <= prev {
		gs.Round++
		if gs.Config.MaxRounds > 0 && gs.Round >= gs.Config.MaxRounds {
			gs.endByNetWorth()
			return
		}
	}

	if gs.CurrentPlayer().InJail {
		gs.Phase = PhaseJail
	} else {
		gs.Phase = PhaseRoll
	}
}

// endByNetWorth finishes a round-limited game, ranking survivors by net
// worth (ties go to the earlier seat).
func (gs *GameState) endByNetWorth() {
	rules := NewRules(gs.Board, gs.Config)
	best, winner := -1, -1
	for _, id := range gs.ActivePlayers() {
		if w := rules.NetWorth(gs, id); w > best {
			best, winner = w, id
		}
	}
	gs.Over = true
	gs.Winner = winner
	gs.Phase = PhaseOver
}

// ---------------------------------------------------------------------------
// Card effects
// ---------------------------------------------------------------------------

// ApplyCardEffect dispatches a drawn card's tagged variant to the matching
// transitions.
func ApplyCardEffect(gs *GameState, player int, effect CardEffect) (*GameState, error) {
	ns := gs.Copy()
	ns.applyCardEffect(player, effect)
	return ns, nil
}

func (gs *GameState) applyCardEffect(player int, effect CardEffect) {
	p := &gs.Players[player]

	switch effect.Kind {
	case CardMoveTo:
		gs.moveTo(player, effect.TargetTile, effect.CollectGo)
		gs.resolveLanding(player)

	case CardMoveBack:
		n := gs.Board.NumTiles()
		p.Position = (p.Position - effect.Spaces%n + n) % n
		gs.resolveLanding(player)

	case CardAdvanceToNearest:
		target := gs.nearestOfKind(p.Position, effect.Nearest)
		if target >= 0 {
			gs.moveTo(player, target, false)
			gs.resolveLanding(player)
		} else {
			gs.afterLanding(player)
		}

	case CardCollect:
		p.Cash += effect.Amount
		gs.afterLanding(player)

	case CardPay:
		gs.settleDebt(player, Bank, effect.Amount)
		if gs.Config.FreeParkingPool && !gs.Players[player].Bankrupt {
			gs.FreeParkingPool += effect.Amount
		}
		gs.afterLanding(player)

	case CardCollectFromEach:
		for _, other := range gs.ActivePlayers() {
			if other == player || gs.Players[player].Bankrupt {
				continue
			}
			gs.settleDebt(other, player, effect.PerPlayer)
		}
		gs.afterLanding(player)

	case CardPayEach:
		for _, other := range gs.ActivePlayers() {
			if other == player || gs.Players[player].Bankrupt {
				continue
			}
			gs.settleDebt(player, other, effect.PerPlayer)
		}
		gs.afterLanding(player)

	case CardGetOutOfJail:
		p.JailCards++
		gs.afterLanding(player)

	case CardGoToJail:
		gs.sendToJail(player)
		gs.advanceTurn()

	case CardRepairs:
		total := 0
		for _, id := range gs.OwnedTiles(player) {
			lvl := gs.Properties[id].Level
			if lvl == MaxDevelopment {
				total += effect.HotelCost
			} else {
				total += effect.HouseCost * lvl
			}
		}
		if total > 0 {
			gs.settleDebt(player, Bank, total)
		}
		gs.afterLanding(player)

	default:
		panic("unhandled card effect kind")
	}
}

// nearestOfKind finds the first tile of the given kind strictly ahead of
// from, wrapping around; -1 if the board has none.
func (gs *GameState) nearestOfKind(from int, kind TileKind) int {
	n := gs.Board.NumTiles()
	for i := 1; i <= n; i++ {
		idx := (from + i) % n
		if gs.Board.Tile(idx).Kind == kind {
			return idx
		}
	}
	return -1
}
