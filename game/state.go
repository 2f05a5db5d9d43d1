package game

// MaxPlayers bounds the per-game player count (and the action-space sizing).
const MaxPlayers = 6

// Bank is the pseudo player id used as creditor/debtor for bank payments.
const Bank = -1

// Phase restricts which actions are legal at any point of a turn.
type Phase int

const (
	PhaseRoll     Phase = iota // awaiting dice roll
	PhaseJail                  // in jail, choosing fine/card/roll
	PhasePurchase              // landed on an unowned tile, buy or decline
	PhaseAuction               // auction in progress
	PhaseTrade                 // trade offer awaiting the recipient
	PhaseManage                // optional actions: build, mortgage, trade, end turn
	PhaseOver                  // terminal
)

var phaseNames = map[Phase]string{
	PhaseRoll:     "roll",
	PhaseJail:     "jail",
	PhasePurchase: "purchase",
	PhaseAuction:  "auction",
	PhaseTrade:    "trade",
	PhaseManage:   "manage",
	PhaseOver:     "over",
}

func (p Phase) String() string { return phaseNames[p] }

// PlayerState is one player's dynamic state. Ownership is not duplicated
// here; it lives solely in GameState.Properties to keep the two from
// drifting apart.
type PlayerState struct {
	ID        int
	Position  int
	Cash      int
	InJail    bool
	JailTurns int
	JailCards int // get-out-of-jail cards held
	Bankrupt  bool
}

// PropertyState is the dynamic state of one purchasable tile.
type PropertyState struct {
	Owner     int // player id, -1 if unowned
	Level     int // 0-4 houses, 5 = hotel
	Mortgaged bool
}

// AuctionState tracks an auction started by a declined purchase.
type AuctionState struct {
	Tile       int
	HighBid    int
	HighBidder int // -1 until someone bids
	Eligible   []bool
	Turn       int // player whose bid decision is next
}

// EligibleCount returns the number of players still allowed to bid.
func (a *AuctionState) EligibleCount() int {
	n := 0
	for _, e := range a.Eligible {
		if e {
			n++
		}
	}
	return n
}

// TradeOffer is a template-bounded proposal between two players.
type TradeOffer struct {
	From           int
	To             int
	OfferedTiles   []int
	OfferedCash    int
	RequestedTiles []int
	RequestedCash  int
	Template       int
}

// GameState is the complete dynamic state of one game. Everything except the
// Board pointer is exclusively owned; transitions copy before mutating so a
// previously returned state is never changed in place.
type GameState struct {
	Board  *Board
	Config GameConfig

	Players    []PlayerState
	Properties []PropertyState // indexed by tile id

	Phase        Phase
	Current      int // index into Players
	Turn         int
	Round        int
	LastDice     [2]int
	DoublesCount int

	HousesLeft      int
	HotelsLeft      int
	FreeParkingPool int

	Auction *AuctionState
	Trade   *TradeOffer

	Chance CardDeck
	Chest  CardDeck

	DiceRNG uint64

	Over   bool
	Winner int // player id, -1 while the game runs
}

// NewGameState creates the initial state for a game on the given board.
func NewGameState(b *Board, cfg GameConfig) (*GameState, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	players := make([]PlayerState, cfg.NumPlayers)
	for i := range players {
		players[i] = PlayerState{ID: i, Position: b.StartIndex(), Cash: cfg.StartingCash}
	}

	props := make([]PropertyState, b.NumTiles())
	for i := range props {
		props[i].Owner = -1
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = 1
	}

	return &GameState{
		Board:      b,
		Config:     cfg,
		Players:    players,
		Properties: props,
		Phase:      PhaseRoll,
		HousesLeft: cfg.HousesInBank,
		HotelsLeft: cfg.HotelsInBank,
		Chance:     NewDeck(ChanceCards(), seed+1),
		Chest:      NewDeck(CommunityChestCards(), seed+2),
		DiceRNG:    seed,
		Winner:     -1,
	}, nil
}

// Copy returns a deep copy sharing the immutable Board.
func (gs *GameState) Copy() *GameState {
	playersCopy := make([]PlayerState, len(gs.Players))
	copy(playersCopy, gs.Players)

	propsCopy := make([]PropertyState, len(gs.Properties))
	copy(propsCopy, gs.Properties)

	var auctionCopy *AuctionState
	if gs.Auction != nil {
		a := *gs.Auction
		a.Eligible = append([]bool(nil), gs.Auction.Eligible...)
		auctionCopy = &a
	}

	var tradeCopy *TradeOffer
	if gs.Trade != nil {
		t := *gs.Trade
		t.OfferedTiles = append([]int(nil), gs.Trade.OfferedTiles...)
		t.RequestedTiles = append([]int(nil), gs.Trade.RequestedTiles...)
		tradeCopy = &t
	}

	return &GameState{
		Board:           gs.Board,
		Config:          gs.Config,
		Players:         playersCopy,
		Properties:      propsCopy,
		Phase:           gs.Phase,
		Current:         gs.Current,
		Turn:            gs.Turn,
		Round:           gs.Round,
		LastDice:        gs.LastDice,
		DoublesCount:    gs.DoublesCount,
		HousesLeft:      gs.HousesLeft,
		HotelsLeft:      gs.HotelsLeft,
		FreeParkingPool: gs.FreeParkingPool,
		Auction:         auctionCopy,
		Trade:           tradeCopy,
		Chance:          gs.Chance.Copy(),
		Chest:           gs.Chest.Copy(),
		DiceRNG:         gs.DiceRNG,
		Over:            gs.Over,
		Winner:          gs.Winner,
	}
}

// CurrentPlayer returns the player whose turn it is.
func (gs *GameState) CurrentPlayer() *PlayerState { return &gs.Players[gs.Current] }

// Player returns the player with the given id.
func (gs *GameState) Player(id int) *PlayerState { return &gs.Players[id] }

// ActivePlayers returns the ids of non-bankrupt players, ascending.
func (gs *GameState) ActivePlayers() []int {
	var ids []int
	for i := range gs.Players {
		if !gs.Players[i].Bankrupt {
			ids = append(ids, i)
		}
	}
	return ids
}

// OwnedTiles returns the tile ids owned by a player, ascending.
func (gs *GameState) OwnedTiles(player int) []int {
	var ids []int
	for id := range gs.Properties {
		if gs.Properties[id].Owner == player {
			ids = append(ids, id)
		}
	}
	return ids
}

// CountOwnedOfKind returns how many tiles of the given kind a player owns.
func (gs *GameState) CountOwnedOfKind(player int, kind TileKind) int {
	n := 0
	for id := range gs.Properties {
		if gs.Properties[id].Owner == player && gs.Board.Tile(id).Kind == kind {
			n++
		}
	}
	return n
}

// IsDoubles reports whether the last dice roll was a double.
func (gs *GameState) IsDoubles() bool {
	return gs.LastDice[0] != 0 && gs.LastDice[0] == gs.LastDice[1]
}

// nextRand advances the dice RNG stream (xorshift64).
func (gs *GameState) nextRand() uint64 {
	x := gs.DiceRNG
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	gs.DiceRNG = x
	return x
}

// rollDice draws two dice from the state-owned RNG stream.
func (gs *GameState) rollDice() (int, int) {
	d1 := int(gs.nextRand()%6) + 1
	d2 := int(gs.nextRand()%6) + 1
	return d1, d2
}

// checkWinner marks the game over when at most one player remains solvent.
func (gs *GameState) checkWinner() {
	active := gs.ActivePlayers()
	if len(active) == 1 {
		gs.Over = true
		gs.Winner = active[0]
		gs.Phase = PhaseOver
	}
}

// IsTerminal reports whether the game has ended.
func (gs *GameState) IsTerminal() bool { return gs.Over }
