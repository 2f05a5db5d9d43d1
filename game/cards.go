package game

// CardEffectKind tags a drawn card's effect so ApplyCardEffect can match it
// exhaustively instead of parsing card text.
type CardEffectKind int

const (
	CardMoveTo CardEffectKind = iota
	CardMoveBack
	CardAdvanceToNearest
	CardCollect
	CardPay
	CardCollectFromEach
	CardPayEach
	CardGetOutOfJail
	CardGoToJail
	CardRepairs
)

// CardEffect is one Chance or Community Chest card.
type CardEffect struct {
	Kind CardEffectKind
	Text string

	TargetTile int      // MoveTo
	CollectGo  bool     // MoveTo: credit salary when wrapping past start
	Spaces     int      // MoveBack
	Amount     int      // Collect / Pay
	PerPlayer  int      // CollectFromEach / PayEach
	HouseCost  int      // Repairs: per house
	HotelCost  int      // Repairs: per hotel
	Nearest    TileKind // AdvanceToNearest: RailroadTile or UtilityTile
}

// CardDeck is a deterministic, shuffleable queue over a fixed card set. The
// deck owns its RNG stream so two decks with the same seed yield the same
// draw sequence, including across reshuffle boundaries.
type CardDeck struct {
	cards []CardEffect // fixed set, shared immutably between copies
	queue []int        // indices into cards, drawn from the front
	rng   uint64
}

// NewDeck builds a deck over the given cards. The queue starts empty; the
// first draw triggers the first shuffle.
func NewDeck(cards []CardEffect, seed uint64) CardDeck {
	if seed == 0 {
		seed = 1 // xorshift64 cannot start at 0
	}
	return CardDeck{cards: cards, rng: seed}
}

func (d *CardDeck) next() uint64 {
	x := d.rng
	x ^= x << 13
	x ^= x >> 7
	x ^= x << 17
	d.rng = x
	return x
}

// reshuffle rebuilds a fresh full queue with a Fisher-Yates shuffle driven by
// the deck's own RNG.
func (d *CardDeck) reshuffle() {
	d.queue = d.queue[:0]
	for i := range d.cards {
		d.queue = append(d.queue, i)
	}
	for i := len(d.queue) - 1; i > 0; i-- {
		j := int(d.next() % uint64(i+1))
		d.queue[i], d.queue[j] = d.queue[j], d.queue[i]
	}
}

// Draw pops the next card, reshuffling a fresh full deck only when the queue
// is empty.
func (d *CardDeck) Draw() CardEffect {
	if len(d.cards) == 0 {
		panic("draw from deck with no cards")
	}
	if len(d.queue) == 0 {
		d.reshuffle()
	}
	idx := d.queue[0]
	d.queue = d.queue[1:]
	return d.cards[idx]
}

// Remaining returns the number of cards left before the next reshuffle.
func (d *CardDeck) Remaining() int { return len(d.queue) }

// Size returns the size of the full card set.
func (d *CardDeck) Size() int { return len(d.cards) }

// Copy returns an independent deck sharing the immutable card set.
func (d *CardDeck) Copy() CardDeck {
	queueCopy := make([]int, len(d.queue))
	copy(queueCopy, d.queue)
	return CardDeck{cards: d.cards, queue: queueCopy, rng: d.rng}
}
