package game

// TileKind tags each board tile with its variant.
type TileKind int

const (
	StartTile TileKind = iota
	PropertyTile
	RailroadTile
	UtilityTile
	TaxTile
	ChanceTile
	CommunityChestTile
	JailTile
	GoToJailTile
	FreeParkingTile
)

var tileKindNames = map[TileKind]string{
	StartTile:          "start",
	PropertyTile:       "property",
	RailroadTile:       "railroad",
	UtilityTile:        "utility",
	TaxTile:            "tax",
	ChanceTile:         "chance",
	CommunityChestTile: "community_chest",
	JailTile:           "jail",
	GoToJailTile:       "go_to_jail",
	FreeParkingTile:    "free_parking",
}

func (k TileKind) String() string { return tileKindNames[k] }

// MaxDevelopment is the highest development level: 0-4 houses, 5 = hotel.
const MaxDevelopment = 5

// Tile is one position on the board. Kind-specific fields are zero for kinds
// that do not carry them.
type Tile struct {
	ID        int
	Name      string
	Kind      TileKind
	Group     string // property group name, "" for ungrouped tiles
	Price     int    // purchase price (Property/Railroad/Utility)
	Rent      []int  // Property rent by development level, len = MaxDevelopment+1
	BaseRent  int    // Railroad base rent
	HouseCost int    // Property building cost
	Mortgage  int    // mortgage value (Property/Railroad/Utility)
	Tax       int    // Tax charge
}

// Purchasable reports whether the tile can be owned by a player.
func (t *Tile) Purchasable() bool {
	return t.Kind == PropertyTile || t.Kind == RailroadTile || t.Kind == UtilityTile
}

// Board is the static, immutable description of tiles, property groups and
// rent tables. It is built once and shared read-only across game instances;
// nothing on a Board mutates after newBoard returns.
type Board struct {
	Name           string
	CurrencySymbol string
	GoSalary       int

	tiles   []Tile
	groups  map[string][]int // group name -> member tile ids, ascending
	groupOf []string         // tile id -> group name, "" if ungrouped

	startIdx       int
	jailIdx        int
	goToJailIdx    int
	freeParkingIdx int
}

// newBoard validates the assembled tiles and indices and returns an immutable
// board. Construction failure is fatal to that board.
func newBoard(name, currency string, goSalary int, tiles []Tile, groups map[string][]int) (*Board, error) {
	if len(tiles) < 4 {
		return nil, configErr("num_tiles", -1, "need at least 4 tiles, got %d", len(tiles))
	}
	if goSalary <= 0 {
		return nil, configErr("go_salary", -1, "must be positive, got %d", goSalary)
	}

	b := &Board{
		Name:           name,
		CurrencySymbol: currency,
		GoSalary:       goSalary,
		tiles:          tiles,
		groups:         make(map[string][]int, len(groups)),
		groupOf:        make([]string, len(tiles)),
		startIdx:       -1,
		jailIdx:        -1,
		goToJailIdx:    -1,
		freeParkingIdx: -1,
	}

	for i := range tiles {
		t := &tiles[i]
		if t.ID != i {
			return nil, configErr("id", t.ID, "tile ids must be contiguous from 0; found %d at index %d", t.ID, i)
		}
		switch t.Kind {
		case PropertyTile:
			if t.Price <= 0 {
				return nil, configErr("price", t.ID, "property needs a positive price")
			}
			if len(t.Rent) != MaxDevelopment+1 {
				return nil, configErr("rent", t.ID, "rent table must have %d entries, got %d", MaxDevelopment+1, len(t.Rent))
			}
			if t.Mortgage <= 0 {
				return nil, configErr("mortgage", t.ID, "property needs a positive mortgage value")
			}
			if t.HouseCost <= 0 {
				return nil, configErr("house_cost", t.ID, "property needs a positive house cost")
			}
			if t.Group == "" {
				return nil, configErr("group", t.ID, "property must declare a group")
			}
		case RailroadTile:
			if t.Price <= 0 || t.Mortgage <= 0 {
				return nil, configErr("price", t.ID, "railroad needs positive price and mortgage value")
			}
			if t.BaseRent <= 0 {
				return nil, configErr("base_rent", t.ID, "railroad needs a positive base rent")
			}
		case UtilityTile:
			if t.Price <= 0 || t.Mortgage <= 0 {
				return nil, configErr("price", t.ID, "utility needs positive price and mortgage value")
			}
		case TaxTile:
			if t.Tax <= 0 {
				return nil, configErr("tax", t.ID, "tax tile needs a positive charge")
			}
		case StartTile:
			b.startIdx = t.ID
		case JailTile:
			b.jailIdx = t.ID
		case GoToJailTile:
			b.goToJailIdx = t.ID
		case FreeParkingTile:
			b.freeParkingIdx = t.ID
		}
	}

	// Groups: every member must exist, be a Property, and belong to exactly
	// one group; the tile's declared group must agree (bidirectional check).
	for name, members := range groups {
		if len(members) == 0 {
			return nil, configErr("property_groups", -1, "group %q has no members", name)
		}
		sorted := append([]int(nil), members...)
		for i := 1; i < len(sorted); i++ {
			for j := i; j > 0 && sorted[j] < sorted[j-1]; j-- {
				sorted[j], sorted[j-1] = sorted[j-1], sorted[j]
			}
		}
		for _, id := range sorted {
			if id < 0 || id >= len(tiles) {
				return nil, configErr("property_groups", id, "group %q references nonexistent tile", name)
			}
			if b.groupOf[id] != "" {
				return nil, configErr("property_groups", id, "tile belongs to both %q and %q", b.groupOf[id], name)
			}
			if tiles[id].Group != name {
				return nil, configErr("group", id, "tile declares group %q but is listed under %q", tiles[id].Group, name)
			}
			b.groupOf[id] = name
		}
		b.groups[name] = sorted
	}
	for i := range tiles {
		if tiles[i].Group != "" && b.groupOf[i] == "" {
			return nil, configErr("group", i, "tile declares group %q but the group does not list it", tiles[i].Group)
		}
	}

	if b.startIdx < 0 {
		return nil, configErr("tiles", -1, "board has no start tile")
	}
	if b.jailIdx < 0 {
		return nil, configErr("tiles", -1, "board has no jail tile")
	}

	return b, nil
}

// NumTiles returns the number of tiles on the board.
func (b *Board) NumTiles() int { return len(b.tiles) }

// Tile returns the tile with the given id.
func (b *Board) Tile(id int) *Tile { return &b.tiles[id] }

// GroupOf returns the property group name for a tile, "" if ungrouped.
func (b *Board) GroupOf(id int) string { return b.groupOf[id] }

// GroupTiles returns the member tile ids of a group in ascending order.
// The returned slice must not be modified.
func (b *Board) GroupTiles(name string) []int { return b.groups[name] }

// Groups returns the group name -> members map. Read-only.
func (b *Board) Groups() map[string][]int { return b.groups }

// StartIndex returns the tile id of the start tile.
func (b *Board) StartIndex() int { return b.startIdx }

// JailIndex returns the tile id of the jail tile.
func (b *Board) JailIndex() int { return b.jailIdx }

// GoToJailIndex returns the go-to-jail tile id, -1 if absent.
func (b *Board) GoToJailIndex() int { return b.goToJailIdx }

// FreeParkingIndex returns the free-parking tile id, -1 if absent.
func (b *Board) FreeParkingIndex() int { return b.freeParkingIdx }

// TilesOfKind returns the ids of all tiles of the given kind, ascending.
func (b *Board) TilesOfKind(kind TileKind) []int {
	var ids []int
	for i := range b.tiles {
		if b.tiles[i].Kind == kind {
			ids = append(ids, i)
		}
	}
	return ids
}
