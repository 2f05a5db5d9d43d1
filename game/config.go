package game

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BoardConfig is the on-disk board description. See LoadBoard.
type BoardConfig struct {
	Name           string           `yaml:"name"`
	Description    string           `yaml:"description"`
	CurrencySymbol string           `yaml:"currency_symbol"`
	GoSalary       int              `yaml:"go_salary"`
	NumTiles       int              `yaml:"num_tiles"`
	Tiles          []TileConfig     `yaml:"tiles"`
	PropertyGroups map[string][]int `yaml:"property_groups"`
	SpecialTiles   map[string]int   `yaml:"special_tiles"`
}

// TileConfig is one tile record in a board configuration.
type TileConfig struct {
	ID        int    `yaml:"id"`
	Type      string `yaml:"type"`
	Name      string `yaml:"name"`
	Group     string `yaml:"group"`
	Price     int    `yaml:"price"`
	Rent      []int  `yaml:"rent"`
	BaseRent  int    `yaml:"base_rent"`
	HouseCost int    `yaml:"house_cost"`
	Mortgage  int    `yaml:"mortgage"`
	Amount    int    `yaml:"amount"` // tax charge
}

// tileKindFromConfig maps config type tags to kinds, accepting the aliases
// the schema allows (railroad/station, go_to_jail/goto_jail).
var tileKindFromConfig = map[string]TileKind{
	"start":           StartTile,
	"go":              StartTile,
	"property":        PropertyTile,
	"railroad":        RailroadTile,
	"station":         RailroadTile,
	"utility":         UtilityTile,
	"tax":             TaxTile,
	"chance":          ChanceTile,
	"community_chest": CommunityChestTile,
	"jail":            JailTile,
	"go_to_jail":      GoToJailTile,
	"goto_jail":       GoToJailTile,
	"free_parking":    FreeParkingTile,
}

// LoadBoard reads and validates a YAML board configuration. Loading fails
// atomically with a ConfigError naming the offending tile/field.
func LoadBoard(path string) (*Board, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read board config: %w", err)
	}
	return ParseBoardConfig(data)
}

// ParseBoardConfig validates a YAML board configuration and builds the board.
func ParseBoardConfig(data []byte) (*Board, error) {
	var cfg BoardConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse board config: %w", err)
	}
	return BuildBoard(&cfg)
}

// BuildBoard converts a parsed configuration into an immutable Board.
func BuildBoard(cfg *BoardConfig) (*Board, error) {
	if cfg.NumTiles < 4 {
		return nil, configErr("num_tiles", -1, "must be at least 4, got %d", cfg.NumTiles)
	}
	if len(cfg.Tiles) != cfg.NumTiles {
		return nil, configErr("tiles", -1, "num_tiles is %d but %d tiles declared", cfg.NumTiles, len(cfg.Tiles))
	}
	if cfg.GoSalary <= 0 {
		return nil, configErr("go_salary", -1, "must be positive, got %d", cfg.GoSalary)
	}

	tiles := make([]Tile, cfg.NumTiles)
	seen := make([]bool, cfg.NumTiles)
	for i := range cfg.Tiles {
		tc := &cfg.Tiles[i]
		if tc.ID < 0 || tc.ID >= cfg.NumTiles {
			return nil, configErr("id", tc.ID, "out of range [0, %d)", cfg.NumTiles)
		}
		if seen[tc.ID] {
			return nil, configErr("id", tc.ID, "duplicate tile id")
		}
		seen[tc.ID] = true

		kind, ok := tileKindFromConfig[tc.Type]
		if !ok {
			return nil, configErr("type", tc.ID, "unknown tile type %q", tc.Type)
		}

		t := Tile{
			ID:        tc.ID,
			Name:      tc.Name,
			Kind:      kind,
			Group:     tc.Group,
			Price:     tc.Price,
			HouseCost: tc.HouseCost,
			Mortgage:  tc.Mortgage,
			Tax:       tc.Amount,
		}
		switch kind {
		case PropertyTile:
			t.Rent = append([]int(nil), tc.Rent...)
		case RailroadTile:
			t.BaseRent = tc.BaseRent
			if t.BaseRent == 0 {
				t.BaseRent = DefaultRailroadRent
			}
		}
		tiles[tc.ID] = t
	}
	// A gap is impossible once all ids are unique and in range, but keep the
	// check so a short tile list reports the missing id.
	for id, ok := range seen {
		if !ok {
			return nil, configErr("id", id, "missing tile id")
		}
	}

	b, err := newBoard(cfg.Name, cfg.CurrencySymbol, cfg.GoSalary, tiles, cfg.PropertyGroups)
	if err != nil {
		return nil, err
	}

	// special_tiles entries must agree with the tile kinds at those indices.
	for name, idx := range cfg.SpecialTiles {
		if idx < 0 || idx >= cfg.NumTiles {
			return nil, configErr("special_tiles", idx, "%q index out of range", name)
		}
		want, ok := map[string]TileKind{
			"start":        StartTile,
			"jail":         JailTile,
			"go_to_jail":   GoToJailTile,
			"free_parking": FreeParkingTile,
		}[name]
		if !ok {
			return nil, configErr("special_tiles", idx, "unknown special tile %q", name)
		}
		if tiles[idx].Kind != want {
			return nil, configErr("special_tiles", idx, "%q points at a %s tile", name, tiles[idx].Kind)
		}
	}

	return b, nil
}

// DefaultRailroadRent is the classic railroad base rent.
const DefaultRailroadRent = 25

// GameConfig holds the per-game parameters.
type GameConfig struct {
	NumPlayers       int    `yaml:"num_players"`
	StartingCash     int    `yaml:"starting_cash"`
	JailFine         int    `yaml:"jail_fine"`
	MaxJailTurns     int    `yaml:"max_jail_turns"`
	MaxRounds        int    `yaml:"max_rounds"` // 0 = unlimited
	HousesInBank     int    `yaml:"houses_in_bank"`
	HotelsInBank     int    `yaml:"hotels_in_bank"`
	FreeParkingPool  bool   `yaml:"free_parking_pool"`   // taxes accumulate on free parking
	DoubleSalaryOnGo bool   `yaml:"double_salary_on_go"` // landing exactly on start pays double
	Seed             uint64 `yaml:"seed"`
}

// DefaultConfig returns the classic game parameters for the given player count.
func DefaultConfig(numPlayers int) GameConfig {
	return GameConfig{
		NumPlayers:   numPlayers,
		StartingCash: 1500,
		JailFine:     50,
		MaxJailTurns: 3,
		MaxRounds:    0,
		HousesInBank: 32,
		HotelsInBank: 12,
		Seed:         1,
	}
}

// Validate checks the configuration parameters.
func (c *GameConfig) Validate() error {
	if c.NumPlayers < 2 || c.NumPlayers > MaxPlayers {
		return configErr("num_players", -1, "must be between 2 and %d, got %d", MaxPlayers, c.NumPlayers)
	}
	if c.StartingCash <= 0 {
		return configErr("starting_cash", -1, "must be positive, got %d", c.StartingCash)
	}
	if c.JailFine <= 0 {
		return configErr("jail_fine", -1, "must be positive, got %d", c.JailFine)
	}
	if c.MaxJailTurns <= 0 {
		return configErr("max_jail_turns", -1, "must be positive, got %d", c.MaxJailTurns)
	}
	if c.HousesInBank < 0 || c.HotelsInBank < 0 {
		return configErr("houses_in_bank", -1, "inventory cannot be negative")
	}
	return nil
}
