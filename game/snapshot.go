package game

// Snapshot types are plain value exports for a rendering collaborator.
// Everything is copied out of the live state, so a renderer holding a
// snapshot can never mutate the engine.

// PlayerView is the renderer-facing slice of one player's state.
type PlayerView struct {
	ID        int
	Position  int
	Cash      int
	InJail    bool
	JailCards int
	Bankrupt  bool
	Tiles     []int // owned tile ids, ascending
}

// TileView is the renderer-facing slice of one tile's ownership state.
type TileView struct {
	ID        int
	Name      string
	Kind      TileKind
	Group     string
	Owner     int // -1 when bank-owned
	Level     int
	Mortgaged bool
}

// StateView is a read-only export of a full game state.
type StateView struct {
	BoardName       string
	Phase           Phase
	Current         int
	Turn            int
	Round           int
	LastDice        [2]int
	HousesLeft      int
	HotelsLeft      int
	FreeParkingPool int
	Over            bool
	Winner          int
	Players         []PlayerView
	Tiles           []TileView
}

// Snapshot builds a detached view of the state for display. Later engine
// steps never affect an already taken snapshot.
func (gs *GameState) Snapshot() StateView {
	view := StateView{
		BoardName:       gs.Board.Name,
		Phase:           gs.Phase,
		Current:         gs.Current,
		Turn:            gs.Turn,
		Round:           gs.Round,
		LastDice:        gs.LastDice,
		HousesLeft:      gs.HousesLeft,
		HotelsLeft:      gs.HotelsLeft,
		FreeParkingPool: gs.FreeParkingPool,
		Over:            gs.Over,
		Winner:          gs.Winner,
		Players:         make([]PlayerView, len(gs.Players)),
		Tiles:           make([]TileView, gs.Board.NumTiles()),
	}
	for i := range gs.Players {
		p := &gs.Players[i]
		view.Players[i] = PlayerView{
			ID:        p.ID,
			Position:  p.Position,
			Cash:      p.Cash,
			InJail:    p.InJail,
			JailCards: p.JailCards,
			Bankrupt:  p.Bankrupt,
			Tiles:     gs.OwnedTiles(i),
		}
	}
	for id := 0; id < gs.Board.NumTiles(); id++ {
		t := gs.Board.Tile(id)
		ps := gs.Properties[id]
		view.Tiles[id] = TileView{
			ID:        id,
			Name:      t.Name,
			Kind:      t.Kind,
			Group:     t.Group,
			Owner:     ps.Owner,
			Level:     ps.Level,
			Mortgaged: ps.Mortgaged,
		}
	}
	return view
}
