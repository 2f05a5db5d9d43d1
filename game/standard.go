package game

// Classic US board and card data.

func prop(id int, name, group string, price int, rent [6]int, houseCost, mortgage int) Tile {
	return Tile{
		ID: id, Name: name, Kind: PropertyTile, Group: group,
		Price: price, Rent: rent[:], HouseCost: houseCost, Mortgage: mortgage,
	}
}

func railroad(id int, name string) Tile {
	return Tile{ID: id, Name: name, Kind: RailroadTile, Group: "railroad",
		Price: 200, BaseRent: DefaultRailroadRent, Mortgage: 100}
}

func utility(id int, name string) Tile {
	return Tile{ID: id, Name: name, Kind: UtilityTile, Group: "utility", Price: 150, Mortgage: 75}
}

// StandardBoard builds the classic 40-tile board.
func StandardBoard() *Board {
	tiles := []Tile{
		{ID: 0, Name: "GO", Kind: StartTile},
		prop(1, "Mediterranean Avenue", "brown", 60, [6]int{2, 10, 30, 90, 160, 250}, 50, 30),
		{ID: 2, Name: "Community Chest", Kind: CommunityChestTile},
		prop(3, "Baltic Avenue", "brown", 60, [6]int{4, 20, 60, 180, 320, 450}, 50, 30),
		{ID: 4, Name: "Income Tax", Kind: TaxTile, Tax: 200},
		railroad(5, "Reading Railroad"),
		prop(6, "Oriental Avenue", "light_blue", 100, [6]int{6, 30, 90, 270, 400, 550}, 50, 50),
		{ID: 7, Name: "Chance", Kind: ChanceTile},
		prop(8, "Vermont Avenue", "light_blue", 100, [6]int{6, 30, 90, 270, 400, 550}, 50, 50),
		prop(9, "Connecticut Avenue", "light_blue", 120, [6]int{8, 40, 100, 300, 450, 600}, 50, 60),
		{ID: 10, Name: "Jail", Kind: JailTile},
		prop(11, "St. Charles Place", "pink", 140, [6]int{10, 50, 150, 450, 625, 750}, 100, 70),
		utility(12, "Electric Company"),
		prop(13, "States Avenue", "pink", 140, [6]int{10, 50, 150, 450, 625, 750}, 100, 70),
		prop(14, "Virginia Avenue", "pink", 160, [6]int{12, 60, 180, 500, 700, 900}, 100, 80),
		railroad(15, "Pennsylvania Railroad"),
		prop(16, "St. James Place", "orange", 180, [6]int{14, 70, 200, 550, 750, 950}, 100, 90),
		{ID: 17, Name: "Community Chest", Kind: CommunityChestTile},
		prop(18, "Tennessee Avenue", "orange", 180, [6]int{14, 70, 200, 550, 750, 950}, 100, 90),
		prop(19, "New York Avenue", "orange", 200, [6]int{16, 80, 220, 600, 800, 1000}, 100, 100),
		{ID: 20, Name: "Free Parking", Kind: FreeParkingTile},
		prop(21, "Kentucky Avenue", "red", 220, [6]int{18, 90, 250, 700, 875, 1050}, 150, 110),
		{ID: 22, Name: "Chance", Kind: ChanceTile},
		prop(23, "Indiana Avenue", "red", 220, [6]int{18, 90, 250, 700, 875, 1050}, 150, 110),
		prop(24, "Illinois Avenue", "red", 240, [6]int{20, 100, 300, 750, 925, 1100}, 150, 120),
		railroad(25, "B&O Railroad"),
		prop(26, "Atlantic Avenue", "yellow", 260, [6]int{22, 110, 330, 800, 975, 1150}, 150, 130),
		prop(27, "Ventnor Avenue", "yellow", 260, [6]int{22, 110, 330, 800, 975, 1150}, 150, 130),
		utility(28, "Water Works"),
		prop(29, "Marvin Gardens", "yellow", 280, [6]int{24, 120, 360, 850, 1025, 1200}, 150, 140),
		{ID: 30, Name: "Go To Jail", Kind: GoToJailTile},
		prop(31, "Pacific Avenue", "green", 300, [6]int{26, 130, 390, 900, 1100, 1275}, 200, 150),
		prop(32, "North Carolina Avenue", "green", 300, [6]int{26, 130, 390, 900, 1100, 1275}, 200, 150),
		{ID: 33, Name: "Community Chest", Kind: CommunityChestTile},
		prop(34, "Pennsylvania Avenue", "green", 320, [6]int{28, 150, 450, 1000, 1200, 1400}, 200, 160),
		railroad(35, "Short Line"),
		{ID: 36, Name: "Chance", Kind: ChanceTile},
		prop(37, "Park Place", "dark_blue", 350, [6]int{35, 175, 500, 1100, 1300, 1500}, 200, 175),
		{ID: 38, Name: "Luxury Tax", Kind: TaxTile, Tax: 100},
		prop(39, "Boardwalk", "dark_blue", 400, [6]int{50, 200, 600, 1400, 1700, 2000}, 200, 200),
	}

	groups := map[string][]int{
		"brown":      {1, 3},
		"light_blue": {6, 8, 9},
		"pink":       {11, 13, 14},
		"orange":     {16, 18, 19},
		"red":        {21, 23, 24},
		"yellow":     {26, 27, 29},
		"green":      {31, 32, 34},
		"dark_blue":  {37, 39},
		"railroad":   {5, 15, 25, 35},
		"utility":    {12, 28},
	}

	b, err := newBoard("Classic", "$", 200, tiles, groups)
	if err != nil {
		panic("standard board failed validation: " + err.Error())
	}
	return b
}

// ChanceCards returns the classic 16-card Chance deck.
func ChanceCards() []CardEffect {
	return []CardEffect{
		{Kind: CardMoveTo, Text: "Advance to Go (Collect $200)", TargetTile: 0, CollectGo: true},
		{Kind: CardMoveTo, Text: "Advance to Illinois Ave.", TargetTile: 24},
		{Kind: CardMoveTo, Text: "Advance to St. Charles Place", TargetTile: 11},
		{Kind: CardAdvanceToNearest, Text: "Advance token to nearest Utility", Nearest: UtilityTile},
		{Kind: CardAdvanceToNearest, Text: "Advance token to nearest Railroad", Nearest: RailroadTile},
		{Kind: CardAdvanceToNearest, Text: "Advance token to nearest Railroad", Nearest: RailroadTile},
		{Kind: CardCollect, Text: "Bank pays you dividend of $50", Amount: 50},
		{Kind: CardGetOutOfJail, Text: "Get Out of Jail Free"},
		{Kind: CardMoveBack, Text: "Go Back 3 Spaces", Spaces: 3},
		{Kind: CardGoToJail, Text: "Go to Jail"},
		{Kind: CardRepairs, Text: "Make general repairs on all your property", HouseCost: 25, HotelCost: 100},
		{Kind: CardPay, Text: "Pay poor tax of $15", Amount: 15},
		{Kind: CardMoveTo, Text: "Take a trip to Reading Railroad", TargetTile: 5},
		{Kind: CardMoveTo, Text: "Take a walk on the Boardwalk", TargetTile: 39},
		{Kind: CardPayEach, Text: "You have been elected Chairman of the Board. Pay each player $50", PerPlayer: 50},
		{Kind: CardCollect, Text: "Your building loan matures. Collect $150", Amount: 150},
	}
}

// CommunityChestCards returns the classic 16-card Community Chest deck.
func CommunityChestCards() []CardEffect {
	return []CardEffect{
		{Kind: CardMoveTo, Text: "Advance to Go (Collect $200)", TargetTile: 0, CollectGo: true},
		{Kind: CardCollect, Text: "Bank error in your favor. Collect $200", Amount: 200},
		{Kind: CardPay, Text: "Doctor's fees. Pay $50", Amount: 50},
		{Kind: CardCollect, Text: "From sale of stock you get $50", Amount: 50},
		{Kind: CardGetOutOfJail, Text: "Get Out of Jail Free"},
		{Kind: CardGoToJail, Text: "Go to Jail"},
		{Kind: CardCollectFromEach, Text: "Grand Opera Night. Collect $50 from every player", PerPlayer: 50},
		{Kind: CardCollect, Text: "Holiday Fund matures. Receive $100", Amount: 100},
		{Kind: CardCollect, Text: "Income tax refund. Collect $20", Amount: 20},
		{Kind: CardCollectFromEach, Text: "It is your birthday. Collect $10 from every player", PerPlayer: 10},
		{Kind: CardCollect, Text: "Life insurance matures. Collect $100", Amount: 100},
		{Kind: CardPay, Text: "Hospital fees. Pay $100", Amount: 100},
		{Kind: CardPay, Text: "School fees. Pay $150", Amount: 150},
		{Kind: CardCollect, Text: "Receive $25 consultancy fee", Amount: 25},
		{Kind: CardRepairs, Text: "You are assessed for street repairs", HouseCost: 40, HotelCost: 115},
		{Kind: CardCollect, Text: "You have won second prize in a beauty contest. Collect $10", Amount: 10},
	}
}
