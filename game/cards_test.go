package game

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func drawTexts(d *CardDeck, n int) []string {
	out := make([]string, n)
	for i := 0; i < n; i++ {
		out[i] = d.Draw().Text
	}
	return out
}

func TestDeckDrawsWholeSetBeforeReshuffle(t *testing.T) {
	deck := NewDeck(ChanceCards(), 7)

	seen := map[string]int{}
	for i := 0; i < deck.Size(); i++ {
		seen[deck.Draw().Text]++
	}

	want := map[string]int{}
	for _, c := range ChanceCards() {
		want[c.Text]++
	}
	require.Equal(t, want, seen, "one full pass should draw every card exactly once")
	require.Equal(t, 0, deck.Remaining(), "queue should be empty after a full pass")
}

func TestDeckReshuffleIsReproducibleButReordered(t *testing.T) {
	deck := NewDeck(ChanceCards(), 7)
	firstPass := drawTexts(&deck, deck.Size())

	// Draw 17 of 16: the extra draw comes from a fresh reshuffle.
	card17 := deck.Draw()
	secondPass := append([]string{card17.Text}, drawTexts(&deck, deck.Size()-1)...)

	require.NotEqual(t, firstPass, secondPass,
		"reshuffled order should differ from the first pass")

	// Same seed, same full 32-draw sequence.
	replay := NewDeck(ChanceCards(), 7)
	require.Equal(t, append(append([]string{}, firstPass...), secondPass...),
		drawTexts(&replay, 2*replay.Size()),
		"identical seeds should reproduce the identical draw sequence across reshuffles")
}

func TestDeckSeedsDiverge(t *testing.T) {
	a := NewDeck(ChanceCards(), 7)
	b := NewDeck(ChanceCards(), 8)
	require.NotEqual(t, drawTexts(&a, a.Size()), drawTexts(&b, b.Size()),
		"different seeds should shuffle differently")
}

func TestDeckCopyIsIndependent(t *testing.T) {
	deck := NewDeck(CommunityChestCards(), 3)
	deck.Draw()

	clone := deck.Copy()
	before := deck.Remaining()
	fromClone := drawTexts(&clone, 5)

	require.Equal(t, before, deck.Remaining(),
		"drawing from the copy must not advance the original")
	require.Equal(t, fromClone, drawTexts(&deck, 5),
		"a copy should continue the same deterministic sequence")
}

func TestDeckZeroSeed(t *testing.T) {
	deck := NewDeck(ChanceCards(), 0)
	require.NotPanics(t, func() { deck.Draw() }, "zero seed should be usable")
}

func TestDrawFromEmptyCardSetPanics(t *testing.T) {
	deck := NewDeck(nil, 7)
	require.Panics(t, func() { deck.Draw() })
}
