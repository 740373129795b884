package deck_test

import (
	"math/rand/v2"
	"sort"
	"testing"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/catalog"
	"github.com/DedS3t/cashflow-backend/platform/deck"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func cards(ids ...string) []models.Card {
	out := make([]models.Card, 0, len(ids))
	for _, id := range ids {
		out = append(out, models.Card{Id: id, Type: models.CardDoodad})
	}
	return out
}

func ids(cs []models.Card) []string {
	out := make([]string, 0, len(cs))
	for _, c := range cs {
		out = append(out, c.Id)
	}
	sort.Strings(out)
	return out
}

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(7, 11))
}

func TestShuffleIsPermutation(t *testing.T) {
	in := cards("a", "b", "c", "d", "e", "f")
	out := deck.Shuffle(in, testRand())

	assert.Equal(t, ids(in), ids(out))
	assert.Equal(t, []string{"a", "b", "c", "d", "e", "f"}, []string{in[0].Id, in[1].Id, in[2].Id, in[3].Id, in[4].Id, in[5].Id})
}

func TestNewUsesWholeCatalog(t *testing.T) {
	c := catalog.Default()
	p := deck.New(c, testRand())
	assert.Len(t, p.Deck, len(c.Cards()))
	assert.Empty(t, p.DiscardedCards)
}

func TestDrawMovesCardToDiscard(t *testing.T) {
	p := models.Piles{Deck: cards("a", "b")}

	next, card, ok := deck.Draw(p, testRand())
	require.True(t, ok)
	assert.Equal(t, "a", card.Id)
	assert.Equal(t, []string{"b"}, ids(next.Deck))
	assert.Equal(t, []string{"a"}, ids(next.DiscardedCards))

	assert.Len(t, p.Deck, 2, "input piles must not change")
	assert.Empty(t, p.DiscardedCards)
}

func TestDrawReshufflesWhenExhausted(t *testing.T) {
	r := testRand()
	p := models.Piles{Deck: cards("a", "b"), DiscardedCards: cards("c", "d", "e")}

	var ok bool
	for i := 0; i < 2; i++ {
		p, _, ok = deck.Draw(p, r)
		require.True(t, ok)
	}
	assert.Empty(t, p.Deck)
	assert.Len(t, p.DiscardedCards, 5)
	before := ids(p.DiscardedCards)

	rebuilt := deck.Reshuffle(p, r)
	assert.Equal(t, before, ids(rebuilt.Deck))

	p, card, ok := deck.Draw(p, r)
	require.True(t, ok)
	assert.Len(t, p.Deck, 4)
	assert.Len(t, p.DiscardedCards, 1)
	assert.Equal(t, card.Id, p.DiscardedCards[0].Id)
	assert.Equal(t, before, ids(append(append([]models.Card{}, p.Deck...), p.DiscardedCards...)))
}

func TestDrawFromEmptyPiles(t *testing.T) {
	p, _, ok := deck.Draw(models.Piles{}, testRand())
	assert.False(t, ok)
	assert.Equal(t, 0, deck.Size(p))
}

func TestDrawKeepsCardCount(t *testing.T) {
	r := testRand()
	p := deck.New(catalog.Default(), r)
	total := deck.Size(p)

	for i := 0; i < 100; i++ {
		var ok bool
		p, _, ok = deck.Draw(p, r)
		require.True(t, ok)
		require.Equal(t, total, deck.Size(p))
	}
}
