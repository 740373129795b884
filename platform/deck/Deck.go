package deck

import (
	"math/rand/v2"

	"github.com/DedS3t/cashflow-backend/app/models"
	"github.com/DedS3t/cashflow-backend/platform/catalog"
)

// Shuffle returns a Fisher-Yates permutation of cards. The input is left untouched.
func Shuffle(cards []models.Card, r *rand.Rand) []models.Card {
	out := make([]models.Card, len(cards))
	copy(out, cards)
	for i := len(out) - 1; i > 0; i-- {
		j := r.IntN(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}

// New builds the starting piles: every catalog card, shuffled, nothing discarded.
func New(c *catalog.Catalog, r *rand.Rand) models.Piles {
	return models.Piles{
		Deck:           Shuffle(c.Cards(), r),
		DiscardedCards: []models.Card{},
	}
}

// Draw takes the front card and puts it on the discard pile in the same step.
// An empty draw pile is first rebuilt from the shuffled discard pile. ok is
// false only when both piles are empty.
func Draw(p models.Piles, r *rand.Rand) (models.Piles, models.Card, bool) {
	if len(p.Deck) == 0 {
		p = Reshuffle(p, r)
		if len(p.Deck) == 0 {
			return p, models.Card{}, false
		}
	}
	card := p.Deck[0]

	rest := make([]models.Card, len(p.Deck)-1)
	copy(rest, p.Deck[1:])

	discard := make([]models.Card, len(p.DiscardedCards), len(p.DiscardedCards)+1)
	copy(discard, p.DiscardedCards)
	discard = append(discard, card)

	return models.Piles{Deck: rest, DiscardedCards: discard}, card, true
}

// Reshuffle moves the discard pile under the draw pile and shuffles the discards in.
func Reshuffle(p models.Piles, r *rand.Rand) models.Piles {
	cards := make([]models.Card, 0, len(p.Deck)+len(p.DiscardedCards))
	cards = append(cards, p.Deck...)
	cards = append(cards, Shuffle(p.DiscardedCards, r)...)
	return models.Piles{Deck: cards, DiscardedCards: []models.Card{}}
}

func Size(p models.Piles) int {
	return len(p.Deck) + len(p.DiscardedCards)
}
