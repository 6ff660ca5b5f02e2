package crazyeights

import (
	"math/rand/v2"
	"slices"

	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
)

const (
	DeckSize     = 52
	HandSize     = 8
	DrawPileSize = DeckSize - 2*HandSize - 1
)

// CreateDeck returns the 52 cards in suit-major, rank-minor order.
func CreateDeck() []entity.Card {
	deck := make([]entity.Card, 0, DeckSize)
	for _, suit := range entity.Suits {
		for _, rank := range entity.Ranks {
			deck = append(deck, entity.NewCard(suit, rank))
		}
	}
	return deck
}

// Shuffle returns a uniformly random permutation of cards; the input is left as it was.
func Shuffle[T any](cards []T) []T {
	shuffled := slices.Clone(cards)
	rand.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})
	return shuffled
}
