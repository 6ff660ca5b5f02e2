package crazyeights

import (
	"fmt"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
)

// VerifyCards checks that the draw pile, the discard pile and both hands hold every card of the deck
// exactly once.
func VerifyCards(game entity.Game) error {
	seen := make(map[entity.Card]string, DeckSize)

	collections := []struct {
		name  string
		cards []entity.Card
	}{
		{name: "draw pile", cards: game.DrawPile},
		{name: "discard pile", cards: game.DiscardPile},
		{name: "player hand", cards: game.PlayerHand},
		{name: "opponent hand", cards: game.OpponentHand},
	}

	for _, collection := range collections {
		for _, card := range collection.cards {
			if where, ok := seen[card]; ok {
				return fmt.Errorf("%w: %s in %s and %s", apperror.ErrCardConservation, card, where, collection.name)
			}
			seen[card] = collection.name
		}
	}

	for _, card := range CreateDeck() {
		if _, ok := seen[card]; !ok {
			return fmt.Errorf("%w: %s is missing", apperror.ErrCardConservation, card)
		}
	}

	if len(seen) != DeckSize {
		return fmt.Errorf("%w: %d cards instead of %d", apperror.ErrCardConservation, len(seen), DeckSize)
	}

	return nil
}
