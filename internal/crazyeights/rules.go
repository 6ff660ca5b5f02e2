package crazyeights

import "github.com/rocketscienceinc/crazyeights-backend/internal/entity"

// IsValidMove reports whether card may be played on top. A non-empty activeSuit replaces the suit of
// top for matching; ranks are always matched against top itself. Eights are always playable.
func IsValidMove(card, top entity.Card, activeSuit entity.Suit) bool {
	if card.IsWild() {
		return true
	}

	targetSuit := top.Suit
	if activeSuit != entity.NoSuit {
		targetSuit = activeSuit
	}

	return card.Suit == targetSuit || card.Rank == top.Rank
}

// PlayableCards filters hand down to the cards IsValidMove accepts, keeping hand order.
func PlayableCards(hand []entity.Card, top entity.Card, activeSuit entity.Suit) []entity.Card {
	var playable []entity.Card
	for _, card := range hand {
		if IsValidMove(card, top, activeSuit) {
			playable = append(playable, card)
		}
	}
	return playable
}

func hasPlayableCard(hand []entity.Card, top entity.Card, activeSuit entity.Suit) bool {
	for _, card := range hand {
		if IsValidMove(card, top, activeSuit) {
			return true
		}
	}
	return false
}
