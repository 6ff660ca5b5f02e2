package crazyeights

import (
	"fmt"
	"math/rand/v2"
	"slices"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
)

// Move is a decision of the computer opponent: either draw, or play Card and, for a wild card,
// declare Suit.
type Move struct {
	Draw bool
	Card entity.Card
	Suit entity.Suit
}

// ChooseOpponentMove picks a random natural card among the playable ones, falling back to the first
// playable eight. When nothing is playable the opponent draws.
func ChooseOpponentMove(game entity.Game) Move {
	top, ok := game.Top()
	if !ok {
		return Move{Draw: true}
	}

	var natural, wild []entity.Card
	for _, card := range PlayableCards(game.OpponentHand, top, game.ActiveSuit) {
		if card.IsWild() {
			wild = append(wild, card)
			continue
		}
		natural = append(natural, card)
	}

	switch {
	case len(natural) > 0:
		return Move{Card: natural[rand.IntN(len(natural))]} //nolint: gosec // game randomness
	case len(wild) > 0:
		card := wild[0]
		remaining := slices.DeleteFunc(slices.Clone(game.OpponentHand), func(c entity.Card) bool {
			return c == card
		})
		return Move{Card: card, Suit: MostFrequentSuit(remaining)}
	default:
		return Move{Draw: true}
	}
}

// MostFrequentSuit counts suits in hand. Ties go to the earlier suit in entity.Suits, an empty hand
// yields hearts.
func MostFrequentSuit(hand []entity.Card) entity.Suit {
	counts := make(map[entity.Suit]int, len(entity.Suits))
	for _, card := range hand {
		counts[card.Suit]++
	}

	best, bestCount := entity.Hearts, 0
	for _, suit := range entity.Suits {
		if counts[suit] > bestCount {
			best, bestCount = suit, counts[suit]
		}
	}

	return best
}

// OpponentTurn lets the computer play one full move. A wild card and its suit are applied as one
// step, the opponent never leaves the game in choosing_suit.
func OpponentTurn(prev entity.Game) (entity.Game, error) {
	if err := prev.ConfirmPlayingState(); err != nil {
		return prev, fmt.Errorf("opponent turn: %w", err)
	}

	if prev.Turn != entity.OwnerOpponent {
		return prev, fmt.Errorf("opponent turn: %w", apperror.ErrNotYourTurn)
	}

	move := ChooseOpponentMove(prev)
	if move.Draw {
		return DrawCard(prev, entity.OwnerOpponent)
	}

	return applyOpponentMove(prev, move), nil
}

func applyOpponentMove(prev entity.Game, move Move) entity.Game {
	next := prev.Clone()

	index := slices.Index(next.OpponentHand, move.Card)
	next.OpponentHand = slices.Delete(next.OpponentHand, index, index+1)
	next.DiscardPile = append(next.DiscardPile, move.Card)

	next.ActiveSuit = entity.NoSuit
	if move.Card.IsWild() {
		next.ActiveSuit = move.Suit
	}
	next.Turn = entity.OwnerPlayer

	updateGameStatus(&next)

	return next
}
