package crazyeights

import (
	"testing"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyCards(t *testing.T) {
	t.Run("Accepts a dealt game", func(t *testing.T) {
		require.NoError(t, VerifyCards(NewGame("123", 1)))
	})

	t.Run("Detects a duplicated card", func(t *testing.T) {
		// Given: the discard top was copied into the player's hand
		game := NewGame("123", 1)
		top, _ := game.Top()
		game.PlayerHand = append(game.PlayerHand, top)

		// Then: the game is rejected
		err := VerifyCards(game)
		require.ErrorIs(t, err, apperror.ErrCardConservation)
		assert.Contains(t, err.Error(), top.ID())
	})

	t.Run("Detects a missing card", func(t *testing.T) {
		// Given: a card vanished from the draw pile
		game := NewGame("123", 1)
		game.DrawPile = game.DrawPile[1:]

		// Then: the game is rejected
		assert.ErrorIs(t, VerifyCards(game), apperror.ErrCardConservation)
	})

	t.Run("Detects a foreign card", func(t *testing.T) {
		// Given: a card that is not part of any deck replaced a real one
		game := NewGame("123", 1)
		game.OpponentHand[0] = entity.Card{Suit: "stars", Rank: entity.Ace}

		// Then: the game is rejected
		assert.ErrorIs(t, VerifyCards(game), apperror.ErrCardConservation)
	})
}
