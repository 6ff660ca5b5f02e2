package crazyeights

import (
	"fmt"
	"slices"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
)

// Transitions never mutate prev. A rejected transition returns prev unchanged together with the
// reason, so callers that only care about the state may ignore the error.

// NewGame deals a fresh game.
func NewGame(id string, generation uint64) entity.Game {
	game, _ := Deal(*entity.NewGame(id, generation))
	return game
}

// Deal shuffles a full deck, gives HandSize cards to each side and turns up a non-wild discard.
func Deal(prev entity.Game) (entity.Game, error) {
	if prev.Status != entity.StatusMenu && prev.Status != entity.StatusGameOver {
		return prev, fmt.Errorf("deal: %w", apperror.ErrGameInProgress)
	}

	deck := Shuffle(CreateDeck())

	next := entity.Game{
		ID:           prev.ID,
		Generation:   prev.Generation,
		Status:       entity.StatusPlaying,
		Turn:         entity.OwnerPlayer,
		PlayerHand:   slices.Clone(deck[:HandSize]),
		OpponentHand: slices.Clone(deck[HandSize : 2*HandSize]),
	}

	// An eight is put back and the rest reshuffled until a natural card comes up.
	rest := slices.Clone(deck[2*HandSize:])
	for rest[len(rest)-1].IsWild() {
		rest = Shuffle(rest)
	}

	next.DiscardPile = []entity.Card{rest[len(rest)-1]}
	next.DrawPile = rest[:len(rest)-1]

	return next, nil
}

// PlayCard moves cardID from the owner's hand to the discard pile.
func PlayCard(prev entity.Game, owner entity.Owner, cardID string) (entity.Game, error) {
	if err := prev.ConfirmPlayingState(); err != nil {
		return prev, fmt.Errorf("play card: %w", err)
	}

	if prev.Turn != owner {
		return prev, fmt.Errorf("play card: %w", apperror.ErrNotYourTurn)
	}

	card, err := entity.ParseCardID(cardID)
	if err != nil {
		return prev, fmt.Errorf("play card: %w", err)
	}

	index := slices.Index(prev.Hand(owner), card)
	if index < 0 {
		return prev, fmt.Errorf("play card %s: %w", card, apperror.ErrCardNotInHand)
	}

	if top, ok := prev.Top(); ok && !IsValidMove(card, top, prev.ActiveSuit) {
		return prev, fmt.Errorf("play card %s on %s: %w", card, top, apperror.ErrIllegalMove)
	}

	next := prev.Clone()
	next.SetHand(owner, slices.Delete(next.Hand(owner), index, index+1))
	next.DiscardPile = append(next.DiscardPile, card)

	if card.IsWild() {
		// the turn stays with the owner until a suit is declared
		next.Status = entity.StatusChoosingSuit
	} else {
		next.ActiveSuit = entity.NoSuit
		next.Turn = owner.Other()
	}

	updateGameStatus(&next)

	return next, nil
}

// ChooseSuit declares the active suit after a wild card and passes the turn.
func ChooseSuit(prev entity.Game, owner entity.Owner, suit entity.Suit) (entity.Game, error) {
	if prev.IsFinished() {
		return prev, fmt.Errorf("choose suit: %w", apperror.ErrGameFinished)
	}

	if !prev.IsChoosingSuit() {
		return prev, fmt.Errorf("choose suit: %w", apperror.ErrSuitNotPending)
	}

	if prev.Turn != owner {
		return prev, fmt.Errorf("choose suit: %w", apperror.ErrNotYourTurn)
	}

	if !suit.IsValid() {
		return prev, fmt.Errorf("choose suit %q: %w", suit, apperror.ErrInvalidSuit)
	}

	next := prev.Clone()
	next.ActiveSuit = suit
	next.Status = entity.StatusPlaying
	next.Turn = owner.Other()

	updateGameStatus(&next)

	return next, nil
}

// DrawCard gives the owner the top of the draw pile and passes the turn. With an empty draw pile the
// turn is simply skipped.
func DrawCard(prev entity.Game, owner entity.Owner) (entity.Game, error) {
	if err := prev.ConfirmPlayingState(); err != nil {
		return prev, fmt.Errorf("draw card: %w", err)
	}

	if prev.Turn != owner {
		return prev, fmt.Errorf("draw card: %w", apperror.ErrNotYourTurn)
	}

	next := prev.Clone()
	if last := len(next.DrawPile) - 1; last >= 0 {
		next.SetHand(owner, append(next.Hand(owner), next.DrawPile[last]))
		next.DrawPile = next.DrawPile[:last]
	}
	next.Turn = owner.Other()

	updateGameStatus(&next)

	return next, nil
}

// updateGameStatus ends the game when a hand is empty or when neither side can ever move again.
// Hand checks win over the stalemate check.
func updateGameStatus(game *entity.Game) {
	if !game.IsPlaying() && !game.IsChoosingSuit() {
		return
	}

	switch {
	case len(game.PlayerHand) == 0:
		finish(game, entity.OwnerPlayer)
	case len(game.OpponentHand) == 0:
		finish(game, entity.OwnerOpponent)
	case isStalemate(game):
		finish(game, entity.NoOwner)
	}
}

func isStalemate(game *entity.Game) bool {
	if len(game.DrawPile) > 0 {
		return false
	}

	top, ok := game.Top()
	if !ok {
		return false
	}

	return !hasPlayableCard(game.PlayerHand, top, game.ActiveSuit) &&
		!hasPlayableCard(game.OpponentHand, top, game.ActiveSuit)
}

func finish(game *entity.Game, winner entity.Owner) {
	game.Status = entity.StatusGameOver
	game.Winner = winner
}
