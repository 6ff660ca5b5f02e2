package entity

import (
	"errors"
	"fmt"
	"slices"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
)

type Status string

const (
	StatusMenu         Status = "menu"
	StatusWaiting      Status = "waiting"
	StatusPlaying      Status = "playing"
	StatusChoosingSuit Status = "choosing_suit"
	StatusGameOver     Status = "game_over"
)

type Owner string

const (
	OwnerPlayer   Owner = "player"
	OwnerOpponent Owner = "opponent"

	NoOwner Owner = ""
)

func (that Owner) Other() Owner {
	if that == OwnerPlayer {
		return OwnerOpponent
	}
	return OwnerPlayer
}

var ErrUnknownGameStatus = errors.New("unknown game status")

// Game is the authoritative state of one deal. Every card of the deck is in exactly one of
// DrawPile, DiscardPile, PlayerHand or OpponentHand.
type Game struct {
	ID         string `json:"id"`
	Generation uint64 `json:"generation"`
	Status     Status `json:"status"`
	Turn       Owner  `json:"turn"`
	// Winner is meaningful only when the game is over; NoOwner means a draw.
	Winner Owner `json:"winner,omitempty"`
	// ActiveSuit is the suit declared by the last wild card, NoSuit when none is active.
	ActiveSuit Suit `json:"active_suit,omitempty"`

	PlayerHand   []Card `json:"player_hand"`
	OpponentHand []Card `json:"opponent_hand"`
	DrawPile     []Card `json:"draw_pile"`
	DiscardPile  []Card `json:"discard_pile"`
}

func NewGame(id string, generation uint64) *Game {
	return &Game{
		ID:         id,
		Generation: generation,
		Status:     StatusMenu,
		Turn:       OwnerPlayer,
	}
}

// Clone returns a deep copy, so transitions never share backing arrays with their input.
func (that Game) Clone() Game {
	that.PlayerHand = slices.Clone(that.PlayerHand)
	that.OpponentHand = slices.Clone(that.OpponentHand)
	that.DrawPile = slices.Clone(that.DrawPile)
	that.DiscardPile = slices.Clone(that.DiscardPile)
	return that
}

// Top returns the discard top; ok is false while the discard pile is empty.
func (that *Game) Top() (Card, bool) {
	if len(that.DiscardPile) == 0 {
		return Card{}, false
	}
	return that.DiscardPile[len(that.DiscardPile)-1], true
}

func (that *Game) Hand(owner Owner) []Card {
	if owner == OwnerOpponent {
		return that.OpponentHand
	}
	return that.PlayerHand
}

func (that *Game) SetHand(owner Owner, hand []Card) {
	if owner == OwnerOpponent {
		that.OpponentHand = hand
		return
	}
	that.PlayerHand = hand
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusGameOver
}

func (that *Game) IsPlaying() bool {
	return that.Status == StatusPlaying
}

func (that *Game) IsChoosingSuit() bool {
	return that.Status == StatusChoosingSuit
}

func (that *Game) IsDraw() bool {
	return that.IsFinished() && that.Winner == NoOwner
}

func (that *Game) IsOpponentTurn() bool {
	return that.IsPlaying() && that.Turn == OwnerOpponent
}

// ConfirmPlayingState reports why a card can't be played or drawn right now.
func (that *Game) ConfirmPlayingState() error {
	switch that.Status {
	case StatusPlaying:
		return nil
	case StatusMenu, StatusWaiting:
		return apperror.ErrGameIsNotStarted
	case StatusGameOver:
		return apperror.ErrGameFinished
	case StatusChoosingSuit:
		return apperror.ErrSuitPending
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}
