package apperror

import "errors"

var (
	ErrGameFinished     = errors.New("game is already finished")
	ErrGameIsNotStarted = errors.New("game is not started")
	ErrNotYourTurn      = errors.New("it's not your turn")
	ErrNoActiveGames    = errors.New("no active games")
	ErrNotFound         = errors.New("not found")
	ErrGameInProgress   = errors.New("game is in progress")

	ErrCardNotInHand  = errors.New("card is not in hand")
	ErrIllegalMove    = errors.New("card can't be played on the discard top")
	ErrSuitNotPending = errors.New("no wild suit is pending")
	ErrSuitPending    = errors.New("a suit must be chosen for the wild card first")
	ErrInvalidSuit    = errors.New("invalid suit")
	ErrInvalidCard    = errors.New("invalid card")
	ErrInvalidPayload = errors.New("invalid payload")

	ErrCardConservation = errors.New("cards are duplicated or missing")
)
