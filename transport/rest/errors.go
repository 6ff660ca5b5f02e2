package rest

import (
	"errors"
	"net/http"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
)

var statusByError = []struct {
	err    error
	status int
}{
	{apperror.ErrNotFound, http.StatusNotFound},
	{apperror.ErrNoActiveGames, http.StatusNotFound},

	{apperror.ErrInvalidPayload, http.StatusBadRequest},
	{apperror.ErrInvalidCard, http.StatusBadRequest},
	{apperror.ErrInvalidSuit, http.StatusBadRequest},

	{apperror.ErrGameFinished, http.StatusConflict},
	{apperror.ErrGameIsNotStarted, http.StatusConflict},
	{apperror.ErrGameInProgress, http.StatusConflict},
	{apperror.ErrNotYourTurn, http.StatusConflict},
	{apperror.ErrCardNotInHand, http.StatusConflict},
	{apperror.ErrIllegalMove, http.StatusConflict},
	{apperror.ErrSuitNotPending, http.StatusConflict},
	{apperror.ErrSuitPending, http.StatusConflict},
}

func statusFor(err error) int {
	for _, candidate := range statusByError {
		if errors.Is(err, candidate.err) {
			return candidate.status
		}
	}

	return http.StatusInternalServerError
}
