package websocket

import (
	"encoding/json"
	"errors"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
)

const (
	actionConnect    = "connect"
	actionNewGame    = "game:new"
	actionGameState  = "game:state"
	actionPlayCard   = "game:play"
	actionDrawCard   = "game:draw"
	actionChooseSuit = "game:suit"
	actionGameUpdate = "game:update"
	actionUnknown    = "error"
)

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Payload is shared by requests and responses; each action reads only the fields it needs.
type Payload struct {
	Player *entity.Player   `json:"player,omitempty"`
	Game   *entity.GameView `json:"game,omitempty"`
	CardID string           `json:"card_id,omitempty"`
	Suit   string           `json:"suit,omitempty"`
	Error  string           `json:"error,omitempty"`
}

var errPlayerRequired = errors.New("player is required")

// clientErrors are safe to show to the player as they are.
var clientErrors = []error{
	errPlayerRequired,
	apperror.ErrInvalidPayload,
	apperror.ErrNotFound,
	apperror.ErrNoActiveGames,
	apperror.ErrGameFinished,
	apperror.ErrGameIsNotStarted,
	apperror.ErrNotYourTurn,
	apperror.ErrCardNotInHand,
	apperror.ErrIllegalMove,
	apperror.ErrSuitNotPending,
	apperror.ErrSuitPending,
	apperror.ErrInvalidSuit,
	apperror.ErrInvalidCard,
}

func errorText(err error) string {
	for _, target := range clientErrors {
		if errors.Is(err, target) {
			return target.Error()
		}
	}

	return "internal error"
}
