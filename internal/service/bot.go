package service

import (
	"fmt"

	"github.com/rocketscienceinc/crazyeights-backend/internal/crazyeights"
	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
)

type BotService interface {
	MakeTurn(game entity.Game) (entity.Game, error)
}

type botService struct{}

func NewBotService() BotService {
	return &botService{}
}

// MakeTurn plays the computer's move: a random matching card, an eight as last resort, or a draw.
func (that *botService) MakeTurn(game entity.Game) (entity.Game, error) {
	next, err := crazyeights.OpponentTurn(game)
	if err != nil {
		return game, fmt.Errorf("bot failed to make turn: %w", err)
	}

	return next, nil
}
