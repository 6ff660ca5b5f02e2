package usecase

import (
	"context"

	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockPlayerService struct {
	mock.Mock
}

func (that *mockPlayerService) CreatePlayer(ctx context.Context) (*entity.Player, error) {
	args := that.Called(ctx)
	return args.Get(0).(*entity.Player), args.Error(1)
}

func (that *mockPlayerService) GetPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	args := that.Called(ctx, id)
	return args.Get(0).(*entity.Player), args.Error(1)
}

type mockGamePlayService struct {
	mock.Mock
}

func (that *mockGamePlayService) NewGame(ctx context.Context, playerID string) (*entity.Game, error) {
	args := that.Called(ctx, playerID)
	return args.Get(0).(*entity.Game), args.Error(1)
}

func (that *mockGamePlayService) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	args := that.Called(ctx, playerID)
	return args.Get(0).(*entity.Game), args.Error(1)
}

func (that *mockGamePlayService) PlayCard(ctx context.Context, playerID, cardID string) (*entity.Game, error) {
	args := that.Called(ctx, playerID, cardID)
	return args.Get(0).(*entity.Game), args.Error(1)
}

func (that *mockGamePlayService) DrawCard(ctx context.Context, playerID string) (*entity.Game, error) {
	args := that.Called(ctx, playerID)
	return args.Get(0).(*entity.Game), args.Error(1)
}

func (that *mockGamePlayService) ChooseSuit(ctx context.Context, playerID string, suit entity.Suit) (*entity.Game, error) {
	args := that.Called(ctx, playerID, suit)
	return args.Get(0).(*entity.Game), args.Error(1)
}

func (that *mockGamePlayService) OnOpponentMove(notifier func(playerID string, game *entity.Game)) {
	that.Called(notifier)
}
