package usecase

import (
	"context"
	"fmt"

	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
)

type GameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	NewGame(ctx context.Context, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)

	PlayCard(ctx context.Context, playerID, cardID string) (*entity.Game, error)
	DrawCard(ctx context.Context, playerID string) (*entity.Game, error)
	ChooseSuit(ctx context.Context, playerID, suit string) (*entity.Game, error)

	OnOpponentMove(notifier func(playerID string, game *entity.Game))
}

type playerService interface {
	CreatePlayer(ctx context.Context) (*entity.Player, error)
	GetPlayerByID(ctx context.Context, id string) (*entity.Player, error)
}

type gamePlayService interface {
	NewGame(ctx context.Context, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)

	PlayCard(ctx context.Context, playerID, cardID string) (*entity.Game, error)
	DrawCard(ctx context.Context, playerID string) (*entity.Game, error)
	ChooseSuit(ctx context.Context, playerID string, suit entity.Suit) (*entity.Game, error)

	OnOpponentMove(notifier func(playerID string, game *entity.Game))
}

type gameUseCase struct {
	playerService   playerService
	gamePlayService gamePlayService
}

func NewGameUseCase(playerService playerService, gamePlayService gamePlayService) GameUseCase {
	return &gameUseCase{
		playerService:   playerService,
		gamePlayService: gamePlayService,
	}
}

// GetOrCreatePlayer resumes the session of playerID, or opens a new one when it is empty.
func (that *gameUseCase) GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error) {
	if playerID == "" {
		player, err := that.playerService.CreatePlayer(ctx)
		if err != nil {
			return nil, fmt.Errorf("could not create player: %w", err)
		}

		return player, nil
	}

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	return player, nil
}

func (that *gameUseCase) NewGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.NewGame(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to start new game: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.GetGame(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game state: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) PlayCard(ctx context.Context, playerID, cardID string) (*entity.Game, error) {
	game, err := that.gamePlayService.PlayCard(ctx, playerID, cardID)
	if err != nil {
		return nil, fmt.Errorf("failed to play card: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) DrawCard(ctx context.Context, playerID string) (*entity.Game, error) {
	game, err := that.gamePlayService.DrawCard(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to draw card: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) ChooseSuit(ctx context.Context, playerID, suit string) (*entity.Game, error) {
	parsed, err := entity.ParseSuit(suit)
	if err != nil {
		return nil, err
	}

	game, err := that.gamePlayService.ChooseSuit(ctx, playerID, parsed)
	if err != nil {
		return nil, fmt.Errorf("failed to choose suit: %w", err)
	}

	return game, nil
}

func (that *gameUseCase) OnOpponentMove(notifier func(playerID string, game *entity.Game)) {
	that.gamePlayService.OnOpponentMove(notifier)
}
