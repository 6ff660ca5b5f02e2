package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
	"github.com/rocketscienceinc/crazyeights-backend/internal/crazyeights"
	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
)

const opponentTaskTimeout = 5 * time.Second

// Notifier receives every game changed by a scheduled opponent move.
type Notifier = func(playerID string, game *entity.Game)

type GamePlayService interface {
	NewGame(ctx context.Context, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)

	PlayCard(ctx context.Context, playerID, cardID string) (*entity.Game, error)
	DrawCard(ctx context.Context, playerID string) (*entity.Game, error)
	ChooseSuit(ctx context.Context, playerID string, suit entity.Suit) (*entity.Game, error)

	OnOpponentMove(notifier Notifier)
}

type gamePlayService struct {
	logger *slog.Logger

	playerService PlayerService
	gameService   GameService
	botService    BotService

	scheduler        *OpponentScheduler
	locks            *keyedMutex
	verifyInvariants bool

	mu        sync.RWMutex
	notifiers []Notifier
}

func NewGamePlayService(
	logger *slog.Logger,
	playerService PlayerService,
	gameService GameService,
	botService BotService,
	scheduler *OpponentScheduler,
	verifyInvariants bool,
) GamePlayService {
	return &gamePlayService{
		logger:           logger,
		playerService:    playerService,
		gameService:      gameService,
		botService:       botService,
		scheduler:        scheduler,
		locks:            newKeyedMutex(),
		verifyInvariants: verifyInvariants,
	}
}

func (that *gamePlayService) OnOpponentMove(notifier Notifier) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.notifiers = append(that.notifiers, notifier)
}

// NewGame throws away the current game of the player, if any, and deals a fresh one.
func (that *gamePlayService) NewGame(ctx context.Context, playerID string) (*entity.Game, error) {
	log := that.logger.With("method", "NewGame", "player", playerID)

	unlock := that.locks.Lock(playerID)
	defer unlock()

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.InGame() {
		that.scheduler.Cancel(playerID)

		if err = that.gameService.DeleteGame(ctx, player.GameID); err != nil && !errors.Is(err, apperror.ErrNotFound) {
			log.Warn("failed to delete previous game", "game", player.GameID, "error", err)
		}
	}

	player.Generation++

	game, err := that.gameService.CreateGame(ctx, player.Generation)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	player.GameID = game.ID
	if err = that.playerService.UpdatePlayer(ctx, player); err != nil {
		return nil, fmt.Errorf("failed to update player: %w", err)
	}

	log.Info("game dealt", "game", game.ID, "generation", game.Generation)

	return game, nil
}

// GetGame returns the current game of the player. A resumed game that waits for the computer gets
// its move scheduled again.
func (that *gamePlayService) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	unlock := that.locks.Lock(playerID)
	defer unlock()

	player, game, err := that.currentGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if game.IsOpponentTurn() && !that.scheduler.Pending(playerID) {
		that.scheduleOpponent(player.ID, game)
	}

	return game, nil
}

func (that *gamePlayService) PlayCard(ctx context.Context, playerID, cardID string) (*entity.Game, error) {
	return that.transition(ctx, playerID, func(game entity.Game) (entity.Game, error) {
		return crazyeights.PlayCard(game, entity.OwnerPlayer, cardID)
	})
}

func (that *gamePlayService) DrawCard(ctx context.Context, playerID string) (*entity.Game, error) {
	return that.transition(ctx, playerID, func(game entity.Game) (entity.Game, error) {
		return crazyeights.DrawCard(game, entity.OwnerPlayer)
	})
}

func (that *gamePlayService) ChooseSuit(ctx context.Context, playerID string, suit entity.Suit) (*entity.Game, error) {
	return that.transition(ctx, playerID, func(game entity.Game) (entity.Game, error) {
		return crazyeights.ChooseSuit(game, entity.OwnerPlayer, suit)
	})
}

func (that *gamePlayService) transition(
	ctx context.Context,
	playerID string,
	apply func(entity.Game) (entity.Game, error),
) (*entity.Game, error) {
	unlock := that.locks.Lock(playerID)
	defer unlock()

	player, game, err := that.currentGame(ctx, playerID)
	if err != nil {
		return nil, err
	}

	next, err := apply(*game)
	if err != nil {
		return nil, fmt.Errorf("failed to make turn: %w", err)
	}

	if err = that.save(ctx, &next); err != nil {
		return nil, err
	}

	if next.IsOpponentTurn() {
		that.scheduleOpponent(player.ID, &next)
	}

	return &next, nil
}

func (that *gamePlayService) currentGame(ctx context.Context, playerID string) (*entity.Player, *entity.Game, error) {
	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if !player.InGame() {
		return nil, nil, apperror.ErrNoActiveGames
	}

	game, err := that.gameService.GetGameByID(ctx, player.GameID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	return player, game, nil
}

func (that *gamePlayService) save(ctx context.Context, game *entity.Game) error {
	if that.verifyInvariants {
		if err := crazyeights.VerifyCards(*game); err != nil {
			that.logger.Error("card conservation broken", "game", game.ID, "error", err)
			return fmt.Errorf("failed to verify game: %w", err)
		}
	}

	if err := that.gameService.UpdateGame(ctx, game); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	return nil
}

func (that *gamePlayService) scheduleOpponent(playerID string, game *entity.Game) {
	gameID, generation := game.ID, game.Generation

	that.scheduler.Schedule(playerID, func() {
		that.runOpponent(playerID, gameID, generation)
	})
}

// runOpponent applies the scheduled computer move unless the game it was scheduled for is gone.
func (that *gamePlayService) runOpponent(playerID, gameID string, generation uint64) {
	log := that.logger.With("method", "runOpponent", "player", playerID, "game", gameID)

	ctx, cancel := context.WithTimeout(context.Background(), opponentTaskTimeout)
	defer cancel()

	game, err := that.applyOpponent(ctx, playerID, gameID, generation)
	if err != nil {
		log.Error("failed to apply opponent move", "error", err)
		return
	}

	if game == nil {
		log.Debug("stale opponent move discarded", "generation", generation)
		return
	}

	that.mu.RLock()
	notifiers := append([]Notifier(nil), that.notifiers...)
	that.mu.RUnlock()

	for _, notify := range notifiers {
		notify(playerID, game)
	}
}

func (that *gamePlayService) applyOpponent(ctx context.Context, playerID, gameID string, generation uint64) (*entity.Game, error) {
	unlock := that.locks.Lock(playerID)
	defer unlock()

	player, err := that.playerService.GetPlayerByID(ctx, playerID)
	if err != nil {
		return nil, fmt.Errorf("failed to get player by id: %w", err)
	}

	if player.GameID != gameID || player.Generation != generation {
		return nil, nil
	}

	game, err := that.gameService.GetGameByID(ctx, gameID)
	if err != nil {
		return nil, fmt.Errorf("failed to get game by id: %w", err)
	}

	if game.Generation != generation || !game.IsOpponentTurn() {
		return nil, nil
	}

	next, err := that.botService.MakeTurn(*game)
	if err != nil {
		return nil, err
	}

	if err = that.save(ctx, &next); err != nil {
		return nil, err
	}

	if next.IsOpponentTurn() {
		that.scheduleOpponent(playerID, &next)
	}

	return &next, nil
}
