package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/crazyeights-backend/internal/config"
	"github.com/rocketscienceinc/crazyeights-backend/internal/repository"
	"github.com/rocketscienceinc/crazyeights-backend/internal/repository/storage"
	"github.com/rocketscienceinc/crazyeights-backend/internal/service"
	"github.com/rocketscienceinc/crazyeights-backend/internal/usecase"
	"github.com/rocketscienceinc/crazyeights-backend/transport/rest"
	"github.com/rocketscienceinc/crazyeights-backend/transport/websocket"
)

var ErrAddrNotFound = errors.New("redis address string is empty")

// RunApp - runs the application.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		sig := <-sigs
		log.Info("Received signal, shutting down", "signal", sig)
		cancel()
	}()

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString, conf.Redis.Password, conf.Redis.DB)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage, conf.Game.SessionTTL)
	gameRepo := repository.NewGameRepository(redisStorage, conf.Game.SessionTTL)

	scheduler := service.NewOpponentScheduler(conf.Game.OpponentDelay)
	defer scheduler.Stop()

	playerService := service.NewPlayerService(playerRepo)
	gamePlayService := service.NewGamePlayService(
		logger,
		playerService,
		service.NewGameService(gameRepo),
		service.NewBotService(),
		scheduler,
		conf.Game.VerifyInvariants,
	)
	gameUseCase := usecase.NewGameUseCase(playerService, gamePlayService)

	wsServer := websocket.New(logger, gameUseCase)
	gameUseCase.OnOpponentMove(wsServer.Notify)

	// run HTTP server
	httpErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		httpServer := rest.NewServer(logger, rest.NewHandlers(logger, gameUseCase))
		if httpErr := httpServer.Start(ctx, conf.HTTPPort); httpErr != nil {
			log.Error("HTTP server error", "error", httpErr)
			httpErrCh <- httpErr
		}
	}()

	// run Websocket server
	wsErrCh := make(chan error, 1)
	go func() {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := wsServer.Start(ctx, conf.SocketPort); wsErr != nil {
			log.Error("WebSocket server error", "error", wsErr)
			wsErrCh <- wsErr
		}
	}()

	select {
	case err = <-httpErrCh:
		return fmt.Errorf("HTTP server error: %w", err)
	case err = <-wsErrCh:
		return fmt.Errorf("WebSocket server error: %w", err)
	case <-ctx.Done():
		log.Info("Application context canceled, shutting down")
		return nil
	}
}
