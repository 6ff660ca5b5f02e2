package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
)

func (that *Server) handleConnect(ctx context.Context, msg *Message, current *client) error {
	log := that.logger.With("method", "handleConnect")

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.replyError(current, msg.Action, err)
	}

	var playerID string
	if payloadReq.Player != nil {
		playerID = payloadReq.Player.ID
	}

	player, err := that.gameUseCase.GetOrCreatePlayer(ctx, playerID)
	if err != nil {
		log.Error("failed to create or get player", "error", err)
		return that.replyError(current, msg.Action, err)
	}

	that.register(player.ID, current)

	payloadResp := Payload{Player: player}
	if player.InGame() {
		game, err := that.gameUseCase.GetGame(ctx, player.ID)
		switch {
		case err == nil:
			payloadResp.Game = game.View()
		case errors.Is(err, apperror.ErrNotFound):
			log.Info("game of the session expired", "game", player.GameID)
		default:
			log.Error("failed to get game", "game", player.GameID, "error", err)
		}
	}

	if err = that.sendMessage(current, msg.Action, payloadResp); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	log.Info("successfully connected player", "player", player.ID)

	return nil
}

func (that *Server) handleNewGame(ctx context.Context, msg *Message, current *client) error {
	return that.handleGameAction(msg, current, func(_ Payload, playerID string) (*entity.Game, error) {
		return that.gameUseCase.NewGame(ctx, playerID)
	})
}

func (that *Server) handleGameState(ctx context.Context, msg *Message, current *client) error {
	return that.handleGameAction(msg, current, func(_ Payload, playerID string) (*entity.Game, error) {
		return that.gameUseCase.GetGame(ctx, playerID)
	})
}

func (that *Server) handlePlayCard(ctx context.Context, msg *Message, current *client) error {
	return that.handleGameAction(msg, current, func(payload Payload, playerID string) (*entity.Game, error) {
		return that.gameUseCase.PlayCard(ctx, playerID, payload.CardID)
	})
}

func (that *Server) handleDrawCard(ctx context.Context, msg *Message, current *client) error {
	return that.handleGameAction(msg, current, func(_ Payload, playerID string) (*entity.Game, error) {
		return that.gameUseCase.DrawCard(ctx, playerID)
	})
}

func (that *Server) handleChooseSuit(ctx context.Context, msg *Message, current *client) error {
	return that.handleGameAction(msg, current, func(payload Payload, playerID string) (*entity.Game, error) {
		return that.gameUseCase.ChooseSuit(ctx, playerID, payload.Suit)
	})
}

// handleGameAction decodes the request, runs action for the requesting player and answers with the
// resulting game view.
func (that *Server) handleGameAction(
	msg *Message,
	current *client,
	action func(payload Payload, playerID string) (*entity.Game, error),
) error {
	log := that.logger.With("method", "handleGameAction", "action", msg.Action)

	payloadReq, err := decodePayload(msg)
	if err != nil {
		return that.replyError(current, msg.Action, err)
	}

	if payloadReq.Player == nil || payloadReq.Player.ID == "" {
		return that.replyError(current, msg.Action, errPlayerRequired)
	}

	that.register(payloadReq.Player.ID, current)

	game, err := action(payloadReq, payloadReq.Player.ID)
	if err != nil {
		log.Debug("action rejected", "player", payloadReq.Player.ID, "error", err)
		return that.replyError(current, msg.Action, err)
	}

	if err = that.sendMessage(current, msg.Action, Payload{Game: game.View()}); err != nil {
		return fmt.Errorf("failed to send response: %w", err)
	}

	return nil
}

func (that *Server) replyError(current *client, action string, err error) error {
	if sendErr := that.sendErrorResponse(current, action, errorText(err)); sendErr != nil {
		return fmt.Errorf("failed to send error response: %w", sendErr)
	}

	return nil
}

func decodePayload(msg *Message) (Payload, error) {
	var payload Payload
	if len(msg.Payload) == 0 {
		return payload, nil
	}

	if err := json.Unmarshal(msg.Payload, &payload); err != nil {
		return payload, fmt.Errorf("%w: %w", apperror.ErrInvalidPayload, err)
	}

	return payload, nil
}
