package rest

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
)

type Handlers interface {
	Ping(c *gin.Context)

	CreatePlayer(c *gin.Context)

	NewGame(c *gin.Context)
	GetGame(c *gin.Context)
	PlayCard(c *gin.Context)
	DrawCard(c *gin.Context)
	ChooseSuit(c *gin.Context)
}

type gameUseCase interface {
	GetOrCreatePlayer(ctx context.Context, playerID string) (*entity.Player, error)

	NewGame(ctx context.Context, playerID string) (*entity.Game, error)
	GetGame(ctx context.Context, playerID string) (*entity.Game, error)

	PlayCard(ctx context.Context, playerID, cardID string) (*entity.Game, error)
	DrawCard(ctx context.Context, playerID string) (*entity.Game, error)
	ChooseSuit(ctx context.Context, playerID, suit string) (*entity.Game, error)
}

type playCardRequest struct {
	CardID string `json:"card_id" binding:"required"`
}

type chooseSuitRequest struct {
	Suit string `json:"suit" binding:"required"`
}

type handlers struct {
	logger      *slog.Logger
	gameUseCase gameUseCase
}

func NewHandlers(logger *slog.Logger, gameUseCase gameUseCase) Handlers {
	return &handlers{
		logger:      logger,
		gameUseCase: gameUseCase,
	}
}

func (that *handlers) Ping(c *gin.Context) {
	c.String(http.StatusOK, "pong")
}

func (that *handlers) CreatePlayer(c *gin.Context) {
	player, err := that.gameUseCase.GetOrCreatePlayer(c.Request.Context(), "")
	if err != nil {
		that.abort(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"player": player})
}

func (that *handlers) NewGame(c *gin.Context) {
	game, err := that.gameUseCase.NewGame(c.Request.Context(), c.Param("id"))
	that.respond(c, http.StatusCreated, game, err)
}

func (that *handlers) GetGame(c *gin.Context) {
	game, err := that.gameUseCase.GetGame(c.Request.Context(), c.Param("id"))
	that.respond(c, http.StatusOK, game, err)
}

func (that *handlers) PlayCard(c *gin.Context) {
	var req playCardRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		that.abort(c, errors.Join(apperror.ErrInvalidPayload, err))
		return
	}

	game, err := that.gameUseCase.PlayCard(c.Request.Context(), c.Param("id"), req.CardID)
	that.respond(c, http.StatusOK, game, err)
}

func (that *handlers) DrawCard(c *gin.Context) {
	game, err := that.gameUseCase.DrawCard(c.Request.Context(), c.Param("id"))
	that.respond(c, http.StatusOK, game, err)
}

func (that *handlers) ChooseSuit(c *gin.Context) {
	var req chooseSuitRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		that.abort(c, errors.Join(apperror.ErrInvalidPayload, err))
		return
	}

	game, err := that.gameUseCase.ChooseSuit(c.Request.Context(), c.Param("id"), req.Suit)
	that.respond(c, http.StatusOK, game, err)
}

func (that *handlers) respond(c *gin.Context, status int, game *entity.Game, err error) {
	if err != nil {
		that.abort(c, err)
		return
	}

	c.JSON(status, gin.H{"game": game.View()})
}

func (that *handlers) abort(c *gin.Context, err error) {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		that.logger.Error("request failed", "path", c.FullPath(), "error", err)
		c.AbortWithStatusJSON(status, gin.H{"error": "internal error"})
		return
	}

	c.AbortWithStatusJSON(status, gin.H{"error": err.Error()})
}
