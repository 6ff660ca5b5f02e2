package websocket

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/crazyeights-backend/internal/apperror"
	"github.com/rocketscienceinc/crazyeights-backend/internal/entity"
)

type fakeUseCase struct {
	player *entity.Player
	game   *entity.Game
	err    error

	mu         sync.Mutex
	playedCard string
	chosenSuit string
}

func (that *fakeUseCase) calls() (string, string) {
	that.mu.Lock()
	defer that.mu.Unlock()
	return that.playedCard, that.chosenSuit
}

func (that *fakeUseCase) GetOrCreatePlayer(_ context.Context, playerID string) (*entity.Player, error) {
	if playerID != "" && playerID != that.player.ID {
		return nil, apperror.ErrNotFound
	}
	return that.player, nil
}

func (that *fakeUseCase) NewGame(context.Context, string) (*entity.Game, error) {
	return that.game, that.err
}

func (that *fakeUseCase) GetGame(context.Context, string) (*entity.Game, error) {
	return that.game, that.err
}

func (that *fakeUseCase) PlayCard(_ context.Context, _, cardID string) (*entity.Game, error) {
	that.mu.Lock()
	that.playedCard = cardID
	that.mu.Unlock()
	return that.game, that.err
}

func (that *fakeUseCase) DrawCard(context.Context, string) (*entity.Game, error) {
	return that.game, that.err
}

func (that *fakeUseCase) ChooseSuit(_ context.Context, _, suit string) (*entity.Game, error) {
	that.mu.Lock()
	that.chosenSuit = suit
	that.mu.Unlock()
	return that.game, that.err
}

func testGame() *entity.Game {
	return &entity.Game{
		ID:           "game",
		Status:       entity.StatusPlaying,
		Turn:         entity.OwnerPlayer,
		PlayerHand:   []entity.Card{entity.NewCard(entity.Hearts, entity.King)},
		OpponentHand: []entity.Card{entity.NewCard(entity.Spades, entity.Two), entity.NewCard(entity.Spades, entity.Three)},
		DrawPile:     []entity.Card{entity.NewCard(entity.Clubs, entity.Four)},
		DiscardPile:  []entity.Card{entity.NewCard(entity.Hearts, entity.Five)},
	}
}

func startServer(t *testing.T, useCase *fakeUseCase) (*Server, *websocket.Conn) {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	server := New(slog.New(slog.NewTextHandler(io.Discard, nil)), useCase)
	httpServer := httptest.NewServer(server.Handler(ctx))
	t.Cleanup(httpServer.Close)

	url := "ws" + strings.TrimPrefix(httpServer.URL, "http") + "/ws"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return server, conn
}

func exchange(t *testing.T, conn *websocket.Conn, action string, payload any) (string, Payload) {
	t.Helper()

	if action != "" {
		body, err := json.Marshal(payload)
		require.NoError(t, err)
		require.NoError(t, conn.WriteJSON(Message{Action: action, Payload: body}))
	}

	return read(t, conn)
}

func read(t *testing.T, conn *websocket.Conn) (string, Payload) {
	t.Helper()

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))

	var message Message
	require.NoError(t, conn.ReadJSON(&message))

	var payload Payload
	require.NoError(t, json.Unmarshal(message.Payload, &payload))

	return message.Action, payload
}

func TestServer_Connect(t *testing.T) {
	t.Run("Creates a session and resumes its game", func(t *testing.T) {
		// Given: a player with a game in progress
		useCase := &fakeUseCase{player: &entity.Player{ID: "p1", GameID: "game"}, game: testGame()}
		_, conn := startServer(t, useCase)

		// When: connecting without a known id
		action, payload := exchange(t, conn, actionConnect, Payload{})

		// Then: the player and a masked view of the game come back
		assert.Equal(t, actionConnect, action)
		require.NotNil(t, payload.Player)
		assert.Equal(t, "p1", payload.Player.ID)
		require.NotNil(t, payload.Game)
		assert.Equal(t, 2, payload.Game.OpponentCardCount)
		assert.Equal(t, 1, payload.Game.DrawPileCount)
		assert.Empty(t, payload.Error)
	})

	t.Run("Reports an unknown session", func(t *testing.T) {
		useCase := &fakeUseCase{player: &entity.Player{ID: "p1"}}
		_, conn := startServer(t, useCase)

		_, payload := exchange(t, conn, actionConnect, Payload{Player: &entity.Player{ID: "ghost"}})

		assert.Equal(t, apperror.ErrNotFound.Error(), payload.Error)
		assert.Nil(t, payload.Player)
	})
}

func TestServer_GameActions(t *testing.T) {
	player := &entity.Player{ID: "p1"}

	t.Run("Plays a card and answers with the view", func(t *testing.T) {
		useCase := &fakeUseCase{player: player, game: testGame()}
		_, conn := startServer(t, useCase)

		action, payload := exchange(t, conn, actionPlayCard, Payload{Player: player, CardID: "K-hearts"})

		assert.Equal(t, actionPlayCard, action)
		playedCard, _ := useCase.calls()
		assert.Equal(t, "K-hearts", playedCard)
		require.NotNil(t, payload.Game)
		assert.Equal(t, "game", payload.Game.ID)
	})

	t.Run("Forwards the declared suit", func(t *testing.T) {
		useCase := &fakeUseCase{player: player, game: testGame()}
		_, conn := startServer(t, useCase)

		_, payload := exchange(t, conn, actionChooseSuit, Payload{Player: player, Suit: "spades"})

		_, chosenSuit := useCase.calls()
		assert.Equal(t, "spades", chosenSuit)
		assert.Empty(t, payload.Error)
	})

	t.Run("Explains a rule violation", func(t *testing.T) {
		useCase := &fakeUseCase{player: player, err: apperror.ErrIllegalMove}
		_, conn := startServer(t, useCase)

		action, payload := exchange(t, conn, actionPlayCard, Payload{Player: player, CardID: "3-clubs"})

		assert.Equal(t, actionPlayCard, action)
		assert.Equal(t, apperror.ErrIllegalMove.Error(), payload.Error)
		assert.Nil(t, payload.Game)
	})

	t.Run("Requires a player", func(t *testing.T) {
		useCase := &fakeUseCase{player: player, game: testGame()}
		_, conn := startServer(t, useCase)

		_, payload := exchange(t, conn, actionDrawCard, Payload{})

		assert.Equal(t, errPlayerRequired.Error(), payload.Error)
	})

	t.Run("Rejects an unknown action", func(t *testing.T) {
		useCase := &fakeUseCase{player: player}
		_, conn := startServer(t, useCase)

		action, payload := exchange(t, conn, "game:fly", Payload{})

		assert.Equal(t, "game:fly", action)
		assert.Equal(t, "unknown action", payload.Error)
	})
}

func TestServer_Notify(t *testing.T) {
	// Given: a connected player
	player := &entity.Player{ID: "p1"}
	useCase := &fakeUseCase{player: player, game: testGame()}
	server, conn := startServer(t, useCase)
	exchange(t, conn, actionConnect, Payload{Player: player})

	// When: the computer moves
	game := testGame()
	game.Turn = entity.OwnerPlayer
	game.OpponentHand = game.OpponentHand[:1]
	server.Notify(player.ID, game)

	// Then: the update is pushed
	action, payload := read(t, conn)
	assert.Equal(t, actionGameUpdate, action)
	require.NotNil(t, payload.Game)
	assert.Equal(t, 1, payload.Game.OpponentCardCount)
}
