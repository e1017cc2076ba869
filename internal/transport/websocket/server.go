package websocket

import (
	"encoding/json"
	"log/slog"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"github.com/ninjamadeena/XO-Online/internal/pkg"
	"github.com/ninjamadeena/XO-Online/internal/service"
	"github.com/ninjamadeena/XO-Online/pkg/proto"
)

type gameCoordinator interface {
	FindMatch(client service.Client)
	CreateRoom(client service.Client)
	JoinRoom(client service.Client, code string)
	MakeMove(client service.Client, roomID string, cell int, mark string)
	Disconnect(client service.Client)
}

type Server struct {
	logger   *slog.Logger
	games    gameCoordinator
	upgrader websocket.Upgrader
}

func New(logger *slog.Logger, games gameCoordinator) *Server {
	return &Server{
		logger: logger.With("component", "ws-server"),
		games:  games,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(_ *http.Request) bool {
				return true
			},
		},
	}
}

// HandleConnection - upgrades the request and serves the player until the
// socket dies.
func (that *Server) HandleConnection(writer http.ResponseWriter, request *http.Request) {
	conn, err := that.upgrader.Upgrade(writer, request, nil)
	if err != nil {
		that.logger.Error("failed to upgrade connection", "error", err)
		return
	}

	player := newClient(that.logger, pkg.GenerateSessionID(), conn)
	that.logger.Info("player connected", "session", player.ID())

	go player.writePump()
	that.readPump(player)
}

func (that *Server) readPump(player *client) {
	defer func() {
		player.close()
		that.games.Disconnect(player)
		_ = player.conn.Close()
		that.logger.Info("player disconnected", "session", player.ID())
	}()

	player.conn.SetReadLimit(maxMessageSize)
	_ = player.conn.SetReadDeadline(time.Now().Add(pongWait))
	player.conn.SetPongHandler(func(string) error {
		return player.conn.SetReadDeadline(time.Now().Add(pongWait))
	})

	for {
		_, raw, err := player.conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				that.logger.Debug("unexpected close", "session", player.ID(), "error", err)
			}
			return
		}

		that.dispatch(player, raw)
	}
}

// dispatch routes one inbound message. Malformed messages are logged and
// dropped, never fatal to the connection.
func (that *Server) dispatch(player *client, raw []byte) {
	logger := that.logger.With("method", "dispatch", "session", player.ID())

	var message proto.Message
	if err := json.Unmarshal(raw, &message); err != nil {
		logger.Debug("failed to unmarshal message", "error", err)
		return
	}

	switch message.Action {
	case proto.ActionFindMatch:
		that.games.FindMatch(player)
	case proto.ActionCreateRoom:
		that.games.CreateRoom(player)
	case proto.ActionJoinRoom:
		var payload proto.JoinRoomPayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			logger.Debug("failed to unmarshal join_room payload", "error", err)
			return
		}
		that.games.JoinRoom(player, payload.RoomID)
	case proto.ActionMakeMove:
		var payload proto.MakeMovePayload
		if err := json.Unmarshal(message.Payload, &payload); err != nil {
			logger.Debug("failed to unmarshal make_move payload", "error", err)
			return
		}
		that.games.MakeMove(player, payload.RoomID, payload.Index, payload.Symbol)
	default:
		logger.Debug("unknown action", "action", message.Action)
	}
}
