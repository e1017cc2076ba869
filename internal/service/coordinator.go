package service

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/ninjamadeena/XO-Online/internal/entity"
	"github.com/ninjamadeena/XO-Online/pkg/proto"
)

const recordTimeout = 5 * time.Second

type historyRepo interface {
	Record(ctx context.Context, record *entity.MatchRecord) error
}

// Coordinator is the single owner of the matchmaking queue and the room
// store. Every inbound event runs to completion under one lock, so queue and
// room mutations are atomic with respect to each other.
type Coordinator struct {
	logger *slog.Logger

	mu    sync.Mutex
	queue *MatchQueue
	rooms *RoomStore

	history historyRepo
}

func NewCoordinator(logger *slog.Logger, history historyRepo) *Coordinator {
	return &Coordinator{
		logger:  logger,
		queue:   NewMatchQueue(),
		rooms:   NewRoomStore(),
		history: history,
	}
}

// FindMatch - puts the client in the waiting queue and pairs the two oldest
// waiters when at least two are present. A client that is already waiting is
// ignored.
func (that *Coordinator) FindMatch(client Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	log := that.logger.With("method", "FindMatch", "client_id", client.ID())

	if !that.queue.Enqueue(client) {
		return
	}

	if that.queue.Len() < 2 {
		return
	}

	player1, player2, _ := that.queue.TakePair()

	if player1.Connected() && player2.Connected() {
		room := that.rooms.CreateAuto(player1, player2)

		player1.Send(proto.ActionGameStart, proto.GameStartPayload{Symbol: entity.PlayerX, RoomID: room.ID})
		player2.Send(proto.ActionGameStart, proto.GameStartPayload{Symbol: entity.PlayerO, RoomID: room.ID})

		log.Info("matched players", "room_id", room.ID, "opponent_id", player2.ID())
		return
	}

	// a partner dropped before pairing: the survivor goes back to the front
	// of the queue and is paired first on the next attempt
	if player1.Connected() {
		that.queue.PushFront(player1)
	}
	if player2.Connected() {
		that.queue.PushFront(player2)
	}
}

// CreateRoom - registers a creator-made room and sends its code back to the
// creator. The room waits for a second player to join by code.
func (that *Coordinator) CreateRoom(client Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room := that.rooms.CreateCustom(client)
	client.Send(proto.ActionRoomCreated, proto.RoomCreatedPayload{RoomID: room.ID})

	that.logger.Info("room created", "room_id", room.ID, "client_id", client.ID())
}

// JoinRoom - seats the client in a creator-made room. A failed lookup is
// surfaced to the joiner only; no state changes.
func (that *Coordinator) JoinRoom(client Client, code string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, err := that.rooms.Join(code, client)
	if err != nil {
		client.Send(proto.ActionError, proto.ErrorPayload{Message: "room not found or already full"})
		return
	}

	room.Player1.Send(proto.ActionGameStart, proto.GameStartPayload{Symbol: entity.PlayerX, RoomID: room.ID})
	client.Send(proto.ActionGameStart, proto.GameStartPayload{Symbol: entity.PlayerO, RoomID: room.ID})

	that.logger.Info("player joined room", "room_id", room.ID, "client_id", client.ID())
}

// MakeMove - applies a move to the room's board. Invalid moves (unknown room,
// occupied cell, out of turn) are dropped without notifying the mover: a
// stale client resyncs from the next broadcast it receives.
func (that *Coordinator) MakeMove(client Client, roomID string, cell int, mark string) {
	that.mu.Lock()
	defer that.mu.Unlock()

	room, ok := that.rooms.Get(roomID)
	if !ok {
		return
	}

	if err := room.Game.MakeTurn(mark, cell); err != nil {
		that.logger.Debug("move rejected", "room_id", roomID, "client_id", client.ID(), "cell", cell, "error", err)
		return
	}

	room.Broadcast(proto.ActionUpdateBoard, proto.UpdateBoardPayload{
		Board: room.Game.Board,
		Turn:  room.Game.Turn,
	})

	result := room.Game.DetermineResult()
	if result == "" {
		return
	}

	room.Broadcast(proto.ActionGameOver, proto.GameOverPayload{Winner: result})
	that.finishRoom(room, result, false)
}

// Disconnect - removes the client from the queue and forfeits its game, if
// one is in progress. The opponent wins via the normal game-over event with
// the disconnect flag set.
func (that *Coordinator) Disconnect(client Client) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.queue.Remove(client.ID())

	room, ok := that.rooms.FindByPlayer(client.ID())
	if !ok {
		return
	}

	room.Broadcast(proto.ActionGameOver, proto.GameOverPayload{Winner: entity.ResultForfeit, IsDisconnect: true})
	that.finishRoom(room, entity.ResultForfeit, true)

	that.logger.Info("player disconnected mid-game", "room_id", room.ID, "client_id", client.ID())
}

// finishRoom removes the room the instant its game reaches a terminal
// outcome and archives the result off the event path.
func (that *Coordinator) finishRoom(room *Room, winner string, disconnect bool) {
	that.rooms.Destroy(room.ID)

	if that.history == nil {
		return
	}

	record := &entity.MatchRecord{
		RoomID:     room.ID,
		RoomType:   room.Type,
		Winner:     winner,
		Disconnect: disconnect,
		Moves:      room.Game.Moves,
		FinishedAt: time.Now().UTC(),
	}

	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), recordTimeout)
		defer cancel()

		if err := that.history.Record(ctx, record); err != nil {
			that.logger.Error("failed to archive match result", "room_id", record.RoomID, "error", err)
		}
	}()
}
