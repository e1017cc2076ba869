package service

import (
	"strings"

	"github.com/ninjamadeena/XO-Online/internal/apperror"
	"github.com/ninjamadeena/XO-Online/internal/entity"
	"github.com/ninjamadeena/XO-Online/internal/pkg"
)

// Room ties one game to its occupants. Player2 is nil only between the
// creation of a custom room and the second player joining it.
type Room struct {
	ID      string
	Type    string
	Player1 Client
	Player2 Client
	Game    *entity.Game
}

// Broadcast sends a message to every connected occupant of the room.
func (that *Room) Broadcast(action string, payload any) {
	for _, player := range []Client{that.Player1, that.Player2} {
		if player != nil && player.Connected() {
			player.Send(action, payload)
		}
	}
}

// Contains reports whether the client occupies either seat of the room.
func (that *Room) Contains(clientID string) bool {
	if that.Player1 != nil && that.Player1.ID() == clientID {
		return true
	}

	return that.Player2 != nil && that.Player2.ID() == clientID
}

// RoomStore owns the mapping from room identifier to live room. It is not
// safe for concurrent use on its own; the coordinator serializes every
// access.
type RoomStore struct {
	rooms map[string]*Room
}

func NewRoomStore() *RoomStore {
	return &RoomStore{
		rooms: make(map[string]*Room),
	}
}

// CreateCustom - registers a room with a short uppercase code, the creator in
// seat one and an empty second seat.
func (that *RoomStore) CreateCustom(creator Client) *Room {
	room := &Room{
		ID:      that.uniqueID(pkg.GenerateRoomCode),
		Type:    entity.CustomRoom,
		Player1: creator,
		Game:    entity.NewGame(),
	}
	that.rooms[room.ID] = room

	return room
}

// CreateAuto - registers a room for a freshly matched pair. The first player
// of the pair plays X.
func (that *RoomStore) CreateAuto(player1, player2 Client) *Room {
	room := &Room{
		ID:      that.uniqueID(pkg.GenerateAutoRoomID),
		Type:    entity.AutoRoom,
		Player1: player1,
		Player2: player2,
		Game:    entity.NewGame(),
	}
	that.rooms[room.ID] = room

	return room
}

// Join - normalizes the code, looks the room up and seats the joiner as the
// second player. The creator plays X, the joiner plays O.
func (that *RoomStore) Join(code string, joiner Client) (*Room, error) {
	code = strings.ToUpper(strings.TrimSpace(code))

	room, ok := that.rooms[code]
	if !ok {
		return nil, apperror.ErrRoomNotFound
	}

	if room.Player2 != nil {
		return nil, apperror.ErrRoomFull
	}

	room.Player2 = joiner

	return room, nil
}

// Get - looks a room up by its exact identifier.
func (that *RoomStore) Get(id string) (*Room, bool) {
	room, ok := that.rooms[id]
	return room, ok
}

// FindByPlayer - returns the room occupied by the client, if any. A client
// belongs to at most one room at a time.
func (that *RoomStore) FindByPlayer(clientID string) (*Room, bool) {
	for _, room := range that.rooms {
		if room.Contains(clientID) {
			return room, true
		}
	}

	return nil, false
}

// Destroy - removes the room unconditionally. Destroying an absent id is a
// no-op.
func (that *RoomStore) Destroy(id string) {
	delete(that.rooms, id)
}

func (that *RoomStore) Len() int {
	return len(that.rooms)
}

// uniqueID draws identifiers until one does not collide with a live room.
func (that *RoomStore) uniqueID(generate func() string) string {
	for {
		id := generate()
		if _, exists := that.rooms[id]; !exists {
			return id
		}
	}
}
