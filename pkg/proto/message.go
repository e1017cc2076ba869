package proto

import "encoding/json"

// Message represents a WebSocket message with an action type and a payload.
type Message struct {
	Action  string          `json:"action"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// Client to server actions.
const (
	ActionFindMatch  = "find_match"
	ActionCreateRoom = "create_room"
	ActionJoinRoom   = "join_room"
	ActionMakeMove   = "make_move"
)

// Server to client actions.
const (
	ActionRoomCreated = "room_created"
	ActionGameStart   = "game_start"
	ActionUpdateBoard = "update_board"
	ActionGameOver    = "game_over"
	ActionError       = "error_msg"
)

type JoinRoomPayload struct {
	RoomID string `json:"roomId"`
}

type MakeMovePayload struct {
	RoomID string `json:"roomId"`
	Index  int    `json:"index"`
	Symbol string `json:"symbol"`
}

type RoomCreatedPayload struct {
	RoomID string `json:"roomId"`
}

// GameStartPayload tells one player which mark they play in which room.
type GameStartPayload struct {
	Symbol string `json:"symbol"`
	RoomID string `json:"roomId"`
}

type UpdateBoardPayload struct {
	Board [9]string `json:"board"`
	Turn  string    `json:"turn"`
}

type GameOverPayload struct {
	Winner       string `json:"winner"`
	IsDisconnect bool   `json:"isDisconnect,omitempty"`
}

type ErrorPayload struct {
	Message string `json:"message"`
}
