package entity

import "time"

// MatchRecord is the archived outcome of a finished match. Live rooms are
// never persisted; only terminal results end up in the archive.
type MatchRecord struct {
	RoomID     string    `json:"room_id"`
	RoomType   string    `json:"room_type"`
	Winner     string    `json:"winner"`
	Disconnect bool      `json:"disconnect,omitempty"`
	Moves      int       `json:"moves"`
	FinishedAt time.Time `json:"finished_at"`
}
