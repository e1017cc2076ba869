package pkg

import (
	"crypto/rand"
	"time"

	"github.com/google/uuid"
)

const (
	roomCodeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	autoIDAlphabet   = "abcdefghijklmnopqrstuvwxyz0123456789"

	roomCodeLength = 5
	autoIDLength   = 6

	// AutoRoomPrefix marks room identifiers minted by the matchmaking queue.
	AutoRoomPrefix = "auto_"
)

// GenerateRoomCode - generates a short uppercase code for a creator-made room.
func GenerateRoomCode() string {
	return randomString(roomCodeAlphabet, roomCodeLength)
}

// GenerateAutoRoomID - generates a prefixed identifier for an auto-matched room.
func GenerateAutoRoomID() string {
	return AutoRoomPrefix + randomString(autoIDAlphabet, autoIDLength)
}

// GenerateSessionID - generates a new unique connection identifier.
func GenerateSessionID() string {
	return uuid.NewString()
}

func randomString(alphabet string, length int) string {
	b := make([]byte, length)
	if _, err := rand.Read(b); err != nil {
		// fall back to the clock if the random source is unavailable
		seed := time.Now().UnixNano()
		for i := range b {
			b[i] = alphabet[int(seed>>uint(i*4))%len(alphabet)]
		}
		return string(b)
	}

	for i := range b {
		b[i] = alphabet[int(b[i])%len(alphabet)]
	}

	return string(b)
}
