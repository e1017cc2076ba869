package service

import (
	"strings"
	"testing"

	"github.com/ninjamadeena/XO-Online/internal/apperror"
	"github.com/ninjamadeena/XO-Online/internal/entity"
	"github.com/ninjamadeena/XO-Online/internal/pkg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRoomStore_CreateCustom(t *testing.T) {
	// Given: an empty store
	store := NewRoomStore()
	creator := newFakeClient("creator")

	// When: creating a custom room
	room := store.CreateCustom(creator)

	// Then: the room has a short uppercase code, the creator in seat one and
	// an empty second seat
	require.Len(t, room.ID, 5)
	assert.Equal(t, strings.ToUpper(room.ID), room.ID)
	assert.Equal(t, entity.CustomRoom, room.Type)
	assert.Equal(t, creator, room.Player1)
	assert.Nil(t, room.Player2)
	assert.Equal(t, entity.PlayerX, room.Game.Turn)
}

func TestRoomStore_CreateAuto(t *testing.T) {
	// Given: an empty store
	store := NewRoomStore()

	// When: creating a room for a matched pair
	room := store.CreateAuto(newFakeClient("p1"), newFakeClient("p2"))

	// Then: both seats are taken and the id carries the auto prefix
	assert.True(t, strings.HasPrefix(room.ID, pkg.AutoRoomPrefix))
	assert.Equal(t, entity.AutoRoom, room.Type)
	assert.NotNil(t, room.Player1)
	assert.NotNil(t, room.Player2)
}

func TestRoomStore_UniqueIDs(t *testing.T) {
	// Given: an empty store
	store := NewRoomStore()

	// When: creating many rooms
	seen := make(map[string]struct{})
	for i := 0; i < 500; i++ {
		room := store.CreateCustom(newFakeClient("c"))

		// Then: no two live rooms ever share an id
		_, duplicate := seen[room.ID]
		require.False(t, duplicate, "duplicate room id %s", room.ID)
		seen[room.ID] = struct{}{}
	}
}

func TestRoomStore_Join(t *testing.T) {
	t.Run("Seats the joiner after normalizing the code", func(t *testing.T) {
		// Given: a custom room waiting for a second player
		store := NewRoomStore()
		created := store.CreateCustom(newFakeClient("creator"))
		joiner := newFakeClient("joiner")

		// When: joining with surrounding whitespace and lowercase letters
		room, err := store.Join("  "+strings.ToLower(created.ID)+" ", joiner)

		// Then: the joiner takes the second seat of the same room
		require.NoError(t, err)
		assert.Equal(t, created, room)
		assert.Equal(t, joiner, room.Player2)
	})

	t.Run("Returns ErrRoomNotFound for an unknown code", func(t *testing.T) {
		// Given: an empty store
		store := NewRoomStore()

		// When: joining a room that does not exist
		_, err := store.Join("ZZZZZ", newFakeClient("joiner"))

		// Then: an ErrRoomNotFound error should be returned
		require.ErrorIs(t, err, apperror.ErrRoomNotFound)
	})

	t.Run("Returns ErrRoomFull when both seats are taken", func(t *testing.T) {
		// Given: a custom room that already has two players
		store := NewRoomStore()
		created := store.CreateCustom(newFakeClient("creator"))
		_, err := store.Join(created.ID, newFakeClient("first"))
		require.NoError(t, err)

		// When: a third player tries to join
		_, err = store.Join(created.ID, newFakeClient("second"))

		// Then: an ErrRoomFull error should be returned
		require.ErrorIs(t, err, apperror.ErrRoomFull)
		assert.Equal(t, "first", created.Player2.ID())
	})
}

func TestRoomStore_FindByPlayer(t *testing.T) {
	// Given: a store with one occupied room
	store := NewRoomStore()
	room := store.CreateAuto(newFakeClient("p1"), newFakeClient("p2"))

	// When/Then: both occupants resolve to the room, a stranger does not
	found, ok := store.FindByPlayer("p1")
	require.True(t, ok)
	assert.Equal(t, room, found)

	found, ok = store.FindByPlayer("p2")
	require.True(t, ok)
	assert.Equal(t, room, found)

	_, ok = store.FindByPlayer("stranger")
	assert.False(t, ok)
}

func TestRoomStore_Destroy(t *testing.T) {
	// Given: a store with one room
	store := NewRoomStore()
	room := store.CreateAuto(newFakeClient("p1"), newFakeClient("p2"))

	// When: destroying it twice
	store.Destroy(room.ID)
	store.Destroy(room.ID)

	// Then: the room is gone and the second call is a no-op
	_, ok := store.Get(room.ID)
	assert.False(t, ok)
	assert.Equal(t, 0, store.Len())
}
