package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/ninjamadeena/XO-Online/internal/entity"
	"github.com/redis/go-redis/v9"
)

var ErrRecordNotFound = errors.New("match record not found")

// HistoryRepository archives finished matches. Live rooms never touch it.
type HistoryRepository interface {
	Record(ctx context.Context, record *entity.MatchRecord) error
	GetByRoomID(ctx context.Context, roomID string) (*entity.MatchRecord, error)
}

type dbHistory struct {
	client *redis.Client
}

func NewHistoryRepository(client *redis.Client) HistoryRepository {
	return &dbHistory{
		client: client,
	}
}

func (that *dbHistory) Record(ctx context.Context, record *entity.MatchRecord) error {
	recordJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal match record: %w", err)
	}

	recordKey := "history:" + record.RoomID
	err = that.client.Set(ctx, recordKey, recordJSON, 0).Err()
	if err != nil {
		return fmt.Errorf("failed to set match record: %w", err)
	}

	return nil
}

func (that *dbHistory) GetByRoomID(ctx context.Context, roomID string) (*entity.MatchRecord, error) {
	recordKey := "history:" + roomID

	response, err := that.client.Get(ctx, recordKey).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.MatchRecord{}, ErrRecordNotFound
	}

	if err != nil {
		return &entity.MatchRecord{}, fmt.Errorf("failed to get match record: %w", err)
	}

	var record entity.MatchRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return &entity.MatchRecord{}, fmt.Errorf("failed to unmarshal match record: %w", err)
	}

	return &record, nil
}
