package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"
	"github.com/rocketscienceinc/battleship/internal/apperror"
	"github.com/rocketscienceinc/battleship/internal/entity"
)

// matchesKey holds match ids, newest first.
const matchesKey = "matches"

type MatchRepository interface {
	Create(ctx context.Context, record *entity.MatchRecord) error
	GetByID(ctx context.Context, id string) (*entity.MatchRecord, error)
	List(ctx context.Context, limit int64) ([]*entity.MatchRecord, error)
	DeleteByID(ctx context.Context, id string) error
}

type dbMatch struct {
	client   *redis.Client
	capacity int64
}

// NewMatchRepository keeps at most capacity matches, dropping the oldest.
// A non-positive capacity keeps every match.
func NewMatchRepository(client *redis.Client, capacity int64) MatchRepository {
	return &dbMatch{
		client:   client,
		capacity: capacity,
	}
}

func matchKey(id string) string {
	return "match:" + id
}

func (that *dbMatch) Create(ctx context.Context, record *entity.MatchRecord) error {
	matchJSON, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("could not marshal match: %w", err)
	}

	err = that.client.Watch(ctx, func(tx *redis.Tx) error {
		var overflow []string
		if that.capacity > 0 {
			// Once the new id is pushed, these fall off the end of the list.
			overflow, err = tx.LRange(ctx, matchesKey, that.capacity-1, -1).Result()
			if err != nil {
				return err
			}
		}

		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Set(ctx, matchKey(record.ID), matchJSON, 0)
			pipe.LPush(ctx, matchesKey, record.ID)

			if len(overflow) > 0 {
				pipe.LTrim(ctx, matchesKey, 0, that.capacity-1)
				pipe.Del(ctx, matchKeys(overflow)...)
			}

			return nil
		})

		return err
	}, matchesKey)
	if err != nil {
		return fmt.Errorf("failed to set match: %w", err)
	}

	return nil
}

func matchKeys(ids []string) []string {
	keys := make([]string, 0, len(ids))
	for _, id := range ids {
		keys = append(keys, matchKey(id))
	}

	return keys
}

func (that *dbMatch) GetByID(ctx context.Context, id string) (*entity.MatchRecord, error) {
	response, err := that.client.Get(ctx, matchKey(id)).Result()

	if errors.Is(err, redis.Nil) {
		return &entity.MatchRecord{}, apperror.ErrMatchNotFound
	}

	if err != nil {
		return &entity.MatchRecord{}, fmt.Errorf("failed to get match by ID: %w", err)
	}

	var record entity.MatchRecord
	if err = json.Unmarshal([]byte(response), &record); err != nil {
		return &entity.MatchRecord{}, fmt.Errorf("failed to unmarshal match: %w", err)
	}

	return &record, nil
}

// List returns up to limit matches, newest first.
func (that *dbMatch) List(ctx context.Context, limit int64) ([]*entity.MatchRecord, error) {
	if limit <= 0 {
		return []*entity.MatchRecord{}, nil
	}

	ids, err := that.client.LRange(ctx, matchesKey, 0, limit-1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list match ids: %w", err)
	}

	if len(ids) == 0 {
		return []*entity.MatchRecord{}, nil
	}

	values, err := that.client.MGet(ctx, matchKeys(ids)...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to get matches: %w", err)
	}

	records := make([]*entity.MatchRecord, 0, len(values))
	for _, value := range values {
		raw, ok := value.(string)
		if !ok {
			continue
		}

		var record entity.MatchRecord
		if err = json.Unmarshal([]byte(raw), &record); err != nil {
			return nil, fmt.Errorf("failed to unmarshal match: %w", err)
		}

		records = append(records, &record)
	}

	return records, nil
}

func (that *dbMatch) DeleteByID(ctx context.Context, id string) error {
	var deleted *redis.IntCmd

	_, err := that.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		deleted = pipe.Del(ctx, matchKey(id))
		pipe.LRem(ctx, matchesKey, 0, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete match by ID: %w", err)
	}

	if deleted.Val() == 0 {
		return apperror.ErrMatchNotFound
	}

	return nil
}
