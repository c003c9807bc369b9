package redis

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/mcoot/wordtiles-go/internal/model"
	"github.com/mcoot/wordtiles-go/internal/storage"
)

// Storage is a Redis-backed implementation of the storage interface
type Storage struct {
	client *redis.Client
	cfg    Config
}

// New creates a new Redis storage instance
func New(cfg Config) (*Storage, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, err
	}

	opts.PoolSize = cfg.PoolSize
	opts.MinIdleConns = cfg.MinIdleConns

	client := redis.NewClient(opts)

	// Verify connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, err
	}

	return &Storage{
		client: client,
		cfg:    cfg,
	}, nil
}

// NewWithClient creates a Redis storage with an existing client (for testing)
func NewWithClient(client *redis.Client, cfg Config) *Storage {
	return &Storage{
		client: client,
		cfg:    cfg,
	}
}

// Close closes the Redis connection
func (s *Storage) Close() error {
	return s.client.Close()
}

// Ensure Storage implements the interface
var _ storage.Storage = (*Storage)(nil)

// Dictionary operations

func (s *Storage) GetDictionaryWords(ctx context.Context, name string) ([]string, error) {
	key := dictionaryKey(name)

	exists, err := s.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, err
	}
	if exists == 0 {
		return nil, model.ErrDictionaryNotFound
	}

	return s.client.SMembers(ctx, key).Result()
}

func (s *Storage) SaveDictionaryWords(ctx context.Context, name string, words []string) error {
	key := dictionaryKey(name)

	// Replace the existing set in one round trip
	pipe := s.client.TxPipeline()
	pipe.Del(ctx, key)

	if len(words) > 0 {
		members := make([]interface{}, len(words))
		for i, w := range words {
			members[i] = w
		}
		pipe.SAdd(ctx, key, members...)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// Turn log operations

func (s *Storage) AppendTurnRecord(ctx context.Context, record *model.TurnRecord) error {
	data, err := json.Marshal(record)
	if err != nil {
		return err
	}

	key := turnLogKey(record.GameID)
	pipe := s.client.TxPipeline()
	pipe.RPush(ctx, key, data)
	if s.cfg.TurnLogTTL > 0 {
		pipe.Expire(ctx, key, s.cfg.TurnLogTTL)
	}
	_, err = pipe.Exec(ctx)
	return err
}

func (s *Storage) GetTurnRecords(ctx context.Context, gameID model.GameID) ([]*model.TurnRecord, error) {
	entries, err := s.client.LRange(ctx, turnLogKey(gameID), 0, -1).Result()
	if err != nil {
		return nil, err
	}

	records := make([]*model.TurnRecord, 0, len(entries))
	for _, entry := range entries {
		var record model.TurnRecord
		if err := json.Unmarshal([]byte(entry), &record); err != nil {
			return nil, err
		}
		records = append(records, &record)
	}
	return records, nil
}

func (s *Storage) DeleteTurnRecords(ctx context.Context, gameID model.GameID) error {
	return s.client.Del(ctx, turnLogKey(gameID)).Err()
}
