package document

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"
)

const redisKeyPrefix = "mailblocks:document:"

// RedisConfig holds connection settings for the Redis-backed store.
type RedisConfig struct {
	ConnectionURL  string        `env:"REDIS_URL,required" envDefault:"redis://localhost:6379/0"`
	RetryAttempts  int           `env:"REDIS_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval  time.Duration `env:"REDIS_RETRY_INTERVAL" envDefault:"5s"`
	ConnectTimeout time.Duration `env:"REDIS_CONNECT_TIMEOUT" envDefault:"30s"`
}

var (
	// ErrRedisNotReady is returned when no connection could be established
	// within the configured retry budget.
	ErrRedisNotReady = errors.New("redis is not ready")

	// ErrInvalidRedisURL is returned for an unparsable connection URL.
	ErrInvalidRedisURL = errors.New("invalid redis connection url")
)

// RedisStorage persists documents as JSON values under a fixed key prefix.
type RedisStorage struct {
	client *redis.Client
}

// NewRedisStorage wraps an already connected client.
func NewRedisStorage(client *redis.Client) *RedisStorage {
	return &RedisStorage{client: client}
}

// ConnectRedisStorage dials Redis with retries and returns a ready store.
func ConnectRedisStorage(ctx context.Context, cfg RedisConfig) (*RedisStorage, error) {
	ctx, cancel := context.WithTimeout(ctx, cfg.ConnectTimeout)
	defer cancel()

	opt, err := redis.ParseURL(cfg.ConnectionURL)
	if err != nil {
		return nil, errors.Join(ErrInvalidRedisURL, err)
	}

	for i := 0; i < cfg.RetryAttempts; i++ {
		client := redis.NewClient(opt)
		if err := client.Ping(ctx).Err(); err == nil {
			return NewRedisStorage(client), nil
		}
		_ = client.Close()

		select {
		case <-ctx.Done():
			return nil, errors.Join(ErrRedisNotReady, ctx.Err())
		case <-time.After(cfg.RetryInterval):
		}
	}
	return nil, ErrRedisNotReady
}

func (s *RedisStorage) Save(ctx context.Context, doc Document) error {
	if doc.ID == "" {
		return ErrInvalidDocument
	}
	data, err := json.Marshal(doc)
	if err != nil {
		return err
	}
	return s.client.Set(ctx, redisKeyPrefix+doc.ID, data, 0).Err()
}

func (s *RedisStorage) Load(ctx context.Context, id string) (Document, error) {
	data, err := s.client.Get(ctx, redisKeyPrefix+id).Bytes()
	if errors.Is(err, redis.Nil) {
		return Document{}, ErrDocumentNotFound
	}
	if err != nil {
		return Document{}, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return Document{}, err
	}
	return doc, nil
}

func (s *RedisStorage) Delete(ctx context.Context, id string) error {
	return s.client.Del(ctx, redisKeyPrefix+id).Err()
}

func (s *RedisStorage) List(ctx context.Context) ([]Document, error) {
	var (
		out    []Document
		cursor uint64
	)
	for {
		keys, next, err := s.client.Scan(ctx, cursor, redisKeyPrefix+"*", 100).Result()
		if err != nil {
			return nil, err
		}
		for _, key := range keys {
			data, err := s.client.Get(ctx, key).Bytes()
			if errors.Is(err, redis.Nil) {
				continue // deleted between scan and get
			}
			if err != nil {
				return nil, err
			}
			var doc Document
			if err := json.Unmarshal(data, &doc); err != nil {
				continue
			}
			out = append(out, doc)
		}
		cursor = next
		if cursor == 0 {
			return out, nil
		}
	}
}
