package session

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	redisClient "github.com/go-redis/redis/v8"
)

const keyPrefix = "lyricecho:session:"

// RedisStore keeps sessions as JSON blobs that expire after ttl.
type RedisStore struct {
	client *redisClient.Client
	ttl    time.Duration
}

// NewRedisStore connects to addr. Bare host:port addresses are dialled over
// TLS with the default user, matching hosted Redis providers.
func NewRedisStore(addr, password string, ttl time.Duration) (*RedisStore, error) {
	opt, err := redisClient.ParseURL(redisURL(addr, password))
	if err != nil {
		return nil, fmt.Errorf("failed to parse redis url: %w", err)
	}
	return &RedisStore{client: redisClient.NewClient(opt), ttl: ttl}, nil
}

// NewRedisStoreWithClient wraps an existing client.
func NewRedisStoreWithClient(client *redisClient.Client, ttl time.Duration) *RedisStore {
	return &RedisStore{client: client, ttl: ttl}
}

func redisURL(addr, password string) string {
	if strings.Contains(addr, "://") {
		return addr
	}
	if password == "" {
		return "rediss://" + addr
	}
	return fmt.Sprintf("rediss://default:%s@%s", password, addr)
}

func sessionKey(id string) string {
	return keyPrefix + id
}

func (r *RedisStore) Load(ctx context.Context, id string) (*Session, error) {
	data, err := r.client.Get(ctx, sessionKey(id)).Bytes()
	if err != nil {
		if errors.Is(err, redisClient.Nil) {
			return New(), nil
		}
		return nil, fmt.Errorf("failed to load session %s: %w", id, err)
	}
	return decode(data)
}

func (r *RedisStore) Save(ctx context.Context, id string, s *Session) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	if err := r.client.Set(ctx, sessionKey(id), data, r.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save session %s: %w", id, err)
	}
	return nil
}

func (r *RedisStore) Delete(ctx context.Context, id string) error {
	if err := r.client.Del(ctx, sessionKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session %s: %w", id, err)
	}
	return nil
}

// Ping checks connectivity.
func (r *RedisStore) Ping(ctx context.Context) error {
	return r.client.Ping(ctx).Err()
}

func (r *RedisStore) Close() error {
	return r.client.Close()
}

func decode(data []byte) (*Session, error) {
	var s Session
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}
