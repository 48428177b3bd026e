package redis

import (
	"context"
	"errors"
	"fmt"

	"github.com/redis/go-redis/v9"

	"github.com/bemapp/orgadmin-shell/internal/core/ports"
)

// KVStore keeps session keys in Redis under a per-device prefix.
// Key format: <prefix>:<key>
type KVStore struct {
	client *redis.Client
	prefix string
}

// NewKVStore wraps client. An empty prefix defaults to "bemshell".
func NewKVStore(client *redis.Client, prefix string) *KVStore {
	if prefix == "" {
		prefix = "bemshell"
	}
	return &KVStore{client: client, prefix: prefix}
}

func (s *KVStore) Get(ctx context.Context, key string) (string, bool, error) {
	v, err := s.client.Get(ctx, s.key(key)).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("redis get %s: %w", key, err)
	}
	return v, true, nil
}

func (s *KVStore) Set(ctx context.Context, key, value string) error {
	if err := s.client.Set(ctx, s.key(key), value, 0).Err(); err != nil {
		return fmt.Errorf("redis set %s: %w", key, err)
	}
	return nil
}

func (s *KVStore) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	full := make([]string, len(keys))
	for i, k := range keys {
		full[i] = s.key(k)
	}
	if err := s.client.Del(ctx, full...).Err(); err != nil {
		return fmt.Errorf("redis del: %w", err)
	}
	return nil
}

func (s *KVStore) Ping(ctx context.Context) error {
	return s.client.Ping(ctx).Err()
}

func (s *KVStore) Close() error {
	return s.client.Close()
}

func (s *KVStore) key(k string) string {
	return s.prefix + ":" + k
}

var _ ports.KeyValueStore = (*KVStore)(nil)
