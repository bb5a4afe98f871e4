package store

import (
	"context"
	"encoding/json"
	"fmt"
	"slices"
	"strings"

	"github.com/redis/go-redis/v9"

	"github.com/matzehuels/arbor/pkg/tree"
)

// keyPrefix namespaces our keys inside a shared Redis instance.
const keyPrefix = "arbor:tree:"

// RedisStore keeps entries in Redis, one JSON value per entry. It is the
// backend for shared multi-process setups where a directory won't do.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore connects to Redis at the given address and verifies the
// connection with a ping.
func NewRedisStore(ctx context.Context, addr string) (*RedisStore, error) {
	client := redis.NewClient(&redis.Options{Addr: addr})
	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("connecting to redis at %s: %w", addr, err)
	}
	return &RedisStore{client: client}, nil
}

// Save stores the tree under name.
func (s *RedisStore) Save(ctx context.Context, name string, root *tree.Node) (*Entry, error) {
	prev, err := s.Load(ctx, name)
	if err != nil && err != ErrNotFound {
		return nil, err
	}
	entry, err := newEntry(name, root, prev)
	if err != nil {
		return nil, err
	}
	data, err := json.Marshal(entry)
	if err != nil {
		return nil, err
	}
	err = RetryWithBackoff(ctx, func() error {
		return Retryable(s.client.Set(ctx, keyPrefix+name, data, 0).Err())
	})
	if err != nil {
		return nil, err
	}
	return entry, nil
}

// Load retrieves the entry stored under name.
func (s *RedisStore) Load(ctx context.Context, name string) (*Entry, error) {
	var data []byte
	err := RetryWithBackoff(ctx, func() error {
		b, err := s.client.Get(ctx, keyPrefix+name).Bytes()
		if err == redis.Nil {
			return ErrNotFound
		}
		if err != nil {
			return Retryable(err)
		}
		data = b
		return nil
	})
	if err != nil {
		return nil, err
	}
	var entry Entry
	if err := json.Unmarshal(data, &entry); err != nil {
		return nil, fmt.Errorf("corrupt entry %q: %w", name, err)
	}
	return &entry, nil
}

// List returns all stored entries ordered by name. Keys are discovered
// with SCAN so large stores don't block the server.
func (s *RedisStore) List(ctx context.Context) ([]Info, error) {
	var infos []Info
	iter := s.client.Scan(ctx, 0, keyPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		name := strings.TrimPrefix(iter.Val(), keyPrefix)
		entry, err := s.Load(ctx, name)
		if err == ErrNotFound {
			// deleted between scan and load
			continue
		}
		if err != nil {
			return nil, err
		}
		infos = append(infos, infoOf(entry))
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	slices.SortFunc(infos, func(a, b Info) int { return strings.Compare(a.Name, b.Name) })
	return infos, nil
}

// Delete removes the entry stored under name; missing entries are ignored.
func (s *RedisStore) Delete(ctx context.Context, name string) error {
	return RetryWithBackoff(ctx, func() error {
		return Retryable(s.client.Del(ctx, keyPrefix+name).Err())
	})
}

// Close closes the Redis connection.
func (s *RedisStore) Close() error { return s.client.Close() }

// Ensure RedisStore implements Store.
var _ Store = (*RedisStore)(nil)
