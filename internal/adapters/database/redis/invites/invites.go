package invites

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Storage caches the token → club id mapping so join-by-token does not
// need two store reads on the hot path. Entries expire; the record store
// stays authoritative.
type Storage struct {
	redis *redis.Client
	ttl   time.Duration
}

func NewStorage(rdb *redis.Client, ttl time.Duration) *Storage {
	return &Storage{
		redis: rdb,
		ttl:   ttl,
	}
}

// Get returns the cached club id for a token. A miss surfaces redis.Nil.
func (s *Storage) Get(ctx context.Context, token string) (string, error) {
	return s.redis.Get(ctx, key(token)).Result()
}

func (s *Storage) Set(ctx context.Context, token, clubID string) error {
	return s.redis.Set(ctx, key(token), clubID, s.ttl).Err()
}

func (s *Storage) Clear(ctx context.Context, token string) error {
	return s.redis.Del(ctx, key(token)).Err()
}

func key(token string) string {
	return fmt.Sprintf("invite:%s", token)
}
