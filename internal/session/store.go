package session

import (
	"context"       // Context for Redis operations
	"strconv"       // User id formatting
	"time"          // Time durations

	"github.com/redis/go-redis/v9" // Redis client
)

// Session lifetimes; Remember is used when the login carried the remember flag
const (
	DefaultTTL  = 24 * time.Hour      // Plain login
	RememberTTL = 30 * 24 * time.Hour // Remember-me login
)

// Store keeps one Redis key per issued token id. Logout deletes the key; the
// auth middleware rejects tokens whose key is gone, so revocation wins over
// the JWT's own expiry.
type Store struct {
	rdb *redis.Client
}

func NewStore(rdb *redis.Client) *Store {
	return &Store{rdb: rdb}
}

// Save records a session for a token id with the given TTL
func (s *Store) Save(ctx context.Context, tokenID string, userID uint, ttl time.Duration) error {
	return s.rdb.Set(ctx, key(tokenID), strconv.FormatUint(uint64(userID), 10), ttl).Err() // Set value in Redis with TTL
}

// Exists reports whether a session is still live
func (s *Store) Exists(ctx context.Context, tokenID string) (bool, error) {
	n, err := s.rdb.Exists(ctx, key(tokenID)).Result() // Check key presence
	if err != nil {
		return false, err // Redis error
	}
	return n > 0, nil
}

// Revoke ends a session; used by logout
func (s *Store) Revoke(ctx context.Context, tokenID string) error {
	return s.rdb.Del(ctx, key(tokenID)).Err() // Delete key from Redis
}

func key(tokenID string) string {
	return "session:" + tokenID
}
