package repositories

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/sbilibin2017/syllabus-builder/internal/logger"
	"github.com/sbilibin2017/syllabus-builder/internal/models"
)

// ErrCacheMiss is returned when a token is not cached.
var ErrCacheMiss = errors.New("session not cached")

// SessionCacheRepository caches token to session lookups in Redis.
// Keys hold a digest of the token, never the token itself.
type SessionCacheRepository struct {
	client *redis.Client
	exp    time.Duration
}

// NewSessionCacheRepository creates a cache whose entries live for expiration.
func NewSessionCacheRepository(client *redis.Client, expiration time.Duration) *SessionCacheRepository {
	return &SessionCacheRepository{
		client: client,
		exp:    expiration,
	}
}

// Get returns the cached session entry for token.
func (r *SessionCacheRepository) Get(ctx context.Context, token string) (*models.CachedSession, error) {
	key := sessionKey(token)

	val, err := r.client.Get(ctx, key).Bytes()
	logger.Log.Debugw("session cache get", "key", key, "hit", err == nil, "error", errorOrNil(err))
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, ErrCacheMiss
		}
		return nil, err
	}

	var entry models.CachedSession
	if err := json.Unmarshal(val, &entry); err != nil {
		return nil, err
	}
	return &entry, nil
}

// Set caches entry for token.
func (r *SessionCacheRepository) Set(ctx context.Context, token string, entry models.CachedSession) error {
	key := sessionKey(token)

	data, err := json.Marshal(entry)
	if err != nil {
		return err
	}
	err = r.client.Set(ctx, key, data, r.exp).Err()
	logger.Log.Debugw("session cache set", "key", key, "session_id", entry.SessionID, "user_id", entry.UserID, "error", err)
	return err
}

// Delete drops token from the cache. Deleting a missing key is not an error.
func (r *SessionCacheRepository) Delete(ctx context.Context, token string) error {
	key := sessionKey(token)
	err := r.client.Del(ctx, key).Err()
	logger.Log.Debugw("session cache delete", "key", key, "error", err)
	return err
}

func sessionKey(token string) string {
	sum := sha256.Sum256([]byte(token))
	return "session:" + hex.EncodeToString(sum[:])
}

func errorOrNil(err error) error {
	if errors.Is(err, redis.Nil) {
		return nil
	}
	return err
}
