package redis

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock only if it still holds our token, so a lock
// that expired and was re-taken by another worker is left alone.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
end
return 0
`)

// ProviderLock implements ports.ProviderLock using Redis SET NX PX.
type ProviderLock struct {
	client *goredis.Client
	prefix string

	mu     sync.Mutex
	tokens map[string]string
}

// NewProviderLock creates a new Redis-backed per-provider lock.
func NewProviderLock(client *goredis.Client) *ProviderLock {
	return &ProviderLock{
		client: client,
		prefix: "provider-connection-check:",
		tokens: make(map[string]string),
	}
}

// Acquire takes the lock for providerID for at most ttl.
// Returns false if another holder has it.
func (l *ProviderLock) Acquire(ctx context.Context, providerID string, ttl time.Duration) (bool, error) {
	token := uuid.NewString()
	_, err := l.client.SetArgs(ctx, l.prefix+providerID, token, goredis.SetArgs{
		Mode: "NX",
		TTL:  ttl,
	}).Result()
	if err != nil {
		if errors.Is(err, goredis.Nil) {
			return false, nil
		}
		return false, fmt.Errorf("redis provider lock acquire: %w", err)
	}

	l.mu.Lock()
	l.tokens[providerID] = token
	l.mu.Unlock()
	return true, nil
}

// Release drops the lock for providerID if this instance still owns it.
func (l *ProviderLock) Release(ctx context.Context, providerID string) error {
	l.mu.Lock()
	token, ok := l.tokens[providerID]
	delete(l.tokens, providerID)
	l.mu.Unlock()
	if !ok {
		return nil
	}

	if err := releaseScript.Run(ctx, l.client, []string{l.prefix + providerID}, token).Err(); err != nil {
		return fmt.Errorf("redis provider lock release: %w", err)
	}
	return nil
}
