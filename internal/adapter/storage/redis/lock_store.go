package redis

import (
	"context"
	"fmt"
	"time"

	goredis "github.com/redis/go-redis/v9"
)

// releaseScript deletes the lock key only if it is still held by the
// caller's ownerID, preventing a worker from releasing a lease another
// owner acquired after the first one's TTL expired.
var releaseScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("DEL", KEYS[1])
else
	return 0
end
`)

// extendScript refreshes the key's TTL only if still held by ownerID.
var extendScript = goredis.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	return redis.call("PEXPIRE", KEYS[1], ARGV[2])
else
	return 0
end
`)

// LockStore implements ports.LockManager on a single Redis instance,
// the distributed sibling of internal/lockmgr's in-process map: SET NX PX
// for acquisition, a compare-and-delete Lua script for release, and a
// compare-and-extend script for TTL refresh, so only the owner that
// acquired a lease can release or extend it.
type LockStore struct {
	client *goredis.Client
	prefix string
}

// NewLockStore creates a new Redis-backed lock manager.
func NewLockStore(client *goredis.Client) *LockStore {
	return &LockStore{client: client, prefix: "lock:"}
}

// Acquire grants the named lease to ownerID for ttl via SET NX PX.
func (s *LockStore) Acquire(ctx context.Context, name string, ownerID string, ttl time.Duration) (bool, error) {
	ok, err := s.client.SetNX(ctx, s.prefix+name, ownerID, ttl).Result()
	if err != nil {
		return false, fmt.Errorf("redis lock acquire: %w", err)
	}
	return ok, nil
}

// Release drops the lease if and only if ownerID currently holds it.
func (s *LockStore) Release(ctx context.Context, name string, ownerID string) error {
	_, err := releaseScript.Run(ctx, s.client, []string{s.prefix + name}, ownerID).Result()
	if err != nil && err != goredis.Nil {
		return fmt.Errorf("redis lock release: %w", err)
	}
	return nil
}

// Extend refreshes the TTL of a lease still held by ownerID.
func (s *LockStore) Extend(ctx context.Context, name string, ownerID string, ttl time.Duration) (bool, error) {
	result, err := extendScript.Run(ctx, s.client, []string{s.prefix + name}, ownerID, ttl.Milliseconds()).Int64()
	if err != nil && err != goredis.Nil {
		return false, fmt.Errorf("redis lock extend: %w", err)
	}
	return result == 1, nil
}
