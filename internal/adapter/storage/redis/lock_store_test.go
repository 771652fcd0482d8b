package redis

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLockStore_AcquireAndRelease(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewLockStore(client)
	ctx := context.Background()

	ok, err := store.Acquire(ctx, "payment:pid_1", "worker-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	// A second owner cannot acquire while held.
	ok, err = store.Acquire(ctx, "payment:pid_1", "worker-2", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok)

	err = store.Release(ctx, "payment:pid_1", "worker-1")
	require.NoError(t, err)

	// Now worker-2 can acquire.
	ok, err = store.Acquire(ctx, "payment:pid_1", "worker-2", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)
}

func TestLockStore_Release_WrongOwnerIsNoop(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewLockStore(client)
	ctx := context.Background()

	_, err := store.Acquire(ctx, "payment:pid_2", "worker-1", time.Minute)
	require.NoError(t, err)

	err = store.Release(ctx, "payment:pid_2", "worker-2")
	require.NoError(t, err)

	ok, err := store.Acquire(ctx, "payment:pid_2", "worker-2", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "lease should still belong to worker-1")
}

func TestLockStore_Extend(t *testing.T) {
	s := miniredis.RunT(t)
	client := goredis.NewClient(&goredis.Options{Addr: s.Addr()})
	store := NewLockStore(client)
	ctx := context.Background()

	_, err := store.Acquire(ctx, "payment:pid_3", "worker-1", 5*time.Second)
	require.NoError(t, err)

	ok, err := store.Extend(ctx, "payment:pid_3", "worker-1", time.Minute)
	require.NoError(t, err)
	assert.True(t, ok)

	ok, err = store.Extend(ctx, "payment:pid_3", "worker-2", time.Minute)
	require.NoError(t, err)
	assert.False(t, ok, "non-owner cannot extend")
}
