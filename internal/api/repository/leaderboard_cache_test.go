package repository

import (
	"context"
	"testing"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcredis "github.com/testcontainers/testcontainers-go/modules/redis"
)

// setupCacheClient starts a disposable Redis container for one test. Skipped
// in short mode so the unit suite stays docker-free.
func setupCacheClient(t *testing.T) *redis.Client {
	t.Helper()
	if testing.Short() {
		t.Skip("skipping container-backed test in short mode")
	}

	ctx := context.Background()
	redisContainer, err := tcredis.Run(ctx, "redis:7-alpine")
	require.NoError(t, err)
	t.Cleanup(func() {
		if err := testcontainers.TerminateContainer(redisContainer); err != nil {
			t.Logf("failed to terminate container: %s", err)
		}
	})

	uri, err := redisContainer.ConnectionString(ctx)
	require.NoError(t, err)
	opts, err := redis.ParseURL(uri)
	require.NoError(t, err)

	client := redis.NewClient(opts)
	t.Cleanup(func() { client.Close() })
	return client
}

func setupCache(t *testing.T) LeaderboardCache {
	t.Helper()
	return NewLeaderboardCache(setupCacheClient(t))
}

func TestLeaderboardCacheColdSnapshot(t *testing.T) {
	cache := setupCache(t)

	// When reading before any rebuild
	scores, err := cache.Snapshot(context.Background())

	// Then the cache reports cold with no error
	require.NoError(t, err)
	assert.Nil(t, scores)
}

func TestLeaderboardCacheRebuildAndSnapshot(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()

	// Given a rebuilt cache, zero-win players included
	err := cache.Rebuild(ctx, []CachedScore{
		{PlayerID: 1, Wins: 3},
		{PlayerID: 2, Wins: 1},
		{PlayerID: 3, Wins: 0},
	})
	require.NoError(t, err)

	// When taking a snapshot
	scores, err := cache.Snapshot(ctx)

	// Then members come back ordered by wins descending
	require.NoError(t, err)
	assert.Equal(t, []CachedScore{
		{PlayerID: 1, Wins: 3},
		{PlayerID: 2, Wins: 1},
		{PlayerID: 3, Wins: 0},
	}, scores)
}

func TestLeaderboardCacheIncrementWarm(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()

	require.NoError(t, cache.Rebuild(ctx, []CachedScore{
		{PlayerID: 1, Wins: 2},
		{PlayerID: 2, Wins: 1},
	}))

	// When a player wins twice more
	require.NoError(t, cache.IncrementWins(ctx, 2))
	require.NoError(t, cache.IncrementWins(ctx, 2))

	// Then the ranking reorders
	scores, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	assert.Equal(t, []CachedScore{
		{PlayerID: 2, Wins: 3},
		{PlayerID: 1, Wins: 2},
	}, scores)
}

func TestLeaderboardCacheIncrementColdIsNoop(t *testing.T) {
	cache := setupCache(t)
	ctx := context.Background()

	// When incrementing before any rebuild
	require.NoError(t, cache.IncrementWins(ctx, 7))

	// Then the cache stays cold instead of trusting a lone increment
	scores, err := cache.Snapshot(ctx)
	require.NoError(t, err)
	assert.Nil(t, scores)
}

func TestLeaderboardCacheIncrementAcrossExpiry(t *testing.T) {
	client := setupCacheClient(t)
	ctx := context.Background()

	// A short TTL makes the set expire while increments are in flight. No
	// increment may land on the far side of the expiry and bring the set
	// back without a TTL.
	cache := &redisLeaderboardCache{rdb: client, ttl: 50 * time.Millisecond}

	for round := 0; round < 12; round++ {
		require.NoError(t, cache.Rebuild(ctx, []CachedScore{
			{PlayerID: 1, Wins: 5},
			{PlayerID: 2, Wins: 3},
		}))

		deadline := time.Now().Add(150 * time.Millisecond)
		for time.Now().Before(deadline) {
			require.NoError(t, cache.IncrementWins(ctx, 2))
		}

		exists, err := client.Exists(ctx, leaderboardKey).Result()
		require.NoError(t, err)
		require.Zero(t, exists, "expired leaderboard set came back")

		scores, err := cache.Snapshot(ctx)
		require.NoError(t, err)
		require.Nil(t, scores, "snapshot after expiry must read cold")
	}
}
