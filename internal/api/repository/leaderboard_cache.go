package repository

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"go.opentelemetry.io/otel"
)

var cacheTracer = otel.Tracer("repository.leaderboard")

const (
	leaderboardKey = "leaderboard:wins"
	leaderboardTTL = 10 * time.Minute
)

// incrWinsScript bumps a member's score only while the sorted set still
// exists. Checking and bumping run as one script so an expiry cannot land
// between them and recreate the set without a TTL.
var incrWinsScript = redis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return redis.call("ZINCRBY", KEYS[1], ARGV[1], ARGV[2])
end
return false
`)

// CachedScore is one member of the cached leaderboard sorted set.
type CachedScore struct {
	PlayerID int64
	Wins     int64
}

// LeaderboardCache keeps a derived copy of the win counts in a Redis sorted
// set. SQL stays authoritative: the cache is rebuilt on cold reads and
// nudged forward when a game completes.
type LeaderboardCache interface {
	Snapshot(ctx context.Context) ([]CachedScore, error)
	Rebuild(ctx context.Context, scores []CachedScore) error
	IncrementWins(ctx context.Context, playerID int64) error
}

type redisLeaderboardCache struct {
	rdb *redis.Client
	ttl time.Duration
}

// NewLeaderboardCache creates a Redis-backed LeaderboardCache.
func NewLeaderboardCache(rdb *redis.Client) LeaderboardCache {
	return &redisLeaderboardCache{rdb: rdb, ttl: leaderboardTTL}
}

// Snapshot returns the cached scores ordered by wins descending, or nil when
// the cache is cold.
func (r *redisLeaderboardCache) Snapshot(ctx context.Context) ([]CachedScore, error) {
	ctx, span := cacheTracer.Start(ctx, "LeaderboardCache.Snapshot")
	defer span.End()

	members, err := r.rdb.ZRevRangeWithScores(ctx, leaderboardKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read leaderboard cache: %w", err)
	}
	if len(members) == 0 {
		return nil, nil
	}

	scores := make([]CachedScore, 0, len(members))
	for _, member := range members {
		raw, ok := member.Member.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected leaderboard member type %T", member.Member)
		}
		id, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("corrupt leaderboard member %q: %w", raw, err)
		}
		scores = append(scores, CachedScore{PlayerID: id, Wins: int64(member.Score)})
	}
	return scores, nil
}

// Rebuild replaces the cached set wholesale and refreshes its TTL.
func (r *redisLeaderboardCache) Rebuild(ctx context.Context, scores []CachedScore) error {
	ctx, span := cacheTracer.Start(ctx, "LeaderboardCache.Rebuild")
	defer span.End()

	pipe := r.rdb.TxPipeline()
	pipe.Del(ctx, leaderboardKey)
	if len(scores) > 0 {
		members := make([]*redis.Z, 0, len(scores))
		for _, score := range scores {
			members = append(members, &redis.Z{
				Score:  float64(score.Wins),
				Member: strconv.FormatInt(score.PlayerID, 10),
			})
		}
		pipe.ZAdd(ctx, leaderboardKey, members...)
	}
	pipe.PExpire(ctx, leaderboardKey, r.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to rebuild leaderboard cache: %w", err)
	}
	return nil
}

// IncrementWins bumps a player's cached score. A cold cache is left cold so
// the next read rebuilds it from SQL instead of trusting a lone increment.
func (r *redisLeaderboardCache) IncrementWins(ctx context.Context, playerID int64) error {
	ctx, span := cacheTracer.Start(ctx, "LeaderboardCache.IncrementWins")
	defer span.End()

	// The script answers redis.Nil when the set is cold; that is the no-op.
	err := incrWinsScript.Run(ctx, r.rdb, []string{leaderboardKey}, 1, strconv.FormatInt(playerID, 10)).Err()
	if err != nil && !errors.Is(err, redis.Nil) {
		return fmt.Errorf("failed to increment cached wins: %w", err)
	}
	return nil
}
