// Package cache keeps per-user visible-board listings in Redis.
package cache

import (
	"context"
	"encoding/json"
	"strconv"
	"time"

	"github.com/go-redis/redis/v8"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"goal-board-api/internal/domain"
)

// BoardPage is one cached listing result
type BoardPage struct {
	Boards []*domain.Board `json:"boards"`
	Total  int64           `json:"total"`
}

// BoardListCache caches ListVisible results keyed by user, generation and
// canonical query.
//
// Callers read the generation before loading from the database and pass it
// to Set. Evict bumps the generation, so a listing loaded before an eviction
// is stored under a generation nobody reads anymore.
type BoardListCache interface {
	Generation(ctx context.Context, userID uuid.UUID) (int64, bool)
	Get(ctx context.Context, userID uuid.UUID, gen int64, queryKey string) (*BoardPage, bool)
	Set(ctx context.Context, userID uuid.UUID, gen int64, queryKey string, page *BoardPage)
	Evict(ctx context.Context, userIDs ...uuid.UUID)
}

// ErrorRecorder receives cache backend failures
type ErrorRecorder interface {
	RecordCacheError(err error)
}

// RedisBoardCache stores every listing of a user as one field of a per-user
// hash, so eviction is a single DEL per user
type RedisBoardCache struct {
	client   *redis.Client
	ttl      time.Duration
	recorder ErrorRecorder
	logger   *zap.Logger
}

// NewRedisBoardCache creates a Redis-backed cache. A zero ttl disables writes.
// recorder may be nil.
func NewRedisBoardCache(client *redis.Client, ttl time.Duration, recorder ErrorRecorder, logger *zap.Logger) *RedisBoardCache {
	if ttl < 0 {
		ttl = 0
	}
	return &RedisBoardCache{client: client, ttl: ttl, recorder: recorder, logger: logger}
}

// Generation returns the current listing generation of a user. ok is false
// when Redis cannot be reached, in which case the cache must be bypassed.
func (c *RedisBoardCache) Generation(ctx context.Context, userID uuid.UUID) (int64, bool) {
	gen, err := c.client.Get(ctx, genKey(userID)).Int64()
	if err == redis.Nil {
		return 0, true
	}
	if err != nil {
		c.fail("Board cache generation read failed", err, zap.String("user_id", userID.String()))
		return 0, false
	}
	return gen, true
}

func (c *RedisBoardCache) Get(ctx context.Context, userID uuid.UUID, gen int64, queryKey string) (*BoardPage, bool) {
	data, err := c.client.HGet(ctx, boardsKey(userID), field(gen, queryKey)).Bytes()
	if err != nil {
		if err != redis.Nil {
			c.fail("Board cache read failed", err, zap.String("user_id", userID.String()))
			// drop whatever is there and fall back to the database
			_ = c.client.Del(ctx, boardsKey(userID)).Err()
		}
		return nil, false
	}

	var page BoardPage
	if err := json.Unmarshal(data, &page); err != nil {
		_ = c.client.Del(ctx, boardsKey(userID)).Err()
		return nil, false
	}
	return &page, true
}

func (c *RedisBoardCache) Set(ctx context.Context, userID uuid.UUID, gen int64, queryKey string, page *BoardPage) {
	if c.ttl == 0 || page == nil {
		return
	}
	data, err := json.Marshal(page)
	if err != nil {
		return
	}

	key := boardsKey(userID)
	pipe := c.client.TxPipeline()
	pipe.HSet(ctx, key, field(gen, queryKey), data)
	pipe.Expire(ctx, key, c.ttl)
	if _, err := pipe.Exec(ctx); err != nil {
		c.fail("Board cache write failed", err, zap.String("user_id", userID.String()))
	}
}

// Evict drops every cached listing of the given users and moves them to a
// new generation. The generation key has no TTL so it never goes backwards.
func (c *RedisBoardCache) Evict(ctx context.Context, userIDs ...uuid.UUID) {
	if len(userIDs) == 0 {
		return
	}
	pipe := c.client.TxPipeline()
	for _, id := range userIDs {
		pipe.Del(ctx, boardsKey(id))
		pipe.Incr(ctx, genKey(id))
	}
	if _, err := pipe.Exec(ctx); err != nil {
		c.fail("Board cache eviction failed", err, zap.Int("users", len(userIDs)))
	}
}

func (c *RedisBoardCache) fail(msg string, err error, fields ...zap.Field) {
	if c.recorder != nil {
		c.recorder.RecordCacheError(err)
	}
	c.logger.Warn(msg, append(fields, zap.Error(err))...)
}

// Noop is used when Redis is not configured
type Noop struct{}

func (Noop) Generation(context.Context, uuid.UUID) (int64, bool)               { return 0, false }
func (Noop) Get(context.Context, uuid.UUID, int64, string) (*BoardPage, bool) { return nil, false }
func (Noop) Set(context.Context, uuid.UUID, int64, string, *BoardPage)         {}
func (Noop) Evict(context.Context, ...uuid.UUID)                              {}

func boardsKey(userID uuid.UUID) string {
	return "goal-board:boards:" + userID.String()
}

func genKey(userID uuid.UUID) string {
	return "goal-board:boards-gen:" + userID.String()
}

func field(gen int64, queryKey string) string {
	if queryKey == "" {
		queryKey = "_"
	}
	return strconv.FormatInt(gen, 10) + "|" + queryKey
}
