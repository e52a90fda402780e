package service

import (
	"context"
	"encoding/json"

	"club-elections/internal/domain"
	"club-elections/pkg/redis"

	"go.uber.org/zap"
)

// CacheService fronts the correctness-neutral caches: a short-TTL copy of
// ballot tallies and a has-voted marker. All methods are safe to call with a
// nil redis client and every cache failure falls through to Postgres.
type CacheService struct {
	redis  *redis.Client
	logger *zap.Logger
}

func NewCacheService(redisClient *redis.Client, logger *zap.Logger) *CacheService {
	return &CacheService{
		redis:  redisClient,
		logger: logger,
	}
}

// HasVotedMarker reports whether the member's vote on the ballot is cached.
// A miss means nothing; a hit saves the Postgres round trip.
func (c *CacheService) HasVotedMarker(ctx context.Context, memberID, ballotID int) bool {
	if c.redis == nil {
		return false
	}

	key := c.redis.KeyBuilder.KeyMemberVoted(memberID, ballotID)
	exists, err := c.redis.Exists(ctx, key)
	if err != nil {
		c.logger.Warn("vote marker check failed, falling back to database",
			zap.Int("ballot_id", ballotID),
			zap.Error(err))
		return false
	}
	return exists > 0
}

// MarkVoted records the member's vote marker and drops the cached tally for
// the ballot so the next results read reflects the new vote.
func (c *CacheService) MarkVoted(ctx context.Context, memberID, ballotID int) {
	if c.redis == nil {
		return
	}

	key := c.redis.KeyBuilder.KeyMemberVoted(memberID, ballotID)
	if err := c.redis.Set(ctx, key, "1", redis.TTLMemberVoted); err != nil {
		c.logger.Warn("failed to cache vote marker",
			zap.Int("ballot_id", ballotID),
			zap.Error(err))
	}

	resultsKey := c.redis.KeyBuilder.KeyBallotResults(ballotID)
	if err := c.redis.Delete(ctx, resultsKey); err != nil {
		c.logger.Warn("failed to invalidate cached results",
			zap.Int("ballot_id", ballotID),
			zap.Error(err))
	}
}

// GetResultsWithCache serves ballot results cache-aside: a hit returns the
// cached tally, a miss or any cache error queries the store and repopulates.
func (c *CacheService) GetResultsWithCache(
	ctx context.Context,
	ballotID int,
	dbFallback func(ctx context.Context, ballotID int) (*domain.BallotResults, error),
) (*domain.BallotResults, error) {
	if c.redis == nil {
		return dbFallback(ctx, ballotID)
	}

	key := c.redis.KeyBuilder.KeyBallotResults(ballotID)

	cached, err := c.redis.Get(ctx, key)
	if err == nil && cached != "" {
		var results domain.BallotResults
		if unmarshalErr := json.Unmarshal([]byte(cached), &results); unmarshalErr == nil {
			c.logger.Debug("results cache hit", zap.Int("ballot_id", ballotID))
			return &results, nil
		}
		c.logger.Warn("results cache corrupted, falling back to database",
			zap.Int("ballot_id", ballotID))
	} else if err != nil && !redis.IsNil(err) {
		c.logger.Warn("results cache error, falling back to database",
			zap.Int("ballot_id", ballotID),
			zap.Error(err))
	}

	results, err := dbFallback(ctx, ballotID)
	if err != nil {
		return nil, err
	}

	if data, marshalErr := json.Marshal(results); marshalErr == nil {
		if setErr := c.redis.Set(ctx, key, data, redis.TTLBallotResults); setErr != nil {
			c.logger.Warn("failed to cache results",
				zap.Int("ballot_id", ballotID),
				zap.Error(setErr))
		}
	}

	return results, nil
}
