// Package cache holds the optional Redis layer. The service degrades
// to direct Postgres queries when no Redis is configured.
package cache

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/BruinGrowly/LJPW-Physics-sub001/internal/domain"
	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

const (
	standingsKey = "ljpw:standings"
	detailsKey   = "ljpw:standings:details"
)

// RankingCache keeps the harmony leaderboard in a Redis ZSET so reads
// don't hit Postgres on every request. Scores order the set; the full
// standing rows live in a companion hash.
type RankingCache struct {
	client *redis.Client
}

func NewRankingCache(client *redis.Client) *RankingCache {
	return &RankingCache{client: client}
}

// Replace atomically swaps the cached leaderboard for a fresh one.
func (c *RankingCache) Replace(ctx context.Context, standings []domain.SubjectStanding) error {
	pipe := c.client.TxPipeline()
	pipe.Del(ctx, standingsKey, detailsKey)

	for _, st := range standings {
		member := st.SubjectID.String()
		pipe.ZAdd(ctx, standingsKey, redis.Z{Score: st.Harmony, Member: member})

		payload, err := json.Marshal(st)
		if err != nil {
			return fmt.Errorf("marshal standing: %w", err)
		}
		pipe.HSet(ctx, detailsKey, member, payload)
	}

	_, err := pipe.Exec(ctx)
	return err
}

// Top returns the highest-harmony subjects, rank 1 first.
func (c *RankingCache) Top(ctx context.Context, limit int) ([]domain.SubjectStanding, error) {
	if limit <= 0 {
		limit = 20
	}

	members, err := c.client.ZRevRange(ctx, standingsKey, 0, int64(limit-1)).Result()
	if err != nil {
		return nil, err
	}
	if len(members) == 0 {
		return nil, nil
	}

	raw, err := c.client.HMGet(ctx, detailsKey, members...).Result()
	if err != nil {
		return nil, err
	}

	standings := make([]domain.SubjectStanding, 0, len(members))
	for i, v := range raw {
		s, ok := v.(string)
		if !ok {
			continue
		}
		var st domain.SubjectStanding
		if err := json.Unmarshal([]byte(s), &st); err != nil {
			return nil, fmt.Errorf("unmarshal standing: %w", err)
		}
		st.Rank = i + 1
		standings = append(standings, st)
	}
	return standings, nil
}

// Rank returns a subject's 1-indexed position, or -1 when absent.
func (c *RankingCache) Rank(ctx context.Context, subjectID uuid.UUID) (int64, error) {
	rank, err := c.client.ZRevRank(ctx, standingsKey, subjectID.String()).Result()
	if err == redis.Nil {
		return -1, nil
	}
	if err != nil {
		return -1, err
	}
	return rank + 1, nil
}
