package redis

import (
	"context"
	"encoding/json"
	"fmt"

	"devblog/internal/core/activity"

	"github.com/go-redis/redis/v8"
)

// FeedKey holds the recent activities as a sorted set scored by unix time.
const FeedKey = "activity:recent"

// ActivityFeedRedis keeps a capped feed of recent activities.
type ActivityFeedRedis struct {
	Client  *redis.Client
	MaxSize int64
}

func NewActivityFeedRedis(client *redis.Client, maxSize int64) *ActivityFeedRedis {
	return &ActivityFeedRedis{
		Client:  client,
		MaxSize: maxSize,
	}
}

func (r *ActivityFeedRedis) Name() string { return "redis" }

type feedEntry struct {
	ID         string `json:"id"`
	PostID     int64  `json:"post_id"`
	Action     string `json:"action"`
	Title      string `json:"title"`
	Author     string `json:"author"`
	OccurredAt int64  `json:"occurred_at"`
}

// Record adds the batch to the feed and trims it to MaxSize entries.
func (r *ActivityFeedRedis) Record(ctx context.Context, batch []*activity.Activity) error {
	if len(batch) == 0 {
		return nil
	}
	members := make([]*redis.Z, 0, len(batch))
	for _, a := range batch {
		b, err := json.Marshal(feedEntry{
			ID:         a.ID.String(),
			PostID:     a.PostID,
			Action:     string(a.Action),
			Title:      a.Title,
			Author:     a.Author,
			OccurredAt: a.OccurredAt.Unix(),
		})
		if err != nil {
			return fmt.Errorf("encode activity %s: %w", a.ID, err)
		}
		members = append(members, &redis.Z{
			Score:  float64(a.OccurredAt.UnixNano()) / 1e9,
			Member: string(b),
		})
	}

	pipe := r.Client.TxPipeline()
	pipe.ZAdd(ctx, FeedKey, members...)
	if r.MaxSize > 0 {
		pipe.ZRemRangeByRank(ctx, FeedKey, 0, -r.MaxSize-1)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("push activities to %s: %w", FeedKey, err)
	}
	return nil
}
