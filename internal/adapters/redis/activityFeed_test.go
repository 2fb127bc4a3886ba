package redis

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"devblog/internal/core/activity"

	"github.com/alicebob/miniredis/v2"
	"github.com/go-redis/redis/v8"
)

func newTestFeed(t *testing.T, maxSize int64) (*ActivityFeedRedis, *redis.Client) {
	t.Helper()
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr()})
	t.Cleanup(func() { client.Close() })
	return NewActivityFeedRedis(client, maxSize), client
}

func TestActivityFeedRecordTrims(t *testing.T) {
	ctx := context.Background()
	feed, client := newTestFeed(t, 2)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	batch := []*activity.Activity{
		activity.New(1, activity.ActionCreated, "one", "a", base),
		activity.New(2, activity.ActionCreated, "two", "a", base.Add(time.Second)),
		activity.New(2, activity.ActionDeleted, "two", "a", base.Add(2*time.Second)),
	}
	if err := feed.Record(ctx, batch); err != nil {
		t.Fatalf("Record: %v", err)
	}

	members, err := client.ZRevRange(ctx, FeedKey, 0, -1).Result()
	if err != nil {
		t.Fatalf("ZRevRange: %v", err)
	}
	if len(members) != 2 {
		t.Fatalf("feed size = %d, want 2", len(members))
	}
	var newest, oldest feedEntry
	if err := json.Unmarshal([]byte(members[0]), &newest); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if err := json.Unmarshal([]byte(members[1]), &oldest); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if newest.Action != "deleted" || newest.PostID != 2 {
		t.Fatalf("newest entry = %+v", newest)
	}
	if oldest.Action != "created" || oldest.PostID != 2 {
		t.Fatalf("oldest kept entry = %+v", oldest)
	}
}

func TestActivityFeedTrimsAcrossBatches(t *testing.T) {
	ctx := context.Background()
	feed, client := newTestFeed(t, 3)

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 5; i++ {
		a := activity.New(int64(i+1), activity.ActionCreated, "post", "a", base.Add(time.Duration(i)*time.Second))
		if err := feed.Record(ctx, []*activity.Activity{a}); err != nil {
			t.Fatalf("Record #%d: %v", i, err)
		}
	}

	members, err := client.ZRange(ctx, FeedKey, 0, -1).Result()
	if err != nil {
		t.Fatalf("ZRange: %v", err)
	}
	if len(members) != 3 {
		t.Fatalf("feed size = %d, want 3", len(members))
	}
	var first feedEntry
	if err := json.Unmarshal([]byte(members[0]), &first); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if first.PostID != 3 {
		t.Fatalf("oldest kept post = %d, want 3", first.PostID)
	}
}

func TestActivityFeedEmptyBatchIsNoop(t *testing.T) {
	ctx := context.Background()
	feed, client := newTestFeed(t, 2)
	if err := feed.Record(ctx, nil); err != nil {
		t.Fatalf("Record(nil): %v", err)
	}
	if n, err := client.Exists(ctx, FeedKey).Result(); err != nil || n != 0 {
		t.Fatalf("Exists = %d, %v; want 0", n, err)
	}
}

func TestActivityFeedReportsServerErrors(t *testing.T) {
	srv := miniredis.RunT(t)
	client := redis.NewClient(&redis.Options{Addr: srv.Addr(), MaxRetries: -1})
	t.Cleanup(func() { client.Close() })
	feed := NewActivityFeedRedis(client, 2)
	srv.Close()

	a := activity.New(1, activity.ActionCreated, "one", "a", time.Now())
	if err := feed.Record(context.Background(), []*activity.Activity{a}); err == nil {
		t.Fatal("expected an error once the server is gone")
	}
}
