package utils

import (
	"context"

	"github.com/redis/go-redis/v9"
)

// CacheInvalidator purges cached GET responses after a mutation. Keys are
// grouped by namespace so a mutation only clears the feeds it can affect.
type CacheInvalidator struct{ rdb *redis.Client }

func NewCacheInvalidator(rdb *redis.Client) *CacheInvalidator {
	return &CacheInvalidator{rdb: rdb}
}

// PurgeSchedule clears the schedule and event listings after event mutations.
func (ci *CacheInvalidator) PurgeSchedule(ctx context.Context) {
	ci.purge(ctx, "cache:schedule:*", "cache:events:*")
}

// PurgeAnnouncements clears every role's announcement feed; the feed is
// cached per role, so all variants go at once.
func (ci *CacheInvalidator) PurgeAnnouncements(ctx context.Context) {
	ci.purge(ctx, "cache:announcements:*")
}

// PurgeVenues clears venue listings after the current-venue selection moves.
func (ci *CacheInvalidator) PurgeVenues(ctx context.Context) {
	ci.purge(ctx, "cache:venues:*")
}

func (ci *CacheInvalidator) purge(ctx context.Context, patterns ...string) {
	if ci == nil || ci.rdb == nil {
		return
	}
	for _, pattern := range patterns {
		iter := ci.rdb.Scan(ctx, 0, pattern, 0).Iterator()
		for iter.Next(ctx) {
			_ = ci.rdb.Del(ctx, iter.Val()).Err()
		}
	}
}
