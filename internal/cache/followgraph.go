package cache

import (
	"context"
	"fmt"
	"strconv"
	"time"
)

const (
	followingKeyPrefix = "following:%d"

	// FollowingTTL bounds staleness if an invalidation is ever missed.
	FollowingTTL = 5 * time.Minute
)

// FollowingKey returns the cache key holding the set of IDs a user follows.
func FollowingKey(userID uint) string {
	return fmt.Sprintf(followingKeyPrefix, userID)
}

// GetFollowedIDs reads the cached followed-id set for a user. The second
// return value is false on a miss or when the cache is unavailable.
func GetFollowedIDs(ctx context.Context, userID uint) ([]uint, bool) {
	if client == nil {
		return nil, false
	}
	members, err := client.SMembers(ctx, FollowingKey(userID)).Result()
	if err != nil || len(members) == 0 {
		return nil, false
	}
	ids := make([]uint, 0, len(members))
	for _, m := range members {
		// the sentinel marks a cached-but-empty set
		if m == "-" {
			continue
		}
		id, err := strconv.ParseUint(m, 10, 64)
		if err != nil {
			return nil, false
		}
		ids = append(ids, uint(id))
	}
	return ids, true
}

// SetFollowedIDs caches the followed-id set for a user. An empty set is
// cached with a sentinel member so misses and empty sets stay distinguishable.
func SetFollowedIDs(ctx context.Context, userID uint, ids []uint) {
	if client == nil {
		return
	}
	key := FollowingKey(userID)
	members := make([]interface{}, 0, len(ids)+1)
	members = append(members, "-")
	for _, id := range ids {
		members = append(members, strconv.FormatUint(uint64(id), 10))
	}
	pipe := client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SAdd(ctx, key, members...)
	pipe.Expire(ctx, key, FollowingTTL)
	_, _ = pipe.Exec(ctx)
}

// InvalidateFollowing drops the cached followed-id set for a user. Called on
// every follow/unfollow and when the user is destroyed.
func InvalidateFollowing(ctx context.Context, userID uint) {
	if client != nil {
		client.Del(ctx, FollowingKey(userID))
	}
}
