package cache

import (
	"context"
	"fmt"
	"time"

	"VidTube.com/config"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/redis/go-redis/v9"
)

var Client *redis.Client

func Init() {
	Client = redis.NewClient(&redis.Options{
		Addr:     config.ConfigInfo.Redis.Addr,
		Password: config.ConfigInfo.Redis.Password,
	})

	if _, err := Client.Ping(context.Background()).Result(); err != nil {
		hlog.Info("engagement cache ping failed: ", err)
	}
}

// Cache key layouts. Counters are best effort: the relational rows stay
// the source of truth and the sync worker reconciles the denormalized
// columns from them.
const (
	VideoLikeCountKey   = "video:like_count:%d"
	CommentLikeCountKey = "comment:like_count:%d"
	SubscriberCountKey  = "channel:subscriber_count:%d"
	VideoCommentPageKey = "video:comments:%d:page:%d"

	counterExpire = time.Hour
)

// EngagementCache keeps hot engagement counters in redis.
type EngagementCache struct {
	client *redis.Client
}

func NewEngagementCache(client *redis.Client) *EngagementCache {
	return &EngagementCache{client: client}
}

func (ec *EngagementCache) IncrVideoLikeCount(ctx context.Context, videoId, delta int64) error {
	key := fmt.Sprintf(VideoLikeCountKey, videoId)
	if err := ec.client.IncrBy(ctx, key, delta).Err(); err != nil {
		return err
	}
	return ec.client.Expire(ctx, key, counterExpire).Err()
}

func (ec *EngagementCache) IncrCommentLikeCount(ctx context.Context, commentId, delta int64) error {
	key := fmt.Sprintf(CommentLikeCountKey, commentId)
	if err := ec.client.IncrBy(ctx, key, delta).Err(); err != nil {
		return err
	}
	return ec.client.Expire(ctx, key, counterExpire).Err()
}

func (ec *EngagementCache) IncrSubscriberCount(ctx context.Context, channelId, delta int64) error {
	key := fmt.Sprintf(SubscriberCountKey, channelId)
	if err := ec.client.IncrBy(ctx, key, delta).Err(); err != nil {
		return err
	}
	return ec.client.Expire(ctx, key, counterExpire).Err()
}

// GetVideoLikeCount returns the cached count; found=false means the
// caller should fall through to the store.
func (ec *EngagementCache) GetVideoLikeCount(ctx context.Context, videoId int64) (int64, bool, error) {
	key := fmt.Sprintf(VideoLikeCountKey, videoId)
	count, err := ec.client.Get(ctx, key).Int64()
	if err == redis.Nil {
		return 0, false, nil
	}
	if err != nil {
		return 0, false, err
	}
	return count, true, nil
}

func (ec *EngagementCache) SetVideoLikeCount(ctx context.Context, videoId, count int64) error {
	key := fmt.Sprintf(VideoLikeCountKey, videoId)
	return ec.client.Set(ctx, key, count, counterExpire).Err()
}

// DirtyVideoIds lists video ids whose like counters were touched since
// the last sync sweep.
func (ec *EngagementCache) DirtyVideoIds(ctx context.Context) ([]int64, error) {
	ids := make([]int64, 0)
	iter := ec.client.Scan(ctx, 0, "video:like_count:*", 100).Iterator()
	for iter.Next(ctx) {
		var id int64
		if _, err := fmt.Sscanf(iter.Val(), VideoLikeCountKey, &id); err == nil {
			ids = append(ids, id)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (ec *EngagementCache) InvalidateCommentPages(ctx context.Context, videoId int64) {
	iter := ec.client.Scan(ctx, 0, fmt.Sprintf("video:comments:%d:page:*", videoId), 100).Iterator()
	for iter.Next(ctx) {
		if err := ec.client.Del(ctx, iter.Val()).Err(); err != nil {
			hlog.Warnf("failed to drop comment page cache %s: %v", iter.Val(), err)
		}
	}
}
