package service

import (
	"context"
	"time"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/mq"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// CounterSyncman reconciles the denormalized counter columns on videos
// from the relational engagement rows. The redis counters are write
// hints only: every sweep recomputes the true counts from the store and
// overwrites both the column and the cache entry.
type CounterSyncman struct {
	ctx          context.Context
	cancel       context.CancelFunc
	cacheManager *cache.EngagementCache
	consumer     *mq.Consumer
	interval     time.Duration
}

func NewCounterSyncman(consumer *mq.Consumer) *CounterSyncman {
	ctx, cancel := context.WithCancel(context.Background())
	return &CounterSyncman{
		ctx:          ctx,
		cancel:       cancel,
		cacheManager: cache.NewEngagementCache(cache.Client),
		consumer:     consumer,
		interval:     30 * time.Second,
	}
}

// Run starts the periodic sweep and, when a consumer is wired, the
// event-driven path that reconciles a video right after its toggle.
func (sm *CounterSyncman) Run() {
	go func() {
		ticker := time.NewTicker(sm.interval)
		defer ticker.Stop()
		for {
			select {
			case <-sm.ctx.Done():
				hlog.Info("counter sync stopped")
				return
			case <-ticker.C:
				if err := sm.syncDirtyVideos(); err != nil {
					hlog.Error("counter sync sweep failed: ", err)
				}
			}
		}
	}()

	if sm.consumer != nil {
		go func() {
			err := sm.consumer.ConsumeLikeEvents(sm.ctx, func(ctx context.Context, event *mq.LikeEvent) error {
				if event.VideoID > 0 {
					return sm.reconcileVideo(ctx, event.VideoID)
				}
				return nil
			})
			if err != nil && sm.ctx.Err() == nil {
				hlog.Error("like event consumer exited: ", err)
			}
		}()
	}
}

func (sm *CounterSyncman) Stop() {
	sm.cancel()
}

func (sm *CounterSyncman) syncDirtyVideos() error {
	videoIds, err := sm.cacheManager.DirtyVideoIds(sm.ctx)
	if err != nil {
		return err
	}
	for _, videoId := range videoIds {
		if err := sm.reconcileVideo(sm.ctx, videoId); err != nil {
			hlog.Errorf("failed to reconcile counters for video %d: %v", videoId, err)
		}
	}
	return nil
}

// reconcileVideo recomputes like and comment counts from the rows and
// pushes them into the video columns and the cache.
func (sm *CounterSyncman) reconcileVideo(ctx context.Context, videoId int64) error {
	likeCount, err := interactiondb.GetVideoLikeCount(ctx, videoId)
	if err != nil {
		return err
	}
	commentCount, err := interactiondb.GetVideoCommentCount(ctx, videoId)
	if err != nil {
		return err
	}
	if err := db.UpdateVideoLikeCount(ctx, videoId, likeCount); err != nil {
		return err
	}
	if err := db.UpdateVideoCommentCount(ctx, videoId, commentCount); err != nil {
		return err
	}
	return sm.cacheManager.SetVideoLikeCount(ctx, videoId, likeCount)
}
