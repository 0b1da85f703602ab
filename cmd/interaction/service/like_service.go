package service

import (
	"context"
	"time"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type LikeActionRequest struct {
	UserId    int64
	VideoId   int64
	CommentId int64
}

type LikeActionResponse struct {
	Liked bool `json:"liked"`
}

type LikedVideosResponse struct {
	Videos []*model.Video `json:"videos"`
	Total  int64          `json:"total"`
}

// LikeActionService implements the like toggle: presence of the like row
// is the state, the operation flips it.
type LikeActionService struct {
	ctx          context.Context
	cacheManager *cache.EngagementCache
	producer     *mq.Producer
}

func NewLikeActionService(ctx context.Context, producer *mq.Producer) *LikeActionService {
	return &LikeActionService{
		ctx:          ctx,
		cacheManager: cache.NewEngagementCache(cache.Client),
		producer:     producer,
	}
}

func (service *LikeActionService) LikeAction(ctx context.Context, req *LikeActionRequest) (*LikeActionResponse, error) {
	var liked bool
	var err error

	switch {
	case utils.IsValidID(req.VideoId) && req.CommentId == 0:
		liked, err = service.toggleVideoLike(ctx, req.UserId, req.VideoId)
	case utils.IsValidID(req.CommentId) && req.VideoId == 0:
		liked, err = service.toggleCommentLike(ctx, req.UserId, req.CommentId)
	default:
		return nil, errno.ParamErr.WithMessage("Exactly one of video_id and comment_id must be a valid id")
	}
	if err != nil {
		hlog.CtxErrorf(ctx, "Failed to handle like action: %v", err)
		return nil, err
	}

	return &LikeActionResponse{Liked: liked}, nil
}

// toggleVideoLike serializes per (user, video) pair and flips the record.
// The unique index on the pair is the hard invariant; the lock only keeps
// concurrent duplicate requests from answering inconsistently.
func (service *LikeActionService) toggleVideoLike(ctx context.Context, userId, videoId int64) (bool, error) {
	if lock.Ready() {
		mutex := lock.PairMutex("video_like", userId, videoId)
		if err := mutex.Lock(); err != nil {
			return false, errno.ServiceErr.WithMessage("Like is being processed, please retry")
		}
		defer func() {
			if _, err := mutex.Unlock(); err != nil {
				hlog.CtxWarnf(ctx, "failed to release like lock: %v", err)
			}
		}()
	}

	deleted, err := db.DeleteVideoLikeIfPresent(ctx, userId, videoId)
	if err != nil {
		return false, err
	}

	liked := false
	if !deleted {
		if _, err := db.InsertVideoLikeIfAbsent(ctx, userId, videoId); err != nil {
			return false, err
		}
		liked = true
	}

	service.afterVideoToggle(ctx, userId, videoId, liked)
	return liked, nil
}

func (service *LikeActionService) toggleCommentLike(ctx context.Context, userId, commentId int64) (bool, error) {
	if lock.Ready() {
		mutex := lock.PairMutex("comment_like", userId, commentId)
		if err := mutex.Lock(); err != nil {
			return false, errno.ServiceErr.WithMessage("Like is being processed, please retry")
		}
		defer func() {
			if _, err := mutex.Unlock(); err != nil {
				hlog.CtxWarnf(ctx, "failed to release like lock: %v", err)
			}
		}()
	}

	deleted, err := db.DeleteCommentLikeIfPresent(ctx, userId, commentId)
	if err != nil {
		return false, err
	}

	liked := false
	if !deleted {
		if _, err := db.InsertCommentLikeIfAbsent(ctx, userId, commentId); err != nil {
			return false, err
		}
		liked = true
	}

	delta := int64(-1)
	action := "unlike"
	if liked {
		delta = 1
		action = "like"
	}
	if service.cacheManager != nil {
		if err := service.cacheManager.IncrCommentLikeCount(ctx, commentId, delta); err != nil {
			hlog.CtxWarnf(ctx, "failed to bump comment like counter: %v", err)
		}
	}
	if service.producer != nil {
		service.producer.PublishLikeEvent(ctx, &mq.LikeEvent{
			EventID:    uuid.New().String(),
			UserID:     userId,
			CommentID:  commentId,
			ActionType: action,
			Timestamp:  time.Now().Unix(),
		})
	}
	return liked, nil
}

func (service *LikeActionService) afterVideoToggle(ctx context.Context, userId, videoId int64, liked bool) {
	delta := int64(-1)
	action := "unlike"
	if liked {
		delta = 1
		action = "like"
	}
	if service.cacheManager != nil {
		if err := service.cacheManager.IncrVideoLikeCount(ctx, videoId, delta); err != nil {
			hlog.CtxWarnf(ctx, "failed to bump video like counter: %v", err)
		}
	}
	if service.producer != nil {
		service.producer.PublishLikeEvent(ctx, &mq.LikeEvent{
			EventID:    uuid.New().String(),
			UserID:     userId,
			VideoID:    videoId,
			ActionType: action,
			Timestamp:  time.Now().Unix(),
		})
	}
}

// GetLikedVideos returns the videos the user has liked. Order follows the
// like rows, not the videos table, so the fetched videos are reassembled
// into the id order the like page produced.
func (service *LikeActionService) GetLikedVideos(ctx context.Context, userId, pageNum, pageSize int64) (*LikedVideosResponse, error) {
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	ids, total, err := db.GetLikedVideoIdsPaged(ctx, userId, pageNum, pageSize)
	if err != nil {
		return nil, err
	}
	videos, err := videodb.GetVideosByIds(ctx, *ids)
	if err != nil {
		return nil, err
	}
	return &LikedVideosResponse{Videos: orderVideosByIds(*ids, videos), Total: total}, nil
}

// orderVideosByIds arranges videos to match the given id order; ids with
// no surviving video row are skipped.
func orderVideosByIds(ids []int64, videos []*model.Video) []*model.Video {
	byId := make(map[int64]*model.Video, len(videos))
	for _, video := range videos {
		byId[video.VideoId] = video
	}
	ordered := make([]*model.Video, 0, len(ids))
	for _, id := range ids {
		if video, ok := byId[id]; ok {
			ordered = append(ordered, video)
		}
	}
	return ordered
}
