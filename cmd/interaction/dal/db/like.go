package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// InsertVideoLikeIfAbsent creates the like record for (userId, videoId).
// The unique pair index makes the insert conditional: a duplicate-key
// error means another request already holds the like, which is reported
// as created=false, not a failure.
func InsertVideoLikeIfAbsent(ctx context.Context, userId, videoId int64) (bool, error) {
	like := &model.VideoLike{
		VideoLikesId: utils.GenerateID(),
		UserId:       userId,
		VideoId:      videoId,
		CreatedAt:    time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, errors.Wrapf(err, "InsertVideoLikeIfAbsent failed, user:%d video:%d", userId, videoId)
	}
	return true, nil
}

// DeleteVideoLikeIfPresent removes the like record and reports whether a
// row actually existed.
func DeleteVideoLikeIfPresent(ctx context.Context, userId, videoId int64) (bool, error) {
	result := DB.WithContext(ctx).Where("user_id = ? And video_id = ?", userId, videoId).Delete(&model.VideoLike{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "DeleteVideoLikeIfPresent failed, user:%d video:%d", userId, videoId)
	}
	return result.RowsAffected > 0, nil
}

func InsertCommentLikeIfAbsent(ctx context.Context, userId, commentId int64) (bool, error) {
	like := &model.CommentLike{
		CommentLikesId: utils.GenerateID(),
		UserId:         userId,
		CommentId:      commentId,
		CreatedAt:      time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Create(like).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, errors.Wrapf(err, "InsertCommentLikeIfAbsent failed, user:%d comment:%d", userId, commentId)
	}
	return true, nil
}

func DeleteCommentLikeIfPresent(ctx context.Context, userId, commentId int64) (bool, error) {
	result := DB.WithContext(ctx).Where("user_id = ? And comment_id = ?", userId, commentId).Delete(&model.CommentLike{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "DeleteCommentLikeIfPresent failed, user:%d comment:%d", userId, commentId)
	}
	return result.RowsAffected > 0, nil
}

func IsVideoLikedByUser(ctx context.Context, userId, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).Where("user_id = ? And video_id = ?", userId, videoId).Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetVideoLikeCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func GetCommentLikeCount(ctx context.Context, commentId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.CommentLike{}).Where("comment_id = ?", commentId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// GetLikedVideoIdsPaged returns the ids of videos the user has liked,
// newest like first, plus the total number of such likes. The snowflake
// row id gives the page a stable unique order, so pages never repeat or
// drop rows between requests.
func GetLikedVideoIdsPaged(ctx context.Context, userId, pageNum, pageSize int64) (*[]int64, int64, error) {
	list := make([]int64, 0)
	var count int64
	if err := DB.WithContext(ctx).Model(&model.VideoLike{}).Where("user_id = ?", userId).Count(&count).
		Select("video_id").Order("video_likes_id desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).Scan(&list).Error; err != nil {
		return nil, 0, err
	}
	return &list, count, nil
}
