package db

import (
	"context"

	"VidTube.com/cmd/model"
	"github.com/pkg/errors"
)

// VideoFilter narrows the video feed. Zero values mean "no constraint",
// except OnlyPublic which callers set explicitly.
type VideoFilter struct {
	UserId     int64
	Keyword    string
	OnlyPublic bool
}

// sortColumns whitelists sortable fields so that request input never
// reaches the ORDER BY clause verbatim.
var sortColumns = map[string]string{
	"created_at":  "created_at",
	"duration":    "duration",
	"visit_count": "visit_count",
	"likes_count": "likes_count",
}

// SortColumn resolves a requested sort field to a safe column, falling
// back to creation time.
func SortColumn(field string) string {
	if col, ok := sortColumns[field]; ok {
		return col
	}
	return "created_at"
}

// VideoList applies the filters conjunctively, counts the matches store
// side and returns one page.
func VideoList(ctx context.Context, filter VideoFilter, sortField, sortOrder string, pageNum, pageSize int64) ([]*model.Video, int64, error) {
	videos := make([]*model.Video, 0, pageSize)
	var count int64

	query := DB.WithContext(ctx).Model(&model.Video{})
	if filter.OnlyPublic {
		query = query.Where("is_public = ?", true)
	}
	if filter.UserId > 0 {
		query = query.Where("user_id = ?", filter.UserId)
	}
	if filter.Keyword != "" {
		query = query.Where("title like ? Or description like ?", "%"+filter.Keyword+"%", "%"+filter.Keyword+"%")
	}

	if err := query.Count(&count).Error; err != nil {
		return nil, 0, errors.Wrap(err, "VideoList count failed")
	}

	order := SortColumn(sortField) + " desc"
	if sortOrder == "asc" {
		order = SortColumn(sortField) + " asc"
	}

	if err := query.Order(order).
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Find(&videos).Error; err != nil {
		return nil, 0, errors.Wrap(err, "VideoList failed")
	}
	return videos, count, nil
}

// FindVideo returns the video or gorm.ErrRecordNotFound.
func FindVideo(ctx context.Context, videoId int64) (*model.Video, error) {
	var video model.Video
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).First(&video).Error; err != nil {
		return nil, err
	}
	return &video, nil
}

func CheckVideoExistById(ctx context.Context, videoId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckVideoExistById failed, video:%d", videoId)
	}
	return count > 0, nil
}

func InsertVideo(ctx context.Context, video *model.Video) error {
	if err := DB.WithContext(ctx).Create(video).Error; err != nil {
		return errors.Wrapf(err, "InsertVideo failed, video:%d", video.VideoId)
	}
	return nil
}

// GetVideosByIds fetches the given videos; the caller owns ordering.
func GetVideosByIds(ctx context.Context, videoIds []int64) ([]*model.Video, error) {
	videos := make([]*model.Video, 0, len(videoIds))
	if len(videoIds) == 0 {
		return videos, nil
	}
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id IN (?)", videoIds).Find(&videos).Error; err != nil {
		return nil, err
	}
	return videos, nil
}

func UpdateVideoUrl(ctx context.Context, videoId int64, videoUrl, coverUrl string) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Updates(map[string]interface{}{
		"video_url": videoUrl,
		"cover_url": coverUrl,
	}).Error; err != nil {
		return errors.Wrapf(err, "UpdateVideoUrl failed, video:%d", videoId)
	}
	return nil
}

func UpdateVideoLikeCount(ctx context.Context, videoId, likeCount int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Update("likes_count", likeCount).Error; err != nil {
		return err
	}
	return nil
}

func UpdateVideoCommentCount(ctx context.Context, videoId, commentCount int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Update("comment_count", commentCount).Error; err != nil {
		return err
	}
	return nil
}

func UpdateVideoVisitCount(ctx context.Context, videoId, visitCount int64) error {
	if err := DB.WithContext(ctx).Model(&model.Video{}).Where("video_id = ?", videoId).Update("visit_count", visitCount).Error; err != nil {
		return err
	}
	return nil
}
