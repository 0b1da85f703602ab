package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// AddWatchRecordIfAbsent appends the video to the user's watch history.
// Re-watching an already recorded video must not create a second row or
// move it, so a duplicate-key outcome is reported as added=false.
func AddWatchRecordIfAbsent(ctx context.Context, userId, videoId int64) (bool, error) {
	record := &model.WatchRecord{
		UserId:    userId,
		VideoId:   videoId,
		CreatedAt: time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Create(record).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, errors.Wrapf(err, "AddWatchRecordIfAbsent failed, user:%d video:%d", userId, videoId)
	}
	return true, nil
}

// watchHistoryRow is the flat scan target of the two-level join:
// watch record -> video -> video owner.
type watchHistoryRow struct {
	VideoId        int64
	UserId         int64
	Title          string
	Description    string
	VideoUrl       string
	CoverUrl       string
	Duration       int64
	IsPublic       bool
	VisitCount     int64
	LikesCount     int64
	CommentCount   int64
	CreatedAt      string
	OwnerUserName  string
	OwnerFullName  string
	OwnerAvatarUrl string
}

// GetWatchHistory returns the user's watched videos in watch order, each
// carrying its owner collapsed into a single embedded projection.
func GetWatchHistory(ctx context.Context, userId int64) ([]*model.VideoWithOwner, error) {
	rows := make([]watchHistoryRow, 0)
	if err := DB.WithContext(ctx).Table("watch_histories").
		Select("videos.video_id, videos.user_id, videos.title, videos.description, videos.video_url, videos.cover_url, "+
			"videos.duration, videos.is_public, videos.visit_count, videos.likes_count, videos.comment_count, videos.created_at, "+
			"users.user_name as owner_user_name, users.full_name as owner_full_name, users.avatar_url as owner_avatar_url").
		Joins("join videos on videos.video_id = watch_histories.video_id").
		Joins("left join users on users.user_id = videos.user_id").
		Where("watch_histories.user_id = ?", userId).
		Order("watch_histories.position asc").
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "GetWatchHistory failed, user:%d", userId)
	}
	return collapseWatchRows(rows), nil
}

// collapseWatchRows turns the flat join rows into videos with the owner
// collapsed into a single embedded projection, keeping row order.
func collapseWatchRows(rows []watchHistoryRow) []*model.VideoWithOwner {
	history := make([]*model.VideoWithOwner, 0, len(rows))
	for _, row := range rows {
		history = append(history, &model.VideoWithOwner{
			Video: model.Video{
				VideoId:      row.VideoId,
				UserId:       row.UserId,
				Title:        row.Title,
				Description:  row.Description,
				VideoUrl:     row.VideoUrl,
				CoverUrl:     row.CoverUrl,
				Duration:     row.Duration,
				IsPublic:     row.IsPublic,
				VisitCount:   row.VisitCount,
				LikesCount:   row.LikesCount,
				CommentCount: row.CommentCount,
				CreatedAt:    row.CreatedAt,
			},
			Owner: &model.UserProfile{
				UserId:    row.UserId,
				UserName:  row.OwnerUserName,
				FullName:  row.OwnerFullName,
				AvatarUrl: row.OwnerAvatarUrl,
			},
		})
	}
	return history
}
