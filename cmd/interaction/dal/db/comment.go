package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreateComment(ctx context.Context, comment *model.Comment) error {
	return DB.WithContext(ctx).Create(comment).Error
}

// GetCommentInfo returns the comment or gorm.ErrRecordNotFound.
func GetCommentInfo(ctx context.Context, commentId int64) (*model.Comment, error) {
	comment := &model.Comment{}
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).First(comment).Error; err != nil {
		return nil, err
	}
	return comment, nil
}

func UpdateCommentContent(ctx context.Context, commentId int64, content string) (*model.Comment, error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("comment_id = ?", commentId).Updates(map[string]interface{}{
		"content":    content,
		"updated_at": time.Now().Format(constants.DataFormate),
	}).Error; err != nil {
		return nil, errors.Wrapf(err, "UpdateCommentContent failed, comment:%d", commentId)
	}
	return GetCommentInfo(ctx, commentId)
}

// DeleteComment removes the comment together with the likes hanging off it.
func DeleteComment(ctx context.Context, commentId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("comment_id = ?", commentId).Delete(&model.Comment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("comment_id = ?", commentId).Delete(&model.CommentLike{}).Error; err != nil {
			return err
		}
		return nil
	})
}

func GetVideoCommentCount(ctx context.Context, videoId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

// commentOwnerRow is the flat scan target of the comment/owner join.
type commentOwnerRow struct {
	CommentId      int64
	UserId         int64
	VideoId        int64
	Content        string
	CreatedAt      string
	UpdatedAt      string
	OwnerUserName  string
	OwnerFullName  string
	OwnerAvatarUrl string
}

// GetVideoCommentListPaged returns one page of a video's comments, newest
// first, each joined with its author's public projection. The count and
// the join both run store side.
func GetVideoCommentListPaged(ctx context.Context, videoId, pageNum, pageSize int64) ([]*model.CommentWithOwner, int64, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&model.Comment{}).Where("video_id = ?", videoId).Count(&count).Error; err != nil {
		return nil, 0, err
	}

	rows := make([]commentOwnerRow, 0, pageSize)
	if err := DB.WithContext(ctx).Table("comments").
		Select("comments.comment_id, comments.user_id, comments.video_id, comments.content, comments.created_at, comments.updated_at, "+
			"users.user_name as owner_user_name, users.full_name as owner_full_name, users.avatar_url as owner_avatar_url").
		Joins("left join users on users.user_id = comments.user_id").
		Where("comments.video_id = ?", videoId).
		Order("comments.created_at desc").
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Scan(&rows).Error; err != nil {
		return nil, 0, errors.Wrapf(err, "GetVideoCommentListPaged failed, video:%d", videoId)
	}
	return collapseCommentRows(rows), count, nil
}

// collapseCommentRows maps flat join rows to comments with an embedded
// author projection, preserving row order.
func collapseCommentRows(rows []commentOwnerRow) []*model.CommentWithOwner {
	comments := make([]*model.CommentWithOwner, 0, len(rows))
	for _, row := range rows {
		comments = append(comments, &model.CommentWithOwner{
			Comment: model.Comment{
				CommentId: row.CommentId,
				UserId:    row.UserId,
				VideoId:   row.VideoId,
				Content:   row.Content,
				CreatedAt: row.CreatedAt,
				UpdatedAt: row.UpdatedAt,
			},
			Owner: &model.UserProfile{
				UserId:    row.UserId,
				UserName:  row.OwnerUserName,
				FullName:  row.OwnerFullName,
				AvatarUrl: row.OwnerAvatarUrl,
			},
		})
	}
	return comments
}
