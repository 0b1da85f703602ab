package service

import (
	"context"
	"strings"
	"time"
	"unicode/utf8"

	"VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/authz"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type CommentListResponse struct {
	Comments      []*model.CommentWithOwner `json:"comments"`
	TotalComments int64                     `json:"total_comments"`
	PageNum       int64                     `json:"page_num"`
	PageSize      int64                     `json:"page_size"`
}

type CommentService struct {
	ctx          context.Context
	cacheManager *cache.EngagementCache
}

func NewCommentService(ctx context.Context) *CommentService {
	return &CommentService{
		ctx:          ctx,
		cacheManager: cache.NewEngagementCache(cache.Client),
	}
}

func validateCommentContent(content string) error {
	if strings.TrimSpace(content) == "" {
		return errno.ParamErr.WithMessage("Comment content cannot be empty")
	}
	if utf8.RuneCountInString(content) > constants.MaxCommentLength {
		return errno.ParamErr.WithMessage("Comment too long, maximum 500 characters allowed")
	}
	return nil
}

func (service *CommentService) CreateComment(ctx context.Context, userId, videoId int64, content string) (*model.Comment, error) {
	if !utils.IsValidID(videoId) {
		return nil, errno.ParamErr.WithMessage("Invalid video id")
	}
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	exists, err := videodb.CheckVideoExistById(ctx, videoId)
	if err != nil {
		return nil, err
	}
	if !exists {
		return nil, errno.RecordNotFoundErr.WithMessage("Video not found")
	}

	now := time.Now().Format(constants.DataFormate)
	comment := &model.Comment{
		CommentId: utils.GenerateID(),
		UserId:    userId,
		VideoId:   videoId,
		Content:   strings.TrimSpace(content),
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := db.CreateComment(ctx, comment); err != nil {
		return nil, errors.WithMessage(err, "dao.CreateComment failed")
	}

	if service.cacheManager != nil {
		service.cacheManager.InvalidateCommentPages(ctx, videoId)
	}
	return comment, nil
}

func (service *CommentService) UpdateComment(ctx context.Context, userId, commentId int64, content string) (*model.Comment, error) {
	if !utils.IsValidID(commentId) {
		return nil, errno.ParamErr.WithMessage("Invalid comment id")
	}
	if err := validateCommentContent(content); err != nil {
		return nil, err
	}

	comment, err := db.GetCommentInfo(ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Comment not found")
		}
		return nil, err
	}
	if err := authz.Authorize(userId, comment.UserId); err != nil {
		return nil, err
	}

	updated, err := db.UpdateCommentContent(ctx, commentId, strings.TrimSpace(content))
	if err != nil {
		return nil, errors.WithMessage(err, "dao.UpdateCommentContent failed")
	}

	if service.cacheManager != nil {
		service.cacheManager.InvalidateCommentPages(ctx, comment.VideoId)
	}
	return updated, nil
}

func (service *CommentService) DeleteComment(ctx context.Context, userId, commentId int64) error {
	if !utils.IsValidID(commentId) {
		return errno.ParamErr.WithMessage("Invalid comment id")
	}

	comment, err := db.GetCommentInfo(ctx, commentId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errno.RecordNotFoundErr.WithMessage("Comment not found")
		}
		return err
	}
	if err := authz.Authorize(userId, comment.UserId); err != nil {
		return err
	}

	if err := db.DeleteComment(ctx, commentId); err != nil {
		return errors.WithMessage(err, "dao.DeleteComment failed")
	}

	if service.cacheManager != nil {
		service.cacheManager.InvalidateCommentPages(ctx, comment.VideoId)
	}
	return nil
}

// ListComment pages a video's comments newest first. A video without
// comments produces an empty page, not an error.
func (service *CommentService) ListComment(ctx context.Context, videoId, pageNum, pageSize int64) (*CommentListResponse, error) {
	if !utils.IsValidID(videoId) {
		return nil, errno.ParamErr.WithMessage("Invalid video id")
	}
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)

	comments, total, err := db.GetVideoCommentListPaged(ctx, videoId, pageNum, pageSize)
	if err != nil {
		hlog.CtxErrorf(ctx, "failed to list comments for video %d: %v", videoId, err)
		return nil, errors.WithMessage(err, "dao.GetVideoCommentListPaged failed")
	}

	return &CommentListResponse{
		Comments:      comments,
		TotalComments: total,
		PageNum:       pageNum,
		PageSize:      pageSize,
	}, nil
}
