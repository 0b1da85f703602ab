package service

import (
	"context"
	"strings"
	"time"

	interactiondb "VidTube.com/cmd/interaction/dal/db"
	"VidTube.com/cmd/model"
	userdb "VidTube.com/cmd/user/dal/db"
	"VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PublishVideoRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	FilePath    string `json:"file_path"`
	Duration    int64  `json:"duration"`
	IsPublic    bool   `json:"is_public"`
}

type VideoListRequest struct {
	UserId    int64  `json:"user_id"`
	Keyword   string `json:"keyword"`
	SortField string `json:"sort_field"`
	SortOrder string `json:"sort_order"`
	PageNum   int64  `json:"page_num"`
	PageSize  int64  `json:"page_size"`
}

type VideoListResponse struct {
	Videos      []*model.Video `json:"videos"`
	TotalVideos int64          `json:"total_videos"`
	PageNum     int64          `json:"page_num"`
	PageSize    int64          `json:"page_size"`
}

type VideoService struct {
	ctx context.Context
}

func NewVideoService(ctx context.Context) *VideoService {
	return &VideoService{ctx: ctx}
}

func (service *VideoService) PublishVideo(ctx context.Context, userId int64, req *PublishVideoRequest) (*model.Video, error) {
	req.Title = strings.TrimSpace(req.Title)
	if req.Title == "" {
		return nil, errno.ParamErr.WithMessage("Video title is required")
	}
	video := &model.Video{
		VideoId:     utils.GenerateID(),
		UserId:      userId,
		Title:       req.Title,
		Description: strings.TrimSpace(req.Description),
		Duration:    req.Duration,
		IsPublic:    req.IsPublic,
		CreatedAt:   time.Now().Format(constants.DataFormate),
	}
	if err := db.InsertVideo(ctx, video); err != nil {
		return nil, err
	}
	if req.FilePath != "" {
		url, err := oss.UploadVideo(ctx, req.FilePath, utils.ConvertInt64ToString(video.VideoId))
		if err != nil {
			return nil, err
		}
		video.VideoUrl = url
		if err := db.UpdateVideoUrl(ctx, video.VideoId, video.VideoUrl, video.CoverUrl); err != nil {
			return nil, err
		}
	}
	return video, nil
}

// ListVideos pages the feed with the caller's filters. Sort fields are
// whitelisted in the DAL; unknown fields fall back to creation time.
func (service *VideoService) ListVideos(ctx context.Context, req *VideoListRequest) (*VideoListResponse, error) {
	pageNum, pageSize := utils.NormalizePage(req.PageNum, req.PageSize)
	filter := db.VideoFilter{
		UserId:     req.UserId,
		Keyword:    req.Keyword,
		OnlyPublic: true,
	}
	videos, count, err := db.VideoList(ctx, filter, req.SortField, req.SortOrder, pageNum, pageSize)
	if err != nil {
		return nil, err
	}
	return &VideoListResponse{
		Videos:      videos,
		TotalVideos: count,
		PageNum:     pageNum,
		PageSize:    pageSize,
	}, nil
}

// GetVideoById returns the video with its owner collapsed into a single
// embedded profile, plus whether the viewer has liked it.
func (service *VideoService) GetVideoById(ctx context.Context, viewerId, videoId int64) (*model.VideoWithOwner, bool, error) {
	if !utils.IsValidID(videoId) {
		return nil, false, errno.ParamErr.WithMessage("Invalid video id")
	}
	video, err := db.FindVideo(ctx, videoId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, false, errno.RecordNotFoundErr.WithMessage("Video not found")
		}
		return nil, false, err
	}

	var owner *model.UserProfile
	if user, err := userdb.GetUserById(ctx, video.UserId); err == nil {
		owner = &model.UserProfile{
			UserId:    user.UserId,
			UserName:  user.UserName,
			FullName:  user.FullName,
			AvatarUrl: user.AvatarUrl,
		}
	}

	isLiked := false
	if utils.IsValidID(viewerId) {
		isLiked, err = interactiondb.IsVideoLikedByUser(ctx, viewerId, videoId)
		if err != nil {
			return nil, false, err
		}
	}
	return &model.VideoWithOwner{Video: *video, Owner: owner}, isLiked, nil
}
