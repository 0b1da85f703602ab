package handlers

import (
	"context"

	"VidTube.com/cmd/video/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

type Response struct {
	Code    int64       `json:"code"`
	Message string      `json:"message"`
	Data    interface{} `json:"data"`
}

// SendResponse pack response
func SendResponse(c *app.RequestContext, err error, data interface{}) {
	Err := errno.ConvertErr(err)
	c.JSON(consts.StatusOK, Response{
		Code:    Err.ErrCode,
		Message: Err.ErrMsg,
		Data:    data,
	})
}

type PublishVideoParam struct {
	Title       string `form:"title" json:"title"`
	Description string `form:"description" json:"description"`
	FilePath    string `form:"file_path" json:"file_path"`
	Duration    int64  `form:"duration" json:"duration"`
	IsPublic    bool   `form:"is_public" json:"is_public"`
}

type VideoListParam struct {
	UserId    int64  `form:"user_id" json:"user_id" query:"user_id"`
	Keyword   string `form:"keyword" json:"keyword" query:"keyword"`
	SortField string `form:"sort_field" json:"sort_field" query:"sort_field"`
	SortOrder string `form:"sort_order" json:"sort_order" query:"sort_order"`
	PageNum   int64  `form:"page_num" json:"page_num" query:"page_num"`
	PageSize  int64  `form:"page_size" json:"page_size" query:"page_size"`
}

type VideoIdParam struct {
	VideoId int64 `form:"video_id" json:"video_id" path:"video_id" query:"video_id"`
}

func actorId(ctx context.Context, c *app.RequestContext) (int64, error) {
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		return 0, err
	}
	return utils.Transfer(v), nil
}

// viewerId parses an optional access token on public reads so viewer
// flags like is_liked resolve for logged-in callers.
func viewerId(ctx context.Context, c *app.RequestContext) int64 {
	if _, ok := c.Get(jwt.IdentityKey); !ok {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			return 0
		}
	}
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		return 0
	}
	return utils.Transfer(v)
}

func PublishVideo(ctx context.Context, c *app.RequestContext) {
	var param PublishVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, err := service.NewVideoService(ctx).PublishVideo(ctx, userId, &service.PublishVideoRequest{
		Title:       param.Title,
		Description: param.Description,
		FilePath:    param.FilePath,
		Duration:    param.Duration,
		IsPublic:    param.IsPublic,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, video)
}

// VideoList is the public feed: only public videos, filters conjunctive.
func VideoList(ctx context.Context, c *app.RequestContext) {
	var param VideoListParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewVideoService(ctx).ListVideos(ctx, &service.VideoListRequest{
		UserId:    param.UserId,
		Keyword:   param.Keyword,
		SortField: param.SortField,
		SortOrder: param.SortOrder,
		PageNum:   param.PageNum,
		PageSize:  param.PageSize,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

type videoDetail struct {
	Video   interface{} `json:"video"`
	IsLiked bool        `json:"is_liked"`
}

func GetVideo(ctx context.Context, c *app.RequestContext) {
	var param VideoIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	video, isLiked, err := service.NewVideoService(ctx).GetVideoById(ctx, viewerId(ctx, c), param.VideoId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, &videoDetail{Video: video, IsLiked: isLiked})
}
