package handlers

import (
	"context"

	"VidTube.com/cmd/interaction/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

// LikeAction toggles the caller's like on exactly one of a video or a
// comment. The response carries the resulting state.
func LikeAction(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var userId int64
	var like LikeParam
	if err = c.BindAndValidate(&like); err != nil {
		hlog.Info(err)
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		userId = utils.Transfer(v)
	}
	resp, err := service.NewLikeActionService(ctx, producer).LikeAction(ctx, &service.LikeActionRequest{
		UserId:    userId,
		VideoId:   like.VideoId,
		CommentId: like.CommentId,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func GetLikedVideos(ctx context.Context, c *app.RequestContext) {
	var err error
	var v interface{}
	var userId int64
	var param LikeListParam
	if err = c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if v, err = jwt.ConvertJWTPayloadToString(ctx, c); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	} else {
		userId = utils.Transfer(v)
	}
	resp, err := service.NewLikeActionService(ctx, producer).GetLikedVideos(ctx, userId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}
