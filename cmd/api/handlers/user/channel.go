package handlers

import (
	"context"
	"io"

	"VidTube.com/cmd/user/service"
	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
)

// ChannelProfile resolves a channel by username. The viewer may be
// anonymous; is_subscribed is false in that case.
func ChannelProfile(ctx context.Context, c *app.RequestContext) {
	var param ChannelProfileParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	profile, err := service.NewUserService(ctx).GetChannelProfile(ctx, viewerId(ctx, c), param.UserName)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, profile)
}

func AddWatchRecord(ctx context.Context, c *app.RequestContext) {
	var param WatchRecordParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewUserService(ctx).AddWatchRecord(ctx, userId, param.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// WatchHistory returns the caller's watched videos in watch order.
func WatchHistory(ctx context.Context, c *app.RequestContext) {
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	history, err := service.NewUserService(ctx).GetWatchHistory(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, history)
}

func readUpload(c *app.RequestContext, field string) ([]byte, string, error) {
	fileHeader, err := c.FormFile(field)
	if err != nil {
		return nil, "", errno.ParamErr.WithMessage("Missing " + field + " file")
	}
	file, err := fileHeader.Open()
	if err != nil {
		return nil, "", err
	}
	defer file.Close()
	data, err := io.ReadAll(file)
	if err != nil {
		return nil, "", err
	}
	return data, fileHeader.Header.Get("Content-Type"), nil
}

func UploadAvatar(ctx context.Context, c *app.RequestContext) {
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	data, contentType, err := readUpload(c, "avatar")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	url, err := service.NewUserService(ctx).UpdateAvatar(ctx, userId, data, contentType)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"avatar_url": url})
}

func UploadCover(ctx context.Context, c *app.RequestContext) {
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	data, contentType, err := readUpload(c, "cover")
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	url, err := service.NewUserService(ctx).UpdateCover(ctx, userId, data, contentType)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, map[string]string{"cover_url": url})
}
