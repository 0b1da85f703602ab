package handlers

import (
	"context"

	"VidTube.com/cmd/playlist/service"
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

type CreatePlaylistParam struct {
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type UpdatePlaylistParam struct {
	PlaylistId  int64  `form:"playlist_id" json:"playlist_id" path:"playlist_id"`
	Name        string `form:"name" json:"name"`
	Description string `form:"description" json:"description"`
}

type PlaylistIdParam struct {
	PlaylistId int64 `form:"playlist_id" json:"playlist_id" path:"playlist_id" query:"playlist_id"`
}

type PlaylistVideoParam struct {
	PlaylistId int64 `form:"playlist_id" json:"playlist_id" path:"playlist_id"`
	VideoId    int64 `form:"video_id" json:"video_id"`
}

func actorId(ctx context.Context, c *app.RequestContext) (int64, error) {
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		return 0, err
	}
	return utils.Transfer(v), nil
}

func CreatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param CreatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).CreatePlaylist(ctx, userId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func UpdatePlaylist(ctx context.Context, c *app.RequestContext) {
	var param UpdatePlaylistParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).UpdatePlaylist(ctx, userId, param.PlaylistId, param.Name, param.Description)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}

func DeletePlaylist(ctx context.Context, c *app.RequestContext) {
	var param PlaylistIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).DeletePlaylist(ctx, userId, param.PlaylistId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// AddVideo is idempotent: adding a video twice leaves one entry.
func AddVideo(ctx context.Context, c *app.RequestContext) {
	var param PlaylistVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).AddVideo(ctx, userId, param.PlaylistId, param.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

func RemoveVideo(ctx context.Context, c *app.RequestContext) {
	var param PlaylistVideoParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewPlaylistService(ctx).RemoveVideo(ctx, userId, param.PlaylistId, param.VideoId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// UserPlaylists lists the caller's playlists.
func UserPlaylists(ctx context.Context, c *app.RequestContext) {
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlists, err := service.NewPlaylistService(ctx).GetUserPlaylists(ctx, userId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlists)
}

// PlaylistById is public: anyone can read a playlist with its video ids.
func PlaylistById(ctx context.Context, c *app.RequestContext) {
	var param PlaylistIdParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	playlist, err := service.NewPlaylistService(ctx).GetPlaylistById(ctx, param.PlaylistId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, playlist)
}
