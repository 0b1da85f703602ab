package handlers

import (
	"context"

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

type RegisterParam struct {
	UserName string `form:"user_name" json:"user_name"`
	FullName string `form:"full_name" json:"full_name"`
	Email    string `form:"email" json:"email"`
	Password string `form:"password" json:"password"`
}

type LoginParam struct {
	UserName string `form:"user_name" json:"user_name"`
	Password string `form:"password" json:"password"`
}

type ChannelProfileParam struct {
	UserName string `form:"user_name" json:"user_name" path:"user_name" query:"user_name"`
}

type WatchRecordParam struct {
	VideoId int64 `form:"video_id" json:"video_id"`
}

func actorId(ctx context.Context, c *app.RequestContext) (int64, error) {
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		return 0, err
	}
	return utils.Transfer(v), nil
}

// viewerId is the actor id when a valid access token accompanies the
// request, 0 otherwise. Public reads sit outside the auth group, so the
// token has to be parsed here for viewer flags to resolve.
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
