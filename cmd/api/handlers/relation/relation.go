package handlers

import (
	"context"

	"VidTube.com/cmd/relation/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/mq"
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

var producer *mq.Producer

func Init(p *mq.Producer) {
	producer = p
}

type SubscriptionParam struct {
	ChannelId int64 `form:"channel_id" json:"channel_id"`
}

type SubscriberListParam struct {
	ChannelId int64 `form:"channel_id" json:"channel_id" query:"channel_id"`
	PageNum   int64 `form:"page_num" json:"page_num" query:"page_num"`
	PageSize  int64 `form:"page_size" json:"page_size" query:"page_size"`
}

type SubscribedChannelsParam struct {
	PageNum  int64 `form:"page_num" json:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" json:"page_size" query:"page_size"`
}

func actorId(ctx context.Context, c *app.RequestContext) (int64, error) {
	v, err := jwt.ConvertJWTPayloadToString(ctx, c)
	if err != nil {
		return 0, err
	}
	return utils.Transfer(v), nil
}

// ToggleSubscription flips the caller's subscription to the channel.
func ToggleSubscription(ctx context.Context, c *app.RequestContext) {
	var param SubscriptionParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	subscriberId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	resp, err := service.NewRelationService(ctx, producer).ToggleSubscription(ctx, subscriberId, param.ChannelId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, resp)
}

func SubscriberList(ctx context.Context, c *app.RequestContext) {
	var param SubscriberListParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	profiles, err := service.NewRelationService(ctx, producer).GetSubscriberList(ctx, param.ChannelId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, profiles)
}

func SubscribedChannels(ctx context.Context, c *app.RequestContext) {
	var param SubscribedChannelsParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	subscriberId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	profiles, err := service.NewRelationService(ctx, producer).GetSubscribedChannels(ctx, subscriberId, param.PageNum, param.PageSize)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, profiles)
}
