package handlers

import (
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/mq"
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

// Init wires the event producer used by the toggle handlers.
func Init(p *mq.Producer) {
	producer = p
}

type LikeParam struct {
	VideoId   int64 `form:"video_id" json:"video_id"`
	CommentId int64 `form:"comment_id" json:"comment_id"`
}

type LikeListParam struct {
	PageNum  int64 `form:"page_num" json:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" json:"page_size" query:"page_size"`
}

type CreateCommentParam struct {
	VideoId int64  `form:"video_id" json:"video_id"`
	Content string `form:"content" json:"content"`
}

type UpdateCommentParam struct {
	CommentId int64  `form:"comment_id" json:"comment_id"`
	Content   string `form:"content" json:"content"`
}

type DeleteCommentParam struct {
	CommentId int64 `form:"comment_id" json:"comment_id"`
}

type ListCommentParam struct {
	VideoId  int64 `form:"video_id" json:"video_id" query:"video_id"`
	PageNum  int64 `form:"page_num" json:"page_num" query:"page_num"`
	PageSize int64 `form:"page_size" json:"page_size" query:"page_size"`
}
