package service

import (
	"context"
	"testing"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
)

// The target check runs before any store access, so these paths are
// testable without a database.
func TestLikeActionRequiresExactlyOneTarget(t *testing.T) {
	svc := NewLikeActionService(context.Background(), nil)

	_, err := svc.LikeAction(context.Background(), &LikeActionRequest{UserId: 1})
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.LikeAction(context.Background(), &LikeActionRequest{UserId: 1, VideoId: 10, CommentId: 20})
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.LikeAction(context.Background(), &LikeActionRequest{UserId: 1, VideoId: -10})
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

// The liked page's order comes from the like rows; the bulk video fetch
// returns store order and must be rearranged to match.
func TestOrderVideosByIds(t *testing.T) {
	videos := []*model.Video{
		{VideoId: 1, Title: "first"},
		{VideoId: 2, Title: "second"},
		{VideoId: 3, Title: "third"},
	}

	ordered := orderVideosByIds([]int64{3, 1, 2}, videos)
	assert.Len(t, ordered, 3)
	assert.Equal(t, int64(3), ordered[0].VideoId)
	assert.Equal(t, int64(1), ordered[1].VideoId)
	assert.Equal(t, int64(2), ordered[2].VideoId)
}

func TestOrderVideosByIdsSkipsMissing(t *testing.T) {
	videos := []*model.Video{{VideoId: 2}}

	ordered := orderVideosByIds([]int64{3, 2, 1}, videos)
	assert.Len(t, ordered, 1)
	assert.Equal(t, int64(2), ordered[0].VideoId)
}
