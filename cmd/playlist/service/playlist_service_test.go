package service

import (
	"context"
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
)

func TestCreatePlaylistRequiresNameAndDescription(t *testing.T) {
	svc := NewPlaylistService(context.Background())

	_, err := svc.CreatePlaylist(context.Background(), 1, "", "watch later")
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.CreatePlaylist(context.Background(), 1, "favorites", "   ")
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestUpdatePlaylistRejectsInvalidId(t *testing.T) {
	svc := NewPlaylistService(context.Background())

	_, err := svc.UpdatePlaylist(context.Background(), 1, 0, "new name", "")
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestAddVideoRejectsInvalidVideoId(t *testing.T) {
	svc := NewPlaylistService(context.Background())

	err := svc.AddVideo(context.Background(), 1, 2, 0)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestGetPlaylistByIdRejectsInvalidId(t *testing.T) {
	svc := NewPlaylistService(context.Background())

	_, err := svc.GetPlaylistById(context.Background(), -1)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}
