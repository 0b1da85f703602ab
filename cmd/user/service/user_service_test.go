package service

import (
	"context"
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
)

func TestRegisterRequiresAllFields(t *testing.T) {
	svc := NewUserService(context.Background())

	cases := []*RegisterRequest{
		{UserName: "", Email: "a@b.com", Password: "pw"},
		{UserName: "alice", Email: "", Password: "pw"},
		{UserName: "alice", Email: "a@b.com", Password: ""},
		{UserName: "   ", Email: "a@b.com", Password: "pw"},
	}
	for _, req := range cases {
		_, err := svc.Register(context.Background(), req)
		assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
	}
}

func TestLoginRequiresCredential(t *testing.T) {
	svc := NewUserService(context.Background())

	_, err := svc.Login(context.Background(), "", "pw")
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.Login(context.Background(), "alice", "")
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestGetChannelProfileRequiresUsername(t *testing.T) {
	svc := NewUserService(context.Background())

	_, err := svc.GetChannelProfile(context.Background(), 0, "   ")
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

func TestAddWatchRecordRejectsInvalidVideo(t *testing.T) {
	svc := NewUserService(context.Background())

	err := svc.AddWatchRecord(context.Background(), 1, 0)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}
