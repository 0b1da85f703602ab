package handlers

import (
	"context"

	"VidTube.com/cmd/user/service"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
)

func RegisterUser(ctx context.Context, c *app.RequestContext) {
	var param RegisterParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	user, err := service.NewUserService(ctx).Register(ctx, &service.RegisterRequest{
		UserName: param.UserName,
		FullName: param.FullName,
		Email:    param.Email,
		Password: param.Password,
	})
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, user)
}

type loginData struct {
	User         interface{} `json:"user"`
	AccessToken  string      `json:"access_token"`
	RefreshToken string      `json:"refresh_token"`
}

// LoginUser verifies the credential, mints the token pair and persists
// the refresh token so logout can revoke it.
func LoginUser(ctx context.Context, c *app.RequestContext) {
	var param LoginParam
	if err := c.BindAndValidate(&param); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	svc := service.NewUserService(ctx)
	user, err := svc.Login(ctx, param.UserName, param.Password)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	accessToken, refreshToken, err := jwt.GenerateTokenPair(user.UserId)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := svc.StoreRefreshToken(ctx, user.UserId, refreshToken); err != nil {
		hlog.CtxWarnf(ctx, "failed to persist refresh token: %v", err)
	}
	SendResponse(c, errno.Success, &loginData{
		User:         user,
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
	})
}

func LogoutUser(ctx context.Context, c *app.RequestContext) {
	userId, err := actorId(ctx, c)
	if err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	if err := service.NewUserService(ctx).Logout(ctx, userId); err != nil {
		SendResponse(c, errno.ConvertErr(err), nil)
		return
	}
	SendResponse(c, errno.Success, nil)
}

// RefreshAccessToken reissues an access token off a valid refresh token.
// The new token is exposed on the New-Access-Token response header.
func RefreshAccessToken(ctx context.Context, c *app.RequestContext) {
	if !jwt.IsRefreshTokenAvailable(ctx, c) {
		SendResponse(c, errno.ConvertErr(errno.TokenInvalidErr), nil)
		return
	}
	jwt.GenerateAccessToken(ctx, c)
	SendResponse(c, errno.Success, nil)
}
