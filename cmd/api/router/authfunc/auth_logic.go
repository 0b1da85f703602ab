package authfunc

import (
	"context"

	handlers "VidTube.com/cmd/api/handlers/interaction"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"

	"github.com/cloudwego/hertz/pkg/app"
)

func Auth() []app.HandlerFunc {
	return append(make([]app.HandlerFunc, 0),
		DoubleTokenAuthFunc(),
	)
}

// DoubleTokenAuthFunc accepts a valid access token outright; with only a
// valid refresh token it reissues the access token on the response and
// lets the request through.
func DoubleTokenAuthFunc() app.HandlerFunc {
	return func(ctx context.Context, c *app.RequestContext) {
		if !jwt.IsAccessTokenAvailable(ctx, c) {
			if !jwt.IsRefreshTokenAvailable(ctx, c) {
				handlers.SendResponse(c, errno.ConvertErr(errno.TokenInvalidErr), nil)
				c.Abort()
				return
			}
			jwt.GenerateAccessToken(ctx, c)
		}
		c.Next(ctx)
	}
}
