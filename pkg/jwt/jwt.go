package jwt

import (
	"context"
	"os"
	"time"

	"VidTube.com/pkg/errno"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/hertz-contrib/jwt"
)

const (
	IdentityKey = "user_id"

	AccessTokenExpireTime  = time.Minute * 15
	RefreshTokenExpireTime = time.Hour * 24 * 7
)

var (
	AccessTokenJwtMiddleware  *jwt.HertzJWTMiddleware
	RefreshTokenJwtMiddleware *jwt.HertzJWTMiddleware
)

func secret(envKey, fallback string) []byte {
	if v := os.Getenv(envKey); v != "" {
		return []byte(v)
	}
	return []byte(fallback)
}

func newTokenMiddleware(key []byte, timeout time.Duration, lookup string) *jwt.HertzJWTMiddleware {
	mw, err := jwt.New(&jwt.HertzJWTMiddleware{
		Key:         key,
		Timeout:     timeout,
		MaxRefresh:  timeout,
		TokenLookup: lookup,
		IdentityKey: IdentityKey,
		PayloadFunc: func(data interface{}) jwt.MapClaims {
			return jwt.MapClaims{IdentityKey: data}
		},
		IdentityHandler: func(ctx context.Context, c *app.RequestContext) interface{} {
			claims := jwt.ExtractClaims(ctx, c)
			return claims[IdentityKey]
		},
	})
	if err != nil {
		panic(err)
	}
	return mw
}

func AccessTokenJwtInit() {
	AccessTokenJwtMiddleware = newTokenMiddleware(
		secret("JWT_ACCESS_SECRET", "vidtube_access_secret"),
		AccessTokenExpireTime,
		"header: Access-Token, query: access_token",
	)
}

func RefreshTokenJwtInit() {
	RefreshTokenJwtMiddleware = newTokenMiddleware(
		secret("JWT_REFRESH_SECRET", "vidtube_refresh_secret"),
		RefreshTokenExpireTime,
		"header: Refresh-Token, query: refresh_token",
	)
}

// GenerateTokenPair mints the access/refresh tokens handed out at login.
func GenerateTokenPair(userId int64) (accessToken, refreshToken string, err error) {
	accessToken, _, err = AccessTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	refreshToken, _, err = RefreshTokenJwtMiddleware.TokenGenerator(userId)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

// IsAccessTokenAvailable validates the access token and, on success,
// stashes the actor id on the request context for the handlers.
func IsAccessTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return isTokenAvailable(ctx, c, AccessTokenJwtMiddleware)
}

func IsRefreshTokenAvailable(ctx context.Context, c *app.RequestContext) bool {
	return isTokenAvailable(ctx, c, RefreshTokenJwtMiddleware)
}

func isTokenAvailable(ctx context.Context, c *app.RequestContext, mw *jwt.HertzJWTMiddleware) bool {
	claims, err := mw.GetClaimsFromJWT(ctx, c)
	if err != nil {
		return false
	}
	switch v := claims["exp"].(type) {
	case float64:
		if int64(v) < mw.TimeFunc().Unix() {
			return false
		}
	default:
		return false
	}
	c.Set(IdentityKey, claims[IdentityKey])
	return true
}

// GenerateAccessToken reissues an access token from a still-valid refresh
// token and exposes it on the response header.
func GenerateAccessToken(ctx context.Context, c *app.RequestContext) {
	claims, err := RefreshTokenJwtMiddleware.GetClaimsFromJWT(ctx, c)
	if err != nil {
		hlog.CtxWarnf(ctx, "failed to read refresh token claims: %v", err)
		return
	}
	tokenString, _, err := AccessTokenJwtMiddleware.TokenGenerator(claims[IdentityKey])
	if err != nil {
		hlog.CtxWarnf(ctx, "failed to reissue access token: %v", err)
		return
	}
	c.Header("New-Access-Token", tokenString)
	c.Set(IdentityKey, claims[IdentityKey])
}

// ConvertJWTPayloadToString returns the actor id the middleware stashed
// on the request context.
func ConvertJWTPayloadToString(ctx context.Context, c *app.RequestContext) (interface{}, error) {
	v, ok := c.Get(IdentityKey)
	if !ok {
		return nil, errno.TokenInvalidErr
	}
	return v, nil
}
