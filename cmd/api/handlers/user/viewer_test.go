package handlers

import (
	"context"
	"testing"

	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

// A logged-in caller hitting a route outside the auth group still sends
// its access token; viewer flags depend on it resolving here.
func TestViewerIdResolvesAccessTokenOutsideAuthGroup(t *testing.T) {
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	accessToken, _, err := jwt.GenerateTokenPair(777)
	assert.NoError(t, err)

	c := &app.RequestContext{}
	c.Request.Header.Set("Access-Token", accessToken)

	assert.Equal(t, int64(777), viewerId(context.Background(), c))
}

func TestViewerIdAnonymous(t *testing.T) {
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	c := &app.RequestContext{}
	assert.Equal(t, int64(0), viewerId(context.Background(), c))
}

func TestViewerIdRejectsGarbageToken(t *testing.T) {
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	c := &app.RequestContext{}
	c.Request.Header.Set("Access-Token", "not-a-jwt")
	assert.Equal(t, int64(0), viewerId(context.Background(), c))
}

// The identity stashed by the auth middleware wins over re-parsing.
func TestViewerIdUsesStashedIdentity(t *testing.T) {
	c := &app.RequestContext{}
	c.Set(jwt.IdentityKey, float64(42))
	assert.Equal(t, int64(42), viewerId(context.Background(), c))
}
