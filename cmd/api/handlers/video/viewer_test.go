package handlers

import (
	"context"
	"testing"

	"VidTube.com/pkg/jwt"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/stretchr/testify/assert"
)

func TestViewerIdResolvesAccessTokenOnPublicRead(t *testing.T) {
	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	accessToken, _, err := jwt.GenerateTokenPair(555)
	assert.NoError(t, err)

	c := &app.RequestContext{}
	c.Request.Header.Set("Access-Token", accessToken)
	assert.Equal(t, int64(555), viewerId(context.Background(), c))

	anon := &app.RequestContext{}
	assert.Equal(t, int64(0), viewerId(context.Background(), anon))
}
