package authz

import (
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
)

func TestAuthorizeOwner(t *testing.T) {
	assert.NoError(t, Authorize(42, 42))
}

func TestAuthorizeNonOwner(t *testing.T) {
	err := Authorize(42, 43)
	assert.Equal(t, int64(errno.ForbiddenCode), errno.ConvertErr(err).ErrCode)
}

func TestAuthorizeAnonymousActor(t *testing.T) {
	err := Authorize(0, 42)
	assert.Equal(t, int64(errno.AuthorizationFailedCode), errno.ConvertErr(err).ErrCode)

	err = Authorize(-1, -1)
	assert.Equal(t, int64(errno.AuthorizationFailedCode), errno.ConvertErr(err).ErrCode)
}
