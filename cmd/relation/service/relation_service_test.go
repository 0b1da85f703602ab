package service

import (
	"context"
	"testing"

	"VidTube.com/pkg/errno"
	"github.com/stretchr/testify/assert"
)

func TestToggleSubscriptionRejectsInvalidChannel(t *testing.T) {
	svc := NewRelationService(context.Background(), nil)

	_, err := svc.ToggleSubscription(context.Background(), 1, 0)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)

	_, err = svc.ToggleSubscription(context.Background(), 1, -7)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}

// Subscribing to your own channel is rejected before any store access.
func TestToggleSubscriptionRejectsSelfSubscribe(t *testing.T) {
	svc := NewRelationService(context.Background(), nil)

	_, err := svc.ToggleSubscription(context.Background(), 9, 9)
	assert.Equal(t, int64(errno.PolicyViolationCode), errno.ConvertErr(err).ErrCode)
}

func TestSubscriberListRejectsInvalidChannel(t *testing.T) {
	svc := NewRelationService(context.Background(), nil)

	_, err := svc.GetSubscriberList(context.Background(), 0, 1, 10)
	assert.Equal(t, int64(errno.ParamErrCode), errno.ConvertErr(err).ErrCode)
}
