package service

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/relation/dal/db"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/google/uuid"
)

type ToggleSubscriptionResponse struct {
	Subscribed bool `json:"subscribed"`
}

type RelationService struct {
	ctx          context.Context
	cacheManager *cache.EngagementCache
	producer     *mq.Producer
}

func NewRelationService(ctx context.Context, producer *mq.Producer) *RelationService {
	return &RelationService{
		ctx:          ctx,
		cacheManager: cache.NewEngagementCache(cache.Client),
		producer:     producer,
	}
}

// ToggleSubscription flips the (subscriber, channel) record. Subscribing
// to yourself is rejected before any store round-trip.
func (service *RelationService) ToggleSubscription(ctx context.Context, subscriberId, channelId int64) (*ToggleSubscriptionResponse, error) {
	if !utils.IsValidID(channelId) {
		return nil, errno.ParamErr.WithMessage("Invalid channel id")
	}
	if channelId == subscriberId {
		return nil, errno.PolicyViolationErr.WithMessage("You cannot subscribe to your own channel")
	}

	if lock.Ready() {
		mutex := lock.PairMutex("subscription", subscriberId, channelId)
		if err := mutex.Lock(); err != nil {
			return nil, errno.ServiceErr.WithMessage("Subscription is being processed, please retry")
		}
		defer func() {
			if _, err := mutex.Unlock(); err != nil {
				hlog.CtxWarnf(ctx, "failed to release subscription lock: %v", err)
			}
		}()
	}

	deleted, err := db.DeleteSubscriptionIfPresent(ctx, subscriberId, channelId)
	if err != nil {
		return nil, err
	}

	subscribed := false
	if !deleted {
		if _, err := db.InsertSubscriptionIfAbsent(ctx, subscriberId, channelId); err != nil {
			return nil, err
		}
		subscribed = true
	}

	delta := int64(-1)
	action := "unsubscribe"
	if subscribed {
		delta = 1
		action = "subscribe"
	}
	if service.cacheManager != nil {
		if err := service.cacheManager.IncrSubscriberCount(ctx, channelId, delta); err != nil {
			hlog.CtxWarnf(ctx, "failed to bump subscriber counter: %v", err)
		}
	}
	if service.producer != nil {
		service.producer.PublishSubscriptionEvent(ctx, &mq.SubscriptionEvent{
			EventID:      uuid.New().String(),
			SubscriberID: subscriberId,
			ChannelID:    channelId,
			ActionType:   action,
			Timestamp:    time.Now().Unix(),
		})
	}

	return &ToggleSubscriptionResponse{Subscribed: subscribed}, nil
}

// GetSubscriberList lists the accounts subscribed to the channel.
func (service *RelationService) GetSubscriberList(ctx context.Context, channelId, pageNum, pageSize int64) ([]*model.UserProfile, error) {
	if !utils.IsValidID(channelId) {
		return nil, errno.ParamErr.WithMessage("Invalid channel id")
	}
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	return db.GetSubscriberListPaged(ctx, channelId, pageNum, pageSize)
}

// GetSubscribedChannels lists the channels the user subscribes to.
func (service *RelationService) GetSubscribedChannels(ctx context.Context, subscriberId, pageNum, pageSize int64) ([]*model.UserProfile, error) {
	if !utils.IsValidID(subscriberId) {
		return nil, errno.ParamErr.WithMessage("Invalid subscriber id")
	}
	pageNum, pageSize = utils.NormalizePage(pageNum, pageSize)
	return db.GetSubscribedChannelsPaged(ctx, subscriberId, pageNum, pageSize)
}
