package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// InsertSubscriptionIfAbsent creates the (subscriber, channel) record.
// Duplicate-key is absorbed: the unique pair index keeps at most one row
// no matter how the toggle races.
func InsertSubscriptionIfAbsent(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	sub := &model.Subscription{
		SubscriptionId: utils.GenerateID(),
		SubscriberId:   subscriberId,
		ChannelId:      channelId,
		CreatedAt:      time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Create(sub).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, errors.Wrapf(err, "InsertSubscriptionIfAbsent failed, subscriber:%d channel:%d", subscriberId, channelId)
	}
	return true, nil
}

func DeleteSubscriptionIfPresent(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	result := DB.WithContext(ctx).Where("subscriber_id = ? And channel_id = ?", subscriberId, channelId).Delete(&model.Subscription{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "DeleteSubscriptionIfPresent failed, subscriber:%d channel:%d", subscriberId, channelId)
	}
	return result.RowsAffected > 0, nil
}

func IsSubscriptionExist(ctx context.Context, subscriberId, channelId int64) (bool, error) {
	var count int64
	err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ? And channel_id = ?", subscriberId, channelId).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

func GetSubscriberCount(ctx context.Context, channelId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("channel_id = ?", channelId).Count(&count).Error; err != nil {
		return -1, err
	}
	return count, nil
}

func GetSubscriptionCount(ctx context.Context, subscriberId int64) (count int64, err error) {
	if err := DB.WithContext(ctx).Model(&model.Subscription{}).Where("subscriber_id = ?", subscriberId).Count(&count).Error; err != nil {
		return -1, err
	}
	return count, nil
}

// subscriptionUserRow is the scan target of the subscription/user join.
type subscriptionUserRow struct {
	UserId    int64
	UserName  string
	FullName  string
	AvatarUrl string
}

// GetSubscriberListPaged joins each subscription of the channel to the
// subscribing user and returns the public projections.
func GetSubscriberListPaged(ctx context.Context, channelId, pageNum, pageSize int64) ([]*model.UserProfile, error) {
	rows := make([]subscriptionUserRow, 0, pageSize)
	if err := DB.WithContext(ctx).Table("subscriptions").
		Select("users.user_id, users.user_name, users.full_name, users.avatar_url").
		Joins("join users on users.user_id = subscriptions.subscriber_id").
		Where("subscriptions.channel_id = ?", channelId).
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscriberListPaged failed, channel:%d", channelId)
	}
	return toProfiles(rows), nil
}

// GetSubscribedChannelsPaged joins each of the user's subscriptions to the
// channel account.
func GetSubscribedChannelsPaged(ctx context.Context, subscriberId, pageNum, pageSize int64) ([]*model.UserProfile, error) {
	rows := make([]subscriptionUserRow, 0, pageSize)
	if err := DB.WithContext(ctx).Table("subscriptions").
		Select("users.user_id, users.user_name, users.full_name, users.avatar_url").
		Joins("join users on users.user_id = subscriptions.channel_id").
		Where("subscriptions.subscriber_id = ?", subscriberId).
		Offset(int(pageNum-1) * int(pageSize)).Limit(int(pageSize)).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrapf(err, "GetSubscribedChannelsPaged failed, subscriber:%d", subscriberId)
	}
	return toProfiles(rows), nil
}

func toProfiles(rows []subscriptionUserRow) []*model.UserProfile {
	profiles := make([]*model.UserProfile, 0, len(rows))
	for _, row := range rows {
		profiles = append(profiles, &model.UserProfile{
			UserId:    row.UserId,
			UserName:  row.UserName,
			FullName:  row.FullName,
			AvatarUrl: row.AvatarUrl,
		})
	}
	return profiles
}
