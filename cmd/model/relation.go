package model

// Subscription is directed: subscriber follows channel. Self-subscription
// is rejected in the service layer before a row can exist.
type Subscription struct {
	SubscriptionId int64  `json:"subscription_id" gorm:"column:subscription_id;primaryKey"`
	SubscriberId   int64  `json:"subscriber_id" gorm:"column:subscriber_id;uniqueIndex:idx_subscriber_channel"`
	ChannelId      int64  `json:"channel_id" gorm:"column:channel_id;uniqueIndex:idx_subscriber_channel"`
	CreatedAt      string `json:"created_at" gorm:"column:created_at"`
}

func (Subscription) TableName() string {
	return "subscriptions"
}

// ChannelProfile is the denormalized channel view: public user fields plus
// subscription counts and the viewer's own subscribed flag.
type ChannelProfile struct {
	UserId            int64  `json:"user_id"`
	UserName          string `json:"user_name"`
	FullName          string `json:"full_name"`
	Email             string `json:"email"`
	AvatarUrl         string `json:"avatar_url"`
	CoverUrl          string `json:"cover_url"`
	SubscribersCount  int64  `json:"subscribers_count"`
	SubscriptionCount int64  `json:"subscription_count"`
	IsSubscribed      bool   `json:"is_subscribed"`
}
