package mq

// LikeEvent is emitted on every like toggle. Consumers reconcile the
// denormalized like counters from it.
type LikeEvent struct {
	EventID    string `json:"event_id"`
	UserID     int64  `json:"user_id"`
	VideoID    int64  `json:"video_id,omitempty"`
	CommentID  int64  `json:"comment_id,omitempty"`
	ActionType string `json:"action_type"` // "like" or "unlike"
	Timestamp  int64  `json:"timestamp"`
}

// SubscriptionEvent is emitted on every subscription toggle.
type SubscriptionEvent struct {
	EventID      string `json:"event_id"`
	SubscriberID int64  `json:"subscriber_id"`
	ChannelID    int64  `json:"channel_id"`
	ActionType   string `json:"action_type"` // "subscribe" or "unsubscribe"
	Timestamp    int64  `json:"timestamp"`
}
