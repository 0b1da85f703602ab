package model

// User is the public shape of an account. The password column lives on
// db.UserWithPassword only and never crosses a service boundary.
type User struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	Email     string `json:"email"`
	AvatarUrl string `json:"avatar_url"`
	CoverUrl  string `json:"cover_url"`
	CreatedAt string `json:"created_at"`
	UpdatedAt string `json:"updated_at"`
	DeletedAt string `json:"deleted_at"`
}

// UserProfile is the projection embedded into joined views (comment owner,
// subscriber list, watch history owner).
type UserProfile struct {
	UserId    int64  `json:"user_id"`
	UserName  string `json:"user_name"`
	FullName  string `json:"full_name"`
	AvatarUrl string `json:"avatar_url"`
}

// WatchRecord is one row of a user's watch history. Position is an
// auto-increment primary key, so insertion order is the watch order.
type WatchRecord struct {
	Position  int64  `json:"-" gorm:"column:position;primaryKey;autoIncrement"`
	UserId    int64  `json:"user_id" gorm:"column:user_id;uniqueIndex:idx_user_video"`
	VideoId   int64  `json:"video_id" gorm:"column:video_id;uniqueIndex:idx_user_video"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
}

func (WatchRecord) TableName() string {
	return "watch_histories"
}
