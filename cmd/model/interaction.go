package model

type Comment struct {
	CommentId int64  `json:"comment_id" gorm:"column:comment_id;primaryKey"`
	UserId    int64  `json:"user_id" gorm:"column:user_id;index"`
	VideoId   int64  `json:"video_id" gorm:"column:video_id;index"`
	Content   string `json:"content" gorm:"column:content"`
	CreatedAt string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt string `json:"updated_at" gorm:"column:updated_at"`
}

func (Comment) TableName() string {
	return "comments"
}

// CommentWithOwner annotates a comment with its author's projection for
// the comment feed.
type CommentWithOwner struct {
	Comment
	Owner *UserProfile `json:"owner"`
}

// VideoLike existence is the like state. The composite unique index is the
// store-enforced guarantee that a user holds at most one like per video.
type VideoLike struct {
	VideoLikesId int64  `json:"video_likes_id" gorm:"column:video_likes_id;primaryKey"`
	UserId       int64  `json:"user_id" gorm:"column:user_id;uniqueIndex:idx_user_video_like"`
	VideoId      int64  `json:"video_id" gorm:"column:video_id;uniqueIndex:idx_user_video_like"`
	CreatedAt    string `json:"created_at" gorm:"column:created_at"`
}

func (VideoLike) TableName() string {
	return "video_likes"
}

type CommentLike struct {
	CommentLikesId int64  `json:"comment_likes_id" gorm:"column:comment_likes_id;primaryKey"`
	UserId         int64  `json:"user_id" gorm:"column:user_id;uniqueIndex:idx_user_comment_like"`
	CommentId      int64  `json:"comment_id" gorm:"column:comment_id;uniqueIndex:idx_user_comment_like"`
	CreatedAt      string `json:"created_at" gorm:"column:created_at"`
}

func (CommentLike) TableName() string {
	return "comment_likes"
}
