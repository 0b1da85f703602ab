package model

type Video struct {
	VideoId      int64  `json:"video_id" gorm:"column:video_id;primaryKey"`
	UserId       int64  `json:"user_id" gorm:"column:user_id;index"`
	Title        string `json:"title" gorm:"column:title"`
	Description  string `json:"description" gorm:"column:description"`
	VideoUrl     string `json:"video_url" gorm:"column:video_url"`
	CoverUrl     string `json:"cover_url" gorm:"column:cover_url"`
	Duration     int64  `json:"duration" gorm:"column:duration"`
	IsPublic     bool   `json:"is_public" gorm:"column:is_public"`
	VisitCount   int64  `json:"visit_count" gorm:"column:visit_count"`
	LikesCount   int64  `json:"likes_count" gorm:"column:likes_count"`
	CommentCount int64  `json:"comment_count" gorm:"column:comment_count"`
	CreatedAt    string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt    string `json:"updated_at" gorm:"column:updated_at"`
	DeletedAt    string `json:"deleted_at" gorm:"column:deleted_at"`
}

func (Video) TableName() string {
	return "videos"
}

// VideoWithOwner is a video joined with the projection of the user who
// published it. The join is one-to-one, so the owner is embedded as a
// single object rather than a one-element list.
type VideoWithOwner struct {
	Video
	Owner *UserProfile `json:"owner"`
}
