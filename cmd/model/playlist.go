package model

type Playlist struct {
	PlaylistId  int64  `json:"playlist_id" gorm:"column:playlist_id;primaryKey"`
	UserId      int64  `json:"user_id" gorm:"column:user_id;index"`
	Name        string `json:"name" gorm:"column:name"`
	Description string `json:"description" gorm:"column:description"`
	CreatedAt   string `json:"created_at" gorm:"column:created_at"`
	UpdatedAt   string `json:"updated_at" gorm:"column:updated_at"`
}

func (Playlist) TableName() string {
	return "playlists"
}

// PlaylistVideo rows carry playlist membership. The unique pair index
// gives membership set semantics: inserting an existing member is a
// duplicate-key no-op, never a second row.
type PlaylistVideo struct {
	Id         int64  `json:"-" gorm:"column:id;primaryKey;autoIncrement"`
	PlaylistId int64  `json:"playlist_id" gorm:"column:playlist_id;uniqueIndex:idx_playlist_video"`
	VideoId    int64  `json:"video_id" gorm:"column:video_id;uniqueIndex:idx_playlist_video"`
	CreatedAt  string `json:"created_at" gorm:"column:created_at"`
}

func (PlaylistVideo) TableName() string {
	return "playlist_videos"
}

// PlaylistWithVideos is the read shape of a playlist: the playlist row
// plus its member video ids in insertion order.
type PlaylistWithVideos struct {
	Playlist
	VideoIds []int64 `json:"video_ids"`
}
