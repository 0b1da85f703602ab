package db

import (
	"context"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

func CreatePlaylist(ctx context.Context, playlist *model.Playlist) error {
	return DB.WithContext(ctx).Create(playlist).Error
}

// GetPlaylistInfo returns the playlist row or gorm.ErrRecordNotFound.
func GetPlaylistInfo(ctx context.Context, playlistId int64) (*model.Playlist, error) {
	playlist := &model.Playlist{}
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).First(playlist).Error; err != nil {
		return nil, err
	}
	return playlist, nil
}

func UpdatePlaylistFields(ctx context.Context, playlistId int64, fields map[string]interface{}) (*model.Playlist, error) {
	fields["updated_at"] = time.Now().Format(constants.DataFormate)
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("playlist_id = ?", playlistId).Updates(fields).Error; err != nil {
		return nil, errors.Wrapf(err, "UpdatePlaylistFields failed, playlist:%d", playlistId)
	}
	return GetPlaylistInfo(ctx, playlistId)
}

// DeletePlaylist removes the playlist and its membership rows together.
func DeletePlaylist(ctx context.Context, playlistId int64) error {
	return DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.Playlist{}).Error; err != nil {
			return err
		}
		if err := tx.Where("playlist_id = ?", playlistId).Delete(&model.PlaylistVideo{}).Error; err != nil {
			return err
		}
		return nil
	})
}

func GetUserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	playlists := make([]*model.Playlist, 0)
	if err := DB.WithContext(ctx).Model(&model.Playlist{}).Where("user_id = ?", userId).Find(&playlists).Error; err != nil {
		return nil, err
	}
	return playlists, nil
}

// AddPlaylistVideoIfAbsent inserts the membership row. The unique
// (playlist, video) index turns a duplicate add into a no-op, which is
// what gives membership its set semantics.
func AddPlaylistVideoIfAbsent(ctx context.Context, playlistId, videoId int64) (bool, error) {
	member := &model.PlaylistVideo{
		PlaylistId: playlistId,
		VideoId:    videoId,
		CreatedAt:  time.Now().Format(constants.DataFormate),
	}
	if err := DB.WithContext(ctx).Create(member).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return false, nil
		}
		return false, errors.Wrapf(err, "AddPlaylistVideoIfAbsent failed, playlist:%d video:%d", playlistId, videoId)
	}
	return true, nil
}

// RemovePlaylistVideoIfPresent deletes the membership row; removing a
// non-member is a no-op.
func RemovePlaylistVideoIfPresent(ctx context.Context, playlistId, videoId int64) (bool, error) {
	result := DB.WithContext(ctx).Where("playlist_id = ? And video_id = ?", playlistId, videoId).Delete(&model.PlaylistVideo{})
	if result.Error != nil {
		return false, errors.Wrapf(result.Error, "RemovePlaylistVideoIfPresent failed, playlist:%d video:%d", playlistId, videoId)
	}
	return result.RowsAffected > 0, nil
}

// GetPlaylistVideoIds returns member video ids in insertion order.
func GetPlaylistVideoIds(ctx context.Context, playlistId int64) (*[]int64, error) {
	list := make([]int64, 0)
	if err := DB.WithContext(ctx).Model(&model.PlaylistVideo{}).Where("playlist_id = ?", playlistId).
		Order("id asc").Select("video_id").Scan(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}
