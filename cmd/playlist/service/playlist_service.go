package service

import (
	"context"
	"strings"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/cmd/playlist/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/authz"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type PlaylistService struct {
	ctx context.Context
}

func NewPlaylistService(ctx context.Context) *PlaylistService {
	return &PlaylistService{ctx: ctx}
}

func (service *PlaylistService) CreatePlaylist(ctx context.Context, userId int64, name, description string) (*model.Playlist, error) {
	name = strings.TrimSpace(name)
	description = strings.TrimSpace(description)
	if name == "" || description == "" {
		return nil, errno.ParamErr.WithMessage("Playlist name and description are required")
	}
	now := time.Now().Format(constants.DataFormate)
	playlist := &model.Playlist{
		PlaylistId:  utils.GenerateID(),
		UserId:      userId,
		Name:        name,
		Description: description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := db.CreatePlaylist(ctx, playlist); err != nil {
		return nil, err
	}
	return playlist, nil
}

// getOwnedPlaylist loads the playlist and checks the caller owns it.
func (service *PlaylistService) getOwnedPlaylist(ctx context.Context, userId, playlistId int64) (*model.Playlist, error) {
	if !utils.IsValidID(playlistId) {
		return nil, errno.ParamErr.WithMessage("Invalid playlist id")
	}
	playlist, err := db.GetPlaylistInfo(ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Playlist not found")
		}
		return nil, err
	}
	if err := authz.Authorize(userId, playlist.UserId); err != nil {
		return nil, err
	}
	return playlist, nil
}

func (service *PlaylistService) UpdatePlaylist(ctx context.Context, userId, playlistId int64, name, description string) (*model.Playlist, error) {
	if _, err := service.getOwnedPlaylist(ctx, userId, playlistId); err != nil {
		return nil, err
	}
	fields := make(map[string]interface{})
	if trimmed := strings.TrimSpace(name); trimmed != "" {
		fields["name"] = trimmed
	}
	if trimmed := strings.TrimSpace(description); trimmed != "" {
		fields["description"] = trimmed
	}
	if len(fields) == 0 {
		return nil, errno.ParamErr.WithMessage("At least one of name or description is required")
	}
	return db.UpdatePlaylistFields(ctx, playlistId, fields)
}

func (service *PlaylistService) DeletePlaylist(ctx context.Context, userId, playlistId int64) error {
	if _, err := service.getOwnedPlaylist(ctx, userId, playlistId); err != nil {
		return err
	}
	return db.DeletePlaylist(ctx, playlistId)
}

// AddVideo puts a video into the caller's playlist. Adding a video that
// is already a member succeeds without creating a second entry.
func (service *PlaylistService) AddVideo(ctx context.Context, userId, playlistId, videoId int64) error {
	if !utils.IsValidID(videoId) {
		return errno.ParamErr.WithMessage("Invalid video id")
	}
	if _, err := service.getOwnedPlaylist(ctx, userId, playlistId); err != nil {
		return err
	}
	exists, err := videodb.CheckVideoExistById(ctx, videoId)
	if err != nil {
		return err
	}
	if !exists {
		return errno.RecordNotFoundErr.WithMessage("Video not found")
	}
	_, err = db.AddPlaylistVideoIfAbsent(ctx, playlistId, videoId)
	return err
}

func (service *PlaylistService) RemoveVideo(ctx context.Context, userId, playlistId, videoId int64) error {
	if !utils.IsValidID(videoId) {
		return errno.ParamErr.WithMessage("Invalid video id")
	}
	if _, err := service.getOwnedPlaylist(ctx, userId, playlistId); err != nil {
		return err
	}
	_, err := db.RemovePlaylistVideoIfPresent(ctx, playlistId, videoId)
	return err
}

func (service *PlaylistService) GetUserPlaylists(ctx context.Context, userId int64) ([]*model.Playlist, error) {
	if !utils.IsValidID(userId) {
		return nil, errno.ParamErr.WithMessage("Invalid user id")
	}
	return db.GetUserPlaylists(ctx, userId)
}

func (service *PlaylistService) GetPlaylistById(ctx context.Context, playlistId int64) (*model.PlaylistWithVideos, error) {
	if !utils.IsValidID(playlistId) {
		return nil, errno.ParamErr.WithMessage("Invalid playlist id")
	}
	playlist, err := db.GetPlaylistInfo(ctx, playlistId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Playlist not found")
		}
		return nil, err
	}
	videoIds, err := db.GetPlaylistVideoIds(ctx, playlistId)
	if err != nil {
		return nil, err
	}
	return &model.PlaylistWithVideos{
		Playlist: *playlist,
		VideoIds: *videoIds,
	}, nil
}
