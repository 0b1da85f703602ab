package router

import (
	interaction "VidTube.com/cmd/api/handlers/interaction"
	playlist "VidTube.com/cmd/api/handlers/playlist"
	relation "VidTube.com/cmd/api/handlers/relation"
	user "VidTube.com/cmd/api/handlers/user"
	video "VidTube.com/cmd/api/handlers/video"
	"VidTube.com/cmd/api/router/authfunc"
	"github.com/cloudwego/hertz/pkg/app/server"
)

// Register mounts the HTTP surface. Reads that work for anonymous
// viewers stay outside the auth group.
func Register(r *server.Hertz) {
	api := r.Group("/api/v1")

	api.POST("/user/register", user.RegisterUser)
	api.POST("/user/login", user.LoginUser)
	api.POST("/user/token/refresh", user.RefreshAccessToken)
	api.GET("/channel/:user_name", user.ChannelProfile)

	api.GET("/video/feed", video.VideoList)
	api.GET("/video/info", video.GetVideo)
	api.GET("/comment/list", interaction.ListComment)
	api.GET("/playlist/info", playlist.PlaylistById)
	api.GET("/subscription/subscribers", relation.SubscriberList)

	auth := api.Group("/", authfunc.Auth()...)

	auth.POST("/user/logout", user.LogoutUser)
	auth.POST("/user/avatar", user.UploadAvatar)
	auth.POST("/user/cover", user.UploadCover)
	auth.POST("/history", user.AddWatchRecord)
	auth.GET("/history", user.WatchHistory)

	auth.POST("/video/publish", video.PublishVideo)

	auth.POST("/like/action", interaction.LikeAction)
	auth.GET("/like/videos", interaction.GetLikedVideos)
	auth.POST("/comment/create", interaction.CreateComment)
	auth.POST("/comment/update", interaction.UpdateComment)
	auth.POST("/comment/delete", interaction.DeleteComment)

	auth.POST("/subscription/action", relation.ToggleSubscription)
	auth.GET("/subscription/channels", relation.SubscribedChannels)

	auth.POST("/playlist/create", playlist.CreatePlaylist)
	auth.POST("/playlist/update", playlist.UpdatePlaylist)
	auth.POST("/playlist/delete", playlist.DeletePlaylist)
	auth.POST("/playlist/video/add", playlist.AddVideo)
	auth.POST("/playlist/video/remove", playlist.RemoveVideo)
	auth.GET("/playlist/mine", playlist.UserPlaylists)
}
