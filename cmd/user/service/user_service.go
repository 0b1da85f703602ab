package service

import (
	"context"
	"strings"

	"VidTube.com/cmd/model"
	relationdb "VidTube.com/cmd/relation/dal/db"
	"VidTube.com/cmd/user/dal/db"
	videodb "VidTube.com/cmd/video/dal/db"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

type RegisterRequest struct {
	UserName string `json:"user_name"`
	FullName string `json:"full_name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserService struct {
	ctx context.Context
}

func NewUserService(ctx context.Context) *UserService {
	return &UserService{ctx: ctx}
}

func (service *UserService) Register(ctx context.Context, req *RegisterRequest) (*model.User, error) {
	req.UserName = strings.TrimSpace(req.UserName)
	req.Email = strings.TrimSpace(req.Email)
	if req.UserName == "" || req.Email == "" || req.Password == "" {
		return nil, errno.ParamErr.WithMessage("Username, email and password are required")
	}
	hashed, err := utils.Crypt(req.Password)
	if err != nil {
		return nil, err
	}
	user := &model.User{
		UserId:   utils.GenerateID(),
		UserName: strings.ToLower(req.UserName),
		FullName: req.FullName,
		Email:    req.Email,
	}
	if err := db.CreateUser(ctx, user, hashed); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, errno.ParamErr.WithMessage("Username or email already taken")
		}
		return nil, err
	}
	return user, nil
}

// Login verifies credentials and returns the public account; token
// issuance and refresh-token persistence happen in the handler.
func (service *UserService) Login(ctx context.Context, username, password string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, errno.ParamErr.WithMessage("Username and password are required")
	}
	user, err, ok := db.CheckUser(ctx, username, password)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, errno.AuthorizationFailedErr.WithMessage("Incorrect username or password")
	}
	return user, nil
}

func (service *UserService) StoreRefreshToken(ctx context.Context, userId int64, token string) error {
	return db.UpdateRefreshToken(ctx, userId, token)
}

// Logout clears the stored refresh token so old tokens cannot reissue.
func (service *UserService) Logout(ctx context.Context, userId int64) error {
	return db.UpdateRefreshToken(ctx, userId, "")
}

func (service *UserService) GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	if !utils.IsValidID(userId) {
		return nil, errno.ParamErr.WithMessage("Invalid user id")
	}
	user, err := db.GetUserById(ctx, userId)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("User not found")
		}
		return nil, err
	}
	return user, nil
}

// GetChannelProfile assembles the channel view for the viewer: public
// account fields, both subscription counts, and whether the viewer is
// subscribed. An anonymous viewer sees is_subscribed=false.
func (service *UserService) GetChannelProfile(ctx context.Context, viewerId int64, username string) (*model.ChannelProfile, error) {
	username = strings.TrimSpace(username)
	if username == "" {
		return nil, errno.ParamErr.WithMessage("Username is required")
	}
	user, err := db.GetUserByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errno.RecordNotFoundErr.WithMessage("Channel not found")
		}
		return nil, err
	}
	subscribers, err := relationdb.GetSubscriberCount(ctx, user.UserId)
	if err != nil {
		return nil, err
	}
	subscriptions, err := relationdb.GetSubscriptionCount(ctx, user.UserId)
	if err != nil {
		return nil, err
	}
	isSubscribed := false
	if utils.IsValidID(viewerId) {
		isSubscribed, err = relationdb.IsSubscriptionExist(ctx, viewerId, user.UserId)
		if err != nil {
			return nil, err
		}
	}
	return &model.ChannelProfile{
		UserId:            user.UserId,
		UserName:          user.UserName,
		FullName:          user.FullName,
		Email:             user.Email,
		AvatarUrl:         user.AvatarUrl,
		CoverUrl:          user.CoverUrl,
		SubscribersCount:  subscribers,
		SubscriptionCount: subscriptions,
		IsSubscribed:      isSubscribed,
	}, nil
}

// AddWatchRecord appends the video to the watch history; re-watching is
// a no-op so the history keeps first-watch order.
func (service *UserService) AddWatchRecord(ctx context.Context, userId, videoId int64) error {
	if !utils.IsValidID(videoId) {
		return errno.ParamErr.WithMessage("Invalid video id")
	}
	exists, err := videodb.CheckVideoExistById(ctx, videoId)
	if err != nil {
		return err
	}
	if !exists {
		return errno.RecordNotFoundErr.WithMessage("Video not found")
	}
	_, err = db.AddWatchRecordIfAbsent(ctx, userId, videoId)
	return err
}

func (service *UserService) GetWatchHistory(ctx context.Context, userId int64) ([]*model.VideoWithOwner, error) {
	if !utils.IsValidID(userId) {
		return nil, errno.ParamErr.WithMessage("Invalid user id")
	}
	return db.GetWatchHistory(ctx, userId)
}

func (service *UserService) UpdateAvatar(ctx context.Context, userId int64, data []byte, contentType string) (string, error) {
	url, err := oss.UploadAvatar(ctx, data, utils.ConvertInt64ToString(userId), contentType)
	if err != nil {
		return "", err
	}
	if err := db.UpdateUserAvatar(ctx, userId, url); err != nil {
		return "", err
	}
	return url, nil
}

func (service *UserService) UpdateCover(ctx context.Context, userId int64, data []byte, contentType string) (string, error) {
	url, err := oss.UploadCover(ctx, data, utils.ConvertInt64ToString(userId), contentType)
	if err != nil {
		return "", err
	}
	if err := db.UpdateUserCover(ctx, userId, url); err != nil {
		return "", err
	}
	return url, nil
}
