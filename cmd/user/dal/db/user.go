package db

import (
	"context"
	"strings"
	"time"

	"VidTube.com/cmd/model"
	"VidTube.com/pkg/constants"
	"VidTube.com/pkg/utils"
	"github.com/pkg/errors"
)

const TableName = "users"

// UserWithPassword is the internal account row. The password and refresh
// token columns never leave this package: reads convert to model.User.
type UserWithPassword struct {
	UserId       int64  `gorm:"column:user_id;primaryKey" json:"user_id"`
	UserName     string `gorm:"column:user_name;uniqueIndex" json:"user_name"`
	FullName     string `gorm:"column:full_name" json:"full_name"`
	Password     string `gorm:"column:password" json:"-"`
	RefreshToken string `gorm:"column:refresh_token" json:"-"`
	Email        string `gorm:"column:email;uniqueIndex" json:"email"`
	AvatarUrl    string `gorm:"column:avatar_url" json:"avatar_url"`
	CoverUrl     string `gorm:"column:cover_url" json:"cover_url"`
	CreatedAt    string `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    string `gorm:"column:updated_at" json:"updated_at"`
	DeletedAt    string `gorm:"column:deleted_at" json:"deleted_at"`
}

func (u *UserWithPassword) TableName() string {
	return TableName
}

func (u *UserWithPassword) convertToUser() *model.User {
	return &model.User{
		UserId:    u.UserId,
		UserName:  u.UserName,
		FullName:  u.FullName,
		Email:     u.Email,
		AvatarUrl: u.AvatarUrl,
		CoverUrl:  u.CoverUrl,
		CreatedAt: u.CreatedAt,
		UpdatedAt: u.UpdatedAt,
		DeletedAt: u.DeletedAt,
	}
}

func CreateUser(ctx context.Context, user *model.User, hashedPassword string) error {
	now := time.Now().Format(constants.DataFormate)
	row := &UserWithPassword{
		UserId:    user.UserId,
		UserName:  strings.ToLower(user.UserName),
		FullName:  user.FullName,
		Password:  hashedPassword,
		Email:     user.Email,
		AvatarUrl: user.AvatarUrl,
		CoverUrl:  user.CoverUrl,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := DB.WithContext(ctx).Create(row).Error; err != nil {
		return errors.Wrapf(err, "CreateUser failed, username:%s", user.UserName)
	}
	return nil
}

// CheckUser verifies the login credential and returns the public account.
// A non-nil error means the store query itself failed; a missing user or
// wrong password is reported as ok=false with no error so the caller can
// answer with a credential failure instead of a service failure.
func CheckUser(ctx context.Context, username, password string) (*model.User, error, bool) {
	var row UserWithPassword
	var count int64
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).Where("user_name = ?", strings.ToLower(username)).Count(&count).Find(&row).Error; err != nil {
		return nil, errors.Wrap(err, "CheckUser query failed"), false
	}
	if count == 0 {
		return nil, nil, false
	}
	if _, ok := utils.VerifyPassword(password, row.Password); !ok {
		return nil, nil, false
	}
	return row.convertToUser(), nil, true
}

// GetUserById returns the public account or gorm.ErrRecordNotFound.
func GetUserById(ctx context.Context, userId int64) (*model.User, error) {
	var row UserWithPassword
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).Where("user_id = ?", userId).First(&row).Error; err != nil {
		return nil, err
	}
	return row.convertToUser(), nil
}

// GetUserByUsername resolves the account by its case-normalized username.
func GetUserByUsername(ctx context.Context, username string) (*model.User, error) {
	var row UserWithPassword
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).Where("user_name = ?", strings.ToLower(username)).First(&row).Error; err != nil {
		return nil, err
	}
	return row.convertToUser(), nil
}

func CheckUserExistById(ctx context.Context, userId int64) (bool, error) {
	var count int64
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).Where("user_id = ?", userId).Count(&count).Error; err != nil {
		return false, errors.Wrapf(err, "CheckUserExistById failed, user:%d", userId)
	}
	return count > 0, nil
}

func UpdateUserAvatar(ctx context.Context, userId int64, avatarUrl string) error {
	return updateUserField(ctx, userId, "avatar_url", avatarUrl)
}

func UpdateUserCover(ctx context.Context, userId int64, coverUrl string) error {
	return updateUserField(ctx, userId, "cover_url", coverUrl)
}

func UpdateRefreshToken(ctx context.Context, userId int64, token string) error {
	return updateUserField(ctx, userId, "refresh_token", token)
}

func updateUserField(ctx context.Context, userId int64, column string, value string) error {
	if err := DB.WithContext(ctx).Model(&UserWithPassword{}).Where("user_id = ?", userId).Updates(map[string]interface{}{
		column:       value,
		"updated_at": time.Now().Format(constants.DataFormate),
	}).Error; err != nil {
		return errors.Wrapf(err, "update %s failed, user:%d", column, userId)
	}
	return nil
}
