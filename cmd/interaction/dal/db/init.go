package db

import (
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

// Init opens the interaction DB handle. TranslateError is required: the
// toggle path relies on gorm.ErrDuplicatedKey to absorb races on the
// unique (user, target) like indexes.
func Init() {
	var err error
	dsn := utils.GetMysqlDsn()
	DB, err = gorm.Open(mysql.Open(dsn),
		&gorm.Config{
			PrepareStmt:            true,
			SkipDefaultTransaction: true,
			TranslateError:         true,
		},
	)
	if err != nil {
		panic(err)
	}

	if err = DB.AutoMigrate(&model.Comment{}, &model.VideoLike{}, &model.CommentLike{}); err != nil {
		panic(err)
	}
}
