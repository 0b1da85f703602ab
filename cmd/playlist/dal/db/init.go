package db

import (
	"VidTube.com/cmd/model"
	"VidTube.com/pkg/utils"
	"gorm.io/driver/mysql"
	"gorm.io/gorm"
)

var DB *gorm.DB

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

	if err = DB.AutoMigrate(&model.Playlist{}, &model.PlaylistVideo{}); err != nil {
		panic(err)
	}
}
