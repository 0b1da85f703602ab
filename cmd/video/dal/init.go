package dal

import (
	"VidTube.com/cmd/video/dal/db"
)

func Init() {
	db.Init()
}
