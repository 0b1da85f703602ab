package dal

import (
	"VidTube.com/cmd/playlist/dal/db"
)

func Init() {
	db.Init()
}
