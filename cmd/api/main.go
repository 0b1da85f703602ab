package main

import (
	"context"
	"fmt"

	interactionhandlers "VidTube.com/cmd/api/handlers/interaction"
	relationhandlers "VidTube.com/cmd/api/handlers/relation"
	"VidTube.com/cmd/api/router"
	interactiondal "VidTube.com/cmd/interaction/dal"
	playlistdal "VidTube.com/cmd/playlist/dal"
	relationdal "VidTube.com/cmd/relation/dal"
	userdal "VidTube.com/cmd/user/dal"
	videodal "VidTube.com/cmd/video/dal"
	videoservice "VidTube.com/cmd/video/service"
	"VidTube.com/config"
	"VidTube.com/pkg/cache"
	"VidTube.com/pkg/errno"
	"VidTube.com/pkg/jwt"
	"VidTube.com/pkg/lock"
	"VidTube.com/pkg/mq"
	"VidTube.com/pkg/oss"
	"VidTube.com/pkg/utils"
	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/app/middlewares/server/recovery"
	"github.com/cloudwego/hertz/pkg/app/server"
	"github.com/cloudwego/hertz/pkg/common/hlog"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
	"github.com/hertz-contrib/cors"
)

func rabbitmqURL() string {
	cfg := config.ConfigInfo.RabbitMq
	return fmt.Sprintf("amqp://%s:%s@%s/", cfg.Username, cfg.Password, cfg.Addr)
}

func Init() {
	config.Init()
	if err := utils.InitSnowflake(config.ConfigInfo.Server.WorkerID, config.ConfigInfo.Server.DatacenterID); err != nil {
		panic(err)
	}

	userdal.Init()
	videodal.Init()
	interactiondal.Init()
	relationdal.Init()
	playlistdal.Init()

	cache.Init()
	lock.Init(cache.Client)

	if err := oss.InitMinio(); err != nil {
		hlog.Warn("minio unavailable, uploads disabled: ", err)
	}

	producer, err := mq.NewProducer(rabbitmqURL())
	if err != nil {
		hlog.Warn("rabbitmq unavailable, engagement events disabled: ", err)
	} else {
		interactionhandlers.Init(producer)
		relationhandlers.Init(producer)
	}

	var consumer *mq.Consumer
	if producer != nil {
		if consumer, err = mq.NewConsumer(rabbitmqURL()); err != nil {
			hlog.Warn("rabbitmq consumer unavailable: ", err)
		}
	}
	videoservice.NewCounterSyncman(consumer).Run()
}

func main() {
	Init()
	addr := config.ConfigInfo.Server.Addr
	if addr == "" {
		addr = "0.0.0.0:8888"
	}
	r := server.New(
		server.WithHostPorts(addr),
		server.WithHandleMethodNotAllowed(true),
		server.WithMaxRequestBodySize(16*1024*1024*1024),
	)

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:8870", "http://localhost:8888"},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowCredentials: true,
		MaxAge:           12 * 3600,
	}))

	jwt.AccessTokenJwtInit()
	jwt.RefreshTokenJwtInit()

	r.Use(recovery.Recovery(recovery.WithRecoveryHandler(
		func(ctx context.Context, c *app.RequestContext, err interface{}, stack []byte) {
			hlog.SystemLogger().CtxErrorf(ctx, "[Recovery] err=%v\nstack=%s", err, stack)
			c.JSON(consts.StatusInternalServerError, map[string]interface{}{
				"code":    errno.ServiceErrCode,
				"message": fmt.Sprintf("[Recovery] err=%v", err),
			})
		})))

	router.Register(r)

	r.Spin()
}
