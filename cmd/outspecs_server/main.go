package main

import (
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"outspecs_server/internal/config"
	dao "outspecs_server/internal/dao/mysql"
	myredis "outspecs_server/internal/dao/redis"
	"outspecs_server/internal/handler"
	"outspecs_server/internal/https_server"
	"outspecs_server/internal/infrastructure/logger"
	"outspecs_server/internal/infrastructure/storage"
	"outspecs_server/internal/service"
	"outspecs_server/pkg/util/jwt"
	"outspecs_server/pkg/util/snowflake"
)

func main() {
	// 1. 加载配置
	conf := config.GetConfig()

	// 2. 初始化日志
	if err := logger.Init(&conf.LogConfig, conf.MainConfig.Mode); err != nil {
		log.Fatalf("init logger failed: %v", err)
	}
	zap.L().Info("日志初始化成功")

	if conf.MainConfig.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	// 3. 初始化雪花节点和 JWT
	snowflake.Init(conf.SnowflakeConfig.MachineID)
	jwt.Init(conf.JWTConfig.Secret, conf.JWTConfig.AccessTokenExpiry, conf.JWTConfig.RefreshTokenExpiry)

	// 4. 初始化数据库
	repos, err := dao.Init(&conf.MysqlConfig)
	if err != nil {
		zap.L().Fatal("数据库初始化失败", zap.Error(err))
	}
	zap.L().Info("数据库初始化成功")

	// 5. 初始化 Redis
	if err = myredis.Init(&conf.RedisConfig); err != nil {
		zap.L().Fatal("Redis 初始化失败", zap.Error(err))
	}
	zap.L().Info("Redis 初始化成功")

	// 6. 初始化对象存储
	store, err := storage.NewCloudinaryStorage(&conf.StorageConfig)
	if err != nil {
		zap.L().Fatal("对象存储初始化失败", zap.Error(err))
	}
	zap.L().Info("对象存储初始化成功")

	// 7. 初始化 Service 层（依赖注入），通知分发器随之启动
	service.InitServices(conf, repos, store)
	zap.L().Info("Service 层初始化成功")

	// 8. 初始化 HTTP 服务器
	engine := https_server.Init(handler.NewHandlers(service.Svc))
	zap.L().Info("HTTP 服务器初始化成功")

	go func() {
		addr := fmt.Sprintf("%s:%d", conf.MainConfig.Host, conf.MainConfig.Port)
		if err := engine.Run(addr); err != nil {
			zap.L().Fatal("server running fault", zap.Error(err))
		}
	}()

	// 等待退出信号
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	zap.L().Info("关闭服务器...")
	service.Svc.Close()
	zap.L().Info("服务器已关闭")
}
