// Package redis 提供 Redis 缓存操作的封装
// 用于刷新令牌会话管理和帖子浏览量计数
// 使用 github.com/redis/go-redis/v9 作为底层客户端
package redis

import (
	"context"
	"errors"
	"strconv"
	"time"

	"outspecs_server/internal/config"
	"outspecs_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// redisClient 全局 Redis 客户端实例
var redisClient *redis.Client

// Init 初始化 Redis 连接
// 从配置文件读取连接参数并创建客户端实例
func Init(cfg *config.RedisConfig) error {
	addr := cfg.Host + ":" + strconv.Itoa(cfg.Port)

	redisClient = redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: cfg.Password,
		DB:       cfg.Db,
		// 连接池配置
		PoolSize:     50,
		MinIdleConns: 10,
	})

	if err := redisClient.Ping(context.Background()).Err(); err != nil {
		return errorx.Wrap(err, errorx.CodeCacheError, "redis ping")
	}
	return nil
}

// SetKeyEx 设置键值对并指定过期时间
func SetKeyEx(ctx context.Context, key string, value string, timeout time.Duration) error {
	if err := redisClient.Set(ctx, key, value, timeout).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis set key %s", key)
	}
	return nil
}

// GetKey 获取键对应的值
// 键不存在时返回空字符串和 nil，不视为错误
func GetKey(ctx context.Context, key string) (string, error) {
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", nil
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// GetKeyNilIsErr 获取键对应的值，键不存在返回 CodeNotFound
func GetKeyNilIsErr(ctx context.Context, key string) (string, error) {
	value, err := redisClient.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return "", errorx.Wrapf(err, errorx.CodeNotFound, "redis key %s not found", key)
		}
		return "", errorx.Wrapf(err, errorx.CodeCacheError, "redis get key %s", key)
	}
	return value, nil
}

// RefreshTokenKey 刷新令牌会话键：refresh_token:{userID}
// 一个用户只保留一个有效刷新令牌，重新登录会覆盖旧令牌
func RefreshTokenKey(userID uint) string {
	return "refresh_token:" + strconv.FormatUint(uint64(userID), 10)
}

// DelKeyIfExists 删除键（如果存在）
func DelKeyIfExists(ctx context.Context, key string) error {
	if err := redisClient.Del(ctx, key).Err(); err != nil {
		return errorx.Wrapf(err, errorx.CodeCacheError, "redis del key %s", key)
	}
	return nil
}
