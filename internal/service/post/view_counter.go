// view_counter.go
// 浏览量计数器抽象，生产环境走 Redis 累积
package post

import (
	"context"

	myredis "outspecs_server/internal/dao/redis"
)

// viewFlushThreshold Redis 中累积到该值时回写数据库
const viewFlushThreshold = 10

// ViewCounter 浏览量计数器
type ViewCounter interface {
	// Incr 计数加一，返回当前累积增量
	Incr(ctx context.Context, postID uint) (int64, error)
	// Take 取出并清零累积增量
	Take(ctx context.Context, postID uint) (int64, error)
}

// redisViewCounter Redis 计数器实现
type redisViewCounter struct{}

// NewRedisViewCounter 创建 Redis 浏览量计数器
// 调用前需完成 redis.Init
func NewRedisViewCounter() ViewCounter {
	return &redisViewCounter{}
}

func (c *redisViewCounter) Incr(ctx context.Context, postID uint) (int64, error) {
	return myredis.IncrViewCount(ctx, postID)
}

func (c *redisViewCounter) Take(ctx context.Context, postID uint) (int64, error) {
	return myredis.TakeViewCount(ctx, postID)
}
