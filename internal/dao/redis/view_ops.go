// 本文件包含帖子浏览量计数操作
// 热点帖子的浏览量先累积在 Redis，定期回写数据库，避免每次浏览都写库
package redis

import (
	"context"
	"errors"
	"strconv"

	"outspecs_server/pkg/errorx"

	"github.com/redis/go-redis/v9"
)

// viewCountKey 浏览量计数键：view_count:{postID}
func viewCountKey(postID uint) string {
	return "view_count:" + strconv.FormatUint(uint64(postID), 10)
}

// IncrViewCount 帖子浏览量加一，返回 Redis 中累积的增量
func IncrViewCount(ctx context.Context, postID uint) (int64, error) {
	count, err := redisClient.Incr(ctx, viewCountKey(postID)).Result()
	if err != nil {
		return 0, errorx.Wrapf(err, errorx.CodeCacheError, "redis incr view count post_id=%d", postID)
	}
	return count, nil
}

// TakeViewCount 取出并清零帖子的累积浏览量增量
// 回写数据库前调用，GETDEL 保证取出与清零的原子性
func TakeViewCount(ctx context.Context, postID uint) (int64, error) {
	value, err := redisClient.GetDel(ctx, viewCountKey(postID)).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return 0, nil
		}
		return 0, errorx.Wrapf(err, errorx.CodeCacheError, "redis getdel view count post_id=%d", postID)
	}
	count, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, errorx.Wrap(err, errorx.CodeCacheError, "parse view count")
	}
	return count, nil
}
