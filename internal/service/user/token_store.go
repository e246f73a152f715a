package user

import (
	"context"
	"sync"
	"time"

	"outspecs_server/internal/dao/redis"
)

// TokenStore 保存 refresh token 的唯一标识，用于刷新时校验令牌是否仍然有效
// 同一用户重新登录或刷新后旧的 refresh token 立即作废
type TokenStore interface {
	SaveRefreshToken(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error
	GetRefreshToken(ctx context.Context, userID uint) (string, error)
	DeleteRefreshToken(ctx context.Context, userID uint) error
}

type redisTokenStore struct{}

// NewRedisTokenStore 创建基于 Redis 的 refresh token 存储
func NewRedisTokenStore() TokenStore {
	return &redisTokenStore{}
}

func (s *redisTokenStore) SaveRefreshToken(ctx context.Context, userID uint, tokenID string, ttl time.Duration) error {
	return redis.SetKeyEx(ctx, redis.RefreshTokenKey(userID), tokenID, ttl)
}

func (s *redisTokenStore) GetRefreshToken(ctx context.Context, userID uint) (string, error) {
	return redis.GetKeyNilIsErr(ctx, redis.RefreshTokenKey(userID))
}

func (s *redisTokenStore) DeleteRefreshToken(ctx context.Context, userID uint) error {
	return redis.DelKeyIfExists(ctx, redis.RefreshTokenKey(userID))
}

// MemoryTokenStore 内存实现，供单元测试使用
type MemoryTokenStore struct {
	mu     sync.Mutex
	tokens map[uint]string
}

func NewMemoryTokenStore() *MemoryTokenStore {
	return &MemoryTokenStore{tokens: make(map[uint]string)}
}

func (s *MemoryTokenStore) SaveRefreshToken(_ context.Context, userID uint, tokenID string, _ time.Duration) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.tokens[userID] = tokenID
	return nil
}

func (s *MemoryTokenStore) GetRefreshToken(_ context.Context, userID uint) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.tokens[userID], nil
}

func (s *MemoryTokenStore) DeleteRefreshToken(_ context.Context, userID uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.tokens, userID)
	return nil
}
