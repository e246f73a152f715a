// 本文件实现内存对象存储，供单元测试使用
package storage

import (
	"context"
	"io"
	"sync"

	"github.com/google/uuid"
)

// MemoryStorage 内存对象存储实现
// 记录上传和删除过的 key，便于测试断言补偿删除行为
type MemoryStorage struct {
	mu      sync.Mutex
	objects map[string][]byte
	deleted []string
}

// NewMemoryStorage 创建空的内存对象存储
func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{objects: make(map[string][]byte)}
}

// Upload 读取文件内容并以随机 key 存入内存
func (s *MemoryStorage) Upload(ctx context.Context, file io.Reader) (string, string, error) {
	data, err := io.ReadAll(file)
	if err != nil {
		return "", "", err
	}
	key := uuid.NewString()
	s.mu.Lock()
	defer s.mu.Unlock()
	s.objects[key] = data
	return "memory://" + key, key, nil
}

// Delete 删除指定 key 的对象
func (s *MemoryStorage) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.objects, key)
	s.deleted = append(s.deleted, key)
	return nil
}

// Exists 判断对象是否存在
func (s *MemoryStorage) Exists(key string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.objects[key]
	return ok
}

// DeletedKeys 返回按顺序记录的删除过的 key
func (s *MemoryStorage) DeletedKeys() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	keys := make([]string, len(s.deleted))
	copy(keys, s.deleted)
	return keys
}
