package memory

import (
	"sort"
	"time"

	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"

	"gorm.io/gorm"
)

type userRepository struct {
	store *Store
}

func (r *userRepository) FindByID(id uint) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "查询用户 id=%d", id)
	}
	return &user, nil
}

func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.Username == username {
			u := user
			return &u, nil
		}
	}
	return nil, errorx.Newf(errorx.CodeNotFound, "查询用户 username=%s", username)
}

func (r *userRepository) FindByProviderID(providerID string) (*model.User, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, user := range r.store.users {
		if user.ProviderID != "" && user.ProviderID == providerID {
			u := user
			return &u, nil
		}
	}
	return nil, errorx.Newf(errorx.CodeNotFound, "查询用户 provider_id=%s", providerID)
}

func (r *userRepository) Create(user *model.User) error {
	// 内存实现不经过 GORM，手动触发密码加密 Hook
	if err := user.BeforeSave(&gorm.DB{}); err != nil {
		return errorx.Wrap(err, errorx.CodeDBError, "创建用户")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.users {
		if existing.Username == user.Username {
			return errorx.Newf(errorx.CodeDBError, "用户名重复 username=%s", user.Username)
		}
	}
	r.store.nextUserID++
	user.ID = r.store.nextUserID
	user.CreatedAt = time.Now()
	user.UpdatedAt = user.CreatedAt
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepository) Update(user *model.User) error {
	if err := user.BeforeSave(&gorm.DB{}); err != nil {
		return errorx.Wrap(err, errorx.CodeDBError, "更新用户")
	}

	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if _, ok := r.store.users[user.ID]; !ok {
		return errorx.Newf(errorx.CodeNotFound, "更新用户 id=%d", user.ID)
	}
	user.UpdatedAt = time.Now()
	r.store.users[user.ID] = *user
	return nil
}

func (r *userRepository) UpdateStatus(id uint, status string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil
	}
	user.Status = status
	r.store.users[id] = user
	return nil
}

func (r *userRepository) UpdateRole(id uint, role string) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok {
		return nil
	}
	user.Role = role
	r.store.users[id] = user
	return nil
}

func (r *userRepository) DecrementAIQuota(id uint) (bool, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	user, ok := r.store.users[id]
	if !ok || user.AIRateLimit <= 0 {
		return false, nil
	}
	user.AIRateLimit--
	r.store.users[id] = user
	return true, nil
}

func (r *userRepository) SoftDelete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.users, id)
	return nil
}

func (r *userRepository) GetUserList(page, pageSize int) ([]model.User, int64, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	users := make([]model.User, 0, len(r.store.users))
	for _, user := range r.store.users {
		users = append(users, user)
	}
	sort.Slice(users, func(i, j int) bool { return users[i].ID < users[j].ID })
	total := int64(len(users))

	start := (page - 1) * pageSize
	if start >= len(users) {
		return []model.User{}, total, nil
	}
	end := start + pageSize
	if end > len(users) {
		end = len(users)
	}
	return users[start:end], total, nil
}
