package repository

import (
	"outspecs_server/internal/model"

	"gorm.io/gorm"
)

type userRepository struct {
	db *gorm.DB
}

// NewUserRepository 创建用户 Repository
func NewUserRepository(db *gorm.DB) UserRepository {
	return &userRepository{db: db}
}

// FindByID 按 id 查找用户
func (r *userRepository) FindByID(id uint) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 id=%d", id)
	}
	return &user, nil
}

// FindByUsername 按用户名查找用户
func (r *userRepository) FindByUsername(username string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "username = ?", username).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 username=%s", username)
	}
	return &user, nil
}

// FindByProviderID 按 OAuth 提供方标识查找用户
func (r *userRepository) FindByProviderID(providerID string) (*model.User, error) {
	var user model.User
	if err := r.db.First(&user, "provider_id = ?", providerID).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户 provider_id=%s", providerID)
	}
	return &user, nil
}

// Create 创建用户
func (r *userRepository) Create(user *model.User) error {
	if err := r.db.Create(user).Error; err != nil {
		return wrapDBError(err, "创建用户")
	}
	return nil
}

// Update 更新用户信息
func (r *userRepository) Update(user *model.User) error {
	if err := r.db.Save(user).Error; err != nil {
		return wrapDBError(err, "更新用户信息")
	}
	return nil
}

// UpdateStatus 更新账号状态
func (r *userRepository) UpdateStatus(id uint, status string) error {
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Update("status", status).Error; err != nil {
		return wrapDBError(err, "更新用户状态")
	}
	return nil
}

// UpdateRole 更新用户角色
func (r *userRepository) UpdateRole(id uint, role string) error {
	if err := r.db.Model(&model.User{}).Where("id = ?", id).Update("role", role).Error; err != nil {
		return wrapDBError(err, "更新用户角色")
	}
	return nil
}

// DecrementAIQuota 剩余次数大于 0 时减一
// 条件更新保证并发下不会减到负数，返回 false 表示额度已用尽
func (r *userRepository) DecrementAIQuota(id uint) (bool, error) {
	result := r.db.Model(&model.User{}).
		Where("id = ? AND ai_rate_limit > 0", id).
		UpdateColumn("ai_rate_limit", gorm.Expr("ai_rate_limit - 1"))
	if result.Error != nil {
		return false, wrapDBError(result.Error, "扣减AI额度")
	}
	return result.RowsAffected > 0, nil
}

// SoftDelete 软删除用户
func (r *userRepository) SoftDelete(id uint) error {
	if err := r.db.Delete(&model.User{}, id).Error; err != nil {
		return wrapDBError(err, "删除用户")
	}
	return nil
}

// GetUserList 分页获取用户列表
func (r *userRepository) GetUserList(page, pageSize int) ([]model.User, int64, error) {
	var users []model.User
	var total int64
	if err := r.db.Model(&model.User{}).Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "统计用户总数")
	}
	if err := r.db.Order("id").Offset((page - 1) * pageSize).Limit(pageSize).Find(&users).Error; err != nil {
		return nil, 0, wrapDBError(err, "分页查询用户")
	}
	return users, total, nil
}
