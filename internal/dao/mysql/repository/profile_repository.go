package repository

import (
	"outspecs_server/internal/model"

	"gorm.io/gorm"
)

type profileRepository struct {
	db *gorm.DB
}

// NewProfileRepository 创建用户资料 Repository
func NewProfileRepository(db *gorm.DB) ProfileRepository {
	return &profileRepository{db: db}
}

// FindByUserID 按用户 id 查找资料
func (r *profileRepository) FindByUserID(userID uint) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.First(&profile, "user_id = ?", userID).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户资料 user_id=%d", userID)
	}
	return &profile, nil
}

// FindByNickname 按昵称查找资料
func (r *profileRepository) FindByNickname(nickname string) (*model.Profile, error) {
	var profile model.Profile
	if err := r.db.First(&profile, "nickname = ?", nickname).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询用户资料 nickname=%s", nickname)
	}
	return &profile, nil
}

// Create 创建资料
func (r *profileRepository) Create(profile *model.Profile) error {
	if err := r.db.Create(profile).Error; err != nil {
		return wrapDBError(err, "创建用户资料")
	}
	return nil
}

// Update 更新资料
func (r *profileRepository) Update(profile *model.Profile) error {
	if err := r.db.Save(profile).Error; err != nil {
		return wrapDBError(err, "更新用户资料")
	}
	return nil
}

// DeleteByUserID 删除指定用户的资料
func (r *profileRepository) DeleteByUserID(userID uint) error {
	if err := r.db.Where("user_id = ?", userID).Delete(&model.Profile{}).Error; err != nil {
		return wrapDBError(err, "删除用户资料")
	}
	return nil
}
