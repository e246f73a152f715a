package repository

import (
	"outspecs_server/internal/model"

	"gorm.io/gorm"
)

type reactionRepository struct {
	db *gorm.DB
}

// NewReactionRepository 创建用户行为 Repository
func NewReactionRepository(db *gorm.DB) ReactionRepository {
	return &reactionRepository{db: db}
}

// FindByTuple 按四元组查找行为记录
func (r *reactionRepository) FindByTuple(userID uint, targetType model.TargetType, targetID uint, reactionType model.ReactionType) (*model.Reaction, error) {
	var reaction model.Reaction
	if err := r.db.First(&reaction,
		"user_id = ? AND target_type = ? AND target_id = ? AND type = ?",
		userID, targetType, targetID, reactionType).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询行为记录 user_id=%d target=%s/%d type=%s",
			userID, targetType, targetID, reactionType)
	}
	return &reaction, nil
}

// Create 创建行为记录
func (r *reactionRepository) Create(reaction *model.Reaction) error {
	if err := r.db.Create(reaction).Error; err != nil {
		return wrapDBError(err, "创建行为记录")
	}
	return nil
}

// Delete 删除行为记录
func (r *reactionRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Reaction{}, id).Error; err != nil {
		return wrapDBError(err, "删除行为记录")
	}
	return nil
}

// Count 统计目标收到的某类行为数量
func (r *reactionRepository) Count(targetType model.TargetType, targetID uint, reactionType model.ReactionType) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Reaction{}).
		Where("target_type = ? AND target_id = ? AND type = ?", targetType, targetID, reactionType).
		Count(&count).Error; err != nil {
		return 0, wrapDBError(err, "统计行为数量")
	}
	return count, nil
}

// ListByUserAndType 查找用户发起的某类行为记录
func (r *reactionRepository) ListByUserAndType(userID uint, targetType model.TargetType, reactionType model.ReactionType) ([]model.Reaction, error) {
	var list []model.Reaction
	if err := r.db.Where("user_id = ? AND target_type = ? AND type = ?", userID, targetType, reactionType).
		Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, wrapDBError(err, "查询用户行为记录")
	}
	return list, nil
}

// ListByType 查找全站某类行为记录（管理端举报列表）
func (r *reactionRepository) ListByType(targetType model.TargetType, reactionType model.ReactionType) ([]model.Reaction, error) {
	var list []model.Reaction
	if err := r.db.Where("target_type = ? AND type = ?", targetType, reactionType).
		Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, wrapDBError(err, "查询行为记录列表")
	}
	return list, nil
}
