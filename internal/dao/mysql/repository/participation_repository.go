package repository

import (
	"outspecs_server/internal/model"

	"gorm.io/gorm"
)

type participationRepository struct {
	db *gorm.DB
}

// NewParticipationRepository 创建组队申请 Repository
func NewParticipationRepository(db *gorm.DB) ParticipationRepository {
	return &participationRepository{db: db}
}

// FindByID 按 id 查找申请
func (r *participationRepository) FindByID(id uint) (*model.Participation, error) {
	var p model.Participation
	if err := r.db.First(&p, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询申请 id=%d", id)
	}
	return &p, nil
}

// FindByUserAndPost 查找用户对帖子的申请记录
func (r *participationRepository) FindByUserAndPost(userID, postID uint) (*model.Participation, error) {
	var p model.Participation
	if err := r.db.First(&p, "user_id = ? AND post_id = ?", userID, postID).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询申请 user_id=%d post_id=%d", userID, postID)
	}
	return &p, nil
}

// FindByPost 查找帖子收到的全部申请
func (r *participationRepository) FindByPost(postID uint) ([]model.Participation, error) {
	var list []model.Participation
	if err := r.db.Where("post_id = ?", postID).Order("created_at").Find(&list).Error; err != nil {
		return nil, wrapDBError(err, "查询帖子申请列表")
	}
	return list, nil
}

// FindByUser 查找用户发出的全部申请
func (r *participationRepository) FindByUser(userID uint) ([]model.Participation, error) {
	var list []model.Participation
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&list).Error; err != nil {
		return nil, wrapDBError(err, "查询用户申请列表")
	}
	return list, nil
}

// CountByPostAndStatuses 统计帖子处于指定状态的申请数
func (r *participationRepository) CountByPostAndStatuses(postID uint, statuses []string) (int64, error) {
	var count int64
	if err := r.db.Model(&model.Participation{}).
		Where("post_id = ? AND status IN ?", postID, statuses).
		Count(&count).Error; err != nil {
		return 0, wrapDBError(err, "统计申请数量")
	}
	return count, nil
}

// Create 创建申请
func (r *participationRepository) Create(p *model.Participation) error {
	if err := r.db.Create(p).Error; err != nil {
		return wrapDBError(err, "创建申请")
	}
	return nil
}

// UpdateStatus 更新申请状态
func (r *participationRepository) UpdateStatus(id uint, status string) error {
	if err := r.db.Model(&model.Participation{}).Where("id = ?", id).
		Update("status", status).Error; err != nil {
		return wrapDBError(err, "更新申请状态")
	}
	return nil
}

// Delete 删除申请
func (r *participationRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Participation{}, id).Error; err != nil {
		return wrapDBError(err, "删除申请")
	}
	return nil
}
