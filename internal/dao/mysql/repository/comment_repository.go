package repository

import (
	"outspecs_server/internal/model"

	"gorm.io/gorm"
)

type commentRepository struct {
	db *gorm.DB
}

// NewCommentRepository 创建评论 Repository
func NewCommentRepository(db *gorm.DB) CommentRepository {
	return &commentRepository{db: db}
}

// FindByID 按 id 查找评论
func (r *commentRepository) FindByID(id uint) (*model.Comment, error) {
	var comment model.Comment
	if err := r.db.First(&comment, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询评论 id=%d", id)
	}
	return &comment, nil
}

// FindByTypeAndParent 查找指定父级下某一类型的全部评论，按时间升序
func (r *commentRepository) FindByTypeAndParent(commentType model.CommentType, parentID uint) ([]model.Comment, error) {
	var comments []model.Comment
	if err := r.db.Where("type = ? AND parent_id = ?", commentType, parentID).
		Order("created_at").Find(&comments).Error; err != nil {
		return nil, wrapDBError(err, "查询评论列表")
	}
	return comments, nil
}

// Create 创建评论
func (r *commentRepository) Create(comment *model.Comment) error {
	if err := r.db.Create(comment).Error; err != nil {
		return wrapDBError(err, "创建评论")
	}
	return nil
}

// UpdateContent 仅更新评论内容
func (r *commentRepository) UpdateContent(id uint, content string) error {
	if err := r.db.Model(&model.Comment{}).Where("id = ?", id).
		Update("content", content).Error; err != nil {
		return wrapDBError(err, "更新评论内容")
	}
	return nil
}

// Delete 删除评论
func (r *commentRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Comment{}, id).Error; err != nil {
		return wrapDBError(err, "删除评论")
	}
	return nil
}
