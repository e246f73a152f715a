package repository

import (
	"outspecs_server/internal/model"

	"gorm.io/gorm"
)

type postRepository struct {
	db *gorm.DB
}

// NewPostRepository 创建帖子 Repository
func NewPostRepository(db *gorm.DB) PostRepository {
	return &postRepository{db: db}
}

// FindByID 按 id 查找帖子
func (r *postRepository) FindByID(id uint) (*model.Post, error) {
	var post model.Post
	if err := r.db.First(&post, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询帖子 id=%d", id)
	}
	return &post, nil
}

// FindByIDs 批量按 id 查找帖子
func (r *postRepository) FindByIDs(ids []uint) ([]model.Post, error) {
	if len(ids) == 0 {
		return []model.Post{}, nil
	}
	var posts []model.Post
	if err := r.db.Where("id IN ?", ids).Find(&posts).Error; err != nil {
		return nil, wrapDBError(err, "批量查询帖子")
	}
	return posts, nil
}

// Create 创建帖子
func (r *postRepository) Create(post *model.Post) error {
	if err := r.db.Create(post).Error; err != nil {
		return wrapDBError(err, "创建帖子")
	}
	return nil
}

// Update 更新帖子
func (r *postRepository) Update(post *model.Post) error {
	if err := r.db.Save(post).Error; err != nil {
		return wrapDBError(err, "更新帖子")
	}
	return nil
}

// Delete 删除帖子
func (r *postRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.Post{}, id).Error; err != nil {
		return wrapDBError(err, "删除帖子")
	}
	return nil
}

// ListByType 按类型分页查询帖子，按创建时间倒序
func (r *postRepository) ListByType(postType model.PostType, page, pageSize int) ([]model.Post, int64, error) {
	var posts []model.Post
	var total int64
	query := r.db.Model(&model.Post{}).Where("type = ?", postType)
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, wrapDBError(err, "统计帖子总数")
	}
	if err := query.Order("created_at DESC").
		Offset((page - 1) * pageSize).Limit(pageSize).
		Find(&posts).Error; err != nil {
		return nil, 0, wrapDBError(err, "分页查询帖子")
	}
	return posts, total, nil
}

// ListByUser 查询指定用户的全部帖子
func (r *postRepository) ListByUser(userID uint) ([]model.Post, error) {
	var posts []model.Post
	if err := r.db.Where("user_id = ?", userID).Order("created_at DESC").Find(&posts).Error; err != nil {
		return nil, wrapDBError(err, "查询用户帖子")
	}
	return posts, nil
}

// AddViewCount 浏览量加上指定增量
func (r *postRepository) AddViewCount(id uint, delta int64) error {
	if delta == 0 {
		return nil
	}
	if err := r.db.Model(&model.Post{}).Where("id = ?", id).
		UpdateColumn("view_count", gorm.Expr("view_count + ?", delta)).Error; err != nil {
		return wrapDBError(err, "更新浏览量")
	}
	return nil
}
