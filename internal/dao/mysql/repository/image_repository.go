package repository

import (
	"outspecs_server/internal/model"

	"gorm.io/gorm"
)

type imageRepository struct {
	db *gorm.DB
}

// NewImageRepository 创建帖子图片 Repository
func NewImageRepository(db *gorm.DB) ImageRepository {
	return &imageRepository{db: db}
}

// FindByPostID 查找帖子的全部图片
func (r *imageRepository) FindByPostID(postID uint) ([]model.Image, error) {
	var images []model.Image
	if err := r.db.Where("post_id = ?", postID).Find(&images).Error; err != nil {
		return nil, wrapDBError(err, "查询帖子图片")
	}
	return images, nil
}

// CreateBatch 批量创建图片记录
func (r *imageRepository) CreateBatch(images []model.Image) error {
	if len(images) == 0 {
		return nil
	}
	if err := r.db.Create(&images).Error; err != nil {
		return wrapDBError(err, "创建图片记录")
	}
	return nil
}

// DeleteByPostID 删除帖子的全部图片记录
func (r *imageRepository) DeleteByPostID(postID uint) error {
	if err := r.db.Where("post_id = ?", postID).Delete(&model.Image{}).Error; err != nil {
		return wrapDBError(err, "删除图片记录")
	}
	return nil
}
