package repository

import (
	"outspecs_server/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type postDetailRepository struct {
	db *gorm.DB
}

// NewPostDetailRepository 创建帖子明细 Repository
func NewPostDetailRepository(db *gorm.DB) PostDetailRepository {
	return &postDetailRepository{db: db}
}

// GetTeamInfo 查找组队帖明细
func (r *postDetailRepository) GetTeamInfo(postID uint) (*model.PostTeamInfo, error) {
	var info model.PostTeamInfo
	if err := r.db.First(&info, "post_id = ?", postID).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询组队信息 post_id=%d", postID)
	}
	return &info, nil
}

// SaveTeamInfo 写入组队帖明细，已存在时覆盖
func (r *postDetailRepository) SaveTeamInfo(info *model.PostTeamInfo) error {
	if err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(info).Error; err != nil {
		return wrapDBError(err, "保存组队信息")
	}
	return nil
}

// UpdateTeamStatus 更新组队帖招募状态
func (r *postDetailRepository) UpdateTeamStatus(postID uint, status string) error {
	if err := r.db.Model(&model.PostTeamInfo{}).Where("post_id = ?", postID).
		Update("status", status).Error; err != nil {
		return wrapDBError(err, "更新招募状态")
	}
	return nil
}

// DeleteTeamInfo 删除组队帖明细
func (r *postDetailRepository) DeleteTeamInfo(postID uint) error {
	if err := r.db.Where("post_id = ?", postID).Delete(&model.PostTeamInfo{}).Error; err != nil {
		return wrapDBError(err, "删除组队信息")
	}
	return nil
}

// GetQnA 查找问答帖明细
func (r *postDetailRepository) GetQnA(postID uint) (*model.PostQnA, error) {
	var qna model.PostQnA
	if err := r.db.First(&qna, "post_id = ?", postID).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询问答信息 post_id=%d", postID)
	}
	return &qna, nil
}

// SaveQnA 写入问答帖明细，已存在时覆盖
func (r *postDetailRepository) SaveQnA(qna *model.PostQnA) error {
	if err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(qna).Error; err != nil {
		return wrapDBError(err, "保存问答信息")
	}
	return nil
}

// DeleteQnA 删除问答帖明细
func (r *postDetailRepository) DeleteQnA(postID uint) error {
	if err := r.db.Where("post_id = ?", postID).Delete(&model.PostQnA{}).Error; err != nil {
		return wrapDBError(err, "删除问答信息")
	}
	return nil
}

// GetJob 查找招聘帖明细
func (r *postDetailRepository) GetJob(postID uint) (*model.PostJob, error) {
	var job model.PostJob
	if err := r.db.First(&job, "post_id = ?", postID).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询招聘信息 post_id=%d", postID)
	}
	return &job, nil
}

// SaveJob 写入招聘帖明细，已存在时覆盖
func (r *postDetailRepository) SaveJob(job *model.PostJob) error {
	if err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(job).Error; err != nil {
		return wrapDBError(err, "保存招聘信息")
	}
	return nil
}

// DeleteJob 删除招聘帖明细
func (r *postDetailRepository) DeleteJob(postID uint) error {
	if err := r.db.Where("post_id = ?", postID).Delete(&model.PostJob{}).Error; err != nil {
		return wrapDBError(err, "删除招聘信息")
	}
	return nil
}

// GetHangout 查找活动帖明细
func (r *postDetailRepository) GetHangout(postID uint) (*model.PostHangout, error) {
	var hangout model.PostHangout
	if err := r.db.First(&hangout, "post_id = ?", postID).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询活动信息 post_id=%d", postID)
	}
	return &hangout, nil
}

// SaveHangout 写入活动帖明细，已存在时覆盖
func (r *postDetailRepository) SaveHangout(hangout *model.PostHangout) error {
	if err := r.db.Clauses(clause.OnConflict{UpdateAll: true}).Create(hangout).Error; err != nil {
		return wrapDBError(err, "保存活动信息")
	}
	return nil
}

// DeleteHangout 删除活动帖明细
func (r *postDetailRepository) DeleteHangout(postID uint) error {
	if err := r.db.Where("post_id = ?", postID).Delete(&model.PostHangout{}).Error; err != nil {
		return wrapDBError(err, "删除活动信息")
	}
	return nil
}

// GetTags 查找帖子的全部标签
func (r *postDetailRepository) GetTags(postID uint) ([]model.PostTag, error) {
	var tags []model.PostTag
	if err := r.db.Where("post_id = ?", postID).Find(&tags).Error; err != nil {
		return nil, wrapDBError(err, "查询帖子标签")
	}
	return tags, nil
}

// ReplaceTags 先清空再写入，保证标签与请求一致
func (r *postDetailRepository) ReplaceTags(postID uint, tags []string) error {
	if err := r.db.Where("post_id = ?", postID).Delete(&model.PostTag{}).Error; err != nil {
		return wrapDBError(err, "清空帖子标签")
	}
	if len(tags) == 0 {
		return nil
	}
	rows := make([]model.PostTag, 0, len(tags))
	for _, tag := range tags {
		rows = append(rows, model.PostTag{PostID: postID, Tag: tag})
	}
	if err := r.db.Create(&rows).Error; err != nil {
		return wrapDBError(err, "写入帖子标签")
	}
	return nil
}

// DeleteTags 删除帖子的全部标签
func (r *postDetailRepository) DeleteTags(postID uint) error {
	if err := r.db.Where("post_id = ?", postID).Delete(&model.PostTag{}).Error; err != nil {
		return wrapDBError(err, "删除帖子标签")
	}
	return nil
}
