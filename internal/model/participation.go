// 本文件定义组队申请模型
package model

import "gorm.io/gorm"

// 申请状态
const (
	ParticipationPending  = "PENDING"  // 待处理
	ParticipationAccepted = "ACCEPTED" // 已通过
	ParticipationRejected = "REJECTED" // 已拒绝
)

// Participation 组队申请模型
// 同一用户对同一帖子只能申请一次，由联合唯一索引保证
type Participation struct {
	gorm.Model

	// UserID 申请人 id
	UserID uint `gorm:"column:user_id;not null;uniqueIndex:idx_participation_user_post;comment:申请人id"`

	// PostID 目标组队帖 id
	PostID uint `gorm:"column:post_id;not null;uniqueIndex:idx_participation_user_post;index;comment:帖子id"`

	// Status 申请状态：PENDING / ACCEPTED / REJECTED
	Status string `gorm:"column:status;type:varchar(10);not null;default:PENDING;comment:状态"`
}

func (Participation) TableName() string {
	return "participations"
}
