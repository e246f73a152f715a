// 本文件定义用户行为（点赞/收藏/关注/举报）模型
package model

import "gorm.io/gorm"

// ReactionType 行为类型
type ReactionType string

const (
	ReactionLike     ReactionType = "LIKE"     // 点赞：帖子或评论
	ReactionBookmark ReactionType = "BOOKMARK" // 收藏：帖子
	ReactionFollow   ReactionType = "FOLLOW"   // 关注：用户
	ReactionReport   ReactionType = "REPORT"   // 举报：帖子
)

// IsValid 判断是否为已知行为类型
func (t ReactionType) IsValid() bool {
	switch t {
	case ReactionLike, ReactionBookmark, ReactionFollow, ReactionReport:
		return true
	}
	return false
}

// TargetType 行为作用的目标类型
type TargetType string

const (
	TargetPost    TargetType = "POST"
	TargetUser    TargetType = "USER"
	TargetComment TargetType = "COMMENT"
)

// IsValid 判断是否为已知目标类型
func (t TargetType) IsValid() bool {
	switch t {
	case TargetPost, TargetUser, TargetComment:
		return true
	}
	return false
}

// Reaction 用户行为记录
// 同一用户对同一目标的同一种行为只能存在一条，由联合唯一索引保证
type Reaction struct {
	gorm.Model

	// UserID 行为发起人 id
	UserID uint `gorm:"column:user_id;not null;uniqueIndex:idx_reaction_tuple;comment:用户id"`

	// TargetType 目标类型：POST / USER / COMMENT
	TargetType TargetType `gorm:"column:target_type;type:varchar(10);not null;uniqueIndex:idx_reaction_tuple;comment:目标类型"`

	// TargetID 目标 id，含义随 TargetType 变化
	TargetID uint `gorm:"column:target_id;not null;uniqueIndex:idx_reaction_tuple;index;comment:目标id"`

	// Type 行为类型：LIKE / BOOKMARK / FOLLOW / REPORT
	Type ReactionType `gorm:"column:type;type:varchar(10);not null;uniqueIndex:idx_reaction_tuple;comment:行为类型"`
}

func (Reaction) TableName() string {
	return "reactions"
}
