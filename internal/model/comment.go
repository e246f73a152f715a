// 本文件定义评论模型
package model

import "gorm.io/gorm"

// CommentType 评论类型
type CommentType string

const (
	CommentTypeAnswer  CommentType = "ANSWER"  // 问答帖的回答，父级为帖子
	CommentTypeComment CommentType = "COMMENT" // 普通评论，父级为帖子
	CommentTypeReply   CommentType = "REPLY"   // 回复，父级为评论，不允许嵌套回复
)

// IsValid 判断是否为已知评论类型
func (t CommentType) IsValid() bool {
	switch t {
	case CommentTypeAnswer, CommentTypeComment, CommentTypeReply:
		return true
	}
	return false
}

// Comment 评论模型
// ParentID 的含义随类型变化：ANSWER/COMMENT 指向帖子 id，REPLY 指向评论 id
type Comment struct {
	gorm.Model

	// UserID 评论作者 id
	UserID uint `gorm:"column:user_id;index;not null;comment:作者id"`

	// Type 评论类型：ANSWER / COMMENT / REPLY
	Type CommentType `gorm:"column:type;type:varchar(10);not null;comment:评论类型"`

	// ParentID 父级 id，ANSWER/COMMENT 为帖子 id，REPLY 为评论 id
	ParentID uint `gorm:"column:parent_id;index;not null;comment:父级id"`

	// Content 评论内容
	Content string `gorm:"column:content;type:varchar(1000);not null;comment:内容"`
}

func (Comment) TableName() string {
	return "comments"
}
