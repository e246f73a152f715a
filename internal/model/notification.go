// 本文件定义通知模型
package model

import "gorm.io/gorm"

// NotificationType 通知类型
type NotificationType string

const (
	NotifyApply       NotificationType = "APPLY"        // 收到组队申请
	NotifyAccepted    NotificationType = "ACCEPTED"     // 申请被通过
	NotifyRejected    NotificationType = "REJECTED"     // 申请被拒绝
	NotifyFollow      NotificationType = "FOLLOW"       // 被关注
	NotifyLikePost    NotificationType = "LIKE_POST"    // 帖子被点赞
	NotifyLikeComment NotificationType = "LIKE_COMMENT" // 评论被点赞
)

// IsValid 判断是否为已知通知类型
func (t NotificationType) IsValid() bool {
	switch t {
	case NotifyApply, NotifyAccepted, NotifyRejected, NotifyFollow, NotifyLikePost, NotifyLikeComment:
		return true
	}
	return false
}

// Notification 通知记录，只增不改（已读标记除外）
type Notification struct {
	gorm.Model

	// SenderID 触发通知的用户 id
	SenderID uint `gorm:"column:sender_id;not null;comment:发送人id"`

	// ReceiverID 接收通知的用户 id
	ReceiverID uint `gorm:"column:receiver_id;index;not null;comment:接收人id"`

	// Type 通知类型
	Type NotificationType `gorm:"column:type;type:varchar(15);not null;comment:通知类型"`

	// TargetID 通知关联的目标 id（帖子、申请或用户）
	TargetID uint `gorm:"column:target_id;not null;comment:目标id"`

	// Message 根据类型和发送人昵称渲染好的通知文案
	Message string `gorm:"column:message;type:varchar(255);not null;comment:通知内容"`

	// IsRead 接收人是否已读
	IsRead bool `gorm:"column:is_read;not null;default:false;comment:是否已读"`
}

func (Notification) TableName() string {
	return "notifications"
}
