// 本文件定义私聊会话和聊天消息模型
package model

import "gorm.io/gorm"

// ChatRoom 私聊会话
// 两个用户之间只存在一个会话，创建时按 id 升序归一化 User1ID/User2ID
type ChatRoom struct {
	gorm.Model

	// User1ID 会话参与者之一（较小的用户 id）
	User1ID uint `gorm:"column:user1_id;not null;uniqueIndex:idx_chat_room_pair;comment:参与者1"`

	// User2ID 会话参与者之二（较大的用户 id）
	User2ID uint `gorm:"column:user2_id;not null;uniqueIndex:idx_chat_room_pair;comment:参与者2"`

	// IsChatbot 是否为与聊天机器人的会话
	IsChatbot bool `gorm:"column:is_chatbot;not null;default:false;comment:是否机器人会话"`

	// LastMessageID 最近一条消息 id，会话列表展示用，可为空
	LastMessageID int64 `gorm:"column:last_message_id;comment:最近消息id"`
}

func (ChatRoom) TableName() string {
	return "chat_rooms"
}

// ChatMessage 聊天消息
// 主键由雪花算法生成，保证跨节点趋势递增
type ChatMessage struct {
	// ID 消息 id，雪花算法生成
	ID int64 `gorm:"column:id;primaryKey;comment:消息id"`

	// ChatRoomID 所属会话 id
	ChatRoomID uint `gorm:"column:chat_room_id;index;not null;comment:会话id"`

	// SenderID 消息发送人 id
	SenderID uint `gorm:"column:sender_id;not null;comment:发送人id"`

	// Content 消息内容
	Content string `gorm:"column:content;type:varchar(2000);not null;comment:内容"`

	// HasRead 对方是否已读
	HasRead bool `gorm:"column:has_read;not null;default:false;comment:是否已读"`

	CreatedAt int64 `gorm:"column:created_at;autoCreateTime:milli;comment:创建时间戳"`
}

func (ChatMessage) TableName() string {
	return "chat_messages"
}
