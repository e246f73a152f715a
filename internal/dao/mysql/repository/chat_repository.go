package repository

import (
	"outspecs_server/internal/model"

	"gorm.io/gorm"
)

type chatRoomRepository struct {
	db *gorm.DB
}

// NewChatRoomRepository 创建私聊会话 Repository
func NewChatRoomRepository(db *gorm.DB) ChatRoomRepository {
	return &chatRoomRepository{db: db}
}

// normalizePair 将两个用户 id 归一化为（小，大）
func normalizePair(userA, userB uint) (uint, uint) {
	if userA > userB {
		return userB, userA
	}
	return userA, userB
}

// FindByID 按 id 查找会话
func (r *chatRoomRepository) FindByID(id uint) (*model.ChatRoom, error) {
	var room model.ChatRoom
	if err := r.db.First(&room, id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会话 id=%d", id)
	}
	return &room, nil
}

// FindByPair 查找两个用户之间的会话
func (r *chatRoomRepository) FindByPair(userA, userB uint) (*model.ChatRoom, error) {
	u1, u2 := normalizePair(userA, userB)
	var room model.ChatRoom
	if err := r.db.First(&room, "user1_id = ? AND user2_id = ?", u1, u2).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询会话 user1=%d user2=%d", u1, u2)
	}
	return &room, nil
}

// Create 创建会话，参与者 id 先归一化
func (r *chatRoomRepository) Create(room *model.ChatRoom) error {
	room.User1ID, room.User2ID = normalizePair(room.User1ID, room.User2ID)
	if err := r.db.Create(room).Error; err != nil {
		return wrapDBError(err, "创建会话")
	}
	return nil
}

// UpdateLastMessage 更新会话最近消息 id
func (r *chatRoomRepository) UpdateLastMessage(roomID uint, messageID int64) error {
	if err := r.db.Model(&model.ChatRoom{}).Where("id = ?", roomID).
		Update("last_message_id", messageID).Error; err != nil {
		return wrapDBError(err, "更新会话最近消息")
	}
	return nil
}

// ListByUser 查找用户参与的全部会话
func (r *chatRoomRepository) ListByUser(userID uint) ([]model.ChatRoom, error) {
	var rooms []model.ChatRoom
	if err := r.db.Where("user1_id = ? OR user2_id = ?", userID, userID).
		Order("updated_at DESC").Find(&rooms).Error; err != nil {
		return nil, wrapDBError(err, "查询会话列表")
	}
	return rooms, nil
}

// Delete 删除会话
func (r *chatRoomRepository) Delete(id uint) error {
	if err := r.db.Delete(&model.ChatRoom{}, id).Error; err != nil {
		return wrapDBError(err, "删除会话")
	}
	return nil
}

type chatMessageRepository struct {
	db *gorm.DB
}

// NewChatMessageRepository 创建聊天消息 Repository
func NewChatMessageRepository(db *gorm.DB) ChatMessageRepository {
	return &chatMessageRepository{db: db}
}

// FindByID 按 id 查找消息
func (r *chatMessageRepository) FindByID(id int64) (*model.ChatMessage, error) {
	var message model.ChatMessage
	if err := r.db.First(&message, "id = ?", id).Error; err != nil {
		return nil, wrapDBErrorf(err, "查询消息 id=%d", id)
	}
	return &message, nil
}

// Create 创建消息
func (r *chatMessageRepository) Create(message *model.ChatMessage) error {
	if err := r.db.Create(message).Error; err != nil {
		return wrapDBError(err, "创建消息")
	}
	return nil
}

// ListByRoom 查找会话内消息，按 id 升序（雪花 id 即时间序）
func (r *chatMessageRepository) ListByRoom(roomID uint) ([]model.ChatMessage, error) {
	var messages []model.ChatMessage
	if err := r.db.Where("chat_room_id = ?", roomID).
		Order("id").Find(&messages).Error; err != nil {
		return nil, wrapDBError(err, "查询消息列表")
	}
	return messages, nil
}

// MarkRead 将会话内对方发送的消息全部标记为已读
func (r *chatMessageRepository) MarkRead(roomID, readerID uint) error {
	if err := r.db.Model(&model.ChatMessage{}).
		Where("chat_room_id = ? AND sender_id != ? AND has_read = ?", roomID, readerID, false).
		Update("has_read", true).Error; err != nil {
		return wrapDBError(err, "标记消息已读")
	}
	return nil
}

// DeleteByRoom 删除会话内全部消息
func (r *chatMessageRepository) DeleteByRoom(roomID uint) error {
	if err := r.db.Where("chat_room_id = ?", roomID).Delete(&model.ChatMessage{}).Error; err != nil {
		return wrapDBError(err, "删除会话消息")
	}
	return nil
}
