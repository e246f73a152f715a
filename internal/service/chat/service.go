// Package chat 实现私聊会话与聊天消息服务，以及 WebSocket 实时推送
package chat

import (
	"go.uber.org/zap"

	"outspecs_server/internal/dao/mysql/repository"
	"outspecs_server/internal/dto/respond"
	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
	"outspecs_server/pkg/util/snowflake"
)

type chatService struct {
	repos *repository.Repositories
}

// NewChatService 创建聊天服务
func NewChatService(repos *repository.Repositories) *chatService {
	return &chatService{repos: repos}
}

// GetOrCreateRoom 获取两个用户之间的会话，不存在时创建
// 同一对用户只存在一个会话
func (s *chatService) GetOrCreateRoom(userID, targetID uint) (*respond.ChatRoomRespond, error) {
	if userID == targetID {
		return nil, errorx.New(errorx.CodeInvalidParam, "不能和自己创建会话")
	}
	if _, err := s.repos.User.FindByID(userID); err != nil {
		return nil, err
	}
	target, err := s.repos.User.FindByID(targetID)
	if err != nil {
		return nil, err
	}
	room, err := s.repos.ChatRoom.FindByPair(userID, targetID)
	if err != nil {
		if errorx.GetCode(err) != errorx.CodeNotFound {
			return nil, err
		}
		room = &model.ChatRoom{
			User1ID:   userID,
			User2ID:   targetID,
			IsChatbot: target.Role == model.RoleChatbot,
		}
		if err = s.repos.ChatRoom.Create(room); err != nil {
			return nil, err
		}
		zap.L().Info("创建私聊会话", zap.Uint("room_id", room.ID),
			zap.Uint("user_id", userID), zap.Uint("target_id", targetID))
	}
	return s.toRoomRespond(room, userID), nil
}

// GetRoomList 查询用户参与的全部会话
func (s *chatService) GetRoomList(userID uint) ([]respond.ChatRoomRespond, error) {
	rooms, err := s.repos.ChatRoom.ListByUser(userID)
	if err != nil {
		return nil, err
	}
	list := make([]respond.ChatRoomRespond, 0, len(rooms))
	for i := range rooms {
		list = append(list, *s.toRoomRespond(&rooms[i], userID))
	}
	return list, nil
}

// DeleteRoom 删除会话及其全部消息，仅参与者可删除
func (s *chatService) DeleteRoom(roomID, userID uint) error {
	room, err := s.repos.ChatRoom.FindByID(roomID)
	if err != nil {
		return err
	}
	if !isParticipant(room, userID) {
		return errorx.New(errorx.CodeForbidden, "无权操作该会话")
	}
	return s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.ChatMessage.DeleteByRoom(roomID); err != nil {
			return err
		}
		return tx.ChatRoom.Delete(roomID)
	})
}

// SendMessage 在会话内发送消息，消息落库与会话最近消息更新在同一事务
func (s *chatService) SendMessage(roomID, senderID uint, content string) (*respond.ChatMessageRespond, error) {
	if content == "" {
		return nil, errorx.New(errorx.CodeInvalidParam, "消息内容不能为空")
	}
	room, err := s.repos.ChatRoom.FindByID(roomID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(room, senderID) {
		return nil, errorx.New(errorx.CodeForbidden, "无权在该会话发言")
	}
	message := &model.ChatMessage{
		ID:         snowflake.GenerateID(),
		ChatRoomID: roomID,
		SenderID:   senderID,
		Content:    content,
	}
	err = s.repos.Transaction(func(tx *repository.Repositories) error {
		if err := tx.ChatMessage.Create(message); err != nil {
			return err
		}
		return tx.ChatRoom.UpdateLastMessage(roomID, message.ID)
	})
	if err != nil {
		return nil, err
	}
	return toMessageRespond(message), nil
}

// GetMessageList 查询会话内全部消息，按发送顺序返回，仅参与者可见
func (s *chatService) GetMessageList(roomID, userID uint) ([]respond.ChatMessageRespond, error) {
	room, err := s.repos.ChatRoom.FindByID(roomID)
	if err != nil {
		return nil, err
	}
	if !isParticipant(room, userID) {
		return nil, errorx.New(errorx.CodeForbidden, "无权查看该会话")
	}
	messages, err := s.repos.ChatMessage.ListByRoom(roomID)
	if err != nil {
		return nil, err
	}
	list := make([]respond.ChatMessageRespond, 0, len(messages))
	for i := range messages {
		list = append(list, *toMessageRespond(&messages[i]))
	}
	return list, nil
}

// MarkRead 将会话内对方发送的消息全部标记为已读
func (s *chatService) MarkRead(roomID, readerID uint) error {
	room, err := s.repos.ChatRoom.FindByID(roomID)
	if err != nil {
		return err
	}
	if !isParticipant(room, readerID) {
		return errorx.New(errorx.CodeForbidden, "无权操作该会话")
	}
	return s.repos.ChatMessage.MarkRead(roomID, readerID)
}

// GetPeerID 返回会话内对方的用户 id
func (s *chatService) GetPeerID(roomID, userID uint) (uint, error) {
	room, err := s.repos.ChatRoom.FindByID(roomID)
	if err != nil {
		return 0, err
	}
	if !isParticipant(room, userID) {
		return 0, errorx.New(errorx.CodeForbidden, "无权操作该会话")
	}
	return peerOf(room, userID), nil
}

func isParticipant(room *model.ChatRoom, userID uint) bool {
	return room.User1ID == userID || room.User2ID == userID
}

func peerOf(room *model.ChatRoom, userID uint) uint {
	if room.User1ID == userID {
		return room.User2ID
	}
	return room.User1ID
}

func (s *chatService) toRoomRespond(room *model.ChatRoom, userID uint) *respond.ChatRoomRespond {
	peerID := peerOf(room, userID)
	resp := &respond.ChatRoomRespond{
		ID:        room.ID,
		PeerID:    peerID,
		IsChatbot: room.IsChatbot,
	}
	if profile, err := s.repos.Profile.FindByUserID(peerID); err == nil {
		resp.PeerNickname = profile.Nickname
	}
	if room.LastMessageID != 0 {
		if message, err := s.repos.ChatMessage.FindByID(room.LastMessageID); err == nil {
			resp.LastMessage = message.Content
		}
	}
	return resp
}

func toMessageRespond(message *model.ChatMessage) *respond.ChatMessageRespond {
	return &respond.ChatMessageRespond{
		ID:         message.ID,
		ChatRoomID: message.ChatRoomID,
		SenderID:   message.SenderID,
		Content:    message.Content,
		HasRead:    message.HasRead,
		CreatedAt:  message.CreatedAt,
	}
}
