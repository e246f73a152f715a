package memory

import (
	"sort"
	"time"

	"outspecs_server/internal/model"
	"outspecs_server/pkg/errorx"
)

type chatRoomRepository struct {
	store *Store
}

func normalizePair(userA, userB uint) (uint, uint) {
	if userA > userB {
		return userB, userA
	}
	return userA, userB
}

func (r *chatRoomRepository) FindByID(id uint) (*model.ChatRoom, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	room, ok := r.store.chatRooms[id]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "查询会话 id=%d", id)
	}
	return &room, nil
}

func (r *chatRoomRepository) FindByPair(userA, userB uint) (*model.ChatRoom, error) {
	u1, u2 := normalizePair(userA, userB)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, room := range r.store.chatRooms {
		if room.User1ID == u1 && room.User2ID == u2 {
			found := room
			return &found, nil
		}
	}
	return nil, errorx.Newf(errorx.CodeNotFound, "查询会话 user1=%d user2=%d", u1, u2)
}

func (r *chatRoomRepository) Create(room *model.ChatRoom) error {
	room.User1ID, room.User2ID = normalizePair(room.User1ID, room.User2ID)
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for _, existing := range r.store.chatRooms {
		if existing.User1ID == room.User1ID && existing.User2ID == room.User2ID {
			return errorx.New(errorx.CodeDBError, "会话重复")
		}
	}
	r.store.nextChatRoomID++
	room.ID = r.store.nextChatRoomID
	room.CreatedAt = time.Now()
	room.UpdatedAt = room.CreatedAt
	r.store.chatRooms[room.ID] = *room
	return nil
}

func (r *chatRoomRepository) UpdateLastMessage(roomID uint, messageID int64) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	room, ok := r.store.chatRooms[roomID]
	if !ok {
		return nil
	}
	room.LastMessageID = messageID
	room.UpdatedAt = time.Now()
	r.store.chatRooms[roomID] = room
	return nil
}

func (r *chatRoomRepository) ListByUser(userID uint) ([]model.ChatRoom, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var rooms []model.ChatRoom
	for _, room := range r.store.chatRooms {
		if room.User1ID == userID || room.User2ID == userID {
			rooms = append(rooms, room)
		}
	}
	sort.Slice(rooms, func(i, j int) bool { return rooms[i].UpdatedAt.After(rooms[j].UpdatedAt) })
	return rooms, nil
}

func (r *chatRoomRepository) Delete(id uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	delete(r.store.chatRooms, id)
	return nil
}

type chatMessageRepository struct {
	store *Store
}

func (r *chatMessageRepository) FindByID(id int64) (*model.ChatMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	message, ok := r.store.chatMessages[id]
	if !ok {
		return nil, errorx.Newf(errorx.CodeNotFound, "查询消息 id=%d", id)
	}
	return &message, nil
}

func (r *chatMessageRepository) Create(message *model.ChatMessage) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	if message.CreatedAt == 0 {
		message.CreatedAt = time.Now().UnixMilli()
	}
	r.store.chatMessages[message.ID] = *message
	return nil
}

func (r *chatMessageRepository) ListByRoom(roomID uint) ([]model.ChatMessage, error) {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	var messages []model.ChatMessage
	for _, message := range r.store.chatMessages {
		if message.ChatRoomID == roomID {
			messages = append(messages, message)
		}
	}
	sort.Slice(messages, func(i, j int) bool { return messages[i].ID < messages[j].ID })
	return messages, nil
}

func (r *chatMessageRepository) MarkRead(roomID, readerID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, message := range r.store.chatMessages {
		if message.ChatRoomID == roomID && message.SenderID != readerID && !message.HasRead {
			message.HasRead = true
			r.store.chatMessages[id] = message
		}
	}
	return nil
}

func (r *chatMessageRepository) DeleteByRoom(roomID uint) error {
	r.store.mu.Lock()
	defer r.store.mu.Unlock()
	for id, message := range r.store.chatMessages {
		if message.ChatRoomID == roomID {
			delete(r.store.chatMessages, id)
		}
	}
	return nil
}
