package respond

// ChatRoomRespond 私聊会话列表项
type ChatRoomRespond struct {
	ID           uint   `json:"id"`
	PeerID       uint   `json:"peer_id"`
	PeerNickname string `json:"peer_nickname"`
	IsChatbot    bool   `json:"is_chatbot"`
	LastMessage  string `json:"last_message"`
}

// ChatMessageRespond 聊天消息响应
// WebSocket 下行消息复用同一结构
type ChatMessageRespond struct {
	ID         int64  `json:"id"`
	ChatRoomID uint   `json:"chat_room_id"`
	SenderID   uint   `json:"sender_id"`
	Content    string `json:"content"`
	HasRead    bool   `json:"has_read"`
	CreatedAt  int64  `json:"created_at"`
}
