package request

// ChatMessageRequest 发送聊天消息请求
// HTTP 接口和 WebSocket 入站消息共用同一结构
type ChatMessageRequest struct {
	ChatRoomID uint   `json:"chat_room_id" binding:"required"`
	Content    string `json:"content" binding:"required,max=2000"`
}
