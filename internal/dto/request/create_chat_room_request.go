package request

// CreateChatRoomRequest 创建（或获取）私聊会话请求
type CreateChatRoomRequest struct {
	TargetID uint `json:"target_id" binding:"required"`
}
