// 本文件处理私聊会话和消息的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/dto/request"
	"outspecs_server/internal/service"
)

// ChatHandler 私聊请求处理器
type ChatHandler struct {
	chatSvc service.ChatService
}

// NewChatHandler 创建私聊处理器实例
func NewChatHandler(chatSvc service.ChatService) *ChatHandler {
	return &ChatHandler{chatSvc: chatSvc}
}

// CreateRoom 获取或创建与目标用户的会话
// POST /chat/room
// 请求体: request.CreateChatRoomRequest
// 响应: respond.ChatRoomRespond
func (h *ChatHandler) CreateRoom(c *gin.Context) {
	var req request.CreateChatRoomRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.chatSvc.GetOrCreateRoom(currentUserID(c), req.TargetID)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListRooms 查询自己的会话列表
// GET /chat/room
func (h *ChatHandler) ListRooms(c *gin.Context) {
	data, err := h.chatSvc.GetRoomList(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// DeleteRoom 删除会话及其消息，仅参与者可操作
// DELETE /chat/room/:id
func (h *ChatHandler) DeleteRoom(c *gin.Context) {
	roomID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err = h.chatSvc.DeleteRoom(roomID, currentUserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// SendMessage 发送消息（HTTP 方式，WebSocket 不可用时的降级通道）
// POST /chat/message
// 请求体: request.ChatMessageRequest
// 响应: respond.ChatMessageRespond
func (h *ChatHandler) SendMessage(c *gin.Context) {
	var req request.ChatMessageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		HandleParamError(c, err)
		return
	}
	data, err := h.chatSvc.SendMessage(req.ChatRoomID, currentUserID(c), req.Content)
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// ListMessages 查询会话内消息
// GET /chat/room/:id/messages
func (h *ChatHandler) ListMessages(c *gin.Context) {
	roomID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	data, err := h.chatSvc.GetMessageList(roomID, currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// MarkRead 标记会话内对方消息已读
// PUT /chat/room/:id/read
func (h *ChatHandler) MarkRead(c *gin.Context) {
	roomID, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err = h.chatSvc.MarkRead(roomID, currentUserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
