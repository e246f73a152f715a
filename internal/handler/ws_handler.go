// 本文件处理 WebSocket 连接请求
package handler

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/service/chat"
)

// WSHandler WebSocket 连接处理器
type WSHandler struct {
	gateway *chat.Gateway
}

// NewWSHandler 创建 WebSocket 处理器实例
func NewWSHandler(gateway *chat.Gateway) *WSHandler {
	return &WSHandler{gateway: gateway}
}

// Connect 建立 WebSocket 连接
// GET /ws?token=xxx
// 握手无法携带请求头，令牌通过 query 参数传递，由认证中间件校验
func (h *WSHandler) Connect(c *gin.Context) {
	h.gateway.HandleConnection(c, currentUserID(c))
}
