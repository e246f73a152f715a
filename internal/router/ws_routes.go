// 本文件定义 WebSocket 相关的路由
package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterWebSocketRoutes 注册 WebSocket 路由（需要认证）
// 握手无法携带请求头，令牌通过 query 参数传递
// 请求示例: ws://host:port/ws?token=xxx
func (rt *Router) RegisterWebSocketRoutes(rg *gin.RouterGroup) {
	rg.GET("/ws", rt.handlers.WS.Connect)
}
