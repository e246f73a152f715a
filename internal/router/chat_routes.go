package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterChatRoutes 注册私聊相关路由（需要认证）
func (rt *Router) RegisterChatRoutes(rg *gin.RouterGroup) {
	chatGroup := rg.Group("/chat")
	{
		chatGroup.POST("/room", rt.handlers.Chat.CreateRoom)
		chatGroup.GET("/room", rt.handlers.Chat.ListRooms)
		chatGroup.DELETE("/room/:id", rt.handlers.Chat.DeleteRoom)
		chatGroup.GET("/room/:id/messages", rt.handlers.Chat.ListMessages)
		chatGroup.PUT("/room/:id/read", rt.handlers.Chat.MarkRead)
		chatGroup.POST("/message", rt.handlers.Chat.SendMessage)
	}
}
