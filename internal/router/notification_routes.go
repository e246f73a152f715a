package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterNotificationRoutes 注册通知相关路由（需要认证）
func (rt *Router) RegisterNotificationRoutes(rg *gin.RouterGroup) {
	notificationGroup := rg.Group("/notification")
	{
		notificationGroup.GET("", rt.handlers.Notification.ListNotifications)
		notificationGroup.GET("/unread-count", rt.handlers.Notification.GetUnreadCount)
		notificationGroup.POST("/read-all", rt.handlers.Notification.MarkAllRead)
		notificationGroup.PUT("/:id/read", rt.handlers.Notification.MarkRead)
	}
}
