// 本文件处理通知相关的 API 请求
package handler

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/service"
)

// NotificationHandler 通知请求处理器
type NotificationHandler struct {
	notificationSvc service.NotificationService
}

// NewNotificationHandler 创建通知处理器实例
func NewNotificationHandler(notificationSvc service.NotificationService) *NotificationHandler {
	return &NotificationHandler{notificationSvc: notificationSvc}
}

// ListNotifications 查询自己收到的通知
// GET /notification
func (h *NotificationHandler) ListNotifications(c *gin.Context) {
	data, err := h.notificationSvc.GetNotificationList(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, data)
}

// GetUnreadCount 统计未读通知数
// GET /notification/unread-count
// 响应: { count: int64 }
func (h *NotificationHandler) GetUnreadCount(c *gin.Context) {
	count, err := h.notificationSvc.GetUnreadCount(currentUserID(c))
	if err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, gin.H{"count": count})
}

// MarkRead 标记单条通知已读
// PUT /notification/:id/read
func (h *NotificationHandler) MarkRead(c *gin.Context) {
	id, err := parseUintParam(c, "id")
	if err != nil {
		HandleError(c, err)
		return
	}
	if err = h.notificationSvc.MarkRead(id, currentUserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}

// MarkAllRead 标记全部通知已读
// POST /notification/read-all
func (h *NotificationHandler) MarkAllRead(c *gin.Context) {
	if err := h.notificationSvc.MarkAllRead(currentUserID(c)); err != nil {
		HandleError(c, err)
		return
	}
	HandleSuccess(c, nil)
}
