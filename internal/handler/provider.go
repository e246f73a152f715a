// 本文件定义 Handler 聚合结构和构造函数
// 通过构造函数注入 Service 依赖
package handler

import (
	"outspecs_server/internal/service"
)

// Handlers 聚合所有 Handler 实例
// 作为依赖注入的入口，Router 层通过此结构访问各个 Handler
type Handlers struct {
	Auth          *AuthHandler
	User          *UserHandler
	Post          *PostHandler
	Comment       *CommentHandler
	Participation *ParticipationHandler
	Reaction      *ReactionHandler
	Notification  *NotificationHandler
	Chat          *ChatHandler
	WS            *WSHandler
	Alan          *AlanHandler
	Admin         *AdminHandler
}

// NewHandlers 创建并注入所有 Handler 实例
func NewHandlers(svc *service.Services) *Handlers {
	return &Handlers{
		Auth:          NewAuthHandler(svc.User),
		User:          NewUserHandler(svc.User, svc.Reaction),
		Post:          NewPostHandler(svc.Post),
		Comment:       NewCommentHandler(svc.Comment),
		Participation: NewParticipationHandler(svc.Participation),
		Reaction:      NewReactionHandler(svc.Reaction),
		Notification:  NewNotificationHandler(svc.Notification),
		Chat:          NewChatHandler(svc.Chat),
		WS:            NewWSHandler(svc.Gateway),
		Alan:          NewAlanHandler(svc.Alan),
		Admin:         NewAdminHandler(svc.User, svc.Post, svc.Reaction),
	}
}
