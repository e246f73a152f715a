// Package router 提供 HTTP 路由注册
// 本文件是路由注册的入口，聚合所有子模块的路由
package router

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/handler"
	"outspecs_server/internal/infrastructure/middleware"
)

// Router 路由管理器，持有 Handler 聚合实例
type Router struct {
	handlers *handler.Handlers
}

// NewRouter 创建路由管理器
func NewRouter(handlers *handler.Handlers) *Router {
	return &Router{handlers: handlers}
}

// RegisterRoutes 注册所有路由
// 在 https_server.Init() 中调用
// 公开路由直接挂在引擎上，其余统一经过认证中间件，管理端额外要求管理员角色
func (rt *Router) RegisterRoutes(r *gin.Engine) {
	rt.RegisterAuthRoutes(r)

	authed := r.Group("", middleware.JWTAuth())
	rt.RegisterUserRoutes(authed)
	rt.RegisterPostRoutes(authed)
	rt.RegisterCommentRoutes(authed)
	rt.RegisterParticipationRoutes(authed)
	rt.RegisterReactionRoutes(authed)
	rt.RegisterNotificationRoutes(authed)
	rt.RegisterChatRoutes(authed)
	rt.RegisterWebSocketRoutes(authed)
	rt.RegisterAlanRoutes(authed)

	admin := authed.Group("/admin", middleware.AdminOnly())
	rt.RegisterAdminRoutes(admin)
}
