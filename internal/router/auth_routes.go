package router

import (
	"github.com/gin-gonic/gin"

	"outspecs_server/internal/infrastructure/middleware"
)

// RegisterAuthRoutes 注册认证相关路由
// 注册、登录和刷新令牌为公开接口，登出需要认证
func (rt *Router) RegisterAuthRoutes(r *gin.Engine) {
	authGroup := r.Group("/auth")
	{
		authGroup.POST("/register", rt.handlers.Auth.Register)
		authGroup.POST("/login", rt.handlers.Auth.Login)
		authGroup.POST("/oauth/google", rt.handlers.Auth.OAuthLogin)
		authGroup.POST("/refresh", rt.handlers.Auth.RefreshToken)
		authGroup.POST("/logout", middleware.JWTAuth(), rt.handlers.Auth.Logout)
	}
}
