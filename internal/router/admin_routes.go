package router

import (
	"github.com/gin-gonic/gin"
)

// RegisterAdminRoutes 注册管理端路由
// 调用方已挂载认证和管理员授权中间件
func (rt *Router) RegisterAdminRoutes(rg *gin.RouterGroup) {
	rg.GET("/users", rt.handlers.Admin.ListUsers)
	rg.PUT("/users/:id/status", rt.handlers.Admin.UpdateUserStatus)
	rg.PUT("/users/:id/role", rt.handlers.Admin.UpdateUserRole)
	rg.GET("/reported-posts", rt.handlers.Admin.ListReportedPosts)
	rg.DELETE("/posts/:id", rt.handlers.Admin.DeletePost)
}
